package controller

import (
	"errors"

	"recruiting_backend/internal/model"
	"recruiting_backend/internal/repository"
	"recruiting_backend/internal/util"

	"github.com/gin-gonic/gin"
)

// resolveAthleteID maps the caller to the athlete whose data is in scope.
// Athletes act on their own data; a parent account observes its linked
// athlete. Writes the error response itself when resolution fails.
func resolveAthleteID(ctx *gin.Context, userRepo *repository.UserRepository) (uint, bool) {
	claims := util.GetUserFromContext(ctx)
	if claims == nil {
		util.Unauthorized(ctx)
		return 0, false
	}

	if claims.Role != model.Parent {
		return claims.UserID, true
	}

	user, err := userRepo.FindByID(claims.UserID)
	if err != nil || user.AthleteID == nil {
		util.Forbidden(ctx)
		return 0, false
	}
	return *user.AthleteID, true
}

// respondDomainError maps service-layer sentinel errors onto HTTP statuses.
func respondDomainError(ctx *gin.Context, err error) {
	switch {
	case errors.Is(err, util.ErrSuggestionNotFound),
		errors.Is(err, util.ErrSchoolNotFound),
		errors.Is(err, util.ErrCoachNotFound),
		errors.Is(err, util.ErrInteractionNotFound),
		errors.Is(err, util.ErrTaskNotFound),
		errors.Is(err, util.ErrEventNotFound),
		errors.Is(err, util.ErrVideoNotFound),
		errors.Is(err, util.ErrUserNotFound):
		util.NotFound(ctx)
	case errors.Is(err, util.ErrInvalidTransition):
		util.Conflict(ctx, err.Error())
	case errors.Is(err, util.ErrPermissionDenied):
		util.Forbidden(ctx)
	case errors.Is(err, util.ErrContextUnavailable):
		util.ServiceUnavailable(ctx, "athlete context unavailable, try again shortly")
	default:
		util.LogInternalError(ctx, err)
	}
}
