package controller

import (
	"strconv"

	"recruiting_backend/internal/repository"
	"recruiting_backend/internal/service"
	"recruiting_backend/internal/util"

	"github.com/gin-gonic/gin"
)

type SuggestionController struct {
	SuggestionService *service.SuggestionService
	UserRepo          *repository.UserRepository
}

func NewSuggestionController(suggestionService *service.SuggestionService, userRepo *repository.UserRepository) *SuggestionController {
	return &SuggestionController{SuggestionService: suggestionService, UserRepo: userRepo}
}

// ListSuggestions godoc
// @Summary Visible suggestions for a display location
// @Description Returns the ranked visible suggestions plus a count of how many more are waiting. location=school_detail narrows to one school via schoolId.
// @Tags suggestions
// @Produce  json
// @Security ApiKeyAuth
// @Param   location query string false "dashboard or school_detail" default(dashboard)
// @Param   schoolId query int false "school scope, required with school_detail"
// @Success 200 {object} util.Response{data=service.FetchResult} "success"
// @Router /api/suggestions [get]
func (c *SuggestionController) ListSuggestions(ctx *gin.Context) {
	athleteID, ok := resolveAthleteID(ctx, c.UserRepo)
	if !ok {
		return
	}

	location := ctx.DefaultQuery("location", util.LocationDashboard)
	if location != util.LocationDashboard && location != util.LocationSchoolDetail {
		util.BadRequest(ctx, "invalid location")
		return
	}

	var scopeID *uint
	if raw := ctx.Query("schoolId"); raw != "" {
		id, err := strconv.Atoi(raw)
		if err != nil {
			util.BadRequest(ctx, "invalid schoolId")
			return
		}
		sid := uint(id)
		scopeID = &sid
	}
	if location == util.LocationSchoolDetail && scopeID == nil {
		util.BadRequest(ctx, "school_detail requires schoolId")
		return
	}

	result, err := c.SuggestionService.FetchSuggestions(athleteID, location, scopeID)
	if err != nil {
		respondDomainError(ctx, err)
		return
	}
	util.Success(ctx, result)
}

// DismissSuggestion godoc
// @Summary Dismiss a suggestion
// @Description Dismissal is sticky for the reappearance cooldown. Dismissing a completed suggestion is rejected.
// @Tags suggestions
// @Produce  json
// @Security ApiKeyAuth
// @Param   id path int true "suggestion id"
// @Success 200 {object} util.Response "success"
// @Failure 404 {object} util.Response "not found"
// @Failure 409 {object} util.Response "already completed"
// @Router /api/suggestions/{id}/dismiss [post]
func (c *SuggestionController) DismissSuggestion(ctx *gin.Context) {
	claims := util.GetUserFromContext(ctx)
	if claims == nil {
		util.Unauthorized(ctx)
		return
	}

	id, err := strconv.Atoi(ctx.Param("id"))
	if err != nil {
		util.BadRequest(ctx, "invalid id")
		return
	}

	if err := c.SuggestionService.Dismiss(uint(id), claims.UserID); err != nil {
		respondDomainError(ctx, err)
		return
	}
	util.Success(ctx, nil)
}

// CompleteSuggestion godoc
// @Summary Mark a suggestion completed
// @Description Completion is terminal; the same condition never resurfaces for this suggestion.
// @Tags suggestions
// @Produce  json
// @Security ApiKeyAuth
// @Param   id path int true "suggestion id"
// @Success 200 {object} util.Response "success"
// @Failure 404 {object} util.Response "not found"
// @Router /api/suggestions/{id}/complete [post]
func (c *SuggestionController) CompleteSuggestion(ctx *gin.Context) {
	claims := util.GetUserFromContext(ctx)
	if claims == nil {
		util.Unauthorized(ctx)
		return
	}

	id, err := strconv.Atoi(ctx.Param("id"))
	if err != nil {
		util.BadRequest(ctx, "invalid id")
		return
	}

	if err := c.SuggestionService.Complete(uint(id), claims.UserID); err != nil {
		respondDomainError(ctx, err)
		return
	}
	util.Success(ctx, nil)
}

// SurfaceMoreRequest asks for pending suggestions to be promoted.
// swagger:model SurfaceMoreRequest
type SurfaceMoreRequest struct {
	Count int `json:"count"`
}

// SurfaceMore godoc
// @Summary Reveal more pending suggestions
// @Description Promotes up to count pending suggestions into the visible set. No new evaluation runs.
// @Tags suggestions
// @Accept  json
// @Produce  json
// @Security ApiKeyAuth
// @Param   body body SurfaceMoreRequest false "how many to reveal, default 3"
// @Success 200 {object} util.Response{data=[]model.Suggestion} "success"
// @Router /api/suggestions/surface-more [post]
func (c *SuggestionController) SurfaceMore(ctx *gin.Context) {
	claims := util.GetUserFromContext(ctx)
	if claims == nil {
		util.Unauthorized(ctx)
		return
	}

	var req SurfaceMoreRequest
	if err := ctx.ShouldBindJSON(&req); err != nil && err.Error() != "EOF" {
		util.BadRequest(ctx, err.Error())
		return
	}
	if req.Count <= 0 {
		req.Count = 3
	}

	promoted, err := c.SuggestionService.SurfaceMore(claims.UserID, req.Count)
	if err != nil {
		respondDomainError(ctx, err)
		return
	}
	util.Success(ctx, promoted)
}

// Evaluate godoc
// @Summary Run the suggestion engine for the current athlete
// @Description One full evaluation pass: new suggestions, reappearances, surfacing. Safe to repeat.
// @Tags suggestions
// @Produce  json
// @Security ApiKeyAuth
// @Success 200 {object} util.Response "success"
// @Failure 503 {object} util.Response "athlete context unavailable"
// @Router /api/suggestions/evaluate [post]
func (c *SuggestionController) Evaluate(ctx *gin.Context) {
	claims := util.GetUserFromContext(ctx)
	if claims == nil {
		util.Unauthorized(ctx)
		return
	}

	if err := c.SuggestionService.RunEvaluation(claims.UserID); err != nil {
		respondDomainError(ctx, err)
		return
	}
	util.Success(ctx, nil)
}

// EvaluateAll godoc
// @Summary Run the engine for every athlete
// @Tags admin
// @Produce  json
// @Security ApiKeyAuth
// @Success 200 {object} util.Response "success"
// @Failure 403 {object} util.Response "forbidden"
// @Router /api/admin/suggestions/evaluate [post]
func (c *SuggestionController) EvaluateAll(ctx *gin.Context) {
	if err := c.SuggestionService.RunForAllAthletes(); err != nil {
		util.LogInternalError(ctx, err)
		return
	}
	util.Success(ctx, nil)
}
