package controller

import (
	"recruiting_backend/internal/model"
	"recruiting_backend/internal/service"
	"recruiting_backend/internal/util"

	"github.com/gin-gonic/gin"
)

type UserController struct {
	UserService *service.UserService
}

func NewUserController(userService *service.UserService) *UserController {
	return &UserController{UserService: userService}
}

// UpdateProfileRequest carries the athlete-editable profile fields.
// swagger:model UpdateProfileRequest
type UpdateProfileRequest struct {
	Name           string  `json:"name" binding:"required"`
	GraduationYear int     `json:"graduationYear"`
	Sport          string  `json:"sport"`
	Position       string  `json:"position"`
	Height         string  `json:"height"`
	GPA            float64 `json:"gpa"`
	Avatar         string  `json:"avatar"`
}

// UpdateProfile godoc
// @Summary Update the current user's profile
// @Tags users
// @Accept  json
// @Produce  json
// @Security ApiKeyAuth
// @Param   body body UpdateProfileRequest true "profile fields"
// @Success 200 {object} util.Response{data=model.User} "success"
// @Failure 400 {object} util.Response "invalid payload"
// @Failure 401 {object} util.Response "unauthorized"
// @Router /api/profile [put]
func (c *UserController) UpdateProfile(ctx *gin.Context) {
	claims := util.GetUserFromContext(ctx)
	if claims == nil {
		util.Unauthorized(ctx)
		return
	}

	var req UpdateProfileRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	user, err := c.UserService.UpdateProfile(claims.UserID, &model.User{
		Name:           req.Name,
		GraduationYear: req.GraduationYear,
		Sport:          req.Sport,
		Position:       req.Position,
		Height:         req.Height,
		GPA:            req.GPA,
		Avatar:         req.Avatar,
	})
	if err != nil {
		respondDomainError(ctx, err)
		return
	}

	util.Success(ctx, user)
}

// ListAthletes godoc
// @Summary List all athlete accounts
// @Tags admin
// @Produce  json
// @Security ApiKeyAuth
// @Success 200 {object} util.Response{data=[]model.User} "success"
// @Failure 403 {object} util.Response "forbidden"
// @Router /api/admin/athletes [get]
func (c *UserController) ListAthletes(ctx *gin.Context) {
	athletes, err := c.UserService.ListAthletes()
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}
	util.Success(ctx, athletes)
}
