package controller

import (
	"strconv"

	"recruiting_backend/internal/model"
	"recruiting_backend/internal/repository"
	"recruiting_backend/internal/service"
	"recruiting_backend/internal/util"

	"github.com/gin-gonic/gin"
)

type InteractionController struct {
	InteractionService *service.InteractionService
	UserRepo           *repository.UserRepository
}

func NewInteractionController(interactionService *service.InteractionService, userRepo *repository.UserRepository) *InteractionController {
	return &InteractionController{InteractionService: interactionService, UserRepo: userRepo}
}

// LogInteraction godoc
// @Summary Log a coach interaction
// @Description Records an interaction with a school and closes any open interaction-gap suggestion for it
// @Tags interactions
// @Accept  json
// @Produce  json
// @Security ApiKeyAuth
// @Param   body body model.Interaction true "interaction"
// @Success 201 {object} util.Response{data=model.Interaction} "created"
// @Failure 400 {object} util.Response "invalid payload"
// @Failure 404 {object} util.Response "school not found"
// @Router /api/interactions [post]
func (c *InteractionController) LogInteraction(ctx *gin.Context) {
	claims := util.GetUserFromContext(ctx)
	if claims == nil {
		util.Unauthorized(ctx)
		return
	}

	var interaction model.Interaction
	if err := ctx.ShouldBindJSON(&interaction); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	if err := c.InteractionService.Log(claims.UserID, &interaction); err != nil {
		respondDomainError(ctx, err)
		return
	}
	util.Created(ctx, interaction)
}

// ListInteractions godoc
// @Summary Interaction history
// @Tags interactions
// @Produce  json
// @Security ApiKeyAuth
// @Param   schoolId query int false "filter by school"
// @Success 200 {object} util.Response{data=[]model.Interaction} "success"
// @Router /api/interactions [get]
func (c *InteractionController) ListInteractions(ctx *gin.Context) {
	athleteID, ok := resolveAthleteID(ctx, c.UserRepo)
	if !ok {
		return
	}

	var schoolID *uint
	if raw := ctx.Query("schoolId"); raw != "" {
		id, err := strconv.Atoi(raw)
		if err != nil {
			util.BadRequest(ctx, "invalid schoolId")
			return
		}
		sid := uint(id)
		schoolID = &sid
	}

	interactions, err := c.InteractionService.List(athleteID, schoolID)
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}
	util.Success(ctx, interactions)
}

// DeleteInteraction godoc
// @Summary Delete a logged interaction
// @Tags interactions
// @Produce  json
// @Security ApiKeyAuth
// @Param   id path int true "interaction id"
// @Success 200 {object} util.Response "success"
// @Failure 404 {object} util.Response "not found"
// @Router /api/interactions/{id} [delete]
func (c *InteractionController) DeleteInteraction(ctx *gin.Context) {
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

	if err := c.InteractionService.Delete(uint(id), claims.UserID); err != nil {
		respondDomainError(ctx, err)
		return
	}
	util.Success(ctx, nil)
}
