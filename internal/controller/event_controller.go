package controller

import (
	"strconv"

	"recruiting_backend/internal/model"
	"recruiting_backend/internal/repository"
	"recruiting_backend/internal/service"
	"recruiting_backend/internal/util"

	"github.com/gin-gonic/gin"
)

type EventController struct {
	EventService *service.EventService
	UserRepo     *repository.UserRepository
}

func NewEventController(eventService *service.EventService, userRepo *repository.UserRepository) *EventController {
	return &EventController{EventService: eventService, UserRepo: userRepo}
}

// CreateEvent godoc
// @Summary Add a camp, showcase, visit, or tournament
// @Tags events
// @Accept  json
// @Produce  json
// @Security ApiKeyAuth
// @Param   body body model.Event true "event"
// @Success 201 {object} util.Response{data=model.Event} "created"
// @Failure 400 {object} util.Response "invalid payload"
// @Router /api/events [post]
func (c *EventController) CreateEvent(ctx *gin.Context) {
	claims := util.GetUserFromContext(ctx)
	if claims == nil {
		util.Unauthorized(ctx)
		return
	}

	var event model.Event
	if err := ctx.ShouldBindJSON(&event); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	if err := c.EventService.Create(claims.UserID, &event); err != nil {
		util.LogInternalError(ctx, err)
		return
	}
	util.Created(ctx, event)
}

// ListEvents godoc
// @Summary Upcoming and past events
// @Tags events
// @Produce  json
// @Security ApiKeyAuth
// @Success 200 {object} util.Response{data=[]model.Event} "success"
// @Router /api/events [get]
func (c *EventController) ListEvents(ctx *gin.Context) {
	athleteID, ok := resolveAthleteID(ctx, c.UserRepo)
	if !ok {
		return
	}

	events, err := c.EventService.List(athleteID)
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}
	util.Success(ctx, events)
}

// UpdateEvent godoc
// @Summary Update an event
// @Tags events
// @Accept  json
// @Produce  json
// @Security ApiKeyAuth
// @Param   id path int true "event id"
// @Param   body body model.Event true "event"
// @Success 200 {object} util.Response{data=model.Event} "success"
// @Failure 404 {object} util.Response "not found"
// @Router /api/events/{id} [put]
func (c *EventController) UpdateEvent(ctx *gin.Context) {
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

	var updates model.Event
	if err := ctx.ShouldBindJSON(&updates); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	event, err := c.EventService.Update(uint(id), claims.UserID, &updates)
	if err != nil {
		respondDomainError(ctx, err)
		return
	}
	util.Success(ctx, event)
}

// DeleteEvent godoc
// @Summary Delete an event
// @Tags events
// @Produce  json
// @Security ApiKeyAuth
// @Param   id path int true "event id"
// @Success 200 {object} util.Response "success"
// @Failure 404 {object} util.Response "not found"
// @Router /api/events/{id} [delete]
func (c *EventController) DeleteEvent(ctx *gin.Context) {
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

	if err := c.EventService.Delete(uint(id), claims.UserID); err != nil {
		respondDomainError(ctx, err)
		return
	}
	util.Success(ctx, nil)
}
