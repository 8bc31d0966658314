package controller

import (
	"strconv"
	"time"

	"recruiting_backend/internal/model"
	"recruiting_backend/internal/repository"
	"recruiting_backend/internal/service"
	"recruiting_backend/internal/util"

	"github.com/gin-gonic/gin"
)

type TaskController struct {
	TaskService *service.TaskService
	UserRepo    *repository.UserRepository
}

func NewTaskController(taskService *service.TaskService, userRepo *repository.UserRepository) *TaskController {
	return &TaskController{TaskService: taskService, UserRepo: userRepo}
}

// ListTasks godoc
// @Summary Recruiting checklist with the athlete's progress
// @Tags tasks
// @Produce  json
// @Security ApiKeyAuth
// @Success 200 {object} util.Response{data=[]service.TaskWithProgress} "success"
// @Router /api/tasks [get]
func (c *TaskController) ListTasks(ctx *gin.Context) {
	athleteID, ok := resolveAthleteID(ctx, c.UserRepo)
	if !ok {
		return
	}

	tasks, err := c.TaskService.ListForAthlete(athleteID)
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}
	util.Success(ctx, tasks)
}

// UpdateTaskStatusRequest moves the athlete's progress on one checklist item.
// swagger:model UpdateTaskStatusRequest
type UpdateTaskStatusRequest struct {
	Status  string     `json:"status" binding:"required,oneof=not_started in_progress completed"`
	DueDate *time.Time `json:"dueDate"`
}

// UpdateTaskStatus godoc
// @Summary Update progress on a checklist task
// @Description Completing a task also closes any suggestion that pointed at it
// @Tags tasks
// @Accept  json
// @Produce  json
// @Security ApiKeyAuth
// @Param   id path int true "task id"
// @Param   body body UpdateTaskStatusRequest true "status change"
// @Success 200 {object} util.Response "success"
// @Failure 404 {object} util.Response "task not found"
// @Router /api/tasks/{id}/status [put]
func (c *TaskController) UpdateTaskStatus(ctx *gin.Context) {
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

	var req UpdateTaskStatusRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	if err := c.TaskService.UpdateStatus(claims.UserID, uint(id), model.TaskStatus(req.Status), req.DueDate); err != nil {
		respondDomainError(ctx, err)
		return
	}
	util.Success(ctx, nil)
}
