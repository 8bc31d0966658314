package controller

import (
	"recruiting_backend/internal/repository"
	"recruiting_backend/internal/service"
	"recruiting_backend/internal/util"

	"github.com/gin-gonic/gin"
)

type RecoveryController struct {
	RecoveryService *service.RecoveryService
	UserRepo        *repository.UserRepository
}

func NewRecoveryController(recoveryService *service.RecoveryService, userRepo *repository.UserRepository) *RecoveryController {
	return &RecoveryController{RecoveryService: recoveryService, UserRepo: userRepo}
}

// GetRecoveryPlan godoc
// @Summary Recovery plan for an off-track athlete
// @Description Evaluates triggers in priority order and returns the plan for the first match, or onTrack when nothing fires. Nothing is persisted.
// @Tags recovery
// @Produce  json
// @Security ApiKeyAuth
// @Success 200 {object} util.Response{data=object} "success"
// @Failure 503 {object} util.Response "athlete context unavailable"
// @Router /api/recovery/plan [get]
func (c *RecoveryController) GetRecoveryPlan(ctx *gin.Context) {
	athleteID, ok := resolveAthleteID(ctx, c.UserRepo)
	if !ok {
		return
	}

	plan, err := c.RecoveryService.Evaluate(athleteID)
	if err != nil {
		respondDomainError(ctx, err)
		return
	}

	if plan == nil {
		util.Success(ctx, gin.H{"onTrack": true})
		return
	}
	util.Success(ctx, gin.H{"onTrack": false, "plan": plan})
}
