package controller

import (
	"strconv"

	"recruiting_backend/internal/model"
	"recruiting_backend/internal/repository"
	"recruiting_backend/internal/service"
	"recruiting_backend/internal/util"

	"github.com/gin-gonic/gin"
)

type SchoolController struct {
	SchoolService *service.SchoolService
	UserRepo      *repository.UserRepository
}

func NewSchoolController(schoolService *service.SchoolService, userRepo *repository.UserRepository) *SchoolController {
	return &SchoolController{SchoolService: schoolService, UserRepo: userRepo}
}

// CreateSchool godoc
// @Summary Add a school to the athlete's list
// @Tags schools
// @Accept  json
// @Produce  json
// @Security ApiKeyAuth
// @Param   body body model.School true "school"
// @Success 201 {object} util.Response{data=model.School} "created"
// @Failure 400 {object} util.Response "invalid payload"
// @Router /api/schools [post]
func (c *SchoolController) CreateSchool(ctx *gin.Context) {
	claims := util.GetUserFromContext(ctx)
	if claims == nil {
		util.Unauthorized(ctx)
		return
	}

	var school model.School
	if err := ctx.ShouldBindJSON(&school); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	if err := c.SchoolService.Create(claims.UserID, &school); err != nil {
		util.LogInternalError(ctx, err)
		return
	}

	util.Created(ctx, school)
}

// ListSchools godoc
// @Summary List the athlete's schools
// @Tags schools
// @Produce  json
// @Security ApiKeyAuth
// @Success 200 {object} util.Response{data=[]model.School} "success"
// @Router /api/schools [get]
func (c *SchoolController) ListSchools(ctx *gin.Context) {
	athleteID, ok := resolveAthleteID(ctx, c.UserRepo)
	if !ok {
		return
	}

	schools, err := c.SchoolService.List(athleteID)
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}
	util.Success(ctx, schools)
}

// GetSchool godoc
// @Summary One school with full detail
// @Tags schools
// @Produce  json
// @Security ApiKeyAuth
// @Param   id path int true "school id"
// @Success 200 {object} util.Response{data=model.School} "success"
// @Failure 404 {object} util.Response "not found"
// @Router /api/schools/{id} [get]
func (c *SchoolController) GetSchool(ctx *gin.Context) {
	athleteID, ok := resolveAthleteID(ctx, c.UserRepo)
	if !ok {
		return
	}

	id, err := strconv.Atoi(ctx.Param("id"))
	if err != nil {
		util.BadRequest(ctx, "invalid id")
		return
	}

	school, err := c.SchoolService.Get(uint(id), athleteID)
	if err != nil {
		respondDomainError(ctx, err)
		return
	}
	util.Success(ctx, school)
}

// UpdateSchool godoc
// @Summary Update a school
// @Tags schools
// @Accept  json
// @Produce  json
// @Security ApiKeyAuth
// @Param   id path int true "school id"
// @Param   body body model.School true "school"
// @Success 200 {object} util.Response{data=model.School} "success"
// @Failure 404 {object} util.Response "not found"
// @Router /api/schools/{id} [put]
func (c *SchoolController) UpdateSchool(ctx *gin.Context) {
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

	var updates model.School
	if err := ctx.ShouldBindJSON(&updates); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	school, err := c.SchoolService.Update(uint(id), claims.UserID, &updates)
	if err != nil {
		respondDomainError(ctx, err)
		return
	}
	util.Success(ctx, school)
}

// DeleteSchool godoc
// @Summary Remove a school from the list
// @Tags schools
// @Produce  json
// @Security ApiKeyAuth
// @Param   id path int true "school id"
// @Success 200 {object} util.Response "success"
// @Failure 404 {object} util.Response "not found"
// @Router /api/schools/{id} [delete]
func (c *SchoolController) DeleteSchool(ctx *gin.Context) {
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

	if err := c.SchoolService.Delete(uint(id), claims.UserID); err != nil {
		respondDomainError(ctx, err)
		return
	}
	util.Success(ctx, nil)
}

// ListCoaches godoc
// @Summary Coaches for a school
// @Tags schools
// @Produce  json
// @Security ApiKeyAuth
// @Param   id path int true "school id"
// @Success 200 {object} util.Response{data=[]model.Coach} "success"
// @Failure 404 {object} util.Response "not found"
// @Router /api/schools/{id}/coaches [get]
func (c *SchoolController) ListCoaches(ctx *gin.Context) {
	athleteID, ok := resolveAthleteID(ctx, c.UserRepo)
	if !ok {
		return
	}

	id, err := strconv.Atoi(ctx.Param("id"))
	if err != nil {
		util.BadRequest(ctx, "invalid id")
		return
	}

	coaches, err := c.SchoolService.ListCoaches(uint(id), athleteID)
	if err != nil {
		respondDomainError(ctx, err)
		return
	}
	util.Success(ctx, coaches)
}

// AddCoach godoc
// @Summary Add a coach contact to a school
// @Tags schools
// @Accept  json
// @Produce  json
// @Security ApiKeyAuth
// @Param   id path int true "school id"
// @Param   body body model.Coach true "coach"
// @Success 201 {object} util.Response{data=model.Coach} "created"
// @Failure 404 {object} util.Response "not found"
// @Router /api/schools/{id}/coaches [post]
func (c *SchoolController) AddCoach(ctx *gin.Context) {
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

	var coach model.Coach
	if err := ctx.ShouldBindJSON(&coach); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	if err := c.SchoolService.AddCoach(uint(id), claims.UserID, &coach); err != nil {
		respondDomainError(ctx, err)
		return
	}
	util.Created(ctx, coach)
}
