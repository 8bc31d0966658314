package controller

import (
	"strconv"

	"recruiting_backend/internal/repository"
	"recruiting_backend/internal/service"
	"recruiting_backend/internal/util"

	"github.com/gin-gonic/gin"
)

type VideoController struct {
	VideoService *service.VideoService
	UserRepo     *repository.UserRepository
}

func NewVideoController(videoService *service.VideoService, userRepo *repository.UserRepository) *VideoController {
	return &VideoController{VideoService: videoService, UserRepo: userRepo}
}

// UploadVideo godoc
// @Summary Upload a film clip
// @Description Stores the file, probes duration and resolution, and records the clip. Highlight uploads close open missing-video suggestions.
// @Tags videos
// @Accept  multipart/form-data
// @Produce  json
// @Security ApiKeyAuth
// @Param   file formData file true "video file"
// @Param   title formData string true "clip title"
// @Param   isHighlight formData bool false "mark as highlight reel"
// @Success 201 {object} util.Response{data=model.Video} "created"
// @Failure 400 {object} util.Response "invalid upload"
// @Router /api/videos [post]
func (c *VideoController) UploadVideo(ctx *gin.Context) {
	claims := util.GetUserFromContext(ctx)
	if claims == nil {
		util.Unauthorized(ctx)
		return
	}

	file, err := ctx.FormFile("file")
	if err != nil {
		util.BadRequest(ctx, "missing video file")
		return
	}

	title := ctx.PostForm("title")
	if title == "" {
		util.BadRequest(ctx, "missing title")
		return
	}
	isHighlight, _ := strconv.ParseBool(ctx.DefaultPostForm("isHighlight", "false"))

	video, err := c.VideoService.Upload(ctx.Request.Context(), claims.UserID, title, isHighlight, file)
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}
	util.Created(ctx, video)
}

// ListVideos godoc
// @Summary The athlete's uploaded clips
// @Tags videos
// @Produce  json
// @Security ApiKeyAuth
// @Success 200 {object} util.Response{data=[]model.Video} "success"
// @Router /api/videos [get]
func (c *VideoController) ListVideos(ctx *gin.Context) {
	athleteID, ok := resolveAthleteID(ctx, c.UserRepo)
	if !ok {
		return
	}

	videos, err := c.VideoService.List(athleteID)
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}
	util.Success(ctx, videos)
}

// DeleteVideo godoc
// @Summary Delete a clip
// @Tags videos
// @Produce  json
// @Security ApiKeyAuth
// @Param   id path int true "video id"
// @Success 200 {object} util.Response "success"
// @Failure 404 {object} util.Response "not found"
// @Router /api/videos/{id} [delete]
func (c *VideoController) DeleteVideo(ctx *gin.Context) {
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

	if err := c.VideoService.Delete(uint(id), claims.UserID); err != nil {
		respondDomainError(ctx, err)
		return
	}
	util.Success(ctx, nil)
}
