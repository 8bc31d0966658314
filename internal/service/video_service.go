package service

import (
	"context"
	"fmt"
	"io"
	"mime/multipart"
	"os"
	"path/filepath"
	"time"

	"recruiting_backend/internal/model"
	"recruiting_backend/internal/repository"
	"recruiting_backend/internal/util"
	"recruiting_backend/pkg/logger"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

type VideoService struct {
	VideoRepo   *repository.VideoRepository
	Storage     *StorageService
	Suggestions *SuggestionService
}

func NewVideoService(videoRepo *repository.VideoRepository, storage *StorageService, suggestions *SuggestionService) *VideoService {
	return &VideoService{VideoRepo: videoRepo, Storage: storage, Suggestions: suggestions}
}

// Upload stores the file, probes it with ffmpeg for duration/resolution, and
// records the video. Probe failure is tolerated: the clip is still saved,
// just without metadata.
func (s *VideoService) Upload(ctx context.Context, athleteID uint, title string, isHighlight bool, file *multipart.FileHeader) (*model.Video, error) {
	src, err := file.Open()
	if err != nil {
		return nil, err
	}
	defer src.Close()

	filename := fmt.Sprintf("videos/%d/%d_%s", athleteID, time.Now().UnixNano(), filepath.Base(file.Filename))
	url, err := s.Storage.Upload(ctx, filename, src, file.Size, file.Header.Get("Content-Type"))
	if err != nil {
		return nil, err
	}

	video := &model.Video{
		AthleteID:   athleteID,
		Title:       title,
		URL:         url,
		IsHighlight: isHighlight,
	}

	// Probe from a temp copy; the storage backend may be remote.
	if tmp, err := os.CreateTemp("", "video-probe-*"+filepath.Ext(file.Filename)); err == nil {
		copyErr := fmt.Errorf("open failed")
		if probeSrc, err := file.Open(); err == nil {
			_, copyErr = io.Copy(tmp, probeSrc)
			probeSrc.Close()
		}
		tmp.Close()
		if copyErr == nil {
			if info, err := util.GetVideoInfo(tmp.Name()); err == nil {
				video.Duration = info.Duration
				video.Width = info.Width
				video.Height = info.Height
				video.Format = info.Format
			} else {
				logger.Log.Warn("video probe failed", zap.String("file", file.Filename), zap.Error(err))
			}
		}
		os.Remove(tmp.Name())
	}

	if err := s.VideoRepo.Create(video); err != nil {
		return nil, err
	}

	// Film on record resolves a missing-video suggestion.
	if isHighlight {
		if err := s.Suggestions.AutoCompleteForRule(athleteID, model.RuleMissingVideo); err != nil {
			logger.Log.Warn("auto-completing missing-video suggestions failed", zap.Error(err))
		}
	}

	return video, nil
}

func (s *VideoService) List(athleteID uint) ([]model.Video, error) {
	return s.VideoRepo.ListByAthlete(athleteID)
}

func (s *VideoService) Delete(id, athleteID uint) error {
	video, err := s.VideoRepo.FindByID(id)
	if err == gorm.ErrRecordNotFound {
		return util.ErrVideoNotFound
	} else if err != nil {
		return err
	}
	if video.AthleteID != athleteID {
		return util.ErrPermissionDenied
	}
	return s.VideoRepo.Delete(id)
}
