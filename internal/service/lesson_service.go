package service

import (
	"context"
	"errors"
	"io"
	"mime/multipart"
	"os"
	"path/filepath"
	"road_scholar_backend/internal/model"
	"road_scholar_backend/internal/repository"
	"road_scholar_backend/internal/util"
	"road_scholar_backend/pkg/logger"
	"strings"

	"go.uber.org/zap"
)

type LessonService struct {
	LessonRepo *repository.LessonRepository
	ModuleRepo *repository.ModuleRepository
	Storage    *StorageService
}

func NewLessonService(lessonRepo *repository.LessonRepository, moduleRepo *repository.ModuleRepository, storage *StorageService) *LessonService {
	return &LessonService{
		LessonRepo: lessonRepo,
		ModuleRepo: moduleRepo,
		Storage:    storage,
	}
}

type LessonRequest struct {
	ModuleID    uint   `json:"module_id" binding:"required"`
	Title       string `json:"title" binding:"required,max=255"`
	Description string `json:"description"`
	Content     string `json:"content"`
}

func (s *LessonService) List(ctx context.Context) ([]model.Lesson, error) {
	return s.LessonRepo.List(ctx)
}

func (s *LessonService) Show(ctx context.Context, id uint) (*model.Lesson, error) {
	return s.LessonRepo.FindByID(ctx, id)
}

func (s *LessonService) Create(ctx context.Context, req *LessonRequest) (*model.Lesson, error) {
	if err := s.requireModule(ctx, req.ModuleID); err != nil {
		return nil, err
	}
	lesson := &model.Lesson{
		ModuleID:    req.ModuleID,
		Title:       req.Title,
		Description: req.Description,
		Content:     req.Content,
	}
	if err := s.LessonRepo.Create(ctx, lesson); err != nil {
		return nil, err
	}
	return lesson, nil
}

func (s *LessonService) Update(ctx context.Context, id uint, req *LessonRequest) (*model.Lesson, error) {
	lesson, err := s.LessonRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := s.requireModule(ctx, req.ModuleID); err != nil {
		return nil, err
	}
	lesson.ModuleID = req.ModuleID
	lesson.Title = req.Title
	lesson.Description = req.Description
	lesson.Content = req.Content
	lesson.Module = nil
	if err := s.LessonRepo.Update(ctx, lesson); err != nil {
		return nil, err
	}
	return lesson, nil
}

func (s *LessonService) Delete(ctx context.Context, id uint) error {
	return s.LessonRepo.Delete(ctx, id)
}

func (s *LessonService) requireModule(ctx context.Context, moduleID uint) error {
	ok, err := s.ModuleRepo.Exists(ctx, moduleID)
	if err != nil {
		return err
	}
	if !ok {
		return util.ErrModuleNotFound
	}
	return nil
}

// UploadMedia attaches an image or a video to the lesson. Videos are probed so the
// lesson duration follows the file, and a poster frame becomes the image when none is set.
func (s *LessonService) UploadMedia(ctx context.Context, id uint, file *multipart.FileHeader) (*model.Lesson, error) {
	lesson, err := s.LessonRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	switch {
	case util.HasExtension(file.Filename, util.AllowedVideoExtensions):
		if err := s.attachVideo(ctx, lesson, file); err != nil {
			return nil, err
		}
	case util.HasExtension(file.Filename, util.AllowedImageExtensions):
		stored, err := s.Storage.StoreUpload(ctx, "lessons/images", file, []string{util.MimeImage})
		if err != nil {
			return nil, err
		}
		lesson.Image = stored.URL
	default:
		return nil, util.Invalid("unsupported file type: " + filepath.Ext(file.Filename))
	}

	lesson.Module = nil
	if err := s.LessonRepo.Update(ctx, lesson); err != nil {
		return nil, err
	}
	return lesson, nil
}

func (s *LessonService) attachVideo(ctx context.Context, lesson *model.Lesson, file *multipart.FileHeader) error {
	tempDir, err := os.MkdirTemp("", "lesson-video-*")
	if err != nil {
		return err
	}
	defer os.RemoveAll(tempDir)

	ext := strings.ToLower(filepath.Ext(file.Filename))
	videoPath := filepath.Join(tempDir, "source"+ext)
	if err := saveMultipart(file, videoPath); err != nil {
		return err
	}

	video, err := util.ProbeLessonVideo(videoPath)
	if err != nil {
		logger.Log.Info("Rejected lesson video", zap.Uint("lessonID", lesson.ID), zap.Error(err))
		if errors.Is(err, util.ErrUnreadableVideo) {
			return util.ErrUnreadableVideo
		}
		return err
	}
	lesson.Duration = video.Seconds

	videoKey := ObjectKey("lessons/videos", file.Filename)
	url, err := s.Storage.UploadFile(ctx, videoKey, videoPath, "video/"+strings.TrimPrefix(ext, "."))
	if err != nil {
		return err
	}
	lesson.Video = url

	if lesson.Image == "" {
		thumbPath := filepath.Join(tempDir, "poster.jpg")
		if err := util.ExtractPoster(videoPath, thumbPath, video); err != nil {
			logger.Log.Warn("Poster frame extraction failed", zap.Uint("lessonID", lesson.ID), zap.Error(err))
			return nil
		}
		posterURL, err := s.Storage.UploadFile(ctx, ObjectKey("lessons/images", "poster.jpg"), thumbPath, "image/jpeg")
		if err != nil {
			logger.Log.Warn("Poster frame upload failed", zap.Uint("lessonID", lesson.ID), zap.Error(err))
			return nil
		}
		lesson.Image = posterURL
	}
	return nil
}

func saveMultipart(file *multipart.FileHeader, dst string) error {
	src, err := file.Open()
	if err != nil {
		return err
	}
	defer src.Close()

	out, err := os.Create(dst)
	if err != nil {
		return err
	}
	defer out.Close()

	_, err = io.Copy(out, src)
	return err
}
