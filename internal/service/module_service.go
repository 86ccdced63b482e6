package service

import (
	"context"
	"math"
	"mime/multipart"
	"road_scholar_backend/internal/model"
	"road_scholar_backend/internal/repository"
	"road_scholar_backend/internal/util"
	"strconv"
)

type ModuleService struct {
	ModuleRepo     *repository.ModuleRepository
	UserLessonRepo *repository.UserLessonRepository
	BookmarkRepo   *repository.BookmarkRepository
	Storage        *StorageService
}

func NewModuleService(
	moduleRepo *repository.ModuleRepository,
	userLessonRepo *repository.UserLessonRepository,
	bookmarkRepo *repository.BookmarkRepository,
	storage *StorageService,
) *ModuleService {
	return &ModuleService{
		ModuleRepo:     moduleRepo,
		UserLessonRepo: userLessonRepo,
		BookmarkRepo:   bookmarkRepo,
		Storage:        storage,
	}
}

type ModuleRequest struct {
	Title       string `json:"title" binding:"required,max=255"`
	Description string `json:"description"`
}

// List returns every module with its lessons, the user's progress and bookmark flag.
func (s *ModuleService) List(ctx context.Context, userID uint) ([]model.ModuleView, error) {
	modules, err := s.ModuleRepo.List(ctx)
	if err != nil {
		return nil, err
	}
	return s.decorate(ctx, userID, modules)
}

func (s *ModuleService) Show(ctx context.Context, userID, id uint) (*model.ModuleView, error) {
	module, err := s.ModuleRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	views, err := s.decorate(ctx, userID, []model.Module{*module})
	if err != nil {
		return nil, err
	}
	return &views[0], nil
}

func (s *ModuleService) decorate(ctx context.Context, userID uint, modules []model.Module) ([]model.ModuleView, error) {
	viewed, err := s.UserLessonRepo.ViewedByModule(ctx, userID)
	if err != nil {
		return nil, err
	}
	bookmarked, err := s.BookmarkRepo.ModuleIDs(ctx, userID)
	if err != nil {
		return nil, err
	}

	views := make([]model.ModuleView, 0, len(modules))
	for _, m := range modules {
		total := int64(len(m.Lessons))
		completed := viewed[m.ID]
		views = append(views, model.ModuleView{
			Module:       m,
			IsBookmarked: bookmarked[m.ID],
			Progress: model.ModuleProgress{
				Progress:         progressLabel(completed, total),
				CompletedLessons: completed,
				TotalLessons:     total,
			},
		})
	}
	return views, nil
}

// progressLabel renders a percentage rounded to two places, e.g. "33.33%" or "50%".
func progressLabel(completed, total int64) string {
	if total == 0 {
		return "0%"
	}
	pct := math.Round(float64(completed)/float64(total)*100*100) / 100
	return strconv.FormatFloat(pct, 'f', -1, 64) + "%"
}

func (s *ModuleService) Create(ctx context.Context, req *ModuleRequest) (*model.Module, error) {
	module := &model.Module{Title: req.Title, Description: req.Description}
	if err := s.ModuleRepo.Create(ctx, module); err != nil {
		return nil, err
	}
	return module, nil
}

func (s *ModuleService) Update(ctx context.Context, id uint, req *ModuleRequest) (*model.Module, error) {
	module, err := s.ModuleRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	module.Title = req.Title
	module.Description = req.Description
	if err := s.ModuleRepo.Update(ctx, module); err != nil {
		return nil, err
	}
	return module, nil
}

func (s *ModuleService) Delete(ctx context.Context, id uint) error {
	return s.ModuleRepo.Delete(ctx, id)
}

func (s *ModuleService) UploadImage(ctx context.Context, id uint, file *multipart.FileHeader) (*model.Module, error) {
	module, err := s.ModuleRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	stored, err := s.Storage.StoreUpload(ctx, "modules", file, []string{util.MimeImage})
	if err != nil {
		return nil, err
	}
	module.Image = stored.URL
	if err := s.ModuleRepo.Update(ctx, module); err != nil {
		return nil, err
	}
	return module, nil
}
