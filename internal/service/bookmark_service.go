package service

import (
	"context"
	"road_scholar_backend/internal/model"
	"road_scholar_backend/internal/repository"
	"road_scholar_backend/internal/util"
)

type BookmarkService struct {
	BookmarkRepo *repository.BookmarkRepository
	ModuleRepo   *repository.ModuleRepository
}

func NewBookmarkService(bookmarkRepo *repository.BookmarkRepository, moduleRepo *repository.ModuleRepository) *BookmarkService {
	return &BookmarkService{BookmarkRepo: bookmarkRepo, ModuleRepo: moduleRepo}
}

func (s *BookmarkService) List(ctx context.Context, userID uint) ([]model.BookmarkModule, error) {
	return s.BookmarkRepo.ListByUser(ctx, userID)
}

// Toggle flips the bookmark and reports whether the module is now bookmarked.
func (s *BookmarkService) Toggle(ctx context.Context, userID, moduleID uint) (bool, error) {
	ok, err := s.ModuleRepo.Exists(ctx, moduleID)
	if err != nil {
		return false, err
	}
	if !ok {
		return false, util.ErrModuleNotFound
	}
	return s.BookmarkRepo.Toggle(ctx, userID, moduleID)
}
