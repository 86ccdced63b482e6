package repository

import (
	"context"
	"errors"
	"road_scholar_backend/internal/model"

	"gorm.io/gorm"
)

type BookmarkRepository struct {
	DB *gorm.DB
}

func NewBookmarkRepository(db *gorm.DB) *BookmarkRepository {
	return &BookmarkRepository{DB: db}
}

func (r *BookmarkRepository) ListByUser(ctx context.Context, userID uint) ([]model.BookmarkModule, error) {
	var bookmarks []model.BookmarkModule
	err := r.DB.WithContext(ctx).
		Preload("Module").
		Where("user_id = ?", userID).
		Order("created_at desc, id desc").
		Find(&bookmarks).Error
	return bookmarks, err
}

// Toggle removes the bookmark if present, otherwise adds it.
// It reports whether the module is bookmarked afterwards.
func (r *BookmarkRepository) Toggle(ctx context.Context, userID, moduleID uint) (bool, error) {
	var bookmarked bool
	err := r.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var existing model.BookmarkModule
		err := tx.Where("user_id = ? AND module_id = ?", userID, moduleID).First(&existing).Error
		switch {
		case err == nil:
			bookmarked = false
			return tx.Delete(&existing).Error
		case errors.Is(err, gorm.ErrRecordNotFound):
			bookmarked = true
			return tx.Create(&model.BookmarkModule{UserID: userID, ModuleID: moduleID}).Error
		default:
			return err
		}
	})
	return bookmarked, err
}

// ModuleIDs returns the set of modules a user has bookmarked.
func (r *BookmarkRepository) ModuleIDs(ctx context.Context, userID uint) (map[uint]bool, error) {
	var ids []uint
	err := r.DB.WithContext(ctx).Model(&model.BookmarkModule{}).
		Where("user_id = ?", userID).
		Pluck("module_id", &ids).Error
	if err != nil {
		return nil, err
	}

	set := make(map[uint]bool, len(ids))
	for _, id := range ids {
		set[id] = true
	}
	return set, nil
}
