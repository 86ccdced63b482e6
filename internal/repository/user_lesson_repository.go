package repository

import (
	"context"
	"road_scholar_backend/internal/model"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type UserLessonRepository struct {
	DB *gorm.DB
}

func NewUserLessonRepository(db *gorm.DB) *UserLessonRepository {
	return &UserLessonRepository{DB: db}
}

// Track adds seconds to the (user, lesson) row, creating it on first view.
// The insert and the increment are one statement against the unique index.
func (r *UserLessonRepository) Track(ctx context.Context, userID, lessonID, moduleID uint, seconds int) (*model.UserLesson, error) {
	db := r.DB.WithContext(ctx)
	now := time.Now()

	row := model.UserLesson{
		UserID:    userID,
		LessonID:  lessonID,
		ModuleID:  moduleID,
		Duration:  seconds,
		CreatedAt: now,
		UpdatedAt: now,
	}
	err := db.Clauses(clause.OnConflict{
		Columns: []clause.Column{{Name: "user_id"}, {Name: "lesson_id"}},
		DoUpdates: clause.Assignments(map[string]interface{}{
			"duration":   gorm.Expr("user_lessons.duration + ?", seconds),
			"module_id":  moduleID,
			"updated_at": now,
		}),
	}).Create(&row).Error
	if err != nil {
		return nil, err
	}

	var saved model.UserLesson
	if err := db.Where("user_id = ? AND lesson_id = ?", userID, lessonID).First(&saved).Error; err != nil {
		return nil, err
	}
	return &saved, nil
}

// CountViewed counts the distinct live lessons a user has opened.
func (r *UserLessonRepository) CountViewed(ctx context.Context, userID uint) (int64, error) {
	var count int64
	err := r.DB.WithContext(ctx).Model(&model.UserLesson{}).
		Joins("JOIN lessons ON lessons.id = user_lessons.lesson_id AND lessons.deleted_at IS NULL").
		Joins("JOIN modules ON modules.id = lessons.module_id AND modules.deleted_at IS NULL").
		Where("user_lessons.user_id = ?", userID).
		Distinct("user_lessons.lesson_id").
		Count(&count).Error
	return count, err
}

// SumDuration totals the tracked seconds of a user.
func (r *UserLessonRepository) SumDuration(ctx context.Context, userID uint) (int64, error) {
	var total int64
	err := r.DB.WithContext(ctx).Model(&model.UserLesson{}).
		Select("COALESCE(SUM(duration), 0)").
		Where("user_id = ?", userID).
		Scan(&total).Error
	return total, err
}

// ViewedByModule maps module id to the number of distinct lessons the user opened in it.
func (r *UserLessonRepository) ViewedByModule(ctx context.Context, userID uint) (map[uint]int64, error) {
	var rows []struct {
		ModuleID uint
		Viewed   int64
	}
	err := r.DB.WithContext(ctx).Model(&model.UserLesson{}).
		Select("lessons.module_id AS module_id, COUNT(DISTINCT user_lessons.lesson_id) AS viewed").
		Joins("JOIN lessons ON lessons.id = user_lessons.lesson_id AND lessons.deleted_at IS NULL").
		Where("user_lessons.user_id = ?", userID).
		Group("lessons.module_id").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}

	out := make(map[uint]int64, len(rows))
	for _, row := range rows {
		out[row.ModuleID] = row.Viewed
	}
	return out, nil
}
