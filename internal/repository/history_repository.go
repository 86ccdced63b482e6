package repository

import (
	"context"
	"road_scholar_backend/internal/model"
	"road_scholar_backend/internal/util"

	"gorm.io/gorm"
)

type HistoryRepository struct {
	DB *gorm.DB
}

func NewHistoryRepository(db *gorm.DB) *HistoryRepository {
	return &HistoryRepository{DB: db}
}

// ListByUser returns a user's attempts, newest first.
func (r *HistoryRepository) ListByUser(ctx context.Context, userID uint) ([]model.ActivityHistory, error) {
	var history []model.ActivityHistory
	err := r.DB.WithContext(ctx).
		Preload("Activity").
		Where("user_id = ?", userID).
		Order("created_at desc, id desc").
		Find(&history).Error
	return history, err
}

func (r *HistoryRepository) FindByID(ctx context.Context, id uint) (*model.ActivityHistory, error) {
	var history model.ActivityHistory
	if err := r.DB.WithContext(ctx).Preload("Activity").First(&history, id).Error; err != nil {
		return nil, notFound(err, util.ErrHistoryNotFound)
	}
	return &history, nil
}

func (r *HistoryRepository) Update(ctx context.Context, id uint, fields map[string]interface{}) error {
	return r.DB.WithContext(ctx).Model(&model.ActivityHistory{}).Where("id = ?", id).Updates(fields).Error
}

func (r *HistoryRepository) Delete(ctx context.Context, id uint) error {
	res := r.DB.WithContext(ctx).Delete(&model.ActivityHistory{}, id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return util.ErrHistoryNotFound
	}
	return nil
}

// LeaderboardRows sums, per user, the score of the latest attempt at each activity.
// Rows come back ranked: highest total first, ties by lower user id.
func (r *HistoryRepository) LeaderboardRows(ctx context.Context) ([]model.LeaderboardRow, error) {
	db := r.DB.WithContext(ctx)
	latest := db.Model(&model.ActivityHistory{}).
		Select("MAX(id)").
		Group("user_id, activity_id")

	var rows []model.LeaderboardRow
	err := db.Model(&model.ActivityHistory{}).
		Select("user_id, SUM(score) AS total_score").
		Where("id IN (?)", latest).
		Group("user_id").
		Order("total_score desc, user_id asc").
		Scan(&rows).Error
	return rows, err
}

// MaxScores maps activity id to the user's best score on it.
func (r *HistoryRepository) MaxScores(ctx context.Context, userID uint) (map[uint]int, error) {
	var rows []struct {
		ActivityID uint
		MaxScore   int
	}
	err := r.DB.WithContext(ctx).Model(&model.ActivityHistory{}).
		Select("activity_id, MAX(score) AS max_score").
		Where("user_id = ?", userID).
		Group("activity_id").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}

	out := make(map[uint]int, len(rows))
	for _, row := range rows {
		out[row.ActivityID] = row.MaxScore
	}
	return out, nil
}
