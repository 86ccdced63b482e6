package repository

import (
	"context"
	"road_scholar_backend/internal/model"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// AttemptRepository persists a graded quiz attempt.
type AttemptRepository struct {
	DB *gorm.DB
}

func NewAttemptRepository(db *gorm.DB) *AttemptRepository {
	return &AttemptRepository{DB: db}
}

// Save writes every answer and then the history row in one transaction.
// Nothing is kept if any insert fails.
func (r *AttemptRepository) Save(ctx context.Context, answers []model.UserAnswer, history *model.ActivityHistory) error {
	return r.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		for i := range answers {
			if err := tx.Create(&answers[i]).Error; err != nil {
				return err
			}
		}
		return tx.Omit(clause.Associations).Create(history).Error
	})
}
