package repository

import (
	"context"
	"road_scholar_backend/internal/model"
	"road_scholar_backend/internal/util"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type FeedbackRepository struct {
	DB *gorm.DB
}

func NewFeedbackRepository(db *gorm.DB) *FeedbackRepository {
	return &FeedbackRepository{DB: db}
}

func (r *FeedbackRepository) List(ctx context.Context) ([]model.Feedback, error) {
	var feedback []model.Feedback
	err := r.DB.WithContext(ctx).Preload("User").Order("created_at desc, id desc").Find(&feedback).Error
	return feedback, err
}

func (r *FeedbackRepository) FindByID(ctx context.Context, id uint) (*model.Feedback, error) {
	var feedback model.Feedback
	if err := r.DB.WithContext(ctx).Preload("User").First(&feedback, id).Error; err != nil {
		return nil, notFound(err, util.ErrFeedbackNotFound)
	}
	return &feedback, nil
}

func (r *FeedbackRepository) Create(ctx context.Context, feedback *model.Feedback) error {
	return r.DB.WithContext(ctx).Omit(clause.Associations).Create(feedback).Error
}

func (r *FeedbackRepository) Update(ctx context.Context, feedback *model.Feedback) error {
	return r.DB.WithContext(ctx).Omit(clause.Associations).Save(feedback).Error
}

func (r *FeedbackRepository) Delete(ctx context.Context, id uint) error {
	res := r.DB.WithContext(ctx).Delete(&model.Feedback{}, id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return util.ErrFeedbackNotFound
	}
	return nil
}
