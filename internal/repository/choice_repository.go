package repository

import (
	"context"
	"road_scholar_backend/internal/model"
	"road_scholar_backend/internal/util"

	"gorm.io/gorm"
)

type ChoiceRepository struct {
	DB *gorm.DB
}

func NewChoiceRepository(db *gorm.DB) *ChoiceRepository {
	return &ChoiceRepository{DB: db}
}

func (r *ChoiceRepository) List(ctx context.Context) ([]model.Choice, error) {
	var choices []model.Choice
	err := r.DB.WithContext(ctx).Order("id asc").Find(&choices).Error
	return choices, err
}

func (r *ChoiceRepository) FindByID(ctx context.Context, id uint) (*model.Choice, error) {
	var choice model.Choice
	if err := r.DB.WithContext(ctx).First(&choice, id).Error; err != nil {
		return nil, notFound(err, util.ErrChoiceNotFound)
	}
	return &choice, nil
}

func (r *ChoiceRepository) Create(ctx context.Context, choice *model.Choice) error {
	return r.DB.WithContext(ctx).Create(choice).Error
}

func (r *ChoiceRepository) Update(ctx context.Context, choice *model.Choice) error {
	return r.DB.WithContext(ctx).Save(choice).Error
}

func (r *ChoiceRepository) Delete(ctx context.Context, id uint) error {
	res := r.DB.WithContext(ctx).Delete(&model.Choice{}, id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return util.ErrChoiceNotFound
	}
	return nil
}
