package repository

import (
	"context"
	"road_scholar_backend/internal/model"
	"road_scholar_backend/internal/util"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type ActivityRepository struct {
	DB *gorm.DB
}

func NewActivityRepository(db *gorm.DB) *ActivityRepository {
	return &ActivityRepository{DB: db}
}

func (r *ActivityRepository) List(ctx context.Context) ([]model.Activity, error) {
	var activities []model.Activity
	err := r.DB.WithContext(ctx).Preload("Module").Order("id asc").Find(&activities).Error
	return activities, err
}

func (r *ActivityRepository) FindByID(ctx context.Context, id uint) (*model.Activity, error) {
	var activity model.Activity
	if err := r.DB.WithContext(ctx).Preload("Module").First(&activity, id).Error; err != nil {
		return nil, notFound(err, util.ErrActivityNotFound)
	}
	return &activity, nil
}

func (r *ActivityRepository) Exists(ctx context.Context, id uint) (bool, error) {
	var count int64
	err := r.DB.WithContext(ctx).Model(&model.Activity{}).Where("id = ?", id).Count(&count).Error
	return count > 0, err
}

func (r *ActivityRepository) IDs(ctx context.Context) ([]uint, error) {
	var ids []uint
	err := r.DB.WithContext(ctx).Model(&model.Activity{}).Order("id asc").Pluck("id", &ids).Error
	return ids, err
}

func (r *ActivityRepository) Create(ctx context.Context, activity *model.Activity) error {
	return r.DB.WithContext(ctx).Omit(clause.Associations).Create(activity).Error
}

func (r *ActivityRepository) Update(ctx context.Context, activity *model.Activity) error {
	return r.DB.WithContext(ctx).Omit(clause.Associations).Save(activity).Error
}

func (r *ActivityRepository) Delete(ctx context.Context, id uint) error {
	res := r.DB.WithContext(ctx).Delete(&model.Activity{}, id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return util.ErrActivityNotFound
	}
	return nil
}
