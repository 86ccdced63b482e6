package repository

import (
	"context"
	"road_scholar_backend/internal/model"
	"road_scholar_backend/internal/util"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type ModuleRepository struct {
	DB *gorm.DB
}

func NewModuleRepository(db *gorm.DB) *ModuleRepository {
	return &ModuleRepository{DB: db}
}

func (r *ModuleRepository) List(ctx context.Context) ([]model.Module, error) {
	var modules []model.Module
	err := r.DB.WithContext(ctx).Preload("Lessons").Order("id asc").Find(&modules).Error
	return modules, err
}

func (r *ModuleRepository) FindByID(ctx context.Context, id uint) (*model.Module, error) {
	var module model.Module
	if err := r.DB.WithContext(ctx).Preload("Lessons").First(&module, id).Error; err != nil {
		return nil, notFound(err, util.ErrModuleNotFound)
	}
	return &module, nil
}

func (r *ModuleRepository) Exists(ctx context.Context, id uint) (bool, error) {
	var count int64
	err := r.DB.WithContext(ctx).Model(&model.Module{}).Where("id = ?", id).Count(&count).Error
	return count > 0, err
}

func (r *ModuleRepository) IDs(ctx context.Context) ([]uint, error) {
	var ids []uint
	err := r.DB.WithContext(ctx).Model(&model.Module{}).Order("id asc").Pluck("id", &ids).Error
	return ids, err
}

func (r *ModuleRepository) Create(ctx context.Context, module *model.Module) error {
	return r.DB.WithContext(ctx).Create(module).Error
}

func (r *ModuleRepository) Update(ctx context.Context, module *model.Module) error {
	return r.DB.WithContext(ctx).Omit(clause.Associations).Save(module).Error
}

func (r *ModuleRepository) Delete(ctx context.Context, id uint) error {
	res := r.DB.WithContext(ctx).Delete(&model.Module{}, id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return util.ErrModuleNotFound
	}
	return nil
}

// LessonCounts returns the number of live lessons per module id.
func (r *ModuleRepository) LessonCounts(ctx context.Context) (map[uint]int64, error) {
	var rows []struct {
		ModuleID uint
		Total    int64
	}
	err := r.DB.WithContext(ctx).Model(&model.Lesson{}).
		Select("module_id, COUNT(*) AS total").
		Group("module_id").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}

	counts := make(map[uint]int64, len(rows))
	for _, row := range rows {
		counts[row.ModuleID] = row.Total
	}
	return counts, nil
}
