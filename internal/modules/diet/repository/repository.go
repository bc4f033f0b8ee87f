package repository

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"fitlink.app/backend/internal/entity"
)

type DietRepository interface {
	Create(ctx context.Context, plan *entity.DietPlan) error
	FindByID(ctx context.Context, id uuid.UUID) (*entity.DietPlan, error)
	FindAll(ctx context.Context, userID *uuid.UUID, limit, offset int) ([]entity.DietPlan, int64, error)
	Update(ctx context.Context, plan *entity.DietPlan) error
	Delete(ctx context.Context, id uuid.UUID) error
	CountByNutritionistID(ctx context.Context, nutritionistID uuid.UUID, activeOnly bool) (int64, error)
}

type dietRepository struct {
	db *gorm.DB
}

func NewDietRepository(db *gorm.DB) DietRepository {
	return &dietRepository{db: db}
}

func (r *dietRepository) Create(ctx context.Context, plan *entity.DietPlan) error {
	return r.db.WithContext(ctx).Create(plan).Error
}

func (r *dietRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.DietPlan, error) {
	var plan entity.DietPlan
	err := r.db.WithContext(ctx).Preload("Nutritionist").First(&plan, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &plan, nil
}

func (r *dietRepository) FindAll(ctx context.Context, userID *uuid.UUID, limit, offset int) ([]entity.DietPlan, int64, error) {
	var plans []entity.DietPlan
	var total int64

	query := r.db.WithContext(ctx).Model(&entity.DietPlan{})
	if userID != nil {
		query = query.Where("user_id = ?", *userID)
	}

	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	err := query.Order("updated_at DESC").Limit(limit).Offset(offset).Find(&plans).Error
	if err != nil {
		return nil, 0, err
	}

	return plans, total, nil
}

func (r *dietRepository) Update(ctx context.Context, plan *entity.DietPlan) error {
	return r.db.WithContext(ctx).Save(plan).Error
}

func (r *dietRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Delete(&entity.DietPlan{}, "id = ?", id).Error
}

func (r *dietRepository) CountByNutritionistID(ctx context.Context, nutritionistID uuid.UUID, activeOnly bool) (int64, error) {
	var count int64
	query := r.db.WithContext(ctx).Model(&entity.DietPlan{}).Where("nutritionist_id = ?", nutritionistID)
	if activeOnly {
		query = query.Where("is_active = ?", true)
	}
	err := query.Count(&count).Error
	return count, err
}
