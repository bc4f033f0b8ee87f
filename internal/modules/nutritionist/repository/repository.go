package repository

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"fitlink.app/backend/internal/entity"
)

type NutritionistRepository interface {
	Create(ctx context.Context, nutritionist *entity.Nutritionist) error
	FindByUserID(ctx context.Context, userID uuid.UUID) (*entity.Nutritionist, error)
	Update(ctx context.Context, nutritionist *entity.Nutritionist) error
	DeleteByUserID(ctx context.Context, userID uuid.UUID) error
}

type nutritionistRepository struct {
	db *gorm.DB
}

func NewNutritionistRepository(db *gorm.DB) NutritionistRepository {
	return &nutritionistRepository{db: db}
}

func (r *nutritionistRepository) Create(ctx context.Context, nutritionist *entity.Nutritionist) error {
	return r.db.WithContext(ctx).Create(nutritionist).Error
}

func (r *nutritionistRepository) FindByUserID(ctx context.Context, userID uuid.UUID) (*entity.Nutritionist, error) {
	var nutritionist entity.Nutritionist
	if err := r.db.WithContext(ctx).Where("user_id = ?", userID).First(&nutritionist).Error; err != nil {
		return nil, err
	}
	return &nutritionist, nil
}

func (r *nutritionistRepository) Update(ctx context.Context, nutritionist *entity.Nutritionist) error {
	return r.db.WithContext(ctx).Save(nutritionist).Error
}

func (r *nutritionistRepository) DeleteByUserID(ctx context.Context, userID uuid.UUID) error {
	return r.db.WithContext(ctx).Where("user_id = ?", userID).Delete(&entity.Nutritionist{}).Error
}
