package repository

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"fitlink.app/backend/internal/entity"
)

type TrainerRepository interface {
	Create(ctx context.Context, trainer *entity.Trainer) error
	FindByUserID(ctx context.Context, userID uuid.UUID) (*entity.Trainer, error)
	Update(ctx context.Context, trainer *entity.Trainer) error
	DeleteByUserID(ctx context.Context, userID uuid.UUID) error
}

type trainerRepository struct {
	db *gorm.DB
}

func NewTrainerRepository(db *gorm.DB) TrainerRepository {
	return &trainerRepository{db: db}
}

func (r *trainerRepository) Create(ctx context.Context, trainer *entity.Trainer) error {
	return r.db.WithContext(ctx).Create(trainer).Error
}

func (r *trainerRepository) FindByUserID(ctx context.Context, userID uuid.UUID) (*entity.Trainer, error) {
	var trainer entity.Trainer
	if err := r.db.WithContext(ctx).Where("user_id = ?", userID).First(&trainer).Error; err != nil {
		return nil, err
	}
	return &trainer, nil
}

func (r *trainerRepository) Update(ctx context.Context, trainer *entity.Trainer) error {
	return r.db.WithContext(ctx).Save(trainer).Error
}

func (r *trainerRepository) DeleteByUserID(ctx context.Context, userID uuid.UUID) error {
	return r.db.WithContext(ctx).Where("user_id = ?", userID).Delete(&entity.Trainer{}).Error
}
