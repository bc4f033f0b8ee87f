package repository

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"fitlink.app/backend/internal/entity"
)

type ProgressRepository interface {
	FindByID(ctx context.Context, id uuid.UUID) (*entity.BodyMetric, error)
	FindAll(ctx context.Context, userID *uuid.UUID, limit, offset int) ([]entity.BodyMetric, int64, error)
	Update(ctx context.Context, metric *entity.BodyMetric) error
	Delete(ctx context.Context, id uuid.UUID) error
}

type progressRepository struct {
	db *gorm.DB
}

func NewProgressRepository(db *gorm.DB) ProgressRepository {
	return &progressRepository{db: db}
}

func (r *progressRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.BodyMetric, error) {
	var metric entity.BodyMetric
	err := r.db.WithContext(ctx).First(&metric, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &metric, nil
}

// FindAll returns entries newest measurement first.
func (r *progressRepository) FindAll(ctx context.Context, userID *uuid.UUID, limit, offset int) ([]entity.BodyMetric, int64, error) {
	var metrics []entity.BodyMetric
	var total int64

	query := r.db.WithContext(ctx).Model(&entity.BodyMetric{})
	if userID != nil {
		query = query.Where("user_id = ?", *userID)
	}

	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	err := query.Order("measured_at DESC").Limit(limit).Offset(offset).Find(&metrics).Error
	if err != nil {
		return nil, 0, err
	}

	return metrics, total, nil
}

func (r *progressRepository) Update(ctx context.Context, metric *entity.BodyMetric) error {
	return r.db.WithContext(ctx).Save(metric).Error
}

func (r *progressRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Delete(&entity.BodyMetric{}, "id = ?", id).Error
}
