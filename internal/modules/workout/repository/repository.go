package repository

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"fitlink.app/backend/internal/entity"
)

type WorkoutRepository interface {
	Create(ctx context.Context, plan *entity.WorkoutPlan) error
	FindByID(ctx context.Context, id uuid.UUID) (*entity.WorkoutPlan, error)
	FindAll(ctx context.Context, userID *uuid.UUID, limit, offset int) ([]entity.WorkoutPlan, int64, error)
	Update(ctx context.Context, plan *entity.WorkoutPlan) error
	Delete(ctx context.Context, id uuid.UUID) error
	CountByTrainerID(ctx context.Context, trainerID uuid.UUID, activeOnly bool) (int64, error)
}

type workoutRepository struct {
	db *gorm.DB
}

func NewWorkoutRepository(db *gorm.DB) WorkoutRepository {
	return &workoutRepository{db: db}
}

func (r *workoutRepository) Create(ctx context.Context, plan *entity.WorkoutPlan) error {
	return r.db.WithContext(ctx).Create(plan).Error
}

func (r *workoutRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.WorkoutPlan, error) {
	var plan entity.WorkoutPlan
	err := r.db.WithContext(ctx).Preload("Trainer").First(&plan, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &plan, nil
}

// FindAll returns plans newest-updated first, optionally scoped to the
// plan's target user.
func (r *workoutRepository) FindAll(ctx context.Context, userID *uuid.UUID, limit, offset int) ([]entity.WorkoutPlan, int64, error) {
	var plans []entity.WorkoutPlan
	var total int64

	query := r.db.WithContext(ctx).Model(&entity.WorkoutPlan{})
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

func (r *workoutRepository) Update(ctx context.Context, plan *entity.WorkoutPlan) error {
	return r.db.WithContext(ctx).Save(plan).Error
}

func (r *workoutRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Delete(&entity.WorkoutPlan{}, "id = ?", id).Error
}

func (r *workoutRepository) CountByTrainerID(ctx context.Context, trainerID uuid.UUID, activeOnly bool) (int64, error) {
	var count int64
	query := r.db.WithContext(ctx).Model(&entity.WorkoutPlan{}).Where("trainer_id = ?", trainerID)
	if activeOnly {
		query = query.Where("is_active = ?", true)
	}
	err := query.Count(&count).Error
	return count, err
}
