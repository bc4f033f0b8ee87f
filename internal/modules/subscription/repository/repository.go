package repository

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"fitlink.app/backend/internal/entity"
)

type SubscriptionRepository interface {
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Subscription, error)
	FindAll(ctx context.Context, userID *uuid.UUID, limit, offset int) ([]entity.Subscription, int64, error)
	Update(ctx context.Context, sub *entity.Subscription) error
	Delete(ctx context.Context, id uuid.UUID) error
}

type subscriptionRepository struct {
	db *gorm.DB
}

func NewSubscriptionRepository(db *gorm.DB) SubscriptionRepository {
	return &subscriptionRepository{db: db}
}

func (r *subscriptionRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Subscription, error) {
	var sub entity.Subscription
	err := r.db.WithContext(ctx).First(&sub, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &sub, nil
}

func (r *subscriptionRepository) FindAll(ctx context.Context, userID *uuid.UUID, limit, offset int) ([]entity.Subscription, int64, error) {
	var subs []entity.Subscription
	var total int64

	query := r.db.WithContext(ctx).Model(&entity.Subscription{})
	if userID != nil {
		query = query.Where("user_id = ?", *userID)
	}

	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	err := query.Order("updated_at DESC").Limit(limit).Offset(offset).Find(&subs).Error
	if err != nil {
		return nil, 0, err
	}

	return subs, total, nil
}

func (r *subscriptionRepository) Update(ctx context.Context, sub *entity.Subscription) error {
	return r.db.WithContext(ctx).Save(sub).Error
}

func (r *subscriptionRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Delete(&entity.Subscription{}, "id = ?", id).Error
}
