package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"fitlink.app/backend/internal/entity"
	"fitlink.app/backend/internal/identity"
	"fitlink.app/backend/internal/modules/subscription/dto"
	"fitlink.app/backend/internal/modules/subscription/repository"
	"fitlink.app/backend/pkg/apperror"
	pkgdto "fitlink.app/backend/pkg/dto"
)

type Service interface {
	ListSubscriptions(ctx context.Context, id *identity.Identity, p pkgdto.Pagination) ([]entity.Subscription, *pkgdto.PaginationMeta, error)
	UpdateSubscription(ctx context.Context, subID uuid.UUID, req dto.UpdateSubscriptionRequest) (*entity.Subscription, error)
	DeleteSubscription(ctx context.Context, subID uuid.UUID) error
}

type service struct {
	repo repository.SubscriptionRepository
}

func NewService(repo repository.SubscriptionRepository) Service {
	return &service{repo: repo}
}

func (s *service) ListSubscriptions(ctx context.Context, id *identity.Identity, p pkgdto.Pagination) ([]entity.Subscription, *pkgdto.PaginationMeta, error) {
	p.Normalize()

	var scope *uuid.UUID
	if id != nil && id.Role == entity.RoleUser {
		scope = &id.UserID
	}

	subs, total, err := s.repo.FindAll(ctx, scope, p.PageSize, p.Offset())
	if err != nil {
		return nil, nil, err
	}

	meta := pkgdto.NewMeta(p, total)
	return subs, &meta, nil
}

// UpdateSubscription allows any status transition; billing state is an
// administrative concern here, not a workflow.
func (s *service) UpdateSubscription(ctx context.Context, subID uuid.UUID, req dto.UpdateSubscriptionRequest) (*entity.Subscription, error) {
	if req.Empty() {
		return nil, fmt.Errorf("no valid fields provided for update: %w", apperror.ErrBadRequest)
	}

	sub, err := s.repo.FindByID(ctx, subID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("subscription not found: %w", apperror.ErrNotFound)
		}
		return nil, err
	}

	if req.PlanName != nil {
		sub.PlanName = *req.PlanName
	}
	if req.Status != nil {
		sub.Status = entity.SubscriptionStatus(*req.Status)
	}

	if err := s.repo.Update(ctx, sub); err != nil {
		return nil, err
	}
	return sub, nil
}

func (s *service) DeleteSubscription(ctx context.Context, subID uuid.UUID) error {
	if _, err := s.repo.FindByID(ctx, subID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fmt.Errorf("subscription not found: %w", apperror.ErrNotFound)
		}
		return err
	}

	return s.repo.Delete(ctx, subID)
}
