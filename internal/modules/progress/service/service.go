package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"fitlink.app/backend/internal/entity"
	"fitlink.app/backend/internal/identity"
	"fitlink.app/backend/internal/modules/progress/dto"
	"fitlink.app/backend/internal/modules/progress/repository"
	"fitlink.app/backend/pkg/apperror"
	pkgdto "fitlink.app/backend/pkg/dto"
)

type Service interface {
	ListProgress(ctx context.Context, id *identity.Identity, p pkgdto.Pagination) ([]entity.BodyMetric, *pkgdto.PaginationMeta, error)
	UpdateProgress(ctx context.Context, entryID uuid.UUID, req dto.UpdateProgressRequest) (*entity.BodyMetric, error)
	DeleteProgress(ctx context.Context, entryID uuid.UUID) error
}

type service struct {
	repo repository.ProgressRepository
}

func NewService(repo repository.ProgressRepository) Service {
	return &service{repo: repo}
}

func (s *service) ListProgress(ctx context.Context, id *identity.Identity, p pkgdto.Pagination) ([]entity.BodyMetric, *pkgdto.PaginationMeta, error) {
	p.Normalize()

	var scope *uuid.UUID
	if id != nil && id.Role == entity.RoleUser {
		scope = &id.UserID
	}

	metrics, total, err := s.repo.FindAll(ctx, scope, p.PageSize, p.Offset())
	if err != nil {
		return nil, nil, err
	}

	meta := pkgdto.NewMeta(p, total)
	return metrics, &meta, nil
}

func (s *service) UpdateProgress(ctx context.Context, entryID uuid.UUID, req dto.UpdateProgressRequest) (*entity.BodyMetric, error) {
	if req.Empty() {
		return nil, fmt.Errorf("no valid fields provided for update: %w", apperror.ErrBadRequest)
	}

	metric, err := s.repo.FindByID(ctx, entryID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("progress entry not found: %w", apperror.ErrNotFound)
		}
		return nil, err
	}

	if req.WeightKg != nil {
		metric.WeightKg = req.WeightKg
	}
	if req.BodyFatPercent != nil {
		metric.BodyFatPercent = req.BodyFatPercent
	}
	if req.MuscleMassKg != nil {
		metric.MuscleMassKg = req.MuscleMassKg
	}
	if req.BMI != nil {
		metric.BMI = req.BMI
	}
	if req.Notes != nil {
		metric.Notes = req.Notes
	}

	if err := s.repo.Update(ctx, metric); err != nil {
		return nil, err
	}
	return metric, nil
}

func (s *service) DeleteProgress(ctx context.Context, entryID uuid.UUID) error {
	if _, err := s.repo.FindByID(ctx, entryID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fmt.Errorf("progress entry not found: %w", apperror.ErrNotFound)
		}
		return err
	}

	return s.repo.Delete(ctx, entryID)
}
