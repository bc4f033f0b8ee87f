package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"fitlink.app/backend/internal/entity"
	dietRepo "fitlink.app/backend/internal/modules/diet/repository"
	"fitlink.app/backend/internal/modules/nutritionist/dto"
	"fitlink.app/backend/internal/modules/nutritionist/repository"
	"fitlink.app/backend/pkg/apperror"
)

type Service interface {
	GetProfile(ctx context.Context, userID uuid.UUID) (*entity.Nutritionist, error)
	UpdateProfile(ctx context.Context, userID uuid.UUID, req dto.UpdateNutritionistProfileRequest) (*entity.Nutritionist, error)
	DeleteProfile(ctx context.Context, userID uuid.UUID) error
	GetDashboard(ctx context.Context, userID uuid.UUID) (*dto.NutritionistDashboardResponse, error)
}

type service struct {
	repo  repository.NutritionistRepository
	diets dietRepo.DietRepository
}

func NewService(repo repository.NutritionistRepository, diets dietRepo.DietRepository) Service {
	return &service{repo: repo, diets: diets}
}

func (s *service) GetProfile(ctx context.Context, userID uuid.UUID) (*entity.Nutritionist, error) {
	nutritionist, err := s.repo.FindByUserID(ctx, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("nutritionist profile not found: %w", apperror.ErrNotFound)
		}
		return nil, err
	}
	return nutritionist, nil
}

// UpdateProfile upserts the caller's nutritionist profile. A fresh
// profile cannot be created without the registration number.
func (s *service) UpdateProfile(ctx context.Context, userID uuid.UUID, req dto.UpdateNutritionistProfileRequest) (*entity.Nutritionist, error) {
	if req.Empty() {
		return nil, fmt.Errorf("no valid fields provided for update: %w", apperror.ErrBadRequest)
	}

	nutritionist, err := s.repo.FindByUserID(ctx, userID)
	if err != nil {
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, err
		}

		if reg := req.Registration(); reg == nil || *reg == "" {
			return nil, fmt.Errorf("professional registration is required: %w", apperror.ErrBadRequest)
		}

		nutritionist = &entity.Nutritionist{UserID: userID}
		applyNutritionistUpdate(nutritionist, req)
		if err := s.repo.Create(ctx, nutritionist); err != nil {
			return nil, err
		}
		return nutritionist, nil
	}

	applyNutritionistUpdate(nutritionist, req)
	if err := s.repo.Update(ctx, nutritionist); err != nil {
		return nil, err
	}
	return nutritionist, nil
}

func (s *service) DeleteProfile(ctx context.Context, userID uuid.UUID) error {
	if _, err := s.repo.FindByUserID(ctx, userID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fmt.Errorf("nutritionist profile not found: %w", apperror.ErrNotFound)
		}
		return err
	}

	return s.repo.DeleteByUserID(ctx, userID)
}

func (s *service) GetDashboard(ctx context.Context, userID uuid.UUID) (*dto.NutritionistDashboardResponse, error) {
	nutritionist, err := s.GetProfile(ctx, userID)
	if err != nil {
		return nil, err
	}

	total, err := s.diets.CountByNutritionistID(ctx, nutritionist.ID, false)
	if err != nil {
		return nil, err
	}
	active, err := s.diets.CountByNutritionistID(ctx, nutritionist.ID, true)
	if err != nil {
		return nil, err
	}

	return &dto.NutritionistDashboardResponse{
		Profile:     nutritionist,
		TotalPlans:  total,
		ActivePlans: active,
	}, nil
}

func applyNutritionistUpdate(nutritionist *entity.Nutritionist, req dto.UpdateNutritionistProfileRequest) {
	if reg := req.Registration(); reg != nil {
		nutritionist.ProfessionalRegistration = reg
	}
	if req.Bio != nil {
		nutritionist.Bio = req.Bio
	}
	if req.YearsExperience != nil {
		nutritionist.YearsExperience = req.YearsExperience
	}
	if req.Approved != nil {
		nutritionist.Approved = *req.Approved
	}
}
