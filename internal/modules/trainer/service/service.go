package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"fitlink.app/backend/internal/entity"
	"fitlink.app/backend/internal/modules/trainer/dto"
	"fitlink.app/backend/internal/modules/trainer/repository"
	workoutRepo "fitlink.app/backend/internal/modules/workout/repository"
	"fitlink.app/backend/pkg/apperror"
)

type Service interface {
	GetProfile(ctx context.Context, userID uuid.UUID) (*entity.Trainer, error)
	UpdateProfile(ctx context.Context, userID uuid.UUID, req dto.UpdateTrainerProfileRequest) (*entity.Trainer, error)
	DeleteProfile(ctx context.Context, userID uuid.UUID) error
	GetDashboard(ctx context.Context, userID uuid.UUID) (*dto.TrainerDashboardResponse, error)
}

type service struct {
	repo     repository.TrainerRepository
	workouts workoutRepo.WorkoutRepository
}

func NewService(repo repository.TrainerRepository, workouts workoutRepo.WorkoutRepository) Service {
	return &service{repo: repo, workouts: workouts}
}

func (s *service) GetProfile(ctx context.Context, userID uuid.UUID) (*entity.Trainer, error) {
	trainer, err := s.repo.FindByUserID(ctx, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("trainer profile not found: %w", apperror.ErrNotFound)
		}
		return nil, err
	}
	return trainer, nil
}

// UpdateProfile upserts the caller's trainer profile. Updating an
// existing profile never requires the registration number; creating a
// fresh one without it is rejected.
func (s *service) UpdateProfile(ctx context.Context, userID uuid.UUID, req dto.UpdateTrainerProfileRequest) (*entity.Trainer, error) {
	if req.Empty() {
		return nil, fmt.Errorf("no valid fields provided for update: %w", apperror.ErrBadRequest)
	}

	trainer, err := s.repo.FindByUserID(ctx, userID)
	if err != nil {
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, err
		}

		if reg := req.Registration(); reg == nil || *reg == "" {
			return nil, fmt.Errorf("professional registration is required: %w", apperror.ErrBadRequest)
		}

		trainer = &entity.Trainer{UserID: userID}
		applyTrainerUpdate(trainer, req)
		if err := s.repo.Create(ctx, trainer); err != nil {
			return nil, err
		}
		return trainer, nil
	}

	applyTrainerUpdate(trainer, req)
	if err := s.repo.Update(ctx, trainer); err != nil {
		return nil, err
	}
	return trainer, nil
}

func (s *service) DeleteProfile(ctx context.Context, userID uuid.UUID) error {
	if _, err := s.repo.FindByUserID(ctx, userID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fmt.Errorf("trainer profile not found: %w", apperror.ErrNotFound)
		}
		return err
	}

	return s.repo.DeleteByUserID(ctx, userID)
}

func (s *service) GetDashboard(ctx context.Context, userID uuid.UUID) (*dto.TrainerDashboardResponse, error) {
	trainer, err := s.GetProfile(ctx, userID)
	if err != nil {
		return nil, err
	}

	total, err := s.workouts.CountByTrainerID(ctx, trainer.ID, false)
	if err != nil {
		return nil, err
	}
	active, err := s.workouts.CountByTrainerID(ctx, trainer.ID, true)
	if err != nil {
		return nil, err
	}

	return &dto.TrainerDashboardResponse{
		Profile:     trainer,
		TotalPlans:  total,
		ActivePlans: active,
	}, nil
}

func applyTrainerUpdate(trainer *entity.Trainer, req dto.UpdateTrainerProfileRequest) {
	if reg := req.Registration(); reg != nil {
		trainer.ProfessionalRegistration = reg
	}
	if req.Bio != nil {
		trainer.Bio = req.Bio
	}
	if req.YearsExperience != nil {
		trainer.YearsExperience = req.YearsExperience
	}
	if req.Approved != nil {
		trainer.Approved = *req.Approved
	}
}
