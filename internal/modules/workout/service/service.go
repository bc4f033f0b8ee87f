package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"fitlink.app/backend/internal/entity"
	"fitlink.app/backend/internal/identity"
	trainerRepo "fitlink.app/backend/internal/modules/trainer/repository"
	userRepo "fitlink.app/backend/internal/modules/user/repository"
	"fitlink.app/backend/internal/modules/workout/dto"
	"fitlink.app/backend/internal/modules/workout/repository"
	"fitlink.app/backend/pkg/apperror"
	pkgdto "fitlink.app/backend/pkg/dto"
)

type Service interface {
	ListWorkouts(ctx context.Context, id *identity.Identity, p pkgdto.Pagination) ([]entity.WorkoutPlan, *pkgdto.PaginationMeta, error)
	GetWorkout(ctx context.Context, planID uuid.UUID) (*entity.WorkoutPlan, error)
	CreateWorkout(ctx context.Context, id identity.Identity, req dto.CreateWorkoutRequest) (*entity.WorkoutPlan, error)
	UpdateWorkout(ctx context.Context, id identity.Identity, planID uuid.UUID, req dto.UpdateWorkoutRequest) (*entity.WorkoutPlan, error)
	DeleteWorkout(ctx context.Context, id identity.Identity, planID uuid.UUID) error
}

type service struct {
	repo     repository.WorkoutRepository
	trainers trainerRepo.TrainerRepository
	users    userRepo.UserRepository
}

func NewService(repo repository.WorkoutRepository, trainers trainerRepo.TrainerRepository, users userRepo.UserRepository) Service {
	return &service{repo: repo, trainers: trainers, users: users}
}

// ListWorkouts scopes the listing to the caller's own plans when the
// caller holds the USER role. Professionals, admins and anonymous
// callers see everything.
func (s *service) ListWorkouts(ctx context.Context, id *identity.Identity, p pkgdto.Pagination) ([]entity.WorkoutPlan, *pkgdto.PaginationMeta, error) {
	p.Normalize()

	var scope *uuid.UUID
	if id != nil && id.Role == entity.RoleUser {
		scope = &id.UserID
	}

	plans, total, err := s.repo.FindAll(ctx, scope, p.PageSize, p.Offset())
	if err != nil {
		return nil, nil, err
	}

	meta := pkgdto.NewMeta(p, total)
	return plans, &meta, nil
}

func (s *service) GetWorkout(ctx context.Context, planID uuid.UUID) (*entity.WorkoutPlan, error) {
	plan, err := s.repo.FindByID(ctx, planID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("workout plan not found: %w", apperror.ErrNotFound)
		}
		return nil, err
	}
	return plan, nil
}

func (s *service) CreateWorkout(ctx context.Context, id identity.Identity, req dto.CreateWorkoutRequest) (*entity.WorkoutPlan, error) {
	trainer, err := s.trainers.FindByUserID(ctx, id.UserID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("trainer profile required: %w", apperror.ErrForbidden)
		}
		return nil, err
	}
	if !trainer.HasRegistration() {
		return nil, fmt.Errorf("professional registration is required before creating plans: %w", apperror.ErrBadRequest)
	}

	targetID := id.UserID
	if req.UserID != nil {
		if _, err := s.users.FindByID(ctx, *req.UserID); err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, fmt.Errorf("target user not found: %w", apperror.ErrNotFound)
			}
			return nil, err
		}
		targetID = *req.UserID
	}

	plan := &entity.WorkoutPlan{
		TrainerID:   trainer.ID,
		UserID:      targetID,
		Title:       req.Title,
		Description: req.Description,
		IsActive:    true,
	}
	if req.IsActive != nil {
		plan.IsActive = *req.IsActive
	}

	if err := s.repo.Create(ctx, plan); err != nil {
		return nil, err
	}
	return plan, nil
}

func (s *service) UpdateWorkout(ctx context.Context, id identity.Identity, planID uuid.UUID, req dto.UpdateWorkoutRequest) (*entity.WorkoutPlan, error) {
	if req.Empty() {
		return nil, fmt.Errorf("no valid fields provided for update: %w", apperror.ErrBadRequest)
	}

	plan, err := s.GetWorkout(ctx, planID)
	if err != nil {
		return nil, err
	}

	if !s.canModify(id, plan) {
		return nil, fmt.Errorf("you are not allowed to modify this workout: %w", apperror.ErrForbidden)
	}

	if req.Title != nil {
		plan.Title = *req.Title
	}
	if req.Description != nil {
		plan.Description = req.Description
	}
	if req.IsActive != nil {
		plan.IsActive = *req.IsActive
	}
	if req.UserID != nil {
		if _, err := s.users.FindByID(ctx, *req.UserID); err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, fmt.Errorf("target user not found: %w", apperror.ErrNotFound)
			}
			return nil, err
		}
		plan.UserID = *req.UserID
	}

	if err := s.repo.Update(ctx, plan); err != nil {
		return nil, err
	}
	return plan, nil
}

func (s *service) DeleteWorkout(ctx context.Context, id identity.Identity, planID uuid.UUID) error {
	plan, err := s.GetWorkout(ctx, planID)
	if err != nil {
		return err
	}

	if !s.canModify(id, plan) {
		return fmt.Errorf("you are not allowed to delete this workout: %w", apperror.ErrForbidden)
	}

	return s.repo.Delete(ctx, plan.ID)
}

// Ownership rides on the authoring trainer's user account. Admins
// bypass the check.
func (s *service) canModify(id identity.Identity, plan *entity.WorkoutPlan) bool {
	if id.IsAdmin() {
		return true
	}
	return plan.Trainer != nil && plan.Trainer.UserID == id.UserID
}
