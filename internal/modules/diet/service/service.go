package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"fitlink.app/backend/internal/entity"
	"fitlink.app/backend/internal/identity"
	"fitlink.app/backend/internal/modules/diet/dto"
	"fitlink.app/backend/internal/modules/diet/repository"
	nutritionistRepo "fitlink.app/backend/internal/modules/nutritionist/repository"
	userRepo "fitlink.app/backend/internal/modules/user/repository"
	"fitlink.app/backend/pkg/apperror"
	pkgdto "fitlink.app/backend/pkg/dto"
)

type Service interface {
	ListDiets(ctx context.Context, id *identity.Identity, p pkgdto.Pagination) ([]entity.DietPlan, *pkgdto.PaginationMeta, error)
	GetDiet(ctx context.Context, planID uuid.UUID) (*entity.DietPlan, error)
	CreateDiet(ctx context.Context, id identity.Identity, req dto.CreateDietRequest) (*entity.DietPlan, error)
	UpdateDiet(ctx context.Context, id identity.Identity, planID uuid.UUID, req dto.UpdateDietRequest) (*entity.DietPlan, error)
	DeleteDiet(ctx context.Context, id identity.Identity, planID uuid.UUID) error
}

type service struct {
	repo          repository.DietRepository
	nutritionists nutritionistRepo.NutritionistRepository
	users         userRepo.UserRepository
}

func NewService(repo repository.DietRepository, nutritionists nutritionistRepo.NutritionistRepository, users userRepo.UserRepository) Service {
	return &service{repo: repo, nutritionists: nutritionists, users: users}
}

func (s *service) ListDiets(ctx context.Context, id *identity.Identity, p pkgdto.Pagination) ([]entity.DietPlan, *pkgdto.PaginationMeta, error) {
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

func (s *service) GetDiet(ctx context.Context, planID uuid.UUID) (*entity.DietPlan, error) {
	plan, err := s.repo.FindByID(ctx, planID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("diet plan not found: %w", apperror.ErrNotFound)
		}
		return nil, err
	}
	return plan, nil
}

func (s *service) CreateDiet(ctx context.Context, id identity.Identity, req dto.CreateDietRequest) (*entity.DietPlan, error) {
	nutritionist, err := s.nutritionists.FindByUserID(ctx, id.UserID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("nutritionist profile required: %w", apperror.ErrForbidden)
		}
		return nil, err
	}
	if !nutritionist.HasRegistration() {
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

	plan := &entity.DietPlan{
		NutritionistID: nutritionist.ID,
		UserID:         targetID,
		Title:          req.Title,
		Description:    req.Description,
		DailyCalories:  req.DailyCalories,
		IsActive:       true,
	}
	if req.IsActive != nil {
		plan.IsActive = *req.IsActive
	}

	if err := s.repo.Create(ctx, plan); err != nil {
		return nil, err
	}
	return plan, nil
}

func (s *service) UpdateDiet(ctx context.Context, id identity.Identity, planID uuid.UUID, req dto.UpdateDietRequest) (*entity.DietPlan, error) {
	if req.Empty() {
		return nil, fmt.Errorf("no valid fields provided for update: %w", apperror.ErrBadRequest)
	}

	plan, err := s.GetDiet(ctx, planID)
	if err != nil {
		return nil, err
	}

	if !s.canModify(id, plan) {
		return nil, fmt.Errorf("you are not allowed to modify this diet: %w", apperror.ErrForbidden)
	}

	if req.Title != nil {
		plan.Title = *req.Title
	}
	if req.Description != nil {
		plan.Description = req.Description
	}
	if req.DailyCalories != nil {
		plan.DailyCalories = req.DailyCalories
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

func (s *service) DeleteDiet(ctx context.Context, id identity.Identity, planID uuid.UUID) error {
	plan, err := s.GetDiet(ctx, planID)
	if err != nil {
		return err
	}

	if !s.canModify(id, plan) {
		return fmt.Errorf("you are not allowed to delete this diet: %w", apperror.ErrForbidden)
	}

	return s.repo.Delete(ctx, plan.ID)
}

func (s *service) canModify(id identity.Identity, plan *entity.DietPlan) bool {
	if id.IsAdmin() {
		return true
	}
	return plan.Nutritionist != nil && plan.Nutritionist.UserID == id.UserID
}
