package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"fitlink.app/backend/internal/entity"
	nutritionistRepo "fitlink.app/backend/internal/modules/nutritionist/repository"
	search "fitlink.app/backend/internal/modules/search/service"
	trainerRepo "fitlink.app/backend/internal/modules/trainer/repository"
	"fitlink.app/backend/internal/modules/user/dto"
	"fitlink.app/backend/internal/modules/user/repository"
	"fitlink.app/backend/pkg/apperror"
)

type Service interface {
	GetMe(ctx context.Context, userID uuid.UUID) (*dto.UserResponse, error)
	UpdateMe(ctx context.Context, userID uuid.UUID, req dto.UpdateMeRequest) (*dto.UserResponse, error)
	DeleteMe(ctx context.Context, userID uuid.UUID) error
	ListUsers(ctx context.Context) ([]dto.UserResponse, error)
	UpdateUserRole(ctx context.Context, targetID uuid.UUID, role entity.Role) (*dto.UserResponse, error)
}

type service struct {
	repo             repository.UserRepository
	trainerRepo      trainerRepo.TrainerRepository
	nutritionistRepo nutritionistRepo.NutritionistRepository
	searchSvc        search.SearchService
}

func NewService(
	repo repository.UserRepository,
	trainers trainerRepo.TrainerRepository,
	nutritionists nutritionistRepo.NutritionistRepository,
	searchSvc search.SearchService,
) Service {
	return &service{
		repo:             repo,
		trainerRepo:      trainers,
		nutritionistRepo: nutritionists,
		searchSvc:        searchSvc,
	}
}

func (s *service) GetMe(ctx context.Context, userID uuid.UUID) (*dto.UserResponse, error) {
	user, err := s.repo.FindByID(ctx, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("user not found: %w", apperror.ErrNotFound)
		}
		return nil, err
	}

	resp := dto.NewUserResponse(user)
	return &resp, nil
}

func (s *service) UpdateMe(ctx context.Context, userID uuid.UUID, req dto.UpdateMeRequest) (*dto.UserResponse, error) {
	if req.Empty() {
		return nil, fmt.Errorf("no valid fields provided for update: %w", apperror.ErrBadRequest)
	}

	user, err := s.repo.FindByID(ctx, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("user not found: %w", apperror.ErrNotFound)
		}
		return nil, err
	}

	if req.Email != nil && *req.Email != user.Email {
		if err := s.ensureEmailFree(ctx, *req.Email, userID); err != nil {
			return nil, err
		}
		user.Email = *req.Email
	}

	if req.Username != nil {
		if err := s.ensureUsernameFree(ctx, *req.Username, userID); err != nil {
			return nil, err
		}
		user.Username = req.Username
	}

	if req.NationalID != nil {
		if err := s.ensureNationalIDFree(ctx, *req.NationalID, userID); err != nil {
			return nil, err
		}
		user.NationalID = req.NationalID
	}

	if req.Name != nil {
		user.Name = req.Name
	}

	if req.Password != nil {
		hash, err := bcrypt.GenerateFromPassword([]byte(*req.Password), bcrypt.DefaultCost)
		if err != nil {
			return nil, err
		}
		user.PasswordHash = string(hash)
	}

	if err := s.repo.Update(ctx, user); err != nil {
		return nil, err
	}

	if user.Role.IsProfessional() && s.searchSvc != nil {
		_ = s.searchSvc.IndexUser(user)
	}

	resp := dto.NewUserResponse(user)
	return &resp, nil
}

func (s *service) DeleteMe(ctx context.Context, userID uuid.UUID) error {
	user, err := s.repo.FindByID(ctx, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fmt.Errorf("user not found: %w", apperror.ErrNotFound)
		}
		return err
	}

	if err := s.repo.Delete(ctx, user.ID); err != nil {
		return err
	}

	if s.searchSvc != nil {
		_ = s.searchSvc.RemoveUser(user.ID.String())
	}

	return nil
}

func (s *service) ListUsers(ctx context.Context) ([]dto.UserResponse, error) {
	users, err := s.repo.FindAll(ctx)
	if err != nil {
		return nil, err
	}

	responses := make([]dto.UserResponse, 0, len(users))
	for i := range users {
		responses = append(responses, dto.NewUserResponse(&users[i]))
	}
	return responses, nil
}

func (s *service) UpdateUserRole(ctx context.Context, targetID uuid.UUID, role entity.Role) (*dto.UserResponse, error) {
	user, err := s.repo.FindByID(ctx, targetID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("user not found: %w", apperror.ErrNotFound)
		}
		return nil, err
	}

	user.Role = role
	if err := s.repo.Update(ctx, user); err != nil {
		return nil, err
	}

	// A user switched into a professional role gets the empty profile
	// row that plan-create gating inspects.
	if err := s.ensureProfessionalProfile(ctx, user); err != nil {
		return nil, err
	}

	if s.searchSvc != nil {
		if role.IsProfessional() {
			_ = s.searchSvc.IndexUser(user)
		} else {
			_ = s.searchSvc.RemoveUser(user.ID.String())
		}
	}

	resp := dto.NewUserResponse(user)
	return &resp, nil
}

func (s *service) ensureProfessionalProfile(ctx context.Context, user *entity.User) error {
	switch user.Role {
	case entity.RoleTrainer:
		_, err := s.trainerRepo.FindByUserID(ctx, user.ID)
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return s.trainerRepo.Create(ctx, &entity.Trainer{UserID: user.ID})
		}
		return err
	case entity.RoleNutritionist:
		_, err := s.nutritionistRepo.FindByUserID(ctx, user.ID)
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return s.nutritionistRepo.Create(ctx, &entity.Nutritionist{UserID: user.ID})
		}
		return err
	}
	return nil
}

func (s *service) ensureEmailFree(ctx context.Context, email string, self uuid.UUID) error {
	existing, err := s.repo.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil
		}
		return err
	}
	if existing.ID != self {
		return fmt.Errorf("e-mail already in use: %w", apperror.ErrBadRequest)
	}
	return nil
}

func (s *service) ensureUsernameFree(ctx context.Context, username string, self uuid.UUID) error {
	existing, err := s.repo.FindByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil
		}
		return err
	}
	if existing.ID != self {
		return fmt.Errorf("username already in use: %w", apperror.ErrBadRequest)
	}
	return nil
}

func (s *service) ensureNationalIDFree(ctx context.Context, nationalID string, self uuid.UUID) error {
	existing, err := s.repo.FindByNationalID(ctx, nationalID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil
		}
		return err
	}
	if existing.ID != self {
		return fmt.Errorf("national ID already in use: %w", apperror.ErrBadRequest)
	}
	return nil
}
