package service

import (
	"context"
	"errors"
	"fmt"
	"math"
	"strconv"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"fitlink.app/backend/internal/modules/onboarding/dto"
	"fitlink.app/backend/internal/modules/onboarding/repository"
	userRepo "fitlink.app/backend/internal/modules/user/repository"
	"fitlink.app/backend/pkg/apperror"
)

type Service interface {
	Complete(ctx context.Context, userID uuid.UUID, req dto.CompleteOnboardingRequest) (*dto.CompleteOnboardingResponse, error)
}

type service struct {
	repo  repository.OnboardingRepository
	users userRepo.UserRepository
}

func NewService(repo repository.OnboardingRepository, users userRepo.UserRepository) Service {
	return &service{repo: repo, users: users}
}

// Complete validates the caller and their professional standing, then
// hands the whole write to one transaction.
func (s *service) Complete(ctx context.Context, userID uuid.UUID, req dto.CompleteOnboardingRequest) (*dto.CompleteOnboardingResponse, error) {
	user, err := s.users.FindByID(ctx, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("user not found: %w", apperror.ErrNotFound)
		}
		return nil, err
	}

	// Professionals must restate their registration number in the
	// payload, even when their profile already carries one.
	registration := req.ProfessionalRegistration
	if user.Role.IsProfessional() && (registration == nil || *registration == "") {
		return nil, fmt.Errorf("professional registration is required for onboarding: %w", apperror.ErrBadRequest)
	}

	heightM := req.HeightCm / 100
	bmi := math.Round(req.WeightKg/(heightM*heightM)*100) / 100

	result, err := s.repo.Complete(ctx, repository.CompleteParams{
		User:         user,
		HeightCm:     req.HeightCm,
		WeightKg:     req.WeightKg,
		BMI:          bmi,
		MetricNote:   "Height used for BMI: " + strconv.FormatFloat(req.HeightCm, 'f', -1, 64) + " cm",
		PlanName:     req.Plan,
		Bio:          req.Bio,
		YearsExp:     req.YearsExperience,
		Registration: registration,
	})
	if err != nil {
		return nil, err
	}

	return &dto.CompleteOnboardingResponse{
		Profile:      result.Profile,
		Metric:       result.Metric,
		Subscription: result.Subscription,
		Professional: result.Professional,
	}, nil
}
