package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"fitlink.app/backend/internal/entity"
	"fitlink.app/backend/internal/identity"
	"fitlink.app/backend/internal/modules/auth/dto"
	nutritionistRepo "fitlink.app/backend/internal/modules/nutritionist/repository"
	search "fitlink.app/backend/internal/modules/search/service"
	trainerRepo "fitlink.app/backend/internal/modules/trainer/repository"
	userRepo "fitlink.app/backend/internal/modules/user/repository"
	"fitlink.app/backend/pkg/apperror"
	"fitlink.app/backend/pkg/ratelimiter"
)

type Service interface {
	Register(ctx context.Context, req dto.RegisterRequest) (*dto.AuthResponse, error)
	Login(ctx context.Context, req dto.LoginRequest, clientIP string) (*dto.AuthResponse, error)
}

type service struct {
	users         userRepo.UserRepository
	trainers      trainerRepo.TrainerRepository
	nutritionists nutritionistRepo.NutritionistRepository
	searchSvc     search.SearchService
	loginLimiter  *ratelimiter.RateLimiter
	secret        string
	tokenTTL      time.Duration
}

func NewService(
	users userRepo.UserRepository,
	trainers trainerRepo.TrainerRepository,
	nutritionists nutritionistRepo.NutritionistRepository,
	searchSvc search.SearchService,
	loginLimiter *ratelimiter.RateLimiter,
	secret string,
	tokenTTL time.Duration,
) Service {
	if tokenTTL <= 0 {
		tokenTTL = 24 * time.Hour
	}

	return &service{
		users:         users,
		trainers:      trainers,
		nutritionists: nutritionists,
		searchSvc:     searchSvc,
		loginLimiter:  loginLimiter,
		secret:        secret,
		tokenTTL:      tokenTTL,
	}
}

func (s *service) Register(ctx context.Context, req dto.RegisterRequest) (*dto.AuthResponse, error) {
	// Uniqueness is checked up front so the caller gets a readable 400
	// instead of a constraint violation surfacing as a 500.
	if _, err := s.users.FindByEmail(ctx, req.Email); err == nil {
		return nil, fmt.Errorf("e-mail already in use: %w", apperror.ErrBadRequest)
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	if req.Username != nil {
		if _, err := s.users.FindByUsername(ctx, *req.Username); err == nil {
			return nil, fmt.Errorf("username already in use: %w", apperror.ErrBadRequest)
		} else if !errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, err
		}
	}

	if req.NationalID != nil {
		if _, err := s.users.FindByNationalID(ctx, *req.NationalID); err == nil {
			return nil, fmt.Errorf("national ID already in use: %w", apperror.ErrBadRequest)
		} else if !errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, err
		}
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	role := req.Role
	if role == "" {
		role = entity.RoleUser
	}

	user := &entity.User{
		Email:        req.Email,
		Name:         req.Name,
		Username:     req.Username,
		NationalID:   req.NationalID,
		PasswordHash: string(hash),
		Role:         role,
		IsActive:     true,
	}

	if err := s.users.Create(ctx, user); err != nil {
		return nil, err
	}

	// Professionals get their (still unregistered) profile row right
	// away; plan creation rejects them with the registration error
	// until they supply a registration number.
	switch role {
	case entity.RoleTrainer:
		if err := s.trainers.Create(ctx, &entity.Trainer{UserID: user.ID}); err != nil {
			return nil, err
		}
	case entity.RoleNutritionist:
		if err := s.nutritionists.Create(ctx, &entity.Nutritionist{UserID: user.ID}); err != nil {
			return nil, err
		}
	}

	if role.IsProfessional() && s.searchSvc != nil {
		_ = s.searchSvc.IndexUser(user)
	}

	return s.signToken(user)
}

func (s *service) Login(ctx context.Context, req dto.LoginRequest, clientIP string) (*dto.AuthResponse, error) {
	// Keyed per email and caller address so one address cannot burn
	// another caller's budget for the same account.
	if err := s.loginLimiter.Allow(ctx, "login:"+req.Email+":"+clientIP); err != nil {
		return nil, err
	}

	user, err := s.users.FindByEmail(ctx, req.Email)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("invalid credentials: %w", apperror.ErrUnauthorized)
		}
		return nil, err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.Password)); err != nil {
		return nil, fmt.Errorf("invalid credentials: %w", apperror.ErrUnauthorized)
	}

	return s.signToken(user)
}

func (s *service) signToken(user *entity.User) (*dto.AuthResponse, error) {
	now := time.Now()

	claims := identity.Claims{
		Email: user.Email,
		Role:  user.Role,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   user.ID.String(),
			ExpiresAt: jwt.NewNumericDate(now.Add(s.tokenTTL)),
			IssuedAt:  jwt.NewNumericDate(now),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(s.secret))
	if err != nil {
		return nil, fmt.Errorf("sign token: %w", apperror.ErrInternal)
	}

	return &dto.AuthResponse{AccessToken: signed}, nil
}
