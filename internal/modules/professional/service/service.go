package service

import (
	"context"
	"fmt"
	"strings"

	"fitlink.app/backend/internal/entity"
	search "fitlink.app/backend/internal/modules/search/service"
	userRepo "fitlink.app/backend/internal/modules/user/repository"
	"fitlink.app/backend/pkg/apperror"
)

// searchLimit caps directory results per query.
const searchLimit = 50

type Service interface {
	SearchProfessionals(ctx context.Context, query, role string) ([]entity.User, error)
}

type service struct {
	users  userRepo.UserRepository
	search search.SearchService
}

func NewService(users userRepo.UserRepository, searchSvc search.SearchService) Service {
	return &service{users: users, search: searchSvc}
}

// SearchProfessionals resolves the role filter, asks Meilisearch first
// and falls back to a SQL substring match when the engine is absent or
// errors out.
func (s *service) SearchProfessionals(ctx context.Context, query, role string) ([]entity.User, error) {
	roles, err := resolveRoles(role)
	if err != nil {
		return nil, err
	}

	if s.search != nil {
		ids, err := s.search.SearchProfessionals(query, roles, searchLimit)
		if err == nil {
			if len(ids) == 0 {
				return []entity.User{}, nil
			}
			return s.users.FindByIDs(ctx, ids)
		}
	}

	return s.users.SearchProfessionals(ctx, query, roles, searchLimit)
}

func resolveRoles(role string) ([]entity.Role, error) {
	switch strings.ToUpper(strings.TrimSpace(role)) {
	case "", "ALL":
		return []entity.Role{entity.RoleTrainer, entity.RoleNutritionist}, nil
	case string(entity.RoleTrainer):
		return []entity.Role{entity.RoleTrainer}, nil
	case string(entity.RoleNutritionist):
		return []entity.Role{entity.RoleNutritionist}, nil
	}
	return nil, fmt.Errorf("role must be TRAINER, NUTRITIONIST or ALL: %w", apperror.ErrBadRequest)
}
