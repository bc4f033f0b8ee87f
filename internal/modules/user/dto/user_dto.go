package dto

import (
	"time"

	"fitlink.app/backend/internal/entity"
)

type UpdateMeRequest struct {
	Email      *string `json:"email" binding:"omitempty,email"`
	Name       *string `json:"name" binding:"omitempty,min=2,max=100"`
	Username   *string `json:"username" binding:"omitempty,min=3,max=50"`
	NationalID *string `json:"nationalId" binding:"omitempty,len=11,numeric"`
	Password   *string `json:"password" binding:"omitempty,min=6"`
}

// Empty reports whether no recognized field was supplied.
func (r UpdateMeRequest) Empty() bool {
	return r.Email == nil && r.Name == nil && r.Username == nil &&
		r.NationalID == nil && r.Password == nil
}

type UpdateUserRoleRequest struct {
	Role entity.Role `json:"role" binding:"required,oneof=USER TRAINER NUTRITIONIST ADMIN"`
}

// UserResponse is the account shape returned to clients. The password
// hash never leaves the service layer.
type UserResponse struct {
	ID         string      `json:"id"`
	Email      string      `json:"email"`
	Name       *string     `json:"name,omitempty"`
	Username   *string     `json:"username,omitempty"`
	NationalID *string     `json:"nationalId,omitempty"`
	Role       entity.Role `json:"role"`
	IsActive   bool        `json:"isActive"`
	CreatedAt  string      `json:"createdAt"`
	UpdatedAt  string      `json:"updatedAt"`
}

func NewUserResponse(u *entity.User) UserResponse {
	return UserResponse{
		ID:         u.ID.String(),
		Email:      u.Email,
		Name:       u.Name,
		Username:   u.Username,
		NationalID: u.NationalID,
		Role:       u.Role,
		IsActive:   u.IsActive,
		CreatedAt:  u.CreatedAt.UTC().Format(time.RFC3339),
		UpdatedAt:  u.UpdatedAt.UTC().Format(time.RFC3339),
	}
}
