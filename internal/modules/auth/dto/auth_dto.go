package dto

import "fitlink.app/backend/internal/entity"

type RegisterRequest struct {
	Email      string      `json:"email" binding:"required,email"`
	Password   string      `json:"password" binding:"required,min=6"`
	Name       *string     `json:"name" binding:"omitempty,min=2,max=100"`
	Username   *string     `json:"username" binding:"omitempty,min=3,max=50"`
	NationalID *string     `json:"nationalId" binding:"omitempty,len=11,numeric"`
	Role       entity.Role `json:"role" binding:"omitempty,oneof=USER TRAINER NUTRITIONIST ADMIN"`
}

type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

type AuthResponse struct {
	AccessToken string `json:"accessToken"`
}
