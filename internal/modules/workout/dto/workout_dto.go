package dto

import "github.com/google/uuid"

type CreateWorkoutRequest struct {
	Title       string     `json:"title" binding:"required,max=120"`
	Description *string    `json:"description" binding:"omitempty,max=1000"`
	IsActive    *bool      `json:"isActive"`
	UserID      *uuid.UUID `json:"userId"`
}

type UpdateWorkoutRequest struct {
	Title       *string    `json:"title" binding:"omitempty,min=1,max=120"`
	Description *string    `json:"description" binding:"omitempty,max=1000"`
	IsActive    *bool      `json:"isActive"`
	UserID      *uuid.UUID `json:"userId"`
}

func (r UpdateWorkoutRequest) Empty() bool {
	return r.Title == nil && r.Description == nil && r.IsActive == nil && r.UserID == nil
}
