package dto

import "github.com/google/uuid"

type CreateDietRequest struct {
	Title         string     `json:"title" binding:"required,max=120"`
	Description   *string    `json:"description" binding:"omitempty,max=1000"`
	DailyCalories *int       `json:"dailyCalories" binding:"omitempty,min=1"`
	IsActive      *bool      `json:"isActive"`
	UserID        *uuid.UUID `json:"userId"`
}

type UpdateDietRequest struct {
	Title         *string    `json:"title" binding:"omitempty,min=1,max=120"`
	Description   *string    `json:"description" binding:"omitempty,max=1000"`
	DailyCalories *int       `json:"dailyCalories" binding:"omitempty,min=1"`
	IsActive      *bool      `json:"isActive"`
	UserID        *uuid.UUID `json:"userId"`
}

func (r UpdateDietRequest) Empty() bool {
	return r.Title == nil && r.Description == nil && r.DailyCalories == nil &&
		r.IsActive == nil && r.UserID == nil
}
