package dto

import "fitlink.app/backend/internal/entity"

type CompleteOnboardingRequest struct {
	HeightCm                 float64 `json:"heightCm" binding:"required,gt=0"`
	WeightKg                 float64 `json:"weightKg" binding:"required,gt=0"`
	Plan                     string  `json:"plan" binding:"required,oneof=GRATUITO PREMIUM"`
	Bio                      *string `json:"bio" binding:"omitempty,max=1000"`
	YearsExperience          *int    `json:"yearsExperience" binding:"omitempty,min=0"`
	ProfessionalRegistration *string `json:"professionalRegistration" binding:"omitempty,max=50"`
}

type CompleteOnboardingResponse struct {
	Profile      *entity.UserProfile  `json:"profile"`
	Metric       *entity.BodyMetric   `json:"metric"`
	Subscription *entity.Subscription `json:"subscription"`
	Professional any                  `json:"professional"`
}
