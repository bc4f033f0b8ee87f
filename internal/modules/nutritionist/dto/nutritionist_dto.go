package dto

import "fitlink.app/backend/internal/entity"

// UpdateNutritionistProfileRequest accepts the canonical
// professionalRegistration key and the legacy crn alias.
type UpdateNutritionistProfileRequest struct {
	ProfessionalRegistration *string `json:"professionalRegistration" binding:"omitempty,max=50"`
	Crn                      *string `json:"crn" binding:"omitempty,max=50"`
	Bio                      *string `json:"bio" binding:"omitempty,max=1000"`
	YearsExperience          *int    `json:"yearsExperience" binding:"omitempty,min=0"`
	Approved                 *bool   `json:"approved"`
}

func (r UpdateNutritionistProfileRequest) Registration() *string {
	if r.ProfessionalRegistration != nil {
		return r.ProfessionalRegistration
	}
	return r.Crn
}

func (r UpdateNutritionistProfileRequest) Empty() bool {
	return r.Registration() == nil && r.Bio == nil &&
		r.YearsExperience == nil && r.Approved == nil
}

type NutritionistDashboardResponse struct {
	Profile     *entity.Nutritionist `json:"profile"`
	TotalPlans  int64                `json:"totalPlans"`
	ActivePlans int64                `json:"activePlans"`
}
