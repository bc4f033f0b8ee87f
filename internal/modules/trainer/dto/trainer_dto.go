package dto

import "fitlink.app/backend/internal/entity"

// UpdateTrainerProfileRequest accepts the canonical
// professionalRegistration key and the legacy cref alias; the alias is
// translated once at this boundary and never seen by the service.
type UpdateTrainerProfileRequest struct {
	ProfessionalRegistration *string `json:"professionalRegistration" binding:"omitempty,max=50"`
	Cref                     *string `json:"cref" binding:"omitempty,max=50"`
	Bio                      *string `json:"bio" binding:"omitempty,max=1000"`
	YearsExperience          *int    `json:"yearsExperience" binding:"omitempty,min=0"`
	Approved                 *bool   `json:"approved"`
}

// Registration resolves the canonical registration value.
func (r UpdateTrainerProfileRequest) Registration() *string {
	if r.ProfessionalRegistration != nil {
		return r.ProfessionalRegistration
	}
	return r.Cref
}

func (r UpdateTrainerProfileRequest) Empty() bool {
	return r.Registration() == nil && r.Bio == nil &&
		r.YearsExperience == nil && r.Approved == nil
}

type TrainerDashboardResponse struct {
	Profile     *entity.Trainer `json:"profile"`
	TotalPlans  int64           `json:"totalPlans"`
	ActivePlans int64           `json:"activePlans"`
}
