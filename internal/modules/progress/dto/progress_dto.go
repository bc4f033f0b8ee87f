package dto

type UpdateProgressRequest struct {
	WeightKg       *float64 `json:"weightKg" binding:"omitempty,gt=0"`
	BodyFatPercent *float64 `json:"bodyFatPercent" binding:"omitempty,gte=0,lte=100"`
	MuscleMassKg   *float64 `json:"muscleMassKg" binding:"omitempty,gt=0"`
	BMI            *float64 `json:"bmi" binding:"omitempty,gt=0"`
	Notes          *string  `json:"notes" binding:"omitempty,max=500"`
}

func (r UpdateProgressRequest) Empty() bool {
	return r.WeightKg == nil && r.BodyFatPercent == nil && r.MuscleMassKg == nil &&
		r.BMI == nil && r.Notes == nil
}
