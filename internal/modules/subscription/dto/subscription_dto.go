package dto

type UpdateSubscriptionRequest struct {
	PlanName *string `json:"planName" binding:"omitempty,min=1,max=50"`
	Status   *string `json:"status" binding:"omitempty,oneof=TRIALING ACTIVE PAST_DUE CANCELED"`
}

func (r UpdateSubscriptionRequest) Empty() bool {
	return r.PlanName == nil && r.Status == nil
}
