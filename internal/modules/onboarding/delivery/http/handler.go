package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"fitlink.app/backend/internal/modules/onboarding/dto"
	onboarding "fitlink.app/backend/internal/modules/onboarding/service"
	"fitlink.app/backend/pkg/response"
	"fitlink.app/backend/pkg/validator"
)

type OnboardingHandler struct {
	service onboarding.Service
}

func NewOnboardingHandler(service onboarding.Service) *OnboardingHandler {
	return &OnboardingHandler{service: service}
}

func (h *OnboardingHandler) Complete(c *gin.Context) {
	var req dto.CompleteOnboardingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": validator.FormatValidationError(err)})
		return
	}

	id, err := response.GetIdentity(c)
	if err != nil {
		response.ResponseError(c, err)
		return
	}

	result, err := h.service.Complete(c.Request.Context(), id.UserID, req)
	if err != nil {
		response.ResponseError(c, err)
		return
	}

	c.JSON(http.StatusCreated, result)
}
