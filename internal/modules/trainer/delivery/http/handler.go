package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"fitlink.app/backend/internal/modules/trainer/dto"
	trainer "fitlink.app/backend/internal/modules/trainer/service"
	"fitlink.app/backend/pkg/response"
	"fitlink.app/backend/pkg/validator"
)

type TrainerHandler struct {
	service trainer.Service
}

func NewTrainerHandler(service trainer.Service) *TrainerHandler {
	return &TrainerHandler{service: service}
}

func (h *TrainerHandler) GetProfile(c *gin.Context) {
	id, err := response.GetIdentity(c)
	if err != nil {
		response.ResponseError(c, err)
		return
	}

	profile, err := h.service.GetProfile(c.Request.Context(), id.UserID)
	if err != nil {
		response.ResponseError(c, err)
		return
	}

	c.JSON(http.StatusOK, profile)
}

func (h *TrainerHandler) UpdateProfile(c *gin.Context) {
	var req dto.UpdateTrainerProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": validator.FormatValidationError(err)})
		return
	}

	id, err := response.GetIdentity(c)
	if err != nil {
		response.ResponseError(c, err)
		return
	}

	profile, err := h.service.UpdateProfile(c.Request.Context(), id.UserID, req)
	if err != nil {
		response.ResponseError(c, err)
		return
	}

	c.JSON(http.StatusOK, profile)
}

func (h *TrainerHandler) DeleteProfile(c *gin.Context) {
	id, err := response.GetIdentity(c)
	if err != nil {
		response.ResponseError(c, err)
		return
	}

	if err := h.service.DeleteProfile(c.Request.Context(), id.UserID); err != nil {
		response.ResponseError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "trainer profile deleted"})
}

func (h *TrainerHandler) GetDashboard(c *gin.Context) {
	id, err := response.GetIdentity(c)
	if err != nil {
		response.ResponseError(c, err)
		return
	}

	dashboard, err := h.service.GetDashboard(c.Request.Context(), id.UserID)
	if err != nil {
		response.ResponseError(c, err)
		return
	}

	c.JSON(http.StatusOK, dashboard)
}
