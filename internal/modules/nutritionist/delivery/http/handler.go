package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"fitlink.app/backend/internal/modules/nutritionist/dto"
	nutritionist "fitlink.app/backend/internal/modules/nutritionist/service"
	"fitlink.app/backend/pkg/response"
	"fitlink.app/backend/pkg/validator"
)

type NutritionistHandler struct {
	service nutritionist.Service
}

func NewNutritionistHandler(service nutritionist.Service) *NutritionistHandler {
	return &NutritionistHandler{service: service}
}

func (h *NutritionistHandler) GetProfile(c *gin.Context) {
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

func (h *NutritionistHandler) UpdateProfile(c *gin.Context) {
	var req dto.UpdateNutritionistProfileRequest
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

func (h *NutritionistHandler) DeleteProfile(c *gin.Context) {
	id, err := response.GetIdentity(c)
	if err != nil {
		response.ResponseError(c, err)
		return
	}

	if err := h.service.DeleteProfile(c.Request.Context(), id.UserID); err != nil {
		response.ResponseError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "nutritionist profile deleted"})
}

func (h *NutritionistHandler) GetDashboard(c *gin.Context) {
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
