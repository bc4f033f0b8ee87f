package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"fitlink.app/backend/internal/modules/professional/dto"
	professional "fitlink.app/backend/internal/modules/professional/service"
	"fitlink.app/backend/pkg/response"
	"fitlink.app/backend/pkg/validator"
)

type ProfessionalHandler struct {
	service professional.Service
}

func NewProfessionalHandler(service professional.Service) *ProfessionalHandler {
	return &ProfessionalHandler{service: service}
}

func (h *ProfessionalHandler) SearchProfessionals(c *gin.Context) {
	var req dto.SearchProfessionalsRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": validator.FormatValidationError(err)})
		return
	}

	results, err := h.service.SearchProfessionals(c.Request.Context(), req.Q, req.Role)
	if err != nil {
		response.ResponseError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": results})
}
