package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"fitlink.app/backend/internal/modules/diet/dto"
	diet "fitlink.app/backend/internal/modules/diet/service"
	pkgdto "fitlink.app/backend/pkg/dto"
	"fitlink.app/backend/pkg/response"
	"fitlink.app/backend/pkg/validator"
)

type DietHandler struct {
	service diet.Service
}

func NewDietHandler(service diet.Service) *DietHandler {
	return &DietHandler{service: service}
}

func (h *DietHandler) ListDiets(c *gin.Context) {
	var p pkgdto.Pagination
	if err := c.ShouldBindQuery(&p); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": validator.FormatValidationError(err)})
		return
	}

	plans, meta, err := h.service.ListDiets(c.Request.Context(), response.OptionalIdentity(c), p)
	if err != nil {
		response.ResponseError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": plans, "pagination": meta})
}

func (h *DietHandler) GetDiet(c *gin.Context) {
	planID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid diet id"})
		return
	}

	plan, err := h.service.GetDiet(c.Request.Context(), planID)
	if err != nil {
		response.ResponseError(c, err)
		return
	}

	c.JSON(http.StatusOK, plan)
}

func (h *DietHandler) CreateDiet(c *gin.Context) {
	var req dto.CreateDietRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": validator.FormatValidationError(err)})
		return
	}

	id, err := response.GetIdentity(c)
	if err != nil {
		response.ResponseError(c, err)
		return
	}

	plan, err := h.service.CreateDiet(c.Request.Context(), id, req)
	if err != nil {
		response.ResponseError(c, err)
		return
	}

	c.JSON(http.StatusCreated, plan)
}

func (h *DietHandler) UpdateDiet(c *gin.Context) {
	planID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid diet id"})
		return
	}

	var req dto.UpdateDietRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": validator.FormatValidationError(err)})
		return
	}

	id, err := response.GetIdentity(c)
	if err != nil {
		response.ResponseError(c, err)
		return
	}

	plan, err := h.service.UpdateDiet(c.Request.Context(), id, planID, req)
	if err != nil {
		response.ResponseError(c, err)
		return
	}

	c.JSON(http.StatusOK, plan)
}

func (h *DietHandler) DeleteDiet(c *gin.Context) {
	planID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid diet id"})
		return
	}

	id, err := response.GetIdentity(c)
	if err != nil {
		response.ResponseError(c, err)
		return
	}

	if err := h.service.DeleteDiet(c.Request.Context(), id, planID); err != nil {
		response.ResponseError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "diet plan deleted"})
}
