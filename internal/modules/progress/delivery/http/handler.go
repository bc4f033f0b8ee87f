package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"fitlink.app/backend/internal/modules/progress/dto"
	progress "fitlink.app/backend/internal/modules/progress/service"
	pkgdto "fitlink.app/backend/pkg/dto"
	"fitlink.app/backend/pkg/response"
	"fitlink.app/backend/pkg/validator"
)

type ProgressHandler struct {
	service progress.Service
}

func NewProgressHandler(service progress.Service) *ProgressHandler {
	return &ProgressHandler{service: service}
}

func (h *ProgressHandler) ListProgress(c *gin.Context) {
	var p pkgdto.Pagination
	if err := c.ShouldBindQuery(&p); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": validator.FormatValidationError(err)})
		return
	}

	metrics, meta, err := h.service.ListProgress(c.Request.Context(), response.OptionalIdentity(c), p)
	if err != nil {
		response.ResponseError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": metrics, "pagination": meta})
}

func (h *ProgressHandler) UpdateProgress(c *gin.Context) {
	entryID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid progress entry id"})
		return
	}

	var req dto.UpdateProgressRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": validator.FormatValidationError(err)})
		return
	}

	metric, err := h.service.UpdateProgress(c.Request.Context(), entryID, req)
	if err != nil {
		response.ResponseError(c, err)
		return
	}

	c.JSON(http.StatusOK, metric)
}

func (h *ProgressHandler) DeleteProgress(c *gin.Context) {
	entryID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid progress entry id"})
		return
	}

	if err := h.service.DeleteProgress(c.Request.Context(), entryID); err != nil {
		response.ResponseError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "progress entry deleted"})
}
