package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"fitlink.app/backend/internal/modules/subscription/dto"
	subscription "fitlink.app/backend/internal/modules/subscription/service"
	pkgdto "fitlink.app/backend/pkg/dto"
	"fitlink.app/backend/pkg/response"
	"fitlink.app/backend/pkg/validator"
)

type SubscriptionHandler struct {
	service subscription.Service
}

func NewSubscriptionHandler(service subscription.Service) *SubscriptionHandler {
	return &SubscriptionHandler{service: service}
}

func (h *SubscriptionHandler) ListSubscriptions(c *gin.Context) {
	var p pkgdto.Pagination
	if err := c.ShouldBindQuery(&p); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": validator.FormatValidationError(err)})
		return
	}

	subs, meta, err := h.service.ListSubscriptions(c.Request.Context(), response.OptionalIdentity(c), p)
	if err != nil {
		response.ResponseError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": subs, "pagination": meta})
}

func (h *SubscriptionHandler) UpdateSubscription(c *gin.Context) {
	subID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid subscription id"})
		return
	}

	var req dto.UpdateSubscriptionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": validator.FormatValidationError(err)})
		return
	}

	sub, err := h.service.UpdateSubscription(c.Request.Context(), subID, req)
	if err != nil {
		response.ResponseError(c, err)
		return
	}

	c.JSON(http.StatusOK, sub)
}

func (h *SubscriptionHandler) DeleteSubscription(c *gin.Context) {
	subID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid subscription id"})
		return
	}

	if err := h.service.DeleteSubscription(c.Request.Context(), subID); err != nil {
		response.ResponseError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "subscription deleted"})
}
