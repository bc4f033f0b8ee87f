package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"fitlink.app/backend/internal/modules/workout/dto"
	workout "fitlink.app/backend/internal/modules/workout/service"
	pkgdto "fitlink.app/backend/pkg/dto"
	"fitlink.app/backend/pkg/response"
	"fitlink.app/backend/pkg/validator"
)

type WorkoutHandler struct {
	service workout.Service
}

func NewWorkoutHandler(service workout.Service) *WorkoutHandler {
	return &WorkoutHandler{service: service}
}

func (h *WorkoutHandler) ListWorkouts(c *gin.Context) {
	var p pkgdto.Pagination
	if err := c.ShouldBindQuery(&p); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": validator.FormatValidationError(err)})
		return
	}

	plans, meta, err := h.service.ListWorkouts(c.Request.Context(), response.OptionalIdentity(c), p)
	if err != nil {
		response.ResponseError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": plans, "pagination": meta})
}

func (h *WorkoutHandler) GetWorkout(c *gin.Context) {
	planID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid workout id"})
		return
	}

	plan, err := h.service.GetWorkout(c.Request.Context(), planID)
	if err != nil {
		response.ResponseError(c, err)
		return
	}

	c.JSON(http.StatusOK, plan)
}

func (h *WorkoutHandler) CreateWorkout(c *gin.Context) {
	var req dto.CreateWorkoutRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": validator.FormatValidationError(err)})
		return
	}

	id, err := response.GetIdentity(c)
	if err != nil {
		response.ResponseError(c, err)
		return
	}

	plan, err := h.service.CreateWorkout(c.Request.Context(), id, req)
	if err != nil {
		response.ResponseError(c, err)
		return
	}

	c.JSON(http.StatusCreated, plan)
}

func (h *WorkoutHandler) UpdateWorkout(c *gin.Context) {
	planID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid workout id"})
		return
	}

	var req dto.UpdateWorkoutRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": validator.FormatValidationError(err)})
		return
	}

	id, err := response.GetIdentity(c)
	if err != nil {
		response.ResponseError(c, err)
		return
	}

	plan, err := h.service.UpdateWorkout(c.Request.Context(), id, planID, req)
	if err != nil {
		response.ResponseError(c, err)
		return
	}

	c.JSON(http.StatusOK, plan)
}

func (h *WorkoutHandler) DeleteWorkout(c *gin.Context) {
	planID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid workout id"})
		return
	}

	id, err := response.GetIdentity(c)
	if err != nil {
		response.ResponseError(c, err)
		return
	}

	if err := h.service.DeleteWorkout(c.Request.Context(), id, planID); err != nil {
		response.ResponseError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "workout plan deleted"})
}
