package handler

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"tabiplan/internal/model"
	"tabiplan/internal/planner"
	"tabiplan/internal/service"
)

// TripHandler handles trip CRUD, activity operations and day refinement
type TripHandler struct {
	trips *service.TripService
}

// NewTripHandler creates a new trip handler
func NewTripHandler(trips *service.TripService) *TripHandler {
	return &TripHandler{trips: trips}
}

// Create handles POST /api/v1/trips
func (h *TripHandler) Create(c *gin.Context) {
	var req model.CreateTripRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request: " + err.Error()})
		return
	}

	trip, err := h.trips.CreateTrip(c.Request.Context(), req.Name, req.Builder)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create trip: " + err.Error()})
		return
	}
	c.JSON(http.StatusCreated, trip)
}

// List handles GET /api/v1/trips
func (h *TripHandler) List(c *gin.Context) {
	trips, err := h.trips.ListTrips(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list trips: " + err.Error()})
		return
	}
	c.JSON(http.StatusOK, trips)
}

// Get handles GET /api/v1/trips/:id
func (h *TripHandler) Get(c *gin.Context) {
	trip, err := h.trips.GetTrip(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, trip)
}

// Rename handles PUT /api/v1/trips/:id
func (h *TripHandler) Rename(c *gin.Context) {
	var req model.RenameTripRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request: " + err.Error()})
		return
	}

	trip, err := h.trips.RenameTrip(c.Request.Context(), c.Param("id"), req.Name)
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, trip)
}

// Delete handles DELETE /api/v1/trips/:id
func (h *TripHandler) Delete(c *gin.Context) {
	if err := h.trips.DeleteTrip(c.Request.Context(), c.Param("id")); err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Trip deleted"})
}

// AddActivity handles POST /api/v1/trips/:id/days/:dayId/activities
func (h *TripHandler) AddActivity(c *gin.Context) {
	var req model.AddActivityRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request: " + err.Error()})
		return
	}

	trip, err := h.trips.AddActivity(c.Request.Context(), c.Param("id"), c.Param("dayId"), req.Activity, req.Position)
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, trip)
}

// ReplaceActivity handles PUT /api/v1/trips/:id/days/:dayId/activities/:activityId
func (h *TripHandler) ReplaceActivity(c *gin.Context) {
	var req model.ReplaceActivityRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request: " + err.Error()})
		return
	}

	trip, err := h.trips.ReplaceActivity(c.Request.Context(), c.Param("id"), c.Param("dayId"), c.Param("activityId"), req.Activity)
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, trip)
}

// DeleteActivity handles DELETE /api/v1/trips/:id/days/:dayId/activities/:activityId
func (h *TripHandler) DeleteActivity(c *gin.Context) {
	trip, err := h.trips.DeleteActivity(c.Request.Context(), c.Param("id"), c.Param("dayId"), c.Param("activityId"))
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, trip)
}

// ReorderActivities handles PUT /api/v1/trips/:id/days/:dayId/activities
func (h *TripHandler) ReorderActivities(c *gin.Context) {
	var req model.ReorderActivitiesRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request: " + err.Error()})
		return
	}

	trip, err := h.trips.ReorderActivities(c.Request.Context(), c.Param("id"), c.Param("dayId"), req.OrderedIDs)
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, trip)
}

// RefineDay handles POST /api/v1/trips/:id/refine/:dayIndex
func (h *TripHandler) RefineDay(c *gin.Context) {
	dayIndex, err := strconv.Atoi(c.Param("dayIndex"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid day index"})
		return
	}

	var req model.RefineDayRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request: " + err.Error()})
		return
	}

	trip, err := h.trips.RefineDay(c.Request.Context(), c.Param("id"), dayIndex, planner.RefinementType(req.Type))
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, trip)
}

// respondError maps service sentinels to HTTP statuses
func (h *TripHandler) respondError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, service.ErrTripNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "Trip not found"})
	case errors.Is(err, service.ErrDayNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "Day not found"})
	case errors.Is(err, service.ErrInvalidRefinement):
		c.JSON(http.StatusBadRequest, gin.H{"error": "Unknown refinement type"})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
	}
}
