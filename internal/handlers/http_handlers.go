package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/logger"

	"wheelspin/internal/services"
	"wheelspin/internal/store"
)

// HTTPHandler holds the dependencies for the HTTP handlers, like the
// wheel service.
type HTTPHandler struct {
	service *services.WheelService
}

// NewHTTPHandler creates a new HTTPHandler.
func NewHTTPHandler(service *services.WheelService) *HTTPHandler {
	return &HTTPHandler{service: service}
}

// RegisterRoutes registers all the application routes.
func (h *HTTPHandler) RegisterRoutes(router *gin.Engine) {
	router.GET("/wheels", h.ListWheels)
	router.POST("/wheels", h.CreateWheel)
	router.GET("/wheels/:id", h.GetWheel)
	router.PATCH("/wheels/:id", h.UpdateWheel)
	router.DELETE("/wheels/:id", h.DeleteWheel)
	router.POST("/wheels/:id/spin", h.SpinWheel)
}

// ListWheels returns every wheel in the store.
func (h *HTTPHandler) ListWheels(c *gin.Context) {
	wheels, err := h.service.GetWheels()
	if err != nil {
		h.serviceError(c, err)
		return
	}
	c.JSON(http.StatusOK, wheels)
}

// GetWheel returns a single wheel by id.
func (h *HTTPHandler) GetWheel(c *gin.Context) {
	wheel, err := h.service.GetWheel(c.Param("id"))
	if err != nil {
		h.serviceError(c, err)
		return
	}
	if wheel == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "wheel not found"})
		return
	}
	c.JSON(http.StatusOK, wheel)
}

// CreateWheel creates a wheel from the posted payload.
func (h *HTTPHandler) CreateWheel(c *gin.Context) {
	var input services.WheelInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid payload"})
		return
	}
	wheel, err := h.service.CreateWheel(input)
	if err != nil {
		h.serviceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, wheel)
}

// UpdateWheel applies a partial update to an existing wheel.
func (h *HTTPHandler) UpdateWheel(c *gin.Context) {
	var input services.WheelInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid payload"})
		return
	}
	wheel, err := h.service.UpdateWheel(c.Param("id"), input)
	if err != nil {
		h.serviceError(c, err)
		return
	}
	if wheel == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "wheel not found"})
		return
	}
	c.JSON(http.StatusOK, wheel)
}

// DeleteWheel removes a wheel by id.
func (h *HTTPHandler) DeleteWheel(c *gin.Context) {
	removed, err := h.service.DeleteWheel(c.Param("id"))
	if err != nil {
		h.serviceError(c, err)
		return
	}
	if !removed {
		c.JSON(http.StatusNotFound, gin.H{"error": "wheel not found"})
		return
	}
	c.Status(http.StatusNoContent)
}

// SpinWheel performs a weighted-random spin and returns the result.
func (h *HTTPHandler) SpinWheel(c *gin.Context) {
	result, err := h.service.Spin(c.Param("id"))
	if err != nil {
		if errors.Is(err, services.ErrNoItems) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "wheel has no items to spin"})
			return
		}
		h.serviceError(c, err)
		return
	}
	if result == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "wheel not found"})
		return
	}
	c.JSON(http.StatusOK, result)
}

// serviceError maps non-domain failures to responses. A corrupt data
// file is recoverable by an operator, so it surfaces as 503 rather
// than crashing or pretending the store is empty.
func (h *HTTPHandler) serviceError(c *gin.Context, err error) {
	if errors.Is(err, store.ErrDataCorrupt) {
		logger.Errorf("Data file corrupt: %v", err)
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "data store unavailable"})
		return
	}
	logger.Errorf("Storage failure: %v", err)
	c.JSON(http.StatusInternalServerError, gin.H{"error": "internal error"})
}
