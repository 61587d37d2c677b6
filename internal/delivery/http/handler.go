package http

import (
	"context"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/pricecart/backend/internal/domain"
	"github.com/pricecart/backend/internal/usecase"
)

// Handler holds dependencies for HTTP handlers
type Handler struct {
	pricing *usecase.PricingService
}

// NewHandler creates a new HTTP handler
func NewHandler(pricing *usecase.PricingService) *Handler {
	return &Handler{pricing: pricing}
}

// HealthCheck returns the health status of the API
func (h *Handler) HealthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "healthy",
		"service": "pricecart-backend",
		"version": "1.0.0",
	})
}

// RunPriceComparison prices a shopping list against the selected stores
func (h *Handler) RunPriceComparison(c *gin.Context) {
	if h.pricing == nil {
		c.JSON(http.StatusNotImplemented, gin.H{
			"error": "Price engine not configured",
		})
		return
	}

	var req domain.PriceRunRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request body: " + err.Error(),
		})
		return
	}

	run, err := h.pricing.RunComparison(c.Request.Context(), &req)
	if err != nil {
		c.JSON(statusForError(err), gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, run)
}

// statusForError maps comparison errors to HTTP status codes. Validation
// failures are the caller's fault; everything else is ours.
func statusForError(err error) int {
	switch {
	case errors.Is(err, domain.ErrMissingListID),
		errors.Is(err, domain.ErrNoStores),
		errors.Is(err, domain.ErrUnknownStore),
		errors.Is(err, domain.ErrEmptyList):
		return http.StatusBadRequest
	case errors.Is(err, context.DeadlineExceeded),
		errors.Is(err, context.Canceled):
		return http.StatusGatewayTimeout
	default:
		return http.StatusInternalServerError
	}
}
