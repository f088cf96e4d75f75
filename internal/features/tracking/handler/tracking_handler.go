package handler

import (
	"errors"

	"consignment-tracker/internal/features/tracking/domain"
	"consignment-tracker/internal/features/tracking/service"

	"github.com/gofiber/fiber/v2"
)

// TrackingHandler handles HTTP requests for tracking lookups.
type TrackingHandler struct {
	trackingService *service.TrackingService
}

// NewTrackingHandler creates a new TrackingHandler.
func NewTrackingHandler(trackingService *service.TrackingService) *TrackingHandler {
	return &TrackingHandler{
		trackingService: trackingService,
	}
}

// ErrorResponse represents an error response with Ray ID.
type ErrorResponse struct {
	// Message is the error description.
	Message string `json:"message"`
	// RayID is the unique request identifier for tracing.
	RayID string `json:"ray_id,omitempty"`
}

// GetTrackingSummary godoc
// @Summary Get the tracking timeline for a booking
// @Description Fetches the booking record from the backend and returns its normalized step timeline
// @Tags tracking
// @Accept json
// @Produce json
// @Param reference path string true "Booking Reference"
// @Param kind query string false "Booking kind (customer or corporate, default customer)"
// @Success 200 {object} domain.Summary
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Router /tracking/{reference} [get]
func (h *TrackingHandler) GetTrackingSummary(c *fiber.Ctx) error {
	rayID, ok := c.Locals("requestid").(string)
	if !ok {
		rayID = "unknown"
	}

	reference := c.Params("reference")
	if reference == "" {
		return c.Status(fiber.StatusBadRequest).JSON(ErrorResponse{
			Message: "booking reference is required",
			RayID:   rayID,
		})
	}

	kind := c.Query("kind", domain.KindCustomer)
	if kind != domain.KindCustomer && kind != domain.KindCorporate {
		return c.Status(fiber.StatusBadRequest).JSON(ErrorResponse{
			Message: "kind must be customer or corporate",
			RayID:   rayID,
		})
	}

	summary, err := h.trackingService.GetTrackingSummary(c.Context(), reference, kind)
	if err != nil {
		if errors.Is(err, service.ErrBookingNotFound) || errors.Is(err, service.ErrKindNotSupported) {
			return c.Status(fiber.StatusNotFound).JSON(ErrorResponse{
				Message: "tracking not found",
				RayID:   rayID,
			})
		}

		return c.Status(fiber.StatusInternalServerError).JSON(ErrorResponse{
			Message: err.Error(),
			RayID:   rayID,
		})
	}

	return c.JSON(summary)
}
