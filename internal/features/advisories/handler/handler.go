package handler

import (
	"errors"
	"net/http"

	"consignment-tracker/internal/core/logger"
	"consignment-tracker/internal/features/advisories/domain"
	"consignment-tracker/internal/features/advisories/ports"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// AdvisoryHandler handles HTTP requests for service advisories.
type AdvisoryHandler struct {
	service ports.AdvisoryService
}

// NewAdvisoryHandler creates a new AdvisoryHandler.
func NewAdvisoryHandler(service ports.AdvisoryService) *AdvisoryHandler {
	return &AdvisoryHandler{
		service: service,
	}
}

// CreateAdvisoryRequest represents the request body for setting an advisory.
type CreateAdvisoryRequest struct {
	Title    string                  `json:"title"`
	Detail   string                  `json:"detail"`
	Severity domain.AdvisorySeverity `json:"severity"`
	Region   string                  `json:"region"`
	Duration int                     `json:"duration"` // Seconds
}

// SetAdvisory handles POST /advisory.
// @Summary Set the service advisory
// @Description Creates or replaces the service-wide advisory shown on the tracking pages.
// @Tags Advisory
// @Accept json
// @Produce json
// @Param advisory body CreateAdvisoryRequest true "Advisory details"
// @Success 200 {object} map[string]string
// @Failure 400 {object} map[string]string
// @Failure 500 {object} map[string]string
// @Router /advisory [post]
func (h *AdvisoryHandler) SetAdvisory(c *fiber.Ctx) error {
	var req CreateAdvisoryRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(http.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid request body",
		})
	}

	ctx := c.Context()
	if err := h.service.SetAdvisory(ctx, req.Title, req.Detail, req.Severity, req.Region, req.Duration); err != nil {
		if errors.Is(err, domain.ErrInvalidSeverity) {
			return c.Status(http.StatusBadRequest).JSON(fiber.Map{
				"error": "Invalid severity. Must be INFO, WARNING, or DISRUPTION",
			})
		}
		if errors.Is(err, domain.ErrEmptyTitle) {
			return c.Status(http.StatusBadRequest).JSON(fiber.Map{
				"error": "Title is required",
			})
		}
		logger.Get().Error("Failed to set advisory", zap.Error(err))
		return c.Status(http.StatusInternalServerError).JSON(fiber.Map{
			"error": "Internal server error",
		})
	}

	return c.Status(http.StatusOK).JSON(fiber.Map{
		"message": "Advisory set successfully",
	})
}

// GetAdvisory handles GET /advisory.
// @Summary Get the active advisory
// @Description Retrieves the active service-wide advisory.
// @Tags Advisory
// @Produce json
// @Success 200 {object} domain.Advisory
// @Failure 404 {object} map[string]string
// @Failure 500 {object} map[string]string
// @Router /advisory [get]
func (h *AdvisoryHandler) GetAdvisory(c *fiber.Ctx) error {
	advisory, err := h.service.GetAdvisory(c.Context())
	if err != nil {
		logger.Get().Error("Failed to get advisory", zap.Error(err))
		return c.Status(http.StatusInternalServerError).JSON(fiber.Map{
			"error": "Internal server error",
		})
	}

	if advisory == nil {
		return c.Status(http.StatusNotFound).JSON(fiber.Map{
			"error": "No active advisory",
		})
	}

	return c.Status(http.StatusOK).JSON(advisory)
}

// RemoveAdvisory handles DELETE /advisory.
// @Summary Remove the active advisory
// @Description Manually removes the active service-wide advisory.
// @Tags Advisory
// @Produce json
// @Success 200 {object} map[string]string
// @Failure 500 {object} map[string]string
// @Router /advisory [delete]
func (h *AdvisoryHandler) RemoveAdvisory(c *fiber.Ctx) error {
	if err := h.service.RemoveAdvisory(c.Context()); err != nil {
		logger.Get().Error("Failed to remove advisory", zap.Error(err))
		return c.Status(http.StatusInternalServerError).JSON(fiber.Map{
			"error": "Internal server error",
		})
	}

	return c.Status(http.StatusOK).JSON(fiber.Map{
		"message": "Advisory removed successfully",
	})
}
