package handler

import (
	"errors"
	"net/http"

	"shipment-validator/internal/core/logger"
	"shipment-validator/internal/features/validation/adapters"
	"shipment-validator/internal/features/validation/domain"
	"shipment-validator/internal/features/validation/ports"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// ValidationHandler handles HTTP requests for validation operations.
type ValidationHandler struct {
	service ports.ValidationService
}

// NewValidationHandler creates a new ValidationHandler.
func NewValidationHandler(service ports.ValidationService) *ValidationHandler {
	return &ValidationHandler{
		service: service,
	}
}

// ErrorResponse represents an error response with Ray ID.
type ErrorResponse struct {
	// Message is the error description.
	Message string `json:"message"`
	// RayID is the unique request identifier for tracing.
	RayID string `json:"ray_id,omitempty"`
}

// SubmissionResponse is returned after a batch has been validated and stored.
type SubmissionResponse struct {
	ID     string         `json:"id"`
	Report *domain.Report `json:"report"`
}

// HealthResponse reports service readiness.
type HealthResponse struct {
	Status string `json:"status"`
}

func rayID(c *fiber.Ctx) string {
	id, _ := c.Locals("requestid").(string)
	return id
}

func fail(c *fiber.Ctx, status int, message string) error {
	return c.Status(status).JSON(ErrorResponse{
		Message: message,
		RayID:   rayID(c),
	})
}

// SubmitValidation godoc
// @Summary Validate a batch of shipments
// @Description Validates every shipment's tracking history and stores the resulting report
// @Tags validations
// @Accept json
// @Produce json
// @Param shipments body []domain.Shipment true "Shipment records"
// @Success 201 {object} SubmissionResponse
// @Failure 400 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /validations [post]
func (h *ValidationHandler) SubmitValidation(c *fiber.Ctx) error {
	shipments, err := adapters.DecodeShipments(c.Body())
	if err != nil {
		if errors.Is(err, adapters.ErrNotAnArray) {
			return fail(c, http.StatusBadRequest, "request body must be a JSON array of shipments")
		}
		return fail(c, http.StatusBadRequest, "invalid request body")
	}

	id, report, err := h.service.Submit(c.UserContext(), shipments)
	if err != nil {
		logger.Get().Error("Failed to submit validation",
			zap.String("ray_id", rayID(c)),
			zap.Error(err),
		)
		return fail(c, http.StatusInternalServerError, "internal server error")
	}

	return c.Status(http.StatusCreated).JSON(SubmissionResponse{
		ID:     id,
		Report: report,
	})
}

// GetValidation godoc
// @Summary Get a stored validation report
// @Description Retrieves a report by ID, optionally keeping only valid or invalid shipments
// @Tags validations
// @Produce json
// @Param id path string true "Report ID"
// @Param status query string false "Shipment filter (all, valid, invalid)"
// @Success 200 {object} domain.Report
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /validations/{id} [get]
func (h *ValidationHandler) GetValidation(c *fiber.Ctx) error {
	filter, err := domain.ParseStatusFilter(c.Query("status"))
	if err != nil {
		return fail(c, http.StatusBadRequest, err.Error())
	}

	report, err := h.service.GetReport(c.UserContext(), c.Params("id"), filter)
	if err != nil {
		if errors.Is(err, domain.ErrReportNotFound) {
			return fail(c, http.StatusNotFound, "report not found")
		}
		logger.Get().Error("Failed to get report",
			zap.String("report_id", c.Params("id")),
			zap.Error(err),
		)
		return fail(c, http.StatusInternalServerError, "internal server error")
	}

	return c.JSON(report)
}

// DeleteValidation godoc
// @Summary Delete a stored validation report
// @Tags validations
// @Param id path string true "Report ID"
// @Success 204
// @Failure 500 {object} ErrorResponse
// @Router /validations/{id} [delete]
func (h *ValidationHandler) DeleteValidation(c *fiber.Ctx) error {
	if err := h.service.DeleteReport(c.UserContext(), c.Params("id")); err != nil {
		logger.Get().Error("Failed to delete report",
			zap.String("report_id", c.Params("id")),
			zap.Error(err),
		)
		return fail(c, http.StatusInternalServerError, "internal server error")
	}

	return c.SendStatus(http.StatusNoContent)
}

// ListStatusCodes godoc
// @Summary List known status codes
// @Description Returns the status registry with phases and allowed next states
// @Tags status-codes
// @Produce json
// @Success 200 {array} domain.StatusDescriptor
// @Router /status-codes [get]
func (h *ValidationHandler) ListStatusCodes(c *fiber.Ctx) error {
	return c.JSON(domain.Statuses())
}

// Health godoc
// @Summary Service health
// @Tags health
// @Produce json
// @Success 200 {object} HealthResponse
// @Failure 503 {object} ErrorResponse
// @Router /health [get]
func (h *ValidationHandler) Health(c *fiber.Ctx) error {
	if err := h.service.Health(c.UserContext()); err != nil {
		logger.Get().Warn("Health check failed", zap.Error(err))
		return fail(c, http.StatusServiceUnavailable, "report store unavailable")
	}

	return c.JSON(HealthResponse{Status: "ok"})
}

// Register mounts the validation routes on router.
func (h *ValidationHandler) Register(router fiber.Router) {
	router.Post("/validations", h.SubmitValidation)
	router.Get("/validations/:id", h.GetValidation)
	router.Delete("/validations/:id", h.DeleteValidation)
	router.Get("/status-codes", h.ListStatusCodes)
	router.Get("/health", h.Health)
}
