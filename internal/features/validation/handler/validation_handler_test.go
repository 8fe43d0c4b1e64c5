package handler

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"shipment-validator/internal/features/validation/domain"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// MockValidationService is a mock implementation of ports.ValidationService
type MockValidationService struct {
	mock.Mock
}

func (m *MockValidationService) Validate(ctx context.Context, shipments []domain.Shipment) (*domain.Report, error) {
	args := m.Called(ctx, shipments)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Report), args.Error(1)
}

func (m *MockValidationService) Submit(ctx context.Context, shipments []domain.Shipment) (string, *domain.Report, error) {
	args := m.Called(ctx, shipments)
	if args.Get(1) == nil {
		return args.String(0), nil, args.Error(2)
	}
	return args.String(0), args.Get(1).(*domain.Report), args.Error(2)
}

func (m *MockValidationService) GetReport(ctx context.Context, id string, filter domain.StatusFilter) (*domain.Report, error) {
	args := m.Called(ctx, id, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Report), args.Error(1)
}

func (m *MockValidationService) DeleteReport(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockValidationService) Health(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func setupApp(service *MockValidationService) *fiber.App {
	app := fiber.New()
	app.Use(func(c *fiber.Ctx) error {
		c.Locals("requestid", "test-ray-id")
		return c.Next()
	})
	NewValidationHandler(service).Register(app)
	return app
}

func testReport() *domain.Report {
	return &domain.Report{
		Summary: domain.Summary{TotalShipments: 1, InvalidShipments: 1, AnomaliesDetected: 1},
		Shipments: []domain.ShipmentResult{{
			ShipmentNo: "S1",
			TrackingID: "T1",
			Status:     domain.ShipmentInvalid,
			Anomalies:  []domain.Anomaly{{Type: domain.AnomalyNoEvents, Message: "Shipment has no tracking events"}},
		}},
		AnomalySummary: domain.AnomalySummary{NoEvents: 1},
	}
}

func decodeError(t *testing.T, resp *http.Response) ErrorResponse {
	t.Helper()
	var body ErrorResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	return body
}

func TestValidationHandler_SubmitValidation(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		mockService := new(MockValidationService)
		app := setupApp(mockService)

		expected := []domain.Shipment{{ShipmentNo: "S1", TrackingID: "T1", TrackingEvents: []domain.TrackingEvent{}}}
		mockService.On("Submit", mock.Anything, expected).Return("01J0000000000000000000000A", testReport(), nil).Once()

		req := httptest.NewRequest("POST", "/validations", strings.NewReader(`[{"shipment_no":"S1","tracking_id":"T1","tracking_events":[]}]`))
		req.Header.Set("Content-Type", "application/json")
		resp, err := app.Test(req)

		require.NoError(t, err)
		assert.Equal(t, http.StatusCreated, resp.StatusCode)

		var body SubmissionResponse
		require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
		assert.Equal(t, "01J0000000000000000000000A", body.ID)
		assert.Equal(t, 1, body.Report.Summary.InvalidShipments)
		mockService.AssertExpectations(t)
	})

	t.Run("NotAnArray", func(t *testing.T) {
		mockService := new(MockValidationService)
		app := setupApp(mockService)

		req := httptest.NewRequest("POST", "/validations", strings.NewReader(`{"shipment_no":"S1"}`))
		resp, err := app.Test(req)

		require.NoError(t, err)
		assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
		body := decodeError(t, resp)
		assert.Contains(t, body.Message, "JSON array")
		assert.Equal(t, "test-ray-id", body.RayID)
		mockService.AssertNotCalled(t, "Submit", mock.Anything, mock.Anything)
	})

	t.Run("Malformed", func(t *testing.T) {
		mockService := new(MockValidationService)
		app := setupApp(mockService)

		req := httptest.NewRequest("POST", "/validations", strings.NewReader(`[{"shipment_no":`))
		resp, err := app.Test(req)

		require.NoError(t, err)
		assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
		mockService.AssertNotCalled(t, "Submit", mock.Anything, mock.Anything)
	})

	t.Run("ServiceError", func(t *testing.T) {
		mockService := new(MockValidationService)
		app := setupApp(mockService)

		mockService.On("Submit", mock.Anything, mock.Anything).Return("", nil, errors.New("redis down")).Once()

		req := httptest.NewRequest("POST", "/validations", strings.NewReader(`[]`))
		resp, err := app.Test(req)

		require.NoError(t, err)
		assert.Equal(t, http.StatusInternalServerError, resp.StatusCode)
		assert.Equal(t, "internal server error", decodeError(t, resp).Message)
		mockService.AssertExpectations(t)
	})
}

func TestValidationHandler_GetValidation(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		mockService := new(MockValidationService)
		app := setupApp(mockService)

		mockService.On("GetReport", mock.Anything, "r1", domain.FilterInvalid).Return(testReport(), nil).Once()

		resp, err := app.Test(httptest.NewRequest("GET", "/validations/r1?status=invalid", nil))

		require.NoError(t, err)
		assert.Equal(t, http.StatusOK, resp.StatusCode)

		var report domain.Report
		require.NoError(t, json.NewDecoder(resp.Body).Decode(&report))
		assert.Equal(t, *testReport(), report)
		mockService.AssertExpectations(t)
	})

	t.Run("DefaultFilter", func(t *testing.T) {
		mockService := new(MockValidationService)
		app := setupApp(mockService)

		mockService.On("GetReport", mock.Anything, "r1", domain.FilterAll).Return(testReport(), nil).Once()

		resp, err := app.Test(httptest.NewRequest("GET", "/validations/r1", nil))

		require.NoError(t, err)
		assert.Equal(t, http.StatusOK, resp.StatusCode)
		mockService.AssertExpectations(t)
	})

	t.Run("InvalidFilter", func(t *testing.T) {
		mockService := new(MockValidationService)
		app := setupApp(mockService)

		resp, err := app.Test(httptest.NewRequest("GET", "/validations/r1?status=pending", nil))

		require.NoError(t, err)
		assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
		mockService.AssertNotCalled(t, "GetReport", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("NotFound", func(t *testing.T) {
		mockService := new(MockValidationService)
		app := setupApp(mockService)

		notFound := fmt.Errorf("service: failed to get report: %w", domain.ErrReportNotFound)
		mockService.On("GetReport", mock.Anything, "missing", domain.FilterAll).Return(nil, notFound).Once()

		resp, err := app.Test(httptest.NewRequest("GET", "/validations/missing", nil))

		require.NoError(t, err)
		assert.Equal(t, http.StatusNotFound, resp.StatusCode)
		assert.Equal(t, "report not found", decodeError(t, resp).Message)
	})

	t.Run("ServiceError", func(t *testing.T) {
		mockService := new(MockValidationService)
		app := setupApp(mockService)

		mockService.On("GetReport", mock.Anything, "r1", domain.FilterAll).Return(nil, errors.New("timeout")).Once()

		resp, err := app.Test(httptest.NewRequest("GET", "/validations/r1", nil))

		require.NoError(t, err)
		assert.Equal(t, http.StatusInternalServerError, resp.StatusCode)
	})
}

func TestValidationHandler_DeleteValidation(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		mockService := new(MockValidationService)
		app := setupApp(mockService)

		mockService.On("DeleteReport", mock.Anything, "r1").Return(nil).Once()

		resp, err := app.Test(httptest.NewRequest("DELETE", "/validations/r1", nil))

		require.NoError(t, err)
		assert.Equal(t, http.StatusNoContent, resp.StatusCode)
		mockService.AssertExpectations(t)
	})

	t.Run("Error", func(t *testing.T) {
		mockService := new(MockValidationService)
		app := setupApp(mockService)

		mockService.On("DeleteReport", mock.Anything, "r1").Return(errors.New("db error")).Once()

		resp, err := app.Test(httptest.NewRequest("DELETE", "/validations/r1", nil))

		require.NoError(t, err)
		assert.Equal(t, http.StatusInternalServerError, resp.StatusCode)
	})
}

func TestValidationHandler_ListStatusCodes(t *testing.T) {
	app := setupApp(new(MockValidationService))

	resp, err := app.Test(httptest.NewRequest("GET", "/status-codes", nil))

	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	var codes []domain.StatusDescriptor
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&codes))
	require.Len(t, codes, 33)
	assert.Equal(t, domain.StatusBookingPending, codes[0].Code)
	assert.True(t, codes[0].Start)
}

func TestValidationHandler_Health(t *testing.T) {
	t.Run("Healthy", func(t *testing.T) {
		mockService := new(MockValidationService)
		app := setupApp(mockService)
		mockService.On("Health", mock.Anything).Return(nil).Once()

		resp, err := app.Test(httptest.NewRequest("GET", "/health", nil))

		require.NoError(t, err)
		assert.Equal(t, http.StatusOK, resp.StatusCode)
	})

	t.Run("Unavailable", func(t *testing.T) {
		mockService := new(MockValidationService)
		app := setupApp(mockService)
		mockService.On("Health", mock.Anything).Return(errors.New("connection refused")).Once()

		resp, err := app.Test(httptest.NewRequest("GET", "/health", nil))

		require.NoError(t, err)
		assert.Equal(t, http.StatusServiceUnavailable, resp.StatusCode)
		assert.Equal(t, "test-ray-id", decodeError(t, resp).RayID)
	})
}
