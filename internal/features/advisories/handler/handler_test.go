package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"consignment-tracker/internal/features/advisories/domain"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

// MockAdvisoryService is a mock implementation of ports.AdvisoryService
type MockAdvisoryService struct {
	mock.Mock
}

func (m *MockAdvisoryService) SetAdvisory(ctx context.Context, title, detail string, severity domain.AdvisorySeverity, region string, duration int) error {
	args := m.Called(ctx, title, detail, severity, region, duration)
	return args.Error(0)
}

func (m *MockAdvisoryService) GetAdvisory(ctx context.Context) (*domain.Advisory, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Advisory), args.Error(1)
}

func (m *MockAdvisoryService) RemoveAdvisory(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func setupApp(service *MockAdvisoryService) *fiber.App {
	app := fiber.New()
	handler := NewAdvisoryHandler(service)
	app.Post("/advisory", handler.SetAdvisory)
	app.Get("/advisory", handler.GetAdvisory)
	app.Delete("/advisory", handler.RemoveAdvisory)
	return app
}

func TestAdvisoryHandler_SetAdvisory(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		mockService := new(MockAdvisoryService)
		app := setupApp(mockService)

		reqBody := CreateAdvisoryRequest{
			Title:    "Monsoon delays",
			Detail:   "Coastal routes affected",
			Severity: domain.AdvisorySeverityWarning,
			Region:   "Chattogram",
			Duration: 3600,
		}
		body, _ := json.Marshal(reqBody)

		mockService.On("SetAdvisory", mock.Anything, reqBody.Title, reqBody.Detail, reqBody.Severity, reqBody.Region, reqBody.Duration).Return(nil).Once()

		req := httptest.NewRequest("POST", "/advisory", bytes.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
		resp, err := app.Test(req)

		assert.NoError(t, err)
		assert.Equal(t, http.StatusOK, resp.StatusCode)
		mockService.AssertExpectations(t)
	})

	t.Run("InvalidSeverity", func(t *testing.T) {
		mockService := new(MockAdvisoryService)
		app := setupApp(mockService)

		reqBody := CreateAdvisoryRequest{
			Title:    "Test",
			Severity: "CRITICAL",
		}
		body, _ := json.Marshal(reqBody)

		mockService.On("SetAdvisory", mock.Anything, reqBody.Title, "", domain.AdvisorySeverity("CRITICAL"), "", 0).Return(domain.ErrInvalidSeverity).Once()

		req := httptest.NewRequest("POST", "/advisory", bytes.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
		resp, err := app.Test(req)

		assert.NoError(t, err)
		assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
		mockService.AssertExpectations(t)
	})

	t.Run("InvalidBody", func(t *testing.T) {
		mockService := new(MockAdvisoryService)
		app := setupApp(mockService)

		req := httptest.NewRequest("POST", "/advisory", bytes.NewReader([]byte("{not json")))
		req.Header.Set("Content-Type", "application/json")
		resp, err := app.Test(req)

		assert.NoError(t, err)
		assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	})

	t.Run("ServiceError", func(t *testing.T) {
		mockService := new(MockAdvisoryService)
		app := setupApp(mockService)

		reqBody := CreateAdvisoryRequest{
			Title:    "Test",
			Severity: domain.AdvisorySeverityInfo,
		}
		body, _ := json.Marshal(reqBody)

		mockService.On("SetAdvisory", mock.Anything, reqBody.Title, "", reqBody.Severity, "", 0).Return(errors.New("cache down")).Once()

		req := httptest.NewRequest("POST", "/advisory", bytes.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
		resp, err := app.Test(req)

		assert.NoError(t, err)
		assert.Equal(t, http.StatusInternalServerError, resp.StatusCode)
		mockService.AssertExpectations(t)
	})
}

func TestAdvisoryHandler_GetAdvisory(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		mockService := new(MockAdvisoryService)
		app := setupApp(mockService)

		expected := &domain.Advisory{
			Title:    "Highway blockade",
			Severity: domain.AdvisorySeverityDisruption,
			Region:   "Dhaka",
		}
		mockService.On("GetAdvisory", mock.Anything).Return(expected, nil).Once()

		req := httptest.NewRequest("GET", "/advisory", nil)
		resp, err := app.Test(req)

		assert.NoError(t, err)
		assert.Equal(t, http.StatusOK, resp.StatusCode)

		var got domain.Advisory
		err = json.NewDecoder(resp.Body).Decode(&got)
		assert.NoError(t, err)
		assert.Equal(t, expected.Title, got.Title)
		assert.Equal(t, expected.Severity, got.Severity)
		mockService.AssertExpectations(t)
	})

	t.Run("NoActiveAdvisory", func(t *testing.T) {
		mockService := new(MockAdvisoryService)
		app := setupApp(mockService)

		mockService.On("GetAdvisory", mock.Anything).Return(nil, nil).Once()

		req := httptest.NewRequest("GET", "/advisory", nil)
		resp, err := app.Test(req)

		assert.NoError(t, err)
		assert.Equal(t, http.StatusNotFound, resp.StatusCode)
		mockService.AssertExpectations(t)
	})

	t.Run("ServiceError", func(t *testing.T) {
		mockService := new(MockAdvisoryService)
		app := setupApp(mockService)

		mockService.On("GetAdvisory", mock.Anything).Return(nil, errors.New("cache down")).Once()

		req := httptest.NewRequest("GET", "/advisory", nil)
		resp, err := app.Test(req)

		assert.NoError(t, err)
		assert.Equal(t, http.StatusInternalServerError, resp.StatusCode)
		mockService.AssertExpectations(t)
	})
}

func TestAdvisoryHandler_RemoveAdvisory(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		mockService := new(MockAdvisoryService)
		app := setupApp(mockService)

		mockService.On("RemoveAdvisory", mock.Anything).Return(nil).Once()

		req := httptest.NewRequest("DELETE", "/advisory", nil)
		resp, err := app.Test(req)

		assert.NoError(t, err)
		assert.Equal(t, http.StatusOK, resp.StatusCode)
		mockService.AssertExpectations(t)
	})

	t.Run("ServiceError", func(t *testing.T) {
		mockService := new(MockAdvisoryService)
		app := setupApp(mockService)

		mockService.On("RemoveAdvisory", mock.Anything).Return(errors.New("cache down")).Once()

		req := httptest.NewRequest("DELETE", "/advisory", nil)
		resp, err := app.Test(req)

		assert.NoError(t, err)
		assert.Equal(t, http.StatusInternalServerError, resp.StatusCode)
		mockService.AssertExpectations(t)
	})
}
