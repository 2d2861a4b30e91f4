package utils

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/piresc/senyum/internal/pkg/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newContext() (echo.Context, *httptest.ResponseRecorder) {
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	return e.NewContext(req, rec), rec
}

func decodeError(t *testing.T, rec *httptest.ResponseRecorder) ErrorResponse {
	t.Helper()
	var response ErrorResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &response))
	return response
}

func TestSuccessResponse(t *testing.T) {
	tests := []struct {
		name       string
		statusCode int
		message    string
		data       interface{}
	}{
		{name: "Success with string data", statusCode: http.StatusOK, message: "Operation successful", data: "test data"},
		{name: "Success with map data", statusCode: http.StatusCreated, message: "Resource created", data: map[string]interface{}{"id": "123"}},
		{name: "Success with nil data", statusCode: http.StatusOK, message: "Success", data: nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, rec := newContext()

			err := SuccessResponse(c, tt.statusCode, tt.message, tt.data)

			assert.NoError(t, err)
			assert.Equal(t, tt.statusCode, rec.Code)
			var response Response
			require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &response))
			assert.True(t, response.Success)
			assert.Equal(t, tt.message, response.Message)
			assert.Equal(t, tt.data, response.Data)
		})
	}
}

func TestErrorResponses(t *testing.T) {
	tests := []struct {
		name       string
		respond    func(c echo.Context) error
		statusCode int
		message    string
	}{
		{name: "bad request", respond: func(c echo.Context) error { return BadRequestResponse(c, "Invalid payload") }, statusCode: http.StatusBadRequest, message: "Invalid payload"},
		{name: "unauthorized default", respond: func(c echo.Context) error { return UnauthorizedResponse(c, "") }, statusCode: http.StatusUnauthorized, message: "Unauthorized"},
		{name: "forbidden default", respond: func(c echo.Context) error { return ForbiddenResponse(c, "") }, statusCode: http.StatusForbidden, message: "Forbidden"},
		{name: "not found default", respond: func(c echo.Context) error { return NotFoundResponse(c, "") }, statusCode: http.StatusNotFound, message: "Resource not found"},
		{name: "conflict custom", respond: func(c echo.Context) error { return ConflictResponse(c, "Slot taken") }, statusCode: http.StatusConflict, message: "Slot taken"},
		{name: "internal default", respond: func(c echo.Context) error { return InternalServerErrorResponse(c, "") }, statusCode: http.StatusInternalServerError, message: "Internal server error"},
		{name: "unavailable default", respond: func(c echo.Context) error { return ServiceUnavailableResponse(c, "") }, statusCode: http.StatusServiceUnavailable, message: "Service unavailable"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, rec := newContext()

			assert.NoError(t, tt.respond(c))

			assert.Equal(t, tt.statusCode, rec.Code)
			response := decodeError(t, rec)
			assert.False(t, response.Success)
			assert.Equal(t, tt.message, response.Error)
			assert.Equal(t, tt.statusCode, response.Code)
		})
	}
}

func TestUsecaseErrorResponse(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		statusCode int
		message    string
	}{
		{name: "invalid input", err: fmt.Errorf("%w: rating must be between 1 and 5", models.ErrInvalidInput), statusCode: http.StatusBadRequest, message: "invalid input: rating must be between 1 and 5"},
		{name: "unauthorized", err: models.ErrUnauthorized, statusCode: http.StatusUnauthorized, message: "unauthorized"},
		{name: "forbidden", err: fmt.Errorf("%w: not the profile owner", models.ErrForbidden), statusCode: http.StatusForbidden, message: "forbidden: not the profile owner"},
		{name: "not found", err: fmt.Errorf("dentist %s: %w", "x", models.ErrNotFound), statusCode: http.StatusNotFound, message: "dentist x: not found"},
		{name: "conflict", err: models.ErrConflict, statusCode: http.StatusConflict, message: "conflict"},
		{name: "unknown", err: errors.New("pq: connection reset"), statusCode: http.StatusInternalServerError, message: "Failed to load dentist"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, rec := newContext()

			assert.NoError(t, UsecaseErrorResponse(c, tt.err, "Failed to load dentist"))

			assert.Equal(t, tt.statusCode, rec.Code)
			assert.Equal(t, tt.message, decodeError(t, rec).Error)
		})
	}
}
