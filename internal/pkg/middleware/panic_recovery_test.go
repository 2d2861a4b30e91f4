package middleware

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/piresc/senyum/internal/pkg/logger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

func TestPanicRecoveryMiddleware(t *testing.T) {
	var logBuffer bytes.Buffer
	core := zapcore.NewCore(
		zapcore.NewJSONEncoder(zap.NewProductionEncoderConfig()),
		zapcore.AddSync(&logBuffer),
		zapcore.DebugLevel,
	)
	zl := logger.NewFromZap(zap.New(core), "test")

	tests := []struct {
		name         string
		panicValue   interface{}
		expectInLogs []string
	}{
		{name: "string panic", panicValue: "test panic message", expectInLogs: []string{"test panic message", "stack_trace"}},
		{name: "error panic", panicValue: errors.New("test error panic"), expectInLogs: []string{"test error panic", "*errors.errorString"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			logBuffer.Reset()
			e := echo.New()
			handler := PanicRecoveryMiddleware(zl)(func(c echo.Context) error {
				panic(tt.panicValue)
			})

			req := httptest.NewRequest(http.MethodGet, "/dentists/nearby", nil)
			rec := httptest.NewRecorder()
			c := e.NewContext(req, rec)
			c.Response().Header().Set(echo.HeaderXRequestID, "req-42")

			err := handler(c)

			assert.NoError(t, err)
			assert.Equal(t, http.StatusInternalServerError, rec.Code)
			var response map[string]interface{}
			require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &response))
			assert.Equal(t, false, response["success"])
			assert.Equal(t, "req-42", response["request_id"])

			logOutput := logBuffer.String()
			assert.Contains(t, logOutput, "Panic recovered during request processing")
			assert.Contains(t, logOutput, "/dentists/nearby")
			for _, expected := range tt.expectInLogs {
				assert.Contains(t, logOutput, expected)
			}
		})
	}
}

func TestPanicRecoveryMiddleware_NoPanic(t *testing.T) {
	zl := logger.NewFromZap(zap.NewNop(), "test")
	e := echo.New()
	handler := PanicRecoveryMiddleware(zl)(func(c echo.Context) error {
		return c.String(http.StatusOK, "ok")
	})

	rec := httptest.NewRecorder()
	err := handler(e.NewContext(httptest.NewRequest(http.MethodGet, "/", nil), rec))

	assert.NoError(t, err)
	assert.Equal(t, http.StatusOK, rec.Code)
}
