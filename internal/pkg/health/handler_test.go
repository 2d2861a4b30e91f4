package health

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"runtime"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultBuildInfo(t *testing.T) {
	assert.Equal(t, "development", DefaultBuildInfo.Version)
	assert.Equal(t, "unknown", DefaultBuildInfo.GitCommit)
	assert.Equal(t, runtime.Version(), DefaultBuildInfo.GoVersion)
	assert.Empty(t, DefaultBuildInfo.ServiceName)
}

func TestNewPingHandler(t *testing.T) {
	t.Setenv("VERSION", "1.2.3")

	e := echo.New()
	rec := httptest.NewRecorder()
	c := e.NewContext(httptest.NewRequest(http.MethodGet, "/ping", nil), rec)

	require.NoError(t, NewPingHandler("directory")(c))

	assert.Equal(t, http.StatusOK, rec.Code)
	var info BuildInfo
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &info))
	assert.Equal(t, "directory", info.ServiceName)
	assert.Equal(t, "1.2.3", info.Version)
	assert.NotEmpty(t, info.Hostname)
	assert.False(t, info.ServerTime.IsZero())
}

func TestRegisterHealthEndpoints(t *testing.T) {
	tests := []struct {
		name       string
		path       string
		checkers   map[string]Checker
		wantStatus int
		wantBody   string
	}{
		{name: "health", path: "/health", wantStatus: http.StatusOK, wantBody: "OK"},
		{name: "healthz", path: "/healthz", wantStatus: http.StatusOK, wantBody: "OK"},
		{
			name: "ready with healthy dependencies",
			path: "/ready",
			checkers: map[string]Checker{
				"postgres": CheckerFunc(func(ctx context.Context) error { return nil }),
			},
			wantStatus: http.StatusOK,
			wantBody:   `"postgres":{"status":"healthy"}`,
		},
		{
			name: "ready with a failing dependency",
			path: "/ready",
			checkers: map[string]Checker{
				"postgres": CheckerFunc(func(ctx context.Context) error { return nil }),
				"redis":    CheckerFunc(func(ctx context.Context) error { return errors.New("connection refused") }),
			},
			wantStatus: http.StatusServiceUnavailable,
			wantBody:   `"error":"connection refused"`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := NewService()
			for name, checker := range tt.checkers {
				svc.AddChecker(name, checker)
			}
			e := echo.New()
			RegisterHealthEndpoints(e, "directory", svc)

			rec := httptest.NewRecorder()
			e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, tt.path, nil))

			assert.Equal(t, tt.wantStatus, rec.Code)
			assert.Contains(t, rec.Body.String(), tt.wantBody)
		})
	}
}

func TestRegisterHealthEndpoints_NilService(t *testing.T) {
	e := echo.New()
	RegisterHealthEndpoints(e, "seed", nil)

	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/ready", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
}
