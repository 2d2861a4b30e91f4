package health

import (
	"context"
	"net/http"
	"os"
	"runtime"
	"sort"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/piresc/senyum/internal/pkg/logger"
)

// BuildInfo contains information about the build
type BuildInfo struct {
	Version     string    `json:"version"`
	GitCommit   string    `json:"git_commit"`
	BuildTime   string    `json:"build_time"`
	ServiceName string    `json:"service_name"`
	GoVersion   string    `json:"go_version"`
	Hostname    string    `json:"hostname"`
	ServerTime  time.Time `json:"server_time"`
}

// DefaultBuildInfo contains default build information
var DefaultBuildInfo = BuildInfo{
	Version:   "development",
	GitCommit: "unknown",
	BuildTime: "unknown",
	GoVersion: runtime.Version(),
}

// Checker reports whether a dependency is usable
type Checker interface {
	CheckHealth(ctx context.Context) error
}

// CheckerFunc adapts a function to Checker
type CheckerFunc func(ctx context.Context) error

// CheckHealth calls f(ctx)
func (f CheckerFunc) CheckHealth(ctx context.Context) error {
	return f(ctx)
}

// DependencyInfo is the health of one dependency
type DependencyInfo struct {
	Status string `json:"status"`
	Error  string `json:"error,omitempty"`
}

// Report is the readiness response body
type Report struct {
	Status       string                    `json:"status"`
	Service      string                    `json:"service"`
	Timestamp    time.Time                 `json:"timestamp"`
	Dependencies map[string]DependencyInfo `json:"dependencies"`
}

// Service runs the registered dependency checks
type Service struct {
	checkers map[string]Checker
}

// NewService creates an empty health service
func NewService() *Service {
	return &Service{checkers: make(map[string]Checker)}
}

// AddChecker registers a dependency check under name
func (s *Service) AddChecker(name string, checker Checker) {
	if checker == nil {
		return
	}
	s.checkers[name] = checker
}

// Check runs every checker and aggregates the outcome
func (s *Service) Check(ctx context.Context) Report {
	report := Report{
		Status:       "healthy",
		Timestamp:    time.Now(),
		Dependencies: make(map[string]DependencyInfo, len(s.checkers)),
	}

	names := make([]string, 0, len(s.checkers))
	for name := range s.checkers {
		names = append(names, name)
	}
	sort.Strings(names)

	for _, name := range names {
		if err := s.checkers[name].CheckHealth(ctx); err != nil {
			logger.WarnCtx(ctx, "Health check failed",
				logger.String("dependency", name),
				logger.Err(err))
			report.Dependencies[name] = DependencyInfo{Status: "unhealthy", Error: err.Error()}
			report.Status = "unhealthy"
			continue
		}
		report.Dependencies[name] = DependencyInfo{Status: "healthy"}
	}
	return report
}

// NewPingHandler creates a handler for the ping endpoint
func NewPingHandler(serviceName string) echo.HandlerFunc {
	hostname, err := os.Hostname()
	if err != nil {
		hostname = "unknown"
	}

	buildInfo := DefaultBuildInfo
	buildInfo.ServiceName = serviceName
	if version := os.Getenv("VERSION"); version != "" {
		buildInfo.Version = version
	}
	if gitCommit := os.Getenv("GIT_COMMIT"); gitCommit != "" {
		buildInfo.GitCommit = gitCommit
	}
	if buildTime := os.Getenv("BUILD_TIME"); buildTime != "" {
		buildInfo.BuildTime = buildTime
	}

	return func(c echo.Context) error {
		info := buildInfo
		info.Hostname = hostname
		info.ServerTime = time.Now()
		return c.JSON(http.StatusOK, info)
	}
}

// RegisterHealthEndpoints registers /ping and the liveness endpoints, plus a
// /ready probe that runs svc's checks. svc may be nil.
func RegisterHealthEndpoints(e *echo.Echo, serviceName string, svc *Service) {
	e.GET("/ping", NewPingHandler(serviceName))

	live := func(c echo.Context) error {
		return c.String(http.StatusOK, "OK")
	}
	e.GET("/health", live)
	e.GET("/healthz", live)

	e.GET("/ready", func(c echo.Context) error {
		if svc == nil {
			return c.String(http.StatusOK, "OK")
		}
		ctx, cancel := context.WithTimeout(c.Request().Context(), 3*time.Second)
		defer cancel()

		report := svc.Check(ctx)
		report.Service = serviceName
		if report.Status != "healthy" {
			return c.JSON(http.StatusServiceUnavailable, report)
		}
		return c.JSON(http.StatusOK, report)
	})
}
