package server

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/piresc/senyum/internal/pkg/logger"
	"github.com/piresc/senyum/internal/pkg/models"
)

const defaultShutdownTimeout = 30 * time.Second

// GracefulServer wraps Echo server with graceful shutdown capabilities
type GracefulServer struct {
	echo            *echo.Echo
	logger          *logger.ZapLogger
	addr            string
	shutdownTimeout time.Duration
	shutdown        *ShutdownManager
}

// NewGracefulServer creates a server listening on the configured host and port
func NewGracefulServer(e *echo.Echo, zapLogger *logger.ZapLogger, cfg models.ServerConfig) *GracefulServer {
	if cfg.ReadTimeout > 0 {
		e.Server.ReadTimeout = time.Duration(cfg.ReadTimeout) * time.Second
	}
	if cfg.WriteTimeout > 0 {
		e.Server.WriteTimeout = time.Duration(cfg.WriteTimeout) * time.Second
	}
	timeout := defaultShutdownTimeout
	if cfg.ShutdownTimeout > 0 {
		timeout = time.Duration(cfg.ShutdownTimeout) * time.Second
	}
	return &GracefulServer{
		echo:            e,
		logger:          zapLogger,
		addr:            fmt.Sprintf("%s:%d", cfg.Host, cfg.Port),
		shutdownTimeout: timeout,
	}
}

// OnShutdown runs sm after the HTTP server has drained
func (s *GracefulServer) OnShutdown(sm *ShutdownManager) {
	s.shutdown = sm
}

// Start serves until SIGINT or SIGTERM, then shuts down gracefully
func (s *GracefulServer) Start() error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	return s.Run(ctx)
}

// Run serves until ctx is cancelled or the listener fails
func (s *GracefulServer) Run(ctx context.Context) error {
	errCh := make(chan error, 1)
	go func() {
		s.logger.Info("Starting HTTP server", logger.String("address", s.addr))
		if err := s.echo.Start(s.addr); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err, ok := <-errCh:
		if ok {
			s.logger.Error("HTTP server stopped", logger.Err(err))
			return err
		}
		return nil
	case <-ctx.Done():
		s.logger.Info("Received shutdown signal")
	}
	return s.Shutdown()
}

// Shutdown gracefully shuts down the server and the registered components
func (s *GracefulServer) Shutdown() error {
	s.logger.Info("Shutting down server gracefully")

	ctx, cancel := context.WithTimeout(context.Background(), s.shutdownTimeout)
	defer cancel()

	if err := s.echo.Shutdown(ctx); err != nil {
		s.logger.Error("Server forced to shutdown", logger.Err(err))
		return err
	}
	if s.shutdown != nil {
		if err := s.shutdown.Shutdown(ctx); err != nil {
			return err
		}
	}

	s.logger.Info("Server shutdown completed")
	return nil
}

// ShutdownManager closes registered components in registration order
type ShutdownManager struct {
	logger    *logger.ZapLogger
	functions []func(context.Context) error
}

// NewShutdownManager creates a new shutdown manager
func NewShutdownManager(zapLogger *logger.ZapLogger) *ShutdownManager {
	return &ShutdownManager{logger: zapLogger}
}

// Register adds a cleanup function; nil is ignored
func (sm *ShutdownManager) Register(fn func(context.Context) error) {
	if fn == nil {
		return
	}
	sm.functions = append(sm.functions, fn)
}

// Shutdown runs every cleanup function, continuing past failures, and
// returns the joined errors
func (sm *ShutdownManager) Shutdown(ctx context.Context) error {
	sm.logger.Info("Starting graceful shutdown of components", logger.Int("components", len(sm.functions)))

	var errs []error
	for i, fn := range sm.functions {
		if err := fn(ctx); err != nil {
			sm.logger.Error("Error during component shutdown",
				logger.Int("component", i),
				logger.Err(err))
			errs = append(errs, err)
		}
	}

	sm.logger.Info("All components shutdown completed")
	return errors.Join(errs...)
}
