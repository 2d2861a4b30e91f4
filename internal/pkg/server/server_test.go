package server

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/piresc/senyum/internal/pkg/logger"
	"github.com/piresc/senyum/internal/pkg/models"
	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
)

func nopLogger() *logger.ZapLogger {
	return logger.NewFromZap(zap.NewNop(), "test")
}

func TestNewGracefulServer(t *testing.T) {
	e := echo.New()
	gs := NewGracefulServer(e, nopLogger(), models.ServerConfig{
		Host:            "127.0.0.1",
		Port:            9990,
		ReadTimeout:     5,
		WriteTimeout:    10,
		ShutdownTimeout: 3,
	})

	assert.Equal(t, "127.0.0.1:9990", gs.addr)
	assert.Equal(t, 3*time.Second, gs.shutdownTimeout)
	assert.Equal(t, 5*time.Second, e.Server.ReadTimeout)
	assert.Equal(t, 10*time.Second, e.Server.WriteTimeout)

	gs = NewGracefulServer(echo.New(), nopLogger(), models.ServerConfig{Port: 1})
	assert.Equal(t, defaultShutdownTimeout, gs.shutdownTimeout)
}

func TestGracefulServer_Run(t *testing.T) {
	e := echo.New()
	e.HideBanner = true
	gs := NewGracefulServer(e, nopLogger(), models.ServerConfig{Host: "127.0.0.1", Port: 0})

	closed := false
	sm := NewShutdownManager(nopLogger())
	sm.Register(func(ctx context.Context) error {
		closed = true
		return nil
	})
	gs.OnShutdown(sm)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- gs.Run(ctx) }()

	time.Sleep(100 * time.Millisecond)
	cancel()

	select {
	case err := <-done:
		assert.NoError(t, err)
		assert.True(t, closed)
	case <-time.After(5 * time.Second):
		t.Fatal("server did not stop")
	}
}

func TestShutdownManager(t *testing.T) {
	t.Run("runs functions in registration order", func(t *testing.T) {
		sm := NewShutdownManager(nopLogger())
		var order []int
		for i := 0; i < 3; i++ {
			i := i
			sm.Register(func(ctx context.Context) error {
				order = append(order, i)
				return nil
			})
		}

		assert.NoError(t, sm.Shutdown(context.Background()))
		assert.Equal(t, []int{0, 1, 2}, order)
	})

	t.Run("ignores nil functions", func(t *testing.T) {
		sm := NewShutdownManager(nopLogger())
		assert.NotPanics(t, func() { sm.Register(nil) })
		assert.NoError(t, sm.Shutdown(context.Background()))
	})

	t.Run("continues after a failure and reports it", func(t *testing.T) {
		sm := NewShutdownManager(nopLogger())
		boom := errors.New("close failed")
		secondCalled := false
		sm.Register(func(ctx context.Context) error { return boom })
		sm.Register(func(ctx context.Context) error {
			secondCalled = true
			return nil
		})

		err := sm.Shutdown(context.Background())

		assert.ErrorIs(t, err, boom)
		assert.True(t, secondCalled)
	})
}
