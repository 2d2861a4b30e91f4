package circuitbreaker

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

var errUpstream = errors.New("upstream 503")

func newTestBreaker(threshold uint32) (*CircuitBreaker, *time.Time) {
	now := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	cb := New(Config{Name: "geocoder", FailureThreshold: threshold, Timeout: 30 * time.Second})
	cb.now = func() time.Time { return now }
	return cb, &now
}

func fail(context.Context) error    { return errUpstream }
func succeed(context.Context) error { return nil }

func TestCircuitBreaker_OpensAfterThreshold(t *testing.T) {
	cb, _ := newTestBreaker(3)
	ctx := context.Background()

	for i := 0; i < 3; i++ {
		assert.ErrorIs(t, cb.Execute(ctx, fail), errUpstream)
	}
	assert.Equal(t, StateOpen, cb.State())

	called := false
	err := cb.Execute(ctx, func(context.Context) error { called = true; return nil })
	assert.ErrorIs(t, err, ErrOpen)
	assert.False(t, called)
}

func TestCircuitBreaker_SuccessResetsFailures(t *testing.T) {
	cb, _ := newTestBreaker(2)
	ctx := context.Background()

	_ = cb.Execute(ctx, fail)
	_ = cb.Execute(ctx, succeed)
	_ = cb.Execute(ctx, fail)
	assert.Equal(t, StateClosed, cb.State())
}

func TestCircuitBreaker_HalfOpenProbe(t *testing.T) {
	ctx := context.Background()

	t.Run("probe success closes", func(t *testing.T) {
		cb, now := newTestBreaker(1)
		_ = cb.Execute(ctx, fail)
		*now = now.Add(31 * time.Second)

		assert.NoError(t, cb.Execute(ctx, succeed))
		assert.Equal(t, StateClosed, cb.State())
	})

	t.Run("probe failure reopens", func(t *testing.T) {
		cb, now := newTestBreaker(1)
		_ = cb.Execute(ctx, fail)
		*now = now.Add(31 * time.Second)

		assert.ErrorIs(t, cb.Execute(ctx, fail), errUpstream)
		assert.Equal(t, StateOpen, cb.State())
		assert.ErrorIs(t, cb.Execute(ctx, succeed), ErrOpen)
	})

	t.Run("one probe at a time", func(t *testing.T) {
		cb, now := newTestBreaker(1)
		_ = cb.Execute(ctx, fail)
		*now = now.Add(31 * time.Second)

		err := cb.Execute(ctx, func(context.Context) error {
			assert.ErrorIs(t, cb.Execute(ctx, succeed), ErrOpen)
			return nil
		})
		assert.NoError(t, err)
	})
}

func TestCircuitBreaker_IgnoredErrors(t *testing.T) {
	notFound := errors.New("no result")
	cb := New(Config{
		Name:             "geocoder",
		FailureThreshold: 1,
		Timeout:          time.Minute,
		IsFailure:        func(err error) bool { return !errors.Is(err, notFound) },
	})

	for i := 0; i < 5; i++ {
		_ = cb.Execute(context.Background(), func(context.Context) error { return notFound })
	}
	assert.Equal(t, StateClosed, cb.State())
}
