// Package circuitbreaker stops calling a failing dependency for a cool-down
// period so callers fail fast instead of queueing behind timeouts.
package circuitbreaker

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/piresc/senyum/internal/pkg/logger"
)

// State represents the circuit breaker state
type State int

const (
	StateClosed State = iota
	StateOpen
	StateHalfOpen
)

func (s State) String() string {
	switch s {
	case StateClosed:
		return "closed"
	case StateOpen:
		return "open"
	case StateHalfOpen:
		return "half_open"
	default:
		return "unknown"
	}
}

// ErrOpen is returned without calling the dependency while the breaker is open
var ErrOpen = errors.New("circuit breaker is open")

// Config holds circuit breaker configuration
type Config struct {
	Name             string
	FailureThreshold uint32        // consecutive failures that open the circuit
	Timeout          time.Duration // how long to stay open before probing
	// IsFailure decides which errors count; nil counts every error
	IsFailure func(err error) bool
}

// DefaultConfig returns the settings used for external providers
func DefaultConfig(name string) Config {
	return Config{
		Name:             name,
		FailureThreshold: 5,
		Timeout:          30 * time.Second,
	}
}

// CircuitBreaker guards calls to one dependency
type CircuitBreaker struct {
	config Config
	now    func() time.Time

	mu       sync.Mutex
	state    State
	failures uint32
	openedAt time.Time
	probing  bool
}

// New creates a closed circuit breaker
func New(config Config) *CircuitBreaker {
	if config.FailureThreshold == 0 {
		config.FailureThreshold = 1
	}
	return &CircuitBreaker{config: config, now: time.Now}
}

// Execute runs fn unless the circuit is open. While half open only one
// probe runs at a time; its outcome closes or reopens the circuit.
func (cb *CircuitBreaker) Execute(ctx context.Context, fn func(context.Context) error) error {
	if err := cb.before(); err != nil {
		return err
	}
	err := fn(ctx)
	cb.after(err)
	return err
}

func (cb *CircuitBreaker) before() error {
	cb.mu.Lock()
	defer cb.mu.Unlock()

	switch cb.state {
	case StateOpen:
		if cb.now().Sub(cb.openedAt) < cb.config.Timeout {
			return ErrOpen
		}
		cb.setState(StateHalfOpen)
		cb.probing = true
	case StateHalfOpen:
		if cb.probing {
			return ErrOpen
		}
		cb.probing = true
	}
	return nil
}

func (cb *CircuitBreaker) after(err error) {
	cb.mu.Lock()
	defer cb.mu.Unlock()

	cb.probing = false
	if err == nil || !cb.counts(err) {
		cb.failures = 0
		if cb.state == StateHalfOpen {
			cb.setState(StateClosed)
		}
		return
	}

	cb.failures++
	if cb.state == StateHalfOpen || cb.failures >= cb.config.FailureThreshold {
		cb.openedAt = cb.now()
		cb.setState(StateOpen)
	}
}

func (cb *CircuitBreaker) counts(err error) bool {
	if cb.config.IsFailure == nil {
		return true
	}
	return cb.config.IsFailure(err)
}

func (cb *CircuitBreaker) setState(state State) {
	if cb.state == state {
		return
	}
	logger.Warn("Circuit breaker state changed",
		logger.String("name", cb.config.Name),
		logger.String("from", cb.state.String()),
		logger.String("to", state.String()),
		logger.Int("consecutive_failures", int(cb.failures)))
	cb.state = state
}

// State returns the current state
func (cb *CircuitBreaker) State() State {
	cb.mu.Lock()
	defer cb.mu.Unlock()
	return cb.state
}
