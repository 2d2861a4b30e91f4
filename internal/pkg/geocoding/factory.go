package geocoding

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/piresc/senyum/internal/pkg/circuitbreaker"
	"github.com/piresc/senyum/internal/pkg/geo"
	"github.com/piresc/senyum/internal/pkg/metrics"
	"github.com/piresc/senyum/internal/pkg/models"
	"github.com/piresc/senyum/internal/pkg/retry"
	"googlemaps.github.io/maps"
)

// ProviderType names a geocoding backend
type ProviderType string

const (
	ProviderTypeGoogle    ProviderType = "google"
	ProviderTypeNominatim ProviderType = "nominatim"
)

// NewProvider builds the configured provider wrapped with retries and metrics
func NewProvider(cfg models.GeocodingConfig, m *metrics.Metrics) (Provider, error) {
	var (
		base Provider
		err  error
	)
	switch ProviderType(cfg.Provider) {
	case ProviderTypeGoogle:
		base, err = newGoogleProvider(cfg)
	case ProviderTypeNominatim:
		base = NewNominatimProvider(nil, "", cfg.UserAgent, cfg.RateLimit)
	default:
		return nil, fmt.Errorf("unsupported provider type: %s", cfg.Provider)
	}
	if err != nil {
		return nil, err
	}

	rc := retry.DefaultConfig()
	rc.MaxRetries = cfg.MaxRetries
	bc := circuitbreaker.DefaultConfig("geocoding." + base.Name())
	bc.IsFailure = isTransient
	return NewInstrumented(base, retry.New(rc, nil), circuitbreaker.New(bc), m), nil
}

func newGoogleProvider(cfg models.GeocodingConfig) (Provider, error) {
	if cfg.APIKey == "" {
		return nil, errors.New("API key is required for Google provider")
	}
	opts := []maps.ClientOption{maps.WithAPIKey(cfg.APIKey)}
	if cfg.RateLimit > 0 {
		opts = append(opts, maps.WithRateLimit(cfg.RateLimit))
	}
	client, err := maps.NewClient(opts...)
	if err != nil {
		return nil, fmt.Errorf("failed to create Google Maps client: %w", err)
	}
	return NewGoogleProvider(client, ""), nil
}

// Instrumented retries transient failures, fails fast while the provider
// keeps failing and records provider metrics
type Instrumented struct {
	next    Provider
	retrier *retry.Retrier
	breaker *circuitbreaker.CircuitBreaker
	metrics *metrics.Metrics
}

// NewInstrumented decorates next; breaker may be nil
func NewInstrumented(next Provider, retrier *retry.Retrier, breaker *circuitbreaker.CircuitBreaker, m *metrics.Metrics) *Instrumented {
	return &Instrumented{next: next, retrier: retrier, breaker: breaker, metrics: m}
}

// Name implements Provider
func (p *Instrumented) Name() string { return p.next.Name() }

// Geocode implements Provider
func (p *Instrumented) Geocode(ctx context.Context, address string) (*geo.Coordinate, error) {
	var coord *geo.Coordinate
	attempt := func(ctx context.Context) error {
		start := time.Now()
		c, err := p.next.Geocode(ctx, address)
		p.metrics.ObserveGeocode(p.next.Name(), time.Since(start), err)
		if err != nil {
			if !isTransient(err) {
				return retry.Permanent(err)
			}
			return err
		}
		coord = c
		return nil
	}
	call := func(ctx context.Context) error { return p.retrier.Execute(ctx, attempt) }

	var err error
	if p.breaker != nil {
		err = p.breaker.Execute(ctx, call)
	} else {
		err = call(ctx)
	}
	if err != nil {
		return nil, err
	}
	return coord, nil
}

func isTransient(err error) bool {
	if errors.Is(err, ErrNoResult) || errors.Is(err, context.Canceled) {
		return false
	}
	var statusErr *StatusError
	if errors.As(err, &statusErr) {
		return statusErr.Temporary()
	}
	return true
}
