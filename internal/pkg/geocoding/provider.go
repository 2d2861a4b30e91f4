// Package geocoding turns a practice address into coordinates.
package geocoding

import (
	"context"
	"errors"

	"github.com/piresc/senyum/internal/pkg/geo"
)

//go:generate mockgen -destination=mocks/mock_provider.go -package=mocks github.com/piresc/senyum/internal/pkg/geocoding Provider,GoogleAPIClient

// Provider geocodes a free-form address
type Provider interface {
	Geocode(ctx context.Context, address string) (*geo.Coordinate, error)
	Name() string
}

// ErrNoResult is returned when the provider found nothing for the address
var ErrNoResult = errors.New("address could not be geocoded")
