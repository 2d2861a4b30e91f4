package geocoding

import (
	"context"
	"fmt"

	"github.com/piresc/senyum/internal/pkg/geo"
	"github.com/piresc/senyum/internal/pkg/logger"
	"github.com/piresc/senyum/internal/pkg/newrelic"
	"googlemaps.github.io/maps"
)

// GoogleAPIClient is the part of maps.Client the provider calls
type GoogleAPIClient interface {
	Geocode(ctx context.Context, r *maps.GeocodingRequest) ([]maps.GeocodingResult, error)
}

// GoogleProvider geocodes through the Google Maps Geocoding API
type GoogleProvider struct {
	client GoogleAPIClient
	region string
}

// NewGoogleProvider wraps client; region biases results (ccTLD, e.g. "id")
func NewGoogleProvider(client GoogleAPIClient, region string) *GoogleProvider {
	return &GoogleProvider{client: client, region: region}
}

// Name implements Provider
func (gp *GoogleProvider) Name() string { return string(ProviderTypeGoogle) }

// Geocode implements Provider
func (gp *GoogleProvider) Geocode(ctx context.Context, address string) (*geo.Coordinate, error) {
	logger.DebugCtx(ctx, "Geocoding using Google Maps", logger.String("address", address))

	req := &maps.GeocodingRequest{Address: address, Region: gp.region}
	var results []maps.GeocodingResult
	err := newrelic.WithExternalSegment(ctx, "googlemaps", "Geocode", "https://maps.googleapis.com/maps/api/geocode", func() error {
		var err error
		results, err = gp.client.Geocode(ctx, req)
		return err
	})
	if err != nil {
		return nil, fmt.Errorf("failed to geocode address: %w", err)
	}
	if len(results) == 0 {
		return nil, ErrNoResult
	}

	loc := results[0].Geometry.Location
	coord := geo.Coordinate{Latitude: loc.Lat, Longitude: loc.Lng}
	if err := coord.Validate(); err != nil {
		return nil, fmt.Errorf("google returned invalid coordinates: %w", err)
	}
	return &coord, nil
}
