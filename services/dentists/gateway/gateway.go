package gateway

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/piresc/senyum/internal/pkg/constants"
	"github.com/piresc/senyum/internal/pkg/geo"
	"github.com/piresc/senyum/internal/pkg/geocoding"
	"github.com/piresc/senyum/internal/pkg/metrics"
	"github.com/piresc/senyum/internal/pkg/models"
)

// EventPublisher is satisfied by *nats.Client
type EventPublisher interface {
	PublishJSON(ctx context.Context, subject string, v interface{}) error
}

// ObjectStore is satisfied by *storage.MinioStore
type ObjectStore interface {
	Put(ctx context.Context, key string, r io.Reader, size int64, contentType string) error
	Remove(ctx context.Context, key string) error
	URL(key string) string
}

// DentistGW wires the directory to NATS, the geocoder and object storage
type DentistGW struct {
	publisher EventPublisher
	geocoder  geocoding.Provider
	store     ObjectStore
	metrics   *metrics.Metrics
}

// NewDentistGW creates the directory gateway. geocoder may be nil when no
// provider is configured.
func NewDentistGW(publisher EventPublisher, geocoder geocoding.Provider, store ObjectStore, m *metrics.Metrics) *DentistGW {
	return &DentistGW{
		publisher: publisher,
		geocoder:  geocoder,
		store:     store,
		metrics:   m,
	}
}

// PublishDentistUpdated announces a profile change on dentist.updated
func (g *DentistGW) PublishDentistUpdated(ctx context.Context, event *models.DentistUpdatedEvent) error {
	if err := g.publisher.PublishJSON(ctx, constants.SubjectDentistUpdated, event); err != nil {
		return err
	}
	g.metrics.ObservePublish(constants.SubjectDentistUpdated)
	return nil
}

// Geocode resolves address; an address the provider cannot place is invalid input
func (g *DentistGW) Geocode(ctx context.Context, address string) (*geo.Coordinate, error) {
	if g.geocoder == nil {
		return nil, fmt.Errorf("geocoding is not configured: %w", models.ErrInvalidInput)
	}
	coord, err := g.geocoder.Geocode(ctx, address)
	if err != nil {
		if errors.Is(err, geocoding.ErrNoResult) {
			return nil, fmt.Errorf("%s: %w", err.Error(), models.ErrInvalidInput)
		}
		return nil, fmt.Errorf("failed to geocode address: %w", err)
	}
	return coord, nil
}

// PutObject uploads media and records the stored size
func (g *DentistGW) PutObject(ctx context.Context, key string, body io.Reader, size int64, contentType string) error {
	if err := g.store.Put(ctx, key, body, size, contentType); err != nil {
		return err
	}
	g.metrics.AddUploadedBytes(size)
	return nil
}

// RemoveObject deletes media from the bucket
func (g *DentistGW) RemoveObject(ctx context.Context, key string) error {
	return g.store.Remove(ctx, key)
}

// ObjectURL is the public URL of key
func (g *DentistGW) ObjectURL(key string) string {
	return g.store.URL(key)
}
