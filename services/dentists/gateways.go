package dentists

import (
	"context"
	"io"

	"github.com/piresc/senyum/internal/pkg/geo"
	"github.com/piresc/senyum/internal/pkg/models"
)

//go:generate mockgen -destination=mocks/mock_gateway.go -package=mocks github.com/piresc/senyum/services/dentists DentistGW

// DentistGW groups the external systems the directory talks to
type DentistGW interface {
	// NATS
	PublishDentistUpdated(ctx context.Context, event *models.DentistUpdatedEvent) error

	// geocoding provider
	Geocode(ctx context.Context, address string) (*geo.Coordinate, error)

	// object storage
	PutObject(ctx context.Context, key string, body io.Reader, size int64, contentType string) error
	RemoveObject(ctx context.Context, key string) error
	ObjectURL(key string) string
}
