package appointments

import (
	"context"

	"github.com/piresc/senyum/internal/pkg/models"
)

//go:generate mockgen -destination=mocks/mock_gateway.go -package=mocks github.com/piresc/senyum/services/appointments AppointmentGW

// AppointmentGW publishes appointment lifecycle events
type AppointmentGW interface {
	PublishAppointmentEvent(ctx context.Context, event *models.AppointmentEvent) error
}
