package gateway

import (
	"context"
	"fmt"

	"github.com/piresc/senyum/internal/pkg/constants"
	"github.com/piresc/senyum/internal/pkg/metrics"
	"github.com/piresc/senyum/internal/pkg/models"
)

// EventPublisher is satisfied by *nats.Client
type EventPublisher interface {
	PublishJSON(ctx context.Context, subject string, v interface{}) error
}

// AppointmentGW publishes appointment events on NATS
type AppointmentGW struct {
	publisher EventPublisher
	metrics   *metrics.Metrics
}

// NewAppointmentGW creates the appointment gateway
func NewAppointmentGW(publisher EventPublisher, m *metrics.Metrics) *AppointmentGW {
	return &AppointmentGW{publisher: publisher, metrics: m}
}

// Subject returns the subject an event with status is published on
func Subject(status string) string {
	switch status {
	case models.AppointmentPending:
		return constants.SubjectAppointmentBooked
	case models.AppointmentConfirmed:
		return constants.SubjectAppointmentConfirmed
	case models.AppointmentCancelled:
		return constants.SubjectAppointmentCancelled
	case models.AppointmentCompleted:
		return constants.SubjectAppointmentCompleted
	}
	return "appointment." + status
}

// PublishAppointmentEvent publishes event on appointment.<status>
func (g *AppointmentGW) PublishAppointmentEvent(ctx context.Context, event *models.AppointmentEvent) error {
	subject := Subject(event.Status)
	if err := g.publisher.PublishJSON(ctx, subject, event); err != nil {
		return fmt.Errorf("failed to publish %s: %w", subject, err)
	}
	g.metrics.ObservePublish(subject)
	return nil
}
