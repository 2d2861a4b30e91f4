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

// MessageGW publishes chat events on NATS
type MessageGW struct {
	publisher EventPublisher
	metrics   *metrics.Metrics
}

// NewMessageGW creates the message gateway
func NewMessageGW(publisher EventPublisher, m *metrics.Metrics) *MessageGW {
	return &MessageGW{publisher: publisher, metrics: m}
}

// PublishMessageSent publishes event on message.sent
func (g *MessageGW) PublishMessageSent(ctx context.Context, event *models.MessageEvent) error {
	if err := g.publisher.PublishJSON(ctx, constants.SubjectMessageSent, event); err != nil {
		return fmt.Errorf("failed to publish %s: %w", constants.SubjectMessageSent, err)
	}
	g.metrics.ObservePublish(constants.SubjectMessageSent)
	return nil
}
