package nats

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/piresc/senyum/internal/pkg/constants"
	"github.com/piresc/senyum/internal/pkg/models"
	natspkg "github.com/piresc/senyum/internal/pkg/nats"
	"github.com/piresc/senyum/services/messages"
)

// EventHandler turns NATS events into websocket pushes
type EventHandler struct {
	messageUC messages.MessageUC
	consumer  *natspkg.Consumer
}

// NewEventHandler creates the NATS event handler
func NewEventHandler(messageUC messages.MessageUC, consumer *natspkg.Consumer) *EventHandler {
	return &EventHandler{messageUC: messageUC, consumer: consumer}
}

// InitNATSConsumers subscribes to chat and appointment events. Deliveries
// are not load balanced: every replica pushes to the sockets it holds.
func (h *EventHandler) InitNATSConsumers() error {
	if err := h.consumer.Handle(constants.SubjectMessageSent, "", h.handleMessageSent); err != nil {
		return err
	}
	return h.consumer.Handle(constants.SubjectAppointmentAll, "", h.handleAppointmentEvent)
}

func (h *EventHandler) handleMessageSent(ctx context.Context, _ string, data []byte) error {
	var event models.MessageEvent
	if err := json.Unmarshal(data, &event); err != nil {
		return fmt.Errorf("failed to unmarshal message event: %w", err)
	}
	return h.messageUC.DeliverMessage(ctx, &event)
}

func (h *EventHandler) handleAppointmentEvent(ctx context.Context, subject string, data []byte) error {
	var event models.AppointmentEvent
	if err := json.Unmarshal(data, &event); err != nil {
		return fmt.Errorf("failed to unmarshal %s event: %w", subject, err)
	}
	return h.messageUC.DeliverAppointmentUpdate(ctx, &event)
}
