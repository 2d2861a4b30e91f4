package messages

import (
	"context"

	"github.com/google/uuid"
	"github.com/piresc/senyum/internal/pkg/models"
)

//go:generate mockgen -destination=mocks/mock_gateway.go -package=mocks github.com/piresc/senyum/services/messages MessageGW,Notifier

// MessageGW publishes chat events
type MessageGW interface {
	PublishMessageSent(ctx context.Context, event *models.MessageEvent) error
}

// Notifier pushes an event to the open sockets of a user
type Notifier interface {
	NotifyClient(userID uuid.UUID, event string, data interface{})
}
