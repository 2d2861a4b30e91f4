package messages

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/piresc/senyum/internal/pkg/models"
)

//go:generate mockgen -destination=mocks/mock_usecase.go -package=mocks github.com/piresc/senyum/services/messages MessageUC

// MessageUC defines conversation and realtime delivery operations
type MessageUC interface {
	StartConversation(ctx context.Context, actor models.Actor, req *models.StartConversationRequest) (*models.Conversation, error)
	ListConversations(ctx context.Context, actor models.Actor) ([]models.Conversation, error)
	ListMessages(ctx context.Context, actor models.Actor, conversationID uuid.UUID, before *time.Time, limit int) ([]models.Message, error)
	SendMessage(ctx context.Context, actor models.Actor, conversationID uuid.UUID, req *models.SendMessageRequest) (*models.Message, error)

	// event consumers
	DeliverMessage(ctx context.Context, event *models.MessageEvent) error
	DeliverAppointmentUpdate(ctx context.Context, event *models.AppointmentEvent) error
}
