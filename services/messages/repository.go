package messages

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/piresc/senyum/internal/pkg/models"
)

//go:generate mockgen -destination=mocks/mock_repository.go -package=mocks github.com/piresc/senyum/services/messages MessageRepo

// MessageRepo defines the conversation repository interface
type MessageRepo interface {
	// DentistAvailable reports whether the profile exists and is verified
	DentistAvailable(ctx context.Context, dentistID uuid.UUID) (bool, error)
	GetOrCreateConversation(ctx context.Context, patientID, dentistID uuid.UUID) (*models.Conversation, error)
	GetConversation(ctx context.Context, id uuid.UUID) (*models.Conversation, error)
	ListConversations(ctx context.Context, userID uuid.UUID) ([]models.Conversation, error)
	ListMessages(ctx context.Context, conversationID uuid.UUID, before *time.Time, limit int) ([]models.Message, error)

	// CreateMessage stores msg and bumps the conversation's last_message_at
	CreateMessage(ctx context.Context, msg *models.Message) error
}
