package usecase

import (
	"time"

	"github.com/piresc/senyum/internal/pkg/models"
	"github.com/piresc/senyum/services/messages"
)

// MessageUC implements messages.MessageUC
type MessageUC struct {
	messageRepo messages.MessageRepo
	messageGW   messages.MessageGW
	notifier    messages.Notifier
	cfg         *models.Config
	now         func() time.Time
}

// NewMessageUC creates a new message usecase instance
func NewMessageUC(
	messageRepo messages.MessageRepo,
	messageGW messages.MessageGW,
	notifier messages.Notifier,
	cfg *models.Config,
) *MessageUC {
	return &MessageUC{
		messageRepo: messageRepo,
		messageGW:   messageGW,
		notifier:    notifier,
		cfg:         cfg,
		now:         time.Now,
	}
}
