package usecase

import (
	"context"
	"fmt"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/google/uuid"
	"github.com/piresc/senyum/internal/pkg/logger"
	"github.com/piresc/senyum/internal/pkg/models"
)

// StartConversation returns the thread between the calling patient and a
// dentist profile, creating it on first contact
func (u *MessageUC) StartConversation(ctx context.Context, actor models.Actor, req *models.StartConversationRequest) (*models.Conversation, error) {
	if actor.Role != models.RolePatient {
		return nil, fmt.Errorf("only patients can start conversations: %w", models.ErrForbidden)
	}
	if req.DentistID == uuid.Nil {
		return nil, fmt.Errorf("dentist_id is required: %w", models.ErrInvalidInput)
	}

	ok, err := u.messageRepo.DentistAvailable(ctx, req.DentistID)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, fmt.Errorf("dentist: %w", models.ErrNotFound)
	}

	return u.messageRepo.GetOrCreateConversation(ctx, actor.UserID, req.DentistID)
}

// ListConversations lists the caller's threads, latest first
func (u *MessageUC) ListConversations(ctx context.Context, actor models.Actor) ([]models.Conversation, error) {
	return u.messageRepo.ListConversations(ctx, actor.UserID)
}

// ListMessages pages backwards through a thread the caller takes part in
func (u *MessageUC) ListMessages(ctx context.Context, actor models.Actor, conversationID uuid.UUID, before *time.Time, limit int) ([]models.Message, error) {
	if _, err := u.participantConversation(ctx, actor, conversationID); err != nil {
		return nil, err
	}

	switch {
	case limit <= 0:
		limit = models.DefaultMessagePage
	case limit > models.MaxMessagePageLimit:
		limit = models.MaxMessagePageLimit
	}
	return u.messageRepo.ListMessages(ctx, conversationID, before, limit)
}

// SendMessage stores a message and announces it on message.sent
func (u *MessageUC) SendMessage(ctx context.Context, actor models.Actor, conversationID uuid.UUID, req *models.SendMessageRequest) (*models.Message, error) {
	body := strings.TrimSpace(req.Body)
	if body == "" || utf8.RuneCountInString(body) > models.MaxMessageLength {
		return nil, fmt.Errorf("body must be 1 to %d characters: %w", models.MaxMessageLength, models.ErrInvalidInput)
	}

	conv, err := u.participantConversation(ctx, actor, conversationID)
	if err != nil {
		return nil, err
	}

	msg := &models.Message{
		ConversationID: conv.ID,
		SenderID:       actor.UserID,
		Body:           body,
	}
	if err := u.messageRepo.CreateMessage(ctx, msg); err != nil {
		return nil, err
	}

	recipient, ok := conv.Counterpart(actor.UserID)
	if !ok {
		// unowned profile, nobody to notify
		return msg, nil
	}
	event := &models.MessageEvent{
		MessageID:      msg.ID,
		ConversationID: conv.ID,
		SenderID:       actor.UserID,
		RecipientID:    recipient,
		Body:           msg.Body,
		CreatedAt:      msg.CreatedAt,
	}
	if err := u.messageGW.PublishMessageSent(ctx, event); err != nil {
		logger.WarnCtx(ctx, "Failed to publish message event",
			logger.String("message_id", msg.ID.String()),
			logger.Err(err))
	}
	return msg, nil
}

// participantConversation loads the conversation and hides it from
// non-participants
func (u *MessageUC) participantConversation(ctx context.Context, actor models.Actor, id uuid.UUID) (*models.Conversation, error) {
	conv, err := u.messageRepo.GetConversation(ctx, id)
	if err != nil {
		return nil, err
	}
	if !conv.IsParticipant(actor.UserID) {
		return nil, fmt.Errorf("conversation: %w", models.ErrNotFound)
	}
	return conv, nil
}
