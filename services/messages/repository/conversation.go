package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/piresc/senyum/internal/pkg/logger"
	"github.com/piresc/senyum/internal/pkg/models"
)

const conversationSelect = `
	SELECT c.id, c.patient_id, c.dentist_id, d.user_id AS dentist_user_id,
		d.name AS dentist_name, u.full_name AS patient_name,
		c.last_message_at, c.created_at
	FROM conversations c
	JOIN dentists d ON d.id = c.dentist_id
	JOIN users u ON u.id = c.patient_id`

// MessageRepo implements messages.MessageRepo on PostgreSQL
type MessageRepo struct {
	cfg *models.Config
	db  *sqlx.DB
}

// NewMessageRepository creates a new message repository
func NewMessageRepository(cfg *models.Config, db *sqlx.DB) *MessageRepo {
	logger.Info("Initializing message repository")
	return &MessageRepo{cfg: cfg, db: db}
}

// DentistAvailable reports whether the profile exists and is verified
func (r *MessageRepo) DentistAvailable(ctx context.Context, dentistID uuid.UUID) (bool, error) {
	var ok bool
	err := r.db.GetContext(ctx, &ok,
		`SELECT EXISTS (SELECT 1 FROM dentists WHERE id = $1 AND status = 'verified')`, dentistID)
	if err != nil {
		return false, fmt.Errorf("failed to check dentist: %w", err)
	}
	return ok, nil
}

// GetOrCreateConversation returns the thread between patient and dentist,
// creating it on first contact
func (r *MessageRepo) GetOrCreateConversation(ctx context.Context, patientID, dentistID uuid.UUID) (*models.Conversation, error) {
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO conversations (id, patient_id, dentist_id, created_at)
		VALUES ($1, $2, $3, NOW())
		ON CONFLICT (patient_id, dentist_id) DO NOTHING`, uuid.New(), patientID, dentistID)
	if err != nil {
		return nil, fmt.Errorf("failed to create conversation: %w", err)
	}

	var conv models.Conversation
	err = r.db.GetContext(ctx, &conv, conversationSelect+` WHERE c.patient_id = $1 AND c.dentist_id = $2`, patientID, dentistID)
	if err != nil {
		return nil, fmt.Errorf("failed to load conversation: %w", err)
	}
	return &conv, nil
}

// GetConversation retrieves a conversation with its participants
func (r *MessageRepo) GetConversation(ctx context.Context, id uuid.UUID) (*models.Conversation, error) {
	var conv models.Conversation
	if err := r.db.GetContext(ctx, &conv, conversationSelect+` WHERE c.id = $1`, id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("conversation: %w", models.ErrNotFound)
		}
		return nil, fmt.Errorf("failed to get conversation: %w", err)
	}
	return &conv, nil
}

// ListConversations lists the threads userID takes part in, latest first
func (r *MessageRepo) ListConversations(ctx context.Context, userID uuid.UUID) ([]models.Conversation, error) {
	items := []models.Conversation{}
	query := conversationSelect + `
		WHERE c.patient_id = $1 OR d.user_id = $1
		ORDER BY COALESCE(c.last_message_at, c.created_at) DESC`
	if err := r.db.SelectContext(ctx, &items, query, userID); err != nil {
		return nil, fmt.Errorf("failed to list conversations: %w", err)
	}
	return items, nil
}

// ListMessages returns up to limit messages older than before, newest first
func (r *MessageRepo) ListMessages(ctx context.Context, conversationID uuid.UUID, before *time.Time, limit int) ([]models.Message, error) {
	items := []models.Message{}
	query := `
		SELECT id, conversation_id, sender_id, body, created_at
		FROM messages
		WHERE conversation_id = $1 AND ($2::timestamptz IS NULL OR created_at < $2)
		ORDER BY created_at DESC
		LIMIT $3`
	if err := r.db.SelectContext(ctx, &items, query, conversationID, before, limit); err != nil {
		return nil, fmt.Errorf("failed to list messages: %w", err)
	}
	return items, nil
}

// CreateMessage stores msg and bumps the conversation in one transaction
func (r *MessageRepo) CreateMessage(ctx context.Context, msg *models.Message) error {
	msg.ID = uuid.New()
	msg.CreatedAt = time.Now().UTC()

	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	query := `
		INSERT INTO messages (id, conversation_id, sender_id, body, created_at)
		VALUES (:id, :conversation_id, :sender_id, :body, :created_at)`
	if _, err := tx.NamedExecContext(ctx, query, msg); err != nil {
		return fmt.Errorf("failed to insert message: %w", err)
	}
	if _, err := tx.ExecContext(ctx,
		`UPDATE conversations SET last_message_at = $2 WHERE id = $1`, msg.ConversationID, msg.CreatedAt); err != nil {
		return fmt.Errorf("failed to bump conversation: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}
	return nil
}
