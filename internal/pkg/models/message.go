package models

import (
	"time"

	"github.com/google/uuid"
)

// Message body bounds in characters
const (
	MaxMessageLength    = 2000
	DefaultMessagePage  = 50
	MaxMessagePageLimit = 100
)

// Conversation is a thread between a patient and a dentist profile
type Conversation struct {
	ID            uuid.UUID  `json:"id" db:"id"`
	PatientID     uuid.UUID  `json:"patient_id" db:"patient_id"`
	DentistID     uuid.UUID  `json:"dentist_id" db:"dentist_id"`
	DentistUserID *uuid.UUID `json:"-" db:"dentist_user_id"`
	DentistName   string     `json:"dentist_name" db:"dentist_name"`
	PatientName   string     `json:"patient_name" db:"patient_name"`
	LastMessageAt *time.Time `json:"last_message_at" db:"last_message_at"`
	CreatedAt     time.Time  `json:"created_at" db:"created_at"`
}

// IsParticipant reports whether userID may read and write the thread
func (c *Conversation) IsParticipant(userID uuid.UUID) bool {
	return c.PatientID == userID || (c.DentistUserID != nil && *c.DentistUserID == userID)
}

// Counterpart returns the other participant of userID, if any
func (c *Conversation) Counterpart(userID uuid.UUID) (uuid.UUID, bool) {
	if c.PatientID == userID {
		if c.DentistUserID == nil {
			return uuid.Nil, false
		}
		return *c.DentistUserID, true
	}
	return c.PatientID, true
}

// Message is one chat message
type Message struct {
	ID             uuid.UUID `json:"id" db:"id"`
	ConversationID uuid.UUID `json:"conversation_id" db:"conversation_id"`
	SenderID       uuid.UUID `json:"sender_id" db:"sender_id"`
	Body           string    `json:"body" db:"body"`
	CreatedAt      time.Time `json:"created_at" db:"created_at"`
}

// StartConversationRequest opens a thread with a dentist
type StartConversationRequest struct {
	DentistID uuid.UUID `json:"dentist_id"`
}

// SendMessageRequest posts a message
type SendMessageRequest struct {
	Body string `json:"body"`
}
