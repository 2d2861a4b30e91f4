package models

import (
	"time"

	"github.com/google/uuid"
)

// AppointmentEvent is published on appointment.<status>
type AppointmentEvent struct {
	AppointmentID uuid.UUID  `json:"appointment_id"`
	DentistID     uuid.UUID  `json:"dentist_id"`
	DentistUserID *uuid.UUID `json:"dentist_user_id,omitempty"`
	PatientID     uuid.UUID  `json:"patient_id"`
	Status        string     `json:"status"`
	StartsAt      time.Time  `json:"starts_at"`
	Reason        string     `json:"reason,omitempty"`
	OccurredAt    time.Time  `json:"occurred_at"`
}

// MessageEvent is published on message.sent
type MessageEvent struct {
	MessageID      uuid.UUID `json:"message_id"`
	ConversationID uuid.UUID `json:"conversation_id"`
	SenderID       uuid.UUID `json:"sender_id"`
	RecipientID    uuid.UUID `json:"recipient_id"`
	Body           string    `json:"body"`
	CreatedAt      time.Time `json:"created_at"`
}

// DentistUpdatedEvent is published on dentist.updated after any profile mutation
type DentistUpdatedEvent struct {
	DentistID  uuid.UUID `json:"dentist_id"`
	Slug       string    `json:"slug"`
	Change     string    `json:"change"`
	OccurredAt time.Time `json:"occurred_at"`
}
