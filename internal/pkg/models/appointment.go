package models

import (
	"time"

	"github.com/google/uuid"
)

// Appointment states
const (
	AppointmentPending   = "pending"
	AppointmentConfirmed = "confirmed"
	AppointmentCancelled = "cancelled"
	AppointmentCompleted = "completed"
)

// Appointment duration bounds in minutes
const (
	MinAppointmentMinutes     = 15
	MaxAppointmentMinutes     = 240
	DefaultAppointmentMinutes = 30
)

var appointmentTransitions = map[string][]string{
	AppointmentPending:   {AppointmentConfirmed, AppointmentCancelled},
	AppointmentConfirmed: {AppointmentCancelled, AppointmentCompleted},
}

// CanTransition reports whether an appointment may move from one state to another
func CanTransition(from, to string) bool {
	for _, next := range appointmentTransitions[from] {
		if next == to {
			return true
		}
	}
	return false
}

// Appointment is a booked slot with a dentist
type Appointment struct {
	ID               uuid.UUID `json:"id" db:"id"`
	DentistID        uuid.UUID `json:"dentist_id" db:"dentist_id"`
	PatientID        uuid.UUID `json:"patient_id" db:"patient_id"`
	StartsAt         time.Time `json:"starts_at" db:"starts_at"`
	EndsAt           time.Time `json:"ends_at" db:"ends_at"`
	ConsultationType string    `json:"consultation_type" db:"consultation_type"`
	Status           string    `json:"status" db:"status"`
	Notes            string    `json:"notes" db:"notes"`
	CancelReason     *string   `json:"cancel_reason,omitempty" db:"cancel_reason"`
	CreatedAt        time.Time `json:"created_at" db:"created_at"`
	UpdatedAt        time.Time `json:"updated_at" db:"updated_at"`
}

// BookingDentist is what booking needs to know about the dentist
type BookingDentist struct {
	ID             uuid.UUID  `db:"id"`
	UserID         *uuid.UUID `db:"user_id"`
	Status         string     `db:"status"`
	OffersInPerson bool       `db:"offers_in_person"`
	OffersVideo    bool       `db:"offers_video"`
}

// BookAppointmentRequest is the payload of POST /appointments
type BookAppointmentRequest struct {
	DentistID        uuid.UUID `json:"dentist_id"`
	StartsAt         time.Time `json:"starts_at"`
	DurationMinutes  int       `json:"duration_minutes"`
	ConsultationType string    `json:"consultation_type"`
	Notes            string    `json:"notes"`
}

// CancelAppointmentRequest carries the cancellation reason
type CancelAppointmentRequest struct {
	Reason string `json:"reason"`
}
