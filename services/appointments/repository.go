package appointments

import (
	"context"

	"github.com/google/uuid"
	"github.com/piresc/senyum/internal/pkg/models"
)

//go:generate mockgen -destination=mocks/mock_repository.go -package=mocks github.com/piresc/senyum/services/appointments AppointmentRepo

// AppointmentRepo defines the appointment repository interface
type AppointmentRepo interface {
	GetBookingDentist(ctx context.Context, dentistID uuid.UUID) (*models.BookingDentist, error)
	GetDentistIDByUser(ctx context.Context, userID uuid.UUID) (uuid.UUID, error)

	// Create inserts the appointment unless it overlaps an active booking
	// of the same dentist, in which case it returns models.ErrConflict
	Create(ctx context.Context, appointment *models.Appointment) error
	GetByID(ctx context.Context, id uuid.UUID) (*models.Appointment, error)
	ListByPatient(ctx context.Context, patientID uuid.UUID, status string) ([]models.Appointment, error)
	ListByDentist(ctx context.Context, dentistID uuid.UUID, status string) ([]models.Appointment, error)

	// UpdateStatus moves the appointment from one status to another and
	// returns models.ErrConflict when it is no longer in from
	UpdateStatus(ctx context.Context, id uuid.UUID, from, to string, reason *string) (*models.Appointment, error)
}
