package usecase

import (
	"time"

	"github.com/piresc/senyum/internal/pkg/models"
	"github.com/piresc/senyum/services/appointments"
)

const maxNotesLength = 1000

// AppointmentUC implements appointments.AppointmentUC
type AppointmentUC struct {
	appointmentRepo appointments.AppointmentRepo
	appointmentGW   appointments.AppointmentGW
	cfg             *models.Config
	now             func() time.Time
}

// NewAppointmentUC creates a new appointment usecase instance
func NewAppointmentUC(
	appointmentRepo appointments.AppointmentRepo,
	appointmentGW appointments.AppointmentGW,
	cfg *models.Config,
) *AppointmentUC {
	return &AppointmentUC{
		appointmentRepo: appointmentRepo,
		appointmentGW:   appointmentGW,
		cfg:             cfg,
		now:             time.Now,
	}
}
