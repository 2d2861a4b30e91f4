package usecase

import (
	"context"
	"fmt"
	"time"

	"github.com/piresc/senyum/internal/pkg/logger"
	"github.com/piresc/senyum/internal/pkg/models"
	nrpkg "github.com/piresc/senyum/internal/pkg/newrelic"
	"github.com/piresc/senyum/internal/utils"
)

// Book reserves a slot with a verified dentist for the calling patient
func (u *AppointmentUC) Book(ctx context.Context, actor models.Actor, req *models.BookAppointmentRequest) (*models.Appointment, error) {
	return nrpkg.TraceUseCaseWithReturn(ctx, "BookAppointment", func(ctx context.Context) (*models.Appointment, error) {
		return u.book(ctx, actor, req)
	})
}

func (u *AppointmentUC) book(ctx context.Context, actor models.Actor, req *models.BookAppointmentRequest) (*models.Appointment, error) {
	if actor.Role != models.RolePatient {
		return nil, fmt.Errorf("only patients can book: %w", models.ErrForbidden)
	}

	duration := req.DurationMinutes
	if duration == 0 {
		duration = models.DefaultAppointmentMinutes
	}
	if duration < models.MinAppointmentMinutes || duration > models.MaxAppointmentMinutes {
		return nil, fmt.Errorf("duration_minutes must be between %d and %d: %w",
			models.MinAppointmentMinutes, models.MaxAppointmentMinutes, models.ErrInvalidInput)
	}
	if req.StartsAt.IsZero() || !req.StartsAt.After(u.now()) {
		return nil, fmt.Errorf("starts_at must be in the future: %w", models.ErrInvalidInput)
	}
	if req.ConsultationType != models.ConsultationInPerson && req.ConsultationType != models.ConsultationVideo {
		return nil, fmt.Errorf("unknown consultation_type %q: %w", req.ConsultationType, models.ErrInvalidInput)
	}

	dentist, err := u.appointmentRepo.GetBookingDentist(ctx, req.DentistID)
	if err != nil {
		return nil, err
	}
	if dentist.Status != models.DentistStatusVerified {
		return nil, fmt.Errorf("dentist: %w", models.ErrNotFound)
	}
	offered := (req.ConsultationType == models.ConsultationInPerson && dentist.OffersInPerson) ||
		(req.ConsultationType == models.ConsultationVideo && dentist.OffersVideo)
	if !offered {
		return nil, fmt.Errorf("dentist does not offer %s consultations: %w", req.ConsultationType, models.ErrInvalidInput)
	}
	if dentist.UserID != nil && *dentist.UserID == actor.UserID {
		return nil, fmt.Errorf("cannot book your own profile: %w", models.ErrForbidden)
	}

	startsAt := req.StartsAt.UTC()
	appointment := &models.Appointment{
		DentistID:        dentist.ID,
		PatientID:        actor.UserID,
		StartsAt:         startsAt,
		EndsAt:           startsAt.Add(time.Duration(duration) * time.Minute),
		ConsultationType: req.ConsultationType,
		Status:           models.AppointmentPending,
		Notes:            utils.Truncate(utils.SanitizeString(req.Notes), maxNotesLength),
	}
	if err := u.appointmentRepo.Create(ctx, appointment); err != nil {
		return nil, err
	}

	logger.InfoCtx(ctx, "Appointment booked",
		logger.String("appointment_id", appointment.ID.String()),
		logger.String("dentist_id", dentist.ID.String()),
		logger.String("starts_at", startsAt.Format(time.RFC3339)))

	u.publish(ctx, appointment, dentist.UserID, "")
	return appointment, nil
}

// List returns the caller's appointments: a patient's own bookings, or the
// bookings of the profile a dentist owns
func (u *AppointmentUC) List(ctx context.Context, actor models.Actor, status string) ([]models.Appointment, error) {
	if status != "" && !isAppointmentStatus(status) {
		return nil, fmt.Errorf("unknown status %q: %w", status, models.ErrInvalidInput)
	}

	switch actor.Role {
	case models.RolePatient:
		return u.appointmentRepo.ListByPatient(ctx, actor.UserID, status)
	case models.RoleDentist:
		dentistID, err := u.appointmentRepo.GetDentistIDByUser(ctx, actor.UserID)
		if err != nil {
			return nil, err
		}
		return u.appointmentRepo.ListByDentist(ctx, dentistID, status)
	}
	return nil, fmt.Errorf("role %q has no appointments: %w", actor.Role, models.ErrForbidden)
}

func isAppointmentStatus(status string) bool {
	switch status {
	case models.AppointmentPending, models.AppointmentConfirmed, models.AppointmentCancelled, models.AppointmentCompleted:
		return true
	}
	return false
}
