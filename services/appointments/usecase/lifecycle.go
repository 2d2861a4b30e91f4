package usecase

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/piresc/senyum/internal/pkg/logger"
	"github.com/piresc/senyum/internal/pkg/models"
	"github.com/piresc/senyum/internal/utils"
)

// Confirm accepts a pending appointment on behalf of the owning dentist
func (u *AppointmentUC) Confirm(ctx context.Context, actor models.Actor, id uuid.UUID) (*models.Appointment, error) {
	return u.transition(ctx, actor, id, models.AppointmentConfirmed, nil, false)
}

// Cancel cancels a pending or confirmed appointment; the patient or the
// owning dentist may cancel
func (u *AppointmentUC) Cancel(ctx context.Context, actor models.Actor, id uuid.UUID, req *models.CancelAppointmentRequest) (*models.Appointment, error) {
	var reason *string
	if r := utils.Truncate(utils.SanitizeString(req.Reason), maxNotesLength); r != "" {
		reason = &r
	}
	return u.transition(ctx, actor, id, models.AppointmentCancelled, reason, true)
}

// Complete marks a confirmed appointment as done
func (u *AppointmentUC) Complete(ctx context.Context, actor models.Actor, id uuid.UUID) (*models.Appointment, error) {
	return u.transition(ctx, actor, id, models.AppointmentCompleted, nil, false)
}

func (u *AppointmentUC) transition(ctx context.Context, actor models.Actor, id uuid.UUID, to string, reason *string, patientAllowed bool) (*models.Appointment, error) {
	current, err := u.appointmentRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	dentist, err := u.appointmentRepo.GetBookingDentist(ctx, current.DentistID)
	if err != nil {
		return nil, err
	}

	isPatient := current.PatientID == actor.UserID
	isDentist := dentist.UserID != nil && *dentist.UserID == actor.UserID
	switch {
	case isDentist:
	case isPatient && patientAllowed:
	case isPatient:
		return nil, fmt.Errorf("only the dentist can mark it %s: %w", to, models.ErrForbidden)
	default:
		// hide appointments of other people
		return nil, fmt.Errorf("appointment: %w", models.ErrNotFound)
	}

	if !models.CanTransition(current.Status, to) {
		return nil, fmt.Errorf("cannot move from %s to %s: %w", current.Status, to, models.ErrConflict)
	}

	updated, err := u.appointmentRepo.UpdateStatus(ctx, id, current.Status, to, reason)
	if err != nil {
		return nil, err
	}

	logger.InfoCtx(ctx, "Appointment status changed",
		logger.String("appointment_id", id.String()),
		logger.String("from", current.Status),
		logger.String("to", to),
		logger.String("by", actor.UserID.String()))

	var why string
	if reason != nil {
		why = *reason
	}
	u.publish(ctx, updated, dentist.UserID, why)
	return updated, nil
}

// publish announces the appointment's current status; failures are logged
// and do not undo the change
func (u *AppointmentUC) publish(ctx context.Context, a *models.Appointment, dentistUserID *uuid.UUID, reason string) {
	event := &models.AppointmentEvent{
		AppointmentID: a.ID,
		DentistID:     a.DentistID,
		DentistUserID: dentistUserID,
		PatientID:     a.PatientID,
		Status:        a.Status,
		StartsAt:      a.StartsAt,
		Reason:        reason,
		OccurredAt:    u.now().UTC(),
	}
	if err := u.appointmentGW.PublishAppointmentEvent(ctx, event); err != nil {
		logger.WarnCtx(ctx, "Failed to publish appointment event",
			logger.String("appointment_id", a.ID.String()),
			logger.String("status", a.Status),
			logger.Err(err))
	}
}
