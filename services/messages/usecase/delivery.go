package usecase

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/piresc/senyum/internal/pkg/constants"
	"github.com/piresc/senyum/internal/pkg/logger"
	"github.com/piresc/senyum/internal/pkg/models"
)

// DeliverMessage pushes message.new to the recipient's sockets
func (u *MessageUC) DeliverMessage(ctx context.Context, event *models.MessageEvent) error {
	if event.RecipientID == uuid.Nil {
		return fmt.Errorf("message event without recipient: %w", models.ErrInvalidInput)
	}
	u.notifier.NotifyClient(event.RecipientID, constants.EventMessageNew, event)
	logger.DebugCtx(ctx, "Delivered message",
		logger.String("message_id", event.MessageID.String()),
		logger.String("recipient_id", event.RecipientID.String()))
	return nil
}

// DeliverAppointmentUpdate pushes appointment.updated to the patient and to
// the dentist owning the profile
func (u *MessageUC) DeliverAppointmentUpdate(ctx context.Context, event *models.AppointmentEvent) error {
	if event.PatientID == uuid.Nil {
		return fmt.Errorf("appointment event without patient: %w", models.ErrInvalidInput)
	}
	u.notifier.NotifyClient(event.PatientID, constants.EventAppointmentUpdated, event)
	if event.DentistUserID != nil && *event.DentistUserID != event.PatientID {
		u.notifier.NotifyClient(*event.DentistUserID, constants.EventAppointmentUpdated, event)
	}
	logger.DebugCtx(ctx, "Delivered appointment update",
		logger.String("appointment_id", event.AppointmentID.String()),
		logger.String("status", event.Status))
	return nil
}
