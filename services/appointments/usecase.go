package appointments

import (
	"context"

	"github.com/google/uuid"
	"github.com/piresc/senyum/internal/pkg/models"
)

//go:generate mockgen -destination=mocks/mock_usecase.go -package=mocks github.com/piresc/senyum/services/appointments AppointmentUC

// AppointmentUC defines booking and lifecycle operations
type AppointmentUC interface {
	Book(ctx context.Context, actor models.Actor, req *models.BookAppointmentRequest) (*models.Appointment, error)
	List(ctx context.Context, actor models.Actor, status string) ([]models.Appointment, error)
	Confirm(ctx context.Context, actor models.Actor, id uuid.UUID) (*models.Appointment, error)
	Cancel(ctx context.Context, actor models.Actor, id uuid.UUID, req *models.CancelAppointmentRequest) (*models.Appointment, error)
	Complete(ctx context.Context, actor models.Actor, id uuid.UUID) (*models.Appointment, error)
}
