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
	nrpkg "github.com/piresc/senyum/internal/pkg/newrelic"
)

const appointmentColumns = `id, dentist_id, patient_id, starts_at, ends_at, consultation_type,
	status, notes, cancel_reason, created_at, updated_at`

// AppointmentRepo implements appointments.AppointmentRepo on PostgreSQL
type AppointmentRepo struct {
	cfg *models.Config
	db  *sqlx.DB
}

// NewAppointmentRepository creates a new appointment repository
func NewAppointmentRepository(cfg *models.Config, db *sqlx.DB) *AppointmentRepo {
	logger.Info("Initializing appointment repository")
	return &AppointmentRepo{cfg: cfg, db: db}
}

// GetBookingDentist loads what booking needs to know about a dentist
func (r *AppointmentRepo) GetBookingDentist(ctx context.Context, dentistID uuid.UUID) (*models.BookingDentist, error) {
	var d models.BookingDentist
	err := r.db.GetContext(ctx, &d, `
		SELECT id, user_id, status, offers_in_person, offers_video
		FROM dentists WHERE id = $1`, dentistID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("dentist: %w", models.ErrNotFound)
		}
		return nil, fmt.Errorf("failed to get dentist: %w", err)
	}
	return &d, nil
}

// GetDentistIDByUser returns the profile owned by userID
func (r *AppointmentRepo) GetDentistIDByUser(ctx context.Context, userID uuid.UUID) (uuid.UUID, error) {
	var id uuid.UUID
	err := r.db.GetContext(ctx, &id, `SELECT id FROM dentists WHERE user_id = $1`, userID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return uuid.Nil, fmt.Errorf("dentist profile: %w", models.ErrNotFound)
		}
		return uuid.Nil, fmt.Errorf("failed to get dentist profile: %w", err)
	}
	return id, nil
}

// Create inserts a pending appointment. The dentist row is locked so that
// concurrent bookings of the same dentist are checked one at a time.
func (r *AppointmentRepo) Create(ctx context.Context, a *models.Appointment) error {
	defer nrpkg.DatastoreSegment(ctx, "appointments", "INSERT").End()

	a.ID = uuid.New()
	now := time.Now().UTC()
	a.CreatedAt = now
	a.UpdatedAt = now

	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx, `SELECT 1 FROM dentists WHERE id = $1 FOR UPDATE`, a.DentistID); err != nil {
		return fmt.Errorf("failed to lock dentist: %w", err)
	}

	var overlapping bool
	err = tx.GetContext(ctx, &overlapping, `
		SELECT EXISTS (
			SELECT 1 FROM appointments
			WHERE dentist_id = $1
			  AND status IN ('pending', 'confirmed')
			  AND starts_at < $3 AND ends_at > $2
		)`, a.DentistID, a.StartsAt, a.EndsAt)
	if err != nil {
		return fmt.Errorf("failed to check overlapping appointments: %w", err)
	}
	if overlapping {
		return fmt.Errorf("slot overlaps another appointment: %w", models.ErrConflict)
	}

	query := `
		INSERT INTO appointments (id, dentist_id, patient_id, starts_at, ends_at, consultation_type,
			status, notes, created_at, updated_at)
		VALUES (:id, :dentist_id, :patient_id, :starts_at, :ends_at, :consultation_type,
			:status, :notes, :created_at, :updated_at)
	`
	if _, err := tx.NamedExecContext(ctx, query, a); err != nil {
		return fmt.Errorf("failed to insert appointment: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}
	return nil
}

// GetByID retrieves an appointment
func (r *AppointmentRepo) GetByID(ctx context.Context, id uuid.UUID) (*models.Appointment, error) {
	var a models.Appointment
	query := fmt.Sprintf(`SELECT %s FROM appointments WHERE id = $1`, appointmentColumns)
	if err := r.db.GetContext(ctx, &a, query, id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("appointment: %w", models.ErrNotFound)
		}
		return nil, fmt.Errorf("failed to get appointment: %w", err)
	}
	return &a, nil
}

// ListByPatient lists a patient's appointments, soonest first
func (r *AppointmentRepo) ListByPatient(ctx context.Context, patientID uuid.UUID, status string) ([]models.Appointment, error) {
	return r.list(ctx, "patient_id", patientID, status)
}

// ListByDentist lists a dentist's appointments, soonest first
func (r *AppointmentRepo) ListByDentist(ctx context.Context, dentistID uuid.UUID, status string) ([]models.Appointment, error) {
	return r.list(ctx, "dentist_id", dentistID, status)
}

func (r *AppointmentRepo) list(ctx context.Context, field string, id uuid.UUID, status string) ([]models.Appointment, error) {
	query := fmt.Sprintf(`
		SELECT %s FROM appointments
		WHERE %s = $1 AND ($2 = '' OR status = $2)
		ORDER BY starts_at ASC`, appointmentColumns, field)

	items := []models.Appointment{}
	if err := r.db.SelectContext(ctx, &items, query, id, status); err != nil {
		return nil, fmt.Errorf("failed to list appointments: %w", err)
	}
	return items, nil
}

// UpdateStatus applies a transition guarded by the expected current status
func (r *AppointmentRepo) UpdateStatus(ctx context.Context, id uuid.UUID, from, to string, reason *string) (*models.Appointment, error) {
	var a models.Appointment
	query := fmt.Sprintf(`
		UPDATE appointments
		SET status = $3, cancel_reason = COALESCE($4, cancel_reason), updated_at = NOW()
		WHERE id = $1 AND status = $2
		RETURNING %s`, appointmentColumns)
	if err := r.db.GetContext(ctx, &a, query, id, from, to, reason); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("appointment is no longer %s: %w", from, models.ErrConflict)
		}
		return nil, fmt.Errorf("failed to update appointment: %w", err)
	}
	return &a, nil
}
