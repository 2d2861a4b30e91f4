package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/piresc/senyum/internal/pkg/models"
)

// ListReviews returns one page of reviews, newest first, and the total count
func (r *DentistRepo) ListReviews(ctx context.Context, dentistID uuid.UUID, limit, offset int) ([]models.Review, int, error) {
	var total int
	if err := r.db.GetContext(ctx, &total, `SELECT COUNT(*) FROM dentist_reviews WHERE dentist_id = $1`, dentistID); err != nil {
		return nil, 0, fmt.Errorf("failed to count reviews: %w", err)
	}

	reviews := []models.Review{}
	query := `
		SELECT r.id, r.dentist_id, r.patient_id, u.full_name AS patient_name,
			r.rating, r.comment, r.created_at
		FROM dentist_reviews r
		JOIN users u ON u.id = r.patient_id
		WHERE r.dentist_id = $1
		ORDER BY r.created_at DESC
		LIMIT $2 OFFSET $3`
	if err := r.db.SelectContext(ctx, &reviews, query, dentistID, limit, offset); err != nil {
		return nil, 0, fmt.Errorf("failed to list reviews: %w", err)
	}
	return reviews, total, nil
}

// CreateReview inserts review and recomputes the rating aggregate in the
// same transaction. A second review by the same patient is a conflict.
func (r *DentistRepo) CreateReview(ctx context.Context, review *models.Review) error {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	query := `
		INSERT INTO dentist_reviews (id, dentist_id, patient_id, rating, comment, created_at)
		VALUES ($1, $2, $3, $4, $5, NOW())
		RETURNING created_at`
	if err := tx.QueryRowxContext(ctx, query, review.ID, review.DentistID, review.PatientID, review.Rating, review.Comment).
		Scan(&review.CreatedAt); err != nil {
		if isUniqueViolation(err) {
			return fmt.Errorf("patient already reviewed this dentist: %w", models.ErrConflict)
		}
		return fmt.Errorf("failed to create review: %w", err)
	}

	if err := refreshRating(ctx, tx, review.DentistID); err != nil {
		return err
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}
	return nil
}

// DeleteReview removes a review, recomputes the aggregate and returns the
// dentist it belonged to
func (r *DentistRepo) DeleteReview(ctx context.Context, reviewID uuid.UUID) (uuid.UUID, error) {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return uuid.Nil, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	var dentistID uuid.UUID
	if err := tx.GetContext(ctx, &dentistID,
		`DELETE FROM dentist_reviews WHERE id = $1 RETURNING dentist_id`, reviewID); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return uuid.Nil, fmt.Errorf("review: %w", models.ErrNotFound)
		}
		return uuid.Nil, fmt.Errorf("failed to delete review: %w", err)
	}

	if err := refreshRating(ctx, tx, dentistID); err != nil {
		return uuid.Nil, err
	}

	if err := tx.Commit(); err != nil {
		return uuid.Nil, fmt.Errorf("failed to commit transaction: %w", err)
	}
	return dentistID, nil
}

func refreshRating(ctx context.Context, tx *sqlx.Tx, dentistID uuid.UUID) error {
	query := `
		UPDATE dentists SET
			rating = COALESCE((SELECT ROUND(AVG(rating)::numeric, 2) FROM dentist_reviews WHERE dentist_id = $1), 0),
			review_count = (SELECT COUNT(*) FROM dentist_reviews WHERE dentist_id = $1),
			updated_at = NOW()
		WHERE id = $1`
	if _, err := tx.ExecContext(ctx, query, dentistID); err != nil {
		return fmt.Errorf("failed to refresh rating: %w", err)
	}
	return nil
}
