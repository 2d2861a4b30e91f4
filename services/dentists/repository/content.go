package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"
	"github.com/piresc/senyum/internal/pkg/models"
)

// ListFeatures returns the feature list in display order
func (r *DentistRepo) ListFeatures(ctx context.Context, dentistID uuid.UUID) ([]models.Feature, error) {
	features := []models.Feature{}
	query := `SELECT id, dentist_id, name, position FROM dentist_features WHERE dentist_id = $1 ORDER BY position`
	if err := r.db.SelectContext(ctx, &features, query, dentistID); err != nil {
		return nil, fmt.Errorf("failed to list features: %w", err)
	}
	return features, nil
}

// ReplaceFeatures deletes the current list and inserts names in order
func (r *DentistRepo) ReplaceFeatures(ctx context.Context, dentistID uuid.UUID, names []string) ([]models.Feature, error) {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx, `DELETE FROM dentist_features WHERE dentist_id = $1`, dentistID); err != nil {
		return nil, fmt.Errorf("failed to clear features: %w", err)
	}

	features := make([]models.Feature, 0, len(names))
	for i, name := range names {
		feature := models.Feature{ID: uuid.New(), DentistID: dentistID, Name: name, Position: i}
		if _, err := tx.ExecContext(ctx,
			`INSERT INTO dentist_features (id, dentist_id, name, position) VALUES ($1, $2, $3, $4)`,
			feature.ID, feature.DentistID, feature.Name, feature.Position); err != nil {
			return nil, fmt.Errorf("failed to insert feature: %w", err)
		}
		features = append(features, feature)
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("failed to commit transaction: %w", err)
	}
	return features, nil
}

// ListFAQs returns FAQs ordered by position
func (r *DentistRepo) ListFAQs(ctx context.Context, dentistID uuid.UUID) ([]models.FAQ, error) {
	faqs := []models.FAQ{}
	query := `
		SELECT id, dentist_id, question, answer, position, created_at
		FROM dentist_faqs WHERE dentist_id = $1
		ORDER BY position, created_at`
	if err := r.db.SelectContext(ctx, &faqs, query, dentistID); err != nil {
		return nil, fmt.Errorf("failed to list faqs: %w", err)
	}
	return faqs, nil
}

// CreateFAQ appends faq after the last existing position
func (r *DentistRepo) CreateFAQ(ctx context.Context, faq *models.FAQ) error {
	query := `
		INSERT INTO dentist_faqs (id, dentist_id, question, answer, position, created_at)
		VALUES ($1, $2, $3, $4,
			(SELECT COALESCE(MAX(position) + 1, 0) FROM dentist_faqs WHERE dentist_id = $2),
			NOW())
		RETURNING position, created_at`

	if err := r.db.QueryRowxContext(ctx, query, faq.ID, faq.DentistID, faq.Question, faq.Answer).
		Scan(&faq.Position, &faq.CreatedAt); err != nil {
		return fmt.Errorf("failed to create faq: %w", err)
	}
	return nil
}

// DeleteFAQ removes one FAQ of the dentist
func (r *DentistRepo) DeleteFAQ(ctx context.Context, dentistID, faqID uuid.UUID) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM dentist_faqs WHERE id = $1 AND dentist_id = $2`, faqID, dentistID)
	if err != nil {
		return fmt.Errorf("failed to delete faq: %w", err)
	}
	return expectAffected(res, "faq")
}

// ReorderFAQs rewrites positions 0..n-1 following ids. Every id must belong
// to the dentist, otherwise nothing changes.
func (r *DentistRepo) ReorderFAQs(ctx context.Context, dentistID uuid.UUID, ids []uuid.UUID) error {
	raw := make([]string, len(ids))
	for i, id := range ids {
		raw[i] = id.String()
	}

	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	query := `
		UPDATE dentist_faqs AS f
		SET position = o.ord - 1
		FROM unnest($2::uuid[]) WITH ORDINALITY AS o(id, ord)
		WHERE f.id = o.id AND f.dentist_id = $1`

	res, err := tx.ExecContext(ctx, query, dentistID, pq.Array(raw))
	if err != nil {
		return fmt.Errorf("failed to reorder faqs: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to read affected rows: %w", err)
	}
	if int(n) != len(ids) {
		return fmt.Errorf("faq order references unknown faqs: %w", models.ErrInvalidInput)
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}
	return nil
}

// ListCosts returns the cost page cheapest first
func (r *DentistRepo) ListCosts(ctx context.Context, dentistID uuid.UUID) ([]models.CostItem, error) {
	items := []models.CostItem{}
	query := `
		SELECT id, dentist_id, name, description, price_min, price_max, currency
		FROM dentist_costs WHERE dentist_id = $1
		ORDER BY price_min, name`
	if err := r.db.SelectContext(ctx, &items, query, dentistID); err != nil {
		return nil, fmt.Errorf("failed to list costs: %w", err)
	}
	return items, nil
}

// ReplaceCosts swaps the cost page and refreshes price_from on the dentist
func (r *DentistRepo) ReplaceCosts(ctx context.Context, dentistID uuid.UUID, items []models.CostItem) error {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx, `DELETE FROM dentist_costs WHERE dentist_id = $1`, dentistID); err != nil {
		return fmt.Errorf("failed to clear costs: %w", err)
	}

	for _, item := range items {
		if _, err := tx.ExecContext(ctx, `
			INSERT INTO dentist_costs (id, dentist_id, name, description, price_min, price_max, currency)
			VALUES ($1, $2, $3, $4, $5, $6, $7)`,
			item.ID, dentistID, item.Name, item.Description, item.PriceMin, item.PriceMax, item.Currency); err != nil {
			return fmt.Errorf("failed to insert cost item: %w", err)
		}
	}

	if _, err := tx.ExecContext(ctx, `
		UPDATE dentists
		SET price_from = (SELECT MIN(price_min) FROM dentist_costs WHERE dentist_id = $1),
			updated_at = NOW()
		WHERE id = $1`, dentistID); err != nil {
		return fmt.Errorf("failed to update price_from: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}
	return nil
}

const mediaColumns = `id, dentist_id, kind, object_key, url, content_type, size_bytes, created_at`

// ListMedia returns uploaded images oldest first
func (r *DentistRepo) ListMedia(ctx context.Context, dentistID uuid.UUID) ([]models.Media, error) {
	media := []models.Media{}
	query := `SELECT ` + mediaColumns + ` FROM dentist_media WHERE dentist_id = $1 ORDER BY created_at`
	if err := r.db.SelectContext(ctx, &media, query, dentistID); err != nil {
		return nil, fmt.Errorf("failed to list media: %w", err)
	}
	return media, nil
}

// GetMedia returns one media row of the dentist
func (r *DentistRepo) GetMedia(ctx context.Context, dentistID, mediaID uuid.UUID) (*models.Media, error) {
	var media models.Media
	query := `SELECT ` + mediaColumns + ` FROM dentist_media WHERE id = $1 AND dentist_id = $2`
	if err := r.db.GetContext(ctx, &media, query, mediaID, dentistID); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("media: %w", models.ErrNotFound)
		}
		return nil, fmt.Errorf("failed to get media: %w", err)
	}
	return &media, nil
}

// CreateMedia records an uploaded object
func (r *DentistRepo) CreateMedia(ctx context.Context, media *models.Media) error {
	media.CreatedAt = time.Now()
	query := `
		INSERT INTO dentist_media (` + mediaColumns + `)
		VALUES (:id, :dentist_id, :kind, :object_key, :url, :content_type, :size_bytes, :created_at)`
	if _, err := r.db.NamedExecContext(ctx, query, media); err != nil {
		return fmt.Errorf("failed to create media: %w", err)
	}
	return nil
}

// DeleteMedia removes one media row of the dentist
func (r *DentistRepo) DeleteMedia(ctx context.Context, dentistID, mediaID uuid.UUID) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM dentist_media WHERE id = $1 AND dentist_id = $2`, mediaID, dentistID)
	if err != nil {
		return fmt.Errorf("failed to delete media: %w", err)
	}
	return expectAffected(res, "media")
}
