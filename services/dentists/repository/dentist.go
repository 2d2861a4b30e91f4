package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"
	"github.com/piresc/senyum/internal/pkg/geo"
	"github.com/piresc/senyum/internal/pkg/logger"
	"github.com/piresc/senyum/internal/pkg/models"
	nrpkg "github.com/piresc/senyum/internal/pkg/newrelic"
)

const summaryColumns = `id, name, slug, clinic_name, specialty, city, latitude, longitude,
	rating, review_count, image_url, is_verified, offers_in_person, offers_video,
	price_from, currency`

const dentistColumns = summaryColumns + `, user_id, bio, phone, email, address, geohash,
	languages, years_experience, status, created_at, updated_at`

// DentistRepo implements dentists.DentistRepo on PostgreSQL
type DentistRepo struct {
	cfg *models.Config
	db  *sqlx.DB
}

// NewDentistRepository creates the directory repository
func NewDentistRepository(cfg *models.Config, db *sqlx.DB) *DentistRepo {
	logger.Info("Initializing dentist repository")
	return &DentistRepo{cfg: cfg, db: db}
}

// FindCandidatesInBox returns verified dentists whose coordinate lies in box.
// A window crossing the antimeridian is queried as two longitude ranges.
func (r *DentistRepo) FindCandidatesInBox(ctx context.Context, box geo.BoundingBox) ([]models.DentistSummary, error) {
	defer nrpkg.DatastoreSegment(ctx, "dentists", "SELECT").End()

	lonPredicate := "longitude BETWEEN $3 AND $4"
	if box.CrossesAntimeridian() {
		lonPredicate = "(longitude >= $3 OR longitude <= $4)"
	}

	query := `SELECT ` + summaryColumns + `
		FROM dentists
		WHERE status = 'verified'
			AND latitude IS NOT NULL AND longitude IS NOT NULL
			AND latitude BETWEEN $1 AND $2
			AND ` + lonPredicate + `
		ORDER BY id`

	candidates := []models.DentistSummary{}
	if err := r.db.SelectContext(ctx, &candidates, query, box.MinLat, box.MaxLat, box.MinLon, box.MaxLon); err != nil {
		return nil, fmt.Errorf("failed to query dentists in bounding box: %w", err)
	}
	return candidates, nil
}

// Search lists verified dentists matching filter, best rated first, and
// returns the total number of matches.
func (r *DentistRepo) Search(ctx context.Context, filter models.DentistSearchFilter) ([]models.DentistSummary, int, error) {
	defer nrpkg.DatastoreSegment(ctx, "dentists", "SELECT").End()

	conds := []string{"status = 'verified'"}
	args := []interface{}{}
	arg := func(v interface{}) string {
		args = append(args, v)
		return fmt.Sprintf("$%d", len(args))
	}

	if q := strings.TrimSpace(filter.Query); q != "" {
		p := arg("%" + q + "%")
		conds = append(conds, fmt.Sprintf("(name ILIKE %s OR clinic_name ILIKE %s)", p, p))
	}
	if filter.Specialty != "" {
		conds = append(conds, "specialty ILIKE "+arg(filter.Specialty))
	}
	if filter.City != "" {
		conds = append(conds, "city ILIKE "+arg(filter.City))
	}
	if filter.Area != "" {
		conds = append(conds, "geohash LIKE "+arg(filter.Area+"%"))
	}
	if filter.MinRating > 0 {
		conds = append(conds, "rating >= "+arg(filter.MinRating))
	}
	switch filter.Consultation {
	case models.ConsultationInPerson:
		conds = append(conds, "offers_in_person = TRUE")
	case models.ConsultationVideo:
		conds = append(conds, "offers_video = TRUE")
	}
	where := strings.Join(conds, " AND ")

	var total int
	if err := r.db.GetContext(ctx, &total, `SELECT COUNT(*) FROM dentists WHERE `+where, args...); err != nil {
		return nil, 0, fmt.Errorf("failed to count dentists: %w", err)
	}

	query := `SELECT ` + summaryColumns + ` FROM dentists WHERE ` + where +
		` ORDER BY rating DESC, review_count DESC, name ASC LIMIT ` + arg(filter.Limit) + ` OFFSET ` + arg(filter.Offset())

	items := []models.DentistSummary{}
	if err := r.db.SelectContext(ctx, &items, query, args...); err != nil {
		return nil, 0, fmt.Errorf("failed to search dentists: %w", err)
	}
	return items, total, nil
}

func (r *DentistRepo) getByField(ctx context.Context, field string, value interface{}) (*models.Dentist, error) {
	query := fmt.Sprintf(`SELECT %s FROM dentists WHERE %s = $1`, dentistColumns, field)

	var dentist models.Dentist
	if err := r.db.GetContext(ctx, &dentist, query, value); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("dentist: %w", models.ErrNotFound)
		}
		return nil, fmt.Errorf("failed to get dentist by %s: %w", field, err)
	}
	return &dentist, nil
}

// GetByID retrieves a dentist by ID
func (r *DentistRepo) GetByID(ctx context.Context, id uuid.UUID) (*models.Dentist, error) {
	return r.getByField(ctx, "id", id)
}

// GetBySlug retrieves a dentist by its public slug
func (r *DentistRepo) GetBySlug(ctx context.Context, slug string) (*models.Dentist, error) {
	return r.getByField(ctx, "slug", slug)
}

// GetByUserID retrieves the profile owned by userID
func (r *DentistRepo) GetByUserID(ctx context.Context, userID uuid.UUID) (*models.Dentist, error) {
	return r.getByField(ctx, "user_id", userID)
}

// ListSlugsWithPrefix returns prefix itself and every "prefix-N" slug in use
func (r *DentistRepo) ListSlugsWithPrefix(ctx context.Context, prefix string) ([]string, error) {
	slugs := []string{}
	query := `SELECT slug FROM dentists WHERE slug = $1 OR slug LIKE $2`
	if err := r.db.SelectContext(ctx, &slugs, query, prefix, prefix+"-%"); err != nil {
		return nil, fmt.Errorf("failed to list slugs: %w", err)
	}
	return slugs, nil
}

// Create inserts a new dentist profile
func (r *DentistRepo) Create(ctx context.Context, dentist *models.Dentist) error {
	now := time.Now()
	dentist.CreatedAt = now
	dentist.UpdatedAt = now
	if dentist.Languages == nil {
		dentist.Languages = pq.StringArray{}
	}

	query := `
		INSERT INTO dentists (
			id, user_id, name, slug, clinic_name, specialty, bio, phone, email,
			address, city, languages, years_experience, offers_in_person,
			offers_video, currency, status, is_verified, rating, review_count,
			created_at, updated_at
		) VALUES (
			:id, :user_id, :name, :slug, :clinic_name, :specialty, :bio, :phone, :email,
			:address, :city, :languages, :years_experience, :offers_in_person,
			:offers_video, :currency, :status, :is_verified, :rating, :review_count,
			:created_at, :updated_at
		)`

	if _, err := r.db.NamedExecContext(ctx, query, dentist); err != nil {
		if isUniqueViolation(err) {
			return fmt.Errorf("dentist slug or owner already taken: %w", models.ErrConflict)
		}
		return fmt.Errorf("failed to create dentist: %w", err)
	}
	return nil
}

// UpdateProfile writes the display fields of dentist
func (r *DentistRepo) UpdateProfile(ctx context.Context, dentist *models.Dentist) error {
	dentist.UpdatedAt = time.Now()
	query := `
		UPDATE dentists SET
			name = :name, clinic_name = :clinic_name, specialty = :specialty,
			bio = :bio, phone = :phone, email = :email, city = :city,
			languages = :languages, years_experience = :years_experience,
			offers_in_person = :offers_in_person, offers_video = :offers_video,
			currency = :currency, updated_at = :updated_at
		WHERE id = :id`

	res, err := r.db.NamedExecContext(ctx, query, dentist)
	if err != nil {
		return fmt.Errorf("failed to update dentist profile: %w", err)
	}
	return expectAffected(res, "dentist")
}

// UpdateLocation stores a coordinate and its geohash. A nil address keeps the
// stored one.
func (r *DentistRepo) UpdateLocation(ctx context.Context, id uuid.UUID, coord geo.Coordinate, geohash string, address *string) error {
	query := `
		UPDATE dentists
		SET latitude = $2, longitude = $3, geohash = $4,
			address = COALESCE($5, address), updated_at = NOW()
		WHERE id = $1`

	res, err := r.db.ExecContext(ctx, query, id, coord.Latitude, coord.Longitude, geohash, address)
	if err != nil {
		return fmt.Errorf("failed to update dentist location: %w", err)
	}
	return expectAffected(res, "dentist")
}

// UpdateStatus moderates a dentist; is_verified mirrors the verified status
func (r *DentistRepo) UpdateStatus(ctx context.Context, id uuid.UUID, status string) error {
	query := `
		UPDATE dentists
		SET status = $2, is_verified = ($2 = 'verified'), updated_at = NOW()
		WHERE id = $1`

	res, err := r.db.ExecContext(ctx, query, id, status)
	if err != nil {
		return fmt.Errorf("failed to update dentist status: %w", err)
	}
	return expectAffected(res, "dentist")
}

// UpdateImageURL sets the avatar shown in listings; an empty url clears it
func (r *DentistRepo) UpdateImageURL(ctx context.Context, id uuid.UUID, url string) error {
	res, err := r.db.ExecContext(ctx, `UPDATE dentists SET image_url = NULLIF($2, ''), updated_at = NOW() WHERE id = $1`, id, url)
	if err != nil {
		return fmt.Errorf("failed to update dentist image: %w", err)
	}
	return expectAffected(res, "dentist")
}

// ReassignOwner links the profile to userID in one transaction. The new
// owner becomes a dentist and the previous owner falls back to patient.
func (r *DentistRepo) ReassignOwner(ctx context.Context, id, userID uuid.UUID) error {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	var previous uuid.NullUUID
	if err := tx.GetContext(ctx, &previous, `SELECT user_id FROM dentists WHERE id = $1 FOR UPDATE`, id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return fmt.Errorf("dentist: %w", models.ErrNotFound)
		}
		return fmt.Errorf("failed to lock dentist: %w", err)
	}

	var userExists bool
	if err := tx.GetContext(ctx, &userExists, `SELECT EXISTS(SELECT 1 FROM users WHERE id = $1)`, userID); err != nil {
		return fmt.Errorf("failed to check user: %w", err)
	}
	if !userExists {
		return fmt.Errorf("user: %w", models.ErrNotFound)
	}

	var ownsOther bool
	if err := tx.GetContext(ctx, &ownsOther,
		`SELECT EXISTS(SELECT 1 FROM dentists WHERE user_id = $1 AND id <> $2)`, userID, id); err != nil {
		return fmt.Errorf("failed to check existing ownership: %w", err)
	}
	if ownsOther {
		return fmt.Errorf("user already owns a dentist profile: %w", models.ErrConflict)
	}

	if _, err := tx.ExecContext(ctx, `UPDATE dentists SET user_id = $2, updated_at = NOW() WHERE id = $1`, id, userID); err != nil {
		return fmt.Errorf("failed to reassign dentist: %w", err)
	}
	if _, err := tx.ExecContext(ctx,
		`UPDATE users SET role = 'dentist', updated_at = NOW() WHERE id = $1`, userID); err != nil {
		return fmt.Errorf("failed to promote new owner: %w", err)
	}
	if previous.Valid && previous.UUID != userID {
		if _, err := tx.ExecContext(ctx,
			`UPDATE users SET role = 'patient', updated_at = NOW() WHERE id = $1 AND role = 'dentist'`, previous.UUID); err != nil {
			return fmt.Errorf("failed to demote previous owner: %w", err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}
	return nil
}

func expectAffected(res sql.Result, entity string) error {
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to read affected rows: %w", err)
	}
	if n == 0 {
		return fmt.Errorf("%s: %w", entity, models.ErrNotFound)
	}
	return nil
}

// isUniqueViolation matches SQLSTATE 23505 from either lib/pq or pgx
func isUniqueViolation(err error) bool {
	var pqErr *pq.Error
	if errors.As(err, &pqErr) {
		return pqErr.Code == "23505"
	}
	var stateErr interface{ SQLState() string }
	if errors.As(err, &stateErr) {
		return stateErr.SQLState() == "23505"
	}
	return false
}
