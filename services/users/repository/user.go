package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"
	"github.com/piresc/senyum/internal/pkg/logger"
	"github.com/piresc/senyum/internal/pkg/models"
)

const userColumns = `id, email, password_hash, full_name, phone, role, is_active, created_at, updated_at`

// UserRepo implements users.UserRepo on PostgreSQL
type UserRepo struct {
	cfg *models.Config
	db  *sqlx.DB
}

// NewUserRepository creates a new user repository
func NewUserRepository(cfg *models.Config, db *sqlx.DB) *UserRepo {
	logger.Info("Initializing user repository")
	return &UserRepo{cfg: cfg, db: db}
}

// CreateUser inserts user, assigning its id and timestamps
func (r *UserRepo) CreateUser(ctx context.Context, user *models.User) error {
	user.ID = uuid.New()
	now := time.Now().UTC()
	user.CreatedAt = now
	user.UpdatedAt = now

	query := `
		INSERT INTO users (id, email, password_hash, full_name, phone, role, is_active, created_at, updated_at)
		VALUES (:id, :email, :password_hash, :full_name, :phone, :role, :is_active, :created_at, :updated_at)
	`
	if _, err := r.db.NamedExecContext(ctx, query, user); err != nil {
		var pqErr *pq.Error
		if errors.As(err, &pqErr) && pqErr.Code == "23505" {
			return fmt.Errorf("email already registered: %w", models.ErrConflict)
		}
		var stateErr interface{ SQLState() string }
		if errors.As(err, &stateErr) && stateErr.SQLState() == "23505" {
			return fmt.Errorf("email already registered: %w", models.ErrConflict)
		}
		return fmt.Errorf("failed to insert user: %w", err)
	}
	return nil
}

// GetUserByID retrieves a user by id
func (r *UserRepo) GetUserByID(ctx context.Context, id uuid.UUID) (*models.User, error) {
	return r.getUserByField(ctx, "id", id)
}

// GetUserByEmail retrieves a user by email, case insensitively
func (r *UserRepo) GetUserByEmail(ctx context.Context, email string) (*models.User, error) {
	return r.getUserByField(ctx, "lower(email)", email)
}

func (r *UserRepo) getUserByField(ctx context.Context, field string, value interface{}) (*models.User, error) {
	query := fmt.Sprintf(`SELECT %s FROM users WHERE %s = $1`, userColumns, field)

	var user models.User
	if err := r.db.GetContext(ctx, &user, query, value); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("user: %w", models.ErrNotFound)
		}
		return nil, fmt.Errorf("failed to get user: %w", err)
	}
	return &user, nil
}

// UpdateRole changes the role of an account
func (r *UserRepo) UpdateRole(ctx context.Context, id uuid.UUID, role string) error {
	res, err := r.db.ExecContext(ctx,
		`UPDATE users SET role = $2, updated_at = NOW() WHERE id = $1`, id, role)
	if err != nil {
		return fmt.Errorf("failed to update role: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to update role: %w", err)
	}
	if n == 0 {
		return fmt.Errorf("user: %w", models.ErrNotFound)
	}
	return nil
}
