package usecase

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/piresc/senyum/internal/pkg/logger"
	"github.com/piresc/senyum/internal/pkg/models"
)

// GetUserByID returns an account
func (u *UserUC) GetUserByID(ctx context.Context, id uuid.UUID) (*models.User, error) {
	return u.userRepo.GetUserByID(ctx, id)
}

// UpdateRole changes the role of an account
func (u *UserUC) UpdateRole(ctx context.Context, id uuid.UUID, req *models.RoleUpdateRequest) (*models.User, error) {
	if !models.IsValidRole(req.Role) {
		return nil, fmt.Errorf("unknown role %q: %w", req.Role, models.ErrInvalidInput)
	}

	user, err := u.userRepo.GetUserByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if user.Role == req.Role {
		return user, nil
	}

	if err := u.userRepo.UpdateRole(ctx, id, req.Role); err != nil {
		return nil, err
	}

	logger.InfoCtx(ctx, "User role changed",
		logger.String("user_id", id.String()),
		logger.String("from", user.Role),
		logger.String("to", req.Role))
	user.Role = req.Role
	return user, nil
}
