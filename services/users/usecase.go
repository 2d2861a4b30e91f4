package users

import (
	"context"

	"github.com/google/uuid"
	"github.com/piresc/senyum/internal/pkg/models"
)

//go:generate mockgen -destination=mocks/mock_usecase.go -package=mocks github.com/piresc/senyum/services/users UserUC

// UserUC defines account and authentication operations
type UserUC interface {
	Register(ctx context.Context, req *models.RegisterRequest) (*models.User, error)
	Login(ctx context.Context, req *models.LoginRequest) (*models.AuthResponse, error)
	GetUserByID(ctx context.Context, id uuid.UUID) (*models.User, error)
	UpdateRole(ctx context.Context, id uuid.UUID, req *models.RoleUpdateRequest) (*models.User, error)
}
