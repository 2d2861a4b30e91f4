package usecase

import (
	"time"

	"github.com/piresc/senyum/internal/pkg/models"
	"github.com/piresc/senyum/services/users"
	"golang.org/x/crypto/bcrypt"
)

const minPasswordLength = 8

// UserUC implements users.UserUC
type UserUC struct {
	userRepo   users.UserRepo
	cfg        *models.Config
	bcryptCost int
	now        func() time.Time
}

// NewUserUC creates a new user usecase instance
func NewUserUC(userRepo users.UserRepo, cfg *models.Config) *UserUC {
	return &UserUC{
		userRepo:   userRepo,
		cfg:        cfg,
		bcryptCost: bcrypt.DefaultCost,
		now:        time.Now,
	}
}
