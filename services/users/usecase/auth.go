package usecase

import (
	"context"
	"errors"
	"fmt"
	"strings"

	jwtpkg "github.com/piresc/senyum/internal/pkg/jwt"
	"github.com/piresc/senyum/internal/pkg/logger"
	"github.com/piresc/senyum/internal/pkg/models"
	"github.com/piresc/senyum/internal/utils"
	"golang.org/x/crypto/bcrypt"
)

var errBadCredentials = fmt.Errorf("invalid email or password: %w", models.ErrUnauthorized)

// Register creates a patient account
func (u *UserUC) Register(ctx context.Context, req *models.RegisterRequest) (*models.User, error) {
	email := strings.ToLower(strings.TrimSpace(req.Email))
	if !utils.IsValidEmail(email) {
		return nil, fmt.Errorf("invalid email: %w", models.ErrInvalidInput)
	}
	if len(req.Password) < minPasswordLength {
		return nil, fmt.Errorf("password must be at least %d characters: %w", minPasswordLength, models.ErrInvalidInput)
	}
	name := utils.SanitizeString(req.FullName)
	if name == "" {
		return nil, fmt.Errorf("full_name is required: %w", models.ErrInvalidInput)
	}
	phone := utils.NormalizePhone(req.Phone)
	if phone != "" && !utils.IsValidPhoneNumber(phone) {
		return nil, fmt.Errorf("invalid phone number: %w", models.ErrInvalidInput)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), u.bcryptCost)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	user := &models.User{
		Email:        email,
		PasswordHash: string(hash),
		FullName:     name,
		Phone:        phone,
		Role:         models.RolePatient,
		IsActive:     true,
	}
	if err := u.userRepo.CreateUser(ctx, user); err != nil {
		return nil, err
	}

	logger.InfoCtx(ctx, "User registered",
		logger.String("user_id", user.ID.String()),
		logger.String("email", utils.MaskEmail(email)))
	return user, nil
}

// Login checks the password and issues an access token
func (u *UserUC) Login(ctx context.Context, req *models.LoginRequest) (*models.AuthResponse, error) {
	email := strings.ToLower(strings.TrimSpace(req.Email))
	if email == "" || req.Password == "" {
		return nil, fmt.Errorf("email and password are required: %w", models.ErrInvalidInput)
	}

	user, err := u.userRepo.GetUserByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, models.ErrNotFound) {
			return nil, errBadCredentials
		}
		return nil, err
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.Password)); err != nil {
		logger.WarnCtx(ctx, "Failed login attempt", logger.String("email", utils.MaskEmail(email)))
		return nil, errBadCredentials
	}
	if !user.IsActive {
		return nil, fmt.Errorf("account is disabled: %w", models.ErrForbidden)
	}

	token, expiresAt, err := jwtpkg.GenerateToken(user.ID, user.Role, u.cfg.JWT, u.now())
	if err != nil {
		return nil, fmt.Errorf("failed to generate token: %w", err)
	}

	return &models.AuthResponse{
		Token:     token,
		ExpiresAt: expiresAt,
		User:      user,
	}, nil
}
