package usecase

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	jwtpkg "github.com/piresc/senyum/internal/pkg/jwt"
	"github.com/piresc/senyum/internal/pkg/models"
	"github.com/piresc/senyum/services/users/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func newTestUC(t *testing.T) (*UserUC, *mocks.MockUserRepo) {
	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)

	mockRepo := mocks.NewMockUserRepo(ctrl)
	cfg := &models.Config{
		JWT: models.JWTConfig{
			Secret:     "test-secret",
			Expiration: 60,
			Issuer:     "test-issuer",
		},
	}
	uc := NewUserUC(mockRepo, cfg)
	uc.bcryptCost = bcrypt.MinCost
	return uc, mockRepo
}

func hashed(t *testing.T, password string) string {
	h, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	require.NoError(t, err)
	return string(h)
}

func TestRegister_Success(t *testing.T) {
	// Arrange
	uc, mockRepo := newTestUC(t)
	mockRepo.EXPECT().CreateUser(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, user *models.User) error {
			user.ID = uuid.New()
			return nil
		})

	// Act
	user, err := uc.Register(context.Background(), &models.RegisterRequest{
		Email:    "  Ana@Example.com ",
		Password: "s3cret-pass",
		FullName: "Ana  Lestari",
		Phone:    "+62 812-3456-7890",
	})

	// Assert
	require.NoError(t, err)
	assert.Equal(t, "ana@example.com", user.Email)
	assert.Equal(t, "Ana Lestari", user.FullName)
	assert.Equal(t, "+6281234567890", user.Phone)
	assert.Equal(t, models.RolePatient, user.Role)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte("s3cret-pass")))
}

func TestRegister_ValidationError(t *testing.T) {
	cases := map[string]models.RegisterRequest{
		"bad email":      {Email: "nope", Password: "long-enough", FullName: "Ana"},
		"short password": {Email: "ana@example.com", Password: "short", FullName: "Ana"},
		"missing name":   {Email: "ana@example.com", Password: "long-enough"},
		"bad phone":      {Email: "ana@example.com", Password: "long-enough", FullName: "Ana", Phone: "12ab"},
	}
	for name, req := range cases {
		t.Run(name, func(t *testing.T) {
			uc, _ := newTestUC(t)
			req := req

			user, err := uc.Register(context.Background(), &req)

			assert.Nil(t, user)
			assert.ErrorIs(t, err, models.ErrInvalidInput)
		})
	}
}

func TestRegister_DuplicateEmail(t *testing.T) {
	uc, mockRepo := newTestUC(t)
	mockRepo.EXPECT().CreateUser(gomock.Any(), gomock.Any()).
		Return(fmt.Errorf("email already registered: %w", models.ErrConflict))

	_, err := uc.Register(context.Background(), &models.RegisterRequest{
		Email: "ana@example.com", Password: "long-enough", FullName: "Ana",
	})

	assert.ErrorIs(t, err, models.ErrConflict)
}

func TestLogin(t *testing.T) {
	userID := uuid.New()
	now := time.Date(2026, 1, 10, 8, 0, 0, 0, time.UTC)

	tests := []struct {
		name      string
		password  string
		mockSetup func(*mocks.MockUserRepo)
		assertFn  func(t *testing.T, resp *models.AuthResponse, err error)
	}{
		{
			name:     "valid credentials",
			password: "correct-horse",
			mockSetup: func(m *mocks.MockUserRepo) {
				m.EXPECT().GetUserByEmail(gomock.Any(), "ana@example.com").Return(&models.User{
					ID: userID, Email: "ana@example.com", PasswordHash: hashed(t, "correct-horse"),
					Role: models.RoleDentist, IsActive: true,
				}, nil)
			},
			assertFn: func(t *testing.T, resp *models.AuthResponse, err error) {
				require.NoError(t, err)
				assert.Equal(t, now.Add(time.Hour).Unix(), resp.ExpiresAt)
				assert.Equal(t, userID, resp.User.ID)
				assert.NotEmpty(t, resp.Token)
			},
		},
		{
			name:     "wrong password",
			password: "wrong",
			mockSetup: func(m *mocks.MockUserRepo) {
				m.EXPECT().GetUserByEmail(gomock.Any(), "ana@example.com").Return(&models.User{
					ID: userID, PasswordHash: hashed(t, "correct-horse"), IsActive: true,
				}, nil)
			},
			assertFn: func(t *testing.T, resp *models.AuthResponse, err error) {
				assert.Nil(t, resp)
				assert.ErrorIs(t, err, models.ErrUnauthorized)
			},
		},
		{
			name:     "unknown email",
			password: "whatever",
			mockSetup: func(m *mocks.MockUserRepo) {
				m.EXPECT().GetUserByEmail(gomock.Any(), "ana@example.com").
					Return(nil, fmt.Errorf("user: %w", models.ErrNotFound))
			},
			assertFn: func(t *testing.T, resp *models.AuthResponse, err error) {
				assert.ErrorIs(t, err, models.ErrUnauthorized)
				assert.NotErrorIs(t, err, models.ErrNotFound)
			},
		},
		{
			name:     "disabled account",
			password: "correct-horse",
			mockSetup: func(m *mocks.MockUserRepo) {
				m.EXPECT().GetUserByEmail(gomock.Any(), "ana@example.com").Return(&models.User{
					ID: userID, PasswordHash: hashed(t, "correct-horse"), IsActive: false,
				}, nil)
			},
			assertFn: func(t *testing.T, resp *models.AuthResponse, err error) {
				assert.ErrorIs(t, err, models.ErrForbidden)
			},
		},
		{
			name:     "store failure",
			password: "correct-horse",
			mockSetup: func(m *mocks.MockUserRepo) {
				m.EXPECT().GetUserByEmail(gomock.Any(), "ana@example.com").
					Return(nil, errors.New("db down"))
			},
			assertFn: func(t *testing.T, resp *models.AuthResponse, err error) {
				assert.EqualError(t, err, "db down")
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			uc, mockRepo := newTestUC(t)
			uc.now = func() time.Time { return now }
			tt.mockSetup(mockRepo)

			resp, err := uc.Login(context.Background(), &models.LoginRequest{Email: "Ana@example.com", Password: tt.password})

			tt.assertFn(t, resp, err)
		})
	}
}

func TestLogin_TokenValidates(t *testing.T) {
	uc, mockRepo := newTestUC(t)
	userID := uuid.New()
	mockRepo.EXPECT().GetUserByEmail(gomock.Any(), "ana@example.com").Return(&models.User{
		ID: userID, PasswordHash: hashed(t, "correct-horse"), Role: models.RolePatient, IsActive: true,
	}, nil)

	resp, err := uc.Login(context.Background(), &models.LoginRequest{Email: "ana@example.com", Password: "correct-horse"})
	require.NoError(t, err)

	claims, err := jwtpkg.ValidateToken(resp.Token, "test-secret")
	require.NoError(t, err)
	assert.Equal(t, userID.String(), claims.UserID)
	assert.Equal(t, models.RolePatient, claims.Role)
	assert.Equal(t, "test-issuer", claims.Issuer)
}

func TestLogin_MissingFields(t *testing.T) {
	uc, _ := newTestUC(t)

	_, err := uc.Login(context.Background(), &models.LoginRequest{Email: "ana@example.com"})

	assert.ErrorIs(t, err, models.ErrInvalidInput)
}

func TestUpdateRole(t *testing.T) {
	id := uuid.New()

	t.Run("promotes", func(t *testing.T) {
		uc, mockRepo := newTestUC(t)
		gomock.InOrder(
			mockRepo.EXPECT().GetUserByID(gomock.Any(), id).Return(&models.User{ID: id, Role: models.RolePatient}, nil),
			mockRepo.EXPECT().UpdateRole(gomock.Any(), id, models.RoleDentist).Return(nil),
		)

		user, err := uc.UpdateRole(context.Background(), id, &models.RoleUpdateRequest{Role: models.RoleDentist})

		require.NoError(t, err)
		assert.Equal(t, models.RoleDentist, user.Role)
	})

	t.Run("same role is a no-op", func(t *testing.T) {
		uc, mockRepo := newTestUC(t)
		mockRepo.EXPECT().GetUserByID(gomock.Any(), id).Return(&models.User{ID: id, Role: models.RoleAdmin}, nil)

		user, err := uc.UpdateRole(context.Background(), id, &models.RoleUpdateRequest{Role: models.RoleAdmin})

		require.NoError(t, err)
		assert.Equal(t, models.RoleAdmin, user.Role)
	})

	t.Run("unknown role", func(t *testing.T) {
		uc, _ := newTestUC(t)

		_, err := uc.UpdateRole(context.Background(), id, &models.RoleUpdateRequest{Role: "driver"})

		assert.ErrorIs(t, err, models.ErrInvalidInput)
	})
}
