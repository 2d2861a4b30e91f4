package http

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/piresc/senyum/internal/pkg/middleware"
	"github.com/piresc/senyum/internal/pkg/models"
	"github.com/piresc/senyum/services/users/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newContext(method string, body interface{}) (echo.Context, *httptest.ResponseRecorder) {
	var buf bytes.Buffer
	if body != nil {
		_ = json.NewEncoder(&buf).Encode(body)
	}
	req := httptest.NewRequest(method, "/", &buf)
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	return echo.New().NewContext(req, rec), rec
}

func TestAuthHandler_Register(t *testing.T) {
	tests := []struct {
		name         string
		mockSetup    func(*mocks.MockUserUC)
		expectedCode int
	}{
		{
			name: "created",
			mockSetup: func(m *mocks.MockUserUC) {
				m.EXPECT().Register(gomock.Any(), &models.RegisterRequest{Email: "ana@example.com", Password: "long-enough", FullName: "Ana"}).
					Return(&models.User{ID: uuid.New(), Email: "ana@example.com", PasswordHash: "secret-hash"}, nil)
			},
			expectedCode: http.StatusCreated,
		},
		{
			name: "email taken",
			mockSetup: func(m *mocks.MockUserUC) {
				m.EXPECT().Register(gomock.Any(), gomock.Any()).
					Return(nil, fmt.Errorf("email already registered: %w", models.ErrConflict))
			},
			expectedCode: http.StatusConflict,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mockUC := mocks.NewMockUserUC(ctrl)
			tt.mockSetup(mockUC)
			handler := NewAuthHandler(mockUC)

			c, rec := newContext(http.MethodPost, models.RegisterRequest{Email: "ana@example.com", Password: "long-enough", FullName: "Ana"})
			err := handler.Register(c)

			assert.NoError(t, err)
			assert.Equal(t, tt.expectedCode, rec.Code)
			assert.NotContains(t, rec.Body.String(), "secret-hash")
		})
	}
}

func TestAuthHandler_Login(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockUC := mocks.NewMockUserUC(ctrl)
	handler := NewAuthHandler(mockUC)

	mockUC.EXPECT().Login(gomock.Any(), &models.LoginRequest{Email: "ana@example.com", Password: "bad"}).
		Return(nil, fmt.Errorf("invalid email or password: %w", models.ErrUnauthorized))

	c, rec := newContext(http.MethodPost, models.LoginRequest{Email: "ana@example.com", Password: "bad"})
	err := handler.Login(c)

	assert.NoError(t, err)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestAuthHandler_Login_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockUC := mocks.NewMockUserUC(ctrl)
	handler := NewAuthHandler(mockUC)

	mockUC.EXPECT().Login(gomock.Any(), gomock.Any()).
		Return(&models.AuthResponse{Token: "tkn", ExpiresAt: 1700000000, User: &models.User{Role: models.RolePatient}}, nil)

	c, rec := newContext(http.MethodPost, models.LoginRequest{Email: "ana@example.com", Password: "good-pass"})
	require.NoError(t, handler.Login(c))
	assert.Equal(t, http.StatusOK, rec.Code)

	var body struct {
		Data models.AuthResponse `json:"data"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "tkn", body.Data.Token)
}

func TestUserHandler_Me(t *testing.T) {
	t.Run("unauthenticated", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		handler := NewUserHandler(mocks.NewMockUserUC(ctrl))

		c, rec := newContext(http.MethodGet, nil)
		assert.NoError(t, handler.Me(c))
		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})

	t.Run("found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		mockUC := mocks.NewMockUserUC(ctrl)
		handler := NewUserHandler(mockUC)

		id := uuid.New()
		mockUC.EXPECT().GetUserByID(gomock.Any(), id).Return(&models.User{ID: id}, nil)

		c, rec := newContext(http.MethodGet, nil)
		c.Set(middleware.ContextKeyUserID, id)
		assert.NoError(t, handler.Me(c))
		assert.Equal(t, http.StatusOK, rec.Code)
	})
}

func TestUserHandler_UpdateRole(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	mockUC := mocks.NewMockUserUC(ctrl)
	handler := NewUserHandler(mockUC)

	id := uuid.New()
	mockUC.EXPECT().UpdateRole(gomock.Any(), id, &models.RoleUpdateRequest{Role: "driver"}).
		Return(nil, fmt.Errorf("unknown role: %w", models.ErrInvalidInput))

	c, rec := newContext(http.MethodPut, models.RoleUpdateRequest{Role: "driver"})
	c.SetParamNames("id")
	c.SetParamValues(id.String())

	assert.NoError(t, handler.UpdateRole(c))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}
