package handler

import (
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	jwtpkg "github.com/piresc/senyum/internal/pkg/jwt"
	"github.com/piresc/senyum/internal/pkg/locationtoken"
	"github.com/piresc/senyum/internal/pkg/models"
	httpHandler "github.com/piresc/senyum/services/dentists/handler/http"
	"github.com/piresc/senyum/services/dentists/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newRoutedEcho(t *testing.T) (*echo.Echo, *mocks.MockDentistUC, *models.Config) {
	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)

	cfg := &models.Config{
		JWT:      models.JWTConfig{Secret: "routes-secret", Expiration: 60},
		Location: models.LocationConfig{Secret: "location-secret"},
	}
	mockUC := mocks.NewMockDentistUC(ctrl)
	h := NewHandler(
		httpHandler.NewDentistHandler(mockUC, locationtoken.NewCodec(cfg.Location)),
		httpHandler.NewManageHandler(mockUC, cfg),
		httpHandler.NewAdminHandler(mockUC),
		nil,
		cfg,
	)

	e := echo.New()
	h.RegisterRoutes(e)
	return e, mockUC, cfg
}

func bearer(t *testing.T, cfg *models.Config, role string) string {
	token, _, err := jwtpkg.GenerateToken(uuid.New(), role, cfg.JWT, time.Now())
	require.NoError(t, err)
	return "Bearer " + token
}

func TestRegisterRoutes_Auth(t *testing.T) {
	e, mockUC, cfg := newRoutedEcho(t)
	dentistID := uuid.New().String()

	tests := []struct {
		name         string
		method       string
		path         string
		role         string
		body         string
		mockSetup    func()
		expectedCode int
	}{
		{
			name:         "public search needs no token",
			method:       "GET",
			path:         "/dentists",
			mockSetup:    func() { mockUC.EXPECT().Search(gomock.Any(), gomock.Any()).Return(&models.Page[models.DentistSummary]{}, nil) },
			expectedCode: 200,
		},
		{
			name:         "nearby is public",
			method:       "GET",
			path:         "/dentists/nearby",
			mockSetup:    func() { mockUC.EXPECT().SearchNearby(gomock.Any(), gomock.Any(), 0.0).Return([]models.NearbyDentist{}, nil) },
			expectedCode: 200,
		},
		{
			name:         "creating a profile needs a token",
			method:       "POST",
			path:         "/dentists",
			body:         `{"name":"Ana"}`,
			mockSetup:    func() {},
			expectedCode: 401,
		},
		{
			name:         "patients cannot create profiles",
			method:       "POST",
			path:         "/dentists",
			role:         models.RolePatient,
			body:         `{"name":"Ana"}`,
			mockSetup:    func() {},
			expectedCode: 403,
		},
		{
			name:         "dentists cannot review",
			method:       "POST",
			path:         "/dentists/dr-ana/reviews",
			role:         models.RoleDentist,
			body:         `{"rating":5}`,
			mockSetup:    func() {},
			expectedCode: 403,
		},
		{
			name:         "moderation is admin only",
			method:       "PUT",
			path:         "/admin/dentists/" + dentistID + "/status",
			role:         models.RoleDentist,
			body:         `{"status":"verified"}`,
			mockSetup:    func() {},
			expectedCode: 403,
		},
		{
			name:   "admin moderates",
			method: "PUT",
			path:   "/admin/dentists/" + dentistID + "/status",
			role:   models.RoleAdmin,
			body:   `{"status":"verified"}`,
			mockSetup: func() {
				mockUC.EXPECT().UpdateStatus(gomock.Any(), uuid.MustParse(dentistID), &models.StatusUpdateRequest{Status: "verified"}).
					Return(&models.Dentist{Status: "verified"}, nil)
			},
			expectedCode: 200,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.mockSetup()

			req := httptest.NewRequest(tt.method, tt.path, strings.NewReader(tt.body))
			req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
			if tt.role != "" {
				req.Header.Set(echo.HeaderAuthorization, bearer(t, cfg, tt.role))
			}
			rec := httptest.NewRecorder()
			e.ServeHTTP(rec, req)

			assert.Equal(t, tt.expectedCode, rec.Code, rec.Body.String())
		})
	}
}
