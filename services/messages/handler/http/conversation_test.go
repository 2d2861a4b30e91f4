package http

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/piresc/senyum/internal/pkg/middleware"
	"github.com/piresc/senyum/internal/pkg/models"
	"github.com/piresc/senyum/services/messages/mocks"
	"github.com/stretchr/testify/assert"
)

func newContext(method, target string, body interface{}, actor *models.Actor) (echo.Context, *httptest.ResponseRecorder) {
	var buf bytes.Buffer
	if body != nil {
		_ = json.NewEncoder(&buf).Encode(body)
	}
	req := httptest.NewRequest(method, target, &buf)
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := echo.New().NewContext(req, rec)
	if actor != nil {
		c.Set(middleware.ContextKeyUserID, actor.UserID)
		c.Set(middleware.ContextKeyUserRole, actor.Role)
	}
	return c, rec
}

func TestConversationHandler_Start(t *testing.T) {
	ctrl := gomock.NewController(t)
	uc := mocks.NewMockMessageUC(ctrl)
	h := NewConversationHandler(uc)
	actor := models.Actor{UserID: uuid.New(), Role: models.RolePatient}
	req := models.StartConversationRequest{DentistID: uuid.New()}

	uc.EXPECT().StartConversation(gomock.Any(), actor, &req).
		Return(&models.Conversation{ID: uuid.New(), PatientID: actor.UserID, DentistID: req.DentistID}, nil)

	c, rec := newContext(http.MethodPost, "/conversations", req, &actor)
	assert.NoError(t, h.Start(c))
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestConversationHandler_Unauthenticated(t *testing.T) {
	h := NewConversationHandler(mocks.NewMockMessageUC(gomock.NewController(t)))

	c, rec := newContext(http.MethodGet, "/conversations", nil, nil)
	assert.NoError(t, h.List(c))
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestConversationHandler_Messages(t *testing.T) {
	actor := models.Actor{UserID: uuid.New(), Role: models.RoleDentist}
	convID := uuid.New()
	before := time.Date(2026, 4, 2, 8, 0, 0, 0, time.UTC)

	tests := []struct {
		name         string
		id           string
		query        string
		mockSetup    func(*mocks.MockMessageUC)
		expectedCode int
	}{
		{
			name:  "default page",
			id:    convID.String(),
			query: "",
			mockSetup: func(m *mocks.MockMessageUC) {
				m.EXPECT().ListMessages(gomock.Any(), actor, convID, gomock.Nil(), 0).Return([]models.Message{}, nil)
			},
			expectedCode: http.StatusOK,
		},
		{
			name:  "cursor and limit",
			id:    convID.String(),
			query: "?before=" + before.Format(time.RFC3339Nano) + "&limit=20",
			mockSetup: func(m *mocks.MockMessageUC) {
				m.EXPECT().ListMessages(gomock.Any(), actor, convID, &before, 20).Return([]models.Message{}, nil)
			},
			expectedCode: http.StatusOK,
		},
		{
			name:         "bad cursor",
			id:           convID.String(),
			query:        "?before=yesterday",
			mockSetup:    func(m *mocks.MockMessageUC) {},
			expectedCode: http.StatusBadRequest,
		},
		{
			name:         "bad limit",
			id:           convID.String(),
			query:        "?limit=many",
			mockSetup:    func(m *mocks.MockMessageUC) {},
			expectedCode: http.StatusBadRequest,
		},
		{
			name:         "bad id",
			id:           "nope",
			mockSetup:    func(m *mocks.MockMessageUC) {},
			expectedCode: http.StatusBadRequest,
		},
		{
			name:  "hidden conversation",
			id:    convID.String(),
			query: "",
			mockSetup: func(m *mocks.MockMessageUC) {
				m.EXPECT().ListMessages(gomock.Any(), actor, convID, gomock.Nil(), 0).Return(nil, models.ErrNotFound)
			},
			expectedCode: http.StatusNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			uc := mocks.NewMockMessageUC(ctrl)
			tt.mockSetup(uc)
			h := NewConversationHandler(uc)

			c, rec := newContext(http.MethodGet, "/conversations/"+tt.id+"/messages"+tt.query, nil, &actor)
			c.SetParamNames("id")
			c.SetParamValues(tt.id)

			assert.NoError(t, h.Messages(c))
			assert.Equal(t, tt.expectedCode, rec.Code)
		})
	}
}

func TestConversationHandler_Send(t *testing.T) {
	ctrl := gomock.NewController(t)
	uc := mocks.NewMockMessageUC(ctrl)
	h := NewConversationHandler(uc)
	actor := models.Actor{UserID: uuid.New(), Role: models.RolePatient}
	convID := uuid.New()
	req := models.SendMessageRequest{Body: "is tomorrow fine?"}

	uc.EXPECT().SendMessage(gomock.Any(), actor, convID, &req).
		Return(&models.Message{ID: uuid.New(), ConversationID: convID, Body: req.Body}, nil)

	c, rec := newContext(http.MethodPost, "/conversations/"+convID.String()+"/messages", req, &actor)
	c.SetParamNames("id")
	c.SetParamValues(convID.String())

	assert.NoError(t, h.Send(c))
	assert.Equal(t, http.StatusCreated, rec.Code)
}
