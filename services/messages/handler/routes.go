package handler

import (
	"github.com/labstack/echo/v4"
	"github.com/piresc/senyum/internal/pkg/middleware"
	"github.com/piresc/senyum/internal/pkg/models"
	natspkg "github.com/piresc/senyum/internal/pkg/nats"
	"github.com/piresc/senyum/internal/pkg/websocket"
	"github.com/piresc/senyum/services/messages"
	httpHandler "github.com/piresc/senyum/services/messages/handler/http"
	natsHandler "github.com/piresc/senyum/services/messages/handler/nats"
)

// Handler combines the messages service handlers
type Handler struct {
	conversationHTTP *httpHandler.ConversationHandler
	eventNATS        *natsHandler.EventHandler
	wsManager        *websocket.Manager
	cfg              *models.Config
}

// NewHandler creates a new combined handler
func NewHandler(
	messageUC messages.MessageUC,
	consumer *natspkg.Consumer,
	wsManager *websocket.Manager,
	cfg *models.Config,
) *Handler {
	return &Handler{
		conversationHTTP: httpHandler.NewConversationHandler(messageUC),
		eventNATS:        natsHandler.NewEventHandler(messageUC, consumer),
		wsManager:        wsManager,
		cfg:              cfg,
	}
}

// RegisterRoutes registers all HTTP routes
func (h *Handler) RegisterRoutes(e *echo.Echo) {
	// the websocket authenticates itself, browsers cannot set headers on it
	e.GET("/ws", h.wsManager.HandleConnection)

	g := e.Group("/conversations", middleware.JWTAuthMiddleware(h.cfg.JWT))
	g.POST("", h.conversationHTTP.Start, middleware.RequireRoles(models.RolePatient))
	g.GET("", h.conversationHTTP.List)
	g.GET("/:id/messages", h.conversationHTTP.Messages)
	g.POST("/:id/messages", h.conversationHTTP.Send)
}

// InitNATSConsumers initializes all NATS consumers
func (h *Handler) InitNATSConsumers() error {
	return h.eventNATS.InitNATSConsumers()
}
