package http

import (
	"net/http"
	"strconv"
	"time"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/piresc/senyum/internal/pkg/middleware"
	"github.com/piresc/senyum/internal/pkg/models"
	"github.com/piresc/senyum/internal/utils"
	"github.com/piresc/senyum/services/messages"
)

// ConversationHandler handles chat HTTP requests
type ConversationHandler struct {
	messageUC messages.MessageUC
}

// NewConversationHandler creates a new conversation handler
func NewConversationHandler(messageUC messages.MessageUC) *ConversationHandler {
	return &ConversationHandler{messageUC: messageUC}
}

// Start handles POST /conversations
func (h *ConversationHandler) Start(c echo.Context) error {
	actor, ok := middleware.CurrentActor(c)
	if !ok {
		return utils.UnauthorizedResponse(c, "Authentication required")
	}

	var req models.StartConversationRequest
	if err := c.Bind(&req); err != nil {
		return utils.BadRequestResponse(c, "Invalid request payload")
	}

	conv, err := h.messageUC.StartConversation(c.Request().Context(), actor, &req)
	if err != nil {
		return utils.UsecaseErrorResponse(c, err, "Failed to start conversation")
	}
	return utils.SuccessResponse(c, http.StatusOK, "Conversation ready", conv)
}

// List handles GET /conversations
func (h *ConversationHandler) List(c echo.Context) error {
	actor, ok := middleware.CurrentActor(c)
	if !ok {
		return utils.UnauthorizedResponse(c, "Authentication required")
	}

	items, err := h.messageUC.ListConversations(c.Request().Context(), actor)
	if err != nil {
		return utils.UsecaseErrorResponse(c, err, "Failed to list conversations")
	}
	return utils.SuccessResponse(c, http.StatusOK, "Conversations retrieved successfully", items)
}

// Messages handles GET /conversations/:id/messages?before=&limit=
func (h *ConversationHandler) Messages(c echo.Context) error {
	actor, ok := middleware.CurrentActor(c)
	if !ok {
		return utils.UnauthorizedResponse(c, "Authentication required")
	}
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return utils.BadRequestResponse(c, "Invalid conversation ID")
	}

	var before *time.Time
	if raw := c.QueryParam("before"); raw != "" {
		t, err := time.Parse(time.RFC3339Nano, raw)
		if err != nil {
			return utils.BadRequestResponse(c, "before must be an RFC 3339 timestamp")
		}
		before = &t
	}
	limit := 0
	if raw := c.QueryParam("limit"); raw != "" {
		if limit, err = strconv.Atoi(raw); err != nil {
			return utils.BadRequestResponse(c, "limit must be a number")
		}
	}

	items, err := h.messageUC.ListMessages(c.Request().Context(), actor, id, before, limit)
	if err != nil {
		return utils.UsecaseErrorResponse(c, err, "Failed to list messages")
	}
	return utils.SuccessResponse(c, http.StatusOK, "Messages retrieved successfully", items)
}

// Send handles POST /conversations/:id/messages
func (h *ConversationHandler) Send(c echo.Context) error {
	actor, ok := middleware.CurrentActor(c)
	if !ok {
		return utils.UnauthorizedResponse(c, "Authentication required")
	}
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return utils.BadRequestResponse(c, "Invalid conversation ID")
	}

	var req models.SendMessageRequest
	if err := c.Bind(&req); err != nil {
		return utils.BadRequestResponse(c, "Invalid request payload")
	}

	msg, err := h.messageUC.SendMessage(c.Request().Context(), actor, id, &req)
	if err != nil {
		return utils.UsecaseErrorResponse(c, err, "Failed to send message")
	}
	return utils.SuccessResponse(c, http.StatusCreated, "Message sent", msg)
}
