package http

import (
	"net/http"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/piresc/senyum/internal/pkg/middleware"
	"github.com/piresc/senyum/internal/pkg/models"
	"github.com/piresc/senyum/internal/utils"
	"github.com/piresc/senyum/services/users"
)

// UserHandler handles account endpoints
type UserHandler struct {
	userUC users.UserUC
}

// NewUserHandler creates a new user handler
func NewUserHandler(userUC users.UserUC) *UserHandler {
	return &UserHandler{userUC: userUC}
}

// Me handles GET /users/me
func (h *UserHandler) Me(c echo.Context) error {
	userID, ok := middleware.CurrentUserID(c)
	if !ok {
		return utils.UnauthorizedResponse(c, "Authentication required")
	}

	user, err := h.userUC.GetUserByID(c.Request().Context(), userID)
	if err != nil {
		return utils.UsecaseErrorResponse(c, err, "Failed to retrieve user")
	}
	return utils.SuccessResponse(c, http.StatusOK, "User retrieved successfully", user)
}

// UpdateRole handles PUT /admin/users/:id/role
func (h *UserHandler) UpdateRole(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return utils.BadRequestResponse(c, "Invalid user ID")
	}

	var req models.RoleUpdateRequest
	if err := c.Bind(&req); err != nil {
		return utils.BadRequestResponse(c, "Invalid request payload")
	}

	user, err := h.userUC.UpdateRole(c.Request().Context(), id, &req)
	if err != nil {
		return utils.UsecaseErrorResponse(c, err, "Failed to update role")
	}
	return utils.SuccessResponse(c, http.StatusOK, "Role updated successfully", user)
}
