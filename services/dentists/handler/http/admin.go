package http

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/piresc/senyum/internal/pkg/models"
	"github.com/piresc/senyum/internal/utils"
	"github.com/piresc/senyum/services/dentists"
)

// AdminHandler handles directory moderation
type AdminHandler struct {
	dentistUC dentists.DentistUC
}

// NewAdminHandler creates a new moderation handler
func NewAdminHandler(dentistUC dentists.DentistUC) *AdminHandler {
	return &AdminHandler{dentistUC: dentistUC}
}

// UpdateStatus handles PUT /admin/dentists/:id/status
func (h *AdminHandler) UpdateStatus(c echo.Context) error {
	id, ok := paramUUID(c, "id")
	if !ok {
		return utils.BadRequestResponse(c, "Invalid dentist ID")
	}

	var req models.StatusUpdateRequest
	if err := c.Bind(&req); err != nil {
		return utils.BadRequestResponse(c, "Invalid request payload")
	}

	dentist, err := h.dentistUC.UpdateStatus(c.Request().Context(), id, &req)
	if err != nil {
		return utils.UsecaseErrorResponse(c, err, "Failed to update status")
	}
	return utils.SuccessResponse(c, http.StatusOK, "Status updated successfully", dentist)
}

// ReassignOwner handles PUT /admin/dentists/:id/owner
func (h *AdminHandler) ReassignOwner(c echo.Context) error {
	id, ok := paramUUID(c, "id")
	if !ok {
		return utils.BadRequestResponse(c, "Invalid dentist ID")
	}

	var req models.OwnerUpdateRequest
	if err := c.Bind(&req); err != nil {
		return utils.BadRequestResponse(c, "Invalid request payload")
	}

	dentist, err := h.dentistUC.ReassignOwner(c.Request().Context(), id, &req)
	if err != nil {
		return utils.UsecaseErrorResponse(c, err, "Failed to reassign owner")
	}
	return utils.SuccessResponse(c, http.StatusOK, "Owner reassigned successfully", dentist)
}

// DeleteReview handles DELETE /admin/reviews/:id
func (h *AdminHandler) DeleteReview(c echo.Context) error {
	id, ok := paramUUID(c, "id")
	if !ok {
		return utils.BadRequestResponse(c, "Invalid review ID")
	}

	if err := h.dentistUC.DeleteReview(c.Request().Context(), id); err != nil {
		return utils.UsecaseErrorResponse(c, err, "Failed to delete review")
	}
	return utils.SuccessResponse(c, http.StatusOK, "Review deleted successfully", nil)
}
