package http

import (
	"net/http"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/piresc/senyum/internal/pkg/middleware"
	"github.com/piresc/senyum/internal/pkg/models"
	"github.com/piresc/senyum/internal/utils"
	"github.com/piresc/senyum/services/appointments"
)

// AppointmentHandler handles appointment HTTP requests
type AppointmentHandler struct {
	appointmentUC appointments.AppointmentUC
}

// NewAppointmentHandler creates a new appointment handler
func NewAppointmentHandler(appointmentUC appointments.AppointmentUC) *AppointmentHandler {
	return &AppointmentHandler{appointmentUC: appointmentUC}
}

// Book handles POST /appointments
func (h *AppointmentHandler) Book(c echo.Context) error {
	actor, ok := middleware.CurrentActor(c)
	if !ok {
		return utils.UnauthorizedResponse(c, "Authentication required")
	}

	var req models.BookAppointmentRequest
	if err := c.Bind(&req); err != nil {
		return utils.BadRequestResponse(c, "Invalid request payload")
	}

	appointment, err := h.appointmentUC.Book(c.Request().Context(), actor, &req)
	if err != nil {
		return utils.UsecaseErrorResponse(c, err, "Failed to book appointment")
	}
	return utils.SuccessResponse(c, http.StatusCreated, "Appointment booked successfully", appointment)
}

// List handles GET /appointments
func (h *AppointmentHandler) List(c echo.Context) error {
	actor, ok := middleware.CurrentActor(c)
	if !ok {
		return utils.UnauthorizedResponse(c, "Authentication required")
	}

	items, err := h.appointmentUC.List(c.Request().Context(), actor, c.QueryParam("status"))
	if err != nil {
		return utils.UsecaseErrorResponse(c, err, "Failed to list appointments")
	}
	return utils.SuccessResponse(c, http.StatusOK, "Appointments retrieved successfully", items)
}

// Confirm handles PUT /appointments/:id/confirm
func (h *AppointmentHandler) Confirm(c echo.Context) error {
	actor, ok := middleware.CurrentActor(c)
	if !ok {
		return utils.UnauthorizedResponse(c, "Authentication required")
	}
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return utils.BadRequestResponse(c, "Invalid appointment ID")
	}

	appointment, err := h.appointmentUC.Confirm(c.Request().Context(), actor, id)
	if err != nil {
		return utils.UsecaseErrorResponse(c, err, "Failed to confirm appointment")
	}
	return utils.SuccessResponse(c, http.StatusOK, "Appointment confirmed", appointment)
}

// Cancel handles PUT /appointments/:id/cancel
func (h *AppointmentHandler) Cancel(c echo.Context) error {
	actor, ok := middleware.CurrentActor(c)
	if !ok {
		return utils.UnauthorizedResponse(c, "Authentication required")
	}
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return utils.BadRequestResponse(c, "Invalid appointment ID")
	}

	var req models.CancelAppointmentRequest
	if err := c.Bind(&req); err != nil {
		return utils.BadRequestResponse(c, "Invalid request payload")
	}

	appointment, err := h.appointmentUC.Cancel(c.Request().Context(), actor, id, &req)
	if err != nil {
		return utils.UsecaseErrorResponse(c, err, "Failed to cancel appointment")
	}
	return utils.SuccessResponse(c, http.StatusOK, "Appointment cancelled", appointment)
}

// Complete handles PUT /appointments/:id/complete
func (h *AppointmentHandler) Complete(c echo.Context) error {
	actor, ok := middleware.CurrentActor(c)
	if !ok {
		return utils.UnauthorizedResponse(c, "Authentication required")
	}
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return utils.BadRequestResponse(c, "Invalid appointment ID")
	}

	appointment, err := h.appointmentUC.Complete(c.Request().Context(), actor, id)
	if err != nil {
		return utils.UsecaseErrorResponse(c, err, "Failed to complete appointment")
	}
	return utils.SuccessResponse(c, http.StatusOK, "Appointment completed", appointment)
}
