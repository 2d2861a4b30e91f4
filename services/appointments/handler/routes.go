package handler

import (
	"github.com/labstack/echo/v4"
	"github.com/piresc/senyum/internal/pkg/middleware"
	"github.com/piresc/senyum/internal/pkg/models"
	"github.com/piresc/senyum/services/appointments"
	httpHandler "github.com/piresc/senyum/services/appointments/handler/http"
)

// Handler combines the appointments service handlers
type Handler struct {
	appointmentHTTP *httpHandler.AppointmentHandler
	cfg             *models.Config
}

// NewHandler creates a new combined handler
func NewHandler(appointmentUC appointments.AppointmentUC, cfg *models.Config) *Handler {
	return &Handler{
		appointmentHTTP: httpHandler.NewAppointmentHandler(appointmentUC),
		cfg:             cfg,
	}
}

// RegisterRoutes registers all HTTP routes
func (h *Handler) RegisterRoutes(e *echo.Echo) {
	g := e.Group("/appointments", middleware.JWTAuthMiddleware(h.cfg.JWT))

	g.POST("", h.appointmentHTTP.Book, middleware.RequireRoles(models.RolePatient))
	g.GET("", h.appointmentHTTP.List)
	g.PUT("/:id/confirm", h.appointmentHTTP.Confirm, middleware.RequireRoles(models.RoleDentist))
	g.PUT("/:id/cancel", h.appointmentHTTP.Cancel, middleware.RequireRoles(models.RolePatient, models.RoleDentist))
	g.PUT("/:id/complete", h.appointmentHTTP.Complete, middleware.RequireRoles(models.RoleDentist))
}
