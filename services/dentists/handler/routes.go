package handler

import (
	"fmt"

	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"
	"github.com/piresc/senyum/internal/pkg/database"
	"github.com/piresc/senyum/internal/pkg/middleware"
	"github.com/piresc/senyum/internal/pkg/models"
	httpHandler "github.com/piresc/senyum/services/dentists/handler/http"
)

// Handler coordinates the directory HTTP handlers
type Handler struct {
	dentistHandler *httpHandler.DentistHandler
	manageHandler  *httpHandler.ManageHandler
	adminHandler   *httpHandler.AdminHandler
	redis          *database.RedisClient
	cfg            *models.Config
}

// NewHandler creates and initializes all handlers
func NewHandler(
	dentistHandler *httpHandler.DentistHandler,
	manageHandler *httpHandler.ManageHandler,
	adminHandler *httpHandler.AdminHandler,
	redis *database.RedisClient,
	cfg *models.Config,
) *Handler {
	return &Handler{
		dentistHandler: dentistHandler,
		manageHandler:  manageHandler,
		adminHandler:   adminHandler,
		redis:          redis,
		cfg:            cfg,
	}
}

func (h *Handler) rateLimit(resource string) echo.MiddlewareFunc {
	if h.redis == nil || h.cfg.RateLimit.Limit <= 0 {
		return func(next echo.HandlerFunc) echo.HandlerFunc { return next }
	}
	return middleware.RateLimiterMiddleware(middleware.RateLimiterConfig{
		Redis:    h.redis,
		Resource: resource,
		Limit:    h.cfg.RateLimit.Limit,
		Period:   h.cfg.RateLimit.Period,
	})
}

// RegisterRoutes registers the directory routes on e
func (h *Handler) RegisterRoutes(e *echo.Echo) {
	// Public routes
	e.GET("/dentists", h.dentistHandler.Search)
	e.GET("/dentists/nearby", h.dentistHandler.Nearby, h.rateLimit("nearby"))
	e.POST("/location", h.dentistHandler.SetLocation, h.rateLimit("location"))
	e.GET("/dentists/:slug", h.dentistHandler.GetProfile)
	e.GET("/dentists/:slug/reviews", h.dentistHandler.ListReviews)
	e.GET("/dentists/:slug/costs", h.dentistHandler.GetCostPage)

	auth := middleware.JWTAuthMiddleware(h.cfg.JWT)

	e.POST("/dentists/:slug/reviews", h.dentistHandler.CreateReview,
		auth, middleware.RequireRoles(models.RolePatient), h.rateLimit("reviews"))
	e.POST("/dentists", h.manageHandler.CreateDentist,
		auth, middleware.RequireRoles(models.RoleDentist, models.RoleAdmin))

	// Owner or admin; ownership is checked by the usecase
	owner := e.Group("/dentists/:id", auth, middleware.RequireRoles(models.RoleDentist, models.RoleAdmin))
	owner.PUT("/profile", h.manageHandler.UpdateProfile)
	owner.PUT("/location", h.manageHandler.UpdateLocation)
	owner.PUT("/features", h.manageHandler.ReplaceFeatures)
	owner.PUT("/costs", h.manageHandler.ReplaceCosts)
	owner.POST("/faqs", h.manageHandler.AddFAQ)
	owner.PUT("/faqs/order", h.manageHandler.ReorderFAQs)
	owner.DELETE("/faqs/:faqId", h.manageHandler.DeleteFAQ)
	owner.POST("/media", h.manageHandler.UploadMedia, echomw.BodyLimit(bodyLimit(h.cfg.Storage.MaxUploadSize)))
	owner.DELETE("/media/:mediaId", h.manageHandler.DeleteMedia)

	admin := e.Group("/admin", auth, middleware.RequireRoles(models.RoleAdmin))
	admin.PUT("/dentists/:id/status", h.adminHandler.UpdateStatus)
	admin.PUT("/dentists/:id/owner", h.adminHandler.ReassignOwner)
	admin.DELETE("/reviews/:id", h.adminHandler.DeleteReview)
}

// bodyLimit leaves room for the multipart envelope around the file
func bodyLimit(maxUpload int64) string {
	if maxUpload <= 0 {
		maxUpload = 5 << 20
	}
	return fmt.Sprintf("%dK", maxUpload/1024+64)
}
