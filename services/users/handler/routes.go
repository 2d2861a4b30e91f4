package handler

import (
	"github.com/labstack/echo/v4"
	"github.com/piresc/senyum/internal/pkg/database"
	"github.com/piresc/senyum/internal/pkg/middleware"
	"github.com/piresc/senyum/internal/pkg/models"
	"github.com/piresc/senyum/services/users"
	httpHandler "github.com/piresc/senyum/services/users/handler/http"
)

// Handler combines the users service handlers
type Handler struct {
	authHTTP *httpHandler.AuthHandler
	userHTTP *httpHandler.UserHandler
	redis    *database.RedisClient
	cfg      *models.Config
}

// NewHandler creates a new combined handler
func NewHandler(userUC users.UserUC, redis *database.RedisClient, cfg *models.Config) *Handler {
	return &Handler{
		authHTTP: httpHandler.NewAuthHandler(userUC),
		userHTTP: httpHandler.NewUserHandler(userUC),
		redis:    redis,
		cfg:      cfg,
	}
}

// RegisterRoutes registers all HTTP routes
func (h *Handler) RegisterRoutes(e *echo.Echo) {
	auth := e.Group("/auth")
	auth.POST("/register", h.authHTTP.Register)
	if h.redis != nil && h.cfg.RateLimit.Limit > 0 {
		auth.POST("/login", h.authHTTP.Login, middleware.RateLimiterMiddleware(middleware.RateLimiterConfig{
			Redis:    h.redis,
			Resource: "login",
			Limit:    h.cfg.RateLimit.Limit,
			Period:   h.cfg.RateLimit.Period,
		}))
	} else {
		auth.POST("/login", h.authHTTP.Login)
	}

	jwtAuth := middleware.JWTAuthMiddleware(h.cfg.JWT)
	e.GET("/users/me", h.userHTTP.Me, jwtAuth)

	admin := e.Group("/admin", jwtAuth, middleware.RequireRoles(models.RoleAdmin))
	admin.PUT("/users/:id/role", h.userHTTP.UpdateRole)
}
