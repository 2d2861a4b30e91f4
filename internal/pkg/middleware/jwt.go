package middleware

import (
	"github.com/google/uuid"
	echojwt "github.com/labstack/echo-jwt/v4"
	"github.com/labstack/echo/v4"
	jwtpkg "github.com/piresc/senyum/internal/pkg/jwt"
	"github.com/piresc/senyum/internal/pkg/models"
	"github.com/piresc/senyum/internal/utils"
)

const (
	// ContextKeyUserID holds the authenticated uuid.UUID
	ContextKeyUserID = "user_id"
	// ContextKeyUserRole holds the authenticated role string
	ContextKeyUserRole = "user_role"

	contextKeyClaims = "claims"
)

// JWTAuthMiddleware validates the bearer token and stores the user id and
// role on the echo context
func JWTAuthMiddleware(config models.JWTConfig) echo.MiddlewareFunc {
	return echojwt.WithConfig(echojwt.Config{
		ContextKey: contextKeyClaims,
		ParseTokenFunc: func(c echo.Context, auth string) (interface{}, error) {
			return jwtpkg.ValidateToken(auth, config.Secret)
		},
		SuccessHandler: func(c echo.Context) {
			claims, ok := c.Get(contextKeyClaims).(*jwtpkg.Claims)
			if !ok {
				return
			}
			c.Set(ContextKeyUserID, uuid.MustParse(claims.UserID))
			c.Set(ContextKeyUserRole, claims.Role)
		},
		ErrorHandler: func(c echo.Context, err error) error {
			return utils.UnauthorizedResponse(c, "Invalid or missing token")
		},
	})
}

// RequireRoles rejects requests whose authenticated role is not listed
func RequireRoles(roles ...string) echo.MiddlewareFunc {
	allowed := make(map[string]struct{}, len(roles))
	for _, r := range roles {
		allowed[r] = struct{}{}
	}
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			if _, ok := allowed[CurrentRole(c)]; !ok {
				return utils.ForbiddenResponse(c, "Insufficient role")
			}
			return next(c)
		}
	}
}

// CurrentUserID returns the authenticated user id
func CurrentUserID(c echo.Context) (uuid.UUID, bool) {
	id, ok := c.Get(ContextKeyUserID).(uuid.UUID)
	return id, ok
}

// CurrentRole returns the authenticated role or ""
func CurrentRole(c echo.Context) string {
	role, _ := c.Get(ContextKeyUserRole).(string)
	return role
}

// CurrentActor returns the caller as a models.Actor
func CurrentActor(c echo.Context) (models.Actor, bool) {
	id, ok := CurrentUserID(c)
	if !ok {
		return models.Actor{}, false
	}
	return models.Actor{UserID: id, Role: CurrentRole(c)}, true
}
