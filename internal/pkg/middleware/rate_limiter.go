package middleware

import (
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/piresc/senyum/internal/pkg/constants"
	"github.com/piresc/senyum/internal/pkg/database"
	"github.com/piresc/senyum/internal/pkg/logger"
	"github.com/piresc/senyum/internal/utils"
)

// RateLimiterConfig contains configuration for the rate limiter
type RateLimiterConfig struct {
	Redis    *database.RedisClient
	Resource string
	Limit    int
	Period   time.Duration
}

// RateLimiterMiddleware allows Limit requests per Period for each caller,
// keyed by user id when authenticated and by client IP otherwise
func RateLimiterMiddleware(config RateLimiterConfig) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			identifier := c.RealIP()
			if userID, ok := CurrentUserID(c); ok {
				identifier = userID.String()
			}
			key := fmt.Sprintf(constants.KeyRateLimit, config.Resource, identifier)

			count, ttl, err := config.Redis.IncrWithExpiry(c.Request().Context(), key, config.Period)
			if err != nil {
				// fail open
				logger.WarnCtx(c.Request().Context(), "Rate limiter unavailable",
					logger.String("key", key),
					logger.Err(err))
				return next(c)
			}

			remaining := int64(config.Limit) - count
			if remaining < 0 {
				remaining = 0
			}
			h := c.Response().Header()
			h.Set("X-RateLimit-Limit", strconv.Itoa(config.Limit))
			h.Set("X-RateLimit-Remaining", strconv.FormatInt(remaining, 10))
			h.Set("X-RateLimit-Reset", strconv.FormatInt(time.Now().Add(ttl).Unix(), 10))

			if count > int64(config.Limit) {
				h.Set("Retry-After", strconv.Itoa(int(ttl.Seconds())))
				return utils.ErrorResponseHandler(c, http.StatusTooManyRequests, "Rate limit exceeded")
			}
			return next(c)
		}
	}
}
