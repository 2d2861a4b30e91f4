package middleware

import (
	"fmt"
	"net/http"
	"runtime/debug"

	"github.com/labstack/echo/v4"
	"github.com/newrelic/go-agent/v3/newrelic"
	"github.com/piresc/senyum/internal/pkg/logger"
)

// PanicRecoveryMiddleware turns a handler panic into a logged 500 response
func PanicRecoveryMiddleware(zapLogger *logger.ZapLogger) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) (err error) {
			defer func() {
				r := recover()
				if r == nil {
					return
				}
				if r == http.ErrAbortHandler {
					panic(r)
				}

				req := c.Request()
				requestID := c.Response().Header().Get(echo.HeaderXRequestID)
				stack := string(debug.Stack())

				if txn := newrelic.FromContext(req.Context()); txn != nil {
					txn.NoticeError(newrelic.Error{
						Message: fmt.Sprintf("panic: %v", r),
						Class:   "PanicError",
					})
				}

				zapLogger.WithNewRelicContext(newrelic.FromContext(req.Context())).Error(
					"Panic recovered during request processing",
					logger.Any("panic_value", r),
					logger.String("panic_type", fmt.Sprintf("%T", r)),
					logger.String("stack_trace", stack),
					logger.String("method", req.Method),
					logger.String("path", req.URL.Path),
					logger.String("request_id", requestID),
				)

				if !c.Response().Committed {
					err = c.JSON(http.StatusInternalServerError, map[string]interface{}{
						"success":    false,
						"error":      "Internal server error",
						"code":       http.StatusInternalServerError,
						"request_id": requestID,
					})
				}
			}()
			return next(c)
		}
	}
}
