package middleware

import (
	"github.com/labstack/echo/v4"
	"github.com/newrelic/go-agent/v3/newrelic"
)

// NewRelicMiddleware starts a web transaction per request and stores it in
// the request context. It is a no-op when app is nil.
func NewRelicMiddleware(app *newrelic.Application) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		if app == nil {
			return next
		}
		return func(c echo.Context) error {
			txn := app.StartTransaction(c.Request().Method + " " + c.Path())
			defer txn.End()

			txn.SetWebRequestHTTP(c.Request())
			c.Response().Writer = txn.SetWebResponse(c.Response().Writer)
			c.SetRequest(c.Request().WithContext(newrelic.NewContext(c.Request().Context(), txn)))

			err := next(c)
			if err != nil {
				txn.NoticeError(err)
			}
			return err
		}
	}
}

// AddAttribute adds a custom attribute to the current transaction
func AddAttribute(c echo.Context, key string, value interface{}) {
	if txn := newrelic.FromContext(c.Request().Context()); txn != nil {
		txn.AddAttribute(key, value)
	}
}
