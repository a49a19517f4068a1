package middleware

import (
	"time"

	"github.com/labstack/echo/v4"

	"news-reader/app/utils/metrics"
)

// Metrics records request count and latency per route template.
// It must wrap RequestLogging so the response status is already written.
func Metrics() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			start := time.Now()
			err := next(c)

			route := c.Path()
			if route == "" {
				route = "unmatched"
			}
			metrics.RecordHTTPRequest(c.Request().Method, route, c.Response().Status, time.Since(start).Seconds())
			return err
		}
	}
}
