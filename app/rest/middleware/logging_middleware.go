package middleware

import (
	"log/slog"
	"time"

	"github.com/labstack/echo/v4"

	"news-reader/app/utils/logger"
)

// RequestLogging logs one line per request. Handler errors are rendered here
// through the echo error handler so the logged status is final.
func RequestLogging(base *slog.Logger, skipPaths ...string) echo.MiddlewareFunc {
	skip := make(map[string]struct{}, len(skipPaths))
	for _, p := range skipPaths {
		skip[p] = struct{}{}
	}

	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			start := time.Now()

			err := next(c)
			if err != nil {
				c.Error(err)
			}

			req := c.Request()
			if _, ok := skip[req.URL.Path]; ok {
				return nil
			}

			ctx := req.Context()
			fallback := base
			if id := GetRequestID(c); id != "" {
				fallback = logger.WithRequest(base, id, req.Method, req.URL.Path)
			}
			log := logger.FromContext(ctx, fallback)
			status := c.Response().Status
			attrs := []any{
				"route", c.Path(),
				"status", status,
				"duration_ms", time.Since(start).Milliseconds(),
				"response_size", c.Response().Size,
			}
			if tag := RouteTag(c.Path()); tag != "" {
				attrs = append(attrs, "tag", tag)
			}

			switch {
			case status >= 500:
				log.ErrorContext(ctx, "request completed", attrs...)
			case status >= 400:
				log.WarnContext(ctx, "request completed", attrs...)
			default:
				log.InfoContext(ctx, "request completed", attrs...)
			}

			return nil
		}
	}
}
