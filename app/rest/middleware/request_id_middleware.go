package middleware

import (
	"log/slog"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"news-reader/app/utils/logger"
)

const requestIDContextKey = "request_id"

// RequestID reuses an inbound X-Request-ID or assigns a new one, and stores a
// request-scoped logger on the request context.
func RequestID(base *slog.Logger) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			req := c.Request()
			requestID := req.Header.Get(echo.HeaderXRequestID)
			if requestID == "" {
				requestID = uuid.New().String()
			}

			c.Response().Header().Set(echo.HeaderXRequestID, requestID)
			c.Set(requestIDContextKey, requestID)

			reqLogger := logger.WithRequest(base, requestID, req.Method, req.URL.Path)
			c.SetRequest(req.WithContext(logger.IntoContext(req.Context(), reqLogger)))

			return next(c)
		}
	}
}

// GetRequestID returns the id assigned by RequestID, or "".
func GetRequestID(c echo.Context) string {
	if id, ok := c.Get(requestIDContextKey).(string); ok {
		return id
	}
	return ""
}
