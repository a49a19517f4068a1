package handlers

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"news-reader/app/port"
)

const (
	serviceName  = "news-reader"
	pingTimeout  = 3 * time.Second
	statusHealth = "healthy"
)

// Version is reported by the health endpoints; overridden at build time.
var Version = "1.0.0"

// HealthHandler handles health check HTTP requests
type HealthHandler struct {
	store  port.HealthChecker
	logger *slog.Logger
}

// NewHealthHandler creates a new health handler. store may be nil.
func NewHealthHandler(store port.HealthChecker, logger *slog.Logger) *HealthHandler {
	return &HealthHandler{
		store:  store,
		logger: logger,
	}
}

// HealthCheck performs a basic health check
// @Summary Health check
// @Description Check if the service is healthy and running
// @Tags health
// @Produce json
// @Success 200 {object} HealthResponse
// @Router /health [get]
func (h *HealthHandler) HealthCheck(c echo.Context) error {
	response := HealthResponse{
		Status:    statusHealth,
		Timestamp: time.Now().UTC(),
		Service:   serviceName,
		Version:   Version,
		Uptime:    time.Since(startTime).Round(time.Second).String(),
	}

	return c.JSON(http.StatusOK, response)
}

// ReadinessCheck pings the saved-article store
// @Summary Readiness check
// @Description Check if the service is ready to serve traffic
// @Tags health
// @Produce json
// @Success 200 {object} ReadinessResponse
// @Failure 503 {object} ReadinessResponse
// @Router /ready [get]
func (h *HealthHandler) ReadinessCheck(c echo.Context) error {
	checks := make(map[string]HealthStatus)

	if h.store != nil {
		checks["store"] = h.checkStore(c.Request().Context())
	}

	allHealthy := true
	for _, check := range checks {
		if check.Status != statusHealth {
			allHealthy = false
			break
		}
	}

	response := ReadinessResponse{
		Status:    getOverallStatus(allHealthy),
		Timestamp: time.Now().UTC(),
		Service:   serviceName,
		Checks:    checks,
	}

	statusCode := http.StatusOK
	if !allHealthy {
		statusCode = http.StatusServiceUnavailable
	}

	return c.JSON(statusCode, response)
}

func (h *HealthHandler) checkStore(ctx context.Context) HealthStatus {
	ctx, cancel := context.WithTimeout(ctx, pingTimeout)
	defer cancel()

	start := time.Now()
	if err := h.store.Ping(ctx); err != nil {
		h.logger.WarnContext(ctx, "store ping failed", "error", err)
		return HealthStatus{
			Status:  "unhealthy",
			Message: "unreachable",
			Latency: time.Since(start).String(),
		}
	}

	return HealthStatus{
		Status:  statusHealth,
		Message: "connected",
		Latency: time.Since(start).String(),
	}
}

func getOverallStatus(allHealthy bool) string {
	if allHealthy {
		return "ready"
	}
	return "not_ready"
}

// Response types
type HealthResponse struct {
	Status    string    `json:"status"`
	Timestamp time.Time `json:"timestamp"`
	Service   string    `json:"service"`
	Version   string    `json:"version"`
	Uptime    string    `json:"uptime"`
}

type ReadinessResponse struct {
	Status    string                  `json:"status"`
	Timestamp time.Time               `json:"timestamp"`
	Service   string                  `json:"service"`
	Checks    map[string]HealthStatus `json:"checks,omitempty"`
}

type HealthStatus struct {
	Status  string `json:"status"`
	Message string `json:"message"`
	Latency string `json:"latency,omitempty"`
}

// startTime is set when the service starts
var startTime = time.Now()
