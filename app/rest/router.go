package rest

import (
	"log/slog"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.opentelemetry.io/contrib/instrumentation/github.com/labstack/echo/otelecho"

	"news-reader/app/port"
	"news-reader/app/rest/handlers"
	custommw "news-reader/app/rest/middleware"
	"news-reader/app/utils/validator"
)

// RouterConfig holds router configuration
type RouterConfig struct {
	Logger              *slog.Logger
	NewsUsecase         port.NewsUsecase
	SavedArticleUsecase port.SavedArticleUsecase
	HealthChecker       port.HealthChecker
	CORSAllowOrigins    []string
	EnableMetrics       bool
	EnableTracing       bool
	ServiceName         string
}

// NewRouter creates and configures the Echo router
func NewRouter(config RouterConfig) *echo.Echo {
	e := echo.New()

	e.HideBanner = true
	e.HidePort = true
	e.Validator = validator.New()
	e.HTTPErrorHandler = custommw.CustomHTTPErrorHandler(config.Logger)

	newsHandler := handlers.NewNewsHandler(config.NewsUsecase, config.Logger)
	savedHandler := handlers.NewSavedArticleHandler(config.SavedArticleUsecase, config.Logger)
	healthHandler := handlers.NewHealthHandler(config.HealthChecker, config.Logger)

	// Global middleware. Metrics sits outside logging so it sees the final status.
	e.Use(custommw.RequestID(config.Logger))
	if config.EnableTracing {
		e.Use(otelecho.Middleware(config.ServiceName))
	}
	e.Use(custommw.Metrics())
	e.Use(custommw.RequestLogging(config.Logger, "/health", "/metrics"))
	e.Use(middleware.Recover())
	e.Use(custommw.NewCORSMiddleware(custommw.DefaultCORSConfig(config.CORSAllowOrigins)))
	e.Use(custommw.SecurityHeaders())

	// Health and metrics
	e.GET("/health", healthHandler.HealthCheck)
	e.GET("/ready", healthHandler.ReadinessCheck)
	if config.EnableMetrics {
		e.GET("/metrics", echo.WrapHandler(promhttp.Handler()))
	}

	// News
	e.GET("/", newsHandler.Welcome)
	news := e.Group("/news")
	news.GET("/:category", newsHandler.GetNewsByCategory)

	// Saved Articles
	saved := e.Group("/saved")
	saved.POST("", savedHandler.SaveArticle)
	saved.GET("", savedHandler.ListSavedArticles)
	saved.DELETE("/:article_id", savedHandler.DeleteSavedArticle)

	// Digest
	e.GET("/digest", savedHandler.GetDigest)

	return e
}
