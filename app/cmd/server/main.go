package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"news-reader/app/config"
	"news-reader/app/di"
	"news-reader/app/rest/handlers"
	"news-reader/app/utils/logger"
	"news-reader/app/utils/otel"
)

func main() {
	// Load environment variables from .env file if it exists
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		slog.Warn("Could not load .env file", "error", err)
	}

	cfg, err := config.Load()
	if err != nil {
		slog.Error("Failed to load configuration", "error", err)
		os.Exit(1)
	}

	appLogger, err := logger.New(cfg.LogLevel)
	if err != nil {
		slog.Error("Failed to initialize logger", "error", err)
		os.Exit(1)
	}
	slog.SetDefault(appLogger)

	version := getVersion()
	handlers.Version = version

	appLogger.Info("Starting News Reader",
		"version", version,
		"port", cfg.Port,
		"log_level", cfg.LogLevel,
		"store_backend", cfg.StoreBackend)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	otelCfg := otel.ConfigFromEnv()
	otelCfg.ServiceVersion = version
	shutdownTracing, err := otel.InitProvider(ctx, otelCfg)
	if err != nil {
		appLogger.Error("Failed to initialize tracing", "error", err)
		os.Exit(1)
	}

	container, err := di.NewContainer(ctx, cfg, appLogger, di.WithTracing(otelCfg.Enabled))
	if err != nil {
		appLogger.Error("Failed to initialize dependency container", "error", err)
		os.Exit(1)
	}

	server := &http.Server{
		Addr:              cfg.Address(),
		Handler:           container.CreateRouter(),
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       15 * time.Second,
		WriteTimeout:      30 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	serverErr := make(chan error, 1)
	go func() {
		appLogger.Info("Server starting", "address", server.Addr)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverErr <- err
		}
		close(serverErr)
	}()

	exitCode := 0
	select {
	case <-ctx.Done():
		appLogger.Info("Server shutting down...")
	case err := <-serverErr:
		if err != nil {
			appLogger.Error("Server failed", "error", err)
			exitCode = 1
		}
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		appLogger.Error("Server forced to shutdown", "error", err)
		exitCode = 1
	}
	if err := container.Close(shutdownCtx); err != nil {
		appLogger.Error("Failed to close store", "error", err)
	}
	if err := shutdownTracing(shutdownCtx); err != nil {
		appLogger.Error("Failed to flush traces", "error", err)
	}

	appLogger.Info("Server exited")
	if exitCode != 0 {
		cancel()
		os.Exit(exitCode)
	}
}

// getVersion returns the application version
func getVersion() string {
	if version := os.Getenv("VERSION"); version != "" {
		return version
	}
	return "dev"
}
