package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"
)

// Store backends
const (
	StoreBackendMongo    = "mongo"
	StoreBackendPostgres = "postgres"
)

// Config holds all configuration for the news reader service
type Config struct {
	// Server
	Port            string        `env:"PORT" default:"8000"`
	Host            string        `env:"HOST" default:"0.0.0.0"`
	LogLevel        string        `env:"LOG_LEVEL" default:"info"`
	ShutdownTimeout time.Duration `env:"SHUTDOWN_TIMEOUT" default:"30s"`

	// Saved-article store
	StoreBackend        string        `env:"STORE_BACKEND" default:"mongo"`
	StoreConnectTimeout time.Duration `env:"STORE_CONNECT_TIMEOUT" default:"10s"`
	MongoURI            string        `env:"MONGO_URI"`
	MongoDatabase       string        `env:"MONGO_DATABASE" default:"news_reader_db"`
	MongoCollection     string        `env:"MONGO_COLLECTION" default:"saved_articles"`
	DatabaseURL         string        `env:"DATABASE_URL"`
	DatabaseMaxConns    int32         `env:"DB_MAX_CONNS" default:"10"`
	EnsureIndexes       bool          `env:"STORE_ENSURE_INDEXES" default:"true"`

	// Headlines API
	NewsAPIKey string `env:"NEWS_API_KEY"`
	NewsAPIURL string `env:"NEWS_API_URL" default:"https://newsapi.org/v2/top-headlines"`

	// HTTP
	CORSAllowOrigins []string `env:"CORS_ALLOW_ORIGINS" default:"*"`

	// Features
	EnableMetrics bool `env:"ENABLE_METRICS" default:"true"`
}

// Load reads configuration from environment variables
func Load() (*Config, error) {
	config := &Config{}
	var err error

	// Server configuration
	config.Port = getEnvOrDefault("PORT", "8000")
	config.Host = getEnvOrDefault("HOST", "0.0.0.0")
	config.LogLevel = getEnvOrDefault("LOG_LEVEL", "info")
	config.ShutdownTimeout, err = time.ParseDuration(getEnvOrDefault("SHUTDOWN_TIMEOUT", "30s"))
	if err != nil {
		return nil, fmt.Errorf("invalid SHUTDOWN_TIMEOUT: %w", err)
	}

	// Store configuration
	config.StoreBackend = strings.ToLower(getEnvOrDefault("STORE_BACKEND", StoreBackendMongo))
	config.StoreConnectTimeout, err = time.ParseDuration(getEnvOrDefault("STORE_CONNECT_TIMEOUT", "10s"))
	if err != nil {
		return nil, fmt.Errorf("invalid STORE_CONNECT_TIMEOUT: %w", err)
	}
	config.MongoURI = os.Getenv("MONGO_URI")
	config.MongoDatabase = getEnvOrDefault("MONGO_DATABASE", "news_reader_db")
	config.MongoCollection = getEnvOrDefault("MONGO_COLLECTION", "saved_articles")
	config.DatabaseURL = os.Getenv("DATABASE_URL")

	maxConns, err := strconv.ParseInt(getEnvOrDefault("DB_MAX_CONNS", "10"), 10, 32)
	if err != nil {
		return nil, fmt.Errorf("invalid DB_MAX_CONNS: %w", err)
	}
	config.DatabaseMaxConns = int32(maxConns)
	config.EnsureIndexes = getBoolEnv("STORE_ENSURE_INDEXES", true)

	// NewsAPI configuration; a missing key is reported per request, not at startup
	config.NewsAPIKey = os.Getenv("NEWS_API_KEY")
	config.NewsAPIURL = getEnvOrDefault("NEWS_API_URL", "https://newsapi.org/v2/top-headlines")

	config.CORSAllowOrigins = splitList(getEnvOrDefault("CORS_ALLOW_ORIGINS", "*"))

	// Feature flags
	config.EnableMetrics = getBoolEnv("ENABLE_METRICS", true)

	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	return config, nil
}

// Validate checks if the configuration is valid
func (c *Config) Validate() error {
	port, err := strconv.Atoi(c.Port)
	if err != nil {
		return fmt.Errorf("invalid port: %s", c.Port)
	}
	if port < 1 || port > 65535 {
		return fmt.Errorf("port must be between 1 and 65535: %s", c.Port)
	}

	validLogLevels := []string{"debug", "info", "warn", "error"}
	if !contains(validLogLevels, strings.ToLower(c.LogLevel)) {
		return fmt.Errorf("invalid log level: %s (must be one of: %s)", c.LogLevel, strings.Join(validLogLevels, ", "))
	}

	switch c.StoreBackend {
	case StoreBackendMongo:
		if c.MongoURI == "" {
			return fmt.Errorf("MONGO_URI is required when STORE_BACKEND=%s", StoreBackendMongo)
		}
	case StoreBackendPostgres:
		if c.DatabaseURL == "" {
			return fmt.Errorf("DATABASE_URL is required when STORE_BACKEND=%s", StoreBackendPostgres)
		}
		if c.DatabaseMaxConns < 1 {
			return fmt.Errorf("DB_MAX_CONNS must be at least 1, got: %d", c.DatabaseMaxConns)
		}
	default:
		return fmt.Errorf("invalid store backend: %s (must be one of: %s, %s)", c.StoreBackend, StoreBackendMongo, StoreBackendPostgres)
	}

	if c.ShutdownTimeout <= 0 {
		return fmt.Errorf("shutdown timeout must be positive, got: %v", c.ShutdownTimeout)
	}

	return nil
}

// Address returns the listen address.
func (c *Config) Address() string {
	return c.Host + ":" + c.Port
}

// Helper functions

func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getBoolEnv(key string, defaultValue bool) bool {
	if value := os.Getenv(key); value != "" {
		if parsed, err := strconv.ParseBool(value); err == nil {
			return parsed
		}
	}
	return defaultValue
}

func splitList(value string) []string {
	var out []string
	for _, part := range strings.Split(value, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}

func contains(slice []string, item string) bool {
	for _, s := range slice {
		if s == item {
			return true
		}
	}
	return false
}
