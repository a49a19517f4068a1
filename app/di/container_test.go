package di

import (
	"bytes"
	"context"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"news-reader/app/config"
)

func TestNewContainer_UnsupportedBackend(t *testing.T) {
	cfg := &config.Config{StoreBackend: "sqlite"}
	logger := slog.New(slog.NewTextHandler(&bytes.Buffer{}, nil))

	container, err := NewContainer(context.Background(), cfg, logger)
	require.Error(t, err)
	assert.Nil(t, container)
	assert.Contains(t, err.Error(), "unsupported store backend")
}

func TestNewContainer_PostgresUnreachable(t *testing.T) {
	cfg := &config.Config{
		StoreBackend:        config.StoreBackendPostgres,
		DatabaseURL:         "postgres://reader:pw@127.0.0.1:1/news?sslmode=disable",
		DatabaseMaxConns:    1,
		StoreConnectTimeout: time.Second,
	}
	logger := slog.New(slog.NewTextHandler(&bytes.Buffer{}, nil))

	container, err := NewContainer(context.Background(), cfg, logger)
	require.Error(t, err)
	assert.Nil(t, container)
	assert.Contains(t, err.Error(), "failed to initialize postgres")
}
