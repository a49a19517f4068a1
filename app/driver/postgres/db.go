package postgres

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
)

// Pool tuning for a low-traffic reader store
const (
	minConns        = int32(1)
	maxConnLifetime = time.Hour
	maxConnIdleTime = 30 * time.Minute
)

// DB owns the pgx pool backing the saved-article store
type DB struct {
	pool   *pgxpool.Pool
	logger *slog.Logger
}

// NewConnection opens a pool for databaseURL. The pool is only returned once
// a ping succeeds within timeout.
func NewConnection(ctx context.Context, databaseURL string, maxConns int32, timeout time.Duration, logger *slog.Logger) (*DB, error) {
	poolConfig, err := pgxpool.ParseConfig(databaseURL)
	if err != nil {
		return nil, fmt.Errorf("failed to parse database config: %w", err)
	}

	poolConfig.MaxConns = maxConns
	poolConfig.MinConns = min(minConns, maxConns)
	poolConfig.MaxConnLifetime = maxConnLifetime
	poolConfig.MaxConnIdleTime = maxConnIdleTime

	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	pool, err := pgxpool.NewWithConfig(ctx, poolConfig)
	if err != nil {
		return nil, fmt.Errorf("failed to open saved-article pool: %w", err)
	}

	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("saved-article store unreachable: %w", err)
	}

	logger.Info("saved-article store ready",
		"host", poolConfig.ConnConfig.Host,
		"database", poolConfig.ConnConfig.Database,
		"max_conns", poolConfig.MaxConns)

	return &DB{
		pool:   pool,
		logger: logger,
	}, nil
}

// Pool exposes the pool for repositories
func (db *DB) Pool() *pgxpool.Pool {
	return db.pool
}

// Close drains the pool; safe on a zero DB.
func (db *DB) Close() {
	if db.pool == nil {
		return
	}
	db.pool.Close()
	db.logger.Info("saved-article store closed")
}
