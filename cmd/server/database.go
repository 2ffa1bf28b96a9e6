package main

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
	"time"

	"github.com/cenkalti/backoff/v4"
	_ "github.com/jackc/pgx/v5/stdlib" // pgx driver
	"github.com/phrazzld/biztime-api/internal/config"
	"github.com/phrazzld/biztime-api/internal/redact"
)

const (
	pingTimeout    = 5 * time.Second
	maxPingRetries = 5
)

// setupAppDatabase opens the connection pool and waits, with exponential
// backoff, until the database answers a ping.
func setupAppDatabase(ctx context.Context, cfg *config.Config, logger *slog.Logger) (*sql.DB, error) {
	db, err := sql.Open("pgx", cfg.Database.URL)
	if err != nil {
		return nil, fmt.Errorf("failed to open database connection: %w", err)
	}

	configurePool(db, cfg.Database)

	if err := pingWithBackoff(ctx, db, logger, maxPingRetries); err != nil {
		_ = db.Close()
		return nil, err
	}

	logger.Info("Database connection established",
		"max_open_conns", cfg.Database.MaxOpenConns,
		"max_idle_conns", cfg.Database.MaxIdleConns)
	return db, nil
}

func configurePool(db *sql.DB, cfg config.DatabaseConfig) {
	db.SetMaxOpenConns(cfg.MaxOpenConns)
	db.SetMaxIdleConns(cfg.MaxIdleConns)
	db.SetConnMaxLifetime(time.Duration(cfg.ConnMaxLifetimeMinutes) * time.Minute)
}

type pinger interface {
	PingContext(ctx context.Context) error
}

func pingWithBackoff(ctx context.Context, db pinger, logger *slog.Logger, retries uint64) error {
	policy := backoff.NewExponentialBackOff()
	policy.InitialInterval = 200 * time.Millisecond
	policy.MaxInterval = 5 * time.Second

	b := backoff.WithContext(backoff.WithMaxRetries(policy, retries), ctx)

	ping := func() error {
		pingCtx, cancel := context.WithTimeout(ctx, pingTimeout)
		defer cancel()
		return db.PingContext(pingCtx)
	}
	notify := func(err error, wait time.Duration) {
		logger.Warn("Database not ready, retrying",
			"error", redact.Error(err),
			"retry_in", wait)
	}

	if err := backoff.RetryNotify(ping, b, notify); err != nil {
		return fmt.Errorf("failed to ping database: %w", err)
	}
	return nil
}
