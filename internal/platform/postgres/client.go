package postgres

import (
	"context"
	"database/sql"
	"fmt"

	_ "github.com/jackc/pgx/v5/stdlib"

	"casedesk/internal/platform/config"
)

// Client wraps a database/sql handle opened with the pgx driver.
type Client struct {
	*sql.DB
}

// New opens and pings a connection pool from the provided configuration.
// Returns nil if the URL is empty (Postgres not configured).
func New(ctx context.Context, cfg config.PostgresConfig) (*Client, error) {
	if cfg.URL == "" {
		return nil, nil
	}

	db, err := sql.Open("pgx", cfg.URL)
	if err != nil {
		return nil, fmt.Errorf("open postgres: %w", err)
	}
	if cfg.MaxOpenConns > 0 {
		db.SetMaxOpenConns(cfg.MaxOpenConns)
	}
	if cfg.ConnMaxLifetime > 0 {
		db.SetConnMaxLifetime(cfg.ConnMaxLifetime)
	}

	if err := db.PingContext(ctx); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("postgres ping failed: %w", err)
	}

	return &Client{DB: db}, nil
}

// Health checks if the Postgres connection is healthy.
func (c *Client) Health(ctx context.Context) error {
	return c.PingContext(ctx)
}
