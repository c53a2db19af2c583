package database

import (
	"context"
	"database/sql"
	"fmt"
	"log"
	"time"

	_ "github.com/lib/pq"
)

type Config struct {
	URL        string
	MaxRetries int
	RetryDelay time.Duration
}

func NewPostgresDB(ctx context.Context, cfg Config) (*sql.DB, error) {
	maxRetries := cfg.MaxRetries
	if maxRetries <= 0 {
		maxRetries = 10
	}

	delay := cfg.RetryDelay
	if delay <= 0 {
		delay = 2 * time.Second
	}

	db, err := sql.Open("postgres", cfg.URL)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	for i := 1; i <= maxRetries; i++ {
		log.Printf("Connecting to database (Attempt %d/%d)...", i, maxRetries)
		if err = db.PingContext(ctx); err == nil {
			log.Println("Database connected successfully!")
			db.SetMaxOpenConns(5)
			db.SetMaxIdleConns(5)
			db.SetConnMaxLifetime(5 * time.Minute)
			return db, nil
		}

		if i == maxRetries {
			break
		}

		log.Printf("Database not ready yet. Waiting %s...", delay)
		select {
		case <-ctx.Done():
			db.Close()
			return nil, ctx.Err()
		case <-time.After(delay):
		}
	}

	db.Close()
	return nil, fmt.Errorf("failed to connect to database: %w", err)
}

var schema = []string{
	`CREATE TABLE IF NOT EXISTS arrangements (
		id UUID PRIMARY KEY,
		created_at TIMESTAMPTZ NOT NULL,
		table_count INTEGER NOT NULL,
		capacity INTEGER NOT NULL,
		left_capacity INTEGER NOT NULL,
		unseated TEXT[] NOT NULL DEFAULT '{}'
	)`,
	`CREATE TABLE IF NOT EXISTS arrangement_tables (
		arrangement_id UUID NOT NULL REFERENCES arrangements(id) ON DELETE CASCADE,
		position INTEGER NOT NULL,
		capacity INTEGER NOT NULL,
		left_capacity INTEGER NOT NULL,
		seats TEXT[] NOT NULL,
		PRIMARY KEY (arrangement_id, position)
	)`,
}

// EnsureSchema creates the arrangement tables when they do not exist yet.
func EnsureSchema(ctx context.Context, db *sql.DB) error {
	for _, stmt := range schema {
		if _, err := db.ExecContext(ctx, stmt); err != nil {
			return fmt.Errorf("failed to apply schema: %w", err)
		}
	}

	return nil
}
