package db

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
	"time"

	_ "github.com/lib/pq" // Import postgres driver
)

func Connect(dsn string, timeout time.Duration) (*sql.DB, error) {
	db, err := sql.Open("postgres", dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to create database handle: %w", err)
	}

	// Configure connection pool
	db.SetMaxOpenConns(25)
	db.SetMaxIdleConns(25)
	db.SetConnMaxLifetime(5 * time.Minute)

	// Verify the connection with a timeout
	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	if err = db.PingContext(ctx); err != nil {
		if closeErr := db.Close(); closeErr != nil {
			slog.Error("failed to close database handle after ping error", slog.Any("error", closeErr))
		}
		return nil, fmt.Errorf("failed to ping database within %v: %w", timeout, err)
	}

	return db, nil
}

// EnsureSchema создаёт таблицы при старте, если их ещё нет.
// Версионируемых миграций в проекте нет.
func EnsureSchema(ctx context.Context, db *sql.DB) error {
	schema := []string{
		`CREATE TABLE IF NOT EXISTS teams (
			id SERIAL PRIMARY KEY,
			name TEXT NOT NULL,
			headquarters TEXT NOT NULL
		)`,
		`CREATE TABLE IF NOT EXISTS heroes (
			id SERIAL PRIMARY KEY,
			name TEXT NOT NULL,
			secret_name TEXT NOT NULL,
			age INTEGER,
			team_id INTEGER REFERENCES teams (id) ON DELETE SET NULL
		)`,
		`CREATE INDEX IF NOT EXISTS idx_heroes_team_id ON heroes (team_id)`,
	}

	for _, stmt := range schema {
		if _, err := db.ExecContext(ctx, stmt); err != nil {
			return fmt.Errorf("failed to apply schema statement: %w", err)
		}
	}

	return nil
}
