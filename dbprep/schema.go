package dbprep

import (
	"context"
	"fmt"
	"os"

	"github.com/jackc/pgx/v5"
)

// the schema, as idempotent statements run in order
var schemaUp = []string{
	`CREATE TABLE IF NOT EXISTS puzzles (
		name TEXT PRIMARY KEY,
		puzzle TEXT NOT NULL
	)`,
	`CREATE TABLE IF NOT EXISTS runs (
		id TEXT PRIMARY KEY,
		strategy TEXT NOT NULL,
		started_at TIMESTAMPTZ NOT NULL,
		puzzle_count INTEGER NOT NULL,
		solved INTEGER NOT NULL,
		unsolved INTEGER NOT NULL,
		total_ns BIGINT NOT NULL,
		longest_ns BIGINT NOT NULL
	)`,
	`CREATE TABLE IF NOT EXISTS results (
		run_id TEXT NOT NULL REFERENCES runs (id) ON DELETE CASCADE,
		puzzle_index INTEGER NOT NULL,
		puzzle TEXT NOT NULL,
		solved BOOLEAN NOT NULL,
		elapsed_ns BIGINT NOT NULL,
		PRIMARY KEY (run_id, puzzle_index)
	)`,
	`CREATE INDEX IF NOT EXISTS runs_started_at ON runs (started_at)`,
}

// the inverse of schemaUp, run in order
var schemaDown = []string{
	`DROP TABLE IF EXISTS results`,
	`DROP TABLE IF EXISTS runs`,
	`DROP TABLE IF EXISTS puzzles`,
}

// EnsureSchema creates any missing tables and indexes.
func EnsureSchema(ctx context.Context) error {
	return execute(ctx, schemaUp)
}

// DropSchema removes the tables and indexes.
func DropSchema(ctx context.Context) error {
	return execute(ctx, schemaDown)
}

// databaseUrl - look up Postgres info from the environment
func databaseUrl() string {
	if url := os.Getenv("DATABASE_URL"); url != "" {
		return url
	}
	return "postgres://localhost/nsudoku?sslmode=disable"
}

// execute: run the statements in order on a fresh connection,
// stopping at the first failure.
func execute(ctx context.Context, statements []string) error {
	url := databaseUrl()
	conn, err := pgx.Connect(ctx, url)
	if err != nil {
		return fmt.Errorf("couldn't connect to db at %q: %w", url, err)
	}
	defer conn.Close(ctx)
	for _, statement := range statements {
		if _, err := conn.Exec(ctx, statement); err != nil {
			return fmt.Errorf("statement %q failed: %w", statement, err)
		}
	}
	return nil
}
