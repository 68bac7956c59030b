package dbprep

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
)

// DefaultPuzzleName names the puzzle solved when none is given.
const DefaultPuzzleName = "benchmark"

// Samples holds the stock puzzles seeded into the database,
// keyed by name.  The benchmark entry is the hardest: very
// sparse but uniquely solvable.
var Samples = map[string]string{
	"empty-4":    "................",
	"simple-4":   "1.3..3.13.1..1.3",
	"one-star":   "4....35.2..95.634.........8....3486...46.52...2879....9.........873.29..5.29....6",
	"three-star": ".1.5.6.2......3.18....7...6..5....3...8.9.7...6....4..5...4....64.2......3.9.1.8.",
	"benchmark":  ".......1.4.........2...........5.4.7..8...3....1.9....3..4..2...5.1........8.6...",
}

// DefaultPuzzle returns the text of the default puzzle.
func DefaultPuzzle() string {
	return Samples[DefaultPuzzleName]
}

const (
	upsertPuzzleStatement = `INSERT INTO puzzles (name, puzzle) VALUES ($1, $2) ` +
		`ON CONFLICT (name) DO UPDATE SET puzzle = EXCLUDED.puzzle`
	deletePuzzleStatement = `DELETE FROM puzzles WHERE name = $1`
	selectPuzzleStatement = `SELECT puzzle FROM puzzles WHERE name = $1`
)

// DataUp seeds (or refreshes) the sample puzzles.
func DataUp(ctx context.Context) error {
	url := databaseUrl()
	conn, err := pgx.Connect(ctx, url)
	if err != nil {
		return fmt.Errorf("couldn't connect to db at %q: %w", url, err)
	}
	defer conn.Close(ctx)
	for name, text := range Samples {
		if _, err := conn.Exec(ctx, upsertPuzzleStatement, name, text); err != nil {
			return fmt.Errorf("seed of puzzle %q failed: %w", name, err)
		}
	}
	return nil
}

// DataDown removes the sample puzzles.
func DataDown(ctx context.Context) error {
	url := databaseUrl()
	conn, err := pgx.Connect(ctx, url)
	if err != nil {
		return fmt.Errorf("couldn't connect to db at %q: %w", url, err)
	}
	defer conn.Close(ctx)
	for name := range Samples {
		if _, err := conn.Exec(ctx, deletePuzzleStatement, name); err != nil {
			return fmt.Errorf("removal of puzzle %q failed: %w", name, err)
		}
	}
	return nil
}

// ResolvePuzzle returns the text of a seeded puzzle by name.
// Stock samples resolve without a database; any other name goes
// to the puzzles table.
func ResolvePuzzle(ctx context.Context, name string) (string, error) {
	if text, ok := Samples[name]; ok {
		return text, nil
	}
	return LookupPuzzle(ctx, name)
}

// LookupPuzzle fetches a seeded puzzle's text by name.
func LookupPuzzle(ctx context.Context, name string) (string, error) {
	url := databaseUrl()
	conn, err := pgx.Connect(ctx, url)
	if err != nil {
		return "", fmt.Errorf("couldn't connect to db at %q: %w", url, err)
	}
	defer conn.Close(ctx)
	var text string
	if err := conn.QueryRow(ctx, selectPuzzleStatement, name).Scan(&text); err != nil {
		return "", fmt.Errorf("lookup of puzzle %q failed: %w", name, err)
	}
	return text, nil
}
