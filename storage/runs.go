package storage

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

// A Run records one timed batch of puzzles against one strategy.
type Run struct {
	ID        string        // assigned by NewRunID
	Strategy  string        // strategy name used for the batch
	StartedAt time.Time     // when the batch started
	Count     int           // puzzles in the batch
	Solved    int           // puzzles with a solution
	Unsolved  int           // puzzles with no solution
	Total     time.Duration // summed solve time
	Longest   time.Duration // slowest single solve
}

// A Result records the outcome for one puzzle of a run.
type Result struct {
	Index   int    // position in the batch, from 1
	Puzzle  string // puzzle text
	Solved  bool
	Elapsed time.Duration
}

// NewRunID returns a fresh unique run id.
func NewRunID() string {
	return uuid.NewString()
}

const (
	insertRunStatement = `INSERT INTO runs ` +
		`(id, strategy, started_at, puzzle_count, solved, unsolved, total_ns, longest_ns) ` +
		`VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`
	insertResultStatement = `INSERT INTO results ` +
		`(run_id, puzzle_index, puzzle, solved, elapsed_ns) ` +
		`VALUES ($1, $2, $3, $4, $5)`
	selectRunsStatement = `SELECT id, strategy, started_at, puzzle_count, ` +
		`solved, unsolved, total_ns, longest_ns ` +
		`FROM runs ORDER BY started_at DESC LIMIT $1`
)

// SaveRun stores a run and its per-puzzle results in a single
// transaction.
func SaveRun(ctx context.Context, run Run, results []Result) error {
	return pgExecute(ctx, func(tx pgx.Tx) error {
		_, err := tx.Exec(ctx, insertRunStatement,
			run.ID, run.Strategy, run.StartedAt, run.Count,
			run.Solved, run.Unsolved,
			run.Total.Nanoseconds(), run.Longest.Nanoseconds())
		if err != nil {
			return fmt.Errorf("insert of run %q failed: %w", run.ID, err)
		}
		for _, res := range results {
			_, err := tx.Exec(ctx, insertResultStatement,
				run.ID, res.Index, res.Puzzle, res.Solved,
				res.Elapsed.Nanoseconds())
			if err != nil {
				return fmt.Errorf("insert of run %q result %d failed: %w", run.ID, res.Index, err)
			}
		}
		return nil
	})
}

// LatestRuns returns up to count stored runs, newest first.
func LatestRuns(ctx context.Context, count int) ([]Run, error) {
	var runs []Run
	err := pgExecute(ctx, func(tx pgx.Tx) error {
		rows, err := tx.Query(ctx, selectRunsStatement, count)
		if err != nil {
			return fmt.Errorf("select of runs failed: %w", err)
		}
		defer rows.Close()
		for rows.Next() {
			var run Run
			var totalNs, longestNs int64
			err := rows.Scan(&run.ID, &run.Strategy, &run.StartedAt,
				&run.Count, &run.Solved, &run.Unsolved, &totalNs, &longestNs)
			if err != nil {
				return fmt.Errorf("scan of run failed: %w", err)
			}
			run.Total = time.Duration(totalNs)
			run.Longest = time.Duration(longestNs)
			runs = append(runs, run)
		}
		return rows.Err()
	})
	if err != nil {
		return nil, err
	}
	return runs, nil
}
