// Package bench runs batches of puzzles through a search
// strategy and aggregates timing statistics.  Each puzzle is
// solved in total isolation on its own worker; there is no
// cross-puzzle state and no cancellation of an in-flight solve.
package bench

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"runtime"
	"sync"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/jalil-salame/nsudoku-solve/puzzle"
)

// Options configure a batch run.
type Options struct {
	// Strategy is the registered name of the search strategy.
	Strategy string
	// Workers bounds the number of puzzles solved concurrently.
	// Zero or negative means one worker per CPU.
	Workers int
	// Progress, if set, is called once per completed puzzle, in
	// completion order.  Calls are serialized.
	Progress func(Outcome)
	// Logger receives run-level records; nil means slog.Default.
	Logger *slog.Logger
}

// An Outcome is the result of solving one puzzle.
type Outcome struct {
	Index    int           // 1-based position in the batch
	Puzzle   string        // the puzzle text as supplied
	Empties  int           // empty squares before solving
	Solved   bool          // false means exhaustive search found nothing
	Solution *puzzle.Grid  // nil unless Solved
	Elapsed  time.Duration // solve time for this puzzle alone
}

// Stats aggregate a batch.
type Stats struct {
	Count        int
	Solved       int
	Unsolved     int
	Total        time.Duration // sum of per-puzzle solve times
	Longest      time.Duration
	LongestIndex int           // 1-based index of the longest solve
	Wall         time.Duration // elapsed wall time for the whole batch
}

// Mean returns the equal-weight mean solve time, 0 for an empty
// batch.
func (s Stats) Mean() time.Duration {
	if s.Count == 0 {
		return 0
	}
	return s.Total / time.Duration(s.Count)
}

// Run solves every puzzle in texts with the configured strategy
// on a bounded worker pool.  A malformed puzzle text fails the
// whole batch before any solving starts; an unsolvable puzzle
// does not, it's an ordinary unsolved Outcome.
func Run(ctx context.Context, texts []string, opts Options) ([]Outcome, Stats, error) {
	strategy, ok := puzzle.StrategyNamed(opts.Strategy)
	if !ok {
		return nil, Stats{}, fmt.Errorf("unknown strategy %q (have %v)",
			opts.Strategy, puzzle.StrategyNames())
	}
	logger := opts.Logger
	if logger == nil {
		logger = slog.Default()
	}

	// parse up front so a bad line fails fast
	grids := make([]*puzzle.Grid, len(texts))
	for i, text := range texts {
		g, err := puzzle.Parse(text)
		if err != nil {
			return nil, Stats{}, fmt.Errorf("puzzle %d: %w", i+1, err)
		}
		grids[i] = g
	}

	workers := opts.Workers
	if workers <= 0 {
		workers = runtime.NumCPU()
	}
	logger.Info("batch start",
		"puzzles", len(grids), "strategy", opts.Strategy, "workers", workers)

	outcomes := make([]Outcome, len(grids))
	var progressMutex sync.Mutex
	start := time.Now()
	eg, ctx := errgroup.WithContext(ctx)
	eg.SetLimit(workers)
	for i := range grids {
		i := i
		eg.Go(func() error {
			// not started yet, so honor cancellation; once a
			// solve begins it runs to completion
			if err := ctx.Err(); err != nil {
				return err
			}
			empties := grids[i].Empties()
			begin := time.Now()
			solved, err := strategy(grids[i])
			out := Outcome{
				Index:   i + 1,
				Puzzle:  texts[i],
				Empties: empties,
				Elapsed: time.Since(begin),
			}
			var u puzzle.Unsolvable
			switch {
			case err == nil:
				out.Solved, out.Solution = true, solved
			case errors.As(err, &u):
				// expected outcome for a contradictory puzzle
			default:
				return fmt.Errorf("puzzle %d: %w", i+1, err)
			}
			outcomes[i] = out
			if opts.Progress != nil {
				progressMutex.Lock()
				opts.Progress(out)
				progressMutex.Unlock()
			}
			return nil
		})
	}
	if err := eg.Wait(); err != nil {
		return nil, Stats{}, err
	}

	stats := tally(outcomes)
	stats.Wall = time.Since(start)
	logger.Info("batch done",
		"solved", stats.Solved, "unsolved", stats.Unsolved,
		"total", stats.Total, "longest", stats.Longest, "wall", stats.Wall)
	return outcomes, stats, nil
}

// tally folds per-puzzle outcomes into batch statistics.
func tally(outcomes []Outcome) Stats {
	var stats Stats
	stats.Count = len(outcomes)
	for _, out := range outcomes {
		if out.Solved {
			stats.Solved++
		} else {
			stats.Unsolved++
		}
		stats.Total += out.Elapsed
		if out.Elapsed > stats.Longest {
			stats.Longest, stats.LongestIndex = out.Elapsed, out.Index
		}
	}
	return stats
}
