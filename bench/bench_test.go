package bench

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testPuzzles = []string{
	"1.3..3.13.1..1.3",      // uniquely solvable 4x4
	strings.Repeat(".", 16), // empty 4x4, many solutions
	"1.3.13.13.1..1.3",      // duplicate 1s in a column: unsolvable
	".12.3...4.......",      // valid givens, contradiction after propagation
}

func TestRunBatch(t *testing.T) {
	for _, strategy := range []string{"naive", "pruned", "sorted"} {
		t.Run(strategy, func(t *testing.T) {
			outcomes, stats, err := Run(context.Background(), testPuzzles, Options{
				Strategy: strategy,
				Workers:  2,
			})
			require.NoError(t, err)
			require.Len(t, outcomes, len(testPuzzles))

			assert.Equal(t, len(testPuzzles), stats.Count)
			assert.Equal(t, 2, stats.Solved)
			assert.Equal(t, 2, stats.Unsolved)

			empties := []int{8, 16, 7, 12}
			for i, out := range outcomes {
				assert.Equal(t, i+1, out.Index, "outcomes keep batch order")
				assert.Equal(t, testPuzzles[i], out.Puzzle)
				assert.Equal(t, empties[i], out.Empties, "empty-square count of puzzle %d", i+1)
				if out.Solved {
					require.NotNil(t, out.Solution)
					assert.True(t, out.Solution.Solved())
				} else {
					assert.Nil(t, out.Solution)
				}
			}
			assert.True(t, outcomes[0].Solved)
			assert.True(t, outcomes[1].Solved)
			assert.False(t, outcomes[2].Solved)
			assert.False(t, outcomes[3].Solved)
		})
	}
}

func TestRunProgress(t *testing.T) {
	var seen []int
	_, _, err := Run(context.Background(), testPuzzles, Options{
		Strategy: "sorted",
		Workers:  4,
		Progress: func(out Outcome) { seen = append(seen, out.Index) },
	})
	require.NoError(t, err)
	assert.ElementsMatch(t, []int{1, 2, 3, 4}, seen,
		"every puzzle reports progress exactly once")
}

func TestRunErrors(t *testing.T) {
	_, _, err := Run(context.Background(), testPuzzles, Options{Strategy: "dlx"})
	require.ErrorContains(t, err, "unknown strategy")

	_, _, err = Run(context.Background(), []string{"not a puzzle!"}, Options{Strategy: "sorted"})
	require.ErrorContains(t, err, "puzzle 1")
}

func TestRunCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, _, err := Run(ctx, testPuzzles, Options{Strategy: "sorted", Workers: 1})
	require.ErrorIs(t, err, context.Canceled)
}

func TestStatsTally(t *testing.T) {
	outcomes := []Outcome{
		{Index: 1, Solved: true, Elapsed: 10 * time.Millisecond},
		{Index: 2, Solved: false, Elapsed: 30 * time.Millisecond},
		{Index: 3, Solved: true, Elapsed: 20 * time.Millisecond},
	}
	stats := tally(outcomes)
	assert.Equal(t, 3, stats.Count)
	assert.Equal(t, 2, stats.Solved)
	assert.Equal(t, 1, stats.Unsolved)
	assert.Equal(t, 60*time.Millisecond, stats.Total)
	assert.Equal(t, 30*time.Millisecond, stats.Longest)
	assert.Equal(t, 2, stats.LongestIndex)
	assert.Equal(t, 20*time.Millisecond, stats.Mean())
	assert.Equal(t, time.Duration(0), Stats{}.Mean())
}

func TestReadPuzzles(t *testing.T) {
	input := strings.Join([]string{
		"# fixture file",
		"",
		"  1.3..3.13.1..1.3  ",
		"................",
		"# trailing comment",
	}, "\n")
	texts, err := ReadPuzzles(strings.NewReader(input))
	require.NoError(t, err)
	assert.Equal(t, []string{"1.3..3.13.1..1.3", "................"}, texts)
}

func TestLoadConfig(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bench.yaml")
	content := strings.Join([]string{
		"puzzle_file: puzzles.txt",
		"strategies: [sorted, pruned]",
		"workers: 3",
		"use_cache: true",
	}, "\n")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	cfg, err := LoadConfig(path)
	require.NoError(t, err)
	assert.Equal(t, "puzzles.txt", cfg.PuzzleFile)
	assert.Equal(t, []string{"sorted", "pruned"}, cfg.Strategies)
	assert.Equal(t, 3, cfg.Workers)
	assert.True(t, cfg.UseCache)
	assert.False(t, cfg.StoreRuns)
}

func TestLoadConfigDefaultsAndErrors(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bench.yaml")
	require.NoError(t, os.WriteFile(path, []byte("workers: 1\n"), 0o644))
	cfg, err := LoadConfig(path)
	require.NoError(t, err)
	assert.Equal(t, []string{"sorted"}, cfg.Strategies, "strategy defaults to sorted")

	require.NoError(t, os.WriteFile(path, []byte("strategies: [dlx]\n"), 0o644))
	_, err = LoadConfig(path)
	require.ErrorContains(t, err, "unknown strategy")
}
