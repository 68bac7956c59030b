package main

import (
	"fmt"
	"log/slog"
	"time"

	"github.com/spf13/cobra"

	"github.com/jalil-salame/nsudoku-solve/bench"
	"github.com/jalil-salame/nsudoku-solve/storage"
)

func newBenchCommand() *cobra.Command {
	var configPath, file string
	var strategies []string
	var workers int
	var useCache, storeRuns bool
	cmd := &cobra.Command{
		Use:   "bench",
		Short: "Time a batch of puzzles across solver strategies",
		Long: `bench reads a file of puzzles, one per line, and times each
configured strategy over the whole batch.  With --cache, puzzles
already solved in the Redis cache are skipped and fresh solutions
are cached for next time.  With --store, run statistics are
persisted to Postgres.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := &bench.Config{}
			if configPath != "" {
				loaded, err := bench.LoadConfig(configPath)
				if err != nil {
					return err
				}
				cfg = loaded
			}
			// flags beat the config file
			if cmd.Flags().Changed("file") {
				cfg.PuzzleFile = file
			}
			if cmd.Flags().Changed("strategy") {
				cfg.Strategies = strategies
			}
			if cmd.Flags().Changed("workers") {
				cfg.Workers = workers
			}
			if cmd.Flags().Changed("cache") {
				cfg.UseCache = useCache
			}
			if cmd.Flags().Changed("store") {
				cfg.StoreRuns = storeRuns
			}
			if err := cfg.Validate(); err != nil {
				return err
			}
			if cfg.PuzzleFile == "" {
				return fmt.Errorf("no puzzle file: give --file or a config with puzzle_file")
			}

			texts, err := bench.ReadPuzzleFile(cfg.PuzzleFile)
			if err != nil {
				return err
			}
			if len(texts) == 0 {
				return fmt.Errorf("no puzzles in %s", cfg.PuzzleFile)
			}

			ctx := cmd.Context()
			if cfg.UseCache || cfg.StoreRuns {
				cacheId, databaseId, err := storage.Connect(ctx)
				if err != nil {
					return err
				}
				defer storage.Close()
				slog.Info("storage connected", "cache", cacheId, "database", databaseId)
			}

			out := cmd.OutOrStdout()
			for _, name := range cfg.Strategies {
				pending := texts
				cached := 0
				if cfg.UseCache {
					pending = make([]string, 0, len(texts))
					for _, text := range texts {
						_, found, err := storage.CachedSolution(text)
						if err != nil {
							return err
						}
						if found {
							cached++
						} else {
							pending = append(pending, text)
						}
					}
				}

				startedAt := time.Now()
				outcomes, stats, err := bench.Run(ctx, pending, bench.Options{
					Strategy: name,
					Workers:  cfg.Workers,
					Progress: func(o bench.Outcome) {
						slog.Info("puzzle done", "index", o.Index,
							"empties", o.Empties, "solved", o.Solved, "elapsed", o.Elapsed)
					},
				})
				if err != nil {
					return err
				}

				fmt.Fprintf(out, "%s: %d solved, %d unsolved",
					name, stats.Solved, stats.Unsolved)
				if cached > 0 {
					fmt.Fprintf(out, ", %d cached", cached)
				}
				fmt.Fprintf(out, "; total %v, mean %v, longest %v (puzzle %d), wall %v\n",
					stats.Total, stats.Mean(), stats.Longest, stats.LongestIndex, stats.Wall)

				if cfg.UseCache {
					for _, o := range outcomes {
						if !o.Solved {
							continue
						}
						if err := storage.CacheSolution(o.Puzzle, o.Solution.Text(), 0); err != nil {
							return err
						}
					}
				}
				if cfg.StoreRuns {
					run := storage.Run{
						ID:        storage.NewRunID(),
						Strategy:  name,
						StartedAt: startedAt,
						Count:     stats.Count,
						Solved:    stats.Solved,
						Unsolved:  stats.Unsolved,
						Total:     stats.Total,
						Longest:   stats.Longest,
					}
					results := make([]storage.Result, len(outcomes))
					for i, o := range outcomes {
						results[i] = storage.Result{
							Index:   o.Index,
							Puzzle:  o.Puzzle,
							Solved:  o.Solved,
							Elapsed: o.Elapsed,
						}
					}
					if err := storage.SaveRun(ctx, run, results); err != nil {
						return err
					}
					slog.Info("run stored", "id", run.ID, "strategy", name)
				}
			}
			return nil
		},
	}
	cmd.Flags().StringVarP(&configPath, "config", "c", "", "YAML benchmark config")
	cmd.Flags().StringVarP(&file, "file", "f", "", "file with one puzzle per line")
	cmd.Flags().StringSliceVarP(&strategies, "strategy", "s", nil,
		"strategies to time, repeatable")
	cmd.Flags().IntVarP(&workers, "workers", "w", 0,
		"concurrent solves, 0 means one per CPU")
	cmd.Flags().BoolVar(&useCache, "cache", false, "use the Redis solution cache")
	cmd.Flags().BoolVar(&storeRuns, "store", false, "persist run statistics to Postgres")
	return cmd
}
