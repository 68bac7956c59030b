// Command nsudoku solves and benchmarks square Sudoku puzzles
// from the command line.
package main

import (
	"log/slog"
	"os"

	"github.com/spf13/cobra"
)

func main() {
	if err := newRootCommand().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCommand() *cobra.Command {
	var verbose bool
	root := &cobra.Command{
		Use:   "nsudoku",
		Short: "Solve and benchmark square Sudoku puzzles",
		Long: `nsudoku solves square Sudoku puzzles of any order: the usual
9x9 grids, 4x4 minis, 16x16 and beyond.  Puzzles are given as
single-line texts, one character per square in reading order,
with '.' for an empty square.`,
		SilenceUsage: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			level := slog.LevelWarn
			if verbose {
				level = slog.LevelInfo
			}
			handler := slog.NewTextHandler(cmd.ErrOrStderr(),
				&slog.HandlerOptions{Level: level})
			slog.SetDefault(slog.New(handler))
		},
	}
	root.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false,
		"log progress to stderr")
	root.AddCommand(newSolveCommand(), newBenchCommand(), newTestCommand(), newRunsCommand())
	return root
}
