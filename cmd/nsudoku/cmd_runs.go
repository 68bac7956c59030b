package main

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/jalil-salame/nsudoku-solve/storage"
)

func newRunsCommand() *cobra.Command {
	var count int
	cmd := &cobra.Command{
		Use:   "runs",
		Short: "List stored benchmark runs, newest first",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			if _, _, err := storage.Connect(ctx); err != nil {
				return err
			}
			defer storage.Close()
			runs, err := storage.LatestRuns(ctx, count)
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			if len(runs) == 0 {
				fmt.Fprintln(out, "no stored runs")
				return nil
			}
			for _, run := range runs {
				fmt.Fprintf(out, "%s  %s  %s: %d puzzles, %d solved, %d unsolved; total %v, longest %v\n",
					run.StartedAt.Format(time.RFC3339), run.ID, run.Strategy,
					run.Count, run.Solved, run.Unsolved, run.Total, run.Longest)
			}
			return nil
		},
	}
	cmd.Flags().IntVarP(&count, "count", "n", 10, "how many runs to list")
	return cmd
}
