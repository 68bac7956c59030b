package main

import (
	"errors"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/jalil-salame/nsudoku-solve/dbprep"
	"github.com/jalil-salame/nsudoku-solve/puzzle"
)

func newTestCommand() *cobra.Command {
	var strategyName, puzzleName string
	cmd := &cobra.Command{
		Use:   "test [puzzle]",
		Short: "Solve a single puzzle, by default the stock benchmark one",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			strategy, ok := puzzle.StrategyNamed(strategyName)
			if !ok {
				return fmt.Errorf("unknown strategy %q (have %v)",
					strategyName, puzzle.StrategyNames())
			}
			text := dbprep.DefaultPuzzle()
			switch {
			case len(args) == 1 && puzzleName != "":
				return fmt.Errorf("give a puzzle text or --name, not both")
			case len(args) == 1:
				text = args[0]
			case puzzleName != "":
				resolved, err := dbprep.ResolvePuzzle(cmd.Context(), puzzleName)
				if err != nil {
					return err
				}
				text = resolved
			}
			g, err := puzzle.Parse(text)
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "%s\n", g)
			start := time.Now()
			solved, err := strategy(g)
			elapsed := time.Since(start)
			var u puzzle.Unsolvable
			switch {
			case err == nil:
				fmt.Fprintf(out, "%s\nsolved in %v\n", solved, elapsed)
			case errors.As(err, &u):
				fmt.Fprintf(out, "no solution (searched %v)\n", elapsed)
			default:
				return err
			}
			return nil
		},
	}
	cmd.Flags().StringVarP(&strategyName, "strategy", "s", "sorted",
		fmt.Sprintf("search strategy, one of %v", puzzle.StrategyNames()))
	cmd.Flags().StringVarP(&puzzleName, "name", "n", "",
		"solve a seeded puzzle by name instead of by text")
	return cmd
}
