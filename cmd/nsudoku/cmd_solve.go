package main

import (
	"errors"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/jalil-salame/nsudoku-solve/bench"
	"github.com/jalil-salame/nsudoku-solve/puzzle"
)

func newSolveCommand() *cobra.Command {
	var strategyName, file string
	cmd := &cobra.Command{
		Use:   "solve [puzzle ...]",
		Short: "Solve puzzles given as arguments or read from a file",
		RunE: func(cmd *cobra.Command, args []string) error {
			strategy, ok := puzzle.StrategyNamed(strategyName)
			if !ok {
				return fmt.Errorf("unknown strategy %q (have %v)",
					strategyName, puzzle.StrategyNames())
			}
			texts := args
			if file != "" {
				fromFile, err := bench.ReadPuzzleFile(file)
				if err != nil {
					return err
				}
				texts = append(texts, fromFile...)
			}
			if len(texts) == 0 {
				return fmt.Errorf("no puzzles to solve: give puzzle texts or --file")
			}
			out := cmd.OutOrStdout()
			for i, text := range texts {
				g, err := puzzle.Parse(text)
				if err != nil {
					return fmt.Errorf("puzzle %d: %w", i+1, err)
				}
				start := time.Now()
				solved, err := strategy(g)
				elapsed := time.Since(start)
				var u puzzle.Unsolvable
				switch {
				case err == nil:
					fmt.Fprintf(out, "%s\n%s\nsolved in %v\n", text, solved, elapsed)
				case errors.As(err, &u):
					fmt.Fprintf(out, "%s\nno solution (searched %v)\n", text, elapsed)
				default:
					return fmt.Errorf("puzzle %d: %w", i+1, err)
				}
			}
			return nil
		},
	}
	cmd.Flags().StringVarP(&strategyName, "strategy", "s", "sorted",
		fmt.Sprintf("search strategy, one of %v", puzzle.StrategyNames()))
	cmd.Flags().StringVarP(&file, "file", "f", "",
		"file with one puzzle per line")
	return cmd
}
