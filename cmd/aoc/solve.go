package main

import (
	"github.com/spf13/cobra"

	"github.com/boshu2/aoc2021/internal/formatter"
	"github.com/boshu2/aoc2021/internal/puzzle"
)

// newPuzzleCmd builds the subcommand that runs one registered puzzle.
func newPuzzleCmd(id, long string) *cobra.Command {
	p, err := puzzle.Lookup(id)
	if err != nil {
		panic(err)
	}
	return &cobra.Command{
		Use:     p.ID + " [input-file]",
		Short:   p.Title,
		Long:    long,
		GroupID: "puzzles",
		Args:    cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runPuzzle(cmd, p, args)
		},
	}
}

func runPuzzle(cmd *cobra.Command, p puzzle.Puzzle, args []string) error {
	path := ""
	if len(args) == 1 {
		path = args[0]
	}

	res, err := newRunner().Run(p, path)
	if err != nil {
		return err
	}
	return formatter.RenderResults(cmd.OutOrStdout(), cfg.Output, []puzzle.Result{res})
}
