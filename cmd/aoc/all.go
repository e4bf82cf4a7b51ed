package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/boshu2/aoc2021/internal/formatter"
	"github.com/boshu2/aoc2021/internal/puzzle"
)

var allCmd = &cobra.Command{
	Use:   "all",
	Short: "Run every puzzle against its default input",
	Long: `Run every registered puzzle against <input-dir>/dayNN.txt.

Puzzles run side by side on a worker pool; each one still scans its input
sequentially. Results print in puzzle order. A puzzle that fails is shown
with its error and makes the command exit non-zero.

Examples:
  aoc all
  aoc all -o table
  aoc all -j 1 -o json`,
	GroupID: "tools",
	Args:    cobra.NoArgs,
	RunE:    runAll,
}

func init() {
	allCmd.Flags().IntVarP(&concurrencyFlag, "concurrency", "j", 0, "Worker count (default: batch.concurrency, one per CPU)")
	rootCmd.AddCommand(allCmd)
}

func runAll(cmd *cobra.Command, args []string) error {
	puzzles := puzzle.All()
	results := newRunner().RunAll(puzzles, cfg.Batch.Concurrency)

	if err := formatter.RenderResults(cmd.OutOrStdout(), cfg.Output, results); err != nil {
		return err
	}

	failed := 0
	for _, r := range results {
		if !r.OK() {
			failed++
		}
	}
	if failed > 0 {
		return fmt.Errorf("%d of %d puzzles failed", failed, len(results))
	}
	return nil
}
