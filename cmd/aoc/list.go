package main

import (
	"encoding/json"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/boshu2/aoc2021/internal/config"
	"github.com/boshu2/aoc2021/internal/formatter"
	"github.com/boshu2/aoc2021/internal/puzzle"
)

var listCmd = &cobra.Command{
	Use:     "list",
	Short:   "List available puzzles",
	GroupID: "tools",
	Args:    cobra.NoArgs,
	RunE:    runList,
}

func init() {
	rootCmd.AddCommand(listCmd)
}

func runList(cmd *cobra.Command, args []string) error {
	puzzles := puzzle.All()
	w := cmd.OutOrStdout()

	switch cfg.Output {
	case config.OutputJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(puzzles)
	case config.OutputYAML:
		enc := yaml.NewEncoder(w)
		defer func() { _ = enc.Close() }()
		return enc.Encode(puzzles)
	default:
		return formatter.RenderPuzzles(w, puzzles)
	}
}
