package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/boshu2/aoc2021/internal/config"
	"github.com/boshu2/aoc2021/internal/logging"
	"github.com/boshu2/aoc2021/internal/puzzle"
)

var (
	// Global flags
	verbose  bool
	output   string
	cfgFile  string
	inputDir string

	// Per-command overrides folded into config resolution.
	windowFlag      int
	concurrencyFlag int

	// Resolved in PersistentPreRunE.
	cfg    = config.Default()
	logger = logging.Nop()
)

// rootCmd represents the base command when called without any subcommands.
var rootCmd = &cobra.Command{
	Use:   "aoc",
	Short: "Advent of Code 2021 puzzle solvers",
	Long: `aoc solves Advent of Code 2021 puzzles.

Each puzzle reads its input one line at a time, keeps a small running
state and prints a single sentence with the answer.

Puzzles:
  day01a   Count depth measurements larger than the previous one
  day01b   Count sliding-window sums larger than the previous sum
  day02a   Multiply final horizontal position and depth
  day02b   Same course, with up/down steering aim

Inputs default to <input-dir>/dayNN.txt; pass a path to override.`,
	SilenceUsage:      true,
	PersistentPreRunE: setup,
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		_ = logger.Sync()
	},
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.AddGroup(
		&cobra.Group{ID: "puzzles", Title: "Puzzles:"},
		&cobra.Group{ID: "tools", Title: "Tools:"},
	)
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable debug logging on stderr")
	rootCmd.PersistentFlags().StringVarP(&output, "output", "o", "", "Output format (text, table, json, yaml)")
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "Config file (default: .aoc/config.yaml)")
	rootCmd.PersistentFlags().StringVar(&inputDir, "input-dir", "", "Directory holding dayNN.txt inputs (default: input)")
}

// setup resolves configuration and builds the logger for every subcommand.
func setup(cmd *cobra.Command, args []string) error {
	syncConfigFlagToEnv()

	resolved, err := config.Load(flagOverrides())
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	cfg = resolved

	l, err := logging.New(cfg.Verbose)
	if err != nil {
		return err
	}
	logger = l.With(zap.String("cmd", cmd.Name()))
	logger.Debug("config resolved",
		zap.String("output", cfg.Output),
		zap.String("input_dir", cfg.InputDir),
		zap.Int("window", cfg.Sonar.Window))
	return nil
}

// flagOverrides collects flag values as the highest-priority config layer.
func flagOverrides() *config.Config {
	return &config.Config{
		Output:   output,
		InputDir: inputDir,
		Verbose:  verbose,
		Sonar:    config.SonarConfig{Window: windowFlag},
		Batch:    config.BatchConfig{Concurrency: concurrencyFlag},
	}
}

func syncConfigFlagToEnv() {
	path := strings.TrimSpace(cfgFile)
	if path == "" {
		return
	}
	_ = os.Setenv("AOC_CONFIG", path)
}

// newRunner builds a puzzle runner from the resolved config.
func newRunner() *puzzle.Runner {
	return puzzle.NewRunner(cfg.InputDir, puzzle.Options{Window: cfg.Sonar.Window}, logger)
}
