package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/boshu2/aoc2021/internal/config"
)

var (
	configShow bool
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Manage configuration",
	Long: `View aoc configuration.

Configuration priority (highest to lowest):
  1. Command-line flags
  2. Environment variables (AOC_*)
  3. Project config (.aoc/config.yaml, or --config / AOC_CONFIG)
  4. Home config (~/.aoc/config.yaml)
  5. Defaults

Environment variables:
  AOC_CONFIG             - Explicit config file path
  AOC_OUTPUT             - Output format (text, table, json, yaml)
  AOC_INPUT_DIR          - Directory holding dayNN.txt inputs
  AOC_VERBOSE            - Enable debug logging (true/1)
  AOC_SONAR_WINDOW       - Sliding-window width for day01b
  AOC_BATCH_CONCURRENCY  - Worker count for aoc all

Examples:
  aoc config --show           # Show resolved configuration
  aoc config --show -o json   # Output as JSON`,
	GroupID: "tools",
	RunE:    runConfig,
}

func init() {
	rootCmd.AddCommand(configCmd)
	configCmd.Flags().BoolVar(&configShow, "show", false, "Show resolved configuration with sources")
}

func runConfig(cmd *cobra.Command, args []string) error {
	if !configShow {
		return cmd.Help()
	}

	resolved := config.Resolve(flagOverrides())
	w := cmd.OutOrStdout()

	if cfg.Output == config.OutputJSON {
		data, err := json.MarshalIndent(resolved, "", "  ")
		if err != nil {
			return fmt.Errorf("marshal config: %w", err)
		}
		fmt.Fprintln(w, string(data))
		return nil
	}

	fmt.Fprintln(w, "aoc Configuration")
	fmt.Fprintln(w, "=================")
	fmt.Fprintln(w)

	fmt.Fprintln(w, "Config files:")
	home, _ := os.UserHomeDir()
	printConfigFile(w, "Home:   ", filepath.Join(home, ".aoc", "config.yaml"))
	project := os.Getenv("AOC_CONFIG")
	if project == "" {
		cwd, _ := os.Getwd()
		project = filepath.Join(cwd, ".aoc", "config.yaml")
	}
	printConfigFile(w, "Project:", project)

	fmt.Fprintln(w)
	fmt.Fprintln(w, "Resolved values:")
	fmt.Fprintf(w, "  output:            %v  (from %s)\n", resolved.Output.Value, resolved.Output.Source)
	fmt.Fprintf(w, "  input_dir:         %v  (from %s)\n", resolved.InputDir.Value, resolved.InputDir.Source)
	fmt.Fprintf(w, "  verbose:           %v  (from %s)\n", resolved.Verbose.Value, resolved.Verbose.Source)
	fmt.Fprintf(w, "  sonar.window:      %v  (from %s)\n", resolved.SonarWindow.Value, resolved.SonarWindow.Source)
	fmt.Fprintf(w, "  batch.concurrency: %v  (from %s)\n", resolved.BatchConcurrency.Value, resolved.BatchConcurrency.Source)

	fmt.Fprintln(w)
	fmt.Fprintln(w, "Environment variables (if set):")
	anySet := false
	for _, env := range []string{
		"AOC_CONFIG",
		"AOC_OUTPUT",
		"AOC_INPUT_DIR",
		"AOC_VERBOSE",
		"AOC_SONAR_WINDOW",
		"AOC_BATCH_CONCURRENCY",
	} {
		if v := os.Getenv(env); v != "" {
			fmt.Fprintf(w, "  %s=%s\n", env, v)
			anySet = true
		}
	}
	if !anySet {
		fmt.Fprintln(w, "  (none set)")
	}

	return nil
}

func printConfigFile(w io.Writer, label, path string) {
	if _, err := os.Stat(path); err == nil {
		fmt.Fprintf(w, "  ✓ %s %s\n", label, path)
	} else {
		fmt.Fprintf(w, "  ✗ %s %s (not found)\n", label, path)
	}
}
