package main

import (
	"fmt"
	"runtime"
	"strings"

	"github.com/spf13/cobra"

	"github.com/boshu2/aoc2021/internal/puzzle"
)

// version is overridden at build time with -ldflags "-X main.version=...".
var version = "dev"

var versionCmd = &cobra.Command{
	Use:     "version",
	Short:   "Show version information",
	Long:    `Display the version, runtime details and the registered puzzles.`,
	GroupID: "tools",
	Run: func(cmd *cobra.Command, args []string) {
		w := cmd.OutOrStdout()
		fmt.Fprintf(w, "aoc version %s\n", version)
		fmt.Fprintf(w, "  Go version: %s\n", runtime.Version())
		fmt.Fprintf(w, "  Platform: %s/%s\n", runtime.GOOS, runtime.GOARCH)
		fmt.Fprintf(w, "  Puzzles: %s\n", strings.Join(puzzleIDs(), ", "))
	},
}

func puzzleIDs() []string {
	all := puzzle.All()
	ids := make([]string, len(all))
	for i, p := range all {
		ids[i] = p.ID
	}
	return ids
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
