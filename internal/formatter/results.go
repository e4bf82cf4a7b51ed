// Package formatter renders puzzle results for the terminal or for tools.
package formatter

import (
	"encoding/json"
	"fmt"
	"io"
	"strconv"

	"gopkg.in/yaml.v3"

	"github.com/boshu2/aoc2021/internal/config"
	"github.com/boshu2/aoc2021/internal/puzzle"
)

// RenderResults writes results in the given output format.
//
// text prints each answer sentence on its own line (or "<puzzle>: <error>"
// for a failed run); table, json and yaml include every field.
func RenderResults(w io.Writer, format string, results []puzzle.Result) error {
	switch format {
	case config.OutputText, "":
		return renderText(w, results)
	case config.OutputTable:
		return renderTable(w, results)
	case config.OutputJSON:
		enc := json.NewEncoder(w)
		enc.SetEscapeHTML(false)
		enc.SetIndent("", "  ")
		if len(results) == 1 {
			return enc.Encode(results[0])
		}
		return enc.Encode(results)
	case config.OutputYAML:
		enc := yaml.NewEncoder(w)
		defer func() { _ = enc.Close() }()
		if len(results) == 1 {
			return enc.Encode(results[0])
		}
		return enc.Encode(results)
	default:
		return fmt.Errorf("%w: %q", config.ErrInvalidOutput, format)
	}
}

func renderText(w io.Writer, results []puzzle.Result) error {
	for _, r := range results {
		line := r.Message
		if !r.OK() {
			line = r.Error
		}
		if _, err := fmt.Fprintln(w, line); err != nil {
			return err
		}
	}
	return nil
}

func renderTable(w io.Writer, results []puzzle.Result) error {
	tbl := NewTable(w, "PUZZLE", "ANSWER", "INPUT", "STATUS")
	tbl.SetMaxWidth(2, 40)
	tbl.SetMaxWidth(3, 60)
	for _, r := range results {
		answer, status := strconv.Itoa(r.Answer), "ok"
		if !r.OK() {
			answer, status = "-", r.Error
		}
		tbl.AddRow(r.Puzzle, answer, r.Input, status)
	}
	return tbl.Render()
}

// RenderPuzzles lists registered puzzles as a table.
func RenderPuzzles(w io.Writer, puzzles []puzzle.Puzzle) error {
	tbl := NewTable(w, "PUZZLE", "DAY", "INPUT", "TITLE")
	for _, p := range puzzles {
		tbl.AddRow(p.ID, strconv.Itoa(p.Day), p.Input, p.Title)
	}
	return tbl.Render()
}
