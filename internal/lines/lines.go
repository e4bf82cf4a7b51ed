// Package lines provides streaming, line-at-a-time readers for puzzle input.
package lines

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"
)

// maxLineSize caps a single input line. Puzzle lines are a few bytes long.
const maxLineSize = 1024 * 1024

// ParseError reports the line a scan stopped on.
type ParseError struct {
	Line int    `json:"line"`
	Text string `json:"text,omitempty"`
	Err  error  `json:"-"`
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("line %d: %q: %v", e.Line, truncateForError(e.Text, 40), e.Err)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}

// Scan calls fn for every line of r, in order, with its 1-based line number.
// The first error from fn stops the scan and is returned wrapped in a
// *ParseError. Scan returns the number of lines consumed.
func Scan(r io.Reader, fn func(lineNum int, line string) error) (int, error) {
	scanner := bufio.NewScanner(r)
	buf := make([]byte, 0, 64*1024)
	scanner.Buffer(buf, maxLineSize)

	lineNum := 0
	for scanner.Scan() {
		lineNum++
		line := strings.TrimSuffix(scanner.Text(), "\r")
		if err := fn(lineNum, line); err != nil {
			return lineNum, &ParseError{Line: lineNum, Text: line, Err: err}
		}
	}
	if err := scanner.Err(); err != nil {
		return lineNum, fmt.Errorf("read line %d: %w", lineNum+1, err)
	}
	return lineNum, nil
}

// ScanInts parses every line of r as an integer and passes it to fn.
func ScanInts(r io.Reader, fn func(v int) error) (int, error) {
	return Scan(r, func(_ int, line string) error {
		v, err := ParseInt(line)
		if err != nil {
			return err
		}
		return fn(v)
	})
}

// ParseInt parses a signed base-10 integer, ignoring surrounding whitespace.
func ParseInt(s string) (int, error) {
	v, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil {
		return 0, ErrNotInteger
	}
	return v, nil
}

// truncateForError limits error context to a reasonable size.
func truncateForError(s string, maxLen int) string {
	if len(s) <= maxLen {
		return s
	}
	return s[:maxLen] + "..."
}
