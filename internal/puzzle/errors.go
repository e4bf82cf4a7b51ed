package puzzle

import "errors"

// Sentinel errors for the puzzle package.
var (
	// ErrUnknownPuzzle is returned when no puzzle is registered under an ID.
	ErrUnknownPuzzle = errors.New("unknown puzzle")

	// ErrNilSolver is returned when a puzzle has no solver attached.
	ErrNilSolver = errors.New("puzzle has no solver")
)
