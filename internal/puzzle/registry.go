package puzzle

import (
	"fmt"
	"io"

	"github.com/boshu2/aoc2021/internal/dive"
	"github.com/boshu2/aoc2021/internal/sonar"
)

var registry = []Puzzle{
	{
		ID:       "day01a",
		Day:      1,
		Title:    "Sonar Sweep: depth increases",
		Input:    "day01.txt",
		Template: "%d measurements are larger",
		Solve: func(r io.Reader, _ Options) (int, error) {
			return sonar.CountIncreases(r)
		},
	},
	{
		ID:       "day01b",
		Day:      1,
		Title:    "Sonar Sweep: sliding-window sums",
		Input:    "day01.txt",
		Template: "%d sums are larger",
		Solve: func(r io.Reader, opts Options) (int, error) {
			return sonar.CountWindowIncreases(r, opts.window())
		},
	},
	{
		ID:       "day02a",
		Day:      2,
		Title:    "Dive: direct steering",
		Input:    "day02.txt",
		Template: "The product of the final position is %d",
		Solve:    course(dive.Direct),
	},
	{
		ID:       "day02b",
		Day:      2,
		Title:    "Dive: steering with aim",
		Input:    "day02.txt",
		Template: "The product of the final position is %d",
		Solve:    course(dive.Aimed),
	},
}

func course(mode dive.Mode) Solver {
	return func(r io.Reader, _ Options) (int, error) {
		pos, err := dive.Track(r, mode)
		if err != nil {
			return 0, err
		}
		return pos.Product(), nil
	}
}

// All returns every registered puzzle in day order.
func All() []Puzzle {
	out := make([]Puzzle, len(registry))
	copy(out, registry)
	return out
}

// Lookup returns the puzzle registered under id.
func Lookup(id string) (Puzzle, error) {
	for _, p := range registry {
		if p.ID == id {
			return p, nil
		}
	}
	return Puzzle{}, fmt.Errorf("%w: %q", ErrUnknownPuzzle, id)
}
