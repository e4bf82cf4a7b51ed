// Package dive plots a submarine course from a stream of steering commands.
package dive

import (
	"fmt"
	"io"

	"github.com/boshu2/aoc2021/internal/lines"
)

// Mode selects how up and down are interpreted.
type Mode int

const (
	// Direct moves depth by up/down arguments.
	Direct Mode = iota
	// Aimed turns up/down into aim and applies aim on forward.
	Aimed
)

func (m Mode) String() string {
	switch m {
	case Direct:
		return "direct"
	case Aimed:
		return "aimed"
	default:
		return fmt.Sprintf("Mode(%d)", int(m))
	}
}

// Position is the submarine state after a course.
type Position struct {
	Horizontal int `json:"horizontal" yaml:"horizontal"`
	Depth      int `json:"depth" yaml:"depth"`
	Aim        int `json:"aim" yaml:"aim"`
}

// Product returns horizontal position times depth.
func (p Position) Product() int {
	return p.Horizontal * p.Depth
}

// Apply moves p by one instruction.
func (p *Position) Apply(mode Mode, in Instruction) error {
	switch mode {
	case Direct:
		return p.applyDirect(in)
	case Aimed:
		return p.applyAimed(in)
	default:
		return fmt.Errorf("unsupported mode %v", mode)
	}
}

func (p *Position) applyDirect(in Instruction) error {
	switch in.Command {
	case Forward:
		p.Horizontal += in.Arg
	case Down:
		p.Depth += in.Arg
	case Up:
		p.Depth -= in.Arg
	default:
		return fmt.Errorf("%w: %v", ErrUnknownCommand, in.Command)
	}
	return nil
}

func (p *Position) applyAimed(in Instruction) error {
	switch in.Command {
	case Forward:
		p.Horizontal += in.Arg
		p.Depth += p.Aim * in.Arg
	case Down:
		p.Aim += in.Arg
	case Up:
		p.Aim -= in.Arg
	default:
		return fmt.Errorf("%w: %v", ErrUnknownCommand, in.Command)
	}
	return nil
}

// Track reads one instruction per line from r and returns the final position.
// The first malformed line aborts the course.
func Track(r io.Reader, mode Mode) (Position, error) {
	var pos Position
	_, err := lines.Scan(r, func(_ int, line string) error {
		in, err := ParseInstruction(line)
		if err != nil {
			return err
		}
		return pos.Apply(mode, in)
	})
	if err != nil {
		return Position{}, err
	}
	return pos, nil
}
