package dive

import (
	"fmt"
	"strings"

	"github.com/boshu2/aoc2021/internal/lines"
)

// Command is one of the three steering commands.
type Command int

const (
	Forward Command = iota + 1
	Down
	Up
)

var commandNames = map[Command]string{
	Forward: "forward",
	Down:    "down",
	Up:      "up",
}

func (c Command) String() string {
	if name, ok := commandNames[c]; ok {
		return name
	}
	return fmt.Sprintf("Command(%d)", int(c))
}

// ParseCommand decodes a command token.
func ParseCommand(s string) (Command, error) {
	switch s {
	case "forward":
		return Forward, nil
	case "down":
		return Down, nil
	case "up":
		return Up, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrUnknownCommand, s)
	}
}

// Instruction is a decoded course line.
type Instruction struct {
	Command Command
	Arg     int
}

// ParseInstruction decodes a line of the form "<command> <integer>".
func ParseInstruction(line string) (Instruction, error) {
	fields := strings.Fields(line)
	if len(fields) != 2 {
		return Instruction{}, fmt.Errorf("%w: got %d tokens", ErrMalformedInstruction, len(fields))
	}
	cmd, err := ParseCommand(fields[0])
	if err != nil {
		return Instruction{}, err
	}
	arg, err := lines.ParseInt(fields[1])
	if err != nil {
		return Instruction{}, fmt.Errorf("argument %q: %w", fields[1], err)
	}
	return Instruction{Command: cmd, Arg: arg}, nil
}
