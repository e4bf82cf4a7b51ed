package dive

import (
	"errors"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/boshu2/aoc2021/internal/lines"
)

const course = `forward 5
down 5
forward 8
up 3
down 8
forward 2
`

func TestTrack_Aimed(t *testing.T) {
	got, err := Track(strings.NewReader(course), Aimed)
	if err != nil {
		t.Fatalf("Track failed: %v", err)
	}
	want := Position{Horizontal: 15, Depth: 60, Aim: 10}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("Track(Aimed) mismatch (-want +got):\n%s", diff)
	}
	if got.Product() != 900 {
		t.Errorf("Product = %d, want 900", got.Product())
	}
}

func TestTrack_Direct(t *testing.T) {
	got, err := Track(strings.NewReader(course), Direct)
	if err != nil {
		t.Fatalf("Track failed: %v", err)
	}
	want := Position{Horizontal: 15, Depth: 10}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("Track(Direct) mismatch (-want +got):\n%s", diff)
	}
	if got.Product() != 150 {
		t.Errorf("Product = %d, want 150", got.Product())
	}
}

func TestTrack_Empty(t *testing.T) {
	got, err := Track(strings.NewReader(""), Aimed)
	if err != nil {
		t.Fatalf("Track failed: %v", err)
	}
	if got != (Position{}) || got.Product() != 0 {
		t.Errorf("Track(empty) = %+v, want zero position", got)
	}
}

func TestTrack_Errors(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		wantErr error
		line    int
	}{
		{"unknown command", "forward 1\ndiagonal 5\n", ErrUnknownCommand, 2},
		{"one token", "forward\n", ErrMalformedInstruction, 1},
		{"three tokens", "down 1 2\n", ErrMalformedInstruction, 1},
		{"blank line", "up 1\n\n", ErrMalformedInstruction, 2},
		{"bad argument", "down five\n", lines.ErrNotInteger, 1},
		{"case sensitive", "Forward 3\n", ErrUnknownCommand, 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			for _, mode := range []Mode{Direct, Aimed} {
				pos, err := Track(strings.NewReader(tt.input), mode)
				if !errors.Is(err, tt.wantErr) {
					t.Fatalf("%v: err = %v, want %v", mode, err, tt.wantErr)
				}
				var pe *lines.ParseError
				if !errors.As(err, &pe) || pe.Line != tt.line {
					t.Errorf("%v: err = %v, want ParseError on line %d", mode, err, tt.line)
				}
				if pos != (Position{}) {
					t.Errorf("%v: partial position %+v returned on error", mode, pos)
				}
			}
		})
	}
}

func TestParseInstruction(t *testing.T) {
	tests := []struct {
		line string
		want Instruction
	}{
		{"forward 5", Instruction{Command: Forward, Arg: 5}},
		{"  down\t7 ", Instruction{Command: Down, Arg: 7}},
		{"up -2", Instruction{Command: Up, Arg: -2}},
	}
	for _, tt := range tests {
		got, err := ParseInstruction(tt.line)
		if err != nil {
			t.Errorf("ParseInstruction(%q) failed: %v", tt.line, err)
			continue
		}
		if got != tt.want {
			t.Errorf("ParseInstruction(%q) = %+v, want %+v", tt.line, got, tt.want)
		}
	}
}

func TestCommandString(t *testing.T) {
	for _, c := range []Command{Forward, Down, Up} {
		parsed, err := ParseCommand(c.String())
		if err != nil || parsed != c {
			t.Errorf("ParseCommand(%q) = (%v, %v), want %v", c.String(), parsed, err, c)
		}
	}
	if got := Command(42).String(); got != "Command(42)" {
		t.Errorf("String() = %q, want Command(42)", got)
	}
}

func TestApply_UnsupportedMode(t *testing.T) {
	var p Position
	if err := p.Apply(Mode(9), Instruction{Command: Forward, Arg: 1}); err == nil {
		t.Error("expected error for unsupported mode")
	}
}
