package dive

import "errors"

// Sentinel errors for the dive package. Using sentinels instead of ad-hoc
// fmt.Errorf allows callers to match with errors.Is for reliable error handling.
var (
	// ErrUnknownCommand is returned for a command other than forward, down or up.
	ErrUnknownCommand = errors.New("unknown command")

	// ErrMalformedInstruction is returned when a line is not exactly
	// "<command> <integer>".
	ErrMalformedInstruction = errors.New("malformed instruction (want \"<command> <integer>\")")
)
