package config

import "errors"

// Sentinel errors for config validation.
var (
	// ErrInvalidOutput is returned for an output format other than text, table, json or yaml.
	ErrInvalidOutput = errors.New("invalid output format (want text, table, json or yaml)")

	// ErrInvalidWindow is returned when sonar.window is below 1.
	ErrInvalidWindow = errors.New("sonar.window must be >= 1")
)
