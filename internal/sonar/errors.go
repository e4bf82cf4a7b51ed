package sonar

import "errors"

// Sentinel errors for the sonar package.
var (
	// ErrInvalidWidth is returned when a sliding window is narrower than one measurement.
	ErrInvalidWidth = errors.New("window width must be >= 1")
)
