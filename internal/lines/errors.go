package lines

import "errors"

// Sentinel errors for the lines package. Using sentinels instead of ad-hoc
// fmt.Errorf allows callers to match with errors.Is for reliable error handling.
var (
	// ErrNotInteger is returned when a line does not hold a base-10 integer.
	ErrNotInteger = errors.New("not an integer")
)
