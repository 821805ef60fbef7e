package interval

import "errors"

// ErrInvalidInterval is returned when a value is neither a compact interval
// string, an integer number of seconds, nor a duration.
var ErrInvalidInterval = errors.New("invalid interval value")
