package date

import "errors"

// ErrInvalidDate is returned when a value cannot be read as a calendar date.
var ErrInvalidDate = errors.New("invalid date")
