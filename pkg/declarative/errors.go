package declarative

import "errors"

var (
	// ErrDecode is returned when the input is not a well-formed document.
	ErrDecode = errors.New("failed to decode document")

	// ErrOpenFile is returned by LoadFile when the file cannot be opened.
	ErrOpenFile = errors.New("failed to open document")
)
