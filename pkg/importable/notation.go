package importable

import (
	"fmt"
	"strings"
)

// Notation is a parsed module:name reference.
type Notation struct {
	Module string
	Name   string
}

// ParseNotation splits s on its single colon. Both halves must be non-empty.
func ParseNotation(s string) (Notation, error) {
	module, name, ok := strings.Cut(s, ":")
	if !ok || module == "" || name == "" || strings.Contains(name, ":") {
		return Notation{}, fmt.Errorf("%w: %q", ErrInvalidNotation, s)
	}
	return Notation{Module: module, Name: name}, nil
}

func (n Notation) String() string {
	return n.Module + ":" + n.Name
}
