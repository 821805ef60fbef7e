package importable

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidNotation is returned when a reference is not in module:name form.
	ErrInvalidNotation = errors.New("invalid import notation")

	// ErrModuleNotFound is matched by *ModuleNotFoundError.
	ErrModuleNotFound = errors.New("module not found")

	// ErrAttributeNotFound is matched by *AttributeError.
	ErrAttributeNotFound = errors.New("attribute not found")
)

// ModuleNotFoundError reports a module path with no registered attributes.
type ModuleNotFoundError struct {
	Module string
}

func (e *ModuleNotFoundError) Error() string {
	return fmt.Sprintf("no module named %q", e.Module)
}

func (e *ModuleNotFoundError) Is(target error) bool {
	return target == ErrModuleNotFound
}

// AttributeError reports a name missing from a registered module.
type AttributeError struct {
	Module string
	Name   string
}

func (e *AttributeError) Error() string {
	return fmt.Sprintf("module %q has no attribute %q", e.Module, e.Name)
}

func (e *AttributeError) Is(target error) bool {
	return target == ErrAttributeNotFound
}
