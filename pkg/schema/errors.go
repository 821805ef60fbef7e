package schema

import "errors"

var (
	// ErrInvalidTarget is returned when Struct receives nil or a non-struct value.
	ErrInvalidTarget = errors.New("schema: invalid validation target")

	// ErrGenerateSchema is returned when a JSON Schema cannot be rendered.
	ErrGenerateSchema = errors.New("schema: failed to generate JSON schema")
)
