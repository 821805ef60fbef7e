package declarative

import "github.com/dmitrymomot/declarative/pkg/schema"

// JSONSchema renders the JSON Schema of Document for editor integration.
func JSONSchema() ([]byte, error) {
	return schema.Generate(&Document{})
}
