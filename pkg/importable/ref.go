package importable

import (
	"fmt"

	"github.com/invopop/jsonschema"
	"gopkg.in/yaml.v3"
)

// Ref is a configuration field holding a module:name reference. Decoding only
// records Notation; Value is filled in when the reference is resolved.
type Ref struct {
	Notation string
	Value    any
}

// IsZero reports whether the reference was left empty.
func (r Ref) IsZero() bool {
	return r.Notation == "" && r.Value == nil
}

// Resolved reports whether Value has been set.
func (r Ref) Resolved() bool {
	return r.Value != nil
}

func (r Ref) String() string {
	return r.Notation
}

func (r *Ref) UnmarshalYAML(node *yaml.Node) error {
	if node.Kind != yaml.ScalarNode || node.ShortTag() != "!!str" {
		return fmt.Errorf("%w: line %d: expected a string", ErrInvalidNotation, node.Line)
	}
	r.Notation = node.Value
	r.Value = nil
	return nil
}

func (r Ref) MarshalYAML() (any, error) {
	return r.Notation, nil
}

func (r *Ref) UnmarshalText(text []byte) error {
	r.Notation = string(text)
	r.Value = nil
	return nil
}

func (r Ref) MarshalText() ([]byte, error) {
	return []byte(r.Notation), nil
}

// JSONSchema describes Ref for invopop/jsonschema reflection.
func (Ref) JSONSchema() *jsonschema.Schema {
	return &jsonschema.Schema{
		Type:        "string",
		Pattern:     `^[^:]+:[^:]+$`,
		Description: "Reference in package.module:target form",
	}
}
