package interval

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strconv"
	"time"

	"github.com/invopop/jsonschema"
	"gopkg.in/yaml.v3"
)

// Duration is a configuration field that accepts any value Cast understands.
type Duration struct {
	time.Duration
}

// Of wraps d.
func Of(d time.Duration) Duration {
	return Duration{Duration: d}
}

// UnmarshalYAML decodes the scalar into its natural YAML type first, so
// `3600` arrives as an integer and `1h` as a string.
func (d *Duration) UnmarshalYAML(node *yaml.Node) error {
	if node.Kind != yaml.ScalarNode {
		return fmt.Errorf("%w: line %d: expected a scalar", ErrInvalidInterval, node.Line)
	}
	var raw any
	if err := node.Decode(&raw); err != nil {
		return err
	}
	v, err := Cast(raw)
	if err != nil {
		return fmt.Errorf("line %d: %w", node.Line, err)
	}
	d.Duration = v
	return nil
}

func (d Duration) MarshalYAML() (any, error) {
	return Format(d.Duration), nil
}

// UnmarshalJSON accepts a compact string or an integer number of seconds.
// A JSON null leaves d unchanged.
func (d *Duration) UnmarshalJSON(data []byte) error {
	if string(bytes.TrimSpace(data)) == "null" {
		return nil
	}
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()

	var raw any
	if err := dec.Decode(&raw); err != nil {
		return err
	}
	if n, ok := raw.(json.Number); ok {
		i, err := n.Int64()
		if err != nil {
			return invalid(n)
		}
		raw = i
	}

	v, err := Cast(raw)
	if err != nil {
		return err
	}
	d.Duration = v
	return nil
}

func (d Duration) MarshalJSON() ([]byte, error) {
	return json.Marshal(Format(d.Duration))
}

// UnmarshalText is used by environment and flag parsers where every value is
// text; text made only of ASCII digits is read as seconds. Signed numbers
// such as "+10" or "-10" are not digit-only and go through Cast as strings.
func (d *Duration) UnmarshalText(text []byte) error {
	s := string(text)
	var raw any = s
	if digitsOnly(s) {
		n, err := strconv.ParseInt(s, 10, 64)
		if err != nil {
			return invalid(s)
		}
		raw = n
	}
	v, err := Cast(raw)
	if err != nil {
		return err
	}
	d.Duration = v
	return nil
}

func digitsOnly(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}

func (d Duration) MarshalText() ([]byte, error) {
	return []byte(Format(d.Duration)), nil
}

// JSONSchema describes Duration for invopop/jsonschema reflection.
func (Duration) JSONSchema() *jsonschema.Schema {
	return &jsonschema.Schema{
		Description: "Interval as seconds or a compact string such as 10s, 5m, 2h, 3d",
		OneOf: []*jsonschema.Schema{
			{Type: "string", Pattern: compact.String()},
			{Type: "integer"},
		},
	}
}
