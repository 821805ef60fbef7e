package schema

import (
	"encoding/json"
	"errors"

	"github.com/invopop/jsonschema"
)

// Generate reflects v into an indented JSON Schema (draft 2020-12).
// Definitions are inlined and property names follow yaml tags; required properties are those tagged
// `jsonschema:"required"`. Value types such as date.Date and
// interval.Duration describe themselves through their JSONSchema methods.
func Generate(v any) ([]byte, error) {
	reflector := jsonschema.Reflector{
		ExpandedStruct:             true,
		DoNotReference:             true,
		FieldNameTag:               "yaml",
		RequiredFromJSONSchemaTags: true,
	}
	s := reflector.Reflect(v)

	out, err := json.MarshalIndent(s, "", "  ")
	if err != nil {
		return nil, errors.Join(ErrGenerateSchema, err)
	}
	return out, nil
}
