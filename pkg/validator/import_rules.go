package validator

import (
	"fmt"
	"reflect"

	"github.com/dmitrymomot/declarative/pkg/importable"
)

const notationHint = "import notation must be in format: `package.module:target`"

// Importable resolves a "package.module:target" string against reg and
// returns the registered object. A nil reg means importable.Default.
// Failures are ValidationErrors whose message is the lookup error text.
func Importable(field string, value any, reg *importable.Registry) (any, error) {
	if reg == nil {
		reg = importable.Default
	}

	s, ok := value.(string)
	if !ok {
		return nil, fail(field, "value should be a string", "validation.string", value)
	}

	n, err := importable.ParseNotation(s)
	if err != nil {
		return nil, fail(field, notationHint, "validation.import_notation", value)
	}

	obj, err := reg.Resolve(n)
	if err != nil {
		return nil, fail(field, err.Error(), "validation.importable", value)
	}
	return obj, nil
}

// Class resolves value to a registered reflect.Type. A reflect.Type input is
// returned as is without touching the registry.
func Class(field string, value any, reg *importable.Registry) (reflect.Type, error) {
	if t, ok := value.(reflect.Type); ok {
		return t, nil
	}

	obj, err := Importable(field, value, reg)
	if err != nil {
		return nil, err
	}

	t, ok := obj.(reflect.Type)
	if !ok {
		return nil, fail(field, fmt.Sprintf("imported value should be a class, got %v", obj), "validation.class", obj)
	}
	return t, nil
}

// Callback resolves value to a registered callable. Only plain func inputs
// are returned as is; an Invoker passed directly still goes through
// Importable and fails there because it is not a string.
func Callback(field string, value any, reg *importable.Registry) (any, error) {
	if importable.IsFunction(value) {
		return value, nil
	}

	obj, err := Importable(field, value, reg)
	if err != nil {
		return nil, err
	}

	if !importable.IsCallable(obj) {
		return nil, fail(field, fmt.Sprintf("imported value should be a callable, got %v", obj), "validation.callback", obj)
	}
	return obj, nil
}

// ResolveRef fills ref.Value using resolve unless it is already set or empty.
func ResolveRef[T any](field string, ref *importable.Ref, reg *importable.Registry, resolve func(string, any, *importable.Registry) (T, error)) error {
	if ref.Resolved() || ref.Notation == "" {
		return nil
	}
	v, err := resolve(field, ref.Notation, reg)
	if err != nil {
		return err
	}
	ref.Value = v
	return nil
}

// ImportNotation checks the module:name syntax of value without resolving it.
func ImportNotation(field, value string) Rule {
	return Rule{
		Check: func() bool {
			_, err := importable.ParseNotation(value)
			return err == nil
		},
		Error: ValidationError{
			Field:          field,
			Message:        notationHint,
			Value:          value,
			TranslationKey: "validation.import_notation",
			TranslationValues: map[string]any{
				"field": field,
			},
		},
	}
}
