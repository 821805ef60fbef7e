package schema

import (
	"fmt"
	"reflect"

	playground "github.com/go-playground/validator/v10"
)

// message renders the built-in go-playground tags in the same register as the rule messages.
func message(fe playground.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "field is required"
	case "min", "gte":
		return boundMessage(fe.Kind(), "at least", fe.Param())
	case "max", "lte":
		return boundMessage(fe.Kind(), "at most", fe.Param())
	case "oneof":
		return fmt.Sprintf("must be one of: %s", fe.Param())
	case "email":
		return "must be a valid email address"
	case "nefield":
		return fmt.Sprintf("must differ from %s", fe.Param())
	}
	return fmt.Sprintf("failed on the %q rule", fe.Tag())
}

func boundMessage(kind reflect.Kind, bound, param string) string {
	switch kind {
	case reflect.String:
		return fmt.Sprintf("must be %s %s characters long", bound, param)
	case reflect.Slice, reflect.Map, reflect.Array:
		return fmt.Sprintf("must contain %s %s items", bound, param)
	}
	return fmt.Sprintf("must be %s %s", bound, param)
}
