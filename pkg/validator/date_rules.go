package validator

import (
	"fmt"

	"github.com/dmitrymomot/declarative/pkg/date"
)

// Date accepts calendar dates only; time.Time values are date-times and fail.
func Date(field string, value any) Rule {
	return Rule{
		Check: func() bool {
			_, ok := value.(date.Date)
			return ok
		},
		Error: ValidationError{
			Field:          field,
			Message:        "value should be a date",
			Value:          value,
			TranslationKey: "validation.date",
			TranslationValues: map[string]any{
				"field": field,
			},
		},
	}
}

// DateNotBefore passes when value is on or after start. Zero values are left to required checks.
func DateNotBefore(field string, value, start date.Date) Rule {
	return Rule{
		Check: func() bool {
			return value.IsZero() || start.IsZero() || !value.Before(start)
		},
		Error: ValidationError{
			Field:          field,
			Message:        fmt.Sprintf("date must not be before %s", start),
			Value:          value,
			TranslationKey: "validation.date_not_before",
			TranslationValues: map[string]any{
				"field": field,
				"start": start.String(),
			},
		},
	}
}
