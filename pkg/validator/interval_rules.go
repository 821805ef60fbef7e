package validator

import (
	"time"

	"github.com/dmitrymomot/declarative/pkg/interval"
)

// TimeDelta accepts values that already are durations. It does not parse strings or integers; use Interval for that.
func TimeDelta(field string, value any) Rule {
	return Rule{
		Check: func() bool {
			switch value.(type) {
			case time.Duration, interval.Duration:
				return true
			}
			return false
		},
		Error: ValidationError{
			Field:          field,
			Message:        "value should be a timedelta",
			Value:          value,
			TranslationKey: "validation.timedelta",
			TranslationValues: map[string]any{
				"field": field,
			},
		},
	}
}

// Interval casts value with interval.Cast and reports a failure as ValidationErrors.
func Interval(field string, value any) (time.Duration, error) {
	d, err := interval.Cast(value)
	if err != nil {
		return 0, fail(field, err.Error(), "validation.interval", value)
	}
	return d, nil
}

// PositiveInterval passes for durations greater than zero.
func PositiveInterval(field string, value time.Duration) Rule {
	return Rule{
		Check: func() bool {
			return value > 0
		},
		Error: ValidationError{
			Field:          field,
			Message:        "interval must be positive",
			Value:          value,
			TranslationKey: "validation.interval_positive",
			TranslationValues: map[string]any{
				"field": field,
			},
		},
	}
}
