package validator

import (
	"fmt"
	"regexp"
)

// MaxKeyLen is the longest DAG id or task name accepted by Key.
const MaxKeyLen = 250

var keyRegex = regexp.MustCompile(`^[A-Za-z0-9_.-]+$`)

// Key validates DAG ids and task names: non-empty, at most MaxKeyLen bytes,
// alphanumerics, dashes, dots and underscores only.
func Key(field, value string) Rule {
	return Rule{
		Check: func() bool {
			return keyRegex.MatchString(value)
		},
		Error: ValidationError{
			Field:          field,
			Message:        "must be made of alphanumeric characters, dashes, dots and underscores exclusively",
			Value:          value,
			TranslationKey: "validation.key",
			TranslationValues: map[string]any{
				"field": field,
			},
		},
	}
}

func MaxLen(field, value string, max int) Rule {
	return Rule{
		Check: func() bool {
			return len(value) <= max
		},
		Error: ValidationError{
			Field:          field,
			Message:        fmt.Sprintf("must be at most %d characters long", max),
			Value:          value,
			TranslationKey: "validation.max_length",
			TranslationValues: map[string]any{
				"field": field,
				"max":   max,
			},
		},
	}
}

// OneOf passes when value equals one of options. An empty value is left to
// required checks.
func OneOf[T comparable](field string, value T, options []T) Rule {
	return Rule{
		Check: func() bool {
			var zero T
			if value == zero {
				return true
			}
			for _, o := range options {
				if value == o {
					return true
				}
			}
			return false
		},
		Error: ValidationError{
			Field:          field,
			Message:        fmt.Sprintf("must be one of: %v", options),
			Value:          value,
			TranslationKey: "validation.one_of",
			TranslationValues: map[string]any{
				"field":   field,
				"options": options,
			},
		},
	}
}
