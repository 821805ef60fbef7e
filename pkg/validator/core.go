package validator

import (
	"errors"
	"fmt"
	"strings"
)

// ValidationError describes one rejected field value with translation support.
type ValidationError struct {
	Field             string
	Message           string
	Value             any
	TranslationKey    string
	TranslationValues map[string]any
}

func (e ValidationError) Error() string {
	if e.Field == "" {
		return e.Message
	}
	return e.Field + ": " + e.Message
}

// ValidationErrors is the aggregated report for one validation pass.
type ValidationErrors []ValidationError

func (ve ValidationErrors) Error() string {
	if len(ve) == 0 {
		return "validation failed"
	}

	parts := make([]string, 0, len(ve))
	for _, err := range ve {
		parts = append(parts, err.Error())
	}
	return "validation failed: " + strings.Join(parts, "; ")
}

func (ve *ValidationErrors) Add(err ValidationError) {
	*ve = append(*ve, err)
}

// Merge appends the entries of a ValidationErrors (or single ValidationError)
// found in err's chain. Other non-nil errors are recorded under field.
func (ve *ValidationErrors) Merge(field string, err error) {
	if err == nil {
		return
	}

	var many ValidationErrors
	if errors.As(err, &many) {
		*ve = append(*ve, many...)
		return
	}

	var one ValidationError
	if errors.As(err, &one) {
		ve.Add(one)
		return
	}

	ve.Add(ValidationError{
		Field:          field,
		Message:        err.Error(),
		TranslationKey: "validation.invalid",
		TranslationValues: map[string]any{
			"field": field,
		},
	})
}

func (ve ValidationErrors) Has(field string) bool {
	for _, err := range ve {
		if err.Field == field {
			return true
		}
	}
	return false
}

// Get returns the messages recorded for field in insertion order.
func (ve ValidationErrors) Get(field string) []string {
	var messages []string
	for _, err := range ve {
		if err.Field == field {
			messages = append(messages, err.Message)
		}
	}
	return messages
}

func (ve ValidationErrors) GetErrors(field string) []ValidationError {
	var found []ValidationError
	for _, err := range ve {
		if err.Field == field {
			found = append(found, err)
		}
	}
	return found
}

// Fields returns the distinct failing fields in first-seen order.
func (ve ValidationErrors) Fields() []string {
	var fields []string
	seen := make(map[string]bool)
	for _, err := range ve {
		if !seen[err.Field] {
			fields = append(fields, err.Field)
			seen[err.Field] = true
		}
	}
	return fields
}

// Messages groups messages by field.
func (ve ValidationErrors) Messages() map[string][]string {
	out := make(map[string][]string, len(ve))
	for _, err := range ve {
		out[err.Field] = append(out[err.Field], err.Message)
	}
	return out
}

func (ve ValidationErrors) IsEmpty() bool {
	return len(ve) == 0
}

// OrNil returns nil for an empty report so callers can return it as error directly.
func (ve ValidationErrors) OrNil() error {
	if ve.IsEmpty() {
		return nil
	}
	return ve
}

// Rule represents a single validation check.
type Rule struct {
	Check func() bool
	Error ValidationError
}

// Apply executes rules in order and returns the failures as ValidationErrors.
func Apply(rules ...Rule) error {
	var errs ValidationErrors

	for _, rule := range rules {
		if !rule.Check() {
			errs = append(errs, rule.Error)
		}
	}

	return errs.OrNil()
}

// ExtractValidationErrors extracts ValidationErrors from an error.
func ExtractValidationErrors(err error) ValidationErrors {
	if err == nil {
		return nil
	}

	var validationErr ValidationErrors
	if errors.As(err, &validationErr) {
		return validationErr
	}

	return nil
}

func IsValidationError(err error) bool {
	if err == nil {
		return false
	}

	var validationErr ValidationErrors
	return errors.As(err, &validationErr)
}

// fail wraps a single failure into a report, the shape every resolver returns.
func fail(field, message, key string, value any) ValidationErrors {
	return ValidationErrors{{
		Field:          field,
		Message:        message,
		Value:          value,
		TranslationKey: key,
		TranslationValues: map[string]any{
			"field": field,
			"value": fmt.Sprint(value),
		},
	}}
}
