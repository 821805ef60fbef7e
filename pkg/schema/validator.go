package schema

import (
	"errors"
	"fmt"
	"reflect"
	"strings"

	playground "github.com/go-playground/validator/v10"

	"github.com/dmitrymomot/declarative/pkg/date"
	"github.com/dmitrymomot/declarative/pkg/importable"
	"github.com/dmitrymomot/declarative/pkg/interval"
	"github.com/dmitrymomot/declarative/pkg/validator"
)

// check runs one custom tag and returns a validator.ValidationErrors on failure.
type check func(field string, value any) error

// Validator validates tagged structs with go-playground/validator and reports
// failures as validator.ValidationErrors.
type Validator struct {
	validate *playground.Validate
	registry *importable.Registry
	checks   map[string]check
}

// Option configures a Validator.
type Option func(*Validator)

// WithRegistry sets the registry used by the importable, class and callback tags.
// Nil registries are ignored.
func WithRegistry(reg *importable.Registry) Option {
	return func(v *Validator) {
		if reg != nil {
			v.registry = reg
		}
	}
}

// New creates a Validator with the custom tags registered:
//
//	date        date.Date only; strings are rejected
//	timedelta   time.Duration or interval.Duration
//	interval    anything interval.Cast accepts
//	importable  module:name string present in the registry
//	class       module:name string resolving to a reflect.Type
//	callback    module:name string resolving to a func or importable.Invoker
func New(opts ...Option) *Validator {
	v := &Validator{registry: importable.Default}
	for _, opt := range opts {
		opt(v)
	}

	v.checks = map[string]check{
		TagDate:      checkDate,
		TagTimeDelta: checkTimeDelta,
		TagInterval:  checkInterval,
		TagImportable: func(field string, value any) error {
			_, err := validator.Importable(field, value, v.registry)
			return err
		},
		TagClass: func(field string, value any) error {
			_, err := validator.Class(field, value, v.registry)
			return err
		},
		TagCallback: func(field string, value any) error {
			_, err := validator.Callback(field, value, v.registry)
			return err
		},
	}

	v.validate = playground.New(playground.WithRequiredStructEnabled())
	v.validate.RegisterTagNameFunc(fieldName)
	v.validate.RegisterCustomTypeFunc(dateValue, date.Date{})
	v.validate.RegisterCustomTypeFunc(durationValue, interval.Duration{})
	v.validate.RegisterCustomTypeFunc(refValue, importable.Ref{})

	for tag, chk := range v.checks {
		if err := v.validate.RegisterValidation(tag, asFunc(chk)); err != nil {
			panic(fmt.Sprintf("schema: register %q: %v", tag, err))
		}
	}
	return v
}

// Struct validates s. Failures are returned as validator.ValidationErrors with
// dotted field paths built from yaml (or json) tag names.
func (v *Validator) Struct(s any) error {
	return v.translate("", v.validate.Struct(s))
}

// Var validates a single value against a tag expression, reporting failures under field.
func (v *Validator) Var(field string, value any, tag string) error {
	return v.translate(field, v.validate.Var(value, tag))
}

func (v *Validator) translate(field string, err error) error {
	if err == nil {
		return nil
	}

	var fieldErrs playground.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		// InvalidValidationError: nil or non-struct input.
		return errors.Join(ErrInvalidTarget, err)
	}

	var report validator.ValidationErrors
	for _, fe := range fieldErrs {
		path := fieldPath(fe.Namespace())
		if path == "" {
			path = field
		}

		if chk, ok := v.checks[fe.Tag()]; ok {
			if cerr := chk(path, fe.Value()); cerr != nil {
				report.Merge(path, cerr)
				continue
			}
		}

		report.Add(validator.ValidationError{
			Field:          path,
			Message:        message(fe),
			Value:          fe.Value(),
			TranslationKey: "validation." + fe.Tag(),
			TranslationValues: map[string]any{
				"field": path,
				"param": fe.Param(),
			},
		})
	}
	return report.OrNil()
}

func asFunc(chk check) playground.Func {
	return func(fl playground.FieldLevel) bool {
		f := fl.Field()
		if !f.IsValid() || !f.CanInterface() {
			return false
		}
		return chk(fl.FieldName(), f.Interface()) == nil
	}
}

// checkDate accepts date.Date values only. They reach it as dateField, so a
// plain string field tagged date fails even when it reads like a date.
func checkDate(field string, value any) error {
	if s, ok := value.(dateField); ok {
		value = date.Date{}
		if s != "" {
			d, err := date.Parse(string(s))
			if err != nil {
				return validator.Apply(validator.Date(field, s))
			}
			value = d
		}
	}
	return validator.Apply(validator.Date(field, value))
}

func checkTimeDelta(field string, value any) error {
	return validator.Apply(validator.TimeDelta(field, value))
}

func checkInterval(field string, value any) error {
	_, err := validator.Interval(field, value)
	return err
}

// dateField is a date.Date as go-playground sees it. It is a string kind so
// required and omitempty work, and a distinct type so checkDate can tell it
// apart from plain strings.
type dateField string

// dateValue exposes a Date as its text form; zero dates become "".
func dateValue(f reflect.Value) any {
	d, ok := f.Interface().(date.Date)
	if !ok || d.IsZero() {
		return dateField("")
	}
	return dateField(d.String())
}

func durationValue(f reflect.Value) any {
	d, ok := f.Interface().(interval.Duration)
	if !ok {
		return nil
	}
	return d.Duration
}

func refValue(f reflect.Value) any {
	r, ok := f.Interface().(importable.Ref)
	if !ok {
		return nil
	}
	return r.Notation
}

func fieldName(fld reflect.StructField) string {
	for _, key := range []string{"yaml", "json"} {
		name, _, _ := strings.Cut(fld.Tag.Get(key), ",")
		if name == "-" {
			return ""
		}
		if name != "" {
			return name
		}
	}
	return ""
}

// fieldPath turns "Document.dags[etl].args.start_date" into "dags.etl.args.start_date".
func fieldPath(ns string) string {
	_, rest, ok := strings.Cut(ns, ".")
	if !ok {
		return ""
	}
	rest = strings.ReplaceAll(rest, "[", ".")
	return strings.ReplaceAll(rest, "]", "")
}
