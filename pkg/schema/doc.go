// Package schema connects the rules of package validator to
// github.com/go-playground/validator/v10 struct tags and renders JSON Schema
// with github.com/invopop/jsonschema.
//
//	type Task struct {
//	    Class   string    `yaml:"class" validate:"required,class"`
//	    Timeout any       `yaml:"timeout" validate:"omitempty,interval"`
//	    Starts  date.Date `yaml:"starts" validate:"omitempty,date"`
//	    OnFail  string    `yaml:"on_failure" validate:"omitempty,callback"`
//	}
//
//	v := schema.New(schema.WithRegistry(reg))
//	if err := v.Struct(task); err != nil {
//	    report := validator.ExtractValidationErrors(err)
//	    _ = report.Get("class")
//	}
//
// Field paths in the report use yaml (falling back to json) tag names and
// dots for map keys and slice indexes, for example "dags.etl.args.start_date".
// Custom tag failures carry the exact rule message, such as
// `no module named "operators"`.
//
// date.Date, interval.Duration and importable.Ref fields are converted
// before validation (to their text form, time.Duration and the notation
// string respectively), so built-in tags like required and omitempty work on
// them directly. The date tag passes only for date.Date values; a string
// field tagged date fails even when it holds a well-formed date.
package schema
