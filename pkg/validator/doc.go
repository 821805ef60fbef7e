// Package validator provides the rule layer for declarative configuration:
// small Rule values and resolver functions whose failures are collected into
// a translation-friendly ValidationErrors report.
//
// # Building blocks
//
//   - Rule              – a Check func plus the ValidationError to report
//   - ValidationError   – field, message, rejected value and i18n key
//   - ValidationErrors  – slice type implementing error; the report for one pass
//   - Apply             – evaluates rules and aggregates failures
//
// # Checks
//
// Date and TimeDelta only inspect a value that has already been decoded:
//
//	err := validator.Apply(
//	    validator.Date("start_date", args.StartDate),
//	    validator.TimeDelta("retry_delay", args.RetryDelay),
//	)
//
// Key, MaxLen and OneOf cover DAG ids, task names and enumerated settings.
// ImportNotation checks reference syntax without a registry.
//
// # Resolvers
//
// Interval, Importable, Class and Callback transform their input and return
// the result alongside a ValidationErrors failure:
//
//	d, err := validator.Interval("schedule_interval", "1d")                 // 24h
//	op, err := validator.Class("class", "operators.bash:BashOperator", reg)  // reflect.Type
//	cb, err := validator.Callback("on_failure_callback", "alerts:page", reg) // func or importable.Invoker
//
// Importable surfaces registry lookup errors verbatim as the failure message.
// Class short-circuits on a reflect.Type input and Callback on a plain func
// input; neither consults the registry in that case.
//
// # Error Handling
//
// Every failure carries the rejected value. Use ExtractValidationErrors or
// errors.As to get the report back from a wrapped error, and Merge to fold
// several reports into one.
package validator
