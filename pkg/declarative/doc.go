// Package declarative loads DAG definitions written in YAML and validates
// them with the rules from package validator.
//
// A document looks like this:
//
//	dags:
//	  etl:
//	    defaults:
//	      owner: data
//	      retries: 2
//	      retry_delay: 5m
//	    args:
//	      start_date: 2017-07-27
//	      schedule_interval: 1d
//	      on_failure_callback: hooks:page
//	    operators:
//	      extract:
//	        class: operators:Bash
//	        args:
//	          command: ./extract.sh
//	      load:
//	        class: operators:Bash
//	    sensors:
//	      ready:
//	        class: sensors:File
//	    flow:
//	      ready: [extract]
//	      extract: [load]
//
// Loading runs in stages. YAML decoding turns dates, compact intervals and
// module:name references into date.Date, interval.Duration and
// importable.Ref; a malformed value stops there with ErrDecode. References
// are then resolved against an importable.Registry (class for task classes,
// callback for the *_callback fields), struct tags are checked through
// package schema, and finally the flow is checked for unknown tasks,
// self dependencies and cycles. Failures from the last three stages are
// returned together as a single validator.ValidationErrors:
//
//	l := declarative.New(declarative.WithRegistry(reg), declarative.WithStrict(true))
//	doc, err := l.LoadFile("dags.yaml")
//	if report := validator.ExtractValidationErrors(err); report != nil {
//	    for _, field := range report.Fields() {
//	        fmt.Println(field, report.Get(field))
//	    }
//	}
//
// WithoutResolution skips the registry entirely and only checks reference
// syntax, which is what a linter without the application's registrations
// needs.
package declarative
