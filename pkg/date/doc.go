// Package date provides a calendar date type for configuration values.
//
// Go's time.Time always carries a clock and a location, so configuration
// fields that mean "a day" (a schedule start, an expiry) use Date instead.
// A Date is a plain comparable value:
//
//	start, err := date.Parse("2017-07-27")
//	if err != nil {
//	    // handle malformed input
//	}
//	fmt.Println(start.In(time.UTC)) // 2017-07-27 00:00:00 +0000 UTC
//
// Date implements encoding.TextMarshaler/TextUnmarshaler, yaml.v3 Marshaler
// and Unmarshaler, and exposes a JSONSchema method understood by
// github.com/invopop/jsonschema. The YAML decoder only accepts the
// YYYY-MM-DD form; full timestamps are rejected with ErrInvalidDate.
package date
