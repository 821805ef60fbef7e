// Package interval casts configuration values into time.Duration.
//
// Three shapes are accepted:
//
//   - compact strings matching ^(-)?(\d+)([dhms])$, for example "10s", "42m",
//     "1h", "10d" or "-5s". Unit letters are lowercase only and compound
//     forms such as "1h30m" are not supported;
//   - integers of any Go integer kind, read as seconds;
//   - time.Duration and Duration values, returned unchanged.
//
// Everything else fails with ErrInvalidInterval:
//
//	d, err := interval.Cast("42m")   // 42 * time.Minute
//	d, err = interval.Cast(3600)     // time.Hour
//	_, err = interval.Cast(1.5)      // invalid interval value 1.5
//
// Magnitudes are bounded by the time.Duration range (roughly 292 years);
// larger values are rejected rather than wrapped.
//
// The Duration wrapper plugs Cast into yaml.v3, encoding/json and text based
// decoders (such as caarlos0/env), and describes itself to
// github.com/invopop/jsonschema.
package interval
