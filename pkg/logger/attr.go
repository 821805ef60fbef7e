package logger

import (
	"log/slog"
)

// Error creates an attribute for a single error under the key "error".
// If err is nil, it returns an empty Attr.
func Error(err error) slog.Attr {
	if err == nil {
		return slog.Attr{}
	}
	return slog.Any("error", err)
}

// Component records the component name under the key "component".
func Component(name string) slog.Attr {
	return slog.String("component", name)
}

// Path records a file path under the key "path".
func Path(p string) slog.Attr {
	return slog.String("path", p)
}

// Field records a dotted configuration field under the key "field".
func Field(name string) slog.Attr {
	return slog.String("field", name)
}

// Count records a number of items under the given key.
func Count(key string, n int) slog.Attr {
	return slog.Int(key, n)
}

// Failures groups validation failures under "failures" as field=message pairs.
// Returns an empty Attr when there are none.
func Failures(pairs map[string][]string) slog.Attr {
	if len(pairs) == 0 {
		return slog.Attr{}
	}
	attrs := make([]slog.Attr, 0, len(pairs))
	for field, messages := range pairs {
		attrs = append(attrs, slog.Any(field, messages))
	}
	return slog.Attr{Key: "failures", Value: slog.GroupValue(attrs...)}
}
