package importable

import (
	"context"
	"reflect"
)

// Invoker is implemented by registered objects that are callable without being funcs.
type Invoker interface {
	Invoke(ctx context.Context, args ...any) (any, error)
}

// IsClass reports whether v is a type handle, as registered with reflect.TypeFor.
func IsClass(v any) bool {
	_, ok := v.(reflect.Type)
	return ok
}

// IsFunction reports whether v is a non-nil func value.
func IsFunction(v any) bool {
	rv := reflect.ValueOf(v)
	return rv.Kind() == reflect.Func && !rv.IsNil()
}

// IsCallable reports whether v is a function or an Invoker.
func IsCallable(v any) bool {
	if IsFunction(v) {
		return true
	}
	_, ok := v.(Invoker)
	return ok
}
