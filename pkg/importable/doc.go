// Package importable resolves "package.module:target" references to Go values.
//
// Go programs cannot import code by name at run time, so references are
// resolved against a Registry that the embedding application fills at
// startup. Only registered values can be reached: a configuration file can
// pick one of them but cannot load anything new. Unlike a dynamic import,
// resolution runs no code.
//
// # Registering
//
//	func init() {
//	    importable.RegisterModule("operators.bash", map[string]any{
//	        "BashOperator": reflect.TypeFor[BashOperator](),
//	        "notify":       notify,
//	    })
//	}
//
// Classes are registered as reflect.Type values. Callables are func values or
// values implementing Invoker.
//
// # Resolving
//
//	obj, err := importable.Lookup("operators.bash:BashOperator")
//	switch {
//	case errors.Is(err, importable.ErrInvalidNotation):
//	case errors.Is(err, importable.ErrModuleNotFound):
//	case errors.Is(err, importable.ErrAttributeNotFound):
//	}
//
// A notation has exactly one colon with a non-empty module path on the left
// and a non-empty attribute name on the right.
//
// Lookups are safe for concurrent use. Register everything before serving
// lookups so that validation results do not depend on timing.
//
// Ref is a configuration field type carrying a notation and, once resolved,
// its value. See package validator for the Importable, Class and Callback
// rules built on this package.
package importable
