package importable

import (
	"fmt"
	"maps"
	"slices"
	"strings"
	"sync"
)

// Module is a read-only view of the attributes registered under one module path.
type Module struct {
	Path  string
	attrs map[string]any
}

// Attr returns the named attribute or ErrAttributeNotFound.
func (m Module) Attr(name string) (any, error) {
	obj, ok := m.attrs[name]
	if !ok {
		return nil, &AttributeError{Module: m.Path, Name: name}
	}
	return obj, nil
}

// Names returns the attribute names in sorted order.
func (m Module) Names() []string {
	return slices.Sorted(maps.Keys(m.attrs))
}

// Registry maps module paths and attribute names to Go values.
// Populate it at startup; registration and lookups are safe for concurrent use.
type Registry struct {
	mu      sync.RWMutex
	modules map[string]map[string]any
}

// NewRegistry returns an empty Registry.
func NewRegistry() *Registry {
	return &Registry{modules: make(map[string]map[string]any)}
}

// Register sets or replaces module:name. Panics on an empty or colon-containing
// module or name, or a nil obj, since registration mistakes are programming errors.
func (r *Registry) Register(module, name string, obj any) {
	checkPart("module", module)
	checkPart("name", name)
	if obj == nil {
		panic(fmt.Sprintf("importable: object for %s:%s cannot be nil", module, name))
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	attrs, ok := r.modules[module]
	if !ok {
		attrs = make(map[string]any)
		r.modules[module] = attrs
	}
	attrs[name] = obj
}

// RegisterModule registers every entry of attrs under module.
func (r *Registry) RegisterModule(module string, attrs map[string]any) {
	for _, name := range slices.Sorted(maps.Keys(attrs)) {
		r.Register(module, name, attrs[name])
	}
}

// Import returns the module registered under path or ErrModuleNotFound.
func (r *Registry) Import(path string) (Module, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	attrs, ok := r.modules[path]
	if !ok {
		return Module{}, &ModuleNotFoundError{Module: path}
	}
	return Module{Path: path, attrs: maps.Clone(attrs)}, nil
}

// Lookup parses notation and returns the registered object.
func (r *Registry) Lookup(notation string) (any, error) {
	n, err := ParseNotation(notation)
	if err != nil {
		return nil, err
	}
	return r.Resolve(n)
}

// Resolve returns the object registered for n.
func (r *Registry) Resolve(n Notation) (any, error) {
	mod, err := r.Import(n.Module)
	if err != nil {
		return nil, err
	}
	return mod.Attr(n.Name)
}

// Modules returns the registered module paths in sorted order.
func (r *Registry) Modules() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return slices.Sorted(maps.Keys(r.modules))
}

func checkPart(kind, s string) {
	if s == "" || strings.Contains(s, ":") {
		panic(fmt.Sprintf("importable: invalid %s %q", kind, s))
	}
}

// Default is the process-wide registry used by the package-level helpers.
var Default = NewRegistry()

// Register adds module:name to Default.
func Register(module, name string, obj any) {
	Default.Register(module, name, obj)
}

// RegisterModule adds every entry of attrs under module to Default.
func RegisterModule(module string, attrs map[string]any) {
	Default.RegisterModule(module, attrs)
}

// Lookup resolves notation against Default.
func Lookup(notation string) (any, error) {
	return Default.Lookup(notation)
}
