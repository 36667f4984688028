package tag

import (
	"net/url"
	"strings"
	"sync"

	"github.com/goliatone/go-formelement/pkg/attr"
)

// Registry records explicit values per field name: defaults assigned by the
// application and values bound from the current request. Elements consult it
// before asking their form for a value.
type Registry struct {
	mu       sync.RWMutex
	defaults map[string]attr.Value
	bound    map[string]attr.Value
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{
		defaults: make(map[string]attr.Value),
		bound:    make(map[string]attr.Value),
	}
}

// SetDefault assigns an explicit value for name.
func (r *Registry) SetDefault(name string, value attr.Value) {
	if r == nil {
		return
	}
	name = strings.TrimSpace(name)
	if name == "" {
		return
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	r.defaults[name] = value
}

// SetDefaults assigns several explicit values at once. Without merge the
// previous defaults are discarded first.
func (r *Registry) SetDefaults(values attr.Attributes, merge bool) {
	if r == nil {
		return
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	if !merge {
		r.defaults = make(map[string]attr.Value, len(values))
	}
	for name, value := range values {
		if name = strings.TrimSpace(name); name != "" {
			r.defaults[name] = value
		}
	}
}

// Bind records submitted request values. Only the first value of each key is
// kept; bound values take precedence over defaults.
func (r *Registry) Bind(values url.Values) {
	if r == nil {
		return
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	for name, submitted := range values {
		name = strings.TrimSpace(name)
		if name == "" || len(submitted) == 0 {
			continue
		}
		r.bound[name] = attr.String(submitted[0])
	}
}

// HasValue reports whether an explicit value exists for name.
func (r *Registry) HasValue(name string) bool {
	if r == nil {
		return false
	}
	r.mu.RLock()
	defer r.mu.RUnlock()
	if _, ok := r.bound[name]; ok {
		return true
	}
	_, ok := r.defaults[name]
	return ok
}

// Value returns the explicit value for name, preferring bound request values.
func (r *Registry) Value(name string) (attr.Value, bool) {
	if r == nil {
		return attr.Null(), false
	}
	r.mu.RLock()
	defer r.mu.RUnlock()
	if value, ok := r.bound[name]; ok {
		return value, true
	}
	value, ok := r.defaults[name]
	return value, ok
}

// Reset clears defaults and bound values.
func (r *Registry) Reset() {
	if r == nil {
		return
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	r.defaults = make(map[string]attr.Value)
	r.bound = make(map[string]attr.Value)
}

var std = NewRegistry()

// Default returns the process-wide registry used when callers do not inject
// their own.
func Default() *Registry { return std }

// SetDefault assigns an explicit value on the process-wide registry.
func SetDefault(name string, value attr.Value) { std.SetDefault(name, value) }

// SetDefaults assigns explicit values on the process-wide registry.
func SetDefaults(values attr.Attributes, merge bool) { std.SetDefaults(values, merge) }

// Bind records request values on the process-wide registry.
func Bind(values url.Values) { std.Bind(values) }

// HasValue queries the process-wide registry.
func HasValue(name string) bool { return std.HasValue(name) }

// Value reads from the process-wide registry.
func Value(name string) (attr.Value, bool) { return std.Value(name) }

// Reset clears the process-wide registry.
func Reset() { std.Reset() }
