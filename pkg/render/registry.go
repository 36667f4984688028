package render

import (
	"fmt"
	"sort"
	"strings"
	"sync"

	"github.com/goliatone/go-formelement/pkg/forms"
)

// Registry stores element renderers by widget name ("text", "textarea", ...)
// so declarative definitions can pick their markup by name.
type Registry struct {
	mu        sync.RWMutex
	renderers map[string]forms.Renderer
	fallback  string
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{
		renderers: make(map[string]forms.Renderer),
	}
}

// Register adds a renderer under name. Duplicate names return an error.
func (r *Registry) Register(name string, renderer forms.Renderer) error {
	if renderer == nil {
		return fmt.Errorf("render: renderer is required")
	}
	name = strings.TrimSpace(name)
	if name == "" {
		return fmt.Errorf("render: widget name is required")
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.renderers[name]; exists {
		return fmt.Errorf("render: widget %q already registered", name)
	}

	r.renderers[name] = renderer
	return nil
}

// MustRegister panics on registration failure. Useful for init-time wiring.
func (r *Registry) MustRegister(name string, renderer forms.Renderer) {
	if err := r.Register(name, renderer); err != nil {
		panic(err)
	}
}

// SetFallback names the widget Get returns for empty or unknown names.
func (r *Registry) SetFallback(name string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.fallback = strings.TrimSpace(name)
}

// Get retrieves the renderer registered under name, falling back to the
// configured fallback widget when set.
func (r *Registry) Get(name string) (forms.Renderer, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	if renderer, ok := r.renderers[strings.TrimSpace(name)]; ok {
		return renderer, nil
	}
	if r.fallback != "" {
		if renderer, ok := r.renderers[r.fallback]; ok {
			return renderer, nil
		}
	}
	return nil, fmt.Errorf("render: widget %q not found", name)
}

// List returns the sorted widget names.
func (r *Registry) List() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	names := make([]string, 0, len(r.renderers))
	for name := range r.renderers {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Has reports whether a widget is registered.
func (r *Registry) Has(name string) bool {
	r.mu.RLock()
	defer r.mu.RUnlock()

	_, ok := r.renderers[strings.TrimSpace(name)]
	return ok
}
