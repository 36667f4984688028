package widgets

import (
	"sort"
	"strings"
	"sync"

	"github.com/goliatone/go-formelement/pkg/attr"
	"github.com/goliatone/go-formelement/pkg/forms"
)

// Built-in widget identifiers exposed by the registry.
const (
	WidgetCheckbox = "checkbox"
	WidgetSelect   = "select"
	WidgetTextarea = "textarea"
	WidgetPassword = "password"
	WidgetDate     = "date"
	WidgetNumber   = "number"
	WidgetEmail    = "email"
)

// OptionWidget is the element option holding an explicit widget name.
const OptionWidget = "widget"

// Matcher decides whether a widget should handle the supplied element.
type Matcher func(el *forms.Element) bool

type rule struct {
	name     string
	priority int
	match    Matcher
	order    int
}

// Registry selects widgets for elements based on an explicit "widget" option
// or registered matchers. Higher priority wins; ties fall back to
// registration order. An empty registry only honours explicit widgets.
type Registry struct {
	mu    sync.RWMutex
	rules []rule
}

// NewRegistry constructs a registry with the built-in matchers registered.
func NewRegistry() *Registry {
	reg := &Registry{}
	reg.registerBuiltins()
	return reg
}

// Register adds a matcher with the provided name and priority.
func (r *Registry) Register(name string, priority int, matcher Matcher) {
	if r == nil || matcher == nil {
		return
	}
	trimmed := strings.TrimSpace(name)
	if trimmed == "" {
		return
	}
	r.mu.Lock()
	defer r.mu.Unlock()

	r.rules = append(r.rules, rule{
		name:     trimmed,
		priority: priority,
		match:    matcher,
		order:    len(r.rules),
	})
}

// Resolve returns the widget name for an element.
func (r *Registry) Resolve(el *forms.Element) (string, bool) {
	if el == nil {
		return "", false
	}
	if explicit, _ := el.Option(OptionWidget, attr.Null()).AsString(); strings.TrimSpace(explicit) != "" {
		return strings.TrimSpace(explicit), true
	}
	if r == nil {
		return "", false
	}
	r.mu.RLock()
	if len(r.rules) == 0 {
		r.mu.RUnlock()
		return "", false
	}
	rules := append([]rule(nil), r.rules...)
	r.mu.RUnlock()
	sort.SliceStable(rules, func(i, j int) bool {
		if rules[i].priority == rules[j].priority {
			return rules[i].order < rules[j].order
		}
		return rules[i].priority > rules[j].priority
	})
	for _, entry := range rules {
		if entry.match(el) {
			return entry.name, true
		}
	}
	return "", false
}

func (r *Registry) registerBuiltins() {
	r.Register(WidgetCheckbox, 90, func(el *forms.Element) bool {
		return schemaType(el) == "boolean" || el.Default().Kind() == attr.KindBool
	})

	r.Register(WidgetSelect, 70, func(el *forms.Element) bool {
		choices, ok := el.Option("choices", attr.Null()).AsMap()
		return ok && len(choices) > 0
	})

	r.Register(WidgetTextarea, 65, func(el *forms.Element) bool {
		switch format(el) {
		case "textarea", "markdown", "html":
			return true
		}
		return false
	})

	r.Register(WidgetPassword, 60, func(el *forms.Element) bool {
		return format(el) == "password"
	})

	r.Register(WidgetDate, 60, func(el *forms.Element) bool {
		return format(el) == "date"
	})

	r.Register(WidgetNumber, 50, func(el *forms.Element) bool {
		if t := schemaType(el); t == "integer" || t == "number" {
			return true
		}
		return hasFilter(el, "int", "float")
	})

	r.Register(WidgetEmail, 40, func(el *forms.Element) bool {
		return format(el) == "email" || hasFilter(el, "email")
	})
}

func schemaType(el *forms.Element) string {
	value, _ := el.Option("type", attr.Null()).AsString()
	return strings.ToLower(strings.TrimSpace(value))
}

func format(el *forms.Element) string {
	value, _ := el.Option("format", attr.Null()).AsString()
	return strings.ToLower(strings.TrimSpace(value))
}

func hasFilter(el *forms.Element, names ...string) bool {
	for _, filter := range el.Filters() {
		for _, name := range names {
			if filter == name {
				return true
			}
		}
	}
	return false
}
