package forms

import "github.com/goliatone/go-formelement/pkg/attr"

// Form is the owning aggregate of an element. It supplies values (entity or
// submitted data) by field name; a null or missing value means "none".
type Form interface {
	Value(name string) (attr.Value, bool)
}

// FormFunc adapts a function to the Form interface.
type FormFunc func(name string) (attr.Value, bool)

func (f FormFunc) Value(name string) (attr.Value, bool) { return f(name) }

// MapForm is a Form backed by a fixed set of values.
type MapForm attr.Attributes

func (m MapForm) Value(name string) (attr.Value, bool) {
	value, ok := m[name]
	return value, ok
}

// ValueChecker answers whether a higher priority explicit value already
// exists for a field name. *tag.Registry satisfies it.
type ValueChecker interface {
	HasValue(name string) bool
}

// Validator is an opaque validation rule attached to an element and run by a
// separate validation pipeline.
type Validator interface {
	Validate(field string, value attr.Value) error
}

// ValidatorFunc adapts a function to the Validator interface.
type ValidatorFunc func(field string, value attr.Value) error

func (f ValidatorFunc) Validate(field string, value attr.Value) error { return f(field, value) }

// Renderer produces the markup for an element. Implementations usually call
// el.PrepareAttributes(attributes) and hand the result to a tag helper or
// template.
type Renderer interface {
	Render(el *Element, attributes attr.Attributes) (string, error)
}

// RendererFunc adapts a function to the Renderer interface.
type RendererFunc func(el *Element, attributes attr.Attributes) (string, error)

func (f RendererFunc) Render(el *Element, attributes attr.Attributes) (string, error) {
	return f(el, attributes)
}
