package forms

import (
	"io"
	"log/slog"

	"github.com/goliatone/go-formelement/pkg/attr"
	"github.com/goliatone/go-formelement/pkg/tag"
)

var discardLogger = slog.New(slog.NewTextHandler(io.Discard, nil))

// Option configures an Element at construction time.
type Option func(*Element)

// WithTagValues overrides the explicit value checker consulted by Value. The
// process-wide tag registry is used by default.
func WithTagValues(checker ValueChecker) Option {
	return func(el *Element) {
		if checker != nil {
			el.tags = checker
		}
	}
}

// WithRenderer sets the renderer used by Render and String.
func WithRenderer(renderer Renderer) Option {
	return func(el *Element) {
		el.renderer = renderer
	}
}

// WithLogger sets the logger used for debug output.
func WithLogger(logger *slog.Logger) Option {
	return func(el *Element) {
		if logger != nil {
			el.logger = logger
		}
	}
}

// Element holds the configuration of a single form field: name, label,
// default value, attributes, validators, filters and options. The owning form
// is referenced, never owned.
type Element struct {
	form       Form
	name       string
	value      attr.Value
	label      string
	attributes attr.Attributes
	validators []Validator
	filters    []string
	options    attr.Options

	tags     ValueChecker
	renderer Renderer
	logger   *slog.Logger
}

// New creates an element. Any string is accepted as the name, including an
// empty one. The initial attributes are copied when non-nil, so later writes
// on the element never reach the caller's map.
func New(name string, attributes attr.Attributes, opts ...Option) (*Element, error) {
	el := &Element{
		name:   name,
		tags:   tag.Default(),
		logger: discardLogger,
	}
	if attributes != nil {
		el.attributes = attributes.Clone()
	}
	for _, opt := range opts {
		if opt == nil {
			continue
		}
		opt(el)
	}
	return el, nil
}

// MustNew is like New but panics on error. Useful for static definitions.
func MustNew(name string, attributes attr.Attributes, opts ...Option) *Element {
	el, err := New(name, attributes, opts...)
	if err != nil {
		panic(err)
	}
	return el
}

func (e *Element) log() *slog.Logger {
	if e.logger == nil {
		return discardLogger
	}
	return e.logger
}

// SetForm attaches the owning form. Passing nil detaches it.
func (e *Element) SetForm(form Form) *Element {
	e.form = form
	return e
}

// Form returns the owning form, or nil.
func (e *Element) Form() Form { return e.form }

// SetName renames the element.
func (e *Element) SetName(name string) *Element {
	e.name = name
	return e
}

// Name returns the element name.
func (e *Element) Name() string { return e.name }

// SetFilters replaces the sanitizing filter names applied to submitted values.
func (e *Element) SetFilters(filters ...string) *Element {
	e.filters = append([]string(nil), filters...)
	return e
}

// Filters returns a copy of the filter names.
func (e *Element) Filters() []string { return append([]string(nil), e.filters...) }

// AddValidators registers a group of validators. With merge the group is
// appended after the current validators, otherwise it replaces them. A nil
// group fails with a ValidationError.
func (e *Element) AddValidators(validators []Validator, merge bool) error {
	if validators == nil {
		return NewValidationError("add validators", "the validators parameter must be a list")
	}
	for _, validator := range validators {
		if isNilValidator(validator) {
			return NewValidationError("add validators", "validators must not contain nil entries")
		}
	}
	if merge {
		e.validators = append(e.validators, validators...)
		return nil
	}
	e.validators = append([]Validator(nil), validators...)
	return nil
}

// AddValidator appends a single validator. A nil validator fails with a
// ValidationError.
func (e *Element) AddValidator(validator Validator) error {
	if isNilValidator(validator) {
		return NewValidationError("add validator", "the validator parameter must be an object")
	}
	e.validators = append(e.validators, validator)
	return nil
}

// Validators returns a copy of the registered validators in insertion order.
func (e *Element) Validators() []Validator { return append([]Validator(nil), e.validators...) }

func isNilValidator(validator Validator) bool {
	if validator == nil {
		return true
	}
	if fn, ok := validator.(ValidatorFunc); ok && fn == nil {
		return true
	}
	return false
}

// SetAttribute sets a single default attribute.
func (e *Element) SetAttribute(key string, value attr.Value) *Element {
	if e.attributes == nil {
		e.attributes = make(attr.Attributes)
	}
	e.attributes[key] = value
	return e
}

// Attribute returns the attribute stored under key or fallback when absent.
func (e *Element) Attribute(key string, fallback attr.Value) attr.Value {
	return e.attributes.Get(key, fallback)
}

// SetAttributes replaces all default attributes with a copy of attributes. A
// nil mapping fails with a ValidationError.
func (e *Element) SetAttributes(attributes attr.Attributes) error {
	if attributes == nil {
		return NewValidationError("set attributes", "parameter 'attributes' must be a mapping")
	}
	e.attributes = attributes.Clone()
	return nil
}

// Attributes returns the default attributes, possibly nil.
func (e *Element) Attributes() attr.Attributes { return e.attributes }

// SetOption sets a single option.
func (e *Element) SetOption(key string, value attr.Value) *Element {
	if e.options == nil {
		e.options = make(attr.Options)
	}
	e.options[key] = value
	return e
}

// Option returns the option stored under key or fallback when absent.
func (e *Element) Option(key string, fallback attr.Value) attr.Value {
	return e.options.Get(key, fallback)
}

// SetOptions replaces all options with a copy of options. A nil mapping fails
// with a ValidationError.
func (e *Element) SetOptions(options attr.Options) error {
	if options == nil {
		return NewValidationError("set options", "parameter 'options' must be a mapping")
	}
	e.options = options.Clone()
	return nil
}

// Options returns the options, possibly nil.
func (e *Element) Options() attr.Options { return e.options }

// SetLabel sets the text shown by LabelHTML.
func (e *Element) SetLabel(label string) *Element {
	e.label = label
	return e
}

// Label returns the label text, empty when unset.
func (e *Element) Label() string { return e.label }

// SetDefault sets the value used when neither the form nor the tag helper
// provides one.
func (e *Element) SetDefault(value attr.Value) *Element {
	e.value = value
	return e
}

// Default returns the value set by SetDefault, ignoring the form.
func (e *Element) Default() attr.Value { return e.value }
