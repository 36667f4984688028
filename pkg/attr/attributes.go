package attr

import (
	"fmt"
	"html"
	"sort"
	"strings"
)

// Attributes holds HTML attribute-like pairs merged into rendered markup.
type Attributes map[string]Value

// Options holds auxiliary element configuration that never reaches markup
// directly.
type Options map[string]Value

// AttributesOf converts a dynamic mapping into Attributes.
func AttributesOf(raw map[string]any) (Attributes, error) {
	out := make(Attributes, len(raw))
	for key, value := range raw {
		converted, err := ValueOf(value)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", key, err)
		}
		out[key] = converted
	}
	return out, nil
}

// Get returns the value stored under key or fallback when absent.
func (a Attributes) Get(key string, fallback Value) Value {
	if value, ok := a[key]; ok {
		return value
	}
	return fallback
}

// Clone returns a shallow copy. A nil receiver yields an empty, non-nil map.
func (a Attributes) Clone() Attributes {
	out := make(Attributes, len(a))
	for key, value := range a {
		out[key] = value
	}
	return out
}

// Merge returns a new mapping holding a's entries overlaid with over's. Keys
// present in both take the value from over.
func (a Attributes) Merge(over Attributes) Attributes {
	out := a.Clone()
	for key, value := range over {
		out[key] = value
	}
	return out
}

// Keys returns the attribute names in sorted order.
func (a Attributes) Keys() []string {
	keys := make([]string, 0, len(a))
	for key := range a {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	return keys
}

// Markup serialises the attributes as ` key="value"` pairs in key order.
// Null values and false booleans are omitted, true booleans are written as
// bare attributes. Names and values are HTML escaped.
func (a Attributes) Markup() string {
	if len(a) == 0 {
		return ""
	}
	var builder strings.Builder
	for _, key := range a.Keys() {
		name := strings.TrimSpace(key)
		if name == "" {
			continue
		}
		value := a[key]
		switch value.Kind() {
		case KindNull:
			continue
		case KindBool:
			if on, _ := value.AsBool(); !on {
				continue
			}
			builder.WriteByte(' ')
			builder.WriteString(html.EscapeString(name))
			continue
		}
		builder.WriteByte(' ')
		builder.WriteString(html.EscapeString(name))
		builder.WriteString(`="`)
		builder.WriteString(html.EscapeString(value.String()))
		builder.WriteString(`"`)
	}
	return builder.String()
}

// Interface converts the attributes into a plain map for template engines.
func (a Attributes) Interface() map[string]any {
	out := make(map[string]any, len(a))
	for key, value := range a {
		out[key] = value.Interface()
	}
	return out
}

// OptionsOf converts a dynamic mapping into Options.
func OptionsOf(raw map[string]any) (Options, error) {
	attrs, err := AttributesOf(raw)
	if err != nil {
		return nil, err
	}
	return Options(attrs), nil
}

// Get returns the option stored under key or fallback when absent.
func (o Options) Get(key string, fallback Value) Value {
	return Attributes(o).Get(key, fallback)
}

// Clone returns a shallow copy. A nil receiver yields an empty, non-nil map.
func (o Options) Clone() Options {
	return Options(Attributes(o).Clone())
}

// Interface converts the options into a plain map for template engines.
func (o Options) Interface() map[string]any {
	return Attributes(o).Interface()
}

// TagParams is the parameter set handed to tag helpers: positional arguments
// (the element name sits at position 0) followed by named attributes.
type TagParams struct {
	Args  []Value
	Attrs Attributes
}

// Arg returns the positional argument at idx.
func (p TagParams) Arg(idx int) (Value, bool) {
	if idx < 0 || idx >= len(p.Args) {
		return Value{}, false
	}
	return p.Args[idx], true
}

// Name returns the positional name argument, falling back to the "name"
// attribute when no positional argument is present.
func (p TagParams) Name() string {
	if first, ok := p.Arg(0); ok && !first.IsNull() {
		return first.String()
	}
	return p.Attrs.Get("name", Null()).String()
}
