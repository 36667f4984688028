package forms

import (
	"fmt"
	"log/slog"
	"strings"

	"github.com/goliatone/go-formelement/pkg/attr"
)

// Value resolves the effective value of the element. With an owning form the
// form's value is used unless the tag helper already holds an explicit value
// for the name; a null or missing result falls back to the default value.
func (e *Element) Value() attr.Value {
	value := attr.Null()
	source := "default"

	switch {
	case e.form == nil:
	case e.tags != nil && e.tags.HasValue(e.name):
		source = "tag"
	default:
		if formValue, ok := e.form.Value(e.name); ok && !formValue.IsNull() {
			value = formValue
			source = "form"
		}
	}
	if value.IsNull() {
		value = e.value
	}

	e.log().Debug("forms: value resolved",
		slog.String("element", e.name),
		slog.String("source", source),
	)
	return value
}

// PrepareAttributes builds the parameter set handed to tag helpers. The
// passed attributes (nil is treated as empty) are overlaid with the
// element's default attributes, which win on conflicts; the element name is
// placed at position 0 and the resolved value, when not null, is stored
// under "value". Stored state is not modified.
func (e *Element) PrepareAttributes(attributes attr.Attributes) attr.TagParams {
	merged := attributes.Merge(e.attributes)
	if value := e.Value(); !value.IsNull() {
		merged["value"] = value
	}
	return attr.TagParams{
		Args:  []attr.Value{attr.String(e.name)},
		Attrs: merged,
	}
}

// LabelHTML renders a <label> for the element, using the name when no label
// is set. Neither name nor label are escaped.
func (e *Element) LabelHTML() string {
	text := e.label
	if text == "" {
		text = e.name
	}

	var builder strings.Builder
	builder.WriteString(`<label for="`)
	builder.WriteString(e.name)
	builder.WriteString(`">`)
	builder.WriteString(text)
	builder.WriteString(`</label>`)
	return builder.String()
}

// Render produces the element markup through the configured renderer.
func (e *Element) Render(attributes attr.Attributes) (string, error) {
	if e.renderer == nil {
		return "", fmt.Errorf("%w: %q", ErrNoRenderer, e.name)
	}
	return e.renderer.Render(e, attributes)
}

// String renders the element without extra attributes. Render failures are
// logged and yield an empty string.
func (e *Element) String() string {
	out, err := e.Render(nil)
	if err != nil {
		e.log().Error("forms: render element",
			slog.String("element", e.name),
			slog.Any("error", err),
		)
		return ""
	}
	return out
}
