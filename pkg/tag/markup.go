package tag

import (
	"html"
	"strings"

	"github.com/goliatone/go-formelement/pkg/attr"
)

// Input renders an <input> tag of the given type from prepared parameters.
// The positional name becomes both id and name unless the attributes set
// them. When no "value" attribute is present the registry's explicit value
// for the name is used.
func (r *Registry) Input(inputType string, params attr.TagParams) string {
	name := params.Name()
	attrs := params.Attrs.Clone()

	if _, ok := attrs["id"]; !ok && name != "" {
		attrs["id"] = attr.String(name)
	}
	if _, ok := attrs["name"]; !ok && name != "" {
		attrs["name"] = attr.String(name)
	}
	if _, ok := attrs["value"]; !ok {
		if value, found := r.Value(name); found {
			attrs["value"] = value
		}
	}
	if inputType = strings.TrimSpace(inputType); inputType != "" {
		attrs["type"] = attr.String(inputType)
	}

	var builder strings.Builder
	builder.WriteString(`<input`)
	builder.WriteString(attrs.Markup())
	builder.WriteString(`>`)
	return builder.String()
}

// Label renders an escaped <label> tag.
func Label(forID, text string) string {
	var builder strings.Builder
	builder.WriteString(`<label for="`)
	builder.WriteString(html.EscapeString(forID))
	builder.WriteString(`">`)
	builder.WriteString(html.EscapeString(text))
	builder.WriteString(`</label>`)
	return builder.String()
}

// Input renders an <input> tag using the process-wide registry.
func Input(inputType string, params attr.TagParams) string {
	return std.Input(inputType, params)
}
