package gotemplate

import (
	"fmt"
	"strings"

	"github.com/flosch/pongo2/v6"

	"github.com/goliatone/go-formelement/pkg/attr"
)

func registerDefaultFilters() {
	if !pongo2.FilterExists("trim") {
		_ = pongo2.RegisterFilter("trim", filterTrim)
	}
	if !pongo2.FilterExists("html_attrs") {
		_ = pongo2.RegisterFilter("html_attrs", filterHTMLAttrs)
	}
}

func filterTrim(in *pongo2.Value, _ *pongo2.Value) (*pongo2.Value, *pongo2.Error) {
	if in.Len() <= 0 {
		return pongo2.AsValue(""), nil
	}
	return pongo2.AsValue(strings.TrimSpace(in.String())), nil
}

// filterHTMLAttrs serialises a mapping into escaped ` key="value"` pairs and
// marks the result safe so autoescaping leaves it alone.
func filterHTMLAttrs(in *pongo2.Value, _ *pongo2.Value) (*pongo2.Value, *pongo2.Error) {
	if in == nil || in.IsNil() {
		return pongo2.AsSafeValue(""), nil
	}

	var attrs attr.Attributes
	switch raw := in.Interface().(type) {
	case attr.Attributes:
		attrs = raw
	case map[string]any:
		converted, err := attr.AttributesOf(raw)
		if err != nil {
			return nil, &pongo2.Error{Sender: "filter:html_attrs", OrigError: err}
		}
		attrs = converted
	default:
		return nil, &pongo2.Error{
			Sender:    "filter:html_attrs",
			OrigError: fmt.Errorf("expected a mapping, got %T", raw),
		}
	}
	return pongo2.AsSafeValue(attrs.Markup()), nil
}
