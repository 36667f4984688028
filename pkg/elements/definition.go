package elements

import (
	"fmt"
	"strings"

	"github.com/microcosm-cc/bluemonday"

	"github.com/goliatone/go-formelement/pkg/attr"
	"github.com/goliatone/go-formelement/pkg/forms"
	"github.com/goliatone/go-formelement/pkg/widgets"
)

// Definition is the declarative form of an element as read from a JSON or
// YAML document.
type Definition struct {
	Name       string
	Widget     string
	Label      string
	Default    attr.Value
	Attributes attr.Attributes
	Options    attr.Options
	Filters    []string
	Source     string
}

// Build creates the element described by d. The element copies the
// definition's maps, so elements built from one definition never share state.
func (d Definition) Build(opts ...forms.Option) (*forms.Element, error) {
	el, err := forms.New(d.Name, d.Attributes, opts...)
	if err != nil {
		return nil, err
	}
	el.SetLabel(d.Label).SetDefault(d.Default)
	if len(d.Filters) > 0 {
		el.SetFilters(d.Filters...)
	}
	if d.Options != nil {
		if err := el.SetOptions(d.Options); err != nil {
			return nil, err
		}
	}
	if d.Widget != "" {
		el.SetOption(widgets.OptionWidget, attr.String(d.Widget))
	}
	return el, nil
}

var labelPolicy = bluemonday.StrictPolicy()

// decodeDefinition applies the dynamic type checks the element API performs
// on untyped input: the name must be a string, options must be a mapping and
// filters a string or a list of strings. Attributes that are not a mapping
// are ignored, matching element construction.
func decodeDefinition(raw map[string]any, source string, index int) (Definition, error) {
	where := fmt.Sprintf("%s: element %d", source, index)

	name, ok := raw["name"].(string)
	if !ok {
		return Definition{}, forms.NewValidationError(where, "the element's name must be a string")
	}
	if strings.TrimSpace(name) == "" {
		return Definition{}, forms.NewValidationError(where, "the element's name must be a non-empty string")
	}
	where = fmt.Sprintf("%s: element %q", source, name)

	def := Definition{Name: name, Source: source}

	if widget, present := raw["widget"]; present && widget != nil {
		text, ok := widget.(string)
		if !ok {
			return Definition{}, forms.NewValidationError(where, "widget must be a string")
		}
		def.Widget = strings.TrimSpace(text)
	}

	if label, present := raw["label"]; present && label != nil {
		text, ok := label.(string)
		if !ok {
			return Definition{}, forms.NewValidationError(where, "label must be a string")
		}
		def.Label = labelPolicy.Sanitize(text)
	}

	value, err := attr.ValueOf(raw["default"])
	if err != nil {
		return Definition{}, forms.NewValidationError(where, fmt.Sprintf("default: %v", err))
	}
	def.Default = value

	if mapping, ok := asMapping(raw["attributes"]); ok {
		attributes, err := attr.AttributesOf(mapping)
		if err != nil {
			return Definition{}, forms.NewValidationError(where, fmt.Sprintf("attributes: %v", err))
		}
		def.Attributes = attributes
	}

	if options, present := raw["options"]; present && options != nil {
		mapping, ok := asMapping(options)
		if !ok {
			return Definition{}, forms.NewValidationError(where, "parameter 'options' must be a mapping")
		}
		converted, err := attr.OptionsOf(mapping)
		if err != nil {
			return Definition{}, forms.NewValidationError(where, fmt.Sprintf("options: %v", err))
		}
		def.Options = converted
	}

	filters, err := decodeFilters(raw["filters"])
	if err != nil {
		return Definition{}, forms.NewValidationError(where, err.Error())
	}
	def.Filters = filters

	return def, nil
}

func decodeFilters(raw any) ([]string, error) {
	switch v := raw.(type) {
	case nil:
		return nil, nil
	case string:
		return splitFilters(v), nil
	case []any:
		out := make([]string, 0, len(v))
		for _, entry := range v {
			text, ok := entry.(string)
			if !ok {
				return nil, fmt.Errorf("filters must be strings, got %T", entry)
			}
			if trimmed := strings.TrimSpace(text); trimmed != "" {
				out = append(out, trimmed)
			}
		}
		return out, nil
	default:
		return nil, fmt.Errorf("filters must be a string or a list of strings, got %T", raw)
	}
}

func splitFilters(raw string) []string {
	parts := strings.FieldsFunc(raw, func(r rune) bool {
		return r == ',' || r == '|' || r == ' '
	})
	if len(parts) == 0 {
		return nil
	}
	return parts
}

func asMapping(raw any) (map[string]any, bool) {
	switch v := raw.(type) {
	case map[string]any:
		return v, true
	case map[any]any:
		out := make(map[string]any, len(v))
		for key, value := range v {
			name, ok := key.(string)
			if !ok {
				return nil, false
			}
			out[name] = value
		}
		return out, true
	default:
		return nil, false
	}
}
