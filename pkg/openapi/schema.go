package openapi

import (
	"fmt"
	"strings"

	"github.com/getkin/kin-openapi/openapi3"

	"github.com/goliatone/go-formelement/pkg/attr"
	"github.com/goliatone/go-formelement/pkg/forms"
)

// FromSchema builds an element for a single schema property. Constraints
// become HTML attributes, descriptive data becomes options and the schema
// type picks the filters.
func FromSchema(name string, schema *openapi3.Schema, required bool, opts ...forms.Option) (*forms.Element, error) {
	if strings.TrimSpace(name) == "" {
		return nil, forms.NewValidationError("openapi", "property name must be a non-empty string")
	}
	if schema == nil {
		return nil, forms.NewValidationError("openapi", fmt.Sprintf("property %q has no schema", name))
	}

	el, err := forms.New(name, schemaAttributes(schema, required), opts...)
	if err != nil {
		return nil, err
	}

	def, err := attr.ValueOf(schema.Default)
	if err != nil {
		return nil, fmt.Errorf("openapi: property %q default: %w", name, err)
	}
	el.SetLabel(strings.TrimSpace(schema.Title)).SetDefault(def)

	if filters := schemaFilters(schema); len(filters) > 0 {
		el.SetFilters(filters...)
	}

	options, err := schemaOptions(schema)
	if err != nil {
		return nil, fmt.Errorf("openapi: property %q: %w", name, err)
	}
	if err := el.SetOptions(options); err != nil {
		return nil, err
	}
	return el, nil
}

func schemaAttributes(schema *openapi3.Schema, required bool) attr.Attributes {
	attributes := attr.Attributes{}
	if required {
		attributes["required"] = attr.Bool(true)
	}
	if schema.ReadOnly {
		attributes["readonly"] = attr.Bool(true)
	}
	if schema.MinLength != 0 {
		attributes["minlength"] = attr.Number(float64(schema.MinLength))
	}
	if schema.MaxLength != nil {
		attributes["maxlength"] = attr.Number(float64(*schema.MaxLength))
	}
	if schema.Pattern != "" {
		attributes["pattern"] = attr.String(schema.Pattern)
	}
	if schema.Min != nil {
		attributes["min"] = attr.Number(*schema.Min)
	}
	if schema.Max != nil {
		attributes["max"] = attr.Number(*schema.Max)
	}
	if example, ok := schema.Example.(string); ok && example != "" {
		attributes["placeholder"] = attr.String(example)
	}
	return attributes
}

func schemaOptions(schema *openapi3.Schema) (attr.Options, error) {
	options := attr.Options{}
	if description := strings.TrimSpace(schema.Description); description != "" {
		options["description"] = attr.String(description)
	}
	if schemaType := firstSchemaType(schema.Type); schemaType != "" {
		options["type"] = attr.String(schemaType)
	}
	if schema.Format != "" {
		options["format"] = attr.String(schema.Format)
	}
	if len(schema.Enum) > 0 {
		choices := make(map[string]attr.Value, len(schema.Enum))
		for _, raw := range schema.Enum {
			value, err := attr.ValueOf(raw)
			if err != nil {
				return nil, fmt.Errorf("enum: %w", err)
			}
			choices[value.String()] = value
		}
		options["choices"] = attr.Map(choices)
	}
	return options, nil
}

func schemaFilters(schema *openapi3.Schema) []string {
	switch firstSchemaType(schema.Type) {
	case openapi3.TypeInteger:
		return []string{"int"}
	case openapi3.TypeNumber:
		return []string{"float"}
	case openapi3.TypeString:
		if schema.Format == "email" {
			return []string{"email", "trim"}
		}
		return []string{"trim"}
	default:
		return nil
	}
}

func firstSchemaType(types *openapi3.Types) string {
	if types == nil {
		return ""
	}
	values := types.Slice()
	if len(values) == 0 {
		return ""
	}
	return values[0]
}
