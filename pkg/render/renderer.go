package render

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"math"
	"strconv"
	"strings"

	"github.com/microcosm-cc/bluemonday"

	"github.com/goliatone/go-formelement/pkg/attr"
	"github.com/goliatone/go-formelement/pkg/forms"
	"github.com/goliatone/go-formelement/pkg/render/template"
)

// Option configures a TemplateRenderer.
type Option func(*TemplateRenderer)

// WithSanitizer runs the rendered markup through policy. FormPolicy returns
// a policy suited to form controls.
func WithSanitizer(policy *bluemonday.Policy) Option {
	return func(r *TemplateRenderer) {
		r.policy = policy
	}
}

// WithLogger sets the logger used for debug output.
func WithLogger(logger *slog.Logger) Option {
	return func(r *TemplateRenderer) {
		if logger != nil {
			r.logger = logger
		}
	}
}

// WithData adds static values to every template invocation. Element values
// take precedence on key conflicts.
func WithData(data map[string]any) Option {
	return func(r *TemplateRenderer) {
		if len(data) == 0 {
			return
		}
		if r.extra == nil {
			r.extra = make(map[string]any, len(data))
		}
		for key, value := range data {
			r.extra[key] = value
		}
	}
}

// TemplateRenderer implements forms.Renderer by executing a template with the
// element's prepared attributes. The template may be a name known to the
// engine or inline content.
//
// Templates receive:
//
//	name     element name (positional argument 0)
//	label    element label, possibly empty
//	value    resolved value or nil
//	attrs    merged attributes including "value"
//	options  element options
//	filters  element filter names
//	args     positional arguments
type TemplateRenderer struct {
	engine   template.TemplateRenderer
	template string
	policy   *bluemonday.Policy
	extra    map[string]any
	logger   *slog.Logger
}

var _ forms.Renderer = (*TemplateRenderer)(nil)

// New constructs a TemplateRenderer for the given template name or content.
func New(engine template.TemplateRenderer, tmpl string, opts ...Option) (*TemplateRenderer, error) {
	if engine == nil {
		return nil, errors.New("render: template engine is required")
	}
	if strings.TrimSpace(tmpl) == "" {
		return nil, errors.New("render: template is required")
	}

	r := &TemplateRenderer{
		engine:   engine,
		template: tmpl,
		logger:   slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
	for _, opt := range opts {
		if opt == nil {
			continue
		}
		opt(r)
	}
	return r, nil
}

// Render satisfies forms.Renderer.
func (r *TemplateRenderer) Render(el *forms.Element, attributes attr.Attributes) (string, error) {
	if el == nil {
		return "", errors.New("render: element is required")
	}

	params := el.PrepareAttributes(attributes)
	data := r.templateData(el, params)

	out, err := r.engine.Render(r.template, data)
	if err != nil {
		return "", fmt.Errorf("render: element %q: %w", el.Name(), err)
	}
	if r.policy != nil {
		out = r.policy.Sanitize(out)
	}

	r.logger.Debug("render: element rendered",
		slog.String("element", el.Name()),
		slog.Int("bytes", len(out)),
		slog.Bool("sanitized", r.policy != nil),
	)
	return out, nil
}

func (r *TemplateRenderer) templateData(el *forms.Element, params attr.TagParams) map[string]any {
	data := make(map[string]any, len(r.extra)+7)
	for key, value := range r.extra {
		data[key] = value
	}

	args := make([]any, 0, len(params.Args))
	for _, arg := range params.Args {
		args = append(args, arg.Interface())
	}

	data["name"] = params.Name()
	data["label"] = el.Label()
	data["value"] = templateValue(params.Attrs.Get("value", attr.Null()).Interface())
	data["attrs"] = templateValue(params.Attrs.Interface())
	data["options"] = templateValue(el.Options().Interface())
	data["filters"] = append([]string(nil), el.Filters()...)
	data["args"] = args
	return data
}

// templateValue keeps numbers away from pongo2's fixed float formatting:
// integral numbers become int64, the rest their shortest decimal string.
func templateValue(value any) any {
	switch v := value.(type) {
	case float64:
		if v == math.Trunc(v) && math.Abs(v) < 1e15 {
			return int64(v)
		}
		return strconv.FormatFloat(v, 'g', -1, 64)
	case map[string]any:
		out := make(map[string]any, len(v))
		for key, nested := range v {
			out[key] = templateValue(nested)
		}
		return out
	default:
		return value
	}
}
