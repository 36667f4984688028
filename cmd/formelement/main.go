package main

import (
	"context"
	"embed"
	"errors"
	"flag"
	"fmt"
	"io"
	"io/fs"
	"log/slog"
	"net/url"
	"os"
	"os/signal"
	"strings"

	"github.com/goliatone/go-formelement/pkg/attr"
	"github.com/goliatone/go-formelement/pkg/elements"
	"github.com/goliatone/go-formelement/pkg/forms"
	"github.com/goliatone/go-formelement/pkg/openapi"
	"github.com/goliatone/go-formelement/pkg/render"
	"github.com/goliatone/go-formelement/pkg/render/template/gotemplate"
	"github.com/goliatone/go-formelement/pkg/tag"
	"github.com/goliatone/go-formelement/pkg/widgets"
)

//go:embed templates/*.tpl
var templatesFS embed.FS

var inputWidgets = []string{
	"text",
	"hidden",
	widgets.WidgetNumber,
	widgets.WidgetEmail,
	widgets.WidgetPassword,
	widgets.WidgetDate,
	widgets.WidgetCheckbox,
}

type config struct {
	definitions string
	values      string
	bind        string
	openapiDoc  string
	operation   string
	interactive bool
	sanitize    bool
	logLevel    string
}

func main() {
	var cfg config
	flag.StringVar(&cfg.definitions, "definitions", "", "element definitions file or directory (JSON/YAML)")
	flag.StringVar(&cfg.values, "values", "", "JSON/YAML file with form values per element")
	flag.StringVar(&cfg.bind, "bind", "", "submitted values as a query string (a=1&b=2); they suppress form values")
	flag.StringVar(&cfg.openapiDoc, "openapi", "", "OpenAPI document to derive elements from")
	flag.StringVar(&cfg.operation, "operation", "", "operation ID used with -openapi")
	flag.BoolVar(&cfg.interactive, "interactive", false, "prompt for every element value")
	flag.BoolVar(&cfg.sanitize, "sanitize", false, "sanitize rendered markup")
	flag.StringVar(&cfg.logLevel, "log-level", "info", "log level (debug, info, warn, error)")
	flag.Parse()

	logger, err := newLogger(cfg.logLevel, os.Stderr)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := run(ctx, cfg, os.Stdout, logger, surveyPrompter{}); err != nil {
		logger.Error("formelement failed", slog.Any("error", err))
		stop()
		os.Exit(1)
	}
}

func newLogger(level string, w io.Writer) (*slog.Logger, error) {
	var lvl slog.Level
	if err := lvl.UnmarshalText([]byte(strings.TrimSpace(level))); err != nil {
		return nil, fmt.Errorf("formelement: invalid log level %q", level)
	}
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: lvl})), nil
}

func run(ctx context.Context, cfg config, out io.Writer, logger *slog.Logger, p prompter) error {
	if (cfg.definitions == "") == (cfg.openapiDoc == "") {
		return errors.New("formelement: exactly one of -definitions or -openapi is required")
	}

	tags := tag.NewRegistry()
	if cfg.bind != "" {
		submitted, err := url.ParseQuery(cfg.bind)
		if err != nil {
			return fmt.Errorf("formelement: parse -bind: %w", err)
		}
		tags.Bind(submitted)
	}

	form := forms.MapForm{}
	if cfg.values != "" {
		data, err := os.ReadFile(cfg.values)
		if err != nil {
			return fmt.Errorf("formelement: read values: %w", err)
		}
		values, err := elements.ParseValues(data, cfg.values)
		if err != nil {
			return err
		}
		for name, value := range values {
			form[name] = value
		}
		logger.Debug("values loaded", slog.String("file", cfg.values), slog.Int("count", len(values)))
	}

	renderers, err := newWidgetRenderers(tags, cfg.sanitize, logger)
	if err != nil {
		return err
	}

	opts := []forms.Option{
		forms.WithTagValues(tags),
		forms.WithLogger(logger),
		forms.WithRenderer(dispatchRenderer(widgets.NewRegistry(), renderers)),
	}

	var els []*forms.Element
	if cfg.definitions != "" {
		els, err = buildDefinitions(cfg.definitions, opts)
	} else {
		els, err = buildOpenAPI(ctx, cfg.openapiDoc, cfg.operation, opts)
	}
	if err != nil {
		return err
	}
	for _, el := range els {
		el.SetForm(form)
	}
	logger.Info("elements loaded", slog.Int("count", len(els)))

	if cfg.interactive {
		store := func(name string, value attr.Value) { form[name] = value }
		if err := promptValues(ctx, p, els, store); err != nil {
			return err
		}
	}

	for _, el := range els {
		markup, err := el.Render(nil)
		if err != nil {
			return err
		}
		if _, err := fmt.Fprintf(out, "%s\n%s\n", el.LabelHTML(), markup); err != nil {
			return err
		}
	}
	return nil
}

func newWidgetRenderers(tags *tag.Registry, sanitize bool, logger *slog.Logger) (*render.Registry, error) {
	templates, err := fs.Sub(templatesFS, "templates")
	if err != nil {
		return nil, err
	}
	engine, err := gotemplate.New(gotemplate.WithFS(templates))
	if err != nil {
		return nil, err
	}

	base := []render.Option{render.WithLogger(logger)}
	if sanitize {
		base = append(base, render.WithSanitizer(render.FormPolicy()))
	}

	renderers := render.NewRegistry()
	for _, widget := range inputWidgets {
		opts := append(append([]render.Option(nil), base...), render.WithData(map[string]any{"type": widget}))
		r, err := render.New(engine, "input", opts...)
		if err != nil {
			return nil, err
		}
		renderers.MustRegister(widget, withBoundValue(r, tags))
	}
	for _, widget := range []string{widgets.WidgetTextarea, widgets.WidgetSelect} {
		r, err := render.New(engine, widget, base...)
		if err != nil {
			return nil, err
		}
		renderers.MustRegister(widget, withBoundValue(r, tags))
	}
	renderers.SetFallback("text")
	return renderers, nil
}

// withBoundValue hands a submitted value to the renderer when the element
// resolves to null, which is what happens once a bound value suppresses the
// form lookup and no default is set.
func withBoundValue(next forms.Renderer, tags *tag.Registry) forms.Renderer {
	return forms.RendererFunc(func(el *forms.Element, attributes attr.Attributes) (string, error) {
		if el != nil && el.Value().IsNull() {
			if bound, ok := tags.Value(el.Name()); ok {
				attributes = attributes.Clone()
				attributes["value"] = bound
			}
		}
		return next.Render(el, attributes)
	})
}

// dispatchRenderer picks the widget renderer per element at render time.
func dispatchRenderer(resolver *widgets.Registry, renderers *render.Registry) forms.Renderer {
	return forms.RendererFunc(func(el *forms.Element, attributes attr.Attributes) (string, error) {
		widget, _ := resolver.Resolve(el)
		r, err := renderers.Get(widget)
		if err != nil {
			return "", err
		}
		return r.Render(el, attributes)
	})
}

func loadDefinitions(path string) ([]elements.Definition, error) {
	info, err := os.Stat(path)
	if err != nil {
		return nil, fmt.Errorf("formelement: definitions: %w", err)
	}
	if info.IsDir() {
		set, err := elements.LoadFS(os.DirFS(path))
		if err != nil {
			return nil, err
		}
		return set.Definitions(), nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("formelement: definitions: %w", err)
	}
	return elements.Parse(data, path)
}

func buildDefinitions(path string, opts []forms.Option) ([]*forms.Element, error) {
	defs, err := loadDefinitions(path)
	if err != nil {
		return nil, err
	}
	set, err := elements.NewSet(defs...)
	if err != nil {
		return nil, err
	}
	return set.Build(nil, opts...)
}

func buildOpenAPI(ctx context.Context, path, operationID string, opts []forms.Option) ([]*forms.Element, error) {
	if strings.TrimSpace(operationID) == "" {
		return nil, errors.New("formelement: -operation is required with -openapi")
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("formelement: read openapi document: %w", err)
	}
	doc, err := openapi.Load(ctx, data, false)
	if err != nil {
		return nil, err
	}
	return openapi.Elements(ctx, doc, operationID, opts...)
}
