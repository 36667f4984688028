package gotemplate_test

import (
	"fmt"
	"io"
	"strings"
	"testing"
	"testing/fstest"

	"github.com/goliatone/go-formelement/pkg/attr"
	"github.com/goliatone/go-formelement/pkg/render/template/gotemplate"
	"github.com/goliatone/go-formelement/pkg/testsupport"
)

func newEngine(t *testing.T, opts ...gotemplate.Option) *gotemplate.Engine {
	t.Helper()

	files := fstest.MapFS{
		"input.tpl":      {Data: []byte(`<input type="text"{{ attrs|html_attrs }}>`)},
		"use-global.tpl": {Data: []byte(`env={{ settings.env }}`)},
		"label.tpl":      {Data: []byte(`<label for="{{ name }}">{{ label }}</label>`)},
	}
	engine, err := gotemplate.New(append([]gotemplate.Option{gotemplate.WithFS(files)}, opts...)...)
	if err != nil {
		t.Fatalf("new engine: %v", err)
	}
	return engine
}

func TestEngine_RenderTemplate(t *testing.T) {
	engine := newEngine(t)

	data := map[string]any{
		"attrs": attr.Attributes{
			"name":  attr.String("age"),
			"value": attr.Int(30),
			"class": attr.String("big"),
		},
	}
	result, written := testsupport.CaptureTemplateOutput(t, func(w io.Writer) (string, error) {
		return engine.RenderTemplate("input", data, w)
	})

	want := `<input type="text" class="big" name="age" value="30">`
	if result != want {
		t.Fatalf("render template mismatch result\nwant: %q\n got: %q", want, result)
	}
	if written != want {
		t.Fatalf("render template mismatch writer\nwant: %q\n got: %q", want, written)
	}
}

func TestEngine_AutoescapesPlainValues(t *testing.T) {
	engine := newEngine(t)

	got, err := engine.Render("label", map[string]any{"name": "age", "label": "<b>Age</b>"})
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	want := `<label for="age">&lt;b&gt;Age&lt;/b&gt;</label>`
	if got != want {
		t.Fatalf("autoescape mismatch\nwant: %q\n got: %q", want, got)
	}
}

func TestEngine_RenderString(t *testing.T) {
	engine, err := gotemplate.New()
	if err != nil {
		t.Fatalf("new engine: %v", err)
	}

	got, err := engine.Render(`{{ greeting|trim }}, {{ name }}`, map[string]any{
		"greeting": "  hello ",
		"name":     attr.String("Ada"),
	})
	if err != nil {
		t.Fatalf("render string: %v", err)
	}
	if got != "hello, Ada" {
		t.Fatalf("unexpected output %q", got)
	}
}

func TestEngine_GlobalContext(t *testing.T) {
	engine := newEngine(t, gotemplate.WithGlobalData(map[string]any{
		"settings": map[string]any{"env": "dev"},
	}))
	if err := engine.GlobalContext(map[string]any{
		"settings": map[string]any{"env": "staging"},
	}); err != nil {
		t.Fatalf("global context: %v", err)
	}

	got, err := engine.RenderTemplate("use-global", nil)
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	if got != "env=staging" {
		t.Fatalf("unexpected output %q", got)
	}
}

func TestEngine_RegisterFilter(t *testing.T) {
	engine := newEngine(t)
	name := fmt.Sprintf("shout_%s", strings.ReplaceAll(strings.ToLower(t.Name()), "/", "_"))

	err := engine.RegisterFilter(name, func(input any, _ any) (any, error) {
		if input == nil {
			return "", nil
		}
		return strings.ToUpper(fmt.Sprint(input)) + "!", nil
	})
	if err != nil {
		t.Fatalf("register filter: %v", err)
	}
	if err := engine.RegisterFilter(name, func(any, any) (any, error) { return nil, nil }); err == nil {
		t.Fatal("expected duplicate filter registration to fail")
	}

	got, err := engine.RenderString("{{ name|"+name+" }}", map[string]any{"name": "ada"})
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	if got != "ADA!" {
		t.Fatalf("unexpected output %q", got)
	}
}

func TestEngine_Errors(t *testing.T) {
	engine := newEngine(t)

	if _, err := engine.RenderTemplate("missing", nil); err == nil {
		t.Fatal("expected missing template error")
	}
	if _, err := engine.RenderString(`{{ attrs|html_attrs }}`, map[string]any{"attrs": "nope"}); err == nil {
		t.Fatal("expected html_attrs to reject non mappings")
	}
	if _, err := engine.RenderString(`{{ x }}`, 42); err == nil {
		t.Fatal("expected unsupported data error")
	}

	var nilEngine *gotemplate.Engine
	if _, err := nilEngine.RenderString("x", nil); err == nil {
		t.Fatal("expected nil engine error")
	}
}
