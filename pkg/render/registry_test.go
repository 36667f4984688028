package render_test

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/goliatone/go-formelement/pkg/attr"
	"github.com/goliatone/go-formelement/pkg/forms"
	"github.com/goliatone/go-formelement/pkg/render"
)

func staticRenderer(markup string) forms.Renderer {
	return forms.RendererFunc(func(*forms.Element, attr.Attributes) (string, error) {
		return markup, nil
	})
}

func TestRegistry_RegisterAndGet(t *testing.T) {
	reg := render.NewRegistry()
	reg.MustRegister("text", staticRenderer("text"))
	reg.MustRegister("hidden", staticRenderer("hidden"))

	if err := reg.Register("text", staticRenderer("dup")); err == nil {
		t.Fatal("expected duplicate registration error")
	}
	if err := reg.Register(" ", staticRenderer("blank")); err == nil {
		t.Fatal("expected blank name error")
	}
	if err := reg.Register("nil", nil); err == nil {
		t.Fatal("expected nil renderer error")
	}

	if diff := cmp.Diff([]string{"hidden", "text"}, reg.List()); diff != "" {
		t.Fatalf("list mismatch (-want +got):\n%s", diff)
	}
	if !reg.Has("hidden") || reg.Has("select") {
		t.Fatal("unexpected Has results")
	}

	if _, err := reg.Get("select"); err == nil {
		t.Fatal("expected unknown widget error without fallback")
	}

	reg.SetFallback("text")
	renderer, err := reg.Get("select")
	if err != nil {
		t.Fatalf("fallback get: %v", err)
	}
	out, _ := renderer.Render(nil, nil)
	if out != "text" {
		t.Fatalf("expected fallback renderer, got %q", out)
	}
}
