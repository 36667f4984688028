package tag_test

import (
	"net/url"
	"testing"

	"github.com/goliatone/go-formelement/pkg/attr"
	"github.com/goliatone/go-formelement/pkg/tag"
)

func TestRegistry_HasValue(t *testing.T) {
	reg := tag.NewRegistry()
	if reg.HasValue("age") {
		t.Fatal("empty registry should not report values")
	}

	reg.SetDefault("age", attr.Int(21))
	if !reg.HasValue("age") {
		t.Fatal("expected default to count as explicit value")
	}

	reg.Bind(url.Values{"email": {"ada@example.com", "ignored"}})
	if !reg.HasValue("email") {
		t.Fatal("expected bound value to count as explicit value")
	}
	value, ok := reg.Value("email")
	if !ok || !value.Equal(attr.String("ada@example.com")) {
		t.Fatalf("expected first bound value, got %v (%t)", value, ok)
	}
}

func TestRegistry_BoundValuesWinOverDefaults(t *testing.T) {
	reg := tag.NewRegistry()
	reg.SetDefault("name", attr.String("default"))
	reg.Bind(url.Values{"name": {"posted"}})

	value, _ := reg.Value("name")
	if !value.Equal(attr.String("posted")) {
		t.Fatalf("expected bound value, got %v", value)
	}
}

func TestRegistry_SetDefaultsReplaceAndMerge(t *testing.T) {
	reg := tag.NewRegistry()
	reg.SetDefault("a", attr.Int(1))

	reg.SetDefaults(attr.Attributes{"b": attr.Int(2)}, true)
	if !reg.HasValue("a") || !reg.HasValue("b") {
		t.Fatal("merge should keep existing defaults")
	}

	reg.SetDefaults(attr.Attributes{"c": attr.Int(3)}, false)
	if reg.HasValue("a") || reg.HasValue("b") || !reg.HasValue("c") {
		t.Fatal("replace should discard previous defaults")
	}

	reg.Reset()
	if reg.HasValue("c") {
		t.Fatal("reset should clear defaults")
	}
}

func TestRegistry_NilIsEmpty(t *testing.T) {
	var reg *tag.Registry
	if reg.HasValue("x") {
		t.Fatal("nil registry should report no values")
	}
	reg.SetDefault("x", attr.Int(1))
}

func TestPackageLevelRegistry(t *testing.T) {
	t.Cleanup(tag.Reset)

	tag.SetDefault("city", attr.String("Lisbon"))
	if !tag.HasValue("city") {
		t.Fatal("expected process-wide registry to hold value")
	}
	if tag.Default().HasValue("city") != tag.HasValue("city") {
		t.Fatal("package functions should use Default()")
	}
}

func TestInput(t *testing.T) {
	reg := tag.NewRegistry()
	reg.SetDefault("age", attr.Int(40))

	params := attr.TagParams{
		Args:  []attr.Value{attr.String("age")},
		Attrs: attr.Attributes{"class": attr.String("big")},
	}
	want := `<input class="big" id="age" name="age" type="number" value="40">`
	if got := reg.Input("number", params); got != want {
		t.Fatalf("input mismatch\nwant: %q\n got: %q", want, got)
	}

	params.Attrs["value"] = attr.Int(30)
	want = `<input class="big" id="age" name="age" type="number" value="30">`
	if got := reg.Input("number", params); got != want {
		t.Fatalf("explicit value mismatch\nwant: %q\n got: %q", want, got)
	}
}

func TestLabelEscapes(t *testing.T) {
	want := `<label for="age">Age &lt;years&gt;</label>`
	if got := tag.Label("age", "Age <years>"); got != want {
		t.Fatalf("label mismatch\nwant: %q\n got: %q", want, got)
	}
}
