package attr_test

import (
	"encoding/json"
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/goliatone/go-formelement/pkg/attr"
)

func TestValueOf_ConvertsDynamicValues(t *testing.T) {
	cases := []struct {
		name string
		raw  any
		want attr.Value
	}{
		{name: "nil", raw: nil, want: attr.Null()},
		{name: "string", raw: "big", want: attr.String("big")},
		{name: "int", raw: 30, want: attr.Int(30)},
		{name: "uint8", raw: uint8(7), want: attr.Int(7)},
		{name: "float", raw: 1.5, want: attr.Number(1.5)},
		{name: "bool", raw: true, want: attr.Bool(true)},
		{name: "json number", raw: json.Number("12"), want: attr.Int(12)},
		{
			name: "nested map",
			raw:  map[string]any{"min": 1, "label": "x"},
			want: attr.Map(map[string]attr.Value{"min": attr.Int(1), "label": attr.String("x")}),
		},
		{
			name: "yaml style map",
			raw:  map[any]any{"on": false},
			want: attr.Map(map[string]attr.Value{"on": attr.Bool(false)}),
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := attr.ValueOf(tc.raw)
			if err != nil {
				t.Fatalf("value of: %v", err)
			}
			if diff := cmp.Diff(tc.want, got); diff != "" {
				t.Fatalf("value mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestValueOf_RejectsSequences(t *testing.T) {
	_, err := attr.ValueOf([]any{"a", "b"})
	if !errors.Is(err, attr.ErrUnsupported) {
		t.Fatalf("expected ErrUnsupported, got %v", err)
	}

	_, err = attr.ValueOf(map[string]any{"nested": []string{"x"}})
	if !errors.Is(err, attr.ErrUnsupported) {
		t.Fatalf("expected ErrUnsupported for nested slice, got %v", err)
	}
}

func TestValue_String(t *testing.T) {
	cases := map[string]struct {
		value attr.Value
		want  string
	}{
		"null":     {value: attr.Null(), want: ""},
		"integral": {value: attr.Int(30), want: "30"},
		"fraction": {value: attr.Number(2.25), want: "2.25"},
		"bool":     {value: attr.Bool(false), want: "false"},
		"map": {
			value: attr.Map(map[string]attr.Value{"b": attr.Int(2), "a": attr.String("x")}),
			want:  `{"a":"x","b":2}`,
		},
	}
	for name, tc := range cases {
		if got := tc.value.String(); got != tc.want {
			t.Fatalf("%s: want %q, got %q", name, tc.want, got)
		}
	}
}

func TestValue_JSONRoundTripKeepsKinds(t *testing.T) {
	var decoded attr.Value
	if err := json.Unmarshal([]byte(`{"size":3,"flag":true,"name":null}`), &decoded); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if decoded.Kind() != attr.KindMap {
		t.Fatalf("expected map kind, got %s", decoded.Kind())
	}
	nested, _ := decoded.AsMap()
	want := map[string]attr.Value{
		"size": attr.Int(3),
		"flag": attr.Bool(true),
		"name": attr.Null(),
	}
	if diff := cmp.Diff(want, nested); diff != "" {
		t.Fatalf("decoded mismatch (-want +got):\n%s", diff)
	}
}

func TestAttributes_MergeOverridesAndLeavesReceiver(t *testing.T) {
	base := attr.Attributes{"id": attr.String("x"), "class": attr.String("small")}
	merged := base.Merge(attr.Attributes{"class": attr.String("big")})

	want := attr.Attributes{"id": attr.String("x"), "class": attr.String("big")}
	if diff := cmp.Diff(want, merged); diff != "" {
		t.Fatalf("merge mismatch (-want +got):\n%s", diff)
	}
	if got := base.Get("class", attr.Null()); !got.Equal(attr.String("small")) {
		t.Fatalf("receiver mutated: %v", got)
	}
}

func TestAttributes_GetFallback(t *testing.T) {
	var attrs attr.Attributes
	if got := attrs.Get("missing", attr.String("fallback")); !got.Equal(attr.String("fallback")) {
		t.Fatalf("expected fallback, got %v", got)
	}
	if got := attrs.Get("missing", attr.Null()); !got.IsNull() {
		t.Fatalf("expected null, got %v", got)
	}
}

func TestAttributes_Markup(t *testing.T) {
	attrs := attr.Attributes{
		"class":    attr.String(`big "quoted"`),
		"required": attr.Bool(true),
		"disabled": attr.Bool(false),
		"value":    attr.Int(30),
		"title":    attr.Null(),
	}

	want := ` class="big &#34;quoted&#34;" required value="30"`
	if got := attrs.Markup(); got != want {
		t.Fatalf("markup mismatch\nwant: %q\n got: %q", want, got)
	}
}

func TestTagParams_Name(t *testing.T) {
	params := attr.TagParams{Args: []attr.Value{attr.String("age")}}
	if got := params.Name(); got != "age" {
		t.Fatalf("expected positional name, got %q", got)
	}

	params = attr.TagParams{Attrs: attr.Attributes{"name": attr.String("email")}}
	if got := params.Name(); got != "email" {
		t.Fatalf("expected attribute name, got %q", got)
	}
}
