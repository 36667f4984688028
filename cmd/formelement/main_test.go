package main

import (
	"bytes"
	"context"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/goliatone/go-formelement/pkg/testsupport"
)

const definitionsYAML = `
elements:
  - name: age
    widget: number
    label: Age
    default: 18
    attributes:
      class: big
  - name: kind
    widget: select
    options:
      choices:
        Cat: cat
        Dog: dog
  - name: bio
    widget: textarea
  - name: nick
`

type fakePrompter struct {
	inputs  map[string]string
	selects map[string]string
	asked   []string
}

func (f *fakePrompter) Input(_ context.Context, message, current, _ string) (string, error) {
	f.asked = append(f.asked, message+"="+current)
	return f.inputs[message], nil
}

func (f *fakePrompter) Select(_ context.Context, message string, choices []string, current string) (string, error) {
	f.asked = append(f.asked, message+"="+current+" "+strings.Join(choices, ","))
	return f.selects[message], nil
}

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write %s: %v", name, err)
	}
	return path
}

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestRun_Definitions(t *testing.T) {
	dir := t.TempDir()
	cfg := config{
		definitions: writeFile(t, dir, "elements.yaml", definitionsYAML),
		values:      writeFile(t, dir, "values.yaml", "age: 40\nkind: dog\n"),
		bind:        "age=99&nick=ada",
	}

	var out bytes.Buffer
	if err := run(context.Background(), cfg, &out, discardLogger(), nil); err != nil {
		t.Fatalf("run: %v", err)
	}

	// age is bound, which suppresses the form lookup and leaves the default;
	// nick has no default so the bound value is rendered.
	golden := filepath.Join("testdata", "definitions.golden")
	if testsupport.WriteMaybeGolden(t, golden, out.Bytes()) {
		return
	}
	want := testsupport.MustReadGoldenString(t, golden)
	if diff := testsupport.CompareGolden(want, out.String()); diff != "" {
		t.Fatalf("output mismatch (-want +got):\n%s", diff)
	}
}

func TestRun_Interactive(t *testing.T) {
	dir := t.TempDir()
	cfg := config{
		definitions: writeFile(t, dir, "elements.yaml", definitionsYAML),
		interactive: true,
	}
	prompts := &fakePrompter{
		inputs:  map[string]string{"bio": "Hello <b>there</b>", "Age": ""},
		selects: map[string]string{"kind": "Cat"},
	}

	var out bytes.Buffer
	if err := run(context.Background(), cfg, &out, discardLogger(), prompts); err != nil {
		t.Fatalf("run: %v", err)
	}

	wantAsked := []string{"Age=18", "kind= Cat,Dog", "bio=", "nick="}
	if diff := cmp.Diff(wantAsked, prompts.asked); diff != "" {
		t.Fatalf("prompts mismatch (-want +got):\n%s", diff)
	}

	got := out.String()
	for _, fragment := range []string{
		`value="18"`,
		`<option value="cat" selected>Cat</option>`,
		`<textarea id="bio" name="bio">Hello &lt;b&gt;there&lt;/b&gt;</textarea>`,
	} {
		if !strings.Contains(got, fragment) {
			t.Fatalf("expected %q in output:\n%s", fragment, got)
		}
	}
}

func TestRun_OpenAPI(t *testing.T) {
	dir := t.TempDir()
	doc := `{
  "openapi": "3.0.3",
  "info": {"title": "Users", "version": "1"},
  "paths": {"/users": {"post": {
    "operationId": "createUser",
    "requestBody": {"content": {"application/json": {"schema": {
      "type": "object",
      "required": ["email"],
      "properties": {
        "email": {"type": "string", "format": "email", "title": "Email"},
        "age": {"type": "integer", "minimum": 0}
      }
    }}}},
    "responses": {"201": {"description": "created"}}
  }}}
}`
	cfg := config{
		openapiDoc: writeFile(t, dir, "openapi.json", doc),
		operation:  "createUser",
	}

	var out bytes.Buffer
	if err := run(context.Background(), cfg, &out, discardLogger(), nil); err != nil {
		t.Fatalf("run: %v", err)
	}
	want := strings.Join([]string{
		`<label for="age">age</label>`,
		`<input type="number" id="age" name="age" min="0">`,
		`<label for="email">Email</label>`,
		`<input type="email" id="email" name="email" required>`,
		``,
	}, "\n")
	if diff := cmp.Diff(want, out.String()); diff != "" {
		t.Fatalf("output mismatch (-want +got):\n%s", diff)
	}
}

func TestRun_Errors(t *testing.T) {
	dir := t.TempDir()
	defs := writeFile(t, dir, "elements.yaml", definitionsYAML)

	cases := []struct {
		name string
		cfg  config
	}{
		{"no source", config{}},
		{"both sources", config{definitions: defs, openapiDoc: defs}},
		{"missing definitions", config{definitions: filepath.Join(dir, "nope.yaml")}},
		{"openapi without operation", config{openapiDoc: defs}},
		{"bad bind", config{definitions: defs, bind: "a=%zz"}},
		{"bad name", config{definitions: writeFile(t, dir, "bad.yaml", "elements:\n  - name: 3\n")}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if err := run(context.Background(), tc.cfg, io.Discard, discardLogger(), nil); err == nil {
				t.Fatal("expected error")
			}
		})
	}
}

func TestNewLogger(t *testing.T) {
	if _, err := newLogger("debug", io.Discard); err != nil {
		t.Fatalf("debug level: %v", err)
	}
	if _, err := newLogger("chatty", io.Discard); err == nil {
		t.Fatal("expected invalid level error")
	}
}
