package elements

import (
	"encoding/json"
	"fmt"
	"io/fs"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/goliatone/go-formelement/pkg/attr"
	"github.com/goliatone/go-formelement/pkg/forms"
)

// Set is an ordered collection of definitions with unique names.
type Set struct {
	definitions []Definition
	index       map[string]int
}

type documentFile struct {
	Elements []map[string]any `json:"elements" yaml:"elements"`
}

// LoadFS walks fsys and parses every JSON/YAML definition file in lexical
// path order. A nil fsys yields an empty set.
func LoadFS(fsys fs.FS) (*Set, error) {
	set := &Set{index: make(map[string]int)}
	if fsys == nil {
		return set, nil
	}

	err := fs.WalkDir(fsys, ".", func(path string, entry fs.DirEntry, walkErr error) error {
		if walkErr != nil {
			return walkErr
		}
		if entry.IsDir() || !isDefinitionFile(path) {
			return nil
		}

		data, err := fs.ReadFile(fsys, path)
		if err != nil {
			return fmt.Errorf("elements: read %s: %w", path, err)
		}
		definitions, err := Parse(data, path)
		if err != nil {
			return err
		}
		return set.add(definitions...)
	})
	if err != nil {
		return nil, err
	}
	return set, nil
}

// Parse decodes a single JSON or YAML document.
func Parse(data []byte, source string) ([]Definition, error) {
	if len(strings.TrimSpace(string(data))) == 0 {
		return nil, fmt.Errorf("elements: file %s is empty", source)
	}

	var doc documentFile
	if err := json.Unmarshal(data, &doc); err != nil {
		doc = documentFile{}
		if err := yaml.Unmarshal(data, &doc); err != nil {
			return nil, fmt.Errorf("elements: parse %s: invalid JSON or YAML: %w", source, err)
		}
	}

	definitions := make([]Definition, 0, len(doc.Elements))
	for idx, raw := range doc.Elements {
		def, err := decodeDefinition(raw, source, idx)
		if err != nil {
			return nil, err
		}
		definitions = append(definitions, def)
	}
	return definitions, nil
}

// NewSet builds a set from already decoded definitions.
func NewSet(definitions ...Definition) (*Set, error) {
	set := &Set{index: make(map[string]int)}
	if err := set.add(definitions...); err != nil {
		return nil, err
	}
	return set, nil
}

func (s *Set) add(definitions ...Definition) error {
	for _, def := range definitions {
		if prev, exists := s.index[def.Name]; exists {
			return fmt.Errorf("elements: duplicate element %q (files %s and %s)",
				def.Name, s.definitions[prev].Source, def.Source)
		}
		s.index[def.Name] = len(s.definitions)
		s.definitions = append(s.definitions, def)
	}
	return nil
}

// Definitions returns the definitions in load order.
func (s *Set) Definitions() []Definition {
	if s == nil {
		return nil
	}
	return append([]Definition(nil), s.definitions...)
}

// Lookup returns the definition named name.
func (s *Set) Lookup(name string) (Definition, bool) {
	if s == nil {
		return Definition{}, false
	}
	idx, ok := s.index[name]
	if !ok {
		return Definition{}, false
	}
	return s.definitions[idx], true
}

// Empty reports whether the set holds no definitions.
func (s *Set) Empty() bool {
	return s == nil || len(s.definitions) == 0
}

// Build creates one element per definition, in load order. perElement, when
// non-nil, supplies extra options for each definition (a renderer picked by
// widget, for instance).
func (s *Set) Build(perElement func(Definition) []forms.Option, opts ...forms.Option) ([]*forms.Element, error) {
	if s == nil {
		return nil, nil
	}
	out := make([]*forms.Element, 0, len(s.definitions))
	for _, def := range s.definitions {
		elementOpts := append([]forms.Option(nil), opts...)
		if perElement != nil {
			elementOpts = append(elementOpts, perElement(def)...)
		}
		el, err := def.Build(elementOpts...)
		if err != nil {
			return nil, fmt.Errorf("elements: build %q: %w", def.Name, err)
		}
		out = append(out, el)
	}
	return out, nil
}

// ParseValues decodes a flat JSON or YAML mapping of field names to values,
// used to seed tag defaults or a form.
func ParseValues(data []byte, source string) (attr.Attributes, error) {
	if len(strings.TrimSpace(string(data))) == 0 {
		return attr.Attributes{}, nil
	}

	var raw map[string]any
	if err := json.Unmarshal(data, &raw); err != nil {
		raw = nil
		if err := yaml.Unmarshal(data, &raw); err != nil {
			return nil, fmt.Errorf("elements: parse values %s: invalid JSON or YAML: %w", source, err)
		}
	}
	values, err := attr.AttributesOf(raw)
	if err != nil {
		return nil, fmt.Errorf("elements: values %s: %w", source, err)
	}
	return values, nil
}

func isDefinitionFile(path string) bool {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".json", ".yaml", ".yml":
		return true
	default:
		return false
	}
}
