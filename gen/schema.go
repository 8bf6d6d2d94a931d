// Package gen turns YAML type schemas into Go source: plain type
// declarations plus codec constructors built on the linearize
// combinators. It backs the lingen command but is usable as a library.
package gen

import (
	"bytes"
	"errors"
	"fmt"
	"io"

	"gopkg.in/yaml.v3"
)

// Schema is the top-level document: a target package and an ordered
// list of type definitions. Order matters, a definition may only refer
// to types declared before it.
type Schema struct {
	Package string    `yaml:"package"`
	Types   []TypeDef `yaml:"types"`
}

// TypeDef describes one generated type. Exactly one of Values, Fields
// or Variants applies, selected by Kind.
type TypeDef struct {
	Name     string    `yaml:"name"`
	Kind     string    `yaml:"kind"`
	Values   []string  `yaml:"values,omitempty"`
	Fields   []Field   `yaml:"fields,omitempty"`
	Variants []Variant `yaml:"variants,omitempty"`
}

// Kinds accepted in TypeDef.Kind.
const (
	KindEnum   = "enum"
	KindStruct = "struct"
	KindUnion  = "union"
)

// Field is a struct member: a name and a type reference (builtin or a
// previously declared schema type).
type Field struct {
	Name string `yaml:"name"`
	Type string `yaml:"type"`
}

// Variant is a union alternative. An empty Payload means a bare tag
// with no data.
type Variant struct {
	Name    string `yaml:"name"`
	Payload string `yaml:"payload,omitempty"`
}

// ParseSchema decodes a schema document. Unknown YAML keys are
// rejected so typos in a schema file surface as parse errors instead
// of silently dropped settings.
func ParseSchema(data []byte) (*Schema, error) {
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	var s Schema
	if err := dec.Decode(&s); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, fmt.Errorf("parsing schema: empty document")
		}
		return nil, fmt.Errorf("parsing schema: %w", err)
	}
	return &s, nil
}
