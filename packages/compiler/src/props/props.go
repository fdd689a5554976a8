// Package props implements the property-struct side of the macro surface: a
// component's props are described once and turned into a builder that
// enforces required fields and fills defaulted ones.
package props

import (
	"fmt"

	"github.com/iancoleman/strcase"
)

// FieldPolicy represents how a prop field obtains its value when the caller
// does not set it
type FieldPolicy int

const (
	// PolicyRequired fields must be set explicitly
	PolicyRequired FieldPolicy = iota
	// PolicyOr fields fall back to a fixed default value
	PolicyOr
	// PolicyOrElse fields fall back to a value computed by a function
	PolicyOrElse
	// PolicyOrDefault fields fall back to the type's zero value
	PolicyOrDefault
)

// Field describes one prop field
type Field struct {
	// Name is the Go-style field name, e.g. "OnClick"
	Name      string
	Policy    FieldPolicy
	Default   interface{}
	DefaultFn func() interface{}
	Zero      interface{}
}

// Attr returns the markup attribute name of the field (kebab-case)
func (f Field) Attr() string {
	return strcase.ToKebab(f.Name)
}

// Spec describes a component's full prop set
type Spec struct {
	Name   string
	Fields []Field

	byAttr map[string]int
}

// NewSpec creates a prop spec, rejecting duplicate field names (two Go
// names that collapse to the same attribute name also count as duplicates)
func NewSpec(name string, fields []Field) (*Spec, error) {
	spec := &Spec{Name: name, Fields: fields, byAttr: make(map[string]int, len(fields))}
	for i, field := range fields {
		attr := field.Attr()
		if _, exists := spec.byAttr[attr]; exists {
			return nil, fmt.Errorf("duplicate prop `%s` on %s", attr, name)
		}
		spec.byAttr[attr] = i
	}
	return spec, nil
}

// Builder creates a fresh builder for this spec
func (s *Spec) Builder() *Builder {
	return &Builder{spec: s, values: map[string]interface{}{}}
}

// Builder accumulates prop values and enforces the spec on Build
type Builder struct {
	spec   *Spec
	values map[string]interface{}
}

// Set assigns one prop by its Go field name or its attribute name
func (b *Builder) Set(name string, value interface{}) error {
	attr := strcase.ToKebab(name)
	if _, ok := b.spec.byAttr[attr]; !ok {
		return fmt.Errorf("no such prop `%s` on %s", attr, b.spec.Name)
	}
	b.values[attr] = value
	return nil
}

// Build checks required fields, applies defaults, and returns the final
// prop values keyed by attribute name
func (b *Builder) Build() (map[string]interface{}, error) {
	result := make(map[string]interface{}, len(b.spec.Fields))
	for _, field := range b.spec.Fields {
		attr := field.Attr()
		if value, ok := b.values[attr]; ok {
			result[attr] = value
			continue
		}
		switch field.Policy {
		case PolicyRequired:
			return nil, fmt.Errorf("the required prop `%s` on %s was not set", attr, b.spec.Name)
		case PolicyOr:
			result[attr] = field.Default
		case PolicyOrElse:
			if field.DefaultFn != nil {
				result[attr] = field.DefaultFn()
			}
		case PolicyOrDefault:
			result[attr] = field.Zero
		}
	}
	return result, nil
}
