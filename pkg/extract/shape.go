package extract

import (
	"fmt"

	"github.com/xeipuuv/gojsonschema"
)

// Shape is a named, compiled JSON-Schema that extracted payloads must satisfy.
type Shape struct {
	name   string
	schema *gojsonschema.Schema
}

// NewShape compiles schemaJSON into a Shape.
func NewShape(name, schemaJSON string) (Shape, error) {
	schema, err := gojsonschema.NewSchema(gojsonschema.NewStringLoader(schemaJSON))
	if err != nil {
		return Shape{}, fmt.Errorf("extract: compile shape %s: %w", name, err)
	}
	return Shape{name: name, schema: schema}, nil
}

// MustShape is like NewShape but panics on an invalid schema. Use for package-level shapes.
func MustShape(name, schemaJSON string) Shape {
	s, err := NewShape(name, schemaJSON)
	if err != nil {
		panic(err)
	}
	return s
}

// Name returns the shape name used in errors and metrics.
func (s Shape) Name() string {
	return s.name
}

func (s Shape) validate(doc any) ([]string, error) {
	if s.schema == nil {
		return nil, fmt.Errorf("extract: shape %q is not compiled", s.name)
	}

	result, err := s.schema.Validate(gojsonschema.NewGoLoader(doc))
	if err != nil {
		return nil, err
	}
	if result.Valid() {
		return nil, nil
	}

	reasons := make([]string, len(result.Errors()))
	for i, desc := range result.Errors() {
		reasons[i] = desc.String()
	}
	return reasons, nil
}

// StringArray accepts a JSON array whose items are all strings.
var StringArray = MustShape("string_array", `{
	"type": "array",
	"items": {"type": "string"}
}`)
