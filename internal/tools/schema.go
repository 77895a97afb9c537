package tools

import (
	"reflect"

	"github.com/google/jsonschema-go/jsonschema"
)

// GenerateSchema generates the input schema for a tool argument type T.
// Optional pointer fields come out as a single type with "nullable": true
// rather than a ["type", "null"] array, which some MCP clients reject.
func GenerateSchema[T any]() *jsonschema.Schema {
	schema, err := jsonschema.ForType(reflect.TypeFor[T](), &jsonschema.ForOptions{})
	if err != nil {
		// Tool inputs are plain structs; this only fails on programming errors.
		panic(err)
	}
	markNullable(schema)
	return schema
}

// markNullable rewrites ["T", "null"] type arrays into T plus nullable,
// everywhere in the schema tree.
func markNullable(s *jsonschema.Schema) {
	if s == nil {
		return
	}

	if len(s.Types) > 0 {
		var types []string
		nullable := false
		for _, t := range s.Types {
			if t == "null" {
				nullable = true
				continue
			}
			types = append(types, t)
		}
		if nullable && len(types) == 1 {
			s.Type = types[0]
			s.Types = nil
			if s.Extra == nil {
				s.Extra = make(map[string]any)
			}
			s.Extra["nullable"] = true
		}
	}

	for _, child := range subschemas(s) {
		markNullable(child)
	}
}

func subschemas(s *jsonschema.Schema) []*jsonschema.Schema {
	children := []*jsonschema.Schema{s.Items, s.AdditionalProperties, s.Not, s.If, s.Then, s.Else}
	for _, p := range s.Properties {
		children = append(children, p)
	}
	for _, d := range s.Definitions {
		children = append(children, d)
	}
	for _, d := range s.Defs {
		children = append(children, d)
	}
	children = append(children, s.ItemsArray...)
	children = append(children, s.OneOf...)
	children = append(children, s.AnyOf...)
	children = append(children, s.AllOf...)
	return children
}
