// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Chase Nunez

// Package export converts schema descriptors to external schema formats.
package export

import (
	"encoding/json"
	"io"

	"github.com/google/jsonschema-go/jsonschema"
	"gopkg.in/yaml.v3"

	"github.com/chasenunez/DEVO/internal/profile"
	"github.com/chasenunez/DEVO/internal/tableschema"
)

// JSONSchema maps a table schema descriptor to a JSON Schema object: one
// property per field, required fields collected into the required list,
// numeric bounds carried as minimum/maximum. Datetime fields become
// string properties with format date-time.
func JSONSchema(ts *tableschema.Schema, title string) *jsonschema.Schema {
	root := &jsonschema.Schema{
		Title:      title,
		Type:       "object",
		Properties: make(map[string]*jsonschema.Schema, len(ts.Fields)),
	}

	for _, f := range ts.Fields {
		prop := &jsonschema.Schema{
			Description: f.Description,
		}
		switch profile.Type(f.Type) {
		case profile.TypeInteger:
			prop.Type = "integer"
		case profile.TypeNumber:
			prop.Type = "number"
		case profile.TypeDatetime:
			prop.Type = "string"
			prop.Format = "date-time"
		default:
			prop.Type = "string"
		}

		if f.Constraints != nil {
			if v, ok := asFloat(f.Constraints.Minimum); ok {
				prop.Minimum = &v
			}
			if v, ok := asFloat(f.Constraints.Maximum); ok {
				prop.Maximum = &v
			}
			if f.Constraints.Required {
				root.Required = append(root.Required, f.Name)
			}
		}
		root.Properties[f.Name] = prop
	}
	return root
}

// WriteJSON encodes a JSON Schema as indented JSON.
func WriteJSON(w io.Writer, s *jsonschema.Schema) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(s)
}

// WriteYAML encodes a JSON Schema as YAML.
func WriteYAML(w io.Writer, s *jsonschema.Schema) error {
	// round-trip through JSON so the schema's own marshalling rules
	// decide which fields appear
	data, err := json.Marshal(s)
	if err != nil {
		return err
	}
	var doc map[string]any
	if err := json.Unmarshal(data, &doc); err != nil {
		return err
	}
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	defer enc.Close() //nolint:errcheck
	return enc.Encode(doc)
}

func asFloat(v any) (float64, bool) {
	switch n := v.(type) {
	case int64:
		return float64(n), true
	case float64:
		return n, true
	}
	return 0, false
}
