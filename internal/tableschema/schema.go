// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Chase Nunez

// Package tableschema builds the generic tabular schema descriptor handed
// to the external validation collaborator, and serializes it as
// frictionless-compatible Table Schema JSON.
package tableschema

import (
	"encoding/json"
	"io"
	"os"

	"github.com/chasenunez/DEVO/internal/icsv"
	"github.com/chasenunez/DEVO/internal/profile"
)

// Constraints are advisory bounds for one field. Enforcement belongs to
// the validator, not to this package.
type Constraints struct {
	Required bool `json:"required,omitempty"`

	// Minimum and Maximum carry the typed bounds from the column
	// profile: int64, float64, or an ISO-8601 string for datetimes.
	Minimum any `json:"minimum,omitempty"`
	Maximum any `json:"maximum,omitempty"`
}

// Field is one column spec of the descriptor.
type Field struct {
	Name        string       `json:"name"`
	Type        string       `json:"type"`
	Format      string       `json:"format,omitempty"`
	Description string       `json:"description,omitempty"`
	Constraints *Constraints `json:"constraints,omitempty"`
}

// Schema is the ordered field spec list plus the placeholder strings the
// profiler treated as missing, so enrichment and validation agree on what
// "missing" means. It is derived and disposable: built once, handed to
// the validator, never stored.
type Schema struct {
	Fields        []Field  `json:"fields"`
	MissingValues []string `json:"missingValues"`
}

// FromProfiles maps column profiles to a schema descriptor, in order.
// Format is set only for datetime columns; min/max bounds are attached
// for numeric and datetime columns.
func FromProfiles(cols []profile.Column, missing profile.MissingSet) *Schema {
	s := &Schema{
		Fields:        make([]Field, len(cols)),
		MissingValues: missing.Values(),
	}
	for i, c := range cols {
		f := Field{
			Name:        c.Name,
			Type:        string(c.Type),
			Description: c.Description,
		}
		if c.Type == profile.TypeDatetime {
			f.Format = "any"
		}
		cons := Constraints{Required: c.Required}
		if c.Type != profile.TypeString {
			cons.Minimum = c.Min
			cons.Maximum = c.Max
		}
		if cons.Required || cons.Minimum != nil || cons.Maximum != nil {
			f.Constraints = &cons
		}
		s.Fields[i] = f
	}
	return s
}

// FromFields builds the descriptor from a parsed fields table, so an
// existing document can be validated without re-profiling its rows.
func FromFields(ft icsv.FieldsTable, missing profile.MissingSet) *Schema {
	return FromProfiles(ft.Profiles(), missing)
}

// WriteJSON writes the descriptor as indented Table Schema JSON.
func (s *Schema) WriteJSON(w io.Writer) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(s)
}

// WriteJSONFile writes the descriptor to a file.
func (s *Schema) WriteJSONFile(path string) error {
	f, err := os.Create(path) //nolint:gosec // path is provided by caller
	if err != nil {
		return err
	}
	defer f.Close() //nolint:errcheck
	if err := s.WriteJSON(f); err != nil {
		return err
	}
	return f.Close()
}
