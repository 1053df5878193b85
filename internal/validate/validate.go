// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Chase Nunez

// Package validate defines the contract between the engine and validation
// collaborators: the engine hands a schema descriptor and raw rows to a
// Validator and gets back a structured report it only has to format.
package validate

import (
	"fmt"
	"sort"

	"github.com/chasenunez/DEVO/internal/tableschema"
)

// Finding is one validation issue. RowNumber and FieldNumber are 1-based;
// zero means the finding is not tied to a specific row or column.
type Finding struct {
	RowNumber   int
	FieldNumber int
	Code        string
	Message     string
}

// Report is the structured result of one validation run.
type Report struct {
	Findings []Finding
}

// Valid reports whether the run produced no findings.
func (r *Report) Valid() bool {
	return len(r.Findings) == 0
}

// Add appends a finding.
func (r *Report) Add(row, field int, code, message string) {
	r.Findings = append(r.Findings, Finding{
		RowNumber:   row,
		FieldNumber: field,
		Code:        code,
		Message:     message,
	})
}

// Validator checks rows against a schema descriptor. Implementations own
// the notion of validity; the engine never second-guesses their findings.
type Validator interface {
	Validate(schema *tableschema.Schema, rows [][]string) (*Report, error)
}

// Register maps validator names to implementations.
type Register map[string]Validator

// Get returns the validator registered under name.
func (r Register) Get(name string) (Validator, error) {
	v, ok := r[name]
	if !ok {
		return nil, fmt.Errorf("unknown validator %q", name)
	}
	return v, nil
}

// Available returns the registered names, sorted.
func (r Register) Available() []string {
	names := make([]string, 0, len(r))
	for name := range r {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
