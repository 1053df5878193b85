// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Chase Nunez

// Package typecheck is the builtin validation collaborator: a cell-level
// checker of declared types and advisory bounds.
package typecheck

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/chasenunez/DEVO/internal/profile"
	"github.com/chasenunez/DEVO/internal/tableschema"
	"github.com/chasenunez/DEVO/internal/validate"
)

// Finding codes emitted by this validator.
const (
	CodeTypeError       = "type-error"
	CodeMissingCell     = "missing-cell"
	CodeExtraCell       = "extra-cell"
	CodeBlankRow        = "blank-row"
	CodeConstraintError = "constraint-error"
)

// Validator checks every cell against its field spec.
type Validator struct{}

// Validate walks rows in order. Cells matching a schema placeholder are
// skipped as missing unless the field is required; other cells must parse
// as the declared type and, for numeric fields, fall inside the advisory
// minimum/maximum.
func (Validator) Validate(schema *tableschema.Schema, rows [][]string) (*validate.Report, error) {
	missing := profile.NewMissingSet(schema.MissingValues...)
	report := &validate.Report{}

	for r, row := range rows {
		rowNum := r + 1
		if blankRow(row) {
			report.Add(rowNum, 0, CodeBlankRow, "row is entirely blank")
			continue
		}
		if len(row) > len(schema.Fields) {
			report.Add(rowNum, len(schema.Fields)+1, CodeExtraCell,
				fmt.Sprintf("row has %d cells, schema defines %d fields", len(row), len(schema.Fields)))
		}

		for i, field := range schema.Fields {
			fieldNum := i + 1
			if i >= len(row) {
				if required(field) {
					report.Add(rowNum, fieldNum, CodeMissingCell,
						fmt.Sprintf("required field %q has no cell", field.Name))
				}
				continue
			}
			cell := row[i]

			if missing.Contains(cell) {
				if required(field) {
					report.Add(rowNum, fieldNum, CodeMissingCell,
						fmt.Sprintf("required field %q is missing (%q)", field.Name, cell))
				}
				continue
			}

			if !profile.IsOfType(cell, profile.Type(field.Type)) {
				report.Add(rowNum, fieldNum, CodeTypeError,
					fmt.Sprintf("value %q is not a valid %s for field %q", cell, field.Type, field.Name))
				continue
			}

			if msg := checkBounds(cell, field); msg != "" {
				report.Add(rowNum, fieldNum, CodeConstraintError, msg)
			}
		}
	}
	return report, nil
}

func required(f tableschema.Field) bool {
	return f.Constraints != nil && f.Constraints.Required
}

func blankRow(row []string) bool {
	for _, cell := range row {
		if strings.TrimSpace(cell) != "" {
			return false
		}
	}
	return len(row) > 0
}

// checkBounds applies numeric bounds only; datetime bounds are advisory.
func checkBounds(cell string, f tableschema.Field) string {
	if f.Constraints == nil {
		return ""
	}
	if f.Type != string(profile.TypeInteger) && f.Type != string(profile.TypeNumber) {
		return ""
	}
	v, err := strconv.ParseFloat(cell, 64)
	if err != nil {
		return ""
	}
	if lo, ok := asFloat(f.Constraints.Minimum); ok && v < lo {
		return fmt.Sprintf("value %s of field %q is below minimum %v", cell, f.Name, f.Constraints.Minimum)
	}
	if hi, ok := asFloat(f.Constraints.Maximum); ok && v > hi {
		return fmt.Sprintf("value %s of field %q is above maximum %v", cell, f.Name, f.Constraints.Maximum)
	}
	return ""
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
