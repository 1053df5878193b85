// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Chase Nunez

// Package profile infers column types and statistics from raw CSV cells.
package profile

import (
	"sort"
	"strconv"
)

// Type is the inferred type of a column.
type Type string

// Column types, from most to least specific.
const (
	TypeInteger  Type = "integer"
	TypeNumber   Type = "number"
	TypeDatetime Type = "datetime"
	TypeString   Type = "string"
)

// MissingSet is the set of placeholder strings treated as absent data.
// Matching is exact and case-sensitive.
type MissingSet map[string]struct{}

// DefaultMissing returns the builtin placeholder set.
func DefaultMissing() MissingSet {
	return NewMissingSet(
		"", "NA", "N/A", "na", "n/a", "NULL", "null", "nan", "NaN",
		"-999", "-999.0", "-999.000000",
	)
}

// NewMissingSet builds a MissingSet from the given placeholder strings.
func NewMissingSet(values ...string) MissingSet {
	m := make(MissingSet, len(values))
	for _, v := range values {
		m[v] = struct{}{}
	}
	return m
}

// Contains reports whether s is a recognized placeholder.
func (m MissingSet) Contains(s string) bool {
	_, ok := m[s]
	return ok
}

// With returns a copy of the set extended with extra placeholders.
func (m MissingSet) With(extra ...string) MissingSet {
	out := make(MissingSet, len(m)+len(extra))
	for v := range m {
		out[v] = struct{}{}
	}
	for _, v := range extra {
		out[v] = struct{}{}
	}
	return out
}

// Values returns the placeholders in sorted order.
func (m MissingSet) Values() []string {
	out := make([]string, 0, len(m))
	for v := range m {
		out = append(out, v)
	}
	sort.Strings(out)
	return out
}

// Column is the computed profile of a single column. It is built once per
// enrichment or validation pass and not modified afterward.
type Column struct {
	Name string
	Type Type

	// Min and Max hold the typed bounds: int64 for integer columns,
	// float64 for number columns, an ISO-8601 string for datetime
	// columns, nil for string columns or when no values were seen.
	Min any
	Max any

	MissingCount int
	Required     bool
	Description  string
	Units        string
}

// FormatBound renders a Min/Max bound for the fields block. Nil bounds
// become the empty string.
func FormatBound(v any) string {
	switch b := v.(type) {
	case nil:
		return ""
	case int64:
		return strconv.FormatInt(b, 10)
	case float64:
		return strconv.FormatFloat(b, 'g', -1, 64)
	case string:
		return b
	default:
		return ""
	}
}

// ParseBound is the inverse of FormatBound: integers and floats come back
// typed, anything else (datetime strings included) stays a string.
func ParseBound(s string) any {
	if s == "" {
		return nil
	}
	if isInteger(s) {
		if n, err := strconv.ParseInt(s, 10, 64); err == nil {
			return n
		}
	}
	if isNumber(s) {
		if f, err := strconv.ParseFloat(s, 64); err == nil {
			return f
		}
	}
	return s
}

// Columns profiles every column of the given table, in header order.
// Cells matching a placeholder are excluded from classification and from
// the min/max statistics but counted per column. Profiling never fails:
// columns whose values defeat every parser degrade to string.
func Columns(header []string, rows [][]string, missing MissingSet) []Column {
	cols := make([]Column, len(header))
	for i, name := range header {
		values := make([]string, 0, len(rows))
		for _, row := range rows {
			if i < len(row) {
				values = append(values, row[i])
			} else {
				values = append(values, "")
			}
		}
		cols[i] = One(name, values, missing)
	}
	return cols
}

// One profiles a single column from its raw cell values.
func One(name string, values []string, missing MissingSet) Column {
	present := make([]string, 0, len(values))
	missingCount := 0
	for _, v := range values {
		if missing.Contains(v) {
			missingCount++
			continue
		}
		present = append(present, v)
	}

	col := Column{
		Name:         name,
		Type:         Infer(present),
		MissingCount: missingCount,
		Required:     missingCount == 0,
	}
	col.Min, col.Max = bounds(col.Type, present)
	return col
}

func bounds(t Type, present []string) (any, any) {
	if len(present) == 0 {
		return nil, nil
	}
	switch t {
	case TypeInteger:
		return integerBounds(present)
	case TypeNumber:
		return numberBounds(present)
	case TypeDatetime:
		return datetimeBounds(present)
	}
	return nil, nil
}

func integerBounds(values []string) (any, any) {
	var min, max int64
	for i, v := range values {
		n, err := strconv.ParseInt(v, 10, 64)
		if err != nil {
			// out of int64 range; fall back to float comparison
			return numberBounds(values)
		}
		if i == 0 || n < min {
			min = n
		}
		if i == 0 || n > max {
			max = n
		}
	}
	return min, max
}

func numberBounds(values []string) (any, any) {
	var min, max float64
	seen := false
	for _, v := range values {
		f, err := strconv.ParseFloat(v, 64)
		if err != nil {
			continue
		}
		if !seen || f < min {
			min = f
		}
		if !seen || f > max {
			max = f
		}
		seen = true
	}
	if !seen {
		return nil, nil
	}
	return min, max
}
