// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Chase Nunez

package icsv

import (
	"strconv"
	"strings"

	"github.com/chasenunez/DEVO/internal/profile"
)

// AssembleFields builds the fields table from column profiles, preserving
// profile order. The index of a profile fixes the index of its descriptor
// and, through it, the position of its cells in every data row.
func AssembleFields(cols []profile.Column) FieldsTable {
	ft := make(FieldsTable, len(cols))
	for i, c := range cols {
		ft[i] = Field{
			Name:         c.Name,
			Type:         string(c.Type),
			Min:          profile.FormatBound(c.Min),
			Max:          profile.FormatBound(c.Max),
			MissingCount: c.MissingCount,
			Description:  c.Description,
			Units:        c.Units,
		}
	}
	return ft
}

// Profiles reconstructs column profiles from a parsed fields table, the
// inverse of AssembleFields. Unknown or empty types degrade to string.
func (ft FieldsTable) Profiles() []profile.Column {
	cols := make([]profile.Column, len(ft))
	for i, f := range ft {
		typ := profile.Type(f.Type)
		switch typ {
		case profile.TypeInteger, profile.TypeNumber, profile.TypeDatetime, profile.TypeString:
		default:
			typ = profile.TypeString
		}
		cols[i] = profile.Column{
			Name:         f.Name,
			Type:         typ,
			Min:          profile.ParseBound(f.Min),
			Max:          profile.ParseBound(f.Max),
			MissingCount: f.MissingCount,
			Required:     f.MissingCount == 0,
			Description:  f.Description,
			Units:        f.Units,
		}
	}
	return cols
}

// attributes serializes the table into (attribute, joined-values) lines.
// The always-present attributes come first; description and units are
// emitted only when some column sets them.
func (ft FieldsTable) attributes(delimiter string) []Pair {
	join := func(get func(Field) string) string {
		vals := make([]string, len(ft))
		for i, f := range ft {
			vals[i] = get(f)
		}
		return strings.Join(vals, delimiter)
	}

	attrs := []Pair{
		{AttrFields, join(func(f Field) string { return f.Name })},
		{AttrTypes, join(func(f Field) string { return f.Type })},
		{AttrMin, join(func(f Field) string { return f.Min })},
		{AttrMax, join(func(f Field) string { return f.Max })},
		{AttrMissingCount, join(func(f Field) string { return strconv.Itoa(f.MissingCount) })},
	}
	if anyField(ft, func(f Field) bool { return f.Description != "" }) {
		attrs = append(attrs, Pair{AttrDescription, join(func(f Field) string { return f.Description })})
	}
	if anyField(ft, func(f Field) bool { return f.Units != "" }) {
		attrs = append(attrs, Pair{AttrUnits, join(func(f Field) string { return f.Units })})
	}
	return attrs
}

func anyField(ft FieldsTable, pred func(Field) bool) bool {
	for _, f := range ft {
		if pred(f) {
			return true
		}
	}
	return false
}
