// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Chase Nunez

// Package icsv implements the iCSV structured text format: a declaration
// line, a comment-prefixed metadata block, a comment-prefixed fields block,
// and an un-prefixed data block.
package icsv

// Format identity of the declaration line.
const (
	FormatName    = "iCSV"
	FormatVersion = "1.0"
	Encoding      = "UTF-8"
)

// Metadata keys. The first four are required in every document.
const (
	KeyVersion            = "iCSV_version"
	KeyFieldDelimiter     = "field_delimiter"
	KeyColumns            = "columns"
	KeyRows               = "rows"
	KeyGenerator          = "generator"
	KeyCreationDate       = "creation_date"
	KeyNodata             = "nodata"
	KeySRID               = "srid"
	KeyGeometry           = "geometry"
	KeyApplicationProfile = "application_profile"
)

// RequiredKeys lists the metadata keys every document must carry, in
// serialization order.
var RequiredKeys = []string{KeyVersion, KeyFieldDelimiter, KeyColumns, KeyRows}

// Fields block attribute names.
const (
	AttrFields       = "fields"
	AttrTypes        = "types"
	AttrMin          = "min"
	AttrMax          = "max"
	AttrMissingCount = "missing_count"
	AttrDescription  = "description"
	AttrUnits        = "units"
)

// Pair is a single metadata key/value entry.
type Pair struct {
	Key   string
	Value string
}

// Metadata is an ordered key/value record. Setting an existing key
// replaces its value in place; new keys append.
type Metadata struct {
	pairs []Pair
}

// Set stores a value, preserving the position of an existing key.
func (m *Metadata) Set(key, value string) {
	for i := range m.pairs {
		if m.pairs[i].Key == key {
			m.pairs[i].Value = value
			return
		}
	}
	m.pairs = append(m.pairs, Pair{Key: key, Value: value})
}

// Get returns the value for key and whether it is present.
func (m *Metadata) Get(key string) (string, bool) {
	for _, p := range m.pairs {
		if p.Key == key {
			return p.Value, true
		}
	}
	return "", false
}

// Pairs returns the entries in insertion order.
func (m *Metadata) Pairs() []Pair {
	return m.pairs
}

// Len returns the number of entries.
func (m *Metadata) Len() int {
	return len(m.pairs)
}

// Field describes one column in the fields block. The table is held as a
// single ordered slice so the per-attribute lists can never drift out of
// alignment; the parallel-list text layout exists only at the wire level.
type Field struct {
	Name         string
	Type         string
	Min          string
	Max          string
	MissingCount int
	Description  string
	Units        string
}

// FieldsTable is the ordered column descriptor list. Index i describes
// data cell i of every row.
type FieldsTable []Field

// Names returns the column names in order.
func (ft FieldsTable) Names() []string {
	names := make([]string, len(ft))
	for i, f := range ft {
		names[i] = f.Name
	}
	return names
}

// Document is a fully parsed or fully assembled iCSV file. Rows hold raw
// pre-split cells addressed by position; nothing in a row is looked up by
// column name.
type Document struct {
	// Profile is the optional application profile annotating the
	// declaration line.
	Profile string

	Metadata Metadata
	Fields   FieldsTable
	Rows     [][]string
}

// Delimiter returns the field delimiter recorded in metadata.
func (d *Document) Delimiter() string {
	v, _ := d.Metadata.Get(KeyFieldDelimiter)
	return v
}
