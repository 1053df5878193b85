// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Chase Nunez

package icsv

import (
	"bufio"
	"io"
	"os"
	"strconv"
	"strings"
)

const (
	commentPrefix   = "#"
	sectionMetadata = "[METADATA]"
	sectionFields   = "[FIELDS]"
	sectionData     = "[DATA]"
)

// Write serializes doc: the declaration line, the comment-prefixed
// metadata and fields sections, then one un-prefixed line per data row.
// Field names live only in the fields section; the data section never
// repeats them as a header row.
//
// The document invariants are checked before anything is emitted: the
// required metadata keys must be present, the columns key must equal the
// fields table length, every row must match it too, and no cell or field
// attribute may contain the delimiter, since the format has no quoting.
func Write(w io.Writer, doc *Document) error {
	if err := checkWritable(doc); err != nil {
		return err
	}
	delim := doc.Delimiter()

	bw := bufio.NewWriter(w)
	writeLine := func(parts ...string) {
		for i, p := range parts {
			if i > 0 {
				bw.WriteString(" ")
			}
			bw.WriteString(p)
		}
		bw.WriteString("\n")
	}

	decl := []string{commentPrefix, FormatName, FormatVersion, Encoding}
	if doc.Profile != "" {
		decl = append(decl, doc.Profile)
	}
	writeLine(decl...)

	writeLine(commentPrefix, sectionMetadata)
	for _, p := range doc.Metadata.Pairs() {
		writeLine(commentPrefix, p.Key, "=", p.Value)
	}
	writeLine()

	writeLine(commentPrefix, sectionFields)
	for _, attr := range doc.Fields.attributes(delim) {
		writeLine(commentPrefix, attr.Key, "=", attr.Value)
	}
	writeLine()

	writeLine(commentPrefix, sectionData)
	for _, row := range doc.Rows {
		writeLine(strings.Join(row, delim))
	}
	return bw.Flush()
}

// WriteFile serializes doc to a file.
func WriteFile(path string, doc *Document) error {
	f, err := os.Create(path) //nolint:gosec // path is provided by caller
	if err != nil {
		return err
	}
	defer f.Close() //nolint:errcheck
	if err := Write(f, doc); err != nil {
		return err
	}
	return f.Close()
}

func checkWritable(doc *Document) error {
	for _, key := range RequiredKeys {
		if _, ok := doc.Metadata.Get(key); !ok {
			return malformed("missing required metadata key %q", key)
		}
	}
	if doc.Delimiter() == "" {
		return malformed("empty %s", KeyFieldDelimiter)
	}
	if len(doc.Fields) == 0 {
		return malformed("fields table is empty")
	}
	cols, _ := doc.Metadata.Get(KeyColumns)
	if want := strconv.Itoa(len(doc.Fields)); cols != want {
		return malformed("metadata %s = %s disagrees with fields table length %s", KeyColumns, cols, want)
	}
	delim := doc.Delimiter()
	for i, f := range doc.Fields {
		for _, v := range []string{f.Name, f.Type, f.Min, f.Max, f.Description, f.Units} {
			if strings.Contains(v, delim) {
				return malformed("field %d (%q) contains the delimiter %q", i, f.Name, delim)
			}
		}
	}
	for i, row := range doc.Rows {
		if len(row) != len(doc.Fields) {
			return &RowLengthError{Row: i, Expected: len(doc.Fields), Actual: len(row)}
		}
		for j, cell := range row {
			if strings.Contains(cell, delim) {
				return malformed("cell %d of data row %d contains the delimiter %q", j, i, delim)
			}
		}
	}
	return nil
}
