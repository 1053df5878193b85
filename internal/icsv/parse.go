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

// Parse reads a full iCSV document from r, the inverse of Write.
//
// Comment-prefixed lines are stripped and routed by the current section
// marker; everything after the data marker is read as raw rows split by
// the delimiter recovered from metadata. Blank lines and carriage
// returns are tolerated; cell content is otherwise preserved exactly,
// trailing whitespace included. Structural problems surface as
// *DocumentError, a row of the wrong width as *RowLengthError.
func Parse(r io.Reader) (*Document, error) {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 64*1024), 4*1024*1024)

	doc := &Document{}
	declSeen := false
	section := ""
	inData := false
	// fields values cannot be split until field_delimiter is known, so
	// they are collected raw and expanded after the scan.
	var fieldAttrs []Pair
	var dataLines []string

	for scanner.Scan() {
		line := strings.TrimRight(scanner.Text(), "\r")
		trimmed := strings.TrimSpace(line)
		if trimmed == "" {
			continue
		}

		if !strings.HasPrefix(trimmed, commentPrefix) {
			if inData {
				dataLines = append(dataLines, line)
				continue
			}
			if !declSeen {
				return nil, malformed("missing declaration line")
			}
			// stray content before [DATA]
			return nil, malformed("unexpected data line before %s marker", sectionData)
		}

		// keep the raw remainder of comment lines: a tab field delimiter
		// and trailing empty list items survive only in untrimmed text
		content := strings.TrimPrefix(strings.TrimLeft(line, " \t"), commentPrefix)
		content = strings.TrimLeft(content, " ")

		if !declSeen {
			profile, err := parseDeclaration(strings.TrimSpace(content))
			if err != nil {
				return nil, err
			}
			doc.Profile = profile
			declSeen = true
			continue
		}
		if inData {
			continue // comments inside the data section are ignored
		}

		switch strings.TrimSpace(content) {
		case sectionMetadata:
			section = sectionMetadata
			continue
		case sectionFields:
			section = sectionFields
			continue
		case sectionData:
			inData = true
			continue
		}

		key, value, found := strings.Cut(content, "=")
		if !found {
			continue // tolerate free-form comments
		}
		key = strings.TrimSpace(key)
		value = strings.Trim(value, " ")

		switch section {
		case sectionMetadata:
			doc.Metadata.Set(key, value)
		case sectionFields:
			fieldAttrs = append(fieldAttrs, Pair{Key: key, Value: value})
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	if !declSeen {
		return nil, malformed("missing declaration line")
	}

	for _, key := range RequiredKeys {
		if _, ok := doc.Metadata.Get(key); !ok {
			return nil, malformed("missing required metadata key %q", key)
		}
	}
	delim := doc.Delimiter()
	if delim == "" {
		return nil, malformed("empty %s", KeyFieldDelimiter)
	}

	fields, err := buildFields(fieldAttrs, doc.Metadata, delim)
	if err != nil {
		return nil, err
	}
	doc.Fields = fields

	doc.Rows = make([][]string, 0, len(dataLines))
	for i, line := range dataLines {
		row := strings.Split(line, delim)
		if len(row) != len(fields) {
			return nil, &RowLengthError{Row: i, Expected: len(fields), Actual: len(row)}
		}
		doc.Rows = append(doc.Rows, row)
	}
	return doc, nil
}

// ParseFile reads an iCSV document from a file.
func ParseFile(path string) (*Document, error) {
	f, err := os.Open(path) //nolint:gosec // path is provided by caller
	if err != nil {
		return nil, err
	}
	defer f.Close() //nolint:errcheck
	return Parse(f)
}

// parseDeclaration validates the stripped first comment line, which must
// read "<format-name> <version> <encoding>", optionally followed by an
// application profile annotation.
func parseDeclaration(content string) (profile string, err error) {
	parts := strings.Fields(content)
	if len(parts) < 3 || parts[0] != FormatName {
		return "", malformed("unrecognized declaration line %q", content)
	}
	if len(parts) > 3 {
		profile = strings.Join(parts[3:], " ")
	}
	return profile, nil
}

func buildFields(attrs []Pair, md Metadata, delim string) (FieldsTable, error) {
	if len(attrs) == 0 {
		return nil, malformed("missing or empty %s section", sectionFields)
	}

	lists := make(map[string][]string, len(attrs))
	for _, a := range attrs {
		lists[a.Key] = strings.Split(a.Value, delim)
	}

	names, ok := lists[AttrFields]
	if !ok {
		return nil, malformed("%s section has no %q list", sectionFields, AttrFields)
	}

	colsValue, _ := md.Get(KeyColumns)
	if cols, err := strconv.Atoi(colsValue); err != nil || cols != len(names) {
		return nil, malformed("metadata %s = %q disagrees with %d parsed field names",
			KeyColumns, colsValue, len(names))
	}
	for key, vals := range lists {
		if len(vals) != len(names) {
			return nil, malformed("inconsistent count in %q: expected %d, found %d",
				key, len(names), len(vals))
		}
	}

	at := func(key string, i int) string {
		if vals, ok := lists[key]; ok {
			return strings.TrimSpace(vals[i])
		}
		return ""
	}

	ft := make(FieldsTable, len(names))
	for i := range names {
		f := Field{
			Name:        strings.TrimSpace(names[i]),
			Type:        at(AttrTypes, i),
			Min:         at(AttrMin, i),
			Max:         at(AttrMax, i),
			Description: at(AttrDescription, i),
			Units:       at(AttrUnits, i),
		}
		if raw := at(AttrMissingCount, i); raw != "" {
			n, err := strconv.Atoi(raw)
			if err != nil {
				return nil, malformed("invalid %s value %q for column %q", AttrMissingCount, raw, f.Name)
			}
			f.MissingCount = n
		}
		ft[i] = f
	}
	return ft, nil
}
