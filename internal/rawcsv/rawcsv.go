// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Chase Nunez

// Package rawcsv loads plain CSV input into an in-memory table of raw
// string cells.
package rawcsv

import (
	"encoding/csv"
	"errors"
	"io"
	"os"
	"strings"
)

// Table is a raw CSV table: a header and rows of unparsed cells. Every
// row has exactly len(Header) cells; Read pads short rows with empty
// cells and truncates long ones.
type Table struct {
	Header []string
	Rows   [][]string
}

// Read loads a whole CSV stream using the given delimiter. The first
// record is the header; header names are trimmed, cells are kept as-is.
func Read(r io.Reader, delimiter rune) (*Table, error) {
	cr := csv.NewReader(r)
	cr.Comma = delimiter
	cr.FieldsPerRecord = -1 // width is normalized below
	cr.LazyQuotes = true

	header, err := cr.Read()
	if err == io.EOF {
		return nil, errors.New("empty input: no header row")
	}
	if err != nil {
		return nil, err
	}
	for i := range header {
		header[i] = strings.TrimSpace(header[i])
	}

	t := &Table{Header: header}
	for {
		record, err := cr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, err
		}
		t.Rows = append(t.Rows, normalize(record, len(header)))
	}
	return t, nil
}

// ReadFile loads a CSV file.
func ReadFile(path string, delimiter rune) (*Table, error) {
	f, err := os.Open(path) //nolint:gosec // path is provided by caller
	if err != nil {
		return nil, err
	}
	defer f.Close() //nolint:errcheck
	return Read(f, delimiter)
}

// Column returns the cells of column i in row order.
func (t *Table) Column(i int) []string {
	out := make([]string, len(t.Rows))
	for r, row := range t.Rows {
		out[r] = row[i]
	}
	return out
}

func normalize(record []string, width int) []string {
	if len(record) == width {
		return record
	}
	if len(record) > width {
		return record[:width]
	}
	padded := make([]string, width)
	copy(padded, record)
	return padded
}
