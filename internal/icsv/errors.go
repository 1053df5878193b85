// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Chase Nunez

package icsv

import (
	"fmt"
	"sort"
	"strings"
)

// DelimiterError reports that no candidate delimiter split every sampled
// line into one consistent column count. Observed maps each candidate to
// the distinct column counts seen across the sample.
type DelimiterError struct {
	Observed map[string][]int
}

func (e *DelimiterError) Error() string {
	cands := make([]string, 0, len(e.Observed))
	for c := range e.Observed {
		cands = append(cands, c)
	}
	sort.Strings(cands)

	parts := make([]string, 0, len(cands))
	for _, c := range cands {
		parts = append(parts, fmt.Sprintf("%q -> %v", c, e.Observed[c]))
	}
	return "cannot detect field delimiter, ambiguous column counts: " + strings.Join(parts, ", ")
}

// DocumentError reports a structural problem: a missing or unrecognized
// declaration line, a missing required metadata key, or a missing or
// inconsistent fields section.
type DocumentError struct {
	Reason string
}

func (e *DocumentError) Error() string {
	return "malformed iCSV document: " + e.Reason
}

func malformed(format string, args ...any) error {
	return &DocumentError{Reason: fmt.Sprintf(format, args...)}
}

// RowLengthError reports a data row whose cell count disagrees with the
// fields table. Row is the zero-based index within the data section.
type RowLengthError struct {
	Row      int
	Expected int
	Actual   int
}

func (e *RowLengthError) Error() string {
	return fmt.Sprintf("data row %d has %d cells, expected %d", e.Row, e.Actual, e.Expected)
}
