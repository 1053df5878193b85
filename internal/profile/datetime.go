// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Chase Nunez

package profile

import (
	"strings"
	"time"

	"github.com/araddon/dateparse"
)

// ISOLayout is how datetime bounds are rendered in fields blocks and
// schema constraints. Fractional seconds and zone offsets are dropped.
const ISOLayout = "2006-01-02T15:04:05"

// isoLayouts are tried before the general parser; ISO-8601 shapes are by
// far the most common in instrument exports.
var isoLayouts = []string{
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05",
	"2006-01-02 15:04",
	"2006-01-02",
}

// fallbackLayouts cover regional date shapes the general parser tends to
// misread or reject.
var fallbackLayouts = []string{
	"02.01.2006",
	"2006/01/02",
	"20060102T150405",
}

// ParseDatetime parses a cell as a timestamp, trying ISO-8601 layouts
// first and a general date parser second.
func ParseDatetime(s string) (time.Time, bool) {
	s = strings.TrimSpace(s)
	if !strings.ContainsAny(s, "0123456789") {
		return time.Time{}, false
	}
	for _, layout := range isoLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t, true
		}
	}
	if t, err := dateparse.ParseAny(s); err == nil {
		return t, true
	}
	for _, layout := range fallbackLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}

// IsDatetime reports whether the cell parses as a timestamp.
func IsDatetime(s string) bool {
	_, ok := ParseDatetime(s)
	return ok
}

func datetimeBounds(values []string) (any, any) {
	var min, max time.Time
	seen := false
	for _, v := range values {
		t, ok := ParseDatetime(v)
		if !ok {
			continue
		}
		if !seen || t.Before(min) {
			min = t
		}
		if !seen || t.After(max) {
			max = t
		}
		seen = true
	}
	if !seen {
		return nil, nil
	}
	return min.Format(ISOLayout), max.Format(ISOLayout)
}
