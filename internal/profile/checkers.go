// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Chase Nunez

package profile

import "regexp"

var (
	integerRe = regexp.MustCompile(`^[+-]?\d+$`)
	numberRe  = regexp.MustCompile(`^[+-]?\d+(\.\d+)?([eE][+-]?\d+)?$`)
)

func isInteger(s string) bool { return integerRe.MatchString(s) }
func isNumber(s string) bool  { return numberRe.MatchString(s) }

// IsOfType reports whether a single cell value satisfies the given type.
// TypeString accepts everything.
func IsOfType(s string, t Type) bool {
	switch t {
	case TypeInteger:
		return isInteger(s)
	case TypeNumber:
		return isNumber(s)
	case TypeDatetime:
		return IsDatetime(s)
	}
	return true
}

// candidates is the classification cascade, most specific first. A column
// is assigned the first candidate that every non-missing value satisfies;
// TypeString is the implicit final fallback.
var candidates = []struct {
	typ Type
	ok  func(string) bool
}{
	{TypeInteger, isInteger},
	{TypeNumber, isNumber},
	{TypeDatetime, IsDatetime},
}

// Infer classifies a column from its non-missing values. A single value
// that fails a candidate demotes the whole column to the next one; an
// empty value set yields TypeString.
func Infer(values []string) Type {
	if len(values) == 0 {
		return TypeString
	}

	alive := make([]bool, len(candidates))
	for i := range alive {
		alive[i] = true
	}
	remaining := len(candidates)

	for _, v := range values {
		for i, c := range candidates {
			if alive[i] && !c.ok(v) {
				alive[i] = false
				remaining--
			}
		}
		if remaining == 0 {
			break
		}
	}

	for i, c := range candidates {
		if alive[i] {
			return c.typ
		}
	}
	return TypeString
}
