// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Chase Nunez

package icsv

import "strconv"

// AssembleMetadata builds the metadata record for a document. The four
// required keys come first, in RequiredKeys order; optional entries follow
// in the order supplied. An optional entry naming a required key replaces
// its computed value without changing its position, so overrides can never
// remove a required key.
func AssembleMetadata(delimiter string, columns, rows int, optional ...Pair) Metadata {
	var md Metadata
	md.Set(KeyVersion, FormatVersion)
	md.Set(KeyFieldDelimiter, delimiter)
	md.Set(KeyColumns, strconv.Itoa(columns))
	md.Set(KeyRows, strconv.Itoa(rows))

	for _, p := range optional {
		md.Set(p.Key, p.Value)
	}
	return md
}
