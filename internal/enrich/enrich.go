// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Chase Nunez

// Package enrich turns a plain CSV file into an iCSV document and a
// schema descriptor: delimiter detection, column profiling, metadata and
// fields assembly, serialization.
package enrich

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"github.com/chasenunez/DEVO/internal/icsv"
	"github.com/chasenunez/DEVO/internal/profile"
	"github.com/chasenunez/DEVO/internal/rawcsv"
	"github.com/chasenunez/DEVO/internal/tableschema"
)

// Options are the explicit knobs of one enrichment run. The pipeline
// never reads configuration from globals or the environment.
type Options struct {
	// Delimiter forces the input delimiter; empty means autodetect.
	Delimiter string
	// Nodata overrides the placeholder recorded in metadata and extends
	// the missing-value set used for profiling.
	Nodata string
	// ApplicationProfile annotates the declaration line when set.
	ApplicationProfile string
	// Generator is recorded in metadata; empty omits the key.
	Generator string

	// OutPath and SchemaPath override the default <input>.icsv and
	// <input>_schema.json siblings.
	OutPath    string
	SchemaPath string

	// Now stamps creation_date; defaults to time.Now.
	Now func() time.Time
}

// Result reports what one run produced.
type Result struct {
	IcsvPath   string
	SchemaPath string
	Document   *icsv.Document
	Schema     *tableschema.Schema
}

// File enriches a CSV file on disk and writes the iCSV document plus the
// Table Schema JSON next to it (or to the override paths).
func File(path string, opts Options) (*Result, error) {
	f, err := os.Open(path) //nolint:gosec // path is provided by caller
	if err != nil {
		return nil, err
	}
	sample, err := icsv.SampleLines(f, icsv.DefaultSampleSize)
	f.Close() //nolint:errcheck,gosec
	if err != nil {
		return nil, err
	}

	delim, err := icsv.DetectDelimiter(sample, opts.Delimiter)
	if err != nil {
		return nil, err
	}
	slog.Debug("resolved input delimiter", "path", path, "delimiter", delim)

	table, err := rawcsv.ReadFile(path, rune(delim[0]))
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}

	doc, schema := Table(table, delim, opts)

	res := &Result{
		IcsvPath:   opts.OutPath,
		SchemaPath: opts.SchemaPath,
		Document:   doc,
		Schema:     schema,
	}
	base := strings.TrimSuffix(path, filepath.Ext(path))
	if res.IcsvPath == "" {
		res.IcsvPath = base + ".icsv"
	}
	if res.SchemaPath == "" {
		res.SchemaPath = base + "_schema.json"
	}

	if err := icsv.WriteFile(res.IcsvPath, doc); err != nil {
		return nil, err
	}
	if err := schema.WriteJSONFile(res.SchemaPath); err != nil {
		return nil, err
	}
	slog.Info("enriched CSV",
		"input", path, "icsv", res.IcsvPath, "schema", res.SchemaPath,
		"columns", len(doc.Fields), "rows", len(doc.Rows))
	return res, nil
}

// Table is the pure core of the pipeline: profile the table and assemble
// the document and schema descriptor, without touching the filesystem.
// inputDelim is the delimiter the table was split with; the document may
// record a different one (see OutputDelimiter). Column order follows the
// header and is preserved through every stage.
func Table(table *rawcsv.Table, inputDelim string, opts Options) (*icsv.Document, *tableschema.Schema) {
	missing := profile.DefaultMissing()
	if opts.Nodata != "" {
		missing = missing.With(opts.Nodata)
	}

	cols := profile.Columns(table.Header, table.Rows, missing)
	outDelim := OutputDelimiter(inputDelim)

	nodata := opts.Nodata
	if nodata == "" {
		nodata = detectNodata(table.Rows, missing)
	}

	optional := make([]icsv.Pair, 0, 6)
	if opts.ApplicationProfile != "" {
		optional = append(optional, icsv.Pair{Key: icsv.KeyApplicationProfile, Value: opts.ApplicationProfile})
	}
	now := opts.Now
	if now == nil {
		now = time.Now
	}
	optional = append(optional, icsv.Pair{
		Key:   icsv.KeyCreationDate,
		Value: now().UTC().Format(profile.ISOLayout) + "Z",
	})
	if nodata != "" {
		optional = append(optional, icsv.Pair{Key: icsv.KeyNodata, Value: nodata})
	}
	if geometry, srid := geometryHint(table.Header); geometry != "" {
		optional = append(optional, icsv.Pair{Key: icsv.KeyGeometry, Value: geometry})
		if srid != "" {
			optional = append(optional, icsv.Pair{Key: icsv.KeySRID, Value: srid})
		}
	}
	if opts.Generator != "" {
		optional = append(optional, icsv.Pair{Key: icsv.KeyGenerator, Value: opts.Generator})
	}

	doc := &icsv.Document{
		Profile:  opts.ApplicationProfile,
		Metadata: icsv.AssembleMetadata(outDelim, len(cols), len(table.Rows), optional...),
		Fields:   icsv.AssembleFields(cols),
		Rows:     table.Rows,
	}
	return doc, tableschema.FromProfiles(cols, missing)
}

// OutputDelimiter picks the delimiter for the produced document: comma
// input switches to pipe so metadata values and data cells stay free of
// the metadata syntax, anything else is kept.
func OutputDelimiter(inputDelim string) string {
	if inputDelim == "," {
		return "|"
	}
	return inputDelim
}

// detectNodata returns the most frequent placeholder observed in the
// data, ties broken lexicographically. Empty when none occur.
func detectNodata(rows [][]string, missing profile.MissingSet) string {
	counts := make(map[string]int)
	for _, row := range rows {
		for _, cell := range row {
			if missing.Contains(cell) {
				counts[cell]++
			}
		}
	}
	if len(counts) == 0 {
		return ""
	}
	placeholders := make([]string, 0, len(counts))
	for p := range counts {
		placeholders = append(placeholders, p)
	}
	sort.Slice(placeholders, func(i, j int) bool {
		if counts[placeholders[i]] != counts[placeholders[j]] {
			return counts[placeholders[i]] > counts[placeholders[j]]
		}
		return placeholders[i] < placeholders[j]
	})
	return placeholders[0]
}

// geometryHint inspects the header for spatial columns: an explicit
// geometry column, or a latitude/longitude pair (assumed EPSG:4326).
func geometryHint(header []string) (geometry, srid string) {
	lower := make([]string, len(header))
	for i, h := range header {
		lower[i] = strings.ToLower(h)
	}

	for i, h := range lower {
		if h == "geometry" {
			return "column:" + header[i], ""
		}
	}

	latIdx, lonIdx := -1, -1
	for i, h := range lower {
		switch h {
		case "lat", "latitude":
			latIdx = i
		case "lon", "lng", "longitude":
			lonIdx = i
		}
	}
	if latIdx >= 0 && lonIdx >= 0 {
		return fmt.Sprintf("column:%s,%s", header[latIdx], header[lonIdx]), "EPSG:4326"
	}
	return "", ""
}
