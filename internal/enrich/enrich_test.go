// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Chase Nunez

package enrich

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/chasenunez/DEVO/internal/icsv"
	"github.com/chasenunez/DEVO/internal/rawcsv"
)

func fixedNow() time.Time {
	return time.Date(2020, 6, 1, 12, 0, 0, 0, time.UTC)
}

func TestFile_EndToEnd(t *testing.T) {
	dir := t.TempDir()
	in := filepath.Join(dir, "weather.csv")
	csvText := "timestamp,ta,rh\n" +
		"2020-01-01T00:00:00,10,0.5\n" +
		"2020-01-01T01:00:00,12,0.55\n"
	require.NoError(t, os.WriteFile(in, []byte(csvText), 0o600))

	res, err := File(in, Options{Now: fixedNow, Generator: "devo test"})
	require.NoError(t, err)

	assert.Equal(t, filepath.Join(dir, "weather.icsv"), res.IcsvPath)
	assert.Equal(t, filepath.Join(dir, "weather_schema.json"), res.SchemaPath)

	doc, err := icsv.ParseFile(res.IcsvPath)
	require.NoError(t, err)

	assert.Equal(t, "|", doc.Delimiter(), "comma input switches to pipe output")
	require.Len(t, doc.Fields, 3)
	assert.Equal(t, "datetime", doc.Fields[0].Type)
	assert.Equal(t, "integer", doc.Fields[1].Type)
	assert.Equal(t, "number", doc.Fields[2].Type)
	for _, f := range doc.Fields {
		assert.Equal(t, 0, f.MissingCount)
	}
	require.Len(t, doc.Rows, 2)
	assert.Equal(t, []string{"2020-01-01T00:00:00", "10", "0.5"}, doc.Rows[0])

	created, ok := doc.Metadata.Get(icsv.KeyCreationDate)
	require.True(t, ok)
	assert.Equal(t, "2020-06-01T12:00:00Z", created)

	gen, ok := doc.Metadata.Get(icsv.KeyGenerator)
	require.True(t, ok)
	assert.Equal(t, "devo test", gen)

	schemaBytes, err := os.ReadFile(res.SchemaPath) //nolint:gosec // test file path
	require.NoError(t, err)
	assert.Contains(t, string(schemaBytes), `"required": true`)
}

func TestTable_NodataAutodetect(t *testing.T) {
	table := &rawcsv.Table{
		Header: []string{"a", "b"},
		Rows: [][]string{
			{"1", "NA"},
			{"NA", "2"},
			{"", "3"},
		},
	}

	doc, _ := Table(table, ",", Options{Now: fixedNow})

	nodata, ok := doc.Metadata.Get(icsv.KeyNodata)
	require.True(t, ok)
	assert.Equal(t, "NA", nodata, "most frequent placeholder wins")
}

func TestTable_NodataOverrideExtendsMissingSet(t *testing.T) {
	table := &rawcsv.Table{
		Header: []string{"ta"},
		Rows:   [][]string{{"10"}, {"-7777"}, {"12"}},
	}

	doc, schema := Table(table, ";", Options{Nodata: "-7777", Now: fixedNow})

	nodata, _ := doc.Metadata.Get(icsv.KeyNodata)
	assert.Equal(t, "-7777", nodata)
	assert.Equal(t, 1, doc.Fields[0].MissingCount)
	assert.Equal(t, "integer", doc.Fields[0].Type)
	assert.Contains(t, schema.MissingValues, "-7777")
}

func TestTable_GeometryHints(t *testing.T) {
	tests := []struct {
		name         string
		header       []string
		wantGeometry string
		wantSRID     string
	}{
		{"explicit geometry column", []string{"geometry", "ta"}, "column:geometry", ""},
		{"lat lon pair", []string{"Latitude", "Longitude", "ta"}, "column:Latitude,Longitude", "EPSG:4326"},
		{"no spatial columns", []string{"ta", "rh"}, "", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rows := make([][]string, 0)
			table := &rawcsv.Table{Header: tt.header, Rows: rows}
			doc, _ := Table(table, "|", Options{Now: fixedNow})

			geometry, ok := doc.Metadata.Get(icsv.KeyGeometry)
			if tt.wantGeometry == "" {
				assert.False(t, ok)
				return
			}
			require.True(t, ok)
			assert.Equal(t, tt.wantGeometry, geometry)

			srid, ok := doc.Metadata.Get(icsv.KeySRID)
			if tt.wantSRID == "" {
				assert.False(t, ok)
			} else {
				require.True(t, ok)
				assert.Equal(t, tt.wantSRID, srid)
			}
		})
	}
}

func TestOutputDelimiter(t *testing.T) {
	assert.Equal(t, "|", OutputDelimiter(","))
	assert.Equal(t, ";", OutputDelimiter(";"))
	assert.Equal(t, "\t", OutputDelimiter("\t"))
}

func TestFile_ForcedDelimiter(t *testing.T) {
	dir := t.TempDir()
	in := filepath.Join(dir, "data.csv")
	require.NoError(t, os.WriteFile(in, []byte("a;b\n1;2\n"), 0o600))

	res, err := File(in, Options{Delimiter: ";", Now: fixedNow})
	require.NoError(t, err)

	assert.Equal(t, ";", res.Document.Delimiter())
	assert.Equal(t, [][]string{{"1", "2"}}, res.Document.Rows)
}

func TestFile_AmbiguousDelimiterFails(t *testing.T) {
	dir := t.TempDir()
	in := filepath.Join(dir, "data.csv")
	require.NoError(t, os.WriteFile(in, []byte("justone\nvalue\n"), 0o600))

	_, err := File(in, Options{Now: fixedNow})
	var delimErr *icsv.DelimiterError
	require.ErrorAs(t, err, &delimErr)
}
