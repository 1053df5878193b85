// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Chase Nunez

package export

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/chasenunez/DEVO/internal/tableschema"
)

func sampleSchema() *tableschema.Schema {
	return &tableschema.Schema{
		Fields: []tableschema.Field{
			{Name: "timestamp", Type: "datetime", Format: "any",
				Constraints: &tableschema.Constraints{Required: true}},
			{Name: "ta", Type: "integer",
				Constraints: &tableschema.Constraints{Required: true, Minimum: int64(10), Maximum: int64(12)}},
			{Name: "note", Type: "string"},
		},
		MissingValues: []string{"", "NA"},
	}
}

func TestJSONSchema(t *testing.T) {
	s := JSONSchema(sampleSchema(), "weather")

	assert.Equal(t, "weather", s.Title)
	assert.Equal(t, "object", s.Type)
	require.Len(t, s.Properties, 3)

	ts := s.Properties["timestamp"]
	require.NotNil(t, ts)
	assert.Equal(t, "string", ts.Type)
	assert.Equal(t, "date-time", ts.Format)

	ta := s.Properties["ta"]
	require.NotNil(t, ta)
	assert.Equal(t, "integer", ta.Type)
	require.NotNil(t, ta.Minimum)
	assert.Equal(t, float64(10), *ta.Minimum)
	require.NotNil(t, ta.Maximum)
	assert.Equal(t, float64(12), *ta.Maximum)

	assert.Equal(t, []string{"timestamp", "ta"}, s.Required)
	assert.Equal(t, "string", s.Properties["note"].Type)
}

func TestWriteJSON(t *testing.T) {
	var buf strings.Builder
	require.NoError(t, WriteJSON(&buf, JSONSchema(sampleSchema(), "weather")))

	out := buf.String()
	assert.Contains(t, out, `"title": "weather"`)
	assert.Contains(t, out, `"format": "date-time"`)
	assert.Contains(t, out, `"required"`)
}

func TestWriteYAML(t *testing.T) {
	var buf strings.Builder
	require.NoError(t, WriteYAML(&buf, JSONSchema(sampleSchema(), "weather")))

	out := buf.String()
	assert.Contains(t, out, "title: weather")
	assert.Contains(t, out, "type: object")
}
