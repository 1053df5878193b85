// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Chase Nunez

package tableschema

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/chasenunez/DEVO/internal/icsv"
	"github.com/chasenunez/DEVO/internal/profile"
)

func TestFromProfiles(t *testing.T) {
	cols := []profile.Column{
		{Name: "timestamp", Type: profile.TypeDatetime, Min: "2020-01-01T00:00:00", Max: "2020-01-01T01:00:00", Required: true},
		{Name: "ta", Type: profile.TypeInteger, Min: int64(10), Max: int64(12), Required: true},
		{Name: "site", Type: profile.TypeString, MissingCount: 1},
	}
	missing := profile.NewMissingSet("", "NA")

	s := FromProfiles(cols, missing)
	require.Len(t, s.Fields, 3)

	ts := s.Fields[0]
	assert.Equal(t, "timestamp", ts.Name)
	assert.Equal(t, "datetime", ts.Type)
	assert.Equal(t, "any", ts.Format, "format is set only for datetime columns")
	require.NotNil(t, ts.Constraints)
	assert.True(t, ts.Constraints.Required)
	assert.Equal(t, "2020-01-01T00:00:00", ts.Constraints.Minimum)

	ta := s.Fields[1]
	assert.Empty(t, ta.Format)
	require.NotNil(t, ta.Constraints)
	assert.Equal(t, int64(10), ta.Constraints.Minimum)
	assert.Equal(t, int64(12), ta.Constraints.Maximum)

	site := s.Fields[2]
	assert.Empty(t, site.Format)
	assert.Nil(t, site.Constraints, "optional string column carries no constraints")

	assert.Equal(t, []string{"", "NA"}, s.MissingValues)
}

func TestFromFields(t *testing.T) {
	ft := icsv.FieldsTable{
		{Name: "ta", Type: "integer", Min: "10", Max: "12", MissingCount: 0},
		{Name: "note", Type: "", MissingCount: 2},
	}

	s := FromFields(ft, profile.DefaultMissing())
	require.Len(t, s.Fields, 2)

	assert.Equal(t, "integer", s.Fields[0].Type)
	assert.Equal(t, int64(10), s.Fields[0].Constraints.Minimum)
	assert.Equal(t, "string", s.Fields[1].Type, "empty type degrades to string")
	assert.Nil(t, s.Fields[1].Constraints)
}

func TestWriteJSON(t *testing.T) {
	cols := []profile.Column{
		{Name: "rh", Type: profile.TypeNumber, Min: 0.5, Max: 0.55, Required: true},
	}

	var buf strings.Builder
	require.NoError(t, FromProfiles(cols, profile.NewMissingSet("")).WriteJSON(&buf))
	out := buf.String()

	assert.Contains(t, out, `"name": "rh"`)
	assert.Contains(t, out, `"type": "number"`)
	assert.Contains(t, out, `"required": true`)
	assert.Contains(t, out, `"minimum": 0.5`)
	assert.Contains(t, out, `"missingValues"`)
}
