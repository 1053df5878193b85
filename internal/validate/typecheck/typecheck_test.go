// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Chase Nunez

package typecheck

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/chasenunez/DEVO/internal/profile"
	"github.com/chasenunez/DEVO/internal/tableschema"
)

func schemaFor(t *testing.T, header []string, rows [][]string) *tableschema.Schema {
	t.Helper()
	cols := profile.Columns(header, rows, profile.DefaultMissing())
	return tableschema.FromProfiles(cols, profile.DefaultMissing())
}

func TestValidate_CleanRows(t *testing.T) {
	rows := [][]string{
		{"2020-01-01T00:00:00", "10"},
		{"2020-01-01T01:00:00", "12"},
	}
	schema := schemaFor(t, []string{"timestamp", "ta"}, rows)

	report, err := Validator{}.Validate(schema, rows)
	require.NoError(t, err)
	assert.True(t, report.Valid())
}

func TestValidate_TypeError(t *testing.T) {
	schema := &tableschema.Schema{
		Fields: []tableschema.Field{
			{Name: "timestamp", Type: "datetime"},
			{Name: "ta", Type: "integer"},
		},
		MissingValues: []string{""},
	}
	rows := [][]string{
		{"2020-01-01T00:00:00", "10"},
		{"2020-01-01T01:00:00", "not_a_number"},
	}

	report, err := Validator{}.Validate(schema, rows)
	require.NoError(t, err)
	require.Len(t, report.Findings, 1)

	f := report.Findings[0]
	assert.Equal(t, CodeTypeError, f.Code)
	assert.Equal(t, 2, f.RowNumber)
	assert.Equal(t, 2, f.FieldNumber)
	assert.Contains(t, f.Message, "not_a_number")
}

func TestValidate_MissingCell(t *testing.T) {
	schema := &tableschema.Schema{
		Fields: []tableschema.Field{
			{Name: "ta", Type: "integer", Constraints: &tableschema.Constraints{Required: true}},
			{Name: "note", Type: "string"},
		},
		MissingValues: []string{"", "NA"},
	}
	rows := [][]string{
		{"10", "ok"},
		{"NA", "ok"},
		{"12", "NA"}, // optional field: placeholder is fine
	}

	report, err := Validator{}.Validate(schema, rows)
	require.NoError(t, err)
	require.Len(t, report.Findings, 1)
	assert.Equal(t, CodeMissingCell, report.Findings[0].Code)
	assert.Equal(t, 2, report.Findings[0].RowNumber)
	assert.Equal(t, 1, report.Findings[0].FieldNumber)
}

func TestValidate_BlankRowAndExtraCell(t *testing.T) {
	schema := &tableschema.Schema{
		Fields:        []tableschema.Field{{Name: "a", Type: "integer"}},
		MissingValues: []string{},
	}
	rows := [][]string{
		{"  "},
		{"1", "surplus"},
	}

	report, err := Validator{}.Validate(schema, rows)
	require.NoError(t, err)
	require.Len(t, report.Findings, 2)
	assert.Equal(t, CodeBlankRow, report.Findings[0].Code)
	assert.Equal(t, CodeExtraCell, report.Findings[1].Code)
	assert.Equal(t, 2, report.Findings[1].FieldNumber)
}

func TestValidate_ConstraintError(t *testing.T) {
	schema := &tableschema.Schema{
		Fields: []tableschema.Field{
			{Name: "ta", Type: "integer", Constraints: &tableschema.Constraints{
				Minimum: int64(0), Maximum: int64(40),
			}},
		},
		MissingValues: []string{""},
	}

	report, err := Validator{}.Validate(schema, [][]string{{"-5"}, {"20"}, {"99"}})
	require.NoError(t, err)
	require.Len(t, report.Findings, 2)
	assert.Equal(t, CodeConstraintError, report.Findings[0].Code)
	assert.Equal(t, 1, report.Findings[0].RowNumber)
	assert.Equal(t, CodeConstraintError, report.Findings[1].Code)
	assert.Equal(t, 3, report.Findings[1].RowNumber)
}
