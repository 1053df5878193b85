// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Chase Nunez

package icsv

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDetectDelimiter(t *testing.T) {
	tests := []struct {
		name  string
		lines []string
		want  string
	}{
		{
			name:  "comma wins by priority and consistency",
			lines: []string{"a,b,c", "1,2,3", "4,5,6"},
			want:  ",",
		},
		{
			name:  "pipe",
			lines: []string{"a|b|c", "1|2|3"},
			want:  "|",
		},
		{
			name:  "semicolon",
			lines: []string{"a;b", "1;2"},
			want:  ";",
		},
		{
			name:  "tab",
			lines: []string{"a\tb\tc", "1\t2\t3"},
			want:  "\t",
		},
		{
			name:  "blank lines ignored",
			lines: []string{"a,b", "", "1,2"},
			want:  ",",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := DetectDelimiter(tt.lines, "")
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestDetectDelimiter_Forced(t *testing.T) {
	got, err := DetectDelimiter([]string{"a;b;c"}, "|")
	require.NoError(t, err)
	assert.Equal(t, "|", got, "forced delimiter must be used unchanged")
}

func TestDetectDelimiter_Ambiguous(t *testing.T) {
	// ragged comma counts and no other candidate splits at all
	_, err := DetectDelimiter([]string{"a,b,c", "1,2"}, "")
	require.Error(t, err)

	var delimErr *DelimiterError
	require.ErrorAs(t, err, &delimErr)
	assert.Equal(t, []int{3, 2}, delimErr.Observed[","])
	assert.Contains(t, delimErr.Error(), "ambiguous column counts")
}

func TestDetectDelimiter_SingleColumnNeverWins(t *testing.T) {
	// every line splits into exactly one cell under every candidate
	_, err := DetectDelimiter([]string{"abc", "def"}, "")

	var delimErr *DelimiterError
	require.ErrorAs(t, err, &delimErr)
}

func TestSampleLines(t *testing.T) {
	r := strings.NewReader("l1\nl2\nl3\nl4\n")

	lines, err := SampleLines(r, 2)
	require.NoError(t, err)
	assert.Equal(t, []string{"l1", "l2"}, lines)
}
