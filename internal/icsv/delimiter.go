// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Chase Nunez

package icsv

import (
	"bufio"
	"io"
	"strings"
)

// DelimiterCandidates is the candidate set tried during detection, in
// priority order. The first candidate that splits every sampled line into
// the same, greater-than-one, column count wins.
var DelimiterCandidates = []string{",", "\t", "|", ";"}

// DefaultSampleSize is how many lines DetectDelimiter should be fed.
// Detection runs on a bounded prefix so startup stays cheap on large
// files; profiling and writing still see every row.
const DefaultSampleSize = 10

// DetectDelimiter picks the field delimiter for the sampled lines. A
// non-empty forced delimiter is returned unchanged. Detection is a pure
// function of the sample; blank lines are ignored.
func DetectDelimiter(lines []string, forced string) (string, error) {
	if forced != "" {
		return forced, nil
	}

	sample := make([]string, 0, len(lines))
	for _, line := range lines {
		if strings.TrimSpace(line) != "" {
			sample = append(sample, line)
		}
	}

	observed := make(map[string][]int, len(DelimiterCandidates))
	for _, cand := range DelimiterCandidates {
		counts := splitCounts(sample, cand)
		if len(counts) == 1 && counts[0] > 1 {
			return cand, nil
		}
		observed[cand] = counts
	}
	return "", &DelimiterError{Observed: observed}
}

// splitCounts returns the distinct column counts produced by splitting
// each line on cand, in first-seen order.
func splitCounts(lines []string, cand string) []int {
	var counts []int
	for _, line := range lines {
		n := len(strings.Split(line, cand))
		seen := false
		for _, c := range counts {
			if c == n {
				seen = true
				break
			}
		}
		if !seen {
			counts = append(counts, n)
		}
	}
	return counts
}

// SampleLines reads up to n lines from r for delimiter detection.
func SampleLines(r io.Reader, n int) ([]string, error) {
	scanner := bufio.NewScanner(r)
	lines := make([]string, 0, n)
	for len(lines) < n && scanner.Scan() {
		lines = append(lines, scanner.Text())
	}
	return lines, scanner.Err()
}
