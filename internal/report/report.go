// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Chase Nunez

// Package report renders validator findings as human-readable text, with
// a friendly suggestion per error code.
package report

import (
	"fmt"
	"os"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/chasenunez/DEVO/internal/validate"
)

// suggestions maps finding codes to remediation hints.
var suggestions = map[string]string{
	"type-error":       "Check that values in this column match the expected type (e.g., numbers, ISO datetimes).",
	"missing-cell":     "Consider filling missing values, setting a nodata marker, or making the field optional.",
	"blank-row":        "There is an unexpected blank row; remove or investigate formatting issues.",
	"extra-cell":       "A row has too many cells: check delimiter or quoting.",
	"duplicate-label":  "Duplicate column name: rename columns to unique names.",
	"constraint-error": "The value falls outside the recorded min/max; verify the data or widen the bounds.",
}

const defaultSuggestion = "Inspect the flagged value and fix formatting or data entry issues."

// Suggestion returns the remediation hint for a finding code.
func Suggestion(code string) string {
	if s, ok := suggestions[code]; ok {
		return s
	}
	return defaultSuggestion
}

// Format renders a report as plain text, one finding per pair of lines.
func Format(r *validate.Report) string {
	if r.Valid() {
		return "Data validation [OK]"
	}

	var b strings.Builder
	b.WriteString("Data validation errors:")
	for _, f := range r.Findings {
		b.WriteString(fmt.Sprintf("\n  Row %s, Col %s [%s]: %s",
			position(f.RowNumber), position(f.FieldNumber), f.Code, f.Message))
		b.WriteString("\n    Suggestion: " + Suggestion(f.Code))
	}
	return b.String()
}

// Print writes a styled rendering of the report to stdout.
func Print(r *validate.Report) {
	success := lipgloss.NewStyle().Foreground(lipgloss.Color("#27ca3f"))
	failure := lipgloss.NewStyle().Foreground(lipgloss.Color("#e74c3c"))
	label := lipgloss.NewStyle().Foreground(lipgloss.Color("#bababa"))

	fmt.Println()
	if r.Valid() {
		fmt.Printf("%s Data validation [OK]\n", success.Render("✓"))
		return
	}

	fmt.Printf("%s Data validation errors:\n", failure.Render("✗"))
	for _, f := range r.Findings {
		fmt.Printf("  %s %s\n",
			label.Render(fmt.Sprintf("Row %s, Col %s [%s]:", position(f.RowNumber), position(f.FieldNumber), f.Code)),
			f.Message)
		fmt.Printf("    %s\n", label.Render("Suggestion: "+Suggestion(f.Code)))
	}
}

// WriteFile writes the plain-text rendering to a report file.
func WriteFile(path string, r *validate.Report) error {
	return os.WriteFile(path, []byte(Format(r)+"\n"), 0o600)
}

// position renders a 1-based index, "?" when unknown.
func position(n int) string {
	if n <= 0 {
		return "?"
	}
	return fmt.Sprintf("%d", n)
}
