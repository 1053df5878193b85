// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Chase Nunez

package prompts

import (
	"github.com/charmbracelet/huh"
)

// RunEnrichForm prompts for the CSV input path when it was not given on
// the command line.
func RunEnrichForm(file *string) error {
	if *file != "" {
		return nil
	}
	return huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("CSV file to enrich").
				Placeholder("data/station.csv").
				Validate(fileValidator).
				Value(file),
		),
	).WithTheme(Theme()).Run()
}

// RunValidateForm prompts for the iCSV input path and, when more than one
// validator is registered, which one to run.
func RunValidateForm(file *string, validator *string, available []string) error {
	var groups []*huh.Group

	if *file == "" {
		groups = append(groups, huh.NewGroup(
			huh.NewInput().
				Title("iCSV file to validate").
				Placeholder("data/station.icsv").
				Validate(fileValidator).
				Value(file),
		))
	}

	if *validator == "" && len(available) > 1 {
		options := make([]huh.Option[string], 0, len(available))
		for _, name := range available {
			options = append(options, huh.NewOption(name, name))
		}
		groups = append(groups, huh.NewGroup(
			huh.NewSelect[string]().
				Title("Validator to run").
				Options(options...).
				Value(validator),
		))
	}

	if len(groups) == 0 {
		return nil
	}
	return huh.NewForm(groups...).WithTheme(Theme()).Run()
}
