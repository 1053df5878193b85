// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Chase Nunez

package commands

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/chasenunez/DEVO/internal/icsv"
	"github.com/chasenunez/DEVO/internal/profile"
	"github.com/chasenunez/DEVO/internal/prompts"
	"github.com/chasenunez/DEVO/internal/report"
	"github.com/chasenunez/DEVO/internal/tableschema"
	"github.com/chasenunez/DEVO/internal/validate"
)

type validateOptions struct {
	validator  string
	reportPath string
	nodata     string
}

func newValidateCmd(root *rootOptions, validators validate.Register) *cobra.Command {
	opts := &validateOptions{}

	cmd := &cobra.Command{
		Use:   "validate [file.icsv]",
		Short: "Validate an iCSV file against its own field descriptors",
		Long: fmt.Sprintf(`Parse an iCSV document, rebuild the schema descriptor from its
FIELDS section, and hand schema and rows to a validator.

Available validators: %s`, strings.Join(validators.Available(), ", ")),
		Example: `  # Validate with the builtin type checker
  devo validate station.icsv

  # Write the findings to a report file
  devo validate station.icsv --report station_report.txt`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var file string
			if len(args) == 1 {
				file = args[0]
			}
			if err := prompts.RunValidateForm(&file, &opts.validator, validators.Available()); err != nil {
				return err
			}
			return runValidate(root, validators, opts, file)
		},
	}

	cmd.Flags().StringVar(&opts.validator, "validator", "typecheck", "Validator to run")
	cmd.Flags().StringVar(&opts.reportPath, "report", "", "Also write the findings to this file")
	cmd.Flags().StringVar(&opts.nodata, "nodata", "", "Extra missing-value placeholder")
	return cmd
}

func runValidate(root *rootOptions, validators validate.Register, opts *validateOptions, file string) error {
	cfg, err := root.loadConfig()
	if err != nil {
		return err
	}

	doc, err := icsv.ParseFile(file)
	if err != nil {
		return fmt.Errorf("cannot parse %s: %w", file, err)
	}

	missing := profile.DefaultMissing()
	if nodata, ok := doc.Metadata.Get(icsv.KeyNodata); ok && nodata != "" {
		missing = missing.With(nodata)
	}
	if extra := firstOf(opts.nodata, cfg.Nodata); extra != "" {
		missing = missing.With(extra)
	}
	schema := tableschema.FromFields(doc.Fields, missing)

	validator, err := validators.Get(opts.validator)
	if err != nil {
		return fmt.Errorf("%w. Available validators: %s", err, strings.Join(validators.Available(), ", "))
	}

	rep, err := validator.Validate(schema, doc.Rows)
	if err != nil {
		return fmt.Errorf("validation failed: %w", err)
	}

	report.Print(rep)
	if opts.reportPath != "" {
		if err := report.WriteFile(opts.reportPath, rep); err != nil {
			return err
		}
		fmt.Printf("\nReport written: %s\n", opts.reportPath)
	}

	if !rep.Valid() {
		return fmt.Errorf("validation found %d issue(s)", len(rep.Findings))
	}
	return nil
}
