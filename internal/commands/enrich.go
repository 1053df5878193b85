// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Chase Nunez

package commands

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/chasenunez/DEVO/internal/enrich"
	"github.com/chasenunez/DEVO/internal/icsv"
	"github.com/chasenunez/DEVO/internal/prompts"
	"github.com/chasenunez/DEVO/internal/version"
)

type enrichOptions struct {
	delimiter string
	nodata    string
	profile   string
	out       string
	schemaOut string
}

func newEnrichCmd(root *rootOptions) *cobra.Command {
	opts := &enrichOptions{}

	cmd := &cobra.Command{
		Use:   "enrich [file.csv]",
		Short: "Convert a plain CSV into an iCSV file and inferred schema",
		Long: `Detect the delimiter, profile every column, and write a
self-describing iCSV file plus a Table Schema JSON next to the input.`,
		Example: `  # Autodetect everything
  devo enrich station.csv

  # Force the input delimiter and the nodata marker
  devo enrich station.csv --delimiter ";" --nodata "-999"

  # Annotate the declaration line with an application profile
  devo enrich station.csv --app SNOWPACK`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var file string
			if len(args) == 1 {
				file = args[0]
			}
			if err := prompts.RunEnrichForm(&file); err != nil {
				return err
			}
			return runEnrich(root, opts, file)
		},
	}

	cmd.Flags().StringVarP(&opts.delimiter, "delimiter", "d", "", "Force input delimiter (autodetect otherwise)")
	cmd.Flags().StringVar(&opts.nodata, "nodata", "", "Force nodata placeholder value")
	cmd.Flags().StringVar(&opts.profile, "app", "", "Application profile for the iCSV declaration line")
	cmd.Flags().StringVarP(&opts.out, "out", "o", "", "Output iCSV path (default: <input>.icsv)")
	cmd.Flags().StringVar(&opts.schemaOut, "schema-out", "", "Inferred schema JSON path (default: <input>_schema.json)")

	return cmd
}

func runEnrich(root *rootOptions, opts *enrichOptions, file string) error {
	cfg, err := root.loadConfig()
	if err != nil {
		return err
	}

	res, err := enrich.File(file, enrich.Options{
		Delimiter:          firstOf(opts.delimiter, cfg.FieldDelimiter),
		Nodata:             firstOf(opts.nodata, cfg.Nodata),
		ApplicationProfile: firstOf(opts.profile, cfg.ApplicationProfile),
		OutPath:            firstOf(opts.out, cfg.OutIcsv),
		SchemaPath:         firstOf(opts.schemaOut, cfg.SchemaOut),
		Generator:          "devo " + version.Short(),
	})
	if err != nil {
		return fmt.Errorf("enrichment failed: %w", err)
	}

	prompts.PrintResult([]prompts.ResultField{
		{Label: "iCSV", Value: res.IcsvPath},
		{Label: "Schema", Value: res.SchemaPath},
		{Label: "Delimiter", Value: strconv.Quote(res.Document.Delimiter())},
		{Label: "Columns", Value: strconv.Itoa(len(res.Document.Fields))},
		{Label: "Rows", Value: strconv.Itoa(len(res.Document.Rows))},
		{Label: "Types", Value: typeSummary(res.Document.Fields)},
	}, "Enrichment complete")
	return nil
}

func typeSummary(fields icsv.FieldsTable) string {
	out := ""
	for i, f := range fields {
		if i > 0 {
			out += ", "
		}
		out += f.Name + ":" + f.Type
	}
	return out
}

func firstOf(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}
