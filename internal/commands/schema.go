// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Chase Nunez

package commands

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/chasenunez/DEVO/internal/export"
	"github.com/chasenunez/DEVO/internal/icsv"
	"github.com/chasenunez/DEVO/internal/profile"
	"github.com/chasenunez/DEVO/internal/prompts"
	"github.com/chasenunez/DEVO/internal/tableschema"
)

type schemaOptions struct {
	format string
	output string
	yaml   bool
	nodata string
}

func newSchemaCmd() *cobra.Command {
	opts := &schemaOptions{}

	cmd := &cobra.Command{
		Use:   "schema file.icsv",
		Short: "Export the schema descriptor of an iCSV file",
		Long: `Export the field descriptors of an iCSV file as a standalone schema
document, either Table Schema JSON or a JSON Schema object.`,
		Example: `  # Table Schema to stdout
  devo schema station.icsv

  # JSON Schema, written next to the input
  devo schema station.icsv --format jsonschema -o station_schema.json

  # JSON Schema rendered as YAML
  devo schema station.icsv --format jsonschema --yaml`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runSchema(args[0], opts)
		},
	}

	cmd.Flags().StringVarP(&opts.format, "format", "f", "tableschema", "output format (tableschema or jsonschema)")
	cmd.Flags().StringVarP(&opts.output, "output", "o", "", "write to file instead of stdout")
	cmd.Flags().BoolVar(&opts.yaml, "yaml", false, "render a jsonschema export as YAML")
	cmd.Flags().StringVar(&opts.nodata, "nodata", "", "extra missing-value placeholder")

	return cmd
}

func runSchema(file string, opts *schemaOptions) error {
	doc, err := icsv.ParseFile(file)
	if err != nil {
		return fmt.Errorf("cannot parse %s: %w", file, err)
	}

	missing := profile.DefaultMissing()
	if v, ok := doc.Metadata.Get(icsv.KeyNodata); ok {
		missing = missing.With(v)
	}
	if opts.nodata != "" {
		missing = missing.With(opts.nodata)
	}
	ts := tableschema.FromFields(doc.Fields, missing)

	out := os.Stdout
	if opts.output != "" {
		f, err := os.Create(opts.output) //nolint:gosec // path comes from the flag
		if err != nil {
			return err
		}
		defer f.Close() //nolint:errcheck
		out = f
	}

	switch strings.ToLower(opts.format) {
	case "tableschema":
		if opts.yaml {
			return fmt.Errorf("--yaml is only supported with --format jsonschema")
		}
		if err := ts.WriteJSON(out); err != nil {
			return err
		}
	case "jsonschema":
		title := strings.TrimSuffix(filepath.Base(file), filepath.Ext(file))
		js := export.JSONSchema(ts, title)
		if opts.yaml {
			if err := export.WriteYAML(out, js); err != nil {
				return err
			}
		} else if err := export.WriteJSON(out, js); err != nil {
			return err
		}
	default:
		return fmt.Errorf("unknown schema format %q (expected tableschema or jsonschema)", opts.format)
	}

	if opts.output != "" {
		prompts.PrintResult([]prompts.ResultField{
			{Label: "Schema", Value: opts.output},
			{Label: "Format", Value: strings.ToLower(opts.format)},
		}, "Schema exported")
	}
	return nil
}
