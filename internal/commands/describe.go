// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Chase Nunez

package commands

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/chasenunez/DEVO/internal/icsv"
	"github.com/chasenunez/DEVO/internal/prompts"
)

func newDescribeCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "describe file.icsv",
		Short: "Show the metadata and field descriptors of an iCSV file",
		Example: `  # Inspect a document without validating it
  devo describe station.icsv`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runDescribe(args[0])
		},
	}
	return cmd
}

func runDescribe(file string) error {
	doc, err := icsv.ParseFile(file)
	if err != nil {
		return fmt.Errorf("cannot parse %s: %w", file, err)
	}

	fields := make([]prompts.ResultField, 0, doc.Metadata.Len()+1)
	if doc.Profile != "" {
		fields = append(fields, prompts.ResultField{Label: "Application profile", Value: doc.Profile})
	}
	for _, p := range doc.Metadata.Pairs() {
		fields = append(fields, prompts.ResultField{Label: p.Key, Value: p.Value})
	}
	prompts.PrintResult(fields, "")

	cols := make([]prompts.ResultField, 0, len(doc.Fields))
	for _, f := range doc.Fields {
		value := f.Type
		if f.Min != "" || f.Max != "" {
			value += fmt.Sprintf(" [%s .. %s]", f.Min, f.Max)
		}
		value += ", missing " + strconv.Itoa(f.MissingCount)
		if f.Description != "" {
			value += " (" + f.Description + ")"
		}
		cols = append(cols, prompts.ResultField{Label: f.Name, Value: value})
	}
	prompts.PrintResult(cols, fmt.Sprintf("%d columns, %d rows", len(doc.Fields), len(doc.Rows)))
	return nil
}
