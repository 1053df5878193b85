// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Chase Nunez

// Package commands contains all CLI command definitions.
package commands

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/chasenunez/DEVO/internal/config"
	"github.com/chasenunez/DEVO/internal/logging"
	"github.com/chasenunez/DEVO/internal/validate"
)

// rootOptions carries the persistent flags shared by every command.
type rootOptions struct {
	configPath string
	logLevel   string
}

// NewRootCmd creates and returns the root command for the CLI.
func NewRootCmd(validators validate.Register) *cobra.Command {
	opts := &rootOptions{}

	rootCmd := &cobra.Command{
		Use:           "devo",
		Short:         "Data enrichment and validation operator for CSV and iCSV files",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := opts.loadConfig()
			if err != nil {
				return err
			}
			level := opts.logLevel
			if level == "" {
				level = cfg.LogLevel
			}
			logging.Setup(level)
			return nil
		},
	}

	rootCmd.PersistentFlags().StringVarP(&opts.configPath, "config", "c", "", "Path to devo.yaml config file")
	rootCmd.PersistentFlags().StringVar(&opts.logLevel, "log-level", "", "Log level (debug, info, warn, error)")

	rootCmd.AddCommand(newEnrichCmd(opts))
	rootCmd.AddCommand(newValidateCmd(opts, validators))
	rootCmd.AddCommand(newDescribeCmd())
	rootCmd.AddCommand(newSchemaCmd())
	rootCmd.AddCommand(newVersionCmd())

	return rootCmd
}

// loadConfig resolves the optional config file. A missing default file is
// not an error; an explicitly named file must exist and be valid.
func (o *rootOptions) loadConfig() (*config.Config, error) {
	path := o.configPath
	if path == "" {
		path = "devo.yaml"
		if _, err := os.Stat(path); err != nil {
			return &config.Config{}, nil
		}
	}
	return config.Load(path)
}
