// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Chase Nunez

// Package config handles the optional devo.yaml run configuration.
package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Config mirrors the CLI flags: flags win, config fills the gaps. The
// engine itself never reads this; commands resolve it into explicit
// parameters.
type Config struct {
	FieldDelimiter     string `yaml:"field_delimiter,omitempty"`
	Nodata             string `yaml:"nodata,omitempty"`
	ApplicationProfile string `yaml:"application_profile,omitempty"`
	OutIcsv            string `yaml:"out_icsv,omitempty"`
	SchemaOut          string `yaml:"schema_out,omitempty"`
	LogLevel           string `yaml:"log_level,omitempty"`
}

// Load reads a Config from a file path.
func Load(path string) (*Config, error) {
	f, err := os.Open(path) //nolint:gosec // path is provided by caller
	if err != nil {
		return nil, err
	}
	defer f.Close() //nolint:errcheck

	var cfg Config
	if err := yaml.NewDecoder(f).Decode(&cfg); err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Save writes the Config to a file path.
func (c *Config) Save(path string) error {
	f, err := os.Create(path) //nolint:gosec // path is provided by caller
	if err != nil {
		return err
	}
	defer f.Close() //nolint:errcheck

	enc := yaml.NewEncoder(f)
	enc.SetIndent(2)
	return enc.Encode(c)
}

// Validate checks the configuration for usable values.
func (c *Config) Validate() error {
	if len(c.FieldDelimiter) > 1 {
		return fmt.Errorf("field_delimiter must be a single character, got %q", c.FieldDelimiter)
	}
	switch c.LogLevel {
	case "", "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("unknown log_level %q", c.LogLevel)
	}
	return nil
}
