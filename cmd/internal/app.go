// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Chase Nunez

// Package internal contains the main application logic for the CLI.
package internal

import (
	"context"

	"github.com/chasenunez/DEVO/internal/commands"
	"github.com/chasenunez/DEVO/internal/validate"
	"github.com/chasenunez/DEVO/internal/validate/typecheck"
)

func registerValidators() validate.Register {
	validators := make(validate.Register)
	validators["typecheck"] = typecheck.Validator{}
	return validators
}

// Run is the main application logic, extracted for testability.
// It accepts OS dependencies as parameters (context, env lookup).
func Run(ctx context.Context, getenv func(string) string) error {
	validators := registerValidators()
	rootCmd := commands.NewRootCmd(validators)
	return rootCmd.ExecuteContext(ctx)
}
