// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Chase Nunez

package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/chasenunez/DEVO/internal/version"
)

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			_, err := fmt.Fprintln(cmd.OutOrStdout(), version.Info())
			return err
		},
	}
}
