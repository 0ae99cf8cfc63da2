// Copyright (c) 2025-2026, s0up and the autobrr contributors.
// SPDX-License-Identifier: GPL-2.0-or-later

package main

import (
	"github.com/spf13/cobra"
)

func newDumpCommand(manifestPath *string, verbose *bool) *cobra.Command {
	var out string

	cmd := &cobra.Command{
		Use:   "dump",
		Short: "Write the populated registry's fixed-width diagnostic table to a file",
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := loadNamespaceConfig(*manifestPath)
			if err != nil {
				return err
			}

			r, err := buildRegistry(cfg, newLogger(*verbose))
			if err != nil {
				return err
			}

			if err := r.DumpIndex(out); err != nil {
				return err
			}

			cmd.Printf("wrote %s\n", out)
			return nil
		},
	}

	cmd.Flags().StringVar(&out, "out", "resman.dump.txt", "Output path for the diagnostic table")

	return cmd
}
