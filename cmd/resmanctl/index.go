// Copyright (c) 2025-2026, s0up and the autobrr contributors.
// SPDX-License-Identifier: GPL-2.0-or-later

package main

import (
	"github.com/spf13/cobra"
)

func newIndexCommand(manifestPath *string, verbose *bool) *cobra.Command {
	return &cobra.Command{
		Use:   "index",
		Short: "Populate a registry from the manifest and report what it found",
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := loadNamespaceConfig(*manifestPath)
			if err != nil {
				return err
			}

			r, err := buildRegistry(cfg, newLogger(*verbose))
			if err != nil {
				return err
			}

			available := r.ListAvailable(nil)
			cmd.Printf("base dir: %s\n", r.BaseDir())
			cmd.Printf("hash algorithm: %s\n", r.HashAlgo())
			cmd.Printf("resources indexed: %d\n", len(available))

			return nil
		},
	}
}
