// Copyright (c) 2025-2026, s0up and the autobrr contributors.
// SPDX-License-Identifier: GPL-2.0-or-later

// Command resmanctl is a diagnostic tool for virtual resource namespace
// manifests: it populates a registry from a TOML manifest describing a
// base directory and its file-backed resource directories, then lets
// you query or dump the resulting index without a host application.
package main

import (
	"fmt"
	"os"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
)

func main() {
	if err := newRootCommand().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newRootCommand() *cobra.Command {
	var (
		manifestPath string
		verbose      bool
	)

	cmd := &cobra.Command{
		Use:   "resmanctl",
		Short: "Inspect and query a virtual resource namespace",
	}

	cmd.PersistentFlags().StringVar(&manifestPath, "manifest", "resman.toml", "Path to the namespace manifest")
	cmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Log hash collisions and other diagnostics to stderr")

	cmd.AddCommand(
		newIndexCommand(&manifestPath, &verbose),
		newLookupCommand(&manifestPath, &verbose),
		newDumpCommand(&manifestPath, &verbose),
	)

	return cmd
}

func newLogger(verbose bool) *zerolog.Logger {
	if !verbose {
		return nil
	}
	log := zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).With().Timestamp().Logger()
	return &log
}
