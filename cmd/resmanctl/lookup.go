// Copyright (c) 2025-2026, s0up and the autobrr contributors.
// SPDX-License-Identifier: GPL-2.0-or-later

package main

import (
	"errors"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/aurora-engine/resman/internal/resman"
)

var resourceClasses = map[string]resman.ResourceClass{
	"image":  resman.ClassImage,
	"video":  resman.ClassVideo,
	"sound":  resman.ClassSound,
	"music":  resman.ClassMusic,
	"cursor": resman.ClassCursor,
}

func newLookupCommand(manifestPath *string, verbose *bool) *cobra.Command {
	var (
		types []string
		class string
	)

	cmd := &cobra.Command{
		Use:   "lookup <name>",
		Short: "Resolve a resource name and print its winning type and size",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			name := args[0]

			cfg, err := loadNamespaceConfig(*manifestPath)
			if err != nil {
				return err
			}

			r, err := buildRegistry(cfg, newLogger(*verbose))
			if err != nil {
				return err
			}

			var stream resman.Stream
			var typ resman.FileType

			switch {
			case class != "":
				rc, ok := resourceClasses[strings.ToLower(class)]
				if !ok {
					return errors.New("resmanctl: unknown --class " + class)
				}
				stream, typ, err = r.GetResourceClass(rc, name)

			case len(types) > 0:
				candidates := make([]resman.FileType, len(types))
				for i, t := range types {
					candidates[i] = resman.FileType(strings.ToUpper(t))
				}
				stream, typ, err = r.GetResource(name, candidates)

			default:
				return errors.New("resmanctl: specify --type or --class")
			}

			if err != nil {
				return err
			}
			if stream == nil {
				cmd.Printf("%s: not found\n", name)
				return nil
			}
			defer stream.Close()

			n, err := io.Copy(io.Discard, stream)
			if err != nil {
				return err
			}

			cmd.Printf("%s.%s: %d bytes\n", name, strings.ToLower(string(typ)), n)
			return nil
		},
	}

	cmd.Flags().StringSliceVar(&types, "type", nil, "Candidate file types to try, in order (e.g. --type=WAV,OGG)")
	cmd.Flags().StringVar(&class, "class", "", "Resource class to expand instead of explicit types (image, video, sound, music, cursor)")

	return cmd
}
