// Copyright (c) 2025-2026, s0up and the autobrr contributors.
// SPDX-License-Identifier: GPL-2.0-or-later

// Package fsutil provides the depth-bounded directory walking and
// case-insensitive file matching that back archive and resource
// directory discovery.
package fsutil

import (
	"os"
	"path/filepath"
	"strings"
)

// ListFiles returns every regular file under dir, descending at most depth
// plies (depth <= 0 means dir's immediate children only, matching the
// namespace's "depth in plies" resource-directory scan). Paths are
// returned relative to dir with forward slashes.
func ListFiles(dir string, depth int) ([]string, error) {
	var out []string

	var walk func(current string, relPrefix string, remaining int) error
	walk = func(current string, relPrefix string, remaining int) error {
		entries, err := os.ReadDir(current)
		if err != nil {
			return err
		}

		for _, entry := range entries {
			rel := entry.Name()
			if relPrefix != "" {
				rel = relPrefix + "/" + rel
			}

			if entry.IsDir() {
				if remaining > 0 {
					if err := walk(filepath.Join(current, entry.Name()), rel, remaining-1); err != nil {
						return err
					}
				}
				continue
			}

			out = append(out, rel)
		}

		return nil
	}

	if err := walk(dir, "", depth); err != nil {
		return nil, err
	}

	return out, nil
}

// ListSubdirectories returns the names of dir's immediate subdirectories.
func ListSubdirectories(dir string) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, err
	}

	var out []string
	for _, entry := range entries {
		if entry.IsDir() {
			out = append(out, entry.Name())
		}
	}

	return out, nil
}

// FindBySuffix returns every entry in files whose path ends with "/"+name
// (or equals name outright), case-insensitively. Used to resolve an
// archive filename against the cached directory listing for its kind.
func FindBySuffix(files []string, name string) []string {
	suffix := "/" + strings.ToLower(name)
	lowerName := strings.ToLower(name)

	var matches []string
	for _, f := range files {
		lf := strings.ToLower(f)
		if lf == lowerName || strings.HasSuffix(lf, suffix) {
			matches = append(matches, f)
		}
	}

	return matches
}
