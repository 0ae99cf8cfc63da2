// Copyright (c) 2025-2026, s0up and the autobrr contributors.
// SPDX-License-Identifier: GPL-2.0-or-later

package resman

import "github.com/bmatcuk/doublestar/v4"

// matchGlob filters files (relative, forward-slash paths as produced by
// fsutil.ListFiles) down to those matching a shell-style "**" glob.
func matchGlob(files []string, pattern string) ([]string, error) {
	var out []string
	for _, f := range files {
		ok, err := doublestar.Match(pattern, f)
		if err != nil {
			return nil, err
		}
		if ok {
			out = append(out, f)
		}
	}
	return out, nil
}
