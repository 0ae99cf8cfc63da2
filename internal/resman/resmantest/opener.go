// Copyright (c) 2025-2026, s0up and the autobrr contributors.
// SPDX-License-Identifier: GPL-2.0-or-later

package resmantest

import (
	"fmt"

	"github.com/aurora-engine/resman/internal/resman"
)

// PathOpener returns an ArchiveOpener that resolves ArchiveSource.Path
// against a fixed table of pre-built archives, the way a test stands in
// for a real binary-format parser.
func PathOpener(byPath map[string]resman.Archive) resman.ArchiveOpener {
	return func(src resman.ArchiveSource) (resman.Archive, error) {
		a, ok := byPath[src.Path]
		if !ok {
			return nil, fmt.Errorf("resmantest: no fake archive registered for %q", src.Path)
		}
		return a, nil
	}
}

// StreamOpener returns an ArchiveOpener that ignores its input stream
// and always returns archive — enough to exercise the HERF-inside-NDS
// indexing path without a real HERF parser.
func StreamOpener(archive resman.Archive) resman.ArchiveOpener {
	return func(resman.ArchiveSource) (resman.Archive, error) {
		return archive, nil
	}
}
