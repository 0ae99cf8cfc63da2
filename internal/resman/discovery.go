// Copyright (c) 2025-2026, s0up and the autobrr contributors.
// SPDX-License-Identifier: GPL-2.0-or-later

package resman

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/aurora-engine/resman/pkg/fsutil"
	"github.com/aurora-engine/resman/pkg/pathutil"
)

// AddArchiveDir registers dir (relative to the base directory) as a
// search directory for archives of kind, caching every file in it that
// matches the kind's glob. NDS and HERF have no directory registration:
// NDS is loaded from an arbitrary filesystem path and HERF is resolved
// through an already-indexed HERF resource, so calls for those kinds
// are a no-op.
func (r *Registry) AddArchiveDir(kind ArchiveKind, dir string, recursive bool) error {
	if kind == KindNDS || kind == KindHERF {
		return nil
	}

	directory, err := pathutil.FindSubDirectory(r.baseDir, dir, true)
	if err != nil {
		return fmt.Errorf("%w: %q", ErrNoSuchDirectory, dir)
	}
	directory = filepath.Clean(directory)

	files, err := fsutil.ListFiles(directory, 0)
	if err != nil {
		return fmt.Errorf("reading directory %q: %w", directory, err)
	}

	glob := archiveGlobs[kind]
	for _, f := range files {
		if glob.MatchString(f) {
			r.archiveFiles[kind] = append(r.archiveFiles[kind], directory+"/"+f)
		}
	}

	// RIM files found in an ERF directory are additionally considered
	// ERF candidates when the registry is configured that way.
	if kind == KindERF && r.rimsAreERFs {
		rimGlob := archiveGlobs[KindRIM]
		for _, f := range files {
			if rimGlob.MatchString(f) {
				r.archiveFiles[kind] = append(r.archiveFiles[kind], directory+"/"+f)
			}
		}
	}

	r.archiveDirs[kind] = append(r.archiveDirs[kind], directory)

	if recursive {
		subdirs, err := fsutil.ListSubdirectories(directory)
		if err != nil {
			return fmt.Errorf("reading directory %q: %w", directory, err)
		}

		for _, sub := range subdirs {
			rel := sub
			if dir != "" {
				rel = dir + "/" + sub
			}
			if err := r.AddArchiveDir(kind, rel, true); err != nil {
				return err
			}
		}
	}

	return nil
}

// findArchive searches knownFiles for every entry whose suffix matches
// "/name" case-insensitively, then returns the
// first match whose directory is in dirs, in dirs order. Returns "" if
// absent.
func findArchive(name string, dirs []string, knownFiles []string) string {
	candidates := fsutil.FindBySuffix(knownFiles, name)
	if len(candidates) == 0 {
		return ""
	}

	for _, dir := range dirs {
		want := dir + "/" + name
		for _, c := range candidates {
			if pathEqualFold(c, want) {
				return c
			}
		}
	}

	return ""
}

func pathEqualFold(a, b string) bool {
	return filepath.Clean(a) == filepath.Clean(b) || sameFold(a, b)
}

func sameFold(a, b string) bool {
	if len(a) != len(b) {
		return false
	}
	for i := 0; i < len(a); i++ {
		ca, cb := a[i], b[i]
		if 'A' <= ca && ca <= 'Z' {
			ca += 'a' - 'A'
		}
		if 'A' <= cb && cb <= 'Z' {
			cb += 'a' - 'A'
		}
		if ca != cb {
			return false
		}
	}
	return true
}

// HasArchive reports whether an archive named name is reachable for
// kind: a filesystem existence check for NDS, a HERF-resource lookup
// for HERF, and a search-directory lookup otherwise.
func (r *Registry) HasArchive(kind ArchiveKind, name string) bool {
	switch kind {
	case KindNDS:
		_, err := os.Stat(name)
		return err == nil
	case KindHERF:
		stream, _, err := r.GetResource(stem(name), []FileType{"HERF"})
		if err != nil || stream == nil {
			return false
		}
		_ = stream.Close()
		return true
	default:
		return findArchive(name, r.archiveDirs[kind], r.archiveFiles[kind]) != ""
	}
}

// HasResourceDir reports whether dir exists under the base directory.
func (r *Registry) HasResourceDir(dir string) bool {
	_, err := pathutil.FindSubDirectory(r.baseDir, dir, true)
	return err == nil
}
