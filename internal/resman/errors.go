// Copyright (c) 2025-2026, s0up and the autobrr contributors.
// SPDX-License-Identifier: GPL-2.0-or-later

package resman

import "errors"

// Sentinel errors for the namespace's documented failure modes. Callers
// should compare with errors.Is; indexing failures are additionally
// wrapped with fmt.Errorf("...: %w", ...) to attach the offending path
// or archive name.
var (
	// ErrNoSuchDirectory is returned when a directory does not exist
	// under the registered base directory.
	ErrNoSuchDirectory = errors.New("resman: no such directory")

	// ErrNoSuchArchive is returned when a requested archive file cannot
	// be found in any registered search directory for its kind.
	ErrNoSuchArchive = errors.New("resman: no such archive")

	// ErrLoneBif is returned by AddArchive when called directly with
	// KindBIF. BIFs are only reachable through a KEY.
	ErrLoneBif = errors.New("resman: attempted to index a lone BIF")

	// ErrBifNotFound is returned when a KEY references a BIF that is
	// absent from every registered BIF search directory.
	ErrBifNotFound = errors.New("resman: referenced BIF not found")

	// ErrHashAlgoMismatch is returned when an archive advertises a
	// name-hash algorithm different from the registry's configured one.
	ErrHashAlgoMismatch = errors.New("resman: archive uses a different name hash algorithm")

	// ErrAlreadyPopulated is returned by SetHashAlgo once any resource
	// has been indexed.
	ErrAlreadyPopulated = errors.New("resman: hash algorithm can't change, resources already indexed")

	// ErrNoOpener is returned by AddArchive when no ArchiveOpener has
	// been registered for the requested kind.
	ErrNoOpener = errors.New("resman: no archive opener registered for kind")

	// ErrInvalidSource is returned when a Resource's source tag is
	// malformed (neither archive- nor file-backed).
	ErrInvalidSource = errors.New("resman: invalid resource source")

	// ErrArchiveGone is returned when a Resource refers to an archive
	// handle that has since been undone or cleared.
	ErrArchiveGone = errors.New("resman: archive handle no longer valid")

	// ErrWriteError is returned by DumpIndex when it cannot write its
	// diagnostic table.
	ErrWriteError = errors.New("resman: write error")
)
