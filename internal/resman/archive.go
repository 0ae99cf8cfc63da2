// Copyright (c) 2025-2026, s0up and the autobrr contributors.
// SPDX-License-Identifier: GPL-2.0-or-later

package resman

import (
	"io"

	"github.com/aurora-engine/resman/pkg/hashutil"
)

// SizeUnknown is the sentinel returned by Archive.Size and GetSize when
// the size cannot be determined.
const SizeUnknown uint64 = 0xFFFFFFFF

// Stream is a byte stream materialized for a resolved resource. It must
// remain valid for the caller to read from even after the archive or
// file that produced it is later removed from the registry via Undo or
// Clear — a stream opened before an undo is the caller's to keep.
type Stream interface {
	io.ReadSeeker
	io.Closer
}

// ArchiveEntry describes one resource occurrence as enumerated by an
// Archive. Prehash is only meaningful when HasPrehash is true, i.e. the
// archive advertises a name-hash algorithm and stores pre-hashed keys
// rather than literal names.
type ArchiveEntry struct {
	Name       string
	Type       FileType
	Index      uint32
	Prehash    uint64
	HasPrehash bool
}

// Archive is the trait every container format (KEY, BIF, ERF, RIM, ZIP,
// EXE, NDS, HERF) implements. Concrete binary parsing for these formats
// lives outside this package; Archive is the seam the registry consumes.
type Archive interface {
	// NameHashAlgo reports the algorithm used for entries' Prehash
	// values, or ok=false if the archive does not pre-hash names.
	NameHashAlgo() (algo hashutil.Algo, ok bool)

	// Resources enumerates every entry the archive holds. Called once,
	// at indexing time.
	Resources() []ArchiveEntry

	// Open returns a readable stream for the entry at index.
	Open(index uint32) (Stream, error)

	// Size returns the entry's size, or SizeUnknown.
	Size(index uint32) uint64

	// ClearScratch releases any transient state Resources needed to
	// enumerate entries; called once after indexing completes.
	ClearScratch()
}

// KeyArchive is the additional trait a KEY archive's host-supplied
// implementation exposes, so that the registry can perform the KEY-BIF
// join without itself understanding the KEY binary format.
type KeyArchive interface {
	Archive

	// ReferencedBIFs returns the BIF filenames declared inside the KEY,
	// in the order their indices are assigned.
	ReferencedBIFs() []string

	// JoinBIF hydrates a freshly opened BIF archive (bifIndex is its
	// position in ReferencedBIFs) with the names, types, and resource
	// indices the KEY declared for it, returning an Archive ready to be
	// indexed in its own right.
	JoinBIF(bifIndex int, bif Archive) (Archive, error)
}

// ArchiveKind identifies a container format for discovery and dispatch
// purposes. It is a property of the discovery path, never inspected by
// the registry once an Archive has been constructed.
type ArchiveKind int

const (
	KindKEY ArchiveKind = iota
	KindBIF
	KindERF
	KindRIM
	KindZIP
	KindEXE
	KindNDS
	KindHERF

	numArchiveKinds
)

// String returns the kind's lowercase name.
func (k ArchiveKind) String() string {
	switch k {
	case KindKEY:
		return "key"
	case KindBIF:
		return "bif"
	case KindERF:
		return "erf"
	case KindRIM:
		return "rim"
	case KindZIP:
		return "zip"
	case KindEXE:
		return "exe"
	case KindNDS:
		return "nds"
	case KindHERF:
		return "herf"
	default:
		return "unknown"
	}
}

// ArchiveSource is what an ArchiveOpener is handed to construct an
// Archive. Exactly one of Path or Stream is populated: file-backed
// kinds (KEY, ERF, RIM, ZIP, EXE, NDS) get Path; HERF, which lives
// inside an already-indexed NDS resource, gets Stream. CursorRemap is
// always populated, for the EXE/PE opener's cursor resource naming.
type ArchiveSource struct {
	Path        string
	Stream      Stream
	CursorRemap []string
}

// ArchiveOpener constructs an Archive of a specific kind from its
// source. Hosts register one per kind they support; kinds without a
// registered opener can never be indexed and AddArchive reports
// ErrNoOpener.
type ArchiveOpener func(ArchiveSource) (Archive, error)
