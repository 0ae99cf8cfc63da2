// Copyright (c) 2025-2026, s0up and the autobrr contributors.
// SPDX-License-Identifier: GPL-2.0-or-later

package resmantest

import (
	"github.com/aurora-engine/resman/internal/resman"
	"github.com/aurora-engine/resman/pkg/hashutil"
)

// DeclaredEntry names one resource a KEY declares for a position inside
// one of its referenced BIFs.
type DeclaredEntry struct {
	Name     string
	Type     resman.FileType
	BifIndex uint32
}

// KeyArchive is a fake resman.KeyArchive: it carries no resources of its
// own (a real KEY file enumerates none), only the list of BIF filenames
// it references and, for each, the names/types the KEY declares for
// that BIF's positional entries.
type KeyArchive struct {
	bifNames []string
	declared [][]DeclaredEntry
}

// NewKeyArchive builds a KeyArchive referencing bifNames, where
// declared[i] names the entries the KEY assigns to bifNames[i].
func NewKeyArchive(bifNames []string, declared [][]DeclaredEntry) *KeyArchive {
	return &KeyArchive{bifNames: bifNames, declared: declared}
}

func (k *KeyArchive) NameHashAlgo() (hashutil.Algo, bool) { return 0, false }
func (k *KeyArchive) Resources() []resman.ArchiveEntry    { return nil }
func (k *KeyArchive) Open(uint32) (resman.Stream, error)  { return nil, errNotAnEntryHost }
func (k *KeyArchive) Size(uint32) uint64                  { return resman.SizeUnknown }
func (k *KeyArchive) ClearScratch()                       {}

func (k *KeyArchive) ReferencedBIFs() []string {
	return k.bifNames
}

func (k *KeyArchive) JoinBIF(bifIndex int, bif resman.Archive) (resman.Archive, error) {
	var names []DeclaredEntry
	if bifIndex < len(k.declared) {
		names = k.declared[bifIndex]
	}
	return &hydratedArchive{inner: bif, declared: names}, nil
}

// hydratedArchive overrides a BIF's enumerated names/types with the
// ones its owning KEY declared, while still delegating byte access to
// the underlying BIF.
type hydratedArchive struct {
	inner    resman.Archive
	declared []DeclaredEntry
}

func (h *hydratedArchive) NameHashAlgo() (hashutil.Algo, bool) { return h.inner.NameHashAlgo() }

func (h *hydratedArchive) Resources() []resman.ArchiveEntry {
	out := make([]resman.ArchiveEntry, 0, len(h.declared))
	for _, d := range h.declared {
		out = append(out, resman.ArchiveEntry{Name: d.Name, Type: d.Type, Index: d.BifIndex})
	}
	return out
}

func (h *hydratedArchive) Open(index uint32) (resman.Stream, error) { return h.inner.Open(index) }
func (h *hydratedArchive) Size(index uint32) uint64                 { return h.inner.Size(index) }
func (h *hydratedArchive) ClearScratch()                            { h.inner.ClearScratch() }

var errNotAnEntryHost = notAnEntryHostError{}

type notAnEntryHostError struct{}

func (notAnEntryHostError) Error() string {
	return "resmantest: a KeyArchive holds no directly openable entries"
}
