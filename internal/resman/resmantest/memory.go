// Copyright (c) 2025-2026, s0up and the autobrr contributors.
// SPDX-License-Identifier: GPL-2.0-or-later

// Package resmantest provides in-memory Archive and KeyArchive fakes so
// that resman's registry, indexing, and lookup logic can be exercised
// without a real KEY/BIF/ERF/ZIP/... binary parser.
package resmantest

import (
	"bytes"
	"fmt"

	"github.com/aurora-engine/resman/internal/resman"
	"github.com/aurora-engine/resman/pkg/hashutil"
)

// Entry is a convenience constructor input for MemoryArchive.
type Entry struct {
	Name string
	Type resman.FileType
	Data []byte
}

// MemoryArchive is an Archive backed entirely by in-memory byte slices.
type MemoryArchive struct {
	entries    []resman.ArchiveEntry
	data       [][]byte
	algo       hashutil.Algo
	hasAlgo    bool
	scratchHit bool
}

// NewMemoryArchive builds a MemoryArchive from entries, assigning
// sequential indices in order.
func NewMemoryArchive(entries []Entry) *MemoryArchive {
	a := &MemoryArchive{}
	for i, e := range entries {
		a.entries = append(a.entries, resman.ArchiveEntry{
			Name:  e.Name,
			Type:  e.Type,
			Index: uint32(i),
		})
		a.data = append(a.data, e.Data)
	}
	return a
}

// WithPrehash switches the archive to advertise algo and pre-hash every
// entry with it, the way a KEY/BIF pair would for archives built with an
// empty name table. Entries keep their literal names alongside the
// pre-hash.
func (a *MemoryArchive) WithPrehash(algo hashutil.Algo) *MemoryArchive {
	a.algo = algo
	a.hasAlgo = true

	hasher := hashutil.New(algo)
	for i := range a.entries {
		key := a.entries[i].Name
		if a.entries[i].Type != resman.TypeNone {
			key += "." + a.entries[i].Type.Ext()
		}
		a.entries[i].Prehash = hasher.Sum64(hashutil.Canonicalize(key))
		a.entries[i].HasPrehash = true
	}

	return a
}

func (a *MemoryArchive) NameHashAlgo() (hashutil.Algo, bool) {
	return a.algo, a.hasAlgo
}

func (a *MemoryArchive) Resources() []resman.ArchiveEntry {
	out := make([]resman.ArchiveEntry, len(a.entries))
	copy(out, a.entries)
	return out
}

func (a *MemoryArchive) Open(index uint32) (resman.Stream, error) {
	if int(index) >= len(a.data) {
		return nil, fmt.Errorf("resmantest: index %d out of range", index)
	}
	return &memStream{Reader: bytes.NewReader(a.data[index])}, nil
}

func (a *MemoryArchive) Size(index uint32) uint64 {
	if int(index) >= len(a.data) {
		return resman.SizeUnknown
	}
	return uint64(len(a.data[index]))
}

func (a *MemoryArchive) ClearScratch() {
	a.scratchHit = true
}

// ScratchCleared reports whether ClearScratch has been called, so tests
// can assert the registry releases enumeration-time scratch state.
func (a *MemoryArchive) ScratchCleared() bool {
	return a.scratchHit
}

type memStream struct {
	*bytes.Reader
}

func (m *memStream) Close() error { return nil }
