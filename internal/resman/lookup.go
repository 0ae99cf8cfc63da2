// Copyright (c) 2025-2026, s0up and the autobrr contributors.
// SPDX-License-Identifier: GPL-2.0-or-later

package resman

import (
	"fmt"
	"os"
)

// winner returns the bucket's current winner: the back element, if the
// bucket exists, is non-empty, and its priority is nonzero (0 means
// blacklisted). Returns nil if there is no winner.
func (r *Registry) winner(hash uint64) *Resource {
	bucket, ok := r.buckets[hash]
	if !ok || bucket.Len() == 0 {
		return nil
	}

	res := bucket.Back().Value.(*Resource)
	if res.Priority == 0 {
		return nil
	}

	return res
}

// getResource resolves the first candidate type in types that has a
// winner, trying each in order and stopping at the first hit.
func (r *Registry) getResource(name string, types []FileType) *Resource {
	for _, typ := range types {
		if res := r.winner(r.hash(name, typ)); res != nil {
			return res
		}
	}
	return nil
}

// GetByHash resolves a winner directly by its 64-bit key, bypassing
// name/type hashing entirely. Useful for archives that only preserved a
// pre-hash and never had a reversible name (see DeclareResource).
func (r *Registry) GetByHash(hash uint64) (Stream, FileType, error) {
	res := r.winner(hash)
	if res == nil {
		return nil, TypeNone, nil
	}
	return r.open(res)
}

// GetResource resolves name against each candidate type in order and
// materializes a stream for the winner. A nil, nil return means "not
// found"; a nil stream with a non-nil error means the winner was found
// but its backing archive or file failed to open. Priority is
// authoritative: resolution never falls back to a lower-priority row.
func (r *Registry) GetResource(name string, types []FileType) (Stream, FileType, error) {
	res := r.getResource(name, types)
	if res == nil {
		return nil, TypeNone, nil
	}

	stream, err := r.open(res)
	return stream, res.Type, err
}

// GetResourceClass expands class into its ordered candidate types and
// delegates to GetResource.
func (r *Registry) GetResourceClass(class ResourceClass, name string) (Stream, FileType, error) {
	return r.GetResource(name, ClassTypes(class))
}

func (r *Registry) open(res *Resource) (Stream, error) {
	switch res.Source {
	case SourceArchive:
		archive, ok := r.archives.get(res.archive)
		if !ok {
			return nil, ErrArchiveGone
		}
		stream, err := archive.Open(res.ArchiveIndex)
		if err != nil {
			return nil, fmt.Errorf("opening archive resource: %w", err)
		}
		return stream, nil

	case SourceFile:
		f, err := os.Open(res.Path)
		if err != nil {
			return nil, fmt.Errorf("opening file resource: %w", err)
		}
		return f, nil

	default:
		return nil, ErrInvalidSource
	}
}

// HasResource reports whether any candidate type in types currently
// resolves to a nonzero-priority winner.
func (r *Registry) HasResource(name string, types []FileType) bool {
	return r.getResource(name, types) != nil
}

// HasResourceClass is the ResourceClass-expanding form of HasResource.
func (r *Registry) HasResourceClass(class ResourceClass, name string) bool {
	return r.HasResource(name, ClassTypes(class))
}

// GetSize returns the size of a previously resolved winner, or
// SizeUnknown if it cannot be determined (no archive handle, no known
// file size, or an archive-reported unknown).
func (r *Registry) GetSize(res *Resource) uint64 {
	if res == nil {
		return SizeUnknown
	}

	switch res.Source {
	case SourceArchive:
		archive, ok := r.archives.get(res.archive)
		if !ok {
			return SizeUnknown
		}
		return archive.Size(res.ArchiveIndex)

	case SourceFile:
		info, err := os.Stat(res.Path)
		if err != nil {
			return SizeUnknown
		}
		return uint64(info.Size())

	default:
		return SizeUnknown
	}
}

// AvailableResource names one unique bucket winner, as surfaced by
// ListAvailable.
type AvailableResource struct {
	Name string
	Type FileType
}

// ListAvailable returns one entry per bucket whose winner's type is
// among types (or every winner, if types is empty).
func (r *Registry) ListAvailable(types []FileType) []AvailableResource {
	wanted := make(map[FileType]bool, len(types))
	for _, t := range types {
		wanted[t] = true
	}

	var out []AvailableResource
	for hash := range r.buckets {
		res := r.winner(hash)
		if res == nil {
			continue
		}
		if len(types) > 0 && !wanted[res.Type] {
			continue
		}
		out = append(out, AvailableResource{Name: res.Name, Type: res.Type})
	}

	return out
}

// ListAvailableClass is the ResourceClass-expanding form of
// ListAvailable.
func (r *Registry) ListAvailableClass(class ResourceClass) []AvailableResource {
	return r.ListAvailable(ClassTypes(class))
}
