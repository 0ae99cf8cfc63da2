// Copyright (c) 2025-2026, s0up and the autobrr contributors.
// SPDX-License-Identifier: GPL-2.0-or-later

package resman

import (
	"container/list"

	"github.com/google/uuid"
)

// ChangeID is an opaque cookie identifying one indexing call's
// contributions to the registry. Its zero value never names a real
// change, so dereferencing it (via Undo) after the change it named has
// already been undone is a no-op rather than an error.
type ChangeID uuid.UUID

// IsZero reports whether id is the zero-value cookie.
func (id ChangeID) IsZero() bool {
	return id == ChangeID{}
}

type resourceRowRef struct {
	hash   uint64
	bucket *list.List
	elem   *list.Element
}

// change accumulates everything one indexing call contributed, so the
// call can be rolled back as a unit — either because the caller asked
// for it later (Undo) or because the call itself failed partway
// through and must leave the registry exactly as it found it.
type change struct {
	id        ChangeID
	resources []resourceRowRef
	archives  []archiveHandle
}

func (c *change) recordResource(hash uint64, bucket *list.List, elem *list.Element) {
	c.resources = append(c.resources, resourceRowRef{hash: hash, bucket: bucket, elem: elem})
}

func (c *change) recordArchive(h archiveHandle) {
	c.archives = append(c.archives, h)
}

// rollback undoes every row and archive c recorded. It is ordering-safe:
// each row reference is an independent (bucket, element) pair, so
// removing one never invalidates another's.
func (r *Registry) rollback(c *change) {
	for _, ref := range c.resources {
		ref.bucket.Remove(ref.elem)
		if ref.bucket.Len() == 0 {
			delete(r.buckets, ref.hash)
		}
	}

	for _, h := range c.archives {
		r.archives.remove(h)
	}
}

// commit finalizes c: if track is non-nil, c becomes addressable by a
// fresh ChangeID written to *track, enabling a later Undo. If track is
// nil, the caller didn't ask for tracking and c's contributions simply
// become ordinary, un-undoable resources.
func (r *Registry) commit(c *change, track *ChangeID) {
	if track == nil {
		return
	}

	c.id = ChangeID(uuid.New())
	r.changes[c.id] = c
	*track = c.id
}

// Undo removes every resource row and archive that change id's indexing
// call contributed, restoring the registry to its exact prior state for
// that contribution. Undoing an id that doesn't name a live change
// (already undone, or never tracked) is a no-op.
func (r *Registry) Undo(id ChangeID) {
	c, ok := r.changes[id]
	if !ok {
		return
	}

	r.rollback(c)
	delete(r.changes, id)
}
