// Copyright (c) 2025-2026, s0up and the autobrr contributors.
// SPDX-License-Identifier: GPL-2.0-or-later

package resman

// DeclareResource overwrites the name and type of every row in the
// bucket addressed by hash(name, typ) with the supplied values. Used to
// attach a human-readable name to resources an archive only preserved
// as a pre-hash.
func (r *Registry) DeclareResource(name string, typ FileType) {
	bucket, ok := r.buckets[r.hash(name, typ)]
	if !ok {
		return
	}

	for e := bucket.Front(); e != nil; e = e.Next() {
		res := e.Value.(*Resource)
		res.Name = name
		res.Type = typ
	}
}

// Blacklist sets every row's priority in the bucket addressed by
// hash(name, typ) to 0, making it unreachable from lookup until a
// higher-priority insertion arrives.
func (r *Registry) Blacklist(name string, typ FileType) {
	bucket, ok := r.buckets[r.hash(name, typ)]
	if !ok {
		return
	}

	for e := bucket.Front(); e != nil; e = e.Next() {
		e.Value.(*Resource).Priority = 0
	}
}
