// Copyright (c) 2025-2026, s0up and the autobrr contributors.
// SPDX-License-Identifier: GPL-2.0-or-later

package resman

import "github.com/aurora-engine/resman/pkg/hashutil"

// canonicalKey builds the "name.ext" string a hash is computed over.
// No extension is appended when typ is TypeNone.
func canonicalKey(name string, typ FileType) string {
	name = hashutil.Canonicalize(name)

	ext := typ.Ext()
	if ext == "" {
		return name
	}

	return name + "." + ext
}

// hash computes the registry's configured algorithm over name and typ.
func (r *Registry) hash(name string, typ FileType) uint64 {
	return r.hasher.Sum64(canonicalKey(name, typ))
}
