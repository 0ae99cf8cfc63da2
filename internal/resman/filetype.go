// Copyright (c) 2025-2026, s0up and the autobrr contributors.
// SPDX-License-Identifier: GPL-2.0-or-later

package resman

import (
	"strings"

	"github.com/aurora-engine/resman/pkg/hashutil"
)

// FileType is a canonical resource file type, stored and compared in
// uppercase. TypeNone means "no extension" — used for archive entries
// that only carry a hash and for declareResource calls without a type.
type FileType string

// TypeNone represents the absence of a file type/extension.
const TypeNone FileType = ""

// Ext returns the lowercase extension (without a leading dot) used when
// building the canonical "name.ext" hash key. TypeNone yields "".
func (t FileType) Ext() string {
	if t == TypeNone {
		return ""
	}
	return strings.ToLower(string(t))
}

// ResourceClass is a semantic resource grouping (image, video, sound...)
// that expands to an ordered list of candidate FileTypes to try in turn.
type ResourceClass int

const (
	ClassImage ResourceClass = iota
	ClassVideo
	ClassSound
	ClassMusic
	ClassCursor
)

// fixedTypeRewrites are the variant-to-canonical rewrites applied after
// the configurable alias map misses, per the type normalization rules.
var fixedTypeRewrites = map[FileType]FileType{
	"QST2": "QST",
	"MDX2": "MDX",
	"TXB2": "TXB",
	"MDB2": "MDB",
	"MDA2": "MDA",
	"SPT2": "SPT",
	"JPG2": "JPG",
}

// resourceClassExpansion is the fixed candidate-type ordering per
// ResourceClass. DDS precedes TGA for cursors and images; WAV precedes
// the lossy formats for sound and music.
var resourceClassExpansion = map[ResourceClass][]FileType{
	ClassImage:  {"DDS", "TPC", "TXB", "TGA", "PNG", "BMP", "JPG", "SBM"},
	ClassVideo:  {"BIK", "MPG", "WMV", "MOV", "XMV", "VX"},
	ClassSound:  {"WAV", "OGG", "WMA"},
	ClassMusic:  {"WAV", "BMU", "OGG", "WMA"},
	ClassCursor: {"CUR", "CURS", "DDS", "TGA"},
}

// ClassTypes returns the ordered candidate FileTypes for class. The
// returned slice must not be mutated by callers.
func ClassTypes(class ResourceClass) []FileType {
	return resourceClassExpansion[class]
}

// normalizeType applies the registry's configurable alias map, then the
// fixed rewrites, to res.Type in place. It reports whether res.Type was
// changed, in which case the caller must recompute the resource's hash.
func normalizeType(aliases map[FileType]FileType, res *Resource) bool {
	if real, ok := aliases[res.Type]; ok {
		res.Type = real
		return true
	}

	if canon, ok := fixedTypeRewrites[res.Type]; ok {
		res.Type = canon
		return true
	}

	return false
}

// typeFromExtension derives a FileType from a filesystem path's
// extension, the way a plain resource directory infers type from
// filename rather than from archive metadata.
func typeFromExtension(path string) FileType {
	ext := path
	if idx := strings.LastIndexByte(path, '.'); idx >= 0 {
		ext = path[idx+1:]
	} else {
		return TypeNone
	}
	if ext == "" {
		return TypeNone
	}
	return FileType(strings.ToUpper(ext))
}

// stem returns the filename without its directory or final extension,
// lowercased, matching how resource names are stored.
func stem(path string) string {
	base := path
	if idx := strings.LastIndexByte(path, '/'); idx >= 0 {
		base = path[idx+1:]
	}
	if idx := strings.LastIndexByte(base, '.'); idx >= 0 {
		base = base[:idx]
	}
	return hashutil.Canonicalize(base)
}
