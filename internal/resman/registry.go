// Copyright (c) 2025-2026, s0up and the autobrr contributors.
// SPDX-License-Identifier: GPL-2.0-or-later

package resman

import (
	"container/list"
	"regexp"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/aurora-engine/resman/pkg/hashutil"
)

// state is the registry's lifecycle stage (§4.7). It is recorded but not
// exposed or consulted: SetHashAlgo's guard checks whether any resource
// bucket exists, not state.
type state int

const (
	stateEmpty state = iota
	stateConfigured
	statePopulated
)

var archiveGlobs = [numArchiveKinds]*regexp.Regexp{
	KindKEY:  regexp.MustCompile(`(?i)\.key$`),
	KindBIF:  regexp.MustCompile(`(?i)\.bif$`),
	KindERF:  regexp.MustCompile(`(?i)\.(erf|mod|hak|nwm)$`),
	KindRIM:  regexp.MustCompile(`(?i)\.rimp?$`),
	KindZIP:  regexp.MustCompile(`(?i)\.zip$`),
	KindEXE:  regexp.MustCompile(`(?i)\.exe$`),
	KindNDS:  regexp.MustCompile(`(?i)\.nds$`),
	KindHERF: regexp.MustCompile(`(?i)\.herf$`),
}

// Registry is a priority-ordered, name-hash-indexed resource namespace.
// It performs no internal synchronization: population (indexing) is
// expected to run single-threaded during an engine-startup phase, and
// lookups are read-only. Callers who need concurrent lookup from
// multiple goroutines must supply their own outer reader lock.
type Registry struct {
	state state

	baseDir      string
	archiveDirs  [numArchiveKinds][]string
	archiveFiles [numArchiveKinds][]string

	openers map[ArchiveKind]ArchiveOpener

	archives archiveArena
	buckets  map[uint64]*list.List

	typeAliases map[FileType]FileType

	rimsAreERFs bool
	hashAlgo    hashutil.Algo
	hasher      hashutil.Hasher
	cursorRemap []string

	changes map[ChangeID]*change

	log *zerolog.Logger
}

// Option configures a Registry at construction time.
type Option func(*Registry)

// WithLogger attaches a logger used for non-fatal warnings (hash
// collisions). A nil logger (the default) means warnings are dropped.
func WithLogger(log *zerolog.Logger) Option {
	return func(r *Registry) { r.log = log }
}

// WithArchiveOpener registers the constructor used to open archives of
// kind. Kinds without a registered opener report ErrNoOpener from
// AddArchive.
func WithArchiveOpener(kind ArchiveKind, opener ArchiveOpener) Option {
	return func(r *Registry) { r.openers[kind] = opener }
}

// New constructs an empty Registry with the default FNV-64 hash
// algorithm.
func New(opts ...Option) *Registry {
	r := &Registry{
		openers:     make(map[ArchiveKind]ArchiveOpener),
		buckets:     make(map[uint64]*list.List),
		typeAliases: make(map[FileType]FileType),
		changes:     make(map[ChangeID]*change),
		hashAlgo:    hashutil.FNV64,
		hasher:      hashutil.New(hashutil.FNV64),
	}

	for _, opt := range opts {
		opt(r)
	}

	return r
}

// Clear wipes every resource, archive, directory registration, alias,
// and change set, and resets configuration (hash algorithm, RIMs-are-
// ERFs, cursor remap) to defaults. Legal from any state; returns the
// registry to Empty.
func (r *Registry) Clear() {
	r.rimsAreERFs = false
	r.hashAlgo = hashutil.FNV64
	r.hasher = hashutil.New(hashutil.FNV64)
	r.cursorRemap = nil

	r.clearResources()
}

// clearResources drops the base dir, every directory/file registration,
// every archive, every resource bucket, every type alias, and every
// change set, but preserves hashAlgo/rimsAreERFs/cursorRemap. This is
// the reset RegisterBaseDir performs on every call, matching the
// original's registerDataBaseDir.
func (r *Registry) clearResources() {
	r.baseDir = ""

	for k := ArchiveKind(0); k < numArchiveKinds; k++ {
		r.archiveDirs[k] = nil
		r.archiveFiles[k] = nil
	}

	r.archives.clear()
	r.buckets = make(map[uint64]*list.List)
	r.typeAliases = make(map[FileType]FileType)
	r.changes = make(map[ChangeID]*change)

	r.state = stateEmpty
}

// SetHashAlgo selects the name-hashing algorithm. Permitted only before
// any resource has been indexed; once populated it returns
// ErrAlreadyPopulated for any algorithm other than the current one.
func (r *Registry) SetHashAlgo(algo hashutil.Algo) error {
	if algo != r.hashAlgo && len(r.buckets) > 0 {
		return ErrAlreadyPopulated
	}

	r.hashAlgo = algo
	r.hasher = hashutil.New(algo)
	return nil
}

// HashAlgo returns the registry's configured hash algorithm.
func (r *Registry) HashAlgo() hashutil.Algo {
	return r.hashAlgo
}

// SetRIMsAreERFs controls whether RIM-globbed files found while
// scanning an ERF directory are additionally indexed as ERF candidates.
func (r *Registry) SetRIMsAreERFs(v bool) {
	r.rimsAreERFs = v
}

// SetCursorRemap sets the ordered logical cursor names consumed by the
// EXE/PE archive opener.
func (r *Registry) SetCursorRemap(remap []string) {
	r.cursorRemap = append([]string(nil), remap...)
}

// AddTypeAlias registers a user-populated type alias, consulted before
// the fixed variant rewrites during type normalization.
func (r *Registry) AddTypeAlias(alias, real FileType) {
	r.typeAliases[alias] = real
}

// RegisterBaseDir sets the namespace's root directory. It is a hard
// reset: every resource, archive, directory registration, and change
// set from a previous base dir is dropped (hash algorithm, RIMs-are-
// ERFs, and cursor remap survive). Every archive kind's search-
// directory list, except NDS and HERF which have none, is then
// initialized to [baseDir].
func (r *Registry) RegisterBaseDir(path string) error {
	r.clearResources()

	r.baseDir = path
	r.state = stateConfigured

	for k := ArchiveKind(0); k < numArchiveKinds; k++ {
		if k == KindNDS || k == KindHERF {
			continue
		}
		if err := r.AddArchiveDir(k, "", false); err != nil {
			return err
		}
	}

	return nil
}

// BaseDir returns the registered base directory.
func (r *Registry) BaseDir() string {
	return r.baseDir
}

func (r *Registry) markPopulated() {
	if r.state != statePopulated {
		r.state = statePopulated
	}
}
