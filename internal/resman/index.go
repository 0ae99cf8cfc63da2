// Copyright (c) 2025-2026, s0up and the autobrr contributors.
// SPDX-License-Identifier: GPL-2.0-or-later

package resman

import (
	"container/list"
	"fmt"

	"github.com/aurora-engine/resman/pkg/fsutil"
	"github.com/aurora-engine/resman/pkg/pathutil"
)

// AddArchive resolves and indexes an archive of the given kind, at the
// given priority. If track is non-nil, everything this call inserts
// (resource rows and archive handles) becomes undoable via the
// ChangeID written to *track.
func (r *Registry) AddArchive(kind ArchiveKind, name string, priority uint32, track *ChangeID) error {
	if kind == KindBIF {
		return ErrLoneBif
	}

	c := &change{}

	switch kind {
	case KindNDS:
		opener, ok := r.openers[KindNDS]
		if !ok {
			return fmt.Errorf("%w: %s", ErrNoOpener, kind)
		}
		archive, err := opener(ArchiveSource{Path: name, CursorRemap: r.cursorRemap})
		if err != nil {
			return fmt.Errorf("opening NDS %q: %w", name, err)
		}
		if err := r.indexArchive(archive, priority, c); err != nil {
			r.rollback(c)
			return err
		}
		r.commit(c, track)
		return nil

	case KindHERF:
		stream, _, err := r.GetResource(stem(name), []FileType{"HERF"})
		if err != nil {
			return fmt.Errorf("opening HERF %q: %w", name, err)
		}
		if stream == nil {
			return fmt.Errorf("%w: %q", ErrNoSuchArchive, name)
		}
		opener, ok := r.openers[KindHERF]
		if !ok {
			_ = stream.Close()
			return fmt.Errorf("%w: %s", ErrNoOpener, kind)
		}
		archive, err := opener(ArchiveSource{Stream: stream, CursorRemap: r.cursorRemap})
		if err != nil {
			_ = stream.Close()
			return fmt.Errorf("opening HERF %q: %w", name, err)
		}
		if err := r.indexArchive(archive, priority, c); err != nil {
			r.rollback(c)
			return err
		}
		r.commit(c, track)
		return nil

	case KindKEY:
		realName := findArchive(name, r.archiveDirs[kind], r.archiveFiles[kind])
		if realName == "" {
			return fmt.Errorf("%w: %q", ErrNoSuchArchive, name)
		}
		if err := r.indexKEY(realName, priority, c); err != nil {
			r.rollback(c)
			return err
		}
		r.commit(c, track)
		return nil

	case KindERF, KindRIM, KindZIP, KindEXE:
		realName := findArchive(name, r.archiveDirs[kind], r.archiveFiles[kind])
		if realName == "" {
			return fmt.Errorf("%w: %q", ErrNoSuchArchive, name)
		}

		opener, ok := r.openers[kind]
		if !ok {
			return fmt.Errorf("%w: %s", ErrNoOpener, kind)
		}

		archive, err := opener(ArchiveSource{Path: realName, CursorRemap: r.cursorRemap})
		if err != nil {
			return fmt.Errorf("opening %s %q: %w", kind, realName, err)
		}

		if err := r.indexArchive(archive, priority, c); err != nil {
			r.rollback(c)
			return err
		}
		r.commit(c, track)
		return nil

	default:
		return fmt.Errorf("resman: unknown archive kind %d", kind)
	}
}

// findBIFs resolves every BIF filename key declares against the BIF
// search directories, failing with ErrBifNotFound on the first miss.
func (r *Registry) findBIFs(key KeyArchive) ([]string, error) {
	declared := key.ReferencedBIFs()
	bifs := make([]string, 0, len(declared))

	for _, name := range declared {
		resolved := findArchive(name, r.archiveDirs[KindBIF], r.archiveFiles[KindBIF])
		if resolved == "" {
			return nil, fmt.Errorf("%w: %q", ErrBifNotFound, name)
		}
		bifs = append(bifs, resolved)
	}

	return bifs, nil
}

// mergeKEYBIF opens every BIF a KEY references and joins each with the
// names/types/indices the KEY declared for it. If any BIF fails to
// open, every BIF already opened for this call is discarded and the
// whole call fails — nothing from it is ever indexed.
func (r *Registry) mergeKEYBIF(key KeyArchive, bifPaths []string) ([]Archive, error) {
	opener, ok := r.openers[KindBIF]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrNoOpener, KindBIF)
	}

	joined := make([]Archive, 0, len(bifPaths))
	for i, path := range bifPaths {
		bif, err := opener(ArchiveSource{Path: path, CursorRemap: r.cursorRemap})
		if err != nil {
			return nil, fmt.Errorf("failed opening needed BIFs: %w", err)
		}

		hydrated, err := key.JoinBIF(i, bif)
		if err != nil {
			return nil, fmt.Errorf("failed opening needed BIFs: %w", err)
		}

		joined = append(joined, hydrated)
	}

	return joined, nil
}

// indexKEY performs the full KEY-BIF join: resolve every referenced BIF,
// open and hydrate each with the KEY's declared names, then index every
// hydrated BIF as its own archive under the same change and priority.
func (r *Registry) indexKEY(path string, priority uint32, c *change) error {
	opener, ok := r.openers[KindKEY]
	if !ok {
		return fmt.Errorf("%w: %s", ErrNoOpener, KindKEY)
	}

	archive, err := opener(ArchiveSource{Path: path, CursorRemap: r.cursorRemap})
	if err != nil {
		return fmt.Errorf("opening KEY %q: %w", path, err)
	}

	key, ok := archive.(KeyArchive)
	if !ok {
		return fmt.Errorf("resman: KEY opener for %q did not return a KeyArchive", path)
	}

	bifPaths, err := r.findBIFs(key)
	if err != nil {
		return err
	}

	bifs, err := r.mergeKEYBIF(key, bifPaths)
	if err != nil {
		return err
	}

	for _, bif := range bifs {
		if err := r.indexArchive(bif, priority, c); err != nil {
			return err
		}
	}

	return nil
}

// indexArchive enumerates every entry an archive holds, normalizes and
// hashes each, and inserts it into the registry, recording every
// insertion (and the archive itself) into c.
func (r *Registry) indexArchive(archive Archive, priority uint32, c *change) error {
	if algo, ok := archive.NameHashAlgo(); ok && algo != r.hashAlgo {
		return fmt.Errorf("%w: archive uses %s, registry uses %s", ErrHashAlgoMismatch, algo, r.hashAlgo)
	}

	handle := r.archives.insert(archive)
	c.recordArchive(handle)

	for _, entry := range archive.Resources() {
		res := &Resource{
			Priority:     priority,
			Source:       SourceArchive,
			archive:      handle,
			ArchiveIndex: entry.Index,
			Name:         entry.Name,
			Type:         entry.Type,
		}

		var hash uint64
		if entry.HasPrehash {
			hash = entry.Prehash
		} else {
			hash = r.hash(res.Name, res.Type)
		}

		if res.Name != "" && res.Type != TypeNone {
			if normalizeType(r.typeAliases, res) {
				hash = r.hash(res.Name, res.Type)
			}
		}

		r.addResource(res, hash, c)
	}

	archive.ClearScratch()
	r.markPopulated()

	return nil
}

// AddResourceDir walks dir (relative to the base directory), to depth
// plies, and indexes every plain file it finds as a file-backed
// resource. If glob is non-empty, only files matching it (a shell-style
// "**" glob, not a regex) are inserted.
func (r *Registry) AddResourceDir(dir string, glob string, depth int, priority uint32, track *ChangeID) error {
	directory, err := pathutil.FindSubDirectory(r.baseDir, dir, true)
	if err != nil {
		return fmt.Errorf("%w: %q", ErrNoSuchDirectory, dir)
	}

	files, err := fsutil.ListFiles(directory, depth)
	if err != nil {
		return fmt.Errorf("reading directory %q: %w", directory, err)
	}

	if glob != "" {
		files, err = matchGlob(files, glob)
		if err != nil {
			return fmt.Errorf("resman: invalid glob %q: %w", glob, err)
		}
	}

	c := &change{}
	for _, relPath := range files {
		res := &Resource{
			Priority: priority,
			Source:   SourceFile,
			Path:     directory + "/" + relPath,
			Name:     stem(relPath),
			Type:     typeFromExtension(relPath),
		}

		hash := r.hash(res.Name, res.Type)
		if normalizeType(r.typeAliases, res) {
			hash = r.hash(res.Name, res.Type)
		}

		r.addResource(res, hash, c)
	}

	r.markPopulated()
	r.commit(c, track)
	return nil
}

// addResource inserts res into its hash bucket, creating the bucket if
// necessary, running the hash-collision check, and keeping the bucket
// stably sorted by ascending priority (ties keep insertion order, so
// the back of the list is always the current winner).
func (r *Registry) addResource(res *Resource, hash uint64, c *change) {
	bucket, ok := r.buckets[hash]
	if !ok {
		bucket = list.New()
		r.buckets[hash] = bucket
	}

	r.checkHashCollision(res, hash, bucket)

	var elem *list.Element
	for e := bucket.Front(); e != nil; e = e.Next() {
		if e.Value.(*Resource).Priority > res.Priority {
			elem = bucket.InsertBefore(res, e)
			break
		}
	}
	if elem == nil {
		elem = bucket.PushBack(res)
	}

	if c != nil {
		c.recordResource(hash, bucket, elem)
	}
}

// checkHashCollision warns once, through the registry's logger, when a
// bucket already holds a resource whose canonical "name.ext" differs
// from the one being inserted — a genuine 64-bit hash collision rather
// than two occurrences of the same logical resource. The winner is
// still chosen purely by priority; the warning is purely diagnostic.
func (r *Registry) checkHashCollision(res *Resource, hash uint64, bucket *list.List) {
	if r.log == nil || res.Name == "" || bucket.Len() == 0 {
		return
	}

	newKey := canonicalKey(res.Name, res.Type)

	for e := bucket.Front(); e != nil; e = e.Next() {
		existing := e.Value.(*Resource)
		if existing.Name == "" {
			continue
		}

		oldKey := canonicalKey(existing.Name, existing.Type)
		if oldKey != newKey {
			r.log.Warn().
				Uint64("hash", hash).
				Str("existing", oldKey).
				Str("incoming", newKey).
				Msg("resman: hash collision")
		}
		return
	}
}
