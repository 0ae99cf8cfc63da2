// Copyright (c) 2025-2026, s0up and the autobrr contributors.
// SPDX-License-Identifier: GPL-2.0-or-later

package resman_test

import (
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/aurora-engine/resman/internal/resman"
	"github.com/aurora-engine/resman/internal/resman/resmantest"
	"github.com/aurora-engine/resman/pkg/hashutil"
)

// fixedHashArchive is a minimal Archive whose two entries advertise the
// same 64-bit pre-hash despite having distinct names, standing in for a
// real hash-collision scenario without needing to brute-force one.
type fixedHashArchive struct{}

func (fixedHashArchive) NameHashAlgo() (hashutil.Algo, bool) { return hashutil.FNV64, true }

func (fixedHashArchive) Resources() []resman.ArchiveEntry {
	return []resman.ArchiveEntry{
		{Name: "alpha", Type: "TXT", Index: 0, Prehash: 42, HasPrehash: true},
		{Name: "beta", Type: "TXT", Index: 1, Prehash: 42, HasPrehash: true},
	}
}

func (fixedHashArchive) Open(index uint32) (resman.Stream, error) {
	data := map[uint32]string{0: "first", 1: "second"}
	return resmantest.NewMemoryArchive([]resmantest.Entry{{Data: []byte(data[index])}}).Open(0)
}

func (fixedHashArchive) Size(index uint32) uint64 { return 6 }
func (fixedHashArchive) ClearScratch()            {}

func hashAlgoOther(r *resman.Registry) hashutil.Algo {
	if r.HashAlgo() == hashutil.FNV64 {
		return hashutil.DJB2
	}
	return hashutil.FNV64
}

func touch(t *testing.T, path string) {
	t.Helper()
	require.NoError(t, os.WriteFile(path, []byte{}, 0o644))
}

func newBaseRegistry(t *testing.T, files ...string) (*resman.Registry, string) {
	t.Helper()

	base := t.TempDir()
	for _, f := range files {
		touch(t, filepath.Join(base, f))
	}

	r := resman.New()
	require.NoError(t, r.RegisterBaseDir(base))

	return r, base
}

func readAll(t *testing.T, s resman.Stream) string {
	t.Helper()
	defer s.Close()
	b, err := io.ReadAll(s)
	require.NoError(t, err)
	return string(b)
}

func TestPriorityOrderingAndUndo(t *testing.T) {
	r, base := newBaseRegistry(t, "a.erf", "b.erf")

	archiveA := resmantest.NewMemoryArchive([]resmantest.Entry{{Name: "foo", Type: "WAV", Data: []byte("A")}})
	archiveB := resmantest.NewMemoryArchive([]resmantest.Entry{{Name: "foo", Type: "WAV", Data: []byte("B")}})

	opener := resmantest.PathOpener(map[string]resman.Archive{
		filepath.Join(base, "a.erf"): archiveA,
		filepath.Join(base, "b.erf"): archiveB,
	})
	r = resman.New(resman.WithArchiveOpener(resman.KindERF, opener))
	require.NoError(t, r.RegisterBaseDir(base))

	require.NoError(t, r.AddArchive(resman.KindERF, "a.erf", 10, nil))

	var changeB resman.ChangeID
	require.NoError(t, r.AddArchive(resman.KindERF, "b.erf", 20, &changeB))

	stream, typ, err := r.GetResource("foo", []resman.FileType{"WAV"})
	require.NoError(t, err)
	require.Equal(t, resman.FileType("WAV"), typ)
	require.Equal(t, "B", readAll(t, stream))

	r.Undo(changeB)

	stream, _, err = r.GetResource("foo", []resman.FileType{"WAV"})
	require.NoError(t, err)
	require.Equal(t, "A", readAll(t, stream))
}

func TestUndoOrderingEqualPriority(t *testing.T) {
	r, base := newBaseRegistry(t, "a.erf", "b.erf")

	archiveA := resmantest.NewMemoryArchive([]resmantest.Entry{{Name: "x", Type: "WAV", Data: []byte("A")}})
	archiveB := resmantest.NewMemoryArchive([]resmantest.Entry{{Name: "x", Type: "WAV", Data: []byte("B")}})

	opener := resmantest.PathOpener(map[string]resman.Archive{
		filepath.Join(base, "a.erf"): archiveA,
		filepath.Join(base, "b.erf"): archiveB,
	})
	r = resman.New(resman.WithArchiveOpener(resman.KindERF, opener))
	require.NoError(t, r.RegisterBaseDir(base))

	var changeA, changeB resman.ChangeID
	require.NoError(t, r.AddArchive(resman.KindERF, "a.erf", 10, &changeA))
	require.NoError(t, r.AddArchive(resman.KindERF, "b.erf", 10, &changeB))

	stream, _, err := r.GetResource("x", []resman.FileType{"WAV"})
	require.NoError(t, err)
	require.Equal(t, "B", readAll(t, stream))

	r.Undo(changeA)

	stream, _, err = r.GetResource("x", []resman.FileType{"WAV"})
	require.NoError(t, err)
	require.Equal(t, "B", readAll(t, stream))

	r.Undo(changeB)
	stream, _, err = r.GetResource("x", []resman.FileType{"WAV"})
	require.NoError(t, err)
	require.Nil(t, stream)
}

func TestHashCollisionBothInsertedLastInsertedWinsOnTie(t *testing.T) {
	r, base := newBaseRegistry(t, "a.erf")

	// Both entries pre-hash to the same constant key, simulating a
	// genuine 64-bit collision between two distinct (name, type) pairs.
	opener := resmantest.PathOpener(map[string]resman.Archive{
		filepath.Join(base, "a.erf"): fixedHashArchive{},
	})
	r = resman.New(resman.WithArchiveOpener(resman.KindERF, opener))
	require.NoError(t, r.RegisterBaseDir(base))

	require.NoError(t, r.AddArchive(resman.KindERF, "a.erf", 5, nil))

	// Both "alpha" and "beta" collide on hash 42; the later-inserted
	// entry (beta, equal priority) occupies the back of the bucket and
	// wins, matching the stable-on-ties insertion rule.
	stream, _, err := r.GetByHash(42)
	require.NoError(t, err)
	require.Equal(t, "second", readAll(t, stream))
}

func TestKeyBIFJoin(t *testing.T) {
	r, base := newBaseRegistry(t, "data.key", "a.bif", "b.bif")

	bifA := resmantest.NewMemoryArchive([]resmantest.Entry{{Data: []byte("payload-a")}})
	bifB := resmantest.NewMemoryArchive([]resmantest.Entry{{Data: []byte("payload-b")}})

	key := resmantest.NewKeyArchive(
		[]string{"a.bif", "b.bif"},
		[][]resmantest.DeclaredEntry{
			{{Name: "sword", Type: "MDL", BifIndex: 0}},
			{{Name: "shield", Type: "MDL", BifIndex: 0}},
		},
	)

	r = resman.New(
		resman.WithArchiveOpener(resman.KindKEY, resmantest.PathOpener(map[string]resman.Archive{
			filepath.Join(base, "data.key"): key,
		})),
		resman.WithArchiveOpener(resman.KindBIF, resmantest.PathOpener(map[string]resman.Archive{
			filepath.Join(base, "a.bif"): bifA,
			filepath.Join(base, "b.bif"): bifB,
		})),
	)
	require.NoError(t, r.RegisterBaseDir(base))

	require.NoError(t, r.AddArchive(resman.KindKEY, "data.key", 1, nil))

	stream, _, err := r.GetResource("sword", []resman.FileType{"MDL"})
	require.NoError(t, err)
	require.Equal(t, "payload-a", readAll(t, stream))

	stream, _, err = r.GetResource("shield", []resman.FileType{"MDL"})
	require.NoError(t, err)
	require.Equal(t, "payload-b", readAll(t, stream))
}

func TestKeyBIFJoinMissingBIFAbortsEntireCall(t *testing.T) {
	r, base := newBaseRegistry(t, "data.key", "a.bif")

	key := resmantest.NewKeyArchive([]string{"a.bif", "missing.bif"}, nil)

	r = resman.New(
		resman.WithArchiveOpener(resman.KindKEY, resmantest.PathOpener(map[string]resman.Archive{
			filepath.Join(base, "data.key"): key,
		})),
		resman.WithArchiveOpener(resman.KindBIF, resmantest.PathOpener(map[string]resman.Archive{
			filepath.Join(base, "a.bif"): resmantest.NewMemoryArchive(nil),
		})),
	)
	require.NoError(t, r.RegisterBaseDir(base))

	err := r.AddArchive(resman.KindKEY, "data.key", 1, nil)
	require.ErrorIs(t, err, resman.ErrBifNotFound)

	list := r.ListAvailable(nil)
	require.Empty(t, list)
}

func TestLoneBifRejected(t *testing.T) {
	r, base := newBaseRegistry(t)
	err := r.AddArchive(resman.KindBIF, "x.bif", 1, nil)
	require.ErrorIs(t, err, resman.ErrLoneBif)
	_ = base
}

func TestTypeAliasRoundTrip(t *testing.T) {
	r, base := newBaseRegistry(t, "tex.erf")
	r.AddTypeAlias("TXB", "TPC")

	archive := resmantest.NewMemoryArchive([]resmantest.Entry{{Name: "tex", Type: "TXB", Data: []byte("tex-data")}})
	r = resman.New(resman.WithArchiveOpener(resman.KindERF, resmantest.PathOpener(map[string]resman.Archive{
		filepath.Join(base, "tex.erf"): archive,
	})))
	require.NoError(t, r.RegisterBaseDir(base))
	r.AddTypeAlias("TXB", "TPC")

	require.NoError(t, r.AddArchive(resman.KindERF, "tex.erf", 1, nil))

	require.True(t, r.HasResource("tex", []resman.FileType{"TPC"}))
	require.False(t, r.HasResource("tex", []resman.FileType{"TXB"}))
}

func TestSetHashAlgoImmutableOncePopulated(t *testing.T) {
	r, base := newBaseRegistry(t, "a.erf")
	archive := resmantest.NewMemoryArchive([]resmantest.Entry{{Name: "x", Type: "WAV", Data: []byte("a")}})
	r = resman.New(resman.WithArchiveOpener(resman.KindERF, resmantest.PathOpener(map[string]resman.Archive{
		filepath.Join(base, "a.erf"): archive,
	})))
	require.NoError(t, r.RegisterBaseDir(base))

	require.NoError(t, r.AddArchive(resman.KindERF, "a.erf", 1, nil))

	err := r.SetHashAlgo(hashAlgoOther(r))
	require.ErrorIs(t, err, resman.ErrAlreadyPopulated)
}
