// Copyright (c) 2025-2026, s0up and the autobrr contributors.
// SPDX-License-Identifier: GPL-2.0-or-later

package resman_test

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/aurora-engine/resman/internal/resman"
	"github.com/aurora-engine/resman/internal/resman/resmantest"
)

func TestGetResourceClassCursorPrefersDDSOverTGA(t *testing.T) {
	r, base := newBaseRegistry(t, "a.erf")

	archive := resmantest.NewMemoryArchive([]resmantest.Entry{
		{Name: "arrow", Type: "TGA", Data: []byte("tga-bytes")},
		{Name: "arrow", Type: "DDS", Data: []byte("dds-bytes")},
	})
	r = resman.New(resman.WithArchiveOpener(resman.KindERF, resmantest.PathOpener(map[string]resman.Archive{
		filepath.Join(base, "a.erf"): archive,
	})))
	require.NoError(t, r.RegisterBaseDir(base))
	require.NoError(t, r.AddArchive(resman.KindERF, "a.erf", 5, nil))

	stream, typ, err := r.GetResourceClass(resman.ClassCursor, "arrow")
	require.NoError(t, err)
	require.Equal(t, resman.FileType("DDS"), typ)
	require.Equal(t, "dds-bytes", readAll(t, stream))

	r.Blacklist("arrow", "DDS")

	stream, typ, err = r.GetResourceClass(resman.ClassCursor, "arrow")
	require.NoError(t, err)
	require.Equal(t, resman.FileType("TGA"), typ)
	require.Equal(t, "tga-bytes", readAll(t, stream))
}

func TestHasResourceAndHasResourceClass(t *testing.T) {
	r, base := newBaseRegistry(t, "a.erf")

	archive := resmantest.NewMemoryArchive([]resmantest.Entry{
		{Name: "arrow", Type: "TGA", Data: []byte("tga-bytes")},
	})
	r = resman.New(resman.WithArchiveOpener(resman.KindERF, resmantest.PathOpener(map[string]resman.Archive{
		filepath.Join(base, "a.erf"): archive,
	})))
	require.NoError(t, r.RegisterBaseDir(base))
	require.NoError(t, r.AddArchive(resman.KindERF, "a.erf", 5, nil))

	require.True(t, r.HasResource("arrow", []resman.FileType{"TGA"}))
	require.False(t, r.HasResource("arrow", []resman.FileType{"DDS"}))
	require.True(t, r.HasResourceClass(resman.ClassCursor, "arrow"))
	require.False(t, r.HasResourceClass(resman.ClassImage, "nothing"))
}

func TestGetSizeNilResourceIsUnknown(t *testing.T) {
	r, _ := newBaseRegistry(t)
	require.Equal(t, resman.SizeUnknown, r.GetSize(nil))
}

func TestGetResourceNotFoundReturnsNilNil(t *testing.T) {
	r, _ := newBaseRegistry(t)
	stream, typ, err := r.GetResource("nonexistent", []resman.FileType{"WAV"})
	require.NoError(t, err)
	require.Nil(t, stream)
	require.Equal(t, resman.TypeNone, typ)
}

func TestListAvailableFiltersByType(t *testing.T) {
	r, base := newBaseRegistry(t, "a.erf")

	archive := resmantest.NewMemoryArchive([]resmantest.Entry{
		{Name: "foo", Type: "WAV", Data: []byte("a")},
		{Name: "bar", Type: "MDL", Data: []byte("b")},
	})
	r = resman.New(resman.WithArchiveOpener(resman.KindERF, resmantest.PathOpener(map[string]resman.Archive{
		filepath.Join(base, "a.erf"): archive,
	})))
	require.NoError(t, r.RegisterBaseDir(base))
	require.NoError(t, r.AddArchive(resman.KindERF, "a.erf", 5, nil))

	all := r.ListAvailable(nil)
	require.Len(t, all, 2)

	wavOnly := r.ListAvailable([]resman.FileType{"WAV"})
	require.Len(t, wavOnly, 1)
	require.Equal(t, "foo", wavOnly[0].Name)
}
