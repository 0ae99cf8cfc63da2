// Copyright (c) 2025-2026, s0up and the autobrr contributors.
// SPDX-License-Identifier: GPL-2.0-or-later

package resman

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/aurora-engine/resman/internal/resman/resmantest"
)

func TestGetSizeArchiveBacked(t *testing.T) {
	base := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(base, "a.erf"), nil, 0o644))

	archive := resmantest.NewMemoryArchive([]resmantest.Entry{
		{Name: "foo", Type: "WAV", Data: []byte("0123456789")},
	})
	r := New(WithArchiveOpener(KindERF, resmantest.PathOpener(map[string]Archive{
		filepath.Join(base, "a.erf"): archive,
	})))
	require.NoError(t, r.RegisterBaseDir(base))
	require.NoError(t, r.AddArchive(KindERF, "a.erf", 5, nil))

	res := r.getResource("foo", []FileType{"WAV"})
	require.NotNil(t, res)
	require.Equal(t, uint64(10), r.GetSize(res))
}

func TestGetSizeFileBacked(t *testing.T) {
	base := t.TempDir()
	require.NoError(t, os.MkdirAll(filepath.Join(base, "data"), 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(base, "data", "foo.wav"), []byte("hello world"), 0o644))

	r := New()
	require.NoError(t, r.RegisterBaseDir(base))
	require.NoError(t, r.AddResourceDir("data", "", 1, 1, nil))

	res := r.getResource("foo", []FileType{"WAV"})
	require.NotNil(t, res)
	require.Equal(t, uint64(11), r.GetSize(res))
}
