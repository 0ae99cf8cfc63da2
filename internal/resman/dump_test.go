// Copyright (c) 2025-2026, s0up and the autobrr contributors.
// SPDX-License-Identifier: GPL-2.0-or-later

package resman_test

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/aurora-engine/resman/internal/resman"
	"github.com/aurora-engine/resman/internal/resman/resmantest"
)

func TestDumpIndexFixedWidthFormat(t *testing.T) {
	r, base := newBaseRegistry(t, "a.erf")

	archive := resmantest.NewMemoryArchive([]resmantest.Entry{
		{Name: "foo", Type: "WAV", Data: []byte("0123456789")},
	})
	r = resman.New(resman.WithArchiveOpener(resman.KindERF, resmantest.PathOpener(map[string]resman.Archive{
		filepath.Join(base, "a.erf"): archive,
	})))
	require.NoError(t, r.RegisterBaseDir(base))
	require.NoError(t, r.AddArchive(resman.KindERF, "a.erf", 5, nil))

	out := filepath.Join(base, "index.txt")
	require.NoError(t, r.DumpIndex(out))

	data, err := os.ReadFile(out)
	require.NoError(t, err)

	lines := strings.Split(strings.TrimRight(string(data), "\n"), "\n")
	require.Len(t, lines, 3)
	require.True(t, strings.HasPrefix(lines[0], "Name"))
	require.True(t, strings.HasPrefix(lines[1], "----"))
	require.Contains(t, lines[2], "foo.wav")
	require.Contains(t, lines[2], "0x")
	require.Contains(t, lines[2], "10")
}

func TestDumpIndexInvalidPathWrapsErrWriteError(t *testing.T) {
	r, _ := newBaseRegistry(t)
	err := r.DumpIndex(filepath.Join(t.TempDir(), "missing-dir", "index.txt"))
	require.ErrorIs(t, err, resman.ErrWriteError)
}
