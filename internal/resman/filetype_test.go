// Copyright (c) 2025-2026, s0up and the autobrr contributors.
// SPDX-License-Identifier: GPL-2.0-or-later

package resman

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestNormalizeTypeFixedRewrites(t *testing.T) {
	pairs := map[FileType]FileType{
		"QST2": "QST",
		"MDX2": "MDX",
		"TXB2": "TXB",
		"MDB2": "MDB",
		"MDA2": "MDA",
		"SPT2": "SPT",
		"JPG2": "JPG",
	}

	for src, dst := range pairs {
		res := &Resource{Type: src}
		changed := normalizeType(map[FileType]FileType{}, res)
		require.True(t, changed, src)
		require.Equal(t, dst, res.Type, src)
	}
}

func TestNormalizeTypeAliasTakesPrecedence(t *testing.T) {
	aliases := map[FileType]FileType{"TXB": "TPC"}

	res := &Resource{Type: "TXB"}
	changed := normalizeType(aliases, res)
	require.True(t, changed)
	require.Equal(t, FileType("TPC"), res.Type)
}

func TestNormalizeTypeNoMatch(t *testing.T) {
	res := &Resource{Type: "WAV"}
	changed := normalizeType(map[FileType]FileType{}, res)
	require.False(t, changed)
	require.Equal(t, FileType("WAV"), res.Type)
}

func TestTypeFromExtensionAndStem(t *testing.T) {
	require.Equal(t, FileType("WAV"), typeFromExtension("sound/foo.wav"))
	require.Equal(t, TypeNone, typeFromExtension("sound/noext"))
	require.Equal(t, "foo", stem("sound/Foo.WAV"))
}

func TestClassTypes(t *testing.T) {
	require.Equal(t, []FileType{"DDS", "TPC", "TXB", "TGA", "PNG", "BMP", "JPG", "SBM"}, ClassTypes(ClassImage))
	require.Equal(t, []FileType{"CUR", "CURS", "DDS", "TGA"}, ClassTypes(ClassCursor))
}
