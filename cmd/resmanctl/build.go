// Copyright (c) 2025-2026, s0up and the autobrr contributors.
// SPDX-License-Identifier: GPL-2.0-or-later

package main

import (
	"fmt"

	"github.com/rs/zerolog"

	"github.com/aurora-engine/resman/internal/resman"
	"github.com/aurora-engine/resman/pkg/hashutil"
)

func buildRegistry(cfg *namespaceConfig, log *zerolog.Logger) (*resman.Registry, error) {
	r := resman.New(resman.WithLogger(log))

	if cfg.HashAlgo != "" {
		algo, ok := hashutil.ParseAlgo(cfg.HashAlgo)
		if !ok {
			return nil, fmt.Errorf("resmanctl: unknown hash algorithm %q", cfg.HashAlgo)
		}
		if err := r.SetHashAlgo(algo); err != nil {
			return nil, err
		}
	}

	r.SetRIMsAreERFs(cfg.RIMsAreERFs)
	r.SetCursorRemap(cfg.CursorRemap)

	for _, alias := range cfg.TypeAliases {
		r.AddTypeAlias(resman.FileType(alias.Alias), resman.FileType(alias.Real))
	}

	if err := r.RegisterBaseDir(cfg.BaseDir); err != nil {
		return nil, fmt.Errorf("registering base dir %q: %w", cfg.BaseDir, err)
	}

	for _, alias := range cfg.TypeAliases {
		r.AddTypeAlias(resman.FileType(alias.Alias), resman.FileType(alias.Real))
	}

	for _, rd := range cfg.ResourceDir {
		priority := rd.Priority
		if priority == 0 {
			priority = 1
		}
		if err := r.AddResourceDir(rd.Dir, rd.Glob, rd.Depth, priority, nil); err != nil {
			return nil, fmt.Errorf("adding resource dir %q: %w", rd.Dir, err)
		}
	}

	return r, nil
}
