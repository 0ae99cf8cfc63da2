// Copyright (c) 2025-2026, s0up and the autobrr contributors.
// SPDX-License-Identifier: GPL-2.0-or-later

package main

import (
	"fmt"

	"github.com/spf13/viper"
)

// resourceDirConfig describes one AddResourceDir call read from a
// namespace manifest.
type resourceDirConfig struct {
	Dir      string `toml:"dir" mapstructure:"dir"`
	Glob     string `toml:"glob" mapstructure:"glob"`
	Depth    int    `toml:"depth" mapstructure:"depth"`
	Priority uint32 `toml:"priority" mapstructure:"priority"`
}

// typeAliasConfig describes one AddTypeAlias call.
type typeAliasConfig struct {
	Alias string `toml:"alias" mapstructure:"alias"`
	Real  string `toml:"real" mapstructure:"real"`
}

// namespaceConfig is the on-disk manifest resmanctl reads to populate a
// registry: a base directory plus a set of file-backed resource
// directories and type aliases. Archive-backed kinds (KEY/BIF/ERF/...)
// need a host-supplied binary parser and are out of scope for this
// standalone tool; namespaceConfig only drives the file-backed half of
// indexing.
type namespaceConfig struct {
	BaseDir     string              `toml:"baseDir" mapstructure:"baseDir"`
	HashAlgo    string              `toml:"hashAlgo" mapstructure:"hashAlgo"`
	RIMsAreERFs bool                `toml:"rimsAreERFs" mapstructure:"rimsAreERFs"`
	CursorRemap []string            `toml:"cursorRemap" mapstructure:"cursorRemap"`
	TypeAliases []typeAliasConfig   `toml:"typeAliases" mapstructure:"typeAliases"`
	ResourceDir []resourceDirConfig `toml:"resourceDir" mapstructure:"resourceDir"`
}

func loadNamespaceConfig(path string) (*namespaceConfig, error) {
	v := viper.New()
	v.SetConfigFile(path)
	v.SetEnvPrefix("RESMAN")
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("reading manifest %q: %w", path, err)
	}

	var cfg namespaceConfig
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("parsing manifest %q: %w", path, err)
	}

	if cfg.BaseDir == "" {
		return nil, fmt.Errorf("manifest %q: baseDir is required", path)
	}

	return &cfg, nil
}
