// Copyright (c) 2025-2026, s0up and the autobrr contributors.
// SPDX-License-Identifier: GPL-2.0-or-later

// Package resman implements a priority-ordered, name-hash-indexed
// resource namespace for loading game assets out of heterogeneous
// on-disk containers (indexed archives, plain directory trees, platform
// ROMs). Many overlays can contribute a resource under the same logical
// name; lookups resolve to exactly one winner by numeric priority.
//
// The registry itself never parses a container's binary format — that is
// supplied by the host through an Archive implementation and, for
// kinds that register one, an ArchiveOpener. resman owns discovery,
// hashing, type normalization, the priority-sorted index, and the
// change log that lets an indexing call be undone as a unit.
package resman
