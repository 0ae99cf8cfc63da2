// Copyright (c) 2025-2026, s0up and the autobrr contributors.
// SPDX-License-Identifier: GPL-2.0-or-later

package resman

import (
	"fmt"
	"io"
	"os"
)

// DumpIndex writes a fixed-width diagnostic table — one row per bucket
// with a winner — to path: a 36-character name+extension column, an
// 18-character "0x"-prefixed hex hash column, and a 12-digit size
// column.
func (r *Registry) DumpIndex(path string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("%w: %s", ErrWriteError, err)
	}
	defer f.Close()

	if err := r.writeIndex(f); err != nil {
		return fmt.Errorf("%w: %s", ErrWriteError, err)
	}

	return nil
}

func (r *Registry) writeIndex(w io.Writer) error {
	if _, err := fmt.Fprintf(w, "%-36s | %-18s | %12s\n", "Name", "Hash", "Size"); err != nil {
		return err
	}
	if _, err := fmt.Fprintf(w, "%s-|-%s-|-%s\n", repeat('-', 36), repeat('-', 18), repeat('-', 12)); err != nil {
		return err
	}

	for hash := range r.buckets {
		res := r.winner(hash)
		if res == nil {
			continue
		}

		nameCol := res.Name
		if res.Type != TypeNone {
			nameCol += "." + res.Type.Ext()
		}

		size := r.GetSize(res)

		if _, err := fmt.Fprintf(w, "%-36s | 0x%016x | %12d\n", nameCol, hash, size); err != nil {
			return err
		}
	}

	return nil
}

func repeat(b byte, n int) string {
	buf := make([]byte, n)
	for i := range buf {
		buf[i] = b
	}
	return string(buf)
}
