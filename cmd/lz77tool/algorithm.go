// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta

package main

import (
	"fmt"
	"io"

	"github.com/loomwire/lz77"
)

// algorithm is a narrow capability over a byte source and a byte sink. The
// CLI selects an implementation at runtime, so a tagged switch over this
// interface is the right amount of dynamic dispatch.
type algorithm interface {
	Compress(r io.Reader, w io.Writer) error
	Decompress(r io.Reader, w io.Writer) error
}

// lz77Algorithm adapts the lz77 package's byte-slice API to the algorithm interface.
type lz77Algorithm struct{}

func (lz77Algorithm) Compress(r io.Reader, w io.Writer) error {
	data, err := io.ReadAll(r)
	if err != nil {
		return fmt.Errorf("read input: %w", err)
	}
	_, err = w.Write(lz77.Compress(data))
	return err
}

func (lz77Algorithm) Decompress(r io.Reader, w io.Writer) error {
	data, err := io.ReadAll(r)
	if err != nil {
		return fmt.Errorf("read input: %w", err)
	}
	out, err := lz77.Decompress(data)
	if err != nil {
		return err
	}
	_, err = w.Write(out)
	return err
}

// algorithmFor resolves the CLI's <algorithm> argument. "block" names an
// alternative block-hash compressor out of scope for this repo; it is
// recognized but reported as not implemented rather than falling through to
// an "unknown algorithm" error.
func algorithmFor(name string) (algorithm, error) {
	switch name {
	case "lz77":
		return lz77Algorithm{}, nil
	case "block":
		return nil, fmt.Errorf("algorithm %q is not implemented by this build", name)
	default:
		return nil, fmt.Errorf("unknown algorithm %q", name)
	}
}
