// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/lzo

/*
Package lz77 implements a small, didactic LZ77-family byte compressor: a
sliding-window tokenizer, a bit-precise variable-length token codec, and the
symmetric decoder that replays tokens against a retained output window.

The bitstream is private to this package — it is not interoperable with
DEFLATE, LZSS, or any standard LZ77 format.

# Compress

	out := lz77.Compress(data)

# Decompress

	out, err := lz77.Decompress(compressed)

Decompress fails fast on a malformed stream; it never attempts recovery or
resynchronization. Compress is infallible on any input, including nil or
empty slices.
*/
package lz77
