// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/lzo (compress.go/decompress.go's façade split)

package lz77

import "bytes"

// Compress tokenizes input by longest-match search and bit-packs the result
// into this package's private bitstream format. It never fails, including on
// nil or empty input, and carries no state between calls.
func Compress(input []byte) []byte {
	tokens := tokenize(input)
	return encodeTokens(tokens)
}

// Decompress reconstructs the original bytes from a bitstream produced by
// Compress. It fails fast with ErrMalformedStream if the bitstream is
// exhausted before the terminator, or ErrOutOfRange if a decoded Reference
// points before the start of the reconstructed history or has length 0; on
// either error the partial output is discarded.
func Decompress(input []byte) ([]byte, error) {
	tokens, err := decodeTokens(input)
	if err != nil {
		return nil, err
	}

	var out bytes.Buffer
	out.Grow(len(input) * 2)
	if err := replay(tokens, &out); err != nil {
		// Reference policy: discard partial output on failure.
		return nil, err
	}

	return out.Bytes(), nil
}
