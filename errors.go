// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/lzo

package lz77

import (
	"errors"
	"fmt"
)

// Sentinel errors for decompression. Wrap with errors.Is to test for a kind;
// the concrete error returned by Decompress wraps one of them (fmt.Errorf
// with %w): a malformed-stream error carries the bit offset of the failure,
// an out-of-range error names the reference's offset and length. Decoding
// fails fast and never attempts recovery or resynchronization.
var (
	// ErrMalformedStream is returned when the decoder exhausts the bitstream
	// without seeing the terminator, or a length field would overflow uint16.
	ErrMalformedStream = errors.New("malformed stream")
	// ErrOutOfRange is returned when a decoded Reference points before the
	// start of the reconstructed history, or has length 0.
	ErrOutOfRange = errors.New("reference out of range")
	// ErrInternal names a tokenizer or encoder invariant violation. No
	// function in this package returns it: the tokenizer and encoder are
	// total, and Compress has no error result.
	ErrInternal = errors.New("internal compressor error")
)

// malformedAt reports a malformed stream at a given bit offset, for tests and
// diagnostics that need to pinpoint the failure.
func malformedAt(bitOffset int, reason string) error {
	return fmt.Errorf("%w at bit %d: %s", ErrMalformedStream, bitOffset, reason)
}

// outOfRangeAt reports an out-of-range reference, naming the offending offset/length.
func outOfRangeAt(offset, length int) error {
	return fmt.Errorf("%w: offset=%d length=%d", ErrOutOfRange, offset, length)
}
