// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/lzo (copy.go's exponential-doubling
// self-overlap copy, adapted for a separate scratch destination); grounded on
// original_source/src/lz77/compress.rs (decompress_nodes)

package lz77

import (
	"io"
	"sync"
)

// replayBufferSize is the replayer's retained output history window. It is
// one byte larger than the tokenizer's own search window (searchWindowSize)
// because the codec's offset field can encode up to 2047, and the replayer
// must be able to satisfy any reference a conforming encoder could produce.
const replayBufferSize = 2048

var replayBufferPool = sync.Pool{
	New: func() any { return newByteBuffer[byte](replayBufferSize) },
}

// replay consumes tokens in order, reconstructing bytes into a sliding
// output window and writing them to sink. It fails fast with ErrOutOfRange
// if a Reference points before the start of the reconstructed history or has
// length 0.
func replay(tokens []Token, sink io.Writer) error {
	buf := replayBufferPool.Get().(*byteBuffer[byte])
	buf.reset(replayBufferSize)
	defer replayBufferPool.Put(buf)

	for _, t := range tokens {
		switch t.Kind {
		case KindLiteral:
			lit := [1]byte{t.Literal}
			if _, err := sink.Write(lit[:]); err != nil {
				return err
			}
			buf.pushAll(lit[:])

		case KindReference:
			out, err := copyReference(buf, int(t.Offset), int(t.Length))
			if err != nil {
				return err
			}
			if _, err := sink.Write(out); err != nil {
				return err
			}
			buf.pushAll(out)

		case KindEndOfStream:
			return nil
		}
	}

	return nil
}

// copyReference produces the length bytes a Reference(offset, length) token
// copies from buf, which may require self-overlapping reads when
// offset < length (e.g. Reference(1, L) repeats the previous byte L times):
// the replayer must preserve this reference-to-self property because reads
// and writes are interleaved byte-by-byte in a real streaming replay.
//
// The copy itself uses the same trick as copyBackRef in the LZO decoder this
// package is adapted from: seed one full distance chunk from already-written
// history, then grow the copied region by doubling from the output already
// produced, which is far cheaper than a byte-by-byte loop.
func copyReference(buf *byteBuffer[byte], offset, length int) ([]byte, error) {
	n := buf.len()
	if offset <= 0 || length == 0 || offset > n {
		return nil, outOfRangeAt(offset, length)
	}

	start := n - offset
	out := make([]byte, length)

	if offset >= length {
		copy(out, buf.slice(start, start+length))
		return out, nil
	}

	copy(out[:offset], buf.slice(start, n))
	copied := offset
	for copied < length {
		copied += copy(out[copied:length], out[:copied])
	}

	return out, nil
}
