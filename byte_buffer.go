// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/lzo; grounded on
// original_source/src/lz77/window_byte_container.rs (ByteBuffer<T>)

package lz77

// byteBuffer is a fixed-capacity, append-only FIFO container: once its
// logical length would exceed limit, it drops exactly enough elements from
// the front to make room before appending. It is used by the replayer as the
// output history window, and backs every Reference lookup during decode.
type byteBuffer[T any] struct {
	elems []T
	limit int
}

// newByteBuffer constructs a byteBuffer with capacity hint limit.
func newByteBuffer[T any](limit int) *byteBuffer[T] {
	return &byteBuffer[T]{elems: make([]T, 0, limit), limit: limit}
}

// pushAll appends elems, evicting from the front first if the combined
// length would exceed limit.
func (b *byteBuffer[T]) pushAll(elems []T) {
	total := len(b.elems) + len(elems)
	if total > b.limit {
		drop := total - b.limit
		if drop >= len(b.elems) {
			// elems alone may still exceed limit; keep only its tail.
			b.elems = b.elems[:0]
			if over := len(elems) - b.limit; over > 0 {
				elems = elems[over:]
			}
		} else {
			b.elems = append(b.elems[:0], b.elems[drop:]...)
		}
	}
	b.elems = append(b.elems, elems...)
}

// len returns the current logical length.
func (b *byteBuffer[T]) len() int {
	return len(b.elems)
}

// at returns the element at index i, relative to the current front.
func (b *byteBuffer[T]) at(i int) T {
	return b.elems[i]
}

// slice returns the half-open range [start, end) relative to the current front.
func (b *byteBuffer[T]) slice(start, end int) []T {
	return b.elems[start:end]
}

// reset clears the buffer for reuse (see the sync.Pool in replay.go).
func (b *byteBuffer[T]) reset(limit int) {
	if cap(b.elems) < limit {
		b.elems = make([]T, 0, limit)
	} else {
		b.elems = b.elems[:0]
	}
	b.limit = limit
}
