// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/lzo (sliding_window.go hash-chain dictionary
// adapted to a simpler index-accelerated slice view); grounded on
// original_source/src/lz77/window_byte_container.rs (ByteWindow, IndexableByteWindow)

package lz77

// byteWindowAdvance reports what changed after moving a byteWindow's right
// edge: the bytes that fell out of view, the bytes newly admitted, and the
// resulting visible window — all as slices into the original backing array.
type byteWindowAdvance struct {
	evicted  []byte
	admitted []byte
	window   []byte
}

// byteWindow is an immutable-backing, moving view over an input slice: the
// tokenizer's look-behind/look-ahead mechanism. It never copies bytes; it
// only tracks where the visible range currently sits.
type byteWindow struct {
	bytes        []byte
	maxWindow    int
	currentIndex int
}

// withMaxWindowSize constructs a byteWindow starting empty at index 0.
func withMaxWindowSize(bytes []byte, maxWindow int) byteWindow {
	return byteWindow{bytes: bytes, maxWindow: maxWindow}
}

// advance moves the right edge forward by count and is shorthand for
// advanceToPointer(current + count).
func (w *byteWindow) advance(count int) byteWindowAdvance {
	return w.advanceToPointer(w.currentIndex + count)
}

// advanceToPointer moves the right edge to min(pointer, len(bytes)). The
// visible window becomes bytes[max(0,pointer-max) .. min(pointer,len(bytes))].
// Advancing past len(bytes) repeatedly yields an empty admitted slice.
func (w *byteWindow) advanceToPointer(pointer int) byteWindowAdvance {
	newStart := satSub(pointer, w.maxWindow)
	oldStart := satSub(w.currentIndex, w.maxWindow)
	end := min(len(w.bytes), pointer)

	var window []byte
	if newStart < end {
		window = w.bytes[newStart:end]
	}

	var admitted []byte
	if w.currentIndex < len(w.bytes) {
		admitted = w.bytes[w.currentIndex:end]
	}

	var evicted []byte
	if oldStart < newStart && oldStart < len(w.bytes) {
		evictedEnd := min(newStart, len(w.bytes))
		evicted = w.bytes[oldStart:evictedEnd]
	}

	w.currentIndex = pointer

	return byteWindowAdvance{evicted: evicted, admitted: admitted, window: window}
}

// window returns the currently visible range without advancing.
func (w *byteWindow) window() []byte {
	start := satSub(w.currentIndex, w.maxWindow)
	end := min(len(w.bytes), w.currentIndex)
	if start >= len(w.bytes) {
		return nil
	}
	return w.bytes[start:end]
}

func satSub(a, b int) int {
	if a < b {
		return 0
	}
	return a - b
}

// indexableByteWindow wraps byteWindow with a byte-value -> ordered absolute
// positions index, so the tokenizer can find every candidate match start for
// a given first byte in O(1) plus the number of occurrences in the window,
// instead of rescanning the whole search slice per position.
type indexableByteWindow struct {
	win            byteWindow
	byteLocations  [256][]int
	locationsStart [256]int // index into byteLocations[b] of the logical front (FIFO pop point)
}

// newIndexableByteWindow constructs an indexableByteWindow over bytes.
func newIndexableByteWindow(bytes []byte, maxWindow int) *indexableByteWindow {
	return &indexableByteWindow{win: withMaxWindowSize(bytes, maxWindow)}
}

// reset reconfigures an indexableByteWindow for reuse (see the sync.Pool in tokenizer.go).
func (iw *indexableByteWindow) reset(bytes []byte, maxWindow int) {
	iw.win = withMaxWindowSize(bytes, maxWindow)
	for i := range iw.byteLocations {
		iw.byteLocations[i] = iw.byteLocations[i][:0]
		iw.locationsStart[i] = 0
	}
}

// advanceToPointer moves the window's right edge directly to pointer,
// updating the occurrence index the same way advance does.
func (iw *indexableByteWindow) advanceToPointer(pointer int) byteWindowAdvance {
	return iw.advance(pointer - iw.win.currentIndex)
}

// advance moves the window forward by count, updating the occurrence index:
// newly admitted bytes append their absolute position, evicted bytes pop
// from the front of their list (eviction is FIFO by position, so the front
// is always the correct victim).
func (iw *indexableByteWindow) advance(count int) byteWindowAdvance {
	admissionOffset := iw.win.currentIndex
	result := iw.win.advance(count)

	for i, b := range result.admitted {
		iw.byteLocations[b] = append(iw.byteLocations[b], admissionOffset+i)
	}
	for _, b := range result.evicted {
		start := iw.locationsStart[b]
		if start < len(iw.byteLocations[b]) {
			iw.locationsStart[b] = start + 1
		}
	}

	return result
}

// window returns the currently visible range without advancing.
func (iw *indexableByteWindow) window() []byte {
	return iw.win.window()
}

// positions returns the absolute positions currently recorded for byte b,
// oldest first, restricted to positions still live (not yet evicted).
func (iw *indexableByteWindow) positions(b byte) []int {
	return iw.byteLocations[b][iw.locationsStart[b]:]
}

// locationToWindowIndex translates an absolute position into an index
// relative to the current visible window. Panics if loc lies outside it.
func (iw *indexableByteWindow) locationToWindowIndex(loc int) int {
	offset := satSub(iw.win.currentIndex, iw.win.maxWindow)
	end := min(iw.win.currentIndex, len(iw.win.bytes))
	if loc >= end || loc < offset {
		panic("lz77: location not indexable within the current visible window")
	}
	return loc - offset
}
