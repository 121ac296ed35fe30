// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta

package lz77

import "sync"

const (
	// searchWindowSize bounds look-behind for matches. 2048 would let a
	// pathological input emit offset=2048, which overflows the codec's
	// 11-bit offset field (see DESIGN.md, Open Question 1), so the window
	// is one byte narrower: 2047.
	searchWindowSize = 2047
	// prefixWindowSize bounds the look-ahead used to extend a match.
	prefixWindowSize = 2048
)

var indexableWindowPool = sync.Pool{
	New: func() any { return &indexableByteWindow{} },
}

// tokenize walks B and returns a finite, ordered sequence of tokens covering
// every byte of B exactly once. It is total on any input, including nil or
// empty.
func tokenize(b []byte) []Token {
	n := len(b)
	if n == 0 {
		return nil
	}

	window := indexableWindowPool.Get().(*indexableByteWindow)
	window.reset(b, searchWindowSize)
	defer indexableWindowPool.Put(window)

	tokens := make([]Token, 0, n/2)
	p := 0
	for p < n {
		window.advanceToPointer(p)

		c := b[p]
		prefixEnd := min(p+1+prefixWindowSize, n)
		prefix := b[p+1 : prefixEnd]

		bestLen, bestOffset := longestMatch(b, window.positions(c), p, prefix)

		// Boundary rule: a match that would run off the end of the input is
		// clamped by one so the tokenizer can still emit a trailing literal
		// next iteration instead of over-consuming the last byte.
		if bestLen > len(prefix)+1 {
			bestLen--
		}

		if bestLen >= 2 {
			tokens = append(tokens, Ref(uint16(bestOffset), uint16(bestLen))) //nolint:gosec // G115: bestOffset/bestLen bounded by window sizes
			p += bestLen

			// The byte immediately following a reference's matched run is
			// always taken as a literal, never itself searched for a fresh
			// match: calculate_node appends this next_char unconditionally
			// before advancing past it.
			if p < n {
				window.advanceToPointer(p)
				tokens = append(tokens, Lit(b[p]))
				p++
			}
			continue
		}

		tokens = append(tokens, Lit(c))
		p++
	}

	return tokens
}

// longestMatch scans candidate match starts for byte b[p] from the most
// recent (tail) position backward, keeping the strictly-longest candidate.
// positions holds the absolute indices, oldest first, of every occurrence of
// b[p] currently inside the search window; scanning it tail-first and
// keeping a strictly-greater comparison means ties are won by whichever
// candidate was encountered first in that reverse scan (the smaller-offset
// one).
func longestMatch(b []byte, positions []int, p int, prefix []byte) (length, offset int) {
	for i := len(positions) - 1; i >= 0; i-- {
		pos := positions[i]
		tail := b[pos+1 : p]
		m := commonPrefixLen(tail, prefix)
		candidateLen := m + 1
		if candidateLen > length {
			length = candidateLen
			offset = p - pos
		}
	}
	return length, offset
}

// commonPrefixLen returns the length of the longest common prefix of a and b.
func commonPrefixLen(a, b []byte) int {
	n := min(len(a), len(b))
	for i := 0; i < n; i++ {
		if a[i] != b[i] {
			return i
		}
	}
	return n
}
