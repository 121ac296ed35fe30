// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/lzo (decompress.go's opcode-class dispatch
// shape); grounded on original_source/src/lz77/serialisation.rs

package lz77

const (
	// shortOffsetBits/longOffsetBits are the two offset field widths the
	// encoder chooses between based on magnitude.
	shortOffsetBits = 7
	longOffsetBits  = 11
	shortOffsetMax  = 1<<shortOffsetBits - 1 // 127

	// endOfStreamMarker is 9 bits: 1 1 0 0 0 0 0 0 0. It can never be
	// mistaken for the start of a real token: a reference tag (1) followed
	// by the short-offset flag (1) and 7 zero bits would decode to
	// Reference(offset=0, ...), and offset=0 is structurally impossible
	// (every reference points strictly before the current position).
	endOfStreamMarker     = 0b110000000
	endOfStreamMarkerBits = 9
)

// encodeTokens serializes tokens to a bit-packed byte stream, terminated and
// padded per §4.3.4. It is infallible for any well-formed token list.
func encodeTokens(tokens []Token) []byte {
	w := newBitWriter(len(tokens) + 1)

	for _, t := range tokens {
		switch t.Kind {
		case KindLiteral:
			w.writeBit(false)
			w.writeBits(uint32(t.Literal), 8)

		case KindReference:
			w.writeBit(true)
			if t.Offset <= shortOffsetMax {
				w.writeBit(true)
				w.writeBits(uint32(t.Offset), shortOffsetBits)
			} else {
				w.writeBit(false)
				w.writeBits(uint32(t.Offset), longOffsetBits)
			}
			encodeLength(w, t.Length)

		case KindEndOfStream:
			// Never stored in a producer's token list; nothing to encode.
		}
	}

	w.writeBits(endOfStreamMarker, endOfStreamMarkerBits)
	return w.finish()
}

// decodeTokens walks the bitstream in data and returns the token sequence it
// encodes. The end-of-stream marker is checked before every token attempt
// (including the very first), so a bitstream that begins with the marker
// decodes to an empty token sequence. Returns ErrMalformedStream if the
// bitstream is exhausted before the terminator is seen, or a length field
// would overflow uint16.
func decodeTokens(data []byte) ([]Token, error) {
	r := newBitReader(data)
	var tokens []Token

	for {
		if v, ok := r.peekBits(endOfStreamMarkerBits); ok && v == endOfStreamMarker {
			return tokens, nil
		}

		tag, err := r.readBit()
		if err != nil {
			return nil, err
		}

		if tag == 0 {
			lit, err := r.readBits(8)
			if err != nil {
				return nil, err
			}
			tokens = append(tokens, Lit(byte(lit)))
			continue
		}

		shortForm, err := r.readBit()
		if err != nil {
			return nil, err
		}

		var offset uint32
		if shortForm == 1 {
			offset, err = r.readBits(shortOffsetBits)
		} else {
			offset, err = r.readBits(longOffsetBits)
		}
		if err != nil {
			return nil, err
		}

		length, err := decodeLength(r)
		if err != nil {
			return nil, err
		}

		tokens = append(tokens, Ref(uint16(offset), length)) //nolint:gosec // G115: offset bounded by 11-bit field
	}
}
