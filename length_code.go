// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/lzo; grounded on
// original_source/src/lz77/serialisation.rs (serialise_length/deserialise_length)

package lz77

// Length prefix code: small lengths (the common case) get very short codes;
// length >= 8 is encoded as k copies of 1111 followed by a terminating 4-bit
// nibble that is never itself 1111, so the decoder can always tell where the
// block run ends.
//
//	2  -> 00
//	3  -> 01
//	4  -> 10
//	5  -> 1100
//	6  -> 1101
//	7  -> 1110
//	>=8 -> (1111)^k v, where k = (length+7)/15 and v = length - (15k - 7)

const (
	lengthBlockMarker = 0b1111
)

// encodeLength writes the prefix code for length (length must be >= 2) to w.
func encodeLength(w *bitWriter, length uint16) {
	switch length {
	case 2:
		w.writeBits(0b00, 2)
	case 3:
		w.writeBits(0b01, 2)
	case 4:
		w.writeBits(0b10, 2)
	case 5:
		w.writeBits(0b1100, 4)
	case 6:
		w.writeBits(0b1101, 4)
	case 7:
		w.writeBits(0b1110, 4)
	default:
		k := (int(length) + 7) / 15
		for i := 0; i < k; i++ {
			w.writeBits(lengthBlockMarker, 4)
		}
		v := int(length) - (15*k - 7)
		w.writeBits(uint32(v), 4) //nolint:gosec // G115: v in 0..15 by construction
	}
}

// decodeLength reads a length prefix code from r. It dispatches on the first
// 2 bits, then (if both set) the first 4 bits, before falling into the
// block-counting loop for length >= 8.
func decodeLength(r *bitReader) (uint16, error) {
	two, err := r.readBits(2)
	if err != nil {
		return 0, err
	}
	switch two {
	case 0b00:
		return 2, nil
	case 0b01:
		return 3, nil
	case 0b10:
		return 4, nil
	}

	twoMore, err := r.readBits(2)
	if err != nil {
		return 0, err
	}
	four := (two << 2) | twoMore
	switch four {
	case 0b1100:
		return 5, nil
	case 0b1101:
		return 6, nil
	case 0b1110:
		return 7, nil
	}

	// four == 1111: one block already consumed; keep counting.
	k := 1
	for {
		nibble, err := r.readBits(4)
		if err != nil {
			return 0, err
		}
		if nibble != lengthBlockMarker {
			length := 15*k - 7 + int(nibble)
			if length > 0xFFFF {
				return 0, malformedAt(r.bitOffset(), "decoded length overflows uint16")
			}
			return uint16(length), nil //nolint:gosec // G115: bounded by the overflow check above
		}
		k++
	}
}
