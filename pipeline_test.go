package lz77

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestCompressDecompress_RoundTrip(t *testing.T) {
	inputs := map[string][]byte{
		"nil":              nil,
		"empty":            {},
		"single byte":      {0x5A},
		"scenario 1":       []byte("ababcbababaa"),
		"scenario 2":       []byte("ababb"),
		"all zero 2060":    make([]byte, 2060),
		"binary-ish":       {0x00, 0xFF, 0x00, 0xFF, 0x10, 0x00, 0xFF, 0x00, 0xFF, 0x10},
		"english sentence": []byte("the quick brown fox jumps over the lazy dog, repeatedly, the quick brown fox jumps again"),
		"long repetitive":  repeatedBytes(10000),
	}

	for name, in := range inputs {
		t.Run(name, func(t *testing.T) {
			compressed := Compress(in)
			got, err := Decompress(compressed)
			require.NoError(t, err)
			require.Equal(t, in, got)
		})
	}
}

func TestCompress_NeverPanics(t *testing.T) {
	require.NotPanics(t, func() { Compress(nil) })
	require.NotPanics(t, func() { Compress([]byte{}) })
}

func TestDecompress_EmptyInputIsMalformed(t *testing.T) {
	_, err := Decompress(nil)
	require.ErrorIs(t, err, ErrMalformedStream)
}

func TestDecompress_GarbageOffsetIsOutOfRange(t *testing.T) {
	// Hand-craft a bitstream for a single Reference(5, 2) token with no
	// preceding literals: the decoder accepts it syntactically but replay
	// must reject it as pointing before the start of history.
	encoded := encodeTokens([]Token{Ref(5, 2)})
	_, err := Decompress(encoded)
	require.ErrorIs(t, err, ErrOutOfRange)
}

// TestCompress_LiteralOnlyUpperBound checks the literal-only bit-length
// bound: every byte that is emitted as a Literal costs exactly 9 bits, so an
// input with no repeated structure at all (every byte appears nowhere else
// in its window) compresses to no more than roughly 9/8 of its input size,
// plus the fixed terminator/padding overhead.
func TestCompress_LiteralOnlyUpperBound(t *testing.T) {
	// Every byte value is distinct and never repeats, so no Reference can
	// ever beat a Literal: the tokenizer must emit n literals exactly.
	input := make([]byte, 256)
	for i := range input {
		input[i] = byte(i)
	}

	out := Compress(input)
	maxBytes := (len(input)*9+endOfStreamMarkerBits)/8 + 1
	require.LessOrEqual(t, len(out), maxBytes)

	decoded, err := Decompress(out)
	require.NoError(t, err)
	require.Equal(t, input, decoded)
}

func TestCompress_IsDeterministic(t *testing.T) {
	input := []byte("ababcbababaa mississippi river riverbank")
	first := Compress(input)
	second := Compress(input)
	require.Equal(t, first, second)
}
