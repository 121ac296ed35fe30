package lz77

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"
)

func TestTokenize_Scenario1(t *testing.T) {
	input := []byte("ababcbababaa")
	want := []Token{
		Lit('a'), Lit('b'), Ref(2, 2), Lit('c'), Ref(4, 3), Lit('a'), Ref(2, 2), Lit('a'),
	}

	got := tokenize(input)
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("tokenize(%q) mismatch (-want +got):\n%s", input, diff)
	}
}

func TestTokenize_Scenario2(t *testing.T) {
	input := []byte("ababb")
	want := []Token{Lit('a'), Lit('b'), Ref(2, 2), Lit('b')}

	got := tokenize(input)
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("tokenize(%q) mismatch (-want +got):\n%s", input, diff)
	}
}

func TestTokenize_EmptyAndNilAreTotal(t *testing.T) {
	require.Empty(t, tokenize(nil))
	require.Empty(t, tokenize([]byte{}))
}

func TestTokenize_SingleByte(t *testing.T) {
	got := tokenize([]byte{0x5A})
	require.Equal(t, []Token{Lit(0x5A)}, got)
}

// TestTokenize_NoLengthOneReferences checks the invariant that the tokenizer
// never emits a Reference shorter than 2 bytes: a single repeated byte never
// pays for a Reference's overhead over a Literal.
func TestTokenize_NoLengthOneReferences(t *testing.T) {
	inputs := [][]byte{
		[]byte("aaaaaaaa"),
		[]byte("abcabcabcabc"),
		[]byte("the quick brown fox jumps over the lazy dog"),
	}
	for _, in := range inputs {
		for _, tok := range tokenize(in) {
			if tok.Kind == KindReference {
				require.GreaterOrEqualf(t, tok.Length, uint16(2), "input %q produced %s", in, tok)
			}
		}
	}
}

// TestTokenize_OffsetNeverExceedsSearchWindow checks that every emitted
// Reference's offset stays within the fixed search window, so the codec's
// 11-bit offset field never overflows.
func TestTokenize_OffsetNeverExceedsSearchWindow(t *testing.T) {
	input := make([]byte, 5000)
	for i := range input {
		input[i] = byte(i % 3)
	}

	for _, tok := range tokenize(input) {
		if tok.Kind == KindReference {
			require.LessOrEqualf(t, tok.Offset, uint16(searchWindowSize), "offset overflow: %s", tok)
			require.GreaterOrEqual(t, tok.Offset, uint16(1))
		}
	}
}

// TestTokenize_Scenario4LongRun exercises a 2060-byte input built mostly of
// zero bytes with a handful of distinguishing non-zero bytes scattered
// through it (ones at indices 1, 2048 and 2049), forcing references whose
// offsets approach the window's upper bound.
func TestTokenize_Scenario4LongRun(t *testing.T) {
	input := make([]byte, 2060)
	input[1] = 1
	input[2048] = 1
	input[2049] = 1

	tokens := tokenize(input)
	require.NotEmpty(t, tokens)
	for _, tok := range tokens {
		if tok.Kind == KindReference {
			require.LessOrEqual(t, tok.Offset, uint16(searchWindowSize))
		}
	}

	decoded, err := replayTokens(t, tokens)
	require.NoError(t, err)
	require.Equal(t, input, decoded)
}

// TestTokenize_EveryTokenStreamRoundTrips is a property check over a handful
// of structurally distinct inputs: tokenize -> replay must reproduce the
// original bytes exactly, for every input, not just the named scenarios.
func TestTokenize_EveryTokenStreamRoundTrips(t *testing.T) {
	inputs := [][]byte{
		nil,
		[]byte("a"),
		[]byte("ababcbababaa"),
		[]byte("ababb"),
		[]byte("mississippi"),
		[]byte("aaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaa"),
		repeatedBytes(3000),
	}

	for _, in := range inputs {
		tokens := tokenize(in)
		decoded, err := replayTokens(t, tokens)
		require.NoError(t, err)
		require.Equal(t, in, decoded)
	}
}

func repeatedBytes(n int) []byte {
	out := make([]byte, n)
	for i := range out {
		out[i] = byte(i % 7)
	}
	return out
}
