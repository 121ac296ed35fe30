// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/lzo

package lz77

import "strconv"

// TokenKind distinguishes the two producer-visible token shapes plus the
// decoder-only end-of-stream sentinel.
type TokenKind uint8

const (
	// KindLiteral carries one raw byte.
	KindLiteral TokenKind = iota
	// KindReference copies Length bytes starting Offset bytes before the
	// current output position.
	KindReference
	// KindEndOfStream is produced only by the decoder when it recognizes the
	// terminator bit pattern; it is never present in a tokenizer's output.
	KindEndOfStream
)

// Token is a tagged union over the three node shapes the codec understands.
// Only the fields relevant to Kind are meaningful: Literal for KindLiteral,
// Offset/Length for KindReference.
type Token struct {
	Kind    TokenKind
	Literal byte
	Offset  uint16
	Length  uint16
}

// Lit builds a KindLiteral token.
func Lit(b byte) Token {
	return Token{Kind: KindLiteral, Literal: b}
}

// Ref builds a KindReference token. Callers are expected to uphold the
// invariants from the tokenizer: 1 <= offset <= searchWindowSize (2047),
// 2 <= length.
func Ref(offset, length uint16) Token {
	return Token{Kind: KindReference, Offset: offset, Length: length}
}

// String renders a Token for test failure messages and debugging.
func (t Token) String() string {
	switch t.Kind {
	case KindLiteral:
		return "Lit(" + strconv.Quote(string(rune(t.Literal))) + ")"
	case KindReference:
		return "Ref(" + strconv.Itoa(int(t.Offset)) + "," + strconv.Itoa(int(t.Length)) + ")"
	default:
		return "EndOfStream"
	}
}
