package lz77

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestByteBuffer_PushAllUnderCapacity(t *testing.T) {
	b := newByteBuffer[byte](8)
	b.pushAll([]byte("abc"))
	require.Equal(t, 3, b.len())
	require.Equal(t, []byte("abc"), b.slice(0, 3))
}

func TestByteBuffer_EvictsFromFrontWhenOverCapacity(t *testing.T) {
	b := newByteBuffer[byte](4)
	b.pushAll([]byte("abcd"))
	b.pushAll([]byte("ef"))
	require.Equal(t, 4, b.len())
	require.Equal(t, []byte("cdef"), b.slice(0, 4))
}

func TestByteBuffer_PushLargerThanCapacityKeepsTail(t *testing.T) {
	b := newByteBuffer[byte](3)
	b.pushAll([]byte("abcdefgh"))
	require.Equal(t, 3, b.len())
	require.Equal(t, []byte("fgh"), b.slice(0, 3))
}

func TestByteBuffer_ResetClearsAndReusesBacking(t *testing.T) {
	b := newByteBuffer[byte](4)
	b.pushAll([]byte("abcd"))
	b.reset(4)
	require.Equal(t, 0, b.len())
	b.pushAll([]byte("xy"))
	require.Equal(t, []byte("xy"), b.slice(0, 2))
}

func TestByteBuffer_At(t *testing.T) {
	b := newByteBuffer[byte](4)
	b.pushAll([]byte("wxyz"))
	require.Equal(t, byte('w'), b.at(0))
	require.Equal(t, byte('z'), b.at(3))
}
