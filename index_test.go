package equihash

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestIndexArrayRoundTrip(t *testing.T) {
	for _, i := range []uint32{0, 1, 255, 256, 65535, 0xDEADBEEF} {
		b := indexToArray(i)
		require.Equal(t, i, arrayToIndex(b[:]))
	}
}

func TestIndexToArrayIsBigEndian(t *testing.T) {
	b := indexToArray(1)
	require.Equal(t, [4]byte{0, 0, 0, 1}, b)
}

func TestTruncateUntruncateRoundTrip(t *testing.T) {
	const ilen = 17
	for _, i := range []uint32{0, 1, 12345, (1 << ilen) - 1} {
		top := truncate(i, ilen)
		low := i &^ (uint32(0xFF) << (ilen - 8))
		require.Equal(t, i, untruncate(top, low, ilen))
	}
}

func TestTruncateTakesTopBits(t *testing.T) {
	require.Equal(t, uint8(0xAB), truncate(0xAB34, 16))
}
