package equihash

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestCollideFullRowsFindsKnownCollision(t *testing.T) {
	hashLen, tailLen, collisionBytes := uint32(1), uint32(indexSize), uint32(1)

	rowA := append([]byte{0x10}, indexToArraySlice(1)...)
	rowB := append([]byte{0x10}, indexToArraySlice(2)...)
	rowC := append([]byte{0x20}, indexToArraySlice(3)...)

	out := collideFullRows([][]byte{rowA, rowB, rowC}, hashLen, tailLen, collisionBytes, true)
	require.Len(t, out, 1)
	require.ElementsMatch(t, []uint32{1, 2}, getIndices(out[0], 0, 2*tailLen))
}

func TestCollideFullRowsSkipsSharedIndices(t *testing.T) {
	hashLen, tailLen, collisionBytes := uint32(1), uint32(indexSize), uint32(1)

	rowA := append([]byte{0x10}, indexToArraySlice(1)...)
	rowB := append([]byte{0x10}, indexToArraySlice(1)...)

	out := collideFullRows([][]byte{rowA, rowB}, hashLen, tailLen, collisionBytes, true)
	require.Empty(t, out)
}

func TestCollidePostSwitchRowsSkipsDistinctCheck(t *testing.T) {
	hashLen, tailLen, collisionBytes := uint32(1), uint32(1), uint32(1)
	rowA := []byte{0x10, 7}
	rowB := []byte{0x10, 9}

	out := collidePostSwitchRows([][]byte{rowA, rowB}, hashLen, tailLen, collisionBytes)
	require.Len(t, out, 1)
}

func TestIsValidBranch(t *testing.T) {
	row := append([]byte{0xAA}, indexToArraySlice(0x1FF)...)
	const indexBits = 9
	require.True(t, isValidBranch(row, 1, indexBits, truncate(0x1FF, indexBits)))
	require.False(t, isValidBranch(row, 1, indexBits, truncate(0x1FF, indexBits)+1))
}

func indexToArraySlice(i uint32) []byte {
	b := indexToArray(i)
	return b[:]
}
