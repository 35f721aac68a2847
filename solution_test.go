package equihash

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestSolutionSetDedupesIdenticalSequences(t *testing.T) {
	s := NewSolutionSet()
	s.Add([]uint32{1, 2, 3, 4})
	s.Add([]uint32{1, 2, 3, 4})
	require.Equal(t, 1, s.Len())
}

func TestSolutionSetDistinguishesOrder(t *testing.T) {
	s := NewSolutionSet()
	s.Add([]uint32{1, 2, 3, 4})
	s.Add([]uint32{4, 3, 2, 1})
	require.Equal(t, 2, s.Len())
}

func TestSolutionSetEqual(t *testing.T) {
	a := NewSolutionSet()
	a.Add([]uint32{1, 2})
	a.Add([]uint32{3, 4})

	b := NewSolutionSet()
	b.Add([]uint32{3, 4})
	b.Add([]uint32{1, 2})

	require.True(t, a.Equal(b))

	b.Add([]uint32{5, 6})
	require.False(t, a.Equal(b))
}

func TestSortRowsByPrefix(t *testing.T) {
	rows := [][]byte{
		{2, 0, 0},
		{1, 0, 0},
		{0, 0, 0},
	}
	sortRowsByPrefix(rows, 1)
	require.Equal(t, byte(0), rows[0][0])
	require.Equal(t, byte(1), rows[1][0])
	require.Equal(t, byte(2), rows[2][0])
}
