package equihash

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestInitStateRejectsBadOutputWidth(t *testing.T) {
	_, err := InitState(Params{N: 0, K: 1}, []byte("seed"))
	require.Error(t, err)
	var herr *HashPrimitiveError
	require.ErrorAs(t, err, &herr)
}

func TestGenerateHashIsDeterministic(t *testing.T) {
	p := Params48x5()
	state, err := InitState(p, []byte("header-and-nonce"))
	require.NoError(t, err)

	require.Equal(t, state.GenerateHash(0), state.GenerateHash(0))
	require.NotEqual(t, state.GenerateHash(0), state.GenerateHash(1))
}

func TestGenerateHashLengthMatchesParams(t *testing.T) {
	p := Params96x5()
	state, err := InitState(p, []byte("seed"))
	require.NoError(t, err)
	require.Len(t, state.GenerateHash(0), int(p.HashLength()))
}

func TestInitStateIsIndependentPerSeed(t *testing.T) {
	p := Params48x5()
	s1, err := InitState(p, []byte("seed-one"))
	require.NoError(t, err)
	s2, err := InitState(p, []byte("seed-two"))
	require.NoError(t, err)
	require.NotEqual(t, s1.GenerateHash(0), s2.GenerateHash(0))
}
