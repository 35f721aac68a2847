package equihash

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func findOneSolution(t *testing.T, p Params) (HashState, []uint32) {
	for seed := 0; seed < 64; seed++ {
		state, err := InitState(p, []byte{byte(seed)})
		require.NoError(t, err)
		solutions, err := BasicSolve(nil, state)
		require.NoError(t, err)
		if solutions.Len() > 0 {
			return state, solutions.Slice()[0]
		}
	}
	t.Fatal("no solution found among sampled seeds")
	return HashState{}, nil
}

func TestVerifyAcceptsGenuineSolution(t *testing.T) {
	p := Params48x5()
	state, sol := findOneSolution(t, p)
	require.True(t, Verify(state, sol))
}

func TestVerifyRejectsWrongLength(t *testing.T) {
	p := Params48x5()
	state, sol := findOneSolution(t, p)
	require.False(t, Verify(state, sol[:len(sol)-1]))
}

func TestVerifyRejectsPermutedOrder(t *testing.T) {
	p := Params48x5()
	state, sol := findOneSolution(t, p)
	permuted := append([]uint32(nil), sol...)
	permuted[0], permuted[1] = permuted[1], permuted[0]
	require.False(t, Verify(state, permuted))
}

func TestVerifyRejectsDuplicatedIndex(t *testing.T) {
	p := Params48x5()
	state, sol := findOneSolution(t, p)
	tampered := append([]uint32(nil), sol...)
	tampered[len(tampered)-1] = tampered[0]
	require.False(t, Verify(state, tampered))
}

func TestVerifyRejectsUnderDifferentState(t *testing.T) {
	p := Params48x5()
	_, sol := findOneSolution(t, p)
	other, err := InitState(p, []byte("a-completely-different-seed"))
	require.NoError(t, err)
	require.False(t, Verify(other, sol))
}
