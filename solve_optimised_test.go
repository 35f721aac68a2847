package equihash

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestOptimisedSolveFindsVerifiableSolutions(t *testing.T) {
	p := Params48x5()
	found := false
	for seed := 0; seed < 64 && !found; seed++ {
		state, err := InitState(p, []byte{byte(seed)})
		require.NoError(t, err)

		solutions, err := OptimisedSolve(nil, state)
		require.NoError(t, err)
		if solutions.Len() == 0 {
			continue
		}
		found = true
		for _, sol := range solutions.Slice() {
			require.True(t, Verify(state, sol))
		}
	}
	require.True(t, found, "expected at least one of the sampled seeds to yield a solution")
}

func TestOptimisedSolveAgreesWithBasicSolve(t *testing.T) {
	p := Params48x5()
	for seed := 0; seed < 32; seed++ {
		state, err := InitState(p, []byte{byte(seed), 0x42})
		require.NoError(t, err)

		basic, err := BasicSolve(nil, state)
		require.NoError(t, err)
		optimised, err := OptimisedSolve(nil, state)
		require.NoError(t, err)

		require.True(t, basic.Equal(optimised),
			"basic and optimised solvers disagree for seed %d: %v vs %v", seed, basic.Slice(), optimised.Slice())
	}
}

func TestOptimisedSolveIsDeterministic(t *testing.T) {
	p := Params48x5()
	state, err := InitState(p, []byte("deterministic-seed"))
	require.NoError(t, err)

	s1, err := OptimisedSolve(nil, state)
	require.NoError(t, err)
	s2, err := OptimisedSolve(nil, state)
	require.NoError(t, err)
	require.True(t, s1.Equal(s2))
}
