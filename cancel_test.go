package equihash

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestCheckCancelNilContext(t *testing.T) {
	require.NoError(t, checkCancel(nil))
}

func TestCheckCancelCancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	require.ErrorIs(t, checkCancel(ctx), context.Canceled)
}

func TestCheckCancelLiveContext(t *testing.T) {
	ctx := context.Background()
	require.NoError(t, checkCancel(ctx))
}

func TestBasicSolveHonorsCancellation(t *testing.T) {
	p := Params96x5()
	state, err := InitState(p, []byte("cancel-me"))
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	solutions, err := BasicSolve(ctx, state)
	require.Error(t, err)
	require.NotNil(t, solutions)
}

func TestOptimisedSolveHonorsCancellation(t *testing.T) {
	p := Params96x5()
	state, err := InitState(p, []byte("cancel-me-too"))
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	solutions, err := OptimisedSolve(ctx, state)
	require.Error(t, err)
	require.NotNil(t, solutions)
}
