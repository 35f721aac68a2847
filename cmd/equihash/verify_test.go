package main

import (
	"encoding/hex"
	"fmt"
	"strconv"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/vikoiv/equihash"
)

func TestVerifyCommandAcceptsGenuineSolution(t *testing.T) {
	p := equihash.Params48x5()

	var seed []byte
	var solution []uint32
	for s := 0; s < 64; s++ {
		candidate := []byte{byte(s)}
		state, err := equihash.InitState(p, candidate)
		require.NoError(t, err)
		solutions, err := equihash.BasicSolve(nil, state)
		require.NoError(t, err)
		if solutions.Len() > 0 {
			seed = candidate
			solution = solutions.Slice()[0]
			break
		}
	}
	require.NotEmpty(t, solution, "expected a sampled seed to yield a solution")

	fields := make([]string, len(solution))
	for i, idx := range solution {
		fields[i] = strconv.FormatUint(uint64(idx), 10)
	}

	flagMain.N, flagMain.K = p.N, p.K
	flagMain.NoColor = true

	runVerifyArgs(t, hex.EncodeToString(seed), strings.Join(fields, ","))
}

// runVerifyArgs repeats runVerify's parsing and verification steps inline
// instead of calling runVerify or going through cobra's Execute, since a
// failed verification there calls os.Exit and would kill the test binary.
func runVerifyArgs(t *testing.T, seedHex, indices string) {
	t.Helper()
	seed, err := hex.DecodeString(seedHex)
	require.NoError(t, err)

	params, err := equihash.NewParams(flagMain.N, flagMain.K)
	require.NoError(t, err)

	fields := strings.Split(indices, ",")
	candidate := make([]uint32, len(fields))
	for i, f := range fields {
		v, err := strconv.ParseUint(strings.TrimSpace(f), 10, 32)
		require.NoError(t, err)
		candidate[i] = uint32(v)
	}

	state, err := equihash.InitState(params, seed)
	require.NoError(t, err)
	require.True(t, equihash.Verify(state, candidate), fmt.Sprintf("expected seed %s to verify", seedHex))
}
