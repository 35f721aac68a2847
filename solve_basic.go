package equihash

import (
	"context"

	"github.com/vikoiv/equihash/internal/logging"
)

// BasicSolve implements the basic solver (§4.5): K-1 rounds of the
// collision engine over full-index rows, followed by a final equality
// round. ctx may be nil; if non-nil it is checked at each round boundary
// and, on cancellation, the solutions found so far are returned alongside
// the cancellation error.
func BasicSolve(ctx context.Context, state HashState) (*SolutionSet, error) {
	p := state.Params()
	hashLen := p.HashLength()
	tailLen := uint32(indexSize)
	collisionBytes := p.CollisionByteLength()

	rows := make([][]byte, p.InitialListSize())
	for i := range rows {
		rows[i] = rowFromHash(state, uint32(i))
	}
	logging.Logger.Debug().Int("rows", len(rows)).Msg("equihash: basic solve, first list generated")

	for r := uint32(1); r < p.K; r++ {
		if err := checkCancel(ctx); err != nil {
			return NewSolutionSet(), err
		}
		rows = collideFullRows(rows, hashLen, tailLen, collisionBytes, true)
		hashLen -= collisionBytes
		tailLen *= 2
		logging.Logger.Debug().Uint32("round", r).Int("rows", len(rows)).Msg("equihash: basic solve round")
	}

	solutions := NewSolutionSet()
	if len(rows) < 2 {
		return solutions, nil
	}

	sortRowsByPrefix(rows, hashLen)
	for i := 0; i < len(rows)-1; i++ {
		for j := i + 1; j < len(rows) && hasCollision(rows[i], rows[j], hashLen); j++ {
			merged, err := mergeRows(rows[i], rows[j], hashLen, tailLen, 0)
			if err != nil {
				continue
			}
			if isZero(merged, hashLen) && distinctIndices(rows[i], rows[j], hashLen, tailLen) {
				solutions.Add(getIndices(merged, hashLen, 2*tailLen))
			}
		}
	}
	logging.Logger.Debug().Int("solutions", solutions.Len()).Msg("equihash: basic solve done")
	return solutions, nil
}
