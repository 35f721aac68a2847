package equihash

import (
	"context"
	"sync"

	"golang.org/x/sync/errgroup"

	"github.com/vikoiv/equihash/internal/logging"
)

// OptimisedSolve implements the optimised solver (§4.6): an outer pass over
// truncated, mostly prefix-less rows that produces partial solutions (one
// truncated index per leaf), followed by an inner pass that expands each
// partial solution back into full indices and discards any that don't
// survive a branch-constrained re-collision. ctx may be nil. Partial
// solutions have no ordering dependency on each other, so their expansion
// runs concurrently across an errgroup.
//
// Unlike BasicSolve, a single malformed partial solution does not abort the
// run: it is counted and dropped, and the solver moves on to the next one.
func OptimisedSolve(ctx context.Context, state HashState) (*SolutionSet, error) {
	partials, err := optimisedOuterPass(ctx, state)
	if err != nil {
		return NewSolutionSet(), err
	}
	logging.Logger.Debug().Int("partial_solutions", len(partials)).Msg("equihash: optimised solve, outer pass done")

	g, gctx := errgroup.WithContext(context.Background())
	if ctx != nil {
		g, gctx = errgroup.WithContext(ctx)
	}

	var mu sync.Mutex
	solutions := NewSolutionSet()
	invalid := 0

	for _, partial := range partials {
		partial := partial
		g.Go(func() error {
			full, ok, err := expandPartialSolution(gctx, state, partial)
			if err != nil {
				return err
			}
			mu.Lock()
			defer mu.Unlock()
			if !ok {
				invalid++
				return nil
			}
			for _, indices := range full {
				solutions.Add(indices)
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return solutions, err
	}
	logging.Logger.Debug().
		Int("solutions", solutions.Len()).Int("invalid_partials", invalid).
		Msg("equihash: optimised solve done")
	return solutions, nil
}

// optimisedOuterPass runs the §4.6 outer pass to completion and returns the
// surviving partial solutions, each a SolutionSize-byte slice of truncated
// indices.
func optimisedOuterPass(ctx context.Context, state HashState) ([][]byte, error) {
	p := state.Params()
	fullHashLen := p.HashLength()
	collisionBytes := p.CollisionByteLength()

	rows := make([][]byte, p.InitialListSize())
	for i := range rows {
		rows[i] = truncatedSeedRow(uint32(i))
	}
	logging.Logger.Debug().Int("rows", len(rows)).Msg("equihash: optimised solve, first list generated")

	hashLen := fullHashLen
	count := uint32(1)
	trunc := false

	for r := uint32(1); r < p.K && len(rows) > 0; r++ {
		if err := checkCancel(ctx); err != nil {
			return nil, err
		}

		truncNext := trunc
		if !trunc && hashLen+count < count*indexSize {
			truncNext = true
		}

		cumLen := fullHashLen - hashLen + collisionBytes

		switch {
		case trunc:
			rows = collidePostSwitchRows(rows, hashLen, count, collisionBytes)
		case truncNext:
			rows = collideTransitionRows(state, rows, fullHashLen, cumLen, count*indexSize, p.IndexBits())
		default:
			rows = collidePreSwitchRows(state, rows, fullHashLen, cumLen, count*indexSize)
		}

		trunc = truncNext
		count *= 2
		hashLen -= collisionBytes
		logging.Logger.Debug().Uint32("round", r).Bool("trunc", trunc).Int("rows", len(rows)).
			Msg("equihash: optimised solve outer round")
	}

	var partials [][]byte
	if len(rows) > 1 {
		sortRowsByPrefix(rows, hashLen)
		for i := 0; i < len(rows)-1; i++ {
			for j := i + 1; j < len(rows) && hasCollision(rows[i], rows[j], hashLen); j++ {
				merged, err := mergeRows(rows[i], rows[j], hashLen, count, 0)
				if err != nil {
					continue
				}
				if isZero(merged, hashLen) {
					partial := append([]byte(nil), merged[hashLen:hashLen+2*count]...)
					partials = append(partials, partial)
				}
			}
		}
	}
	return partials, nil
}

// expandPartialSolution runs the §4.6 inner pass for one partial solution:
// it recreates every candidate full index each truncated byte could have
// come from, then repeatedly merges adjacent halves of the binary tree
// under a branch-validity constraint, doubling the indices-per-row count
// at each level until a single level remains. ok is false if the partial
// solution does not survive to a full solution.
func expandPartialSolution(ctx context.Context, state HashState, partial []byte) ([][]uint32, bool, error) {
	p := state.Params()
	indexBits := p.IndexBits()
	recreateSize := uint32(1) << (indexBits - 8)
	collisionBytes := p.CollisionByteLength()
	solutionSize := p.SolutionSize()

	lists := make([][][]byte, solutionSize)
	for a := uint32(0); a < solutionSize; a++ {
		bucket := make([][]byte, recreateSize)
		for j := uint32(0); j < recreateSize; j++ {
			idx := untruncate(partial[a], j, indexBits)
			bucket[j] = rowFromHash(state, idx)
		}
		lists[a] = bucket
	}

	hashLen := p.HashLength()
	tailLen := uint32(indexSize)
	step := uint32(1)

	for len(lists) > 1 {
		if err := checkCancel(ctx); err != nil {
			return nil, false, err
		}
		next := make([][][]byte, 0, len(lists)/2)
		for v := 0; v < len(lists); v += 2 {
			merged := make([][]byte, 0, len(lists[v])+len(lists[v+1]))
			merged = append(merged, lists[v]...)
			merged = append(merged, lists[v+1]...)
			sortRowsByPrefix(merged, hashLen)

			leftTrunc := partial[uint32(v)*step]
			rightTrunc := partial[uint32(v+1)*step]
			merged = collideBranches(merged, hashLen, tailLen, collisionBytes, indexBits, leftTrunc, rightTrunc)
			if len(merged) == 0 {
				return nil, false, nil
			}
			next = append(next, merged)
		}
		lists = next
		hashLen -= collisionBytes
		tailLen *= 2
		step *= 2
	}

	solutions := make([][]uint32, 0, len(lists[0]))
	for _, row := range lists[0] {
		solutions = append(solutions, getIndices(row, hashLen, tailLen))
	}
	return solutions, true, nil
}
