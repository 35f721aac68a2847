// Package search provides the nonce-search harness that sits above the
// equihash package: it owns the surrounding concept of a block header and a
// nonce that the core package deliberately knows nothing about, and fans
// work out across several workers the way the teacher's mining.Miner fanned
// work out across devices.
package search

import (
	"context"
	"encoding/binary"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/vikoiv/equihash"
	"github.com/vikoiv/equihash/internal/logging"
)

// HashRateReport is sent from each worker goroutine, mirroring the
// teacher's mining.HashRateReport.
type HashRateReport struct {
	WorkerID int
	Nonce    uint64
	Found    int
}

// SolveFunc is either equihash.BasicSolve or equihash.OptimisedSolve.
type SolveFunc func(ctx context.Context, state equihash.HashState) (*equihash.SolutionSet, error)

// Result pairs a found solution set with the nonce that produced it.
type Result struct {
	Nonce     uint64
	Solutions *equihash.SolutionSet
}

// Search seeds an equihash.HashState per candidate nonce from header||nonce
// (nonce appended little-endian, 8 bytes) and runs solve against it,
// starting at firstNonce and striding by workers so each goroutine covers a
// disjoint arithmetic progression. It returns as soon as any worker reports
// a non-empty solution set, cancelling the rest; reports is optional and
// may be nil.
func Search(ctx context.Context, params equihash.Params, solve SolveFunc, header []byte, firstNonce uint64, workers int, reports chan<- HashRateReport) (*Result, error) {
	if workers < 1 {
		workers = 1
	}
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	g, gctx := errgroup.WithContext(ctx)
	resultCh := make(chan Result, workers)

	for w := 0; w < workers; w++ {
		workerID := w
		g.Go(func() error {
			nonce := firstNonce + uint64(workerID)
			for {
				select {
				case <-gctx.Done():
					return nil
				default:
				}

				seed := make([]byte, len(header)+8)
				copy(seed, header)
				binary.LittleEndian.PutUint64(seed[len(header):], nonce)

				start := time.Now()
				state, err := equihash.InitState(params, seed)
				if err != nil {
					return err
				}
				solutions, err := solve(gctx, state)
				if err != nil {
					return err
				}
				elapsed := time.Since(start)

				if reports != nil {
					rate := 0.0
					if elapsed > 0 {
						rate = 1.0 / elapsed.Seconds()
					}
					select {
					case reports <- HashRateReport{WorkerID: workerID, Nonce: nonce, Found: solutions.Len()}:
					default:
					}
					logging.Logger.Debug().Int("worker", workerID).Uint64("nonce", nonce).Float64("rate", rate).Msg("equihash/search: nonce attempted")
				}

				if solutions.Len() > 0 {
					select {
					case resultCh <- Result{Nonce: nonce, Solutions: solutions}:
					default:
					}
					return nil
				}

				nonce += uint64(workers)
			}
		})
	}

	done := make(chan error, 1)
	go func() { done <- g.Wait() }()

	select {
	case res := <-resultCh:
		return &res, nil
	case err := <-done:
		if err != nil {
			return nil, err
		}
		select {
		case res := <-resultCh:
			return &res, nil
		default:
			return nil, ctx.Err()
		}
	}
}
