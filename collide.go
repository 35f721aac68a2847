package equihash

import (
	"bytes"
	"sort"

	"github.com/vikoiv/equihash/internal/logging"
)

// collideOptions parameterizes one round of the collision engine (§4.4)
// over whichever row representation the caller is using: full rows with a
// materialized prefix, or the optimised solver's prefix-less outer-pass
// rows whose sort/collision key must be recomputed on demand.
type collideOptions struct {
	key            func(row []byte) []byte
	collisionBytes uint32
	merge          func(a, b []byte) ([]byte, error)
	checkDistinct  bool
	distinct       func(a, b []byte) bool
}

// collide runs one round of sort-and-merge (§4.4): sort rows by their
// collision key, find maximal runs that agree on the next collisionBytes
// of that key, form all distinct-index pairs within each run, and
// compact the result back into the table in place, spilling into an
// overflow slice that trails any in-place-written rows.
func collide(rows [][]byte, opt collideOptions) [][]byte {
	keys := make([][]byte, len(rows))
	for i, row := range rows {
		keys[i] = opt.key(row)
	}
	order := make([]int, len(rows))
	for i := range order {
		order[i] = i
	}
	sort.Slice(order, func(a, b int) bool {
		return bytes.Compare(keys[order[a]], keys[order[b]]) < 0
	})
	sortedRows := make([][]byte, len(rows))
	sortedKeys := make([][]byte, len(rows))
	for i, o := range order {
		sortedRows[i] = rows[o]
		sortedKeys[i] = keys[o]
	}

	var overflow [][]byte
	free := 0
	i := 0
	pairs, emitted := 0, 0
	for i < len(sortedRows)-1 {
		j := 1
		for i+j < len(sortedRows) && bytes.Equal(
			sortedKeys[i][:opt.collisionBytes], sortedKeys[i+j][:opt.collisionBytes]) {
			j++
		}

		for l := 0; l < j-1; l++ {
			for m := l + 1; m < j; m++ {
				pairs++
				if opt.checkDistinct && !opt.distinct(sortedRows[i+l], sortedRows[i+m]) {
					continue
				}
				merged, err := opt.merge(sortedRows[i+l], sortedRows[i+m])
				if err != nil {
					continue
				}
				overflow = append(overflow, merged)
				emitted++
			}
		}

		for free < i+j && len(overflow) > 0 {
			sortedRows[free] = overflow[len(overflow)-1]
			overflow = overflow[:len(overflow)-1]
			free++
		}
		i += j
	}

	for free < len(sortedRows) && len(overflow) > 0 {
		sortedRows[free] = overflow[len(overflow)-1]
		overflow = overflow[:len(overflow)-1]
		free++
	}

	var result [][]byte
	if len(overflow) > 0 {
		result = append(sortedRows[:free], overflow...)
	} else {
		result = sortedRows[:free]
	}

	logging.Logger.Debug().
		Int("rows_in", len(rows)).Int("rows_out", len(result)).
		Int("candidate_pairs", pairs).Int("emitted", emitted).
		Msg("equihash: collide round")

	return result
}

// collideFullRows runs one round over rows that already carry a
// materialized hashLen-byte prefix. checkDistinct gates emission on the
// distinct-indices test; once indices have been truncated to a single
// byte (past the optimised solver's switchover) the test can no longer
// prove anything and the reference skips it (§4.6).
func collideFullRows(rows [][]byte, hashLen, tailLen, collisionBytes uint32, checkDistinct bool) [][]byte {
	return collide(rows, collideOptions{
		key:            func(row []byte) []byte { return row[:hashLen] },
		collisionBytes: collisionBytes,
		merge: func(a, b []byte) ([]byte, error) {
			return mergeRows(a, b, hashLen, tailLen, collisionBytes)
		},
		checkDistinct: checkDistinct,
		distinct: func(a, b []byte) bool {
			return distinctIndices(a, b, hashLen, tailLen)
		},
	})
}

// collidePreSwitchRows runs one round over the optimised solver's outer
// pass before its switchover: rows carry full 4-byte indices with no
// stored prefix, so the sort key recomputes the full fullHashLen-byte
// XORed prefix from scratch via generateXor. Because no leading bytes
// have ever been trimmed from that recomputed prefix, the collision test
// must compare cumLen bytes of it — the bytes that would already have
// been trimmed by this round in the materialized representation, plus
// this round's own collision window (§4.6).
func collidePreSwitchRows(state HashState, rows [][]byte, fullHashLen, cumLen, tailLenFull uint32) [][]byte {
	return collide(rows, collideOptions{
		key:            func(row []byte) []byte { return generateXor(state, row, fullHashLen, tailLenFull) },
		collisionBytes: cumLen,
		merge: func(a, b []byte) ([]byte, error) {
			return mergeRows(a, b, 0, tailLenFull, 0)
		},
		checkDistinct: true,
		distinct: func(a, b []byte) bool {
			return distinctIndices(a, b, 0, tailLenFull)
		},
	})
}

// collideTransitionRows runs the single round at which the optimised
// solver's outer pass switches representation: operands are still
// prefix-less, full-index rows (so sorting and the collision test still
// recompute via generateXor using the same cumLen convention as
// collidePreSwitchRows), but each emitted row gets a materialized XORed
// prefix and a tail truncated to one byte per index (§4.6).
func collideTransitionRows(state HashState, rows [][]byte, fullHashLen, cumLen, tailLenFull, indexBits uint32) [][]byte {
	return collide(rows, collideOptions{
		key:            func(row []byte) []byte { return generateXor(state, row, fullHashLen, tailLenFull) },
		collisionBytes: cumLen,
		merge: func(a, b []byte) ([]byte, error) {
			return mergeTransition(state, a, b, fullHashLen, tailLenFull, cumLen, indexBits)
		},
		checkDistinct: true,
		distinct: func(a, b []byte) bool {
			return distinctIndices(a, b, 0, tailLenFull)
		},
	})
}

// collidePostSwitchRows runs one round past the switchover: rows carry a
// materialized prefix and a tail of one-byte truncated indices, and the
// distinct-indices test is skipped (§4.6).
func collidePostSwitchRows(rows [][]byte, hashLen, tailLen, collisionBytes uint32) [][]byte {
	return collideFullRows(rows, hashLen, tailLen, collisionBytes, false)
}

// mergeTransition builds the merged row at the optimised solver's
// switchover round: both operands' XORed prefixes are computed from
// scratch, XOR-merged with the given trim, and both tails' indices are
// truncated to one byte each, ordered by indices_before on the
// still-full tails (§4.6).
func mergeTransition(state HashState, a, b []byte, hashLen, tailLenFull, trim, indexBits uint32) ([]byte, error) {
	before, err := indicesBefore(a[:tailLenFull], b[:tailLenFull])
	if err != nil {
		return nil, err
	}

	aXor := generateXor(state, a, hashLen, tailLenFull)
	bXor := generateXor(state, b, hashLen, tailLenFull)

	prefixLen := hashLen - trim
	count := tailLenFull / indexSize
	merged := make([]byte, prefixLen+2*count)
	for i := trim; i < hashLen; i++ {
		merged[i-trim] = aXor[i] ^ bXor[i]
	}

	writeTruncated := func(row []byte, out []byte) {
		for i := uint32(0); i < count; i++ {
			off := i * indexSize
			idx := arrayToIndex(row[off : off+indexSize])
			out[i] = truncate(idx, indexBits)
		}
	}
	if before {
		writeTruncated(a, merged[prefixLen:prefixLen+count])
		writeTruncated(b, merged[prefixLen+count:])
	} else {
		writeTruncated(b, merged[prefixLen:prefixLen+count])
		writeTruncated(a, merged[prefixLen+count:])
	}
	return merged, nil
}

// isValidBranch reports whether row's leftmost full index, truncated to
// indexBits, equals t. The inner pass uses this to confirm a candidate
// merge still descends from the leaf positions its partial solution byte
// claims, rather than from some other index that happens to truncate the
// same way (§4.6 "valid branch").
func isValidBranch(row []byte, hashLen, indexBits uint32, t uint8) bool {
	idx := arrayToIndex(row[hashLen : hashLen+indexSize])
	return truncate(idx, indexBits) == t
}

// collideBranches runs one round of the optimised solver's inner pass
// (§4.6): rows carry a materialized prefix and full 4-byte indices, and a
// pair is only merged if, in one of the two orientations, the left
// operand's leftmost index truncates to leftTrunc and the right operand's
// to rightTrunc. mergeRows still decides the emitted tail order itself via
// indices_before, independent of which orientation validated.
func collideBranches(rows [][]byte, hashLen, tailLen, collisionBytes, indexBits uint32, leftTrunc, rightTrunc uint8) [][]byte {
	return collide(rows, collideOptions{
		key:            func(row []byte) []byte { return row[:hashLen] },
		collisionBytes: collisionBytes,
		merge: func(a, b []byte) ([]byte, error) {
			return mergeRows(a, b, hashLen, tailLen, collisionBytes)
		},
		checkDistinct: true,
		distinct: func(a, b []byte) bool {
			if !distinctIndices(a, b, hashLen, tailLen) {
				return false
			}
			return (isValidBranch(a, hashLen, indexBits, leftTrunc) && isValidBranch(b, hashLen, indexBits, rightTrunc)) ||
				(isValidBranch(b, hashLen, indexBits, leftTrunc) && isValidBranch(a, hashLen, indexBits, rightTrunc))
		},
	})
}
