package equihash

import "github.com/vikoiv/equihash/internal/logging"

// Verify implements the verifier (§4.7): reject fast on length, then
// reconstruct the binary XOR tree bottom-up from candidate, checking
// collision, canonical ordering, and distinctness at every level. Accepts
// iff the final merged prefix is zero. There is no partial acceptance —
// every failure path returns false.
func Verify(state HashState, candidate []uint32) bool {
	p := state.Params()
	if uint32(len(candidate)) != p.SolutionSize() {
		logging.Logger.Debug().Int("len", len(candidate)).Msg("equihash: verify rejected: wrong length")
		return false
	}

	rows := make([][]byte, len(candidate))
	for i, idx := range candidate {
		rows[i] = rowFromHash(state, idx)
	}

	hashLen := p.HashLength()
	tailLen := uint32(indexSize)
	collisionBytes := p.CollisionByteLength()

	for len(rows) > 1 {
		next := make([][]byte, 0, len(rows)/2)
		for i := 0; i < len(rows); i += 2 {
			a, b := rows[i], rows[i+1]

			if !hasCollision(a, b, collisionBytes) {
				logging.Logger.Debug().Msg("equihash: verify rejected: no collision")
				return false
			}

			aBeforeB, err := indicesBefore(a[hashLen:hashLen+tailLen], b[hashLen:hashLen+tailLen])
			if err != nil {
				logging.Logger.Debug().Msg("equihash: verify rejected: equal tails")
				return false
			}
			if !aBeforeB {
				logging.Logger.Debug().Msg("equihash: verify rejected: ordering violated")
				return false
			}

			if !distinctIndices(a, b, hashLen, tailLen) {
				logging.Logger.Debug().Msg("equihash: verify rejected: duplicate indices")
				return false
			}

			merged, err := mergeRows(a, b, hashLen, tailLen, collisionBytes)
			if err != nil {
				logging.Logger.Debug().Msg("equihash: verify rejected: equal tails")
				return false
			}
			next = append(next, merged)
		}
		rows = next
		hashLen -= collisionBytes
		tailLen *= 2
	}

	accept := isZero(rows[0], hashLen)
	if !accept {
		logging.Logger.Debug().Msg("equihash: verify rejected: nonzero final prefix")
	}
	return accept
}
