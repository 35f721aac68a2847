package equihash

import (
	"errors"
	"sort"
)

// errEqualTails is returned by mergeRows/indicesBefore when two rows carry
// identical tails: the reference treats this as an invalid pairing rather
// than picking an arbitrary order (§3, §4.3).
var errEqualTails = errors.New("equihash: equal index tails")

// rowFromHash builds a full-index step row for leaf i: H(i) followed by
// the 4-byte big-endian tail holding i itself (§4.3 "new_from_hash").
func rowFromHash(state HashState, i uint32) []byte {
	h := state.GenerateHash(i)
	tail := indexToArray(i)
	row := make([]byte, len(h)+len(tail))
	copy(row, h)
	copy(row[len(h):], tail[:])
	return row
}

// truncatedSeedRow builds the optimised solver's outer-pass row for leaf
// i before the switchover: just the 4-byte tail, with no materialized
// prefix at all (§4.6).
func truncatedSeedRow(i uint32) []byte {
	tail := indexToArray(i)
	row := make([]byte, indexSize)
	copy(row, tail[:])
	return row
}

// indicesBefore lexicographically compares two equal-length tail regions,
// the "IndicesBefore" comparator of §4.3 used to decide canonical left/right
// placement when merging. Equal tails are reported as an error: a solution
// built from them is invalid.
func indicesBefore(aTail, bTail []byte) (bool, error) {
	for i := range aTail {
		if aTail[i] != bTail[i] {
			return aTail[i] < bTail[i], nil
		}
	}
	return false, errEqualTails
}

// mergeRows builds a row whose prefix is a.prefix[trim:hashLen] XOR
// b.prefix[trim:hashLen], and whose tail is a's and b's tails concatenated
// in canonical (indices-before) order (§4.3 "merge"). Both rows must
// already carry a materialized hashLen-byte prefix; hashLen may be 0 for
// the optimised solver's outer-pass rows, which carry no prefix at all.
func mergeRows(a, b []byte, hashLen, tailLen, trim uint32) ([]byte, error) {
	before, err := indicesBefore(a[hashLen:hashLen+tailLen], b[hashLen:hashLen+tailLen])
	if err != nil {
		return nil, err
	}
	prefixLen := hashLen - trim
	merged := make([]byte, prefixLen+2*tailLen)
	for i := trim; i < hashLen; i++ {
		merged[i-trim] = a[i] ^ b[i]
	}
	if before {
		copy(merged[prefixLen:], a[hashLen:hashLen+tailLen])
		copy(merged[prefixLen+tailLen:], b[hashLen:hashLen+tailLen])
	} else {
		copy(merged[prefixLen:], b[hashLen:hashLen+tailLen])
		copy(merged[prefixLen+tailLen:], a[hashLen:hashLen+tailLen])
	}
	return merged, nil
}

// isZero reports whether the first length bytes of row are all zero
// (§4.3 "is_zero").
func isZero(row []byte, length uint32) bool {
	var acc byte
	for i := uint32(0); i < length; i++ {
		acc |= row[i]
	}
	return acc == 0
}

// hasCollision reports whether a and b agree on their first l prefix bytes
// (§4.3 "has_collision").
func hasCollision(a, b []byte, l uint32) bool {
	for i := uint32(0); i < l; i++ {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

// getIndices decodes a full row's tail into its constituent 4-byte
// big-endian indices (§4.3 "get_indices").
func getIndices(row []byte, hashLen, tailLen uint32) []uint32 {
	count := tailLen / indexSize
	out := make([]uint32, count)
	for i := uint32(0); i < count; i++ {
		off := hashLen + i*indexSize
		out[i] = arrayToIndex(row[off : off+indexSize])
	}
	return out
}

// distinctIndices reports whether a and b's decoded index sets are
// disjoint, via sort-then-merge in O(n) using numeric order (§4.3
// "distinct_indices").
func distinctIndices(a, b []byte, hashLen, tailLen uint32) bool {
	return indexSetsDisjoint(getIndices(a, hashLen, tailLen), getIndices(b, hashLen, tailLen))
}

func indexSetsDisjoint(a, b []uint32) bool {
	sa := append([]uint32(nil), a...)
	sb := append([]uint32(nil), b...)
	sort.Slice(sa, func(i, j int) bool { return sa[i] < sa[j] })
	sort.Slice(sb, func(i, j int) bool { return sb[i] < sb[j] })
	i := 0
	for j := 0; j < len(sb); j++ {
		for i < len(sa) && sa[i] < sb[j] {
			i++
		}
		if i == len(sa) {
			return true
		}
		if sa[i] == sb[j] {
			return false
		}
	}
	return true
}

// generateXor reconstructs the current prefix of a truncated, prefix-less
// row on demand by recomputing each leaf's hash and XORing the first
// hashLen bytes together (§4.3 "generate_xor"). This exists only for the
// optimised solver's outer pass before its switchover point, which stores
// no XORed prefix to save memory at the cost of rehashing on every sort
// comparison and collision test.
func generateXor(state HashState, row []byte, hashLen, tailLen uint32) []byte {
	out := make([]byte, hashLen)
	count := tailLen / indexSize
	for i := uint32(0); i < count; i++ {
		off := i * indexSize
		idx := arrayToIndex(row[off : off+indexSize])
		h := state.GenerateHash(idx)
		for j := uint32(0); j < hashLen; j++ {
			out[j] ^= h[j]
		}
	}
	return out
}
