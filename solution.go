package equihash

import (
	"encoding/binary"
	"sort"
)

// SolutionSet is the canonical output container for both solvers: a set of
// index sequences, so that duplicate discoveries collapse (§3 "Solution").
type SolutionSet struct {
	byKey map[string][]uint32
}

// NewSolutionSet returns an empty solution set.
func NewSolutionSet() *SolutionSet {
	return &SolutionSet{byKey: make(map[string][]uint32)}
}

// Add inserts a solution, ignoring it if an identical sequence is already
// present.
func (s *SolutionSet) Add(indices []uint32) {
	s.byKey[solutionKey(indices)] = indices
}

// Len returns the number of distinct solutions.
func (s *SolutionSet) Len() int { return len(s.byKey) }

// Slice returns the solutions in no particular order.
func (s *SolutionSet) Slice() [][]uint32 {
	out := make([][]uint32, 0, len(s.byKey))
	for _, v := range s.byKey {
		out = append(out, v)
	}
	return out
}

// Equal reports whether s and other contain exactly the same set of
// solutions, used by the determinism property in §8.
func (s *SolutionSet) Equal(other *SolutionSet) bool {
	if s.Len() != other.Len() {
		return false
	}
	for k := range s.byKey {
		if _, ok := other.byKey[k]; !ok {
			return false
		}
	}
	return true
}

func solutionKey(indices []uint32) string {
	buf := make([]byte, 4*len(indices))
	for i, idx := range indices {
		binary.BigEndian.PutUint32(buf[i*4:], idx)
	}
	return string(buf)
}

func sortRowsByPrefix(rows [][]byte, hashLen uint32) {
	sort.Slice(rows, func(i, j int) bool {
		for k := uint32(0); k < hashLen; k++ {
			if rows[i][k] != rows[j][k] {
				return rows[i][k] < rows[j][k]
			}
		}
		return false
	})
}
