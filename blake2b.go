package equihash

import (
	"fmt"
	"hash"

	"github.com/dchest/blake2b"
)

// newDigest builds a keyless, saltless BLAKE2b hash.Hash personalized with
// the 16-byte personal block, producing outLen bytes on Sum (outLen must be
// in [1, 64]).
//
// The teacher repo already depends on github.com/dchest/blake2b — it's what
// clients/siastratum.go and algorithms/sia/siastratum.go use for Sia's
// merkle-root hashing, via blake2b.Sum256 — but it never reaches for the
// one part of that package this component actually needs: Config's Salt
// and Person fields, which implement the full BLAKE2 parameter block.
// golang.org/x/crypto/blake2b's New512/New256 constructors have no such
// hook, which is why that package was ruled out instead (see DESIGN.md).
func newDigest(personal [16]byte, outLen int) (hash.Hash, error) {
	if outLen < 1 || outLen > 64 {
		return nil, fmt.Errorf("equihash: digest size %d out of range [1, 64]", outLen)
	}
	return blake2b.New(&blake2b.Config{Size: uint8(outLen), Person: personal[:]})
}
