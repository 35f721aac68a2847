package equihash

import (
	"encoding/binary"
	"fmt"

	"github.com/vikoiv/equihash/internal/logging"
)

// personalizationPrefix is the 8 ASCII bytes "ZcashPOW" from §6's bit-exact
// personalization tag. Taken from original_source/src/crypto/equihash.cpp
// rather than the teacher's GPU kernel harness, which carries an unrelated
// fork's "ZcashPoW" tag — see DESIGN.md.
const personalizationPrefix = "ZcashPOW"

// HashPrimitiveError wraps a failure from the underlying hash primitive.
// Per §7 this is fatal and non-recoverable: callers should not retry.
type HashPrimitiveError struct {
	Op  string
	Err error
}

func (e *HashPrimitiveError) Error() string {
	return fmt.Sprintf("equihash: hash primitive failed during %s: %v", e.Op, e.Err)
}

func (e *HashPrimitiveError) Unwrap() error { return e.Err }

// HashState is a personalized BLAKE2b seed for one Equihash instance (§3
// "HashState"): the personalization block and the seed bytes it will be
// fed with, on an otherwise keyless, saltless digest. It is immutable
// after InitState.
//
// dchest/blake2b.New returns a plain hash.Hash, which has no Clone method,
// so GenerateHash cannot clone a pre-seeded digest the way a hand-rolled
// one could; instead every leaf gets a fresh digest built from the same
// Config and fed the same seed bytes before its own index. This costs one
// extra seed-length write per leaf, which the solvers' InitialListSize
// leaves already dominate in every other respect.
type HashState struct {
	params   Params
	personal [16]byte
	seed     []byte
}

// InitState builds the personalization as in §4.1/§6, seeds a BLAKE2b
// state of output width Params.HashLength with no key and no salt, and
// records seed (typically header-derived material concatenated with a
// nonce, already joined by the caller) to be fed into every leaf's digest.
func InitState(params Params, seed []byte) (HashState, error) {
	var personal [16]byte
	copy(personal[:8], personalizationPrefix)
	binary.LittleEndian.PutUint32(personal[8:12], params.N)
	binary.LittleEndian.PutUint32(personal[12:16], params.K)

	if _, err := newDigest(personal, int(params.HashLength())); err != nil {
		return HashState{}, &HashPrimitiveError{Op: "init", Err: err}
	}

	logging.Logger.Debug().
		Uint32("n", params.N).Uint32("k", params.K).
		Int("seed_len", len(seed)).
		Msg("equihash: state initialized")

	return HashState{params: params, personal: personal, seed: append([]byte(nil), seed...)}, nil
}

// Params returns the parameters this state was seeded for.
func (s HashState) Params() Params { return s.params }

// GenerateHash builds a fresh digest from this state's personalization,
// feeds it the seed followed by the native-endian 4-byte encoding of index
// i (§4.1, §6 — preserved bit-for-bit against the big-endian tail encoding
// for compatibility), and finalizes, returning Params.HashLength bytes.
func (s HashState) GenerateHash(i uint32) []byte {
	// Construction cannot fail here: InitState already validated this same
	// Size/Person combination.
	d, _ := newDigest(s.personal, int(s.params.HashLength()))
	d.Write(s.seed)
	var buf [4]byte
	binary.LittleEndian.PutUint32(buf[:], i)
	d.Write(buf[:])
	return d.Sum(nil)
}
