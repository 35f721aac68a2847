// Package equihash implements the core of the Equihash generalized-birthday
// proof-of-work: a seeded-hash state, a basic and an optimised solver, and a
// verifier, parameterized by (N, K) as defined by Biryukov and Khovratovich.
//
// The package deliberately knows nothing about block headers, difficulty
// targets, nonces, or chain state. Callers seed a HashState from header
// material and a nonce, solve it, and verify candidate solutions; everything
// else lives outside this package.
package equihash

import "fmt"

// Params holds the two integers that fully determine an Equihash instance
// and the quantities derived from them.
type Params struct {
	N uint32
	K uint32
}

// ParameterError reports an (N, K) pair that cannot be laid out by this
// implementation.
type ParameterError struct {
	N, K   uint32
	Reason string
}

func (e *ParameterError) Error() string {
	return fmt.Sprintf("equihash: invalid parameters N=%d K=%d: %s", e.N, e.K, e.Reason)
}

// NewParams validates (n, k) against the reference layout constraints and
// returns the derived Params. N must be a multiple of 8, N/(K+1) must be a
// multiple of 8 (so CollisionByteLength is a whole number of bytes), and the
// resulting index and table sizes must fit in the uint32 index carrier used
// by this implementation.
func NewParams(n, k uint32) (Params, error) {
	p := Params{N: n, K: k}

	if k == 0 {
		return Params{}, &ParameterError{n, k, "K must be >= 1"}
	}
	if n%8 != 0 {
		return Params{}, &ParameterError{n, k, "N must be a multiple of 8"}
	}
	if k >= n {
		return Params{}, &ParameterError{n, k, "K must be less than N"}
	}
	if (n/(k+1))%8 != 0 {
		return Params{}, &ParameterError{n, k, "N/(K+1) must be a multiple of 8"}
	}

	collisionBitLength := n / (k + 1)
	if collisionBitLength+1 >= 32 {
		return Params{}, &ParameterError{n, k, "index width does not fit in a 32-bit carrier"}
	}

	// The final round's accept condition requires hash_len == 2*CollisionByteLength
	// on entry to the final round; reject parameterizations where it does not hold
	// (see spec.md §9's open question).
	collisionByteLength := collisionBitLength / 8
	finalHashLen := p.hashLenAtRound(k - 1)
	if finalHashLen != 2*collisionByteLength {
		return Params{}, &ParameterError{n, k, "final round hash length is not twice CollisionByteLength"}
	}

	return p, nil
}

// Params96x5 is the canonical (N=96, K=5) instantiation required by §5.
func Params96x5() Params {
	p, err := NewParams(96, 5)
	if err != nil {
		panic(err)
	}
	return p
}

// Params48x5 is the canonical (N=48, K=5) test instantiation required by §5,
// used throughout this module's tests for speed.
func Params48x5() Params {
	p, err := NewParams(48, 5)
	if err != nil {
		panic(err)
	}
	return p
}

// CollisionBitLength is the number of bits cancelled per round: N/(K+1).
func (p Params) CollisionBitLength() uint32 {
	return p.N / (p.K + 1)
}

// CollisionByteLength is CollisionBitLength/8.
func (p Params) CollisionByteLength() uint32 {
	return p.CollisionBitLength() / 8
}

// HashLength is the width of H(i) in bytes: N/8.
func (p Params) HashLength() uint32 {
	return p.N / 8
}

// IndexBits is the number of bits every index fits in: CollisionBitLength+1.
func (p Params) IndexBits() uint32 {
	return p.CollisionBitLength() + 1
}

// InitialListSize is 2^(CollisionBitLength+1).
func (p Params) InitialListSize() uint32 {
	return uint32(1) << p.IndexBits()
}

// SolutionSize is 2^K, the number of indices in a solution.
func (p Params) SolutionSize() uint32 {
	return uint32(1) << p.K
}

// hashLenAtRound returns the hash prefix length, in bytes, remaining at the
// start of round r (0-indexed), before that round's collide call trims it
// further.
func (p Params) hashLenAtRound(r uint32) uint32 {
	return p.HashLength() - r*p.CollisionByteLength()
}
