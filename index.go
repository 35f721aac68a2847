package equihash

import "encoding/binary"

// indexSize is the width in bytes of a full index's tail encoding (§3
// "Index" — serialized big-endian in 4 bytes when embedded in row tails).
const indexSize = 4

// indexToArray encodes i big-endian in 4 bytes (§4.2). This is the tail
// encoding; it is intentionally not the same endianness GenerateHash feeds
// into the hash primitive (§6's documented asymmetry).
func indexToArray(i uint32) [4]byte {
	var b [4]byte
	binary.BigEndian.PutUint32(b[:], i)
	return b
}

// arrayToIndex is the big-endian inverse of indexToArray.
func arrayToIndex(b []byte) uint32 {
	return binary.BigEndian.Uint32(b)
}

// truncate returns the top 8 bits of i, where i is known to fit in ilen
// bits (§4.2). ilen must be >= 8.
func truncate(i uint32, ilen uint32) uint8 {
	return uint8((i >> (ilen - 8)) & 0xFF)
}

// untruncate reconstructs a full ilen-bit index from its truncated top 8
// bits t and the remaining low (ilen-8) bits r (§4.2).
func untruncate(t uint8, r uint32, ilen uint32) uint32 {
	return (uint32(t) << (ilen - 8)) | r
}
