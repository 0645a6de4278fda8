package hashtable

import (
	"math"

	"github.com/zeebo/xxh3"
)

// goldenFrac is the fractional part of the golden ratio, the classic
// multiplier for multiplicative hashing (Knuth, TAOCP vol. 3).
const goldenFrac = 0.6180339887

// FirstByte hashes a key by its first byte alone, modulo the table size.
// It is the naive baseline strategy: every key sharing a first character
// lands in the same bucket. The empty key maps to bucket 0.
func FirstByte(size int, key string) int {
	if len(key) == 0 {
		return 0
	}
	return int(key[0]) % size
}

// Multiplicative accumulates a polynomial hash over the whole key
// (h = h*31 + c) and then applies multiplicative hashing: the fractional
// part of h times goldenFrac, scaled to the table size. Disperses far
// better across buckets than FirstByte at any fixed size.
func Multiplicative(size int, key string) int {
	var h uint64
	for i := 0; i < len(key); i++ {
		h = h*31 + uint64(key[i])
	}
	frac := math.Mod(float64(h)*goldenFrac, 1)
	idx := int(frac * float64(size))
	if idx >= size { // frac*size can round up to size at the top edge
		idx = size - 1
	}
	return idx
}

// DJB2 is Bernstein's string hash (h = h*33 + c, seeded with 5381),
// reduced modulo the table size. An alternative whole-key strategy with
// dispersion comparable to Multiplicative.
func DJB2(size int, key string) int {
	h := uint64(5381)
	for i := 0; i < len(key); i++ {
		h = h*33 + uint64(key[i])
	}
	return int(h % uint64(size))
}

// XXH3 reduces the 64-bit xxh3 digest of the key modulo the table size.
// The strongest strategy here for adversarial or highly similar key sets.
func XXH3(size int, key string) int {
	return int(xxh3.HashString(key) % uint64(size))
}
