package assoc

import (
	"hash/maphash"

	"github.com/cespare/xxhash/v2"
)

// Hasher maps a key to a 64-bit hash. Equal keys must hash equally.
type Hasher[K comparable] interface {
	Hash(key K) uint64
}

// HasherFunc adapts a function to the Hasher interface.
type HasherFunc[K comparable] func(K) uint64

// Hash calls f(key).
func (f HasherFunc[K]) Hash(key K) uint64 { return f(key) }

// Seeded returns a hasher backed by hash/maphash with a fresh random seed.
// Two maps never share a seed, so an adversary cannot precompute colliding
// keys. This is the default policy.
func Seeded[K comparable]() Hasher[K] {
	seed := maphash.MakeSeed()
	return HasherFunc[K](func(k K) uint64 {
		return maphash.Comparable(seed, k)
	})
}

// XXHash returns an unseeded xxHash64 hasher for string keys. It is faster
// than Seeded but offers no collision resistance against chosen keys.
func XXHash[K ~string]() Hasher[K] {
	return HasherFunc[K](func(k K) uint64 {
		return xxhash.Sum64String(string(k))
	})
}

// XXHashBytes returns an xxHash64 hasher over the bytes produced by view.
// Use it for fixed-size keys, for example
//
//	XXHashBytes(func(u uuid.UUID) []byte { return u[:] })
func XXHashBytes[K comparable](view func(K) []byte) Hasher[K] {
	return HasherFunc[K](func(k K) uint64 {
		return xxhash.Sum64(view(k))
	})
}
