package probemap

import (
	"hash/maphash"

	"github.com/cespare/xxhash/v2"
)

// HashFunc maps a key to a 64-bit hash. It must stay deterministic for the
// lifetime of a map; uniformity is not assumed.
type HashFunc func(key string) uint64

// DefaultHashFunc hashes keys with xxhash.
func DefaultHashFunc(key string) uint64 {
	return xxhash.Sum64String(key)
}

// MakeSeededHashFunc returns a maphash-backed hash function carrying its own
// random seed. Two maps built from separate seeded functions place the same
// keys differently.
func MakeSeededHashFunc() HashFunc {
	seed := maphash.MakeSeed()

	return func(key string) uint64 {
		return maphash.String(seed, key)
	}
}
