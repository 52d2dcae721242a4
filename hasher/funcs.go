package hasher

import (
	"github.com/zeebo/xxh3"

	"github.com/fission-codes/go-bloom-hash/murmur"
)

// Names of the hash functions registered by this package.
const (
	Murmur128Name = "murmur128-x64"
	XXH3Name      = "xxh3-64"
)

// Murmur128 returns a Hash64 backed by the first output word of the
// 128-bit x64 murmur hash, with the draw index as the hash seed.
func Murmur128() Hash64 {
	return Hash64Func(func(data []byte, seed int64) int64 {
		h1, _ := murmur.Sum128Seed(data, uint64(seed))
		return int64(h1)
	})
}

// XXH3 returns a Hash64 backed by the seeded 64-bit XXH3 hash.
func XXH3() Hash64 {
	return Hash64Func(func(data []byte, seed int64) int64 {
		return int64(xxh3.HashSeed(data, uint64(seed)))
	})
}

func init() {
	Register(Murmur128Name, Murmur128())
	Register(XXH3Name, XXH3())
}
