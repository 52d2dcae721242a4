// Package hasher derives Bloom filter bit positions from accumulated
// items. A Generator collects byte-bearing items and, once asked for
// indices against a shape, walks every item through a pluggable seeded
// hash function to produce a lazy stream of positions in [0, M).
package hasher

// Hash64 is the plug-in point for seeded 64-bit hash functions. The first
// draw over a buffer receives seed 0; the seed increments by exactly one
// per further draw over the same buffer and resets when the buffer
// changes. An implementation may mix the seed into the hash or use it
// only to detect when the buffer repeats, but successive seeds must yield
// different values for the same buffer.
//
// The signed return keeps the contract open to implementations that
// naturally produce negative values; the generator reduces the raw value
// into range with a floored modulo, so negatives are fine.
type Hash64 interface {
	Sum64(data []byte, seed int64) int64
}

// Hash64Func adapts an ordinary function to the Hash64 interface.
type Hash64Func func(data []byte, seed int64) int64

// Sum64 calls f(data, seed).
func (f Hash64Func) Sum64(data []byte, seed int64) int64 {
	return f(data, seed)
}
