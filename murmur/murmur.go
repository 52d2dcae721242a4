// Package murmur implements the 128-bit x64 variant of MurmurHash3 as a
// pure function over a byte slice and a 64-bit seed.
//
// The output is fixed bit-for-bit: multi-byte words are read little-endian
// regardless of host byte order, so the same input and seed produce the
// same two words on every platform. The hash is not cryptographic and must
// not be used where collision resistance against an adversary matters.
package murmur

import (
	"encoding/binary"
	"math/bits"
)

const (
	c1 = 0x87c37b91114253d5
	c2 = 0x4cf5ad432745937f
)

// Sum128 returns the 128-bit hash of data with seed 0 as two 64-bit words.
func Sum128(data []byte) (uint64, uint64) {
	return Sum128Seed(data, 0)
}

// Sum128Seed returns the 128-bit hash of data as two 64-bit words, with
// both halves of the internal state initialized to seed. A zero-length
// input is valid; with seed 0 it hashes to (0, 0).
func Sum128Seed(data []byte, seed uint64) (uint64, uint64) {
	h1, h2 := seed, seed

	nblocks := len(data) / 16
	for i := 0; i < nblocks; i++ {
		block := data[i*16 : i*16+16]
		k1 := binary.LittleEndian.Uint64(block[0:8])
		k2 := binary.LittleEndian.Uint64(block[8:16])

		k1 *= c1
		k1 = bits.RotateLeft64(k1, 31)
		k1 *= c2
		h1 ^= k1
		h1 = bits.RotateLeft64(h1, 27)
		h1 += h2
		h1 = h1*5 + 0x52dce729

		k2 *= c2
		k2 = bits.RotateLeft64(k2, 33)
		k2 *= c1
		h2 ^= k2
		h2 = bits.RotateLeft64(h2, 31)
		h2 += h1
		h2 = h2*5 + 0x38495ab5
	}

	// Accumulate the 0-15 remaining bytes into k1 (bytes 0-7) and k2
	// (bytes 8-14) at their byte-shifted positions, then fold in whichever
	// word received any bytes using the same mix as a full block.
	tail := data[nblocks*16:]
	var k1, k2 uint64
	for i := len(tail) - 1; i >= 8; i-- {
		k2 |= uint64(tail[i]) << (8 * (i - 8))
	}
	if len(tail) > 8 {
		k2 *= c2
		k2 = bits.RotateLeft64(k2, 33)
		k2 *= c1
		h2 ^= k2
	}
	n := len(tail)
	if n > 8 {
		n = 8
	}
	for i := n - 1; i >= 0; i-- {
		k1 |= uint64(tail[i]) << (8 * i)
	}
	if len(tail) > 0 {
		k1 *= c1
		k1 = bits.RotateLeft64(k1, 31)
		k1 *= c2
		h1 ^= k1
	}

	h1 ^= uint64(len(data))
	h2 ^= uint64(len(data))
	h1 += h2
	h2 += h1
	h1 = fmix64(h1)
	h2 = fmix64(h2)
	h1 += h2
	h2 += h1

	return h1, h2
}

// fmix64 is the finalization avalanche applied to each output word.
func fmix64(k uint64) uint64 {
	k ^= k >> 33
	k *= 0xff51afd7ed558ccd
	k ^= k >> 33
	k *= 0xc4ceb9fe1a85ec53
	k ^= k >> 33
	return k
}
