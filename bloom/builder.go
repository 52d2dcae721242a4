package bloom

import (
	"github.com/fission-codes/go-bloom-hash/murmur"
)

// Seed is a two-word hash of accumulated bytes. Filters consume it as the
// starting point for double-hash derivation of bit positions.
type Seed struct {
	H1 uint64
	H2 uint64
}

// Builder accumulates bytes and condenses them into a Seed with a single
// murmur 128 pass. Unlike a Generator it has no terminal state: Build
// consumes and clears the accumulated bytes, and the builder can be reused
// immediately. Building with nothing accumulated returns the hash of empty
// input, which is Seed{0, 0}.
//
// A Builder is not safe for concurrent use.
type Builder struct {
	buf []byte
}

// NewBuilder returns an empty Builder.
func NewBuilder() *Builder {
	return &Builder{}
}

// Update appends p to the accumulated bytes. Zero-length input is allowed.
func (b *Builder) Update(p []byte) *Builder {
	b.buf = append(b.buf, p...)
	return b
}

// UpdateByte appends a single byte to the accumulated bytes.
func (b *Builder) UpdateByte(c byte) *Builder {
	b.buf = append(b.buf, c)
	return b
}

// UpdateString appends the UTF-8 encoding of s to the accumulated bytes.
func (b *Builder) UpdateString(s string) *Builder {
	b.buf = append(b.buf, s...)
	return b
}

// Len returns the number of accumulated bytes.
func (b *Builder) Len() int {
	return len(b.buf)
}

// Build hashes the accumulated bytes with seed 0, resets the builder to
// empty, and returns the resulting Seed.
func (b *Builder) Build() Seed {
	h1, h2 := murmur.Sum128(b.buf)
	b.buf = b.buf[:0]
	return Seed{H1: h1, H2: h2}
}
