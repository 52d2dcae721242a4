package hasher

import (
	"errors"
	"fmt"

	"github.com/fission-codes/go-bloom-hash/bloom"
	"github.com/fission-codes/go-bloom-hash/util"
)

var (
	// ErrLocked is returned when items are added to a generator after it
	// has produced indices. The generator cannot be unlocked; build a new
	// one instead.
	ErrLocked = errors.New("hasher: generator is locked")

	// ErrShapeMismatch is returned when a shape names a different hasher
	// than the generator was built with.
	ErrShapeMismatch = errors.New("hasher: shape names a different hasher")
)

// Generator accumulates byte-bearing items and derives Bloom filter bit
// positions from them. Items are hashed in insertion order; each item
// contributes shape.K positions, drawn by calling the bound Hash64 with
// seeds 0 through K-1.
//
// The first successful Indices call locks the generator: further Add
// calls fail with ErrLocked. Indices may be called again, against the
// same or a different shape, and walks the frozen items afresh each time.
//
// A Generator is not safe for concurrent use.
type Generator struct {
	name   string
	fn     Hash64
	items  [][]byte
	locked bool
}

// NewGenerator returns an empty, unlocked generator bound to fn. The name
// identifies the hash function; Indices rejects shapes carrying any other
// name. Item slices are held, not copied; callers must not mutate them
// before the derived indices are consumed.
func NewGenerator(name string, fn Hash64) *Generator {
	return &Generator{name: name, fn: fn}
}

// Name returns the name of the bound hash function.
func (g *Generator) Name() string {
	return g.name
}

// Add appends one item to the accumulation. Zero-length items are valid.
func (g *Generator) Add(item []byte) error {
	if g.locked {
		return fmt.Errorf("%w: cannot add items after indices have been produced", ErrLocked)
	}
	g.items = append(g.items, item)
	return nil
}

// AddByte appends a single-byte item to the accumulation.
func (g *Generator) AddByte(item byte) error {
	return g.Add([]byte{item})
}

// AddString appends the UTF-8 encoding of item to the accumulation.
func (g *Generator) AddString(item string) error {
	return g.Add([]byte(item))
}

// Len returns the number of accumulated items.
func (g *Generator) Len() int {
	return len(g.items)
}

// Locked reports whether the generator has produced indices.
func (g *Generator) Locked() bool {
	return g.locked
}

// Indices locks the generator and returns a fresh lazy stream of bit
// positions for the given shape: Len()*shape.K positions in [0, shape.M),
// in item insertion order. An invalid shape or one naming a different
// hasher is rejected without locking the generator.
func (g *Generator) Indices(shape bloom.Shape) (*Indices, error) {
	if err := shape.Validate(); err != nil {
		return nil, err
	}
	if shape.HasherName != g.name {
		return nil, fmt.Errorf("%w: shape hasher %q is not %q", ErrShapeMismatch, shape.HasherName, g.name)
	}
	g.locked = true
	return &Indices{g: g, k: shape.K, m: shape.M}, nil
}

// Indices is a lazy, finite, non-restartable stream of bit positions.
// Items advance in insertion order; within an item the hash seed runs
// from 0 to K-1. A fresh stream over the same generator starts over; a
// single stream never does.
type Indices struct {
	g    *Generator
	k    uint64
	m    uint64
	item int
	draw uint64
}

var _ bloom.IndexSource = (*Indices)(nil)

// Next reports whether another bit position remains.
func (it *Indices) Next() bool {
	if len(it.g.items) == 0 {
		return false
	}
	return it.item < len(it.g.items)-1 || it.draw < it.k
}

// Value returns the next bit position. It must only be called after Next
// has returned true; calling it on an exhausted stream panics.
func (it *Indices) Value() uint64 {
	if !it.Next() {
		panic("hasher: Value called on exhausted index stream")
	}
	if it.draw >= it.k {
		it.draw = 0
		it.item++
	}
	raw := it.g.fn.Sum64(it.g.items[it.item], int64(it.draw))
	it.draw++
	return util.FloorMod(raw, it.m)
}

// Collect drains the stream into a slice. The stream is exhausted
// afterwards.
func (it *Indices) Collect() []uint64 {
	var out []uint64
	for it.Next() {
		out = append(out, it.Value())
	}
	return out
}
