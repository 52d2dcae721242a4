// Package bloom provides a Bloom filter container plus the two supported
// ways of turning accumulated bytes into positions for it: a lazy index
// stream produced elsewhere and consumed through IndexSource, and a
// two-word Seed produced by a Builder and expanded by double hashing.
package bloom

import (
	"errors"
	"fmt"
	"math"

	"github.com/bits-and-blooms/bitset"

	"github.com/fission-codes/go-bloom-hash/util"
)

// ErrFilterMismatch is returned when an operation combines filters with
// different shapes.
var ErrFilterMismatch = errors.New("bloom: filter shapes differ")

// IndexSource is a finite, non-restartable stream of bit positions in
// [0, M). Next reports whether another position remains; Value must only
// be called after Next has returned true.
type IndexSource interface {
	Next() bool
	Value() uint64
}

// Filter is a Bloom filter with the geometry of its Shape. An item is
// added by setting K bits derived from it and is possibly present if all
// K of its bits are set.
type Filter struct {
	shape Shape
	bits  *bitset.BitSet
}

// New creates an empty filter for the given shape.
func New(shape Shape) (*Filter, error) {
	if err := shape.Validate(); err != nil {
		return nil, err
	}
	return &Filter{shape: shape, bits: bitset.New(uint(shape.M))}, nil
}

// NewWithEstimates creates an empty filter for hasherName sized for n
// items at the requested false positive probability. n must be at least 1.
func NewWithEstimates(hasherName string, n uint64, fpp float64) (*Filter, error) {
	return New(NewShapeWithEstimates(hasherName, n, fpp))
}

// Shape returns the filter's shape.
func (f *Filter) Shape() Shape {
	return f.shape
}

// AddIndices sets every bit position produced by src. The source is
// drained; it cannot be reused afterwards.
func (f *Filter) AddIndices(src IndexSource) {
	for src.Next() {
		f.bits.Set(uint(src.Value()))
	}
}

// TestIndices reports whether every bit position produced by src is set.
// It stops at the first clear bit, which may leave src partially
// consumed; either way the source cannot be reused afterwards.
func (f *Filter) TestIndices(src IndexSource) bool {
	for src.Next() {
		if !f.bits.Test(uint(src.Value())) {
			return false
		}
	}
	return true
}

// AddSeed sets the K bit positions derived from s by double hashing.
func (f *Filter) AddSeed(s Seed) {
	f.AddIndices(NewSeedIndices(s, f.shape.K, f.shape.M))
}

// TestSeed reports whether all K bit positions derived from s are set.
func (f *Filter) TestSeed(s Seed) bool {
	return f.TestIndices(NewSeedIndices(s, f.shape.K, f.shape.M))
}

// Union merges other into f. Both filters must have the same shape.
func (f *Filter) Union(other *Filter) error {
	if f.shape != other.shape {
		return fmt.Errorf("%w: %+v vs %+v", ErrFilterMismatch, f.shape, other.shape)
	}
	f.bits.InPlaceUnion(other.bits)
	return nil
}

// Count returns the number of set bits.
func (f *Filter) Count() uint {
	return f.bits.Count()
}

// ApproximatedSize estimates the number of items added to the filter from
// its fill ratio.
func (f *Filter) ApproximatedSize() uint32 {
	x := float64(f.bits.Count())
	m := float64(f.shape.M)
	k := float64(f.shape.K)
	size := -1 * m / k * math.Log(1-x/m)
	return uint32(math.Floor(size + 0.5)) // round
}

// FPP returns the false positive probability of the filter's geometry
// after n items have been added.
func (f *Filter) FPP(n uint64) float64 {
	m := float64(f.shape.M)
	k := float64(f.shape.K)
	return math.Pow(1-math.Exp(-k*float64(n)/m), k)
}

// NewSeedIndices expands a Seed into a stream of exactly k bit positions
// in [0, m) by double hashing: probe j yields H1 + j*H2, masked down to
// the next power of two above m. Masked probes at or above m are skipped,
// so positions stay unbiased without a modulo.
func NewSeedIndices(s Seed, k, m uint64) IndexSource {
	// The step is forced odd so the masked probe sequence visits every
	// residue below the mask and the skip loop always terminates.
	return &seedDraw{
		h1:   s.H1,
		h2:   s.H2 | 1,
		m:    m,
		mask: util.NextPowerOfTwo(m) - 1,
		k:    k,
	}
}

type seedDraw struct {
	h1, h2 uint64
	m      uint64
	mask   uint64
	k      uint64
	count  uint64
	probe  uint64
}

func (d *seedDraw) Next() bool {
	return d.count < d.k
}

func (d *seedDraw) Value() uint64 {
	if d.count >= d.k {
		panic("bloom: Value called on exhausted seed index stream")
	}
	for {
		v := (d.h1 + d.probe*d.h2) & d.mask
		d.probe++
		if v < d.m {
			d.count++
			return v
		}
	}
}
