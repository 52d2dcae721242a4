package bloom

import (
	"errors"
	"fmt"
	"math"
)

// ErrBadShape is returned when a shape's hash function count or bit count
// is outside the supported range.
var ErrBadShape = errors.New("bloom: invalid shape")

// Shape describes the geometry of a Bloom filter: the name of the hasher
// that produces its bit positions, the number of hash functions K applied
// per item, and the number of bits M in the filter.
//
// A Shape is read-only configuration. The hasher name ties index streams
// to the filters they were derived for; a generator refuses shapes bound
// to a different hasher.
type Shape struct {
	HasherName string
	K          uint64 // number of hash functions
	M          uint64 // number of bits
}

// Validate reports whether the shape is usable. K and M must both be at
// least 1, and M must fit in an int64 so signed index reduction is exact.
func (s Shape) Validate() error {
	if s.K < 1 {
		return fmt.Errorf("%w: K = %d, must be at least 1", ErrBadShape, s.K)
	}
	if s.M < 1 {
		return fmt.Errorf("%w: M = %d, must be at least 1", ErrBadShape, s.M)
	}
	if s.M > math.MaxInt64 {
		return fmt.Errorf("%w: M = %d overflows the index range", ErrBadShape, s.M)
	}
	return nil
}

// EstimateParameters returns the filter size m and hash count k for an
// expected n items at the requested false positive probability.
// Taken from https://en.wikipedia.org/wiki/Bloom_filter#Optimal_number_of_hash_functions
func EstimateParameters(n uint64, fpp float64) (m, k uint64) {
	m = uint64(math.Ceil(-1 * float64(n) * math.Log(fpp) / math.Pow(math.Log(2), 2)))
	k = uint64(math.Ceil(float64(m) / float64(n) * math.Log(2)))

	return
}

// NewShapeWithEstimates returns a Shape for hasherName sized for n items
// at the requested false positive probability.
func NewShapeWithEstimates(hasherName string, n uint64, fpp float64) Shape {
	m, k := EstimateParameters(n, fpp)
	return Shape{HasherName: hasherName, K: k, M: m}
}
