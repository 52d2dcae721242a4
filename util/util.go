package util

// NextPowerOfTwo returns i if it is a power of 2, otherwise the next power of two greater than i.
func NextPowerOfTwo(i uint64) uint64 {
	i--
	i |= i >> 1
	i |= i >> 2
	i |= i >> 4
	i |= i >> 8
	i |= i >> 16
	i |= i >> 32
	i++
	return i
}

// FloorMod reduces v into [0, m) using floored-division semantics, so a
// negative v still maps to a non-negative residue. m must be in
// [1, math.MaxInt64]; within that range the result is well defined for
// every v, including math.MinInt64.
func FloorMod(v int64, m uint64) uint64 {
	r := v % int64(m)
	if r < 0 {
		r += int64(m)
	}
	return uint64(r)
}
