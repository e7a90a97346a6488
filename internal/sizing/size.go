// Package sizing provides safe conversions into the container's 32-bit length fields.
package sizing

import "math"

// ToUint32 converts a non-negative int to uint32, returning overflowErr if it doesn't fit.
func ToUint32(n int, overflowErr error) (uint32, error) {
	if n < 0 || uint64(n) > math.MaxUint32 {
		return 0, overflowErr
	}
	return uint32(n), nil
}

// AddUint32 adds two uint32 values, returning (result, false) on overflow.
func AddUint32(a, b uint32) (uint32, bool) {
	sum := a + b
	if sum < a {
		return 0, false
	}
	return sum, true
}

// Fits reports whether n bytes starting at off lie within a buffer of length size.
func Fits(off int, n uint64, size int) bool {
	if off < 0 || off > size {
		return false
	}
	return n <= uint64(size-off)
}
