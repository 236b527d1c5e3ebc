package math

// IsPowerOf2 reports whether n is a positive power of two.
// IsPowerOf2(1) is true: H_1 is the trivial transform.
func IsPowerOf2(n int) bool {
	return n > 0 && n&(n-1) == 0
}

// Log2 returns the base-2 logarithm of n (assuming n is a power of 2).
func Log2(n int) int {
	result := 0

	for n > 1 {
		n >>= 1
		result++
	}

	return result
}

// NearestPowersOf2 returns the largest power of two <= n and the smallest
// power of two >= n. For n < 1 both results are 1.
func NearestPowersOf2(n int) (lo, hi int) {
	if n < 1 {
		return 1, 1
	}

	lo = 1
	for lo <= n/2 {
		lo <<= 1
	}

	if lo == n {
		return lo, lo
	}

	return lo, lo << 1
}
