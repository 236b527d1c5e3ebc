package math

import "testing"

func TestIsPowerOf2(t *testing.T) {
	t.Parallel()

	tests := []struct {
		n    int
		want bool
	}{
		{-4, false},
		{-1, false},
		{0, false},
		{1, true},
		{2, true},
		{3, false},
		{4, true},
		{5, false},
		{6, false},
		{100, false},
		{1024, true},
		{1 << 30, true},
		{(1 << 30) + 1, false},
	}

	for _, tt := range tests {
		if got := IsPowerOf2(tt.n); got != tt.want {
			t.Errorf("IsPowerOf2(%d) = %v, want %v", tt.n, got, tt.want)
		}
	}
}

func TestLog2(t *testing.T) {
	t.Parallel()

	for k := range 31 {
		n := 1 << k
		if got := Log2(n); got != k {
			t.Errorf("Log2(%d) = %d, want %d", n, got, k)
		}
	}
}

func TestNearestPowersOf2(t *testing.T) {
	t.Parallel()

	tests := []struct {
		n      int
		lo, hi int
	}{
		{0, 1, 1},
		{1, 1, 1},
		{3, 2, 4},
		{5, 4, 8},
		{6, 4, 8},
		{8, 8, 8},
		{100, 64, 128},
	}

	for _, tt := range tests {
		lo, hi := NearestPowersOf2(tt.n)
		if lo != tt.lo || hi != tt.hi {
			t.Errorf("NearestPowersOf2(%d) = (%d, %d), want (%d, %d)", tt.n, lo, hi, tt.lo, tt.hi)
		}
	}
}
