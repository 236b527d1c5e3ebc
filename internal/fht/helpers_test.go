package fht

import (
	"math"
	"math/rand"
	"testing"
)

func randomFloat64(n int, seed int64) []float64 {
	rng := rand.New(rand.NewSource(seed))

	out := make([]float64, n)
	for i := range out {
		out[i] = rng.Float64()*20 - 10
	}

	return out
}

// assertSliceClose compares with a tolerance scaled by log2(n), the growth
// rate of the butterfly rounding error.
func assertSliceClose(t *testing.T, got, want []float64, n int) {
	t.Helper()

	if len(got) != len(want) {
		t.Fatalf("length mismatch: got %d want %d", len(got), len(want))
	}

	tol := 1e-9 * math.Max(1, math.Log2(float64(n)))

	for i := range got {
		diff := math.Abs(got[i] - want[i])
		scale := math.Max(1, math.Abs(want[i]))

		if diff > tol*scale {
			t.Fatalf("index %d: got %v want %v (diff=%v)", i, got[i], want[i], diff)
		}
	}
}

func assertSliceIdentical(t *testing.T, got, want []float64, format string, args ...any) {
	t.Helper()

	for i := range want {
		if math.Float64bits(got[i]) != math.Float64bits(want[i]) {
			t.Fatalf(format+": index %d: got %v want %v", append(args, i, got[i], want[i])...)
		}
	}
}
