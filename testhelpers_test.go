package algofht

import (
	"math"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/floats"
)

// Shared test helper functions used across multiple test files

const testTol = 1e-9

var allStrategies = []KernelStrategy{KernelAuto, KernelRadix2, KernelRadix4, KernelCodelet}

func randomFloat64(n int, seed int64) []float64 {
	rng := rand.New(rand.NewSource(seed))

	out := make([]float64, n)
	for i := range out {
		out[i] = rng.Float64()*20 - 10
	}

	return out
}

func randomRows(rows, cols int, seed int64) [][]float64 {
	out := make([][]float64, rows)
	for i := range out {
		out[i] = randomFloat64(cols, seed+int64(i))
	}

	return out
}

func cloneRows(rows [][]float64) [][]float64 {
	out := make([][]float64, len(rows))
	for i, row := range rows {
		out[i] = append([]float64(nil), row...)
	}

	return out
}

func requireApprox(t *testing.T, want, got []float64) {
	t.Helper()

	require.Len(t, got, len(want))

	if !floats.EqualApprox(want, got, testTol) {
		require.FailNow(t, "slices differ beyond tolerance", "want %v\ngot  %v", want, got)
	}
}

func requireBitIdentical(t *testing.T, want, got []float64, msgAndArgs ...any) {
	t.Helper()

	require.Len(t, got, len(want), msgAndArgs...)

	for i := range want {
		require.Equal(t, math.Float64bits(want[i]), math.Float64bits(got[i]), msgAndArgs...)
	}
}
