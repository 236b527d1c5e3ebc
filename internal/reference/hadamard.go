// Package reference provides slow, obviously-correct Hadamard transforms
// built from an explicit Sylvester matrix. It exists for tests and the
// benchmark CLI; the O(n²) matrix product is the baseline the butterfly
// kernels are checked and timed against.
package reference

import (
	"fmt"

	"gonum.org/v1/gonum/mat"
)

// HadamardMatrix returns the n×n Sylvester-Hadamard matrix
//
//	H_1 = [1]
//	H_2m = [[H_m, H_m], [H_m, -H_m]]
//
// with ±1 entries. It panics if n is not a positive power of two.
func HadamardMatrix(n int) *mat.Dense {
	if n < 1 || n&(n-1) != 0 {
		panic(fmt.Sprintf("reference: Hadamard order %d is not a power of two", n))
	}

	h := mat.NewDense(n, n, nil)
	h.Set(0, 0, 1)

	for m := 1; m < n; m <<= 1 {
		for i := range m {
			for j := range m {
				v := h.At(i, j)
				h.Set(i, j+m, v)
				h.Set(i+m, j, v)
				h.Set(i+m, j+m, -v)
			}
		}
	}

	return h
}

// Transform returns H_n·x as a new slice, leaving x untouched.
func Transform(x []float64) []float64 {
	n := len(x)
	h := HadamardMatrix(n)

	src := mat.NewVecDense(n, append([]float64(nil), x...))

	var dst mat.VecDense
	dst.MulVec(h, src)

	out := make([]float64, n)
	for i := range out {
		out[i] = dst.AtVec(i)
	}

	return out
}

// TransformRows returns (H_n·Mᵀ)ᵀ for the rows×n matrix given as row slices,
// i.e. every row transformed independently. rows must be rectangular.
func TransformRows(rows [][]float64) [][]float64 {
	if len(rows) == 0 {
		return nil
	}

	r, n := len(rows), len(rows[0])

	data := make([]float64, 0, r*n)
	for i, row := range rows {
		if len(row) != n {
			panic(fmt.Sprintf("reference: row %d has %d columns, want %d", i, len(row), n))
		}

		data = append(data, row...)
	}

	m := mat.NewDense(r, n, data)
	h := HadamardMatrix(n)

	// H is symmetric, so M·H = (H·Mᵀ)ᵀ.
	var prod mat.Dense
	prod.Mul(m, h)

	out := make([][]float64, r)
	for i := range out {
		out[i] = mat.Row(nil, i, &prod)
	}

	return out
}
