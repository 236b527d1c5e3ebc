// Package algofht computes the Fast Walsh-Hadamard Transform of float64
// vectors, and of every row of a 2-D array, in place.
//
// The transform is the product H_n·x with the Sylvester-Hadamard matrix
//
//	H_1 = [1]
//	H_2m = [[H_m, H_m], [H_m, -H_m]]
//
// (±1 entries, no normalization) computed by the O(n log n) butterfly
// algorithm without building H_n. The size n must be a power of two.
//
// Quick start:
//
//	x := []float64{1, 0, 1, 0}
//	if err := algofht.Transform(x); err != nil {
//	    return err
//	}
//	// x == [2 2 0 0]
//
// For repeated transforms of one size, create a Plan once and reuse it; a
// Plan is safe for concurrent use. TransformRows and Plan.Rows work on a
// Matrix view, which may be contiguous, padded, or strided.
// TransformAny and TransformRowsAny accept gonum vectors and matrices.
//
// Every entry point validates its input completely before writing, so a
// returned error always means the buffer is unchanged.
package algofht
