package algofht

import (
	"gonum.org/v1/gonum/blas/blas64"
	"gonum.org/v1/gonum/mat"
)

// TransformAny transforms a 1-D float64 buffer in place. It is the boundary
// for callers holding host-native array types:
//
//   - []float64
//   - *mat.VecDense and blas64.Vector (any positive increment)
//
// A 2-D buffer ([][]float64, *Matrix, *mat.Dense, blas64.General) returns
// ErrInvalidShape; any other type returns ErrInvalidType. Checks run in the
// order type, shape, size, and the buffer is untouched on error.
func TransformAny(v any) error {
	const op = "TransformAny"

	switch t := v.(type) {
	case nil:
		return opError(op, ErrNilSlice, "buffer is nil")
	case []float64:
		return Transform(t)
	case *mat.VecDense:
		if t == nil {
			return opError(op, ErrNilSlice, "*mat.VecDense is nil")
		}

		return transformVector(op, t.RawVector())
	case blas64.Vector:
		return transformVector(op, t)
	case [][]float64, *Matrix, Matrix, *mat.Dense, blas64.General:
		return shapeError(op, v, 2)
	default:
		return typeError(op, v)
	}
}

// TransformRowsAny transforms every row of a 2-D float64 buffer in place:
//
//   - *Matrix or Matrix (a Matrix value shares its Data with the caller)
//   - [][]float64
//   - *mat.Dense and blas64.General
//
// A 1-D buffer returns ErrInvalidShape; any other type returns
// ErrInvalidType.
func TransformRowsAny(v any) error {
	const op = "TransformRowsAny"

	switch t := v.(type) {
	case nil:
		return opError(op, ErrNilSlice, "buffer is nil")
	case *Matrix:
		return TransformRows(t)
	case Matrix:
		return TransformRows(&t)
	case [][]float64:
		return TransformRowSlices(t)
	case *mat.Dense:
		if t == nil {
			return opError(op, ErrNilSlice, "*mat.Dense is nil")
		}

		return TransformRows(matrixFromGeneral(t.RawMatrix()))
	case blas64.General:
		return TransformRows(matrixFromGeneral(t))
	case []float64, *mat.VecDense, blas64.Vector:
		return shapeError(op, v, 1)
	default:
		return typeError(op, v)
	}
}

func transformVector(op string, v blas64.Vector) error {
	p, err := newPlan(op, v.N, GetKernelStrategy())
	if err != nil {
		return err
	}

	return p.InPlaceStrided(v.Data, v.Inc)
}

func matrixFromGeneral(g blas64.General) *Matrix {
	return &Matrix{Data: g.Data, Rows: g.Rows, Cols: g.Cols, Stride: g.Stride, Inc: 1}
}
