package algofht

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/blas/blas64"
	"gonum.org/v1/gonum/mat"

	"github.com/cwbudde/algo-fht/internal/reference"
)

func TestTransformAny_Float64Slice(t *testing.T) {
	t.Parallel()

	x := []float64{1, 0, 1, 0}
	require.NoError(t, TransformAny(x))
	assert.Equal(t, []float64{2, 2, 0, 0}, x)
}

func TestTransformAny_VecDense(t *testing.T) {
	t.Parallel()

	x := randomFloat64(16, 3)
	want := reference.Transform(x)

	v := mat.NewVecDense(len(x), x)
	require.NoError(t, TransformAny(v))
	requireApprox(t, want, x)
}

// TestTransformAny_StridedColumn transforms one column of a row-major
// gonum matrix through its strided VecDense view.
func TestTransformAny_StridedColumn(t *testing.T) {
	t.Parallel()

	const rows, cols = 8, 3

	d := mat.NewDense(rows, cols, randomFloat64(rows*cols, 12))
	orig := mat.DenseCopyOf(d)

	col := mat.Col(nil, 1, d)
	want := reference.Transform(col)

	view, ok := d.ColView(1).(*mat.VecDense)
	require.True(t, ok)
	require.NoError(t, TransformAny(view))

	requireApprox(t, want, mat.Col(nil, 1, d))

	for i := range rows {
		assert.Equal(t, orig.At(i, 0), d.At(i, 0))
		assert.Equal(t, orig.At(i, 2), d.At(i, 2))
	}
}

func TestTransformAny_BlasVector(t *testing.T) {
	t.Parallel()

	data := []float64{1, 99, 1, 99, 1, 99, 1}
	require.NoError(t, TransformAny(blas64.Vector{N: 4, Data: data, Inc: 2}))
	assert.Equal(t, []float64{4, 99, 0, 99, 0, 99, 0}, data)

	require.ErrorIs(t, TransformAny(blas64.Vector{N: 3, Data: data, Inc: 2}), ErrInvalidSize)
	require.ErrorIs(t, TransformAny(blas64.Vector{N: 4, Data: data, Inc: -1}), ErrInvalidStride)
}

func TestTransformAny_Errors(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		v    any
		want error
	}{
		{"nil", nil, ErrNilSlice},
		{"float32", []float32{1, 2, 3, 4}, ErrInvalidType},
		{"int", []int{1, 2}, ErrInvalidType},
		{"complex", []complex128{1, 2}, ErrInvalidType},
		{"float32 matrix", [][]float32{{1, 2}}, ErrInvalidType},
		{"string", "1,2,3,4", ErrInvalidType},
		{"2-D slices", [][]float64{{1, 2}}, ErrInvalidShape},
		{"matrix", NewMatrix(1, 4), ErrInvalidShape},
		{"dense", mat.NewDense(2, 2, nil), ErrInvalidShape},
		{"nil vecdense", (*mat.VecDense)(nil), ErrNilSlice},
		{"bad size", []float64{1, 2, 3}, ErrInvalidSize},
		{"empty", []float64{}, ErrInvalidSize},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			err := TransformAny(tt.v)
			require.ErrorIs(t, err, tt.want)
		})
	}
}

func TestTransformAny_ShapeErrorReportsDims(t *testing.T) {
	t.Parallel()

	err := TransformAny([][]float64{{1, 1}})

	var verr *ValidationError
	require.True(t, errors.As(err, &verr))
	assert.Equal(t, 2, verr.Dims)
	assert.Equal(t, "[][]float64", verr.Type)

	err = TransformRowsAny([]float64{1, 1})
	require.True(t, errors.As(err, &verr))
	assert.Equal(t, 1, verr.Dims)
}

func TestTransformRowsAny_Kinds(t *testing.T) {
	t.Parallel()

	src := [][]float64{
		{1, 1, 1, 1},
		{1, -1, 1, -1},
	}
	want := [][]float64{
		{4, 0, 0, 0},
		{0, 4, 0, 0},
	}

	t.Run("slices", func(t *testing.T) {
		t.Parallel()

		rows := cloneRows(src)
		require.NoError(t, TransformRowsAny(rows))
		assert.Equal(t, want, rows)
	})

	t.Run("matrix pointer", func(t *testing.T) {
		t.Parallel()

		m, err := NewMatrixFromRows(src)
		require.NoError(t, err)
		require.NoError(t, TransformRowsAny(m))
		assert.Equal(t, want[1], m.Row(nil, 1))
	})

	t.Run("matrix value", func(t *testing.T) {
		t.Parallel()

		m, err := NewMatrixFromRows(src)
		require.NoError(t, err)
		require.NoError(t, TransformRowsAny(*m))
		assert.Equal(t, want[0], m.Row(nil, 0))
	})

	t.Run("dense", func(t *testing.T) {
		t.Parallel()

		d := mat.NewDense(2, 4, []float64{1, 1, 1, 1, 1, -1, 1, -1})
		require.NoError(t, TransformRowsAny(d))
		assert.Equal(t, want[0], mat.Row(nil, 0, d))
		assert.Equal(t, want[1], mat.Row(nil, 1, d))
	})

	t.Run("blas general", func(t *testing.T) {
		t.Parallel()

		g := blas64.General{Rows: 2, Cols: 4, Stride: 4, Data: []float64{1, 1, 1, 1, 1, -1, 1, -1}}
		require.NoError(t, TransformRowsAny(g))
		assert.Equal(t, []float64{4, 0, 0, 0, 0, 4, 0, 0}, g.Data)
	})
}

// TestTransformRowsAny_DenseSubmatrix checks a gonum slice view, whose rows
// are padded by the parent's stride.
func TestTransformRowsAny_DenseSubmatrix(t *testing.T) {
	t.Parallel()

	parent := mat.NewDense(4, 6, randomFloat64(24, 5))
	orig := mat.DenseCopyOf(parent)

	sub, ok := parent.Slice(1, 3, 1, 5).(*mat.Dense)
	require.True(t, ok)

	want := [][]float64{
		reference.Transform(mat.Row(nil, 0, sub)),
		reference.Transform(mat.Row(nil, 1, sub)),
	}

	require.NoError(t, TransformRowsAny(sub))

	for i := range want {
		requireApprox(t, want[i], mat.Row(nil, i, sub))
	}

	for i := range 4 {
		for j := range 6 {
			inside := i >= 1 && i < 3 && j >= 1 && j < 5
			if !inside {
				assert.Equal(t, orig.At(i, j), parent.At(i, j), "(%d,%d) outside the view touched", i, j)
			}
		}
	}
}

func TestTransformRowsAny_Errors(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		v    any
		want error
	}{
		{"nil", nil, ErrNilSlice},
		{"float32 rows", [][]float32{{1, 2}}, ErrInvalidType},
		{"int", []int{1}, ErrInvalidType},
		{"vector", []float64{1, 2}, ErrInvalidShape},
		{"vecdense", mat.NewVecDense(2, nil), ErrInvalidShape},
		{"blas vector", blas64.Vector{N: 2, Inc: 1, Data: []float64{1, 2}}, ErrInvalidShape},
		{"nil dense", (*mat.Dense)(nil), ErrNilSlice},
		{"bad cols", mat.NewDense(2, 3, nil), ErrInvalidSize},
		{"jagged", [][]float64{{1, 2}, {1}}, ErrInvalidShape},
		{"nil matrix", (*Matrix)(nil), ErrNilSlice},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			require.ErrorIs(t, TransformRowsAny(tt.v), tt.want)
		})
	}
}
