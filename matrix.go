package algofht

// Matrix is a 2-D view over caller-owned float64 storage. Element (i, j)
// lives at Data[i*Stride + j*Inc].
//
// A contiguous row-major matrix has Stride == Cols and Inc == 1. Padded rows
// (Stride > Cols) and transposed column-major storage (Stride == 1,
// Inc == Rows) are both valid views; the Hadamard transform is applied along
// each row regardless of layout.
type Matrix struct {
	Data   []float64
	Rows   int
	Cols   int
	Stride int // distance between the first elements of consecutive rows
	Inc    int // distance between consecutive elements of a row
}

// NewMatrix allocates a zeroed, contiguous row-major rows×cols matrix.
// It panics if rows or cols is negative.
func NewMatrix(rows, cols int) *Matrix {
	if rows < 0 || cols < 0 {
		panic("algofht: negative matrix dimension")
	}

	return &Matrix{
		Data:   make([]float64, rows*cols),
		Rows:   rows,
		Cols:   cols,
		Stride: max(cols, 1),
		Inc:    1,
	}
}

// NewMatrixFromRows copies equal-length rows into a new contiguous matrix.
// Returns ErrInvalidShape if the rows are not all the same length.
func NewMatrixFromRows(rows [][]float64) (*Matrix, error) {
	cols, err := rectangularCols("NewMatrixFromRows", rows)
	if err != nil {
		return nil, err
	}

	m := NewMatrix(len(rows), cols)
	for i, row := range rows {
		copy(m.Data[i*m.Stride:], row)
	}

	return m, nil
}

// NewMatrixView wraps data without copying. The view is validated the same
// way the row transforms validate it, except that Cols need not be a power
// of two here.
func NewMatrixView(data []float64, rows, cols, stride, inc int) (*Matrix, error) {
	m := &Matrix{Data: data, Rows: rows, Cols: cols, Stride: stride, Inc: inc}
	if err := m.validateLayout("NewMatrixView"); err != nil {
		return nil, err
	}

	return m, nil
}

// At returns element (i, j). It panics if the indices are out of range.
func (m *Matrix) At(i, j int) float64 {
	m.checkIndex(i, j)
	return m.Data[i*m.Stride+j*m.Inc]
}

// Set stores v at element (i, j). It panics if the indices are out of range.
func (m *Matrix) Set(i, j int, v float64) {
	m.checkIndex(i, j)
	m.Data[i*m.Stride+j*m.Inc] = v
}

// Row copies row i into dst, allocating when dst is too short, and returns it.
func (m *Matrix) Row(dst []float64, i int) []float64 {
	if i < 0 || i >= m.Rows {
		panic("algofht: row index out of range")
	}

	if cap(dst) < m.Cols {
		dst = make([]float64, m.Cols)
	}

	dst = dst[:m.Cols]

	base := i * m.Stride
	for j := range dst {
		dst[j] = m.Data[base+j*m.Inc]
	}

	return dst
}

func (m *Matrix) checkIndex(i, j int) {
	if i < 0 || i >= m.Rows || j < 0 || j >= m.Cols {
		panic("algofht: matrix index out of range")
	}
}

// validateLayout checks everything except the power-of-two column count:
// non-negative dimensions, positive strides, rows that do not alias each
// other, and every addressed element inside Data.
func (m *Matrix) validateLayout(op string) error {
	if m == nil {
		return opError(op, ErrNilSlice, "matrix is nil")
	}

	if m.Rows < 0 || m.Cols < 0 {
		return opError(op, ErrInvalidShape, "dimensions %dx%d", m.Rows, m.Cols)
	}

	if m.Rows == 0 || m.Cols == 0 {
		return nil
	}

	if m.Stride < 1 || m.Inc < 1 {
		return opError(op, ErrInvalidStride, "stride %d, inc %d", m.Stride, m.Inc)
	}

	if !disjointRows(m.Rows, m.Cols, m.Stride, m.Inc) {
		return opError(op, ErrInvalidStride, "rows alias each other with stride %d, inc %d for %dx%d",
			m.Stride, m.Inc, m.Rows, m.Cols)
	}

	rowSpan, ok := span(m.Cols, m.Inc)
	if !ok {
		return opError(op, ErrInvalidStride, "inc %d overflows for %d columns", m.Inc, m.Cols)
	}

	maxRow := m.Rows - 1
	if maxRow > 0 && maxRow > (maxInt-rowSpan)/m.Stride {
		return opError(op, ErrInvalidStride, "stride %d overflows for %d rows", m.Stride, m.Rows)
	}

	required := maxRow*m.Stride + rowSpan
	if len(m.Data) < required {
		return opError(op, ErrLengthMismatch, "len %d, need %d for %dx%d view", len(m.Data), required, m.Rows, m.Cols)
	}

	return nil
}

// disjointRows reports whether a rows×cols view never addresses the same
// element from two different rows. Accepted layouts are rows laid out one
// after another (stride >= cols*inc) and rows interleaved element by element
// (inc >= rows*stride).
func disjointRows(rows, cols, stride, inc int) bool {
	if rows == 1 || cols == 1 {
		return true
	}

	if stride/inc >= cols {
		return true
	}

	return inc/stride >= rows
}
