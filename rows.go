package algofht

// TransformRows applies the Hadamard transform independently to every row of
// mat, in place. The column count must be a positive power of 2; a matrix
// with zero rows is a no-op.
//
// Validation order: nil matrix (ErrNilSlice), negative dimensions
// (ErrInvalidShape), layout (ErrInvalidStride, ErrLengthMismatch), then
// column count (ErrInvalidSize). Nothing is written unless every check
// passes.
func TransformRows(mat *Matrix) error {
	const op = "TransformRows"

	p, err := planForMatrix(op, mat)
	if err != nil {
		return err
	}

	p.rowRange(mat, 0, mat.Rows)

	return nil
}

// TransformRowSlices applies the Hadamard transform to every row in place.
// All rows must have the same length (ErrInvalidShape otherwise) and that
// length must be a positive power of 2. An empty row set is a no-op.
func TransformRowSlices(rows [][]float64) error {
	const op = "TransformRowSlices"

	if len(rows) == 0 {
		return nil
	}

	cols, err := rectangularCols(op, rows)
	if err != nil {
		return err
	}

	p, err := newPlan(op, cols, GetKernelStrategy())
	if err != nil {
		return err
	}

	for _, row := range rows {
		p.kernel(row)
	}

	return nil
}

// Rows applies the plan to every row of mat in place.
//
// Returns ErrLengthMismatch if mat.Cols != Len(), plus the layout errors
// documented on TransformRows.
func (p *Plan) Rows(mat *Matrix) error {
	if err := p.validateMatrix("Plan.Rows", mat); err != nil {
		return err
	}

	p.rowRange(mat, 0, mat.Rows)

	return nil
}

func planForMatrix(op string, mat *Matrix) (*Plan, error) {
	if err := mat.validateLayout(op); err != nil {
		return nil, err
	}

	return newPlan(op, mat.Cols, GetKernelStrategy())
}

func (p *Plan) validateMatrix(op string, mat *Matrix) error {
	if err := mat.validateLayout(op); err != nil {
		return err
	}

	if mat.Cols != p.n {
		return opError(op, ErrLengthMismatch, "matrix has %d columns, plan size %d", mat.Cols, p.n)
	}

	return nil
}

// rowRange transforms rows [lo, hi) of an already validated matrix.
func (p *Plan) rowRange(mat *Matrix, lo, hi int) {
	n := p.n

	if mat.Inc == 1 {
		for i := lo; i < hi; i++ {
			base := i * mat.Stride
			p.kernel(mat.Data[base : base+n : base+n])
		}

		return
	}

	for i := lo; i < hi; i++ {
		p.strided(mat.Data[i*mat.Stride:], n, mat.Inc)
	}
}

// rectangularCols returns the common row length, or ErrInvalidShape
// naming the first row that differs.
func rectangularCols(op string, rows [][]float64) (int, error) {
	if len(rows) == 0 {
		return 0, nil
	}

	cols := len(rows[0])
	for i, row := range rows[1:] {
		if len(row) != cols {
			return 0, opError(op, ErrInvalidShape, "row %d has %d columns, row 0 has %d", i+1, len(row), cols)
		}
	}

	return cols, nil
}
