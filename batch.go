package algofht

import (
	"runtime"

	"golang.org/x/sync/errgroup"
)

// parallelMinElements is the smallest matrix (in elements) that is split
// across goroutines. Smaller inputs run on the calling goroutine.
const parallelMinElements = 1 << 14

// TransformRowsParallel is TransformRows with rows spread over up to
// workers goroutines. workers <= 0 means runtime.GOMAXPROCS(0). The result
// is identical to TransformRows; rows are independent, so no ordering is
// observable.
func TransformRowsParallel(mat *Matrix, workers int) error {
	const op = "TransformRowsParallel"

	p, err := planForMatrix(op, mat)
	if err != nil {
		return err
	}

	parallelRows(mat.Rows, mat.Cols, workers, func(lo, hi int) {
		p.rowRange(mat, lo, hi)
	})

	return nil
}

// TransformRowSlicesParallel is TransformRowSlices with rows spread over up
// to workers goroutines.
func TransformRowSlicesParallel(rows [][]float64, workers int) error {
	const op = "TransformRowSlicesParallel"

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

	parallelRows(len(rows), cols, workers, func(lo, hi int) {
		for _, row := range rows[lo:hi] {
			p.kernel(row)
		}
	})

	return nil
}

// RowsParallel is Rows with rows spread over up to workers goroutines.
func (p *Plan) RowsParallel(mat *Matrix, workers int) error {
	if err := p.validateMatrix("Plan.RowsParallel", mat); err != nil {
		return err
	}

	parallelRows(mat.Rows, mat.Cols, workers, func(lo, hi int) {
		p.rowRange(mat, lo, hi)
	})

	return nil
}

// parallelRows calls fn on contiguous row ranges covering [0, rows) and
// returns once every call has finished.
func parallelRows(rows, cols, workers int, fn func(lo, hi int)) {
	if workers <= 0 {
		workers = runtime.GOMAXPROCS(0)
	}

	workers = min(workers, rows)
	if workers <= 1 || rows*cols < parallelMinElements {
		fn(0, rows)
		return
	}

	chunk := (rows + workers - 1) / workers

	var g errgroup.Group
	g.SetLimit(workers)

	for lo := 0; lo < rows; lo += chunk {
		hi := min(lo+chunk, rows)

		g.Go(func() error {
			fn(lo, hi)
			return nil
		})
	}

	_ = g.Wait()
}
