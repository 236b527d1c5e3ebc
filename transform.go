package algofht

// Transform overwrites x with its unnormalized Hadamard transform H_n·x,
// where n = len(x) and H_n has ±1 entries (no 1/√n scaling). Applying
// Transform twice yields n·x.
//
// Returns ErrInvalidSize if len(x) is not a positive power of 2; x is
// untouched in that case. A single-element slice is returned unchanged.
func Transform(x []float64) error {
	const op = "Transform"

	p, err := newPlan(op, len(x), GetKernelStrategy())
	if err != nil {
		return err
	}

	p.kernel(x)

	return nil
}

// TransformStrided transforms the n elements x[0], x[stride], ...,
// x[(n-1)*stride] in place, leaving the elements between them untouched.
//
// Returns ErrInvalidSize if n is not a positive power of 2, and the errors
// of Plan.InPlaceStrided otherwise.
func TransformStrided(x []float64, n, stride int) error {
	p, err := newPlan("TransformStrided", n, GetKernelStrategy())
	if err != nil {
		return err
	}

	if err := p.InPlaceStrided(x, stride); err != nil {
		return err
	}

	return nil
}
