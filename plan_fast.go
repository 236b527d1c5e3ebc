package algofht

import "github.com/cwbudde/algo-fht/internal/fhtypes"

// FastPlan provides zero-overhead transforms for latency-critical loops.
// All validation and dispatch is resolved at creation time.
//
// Unlike Plan, FastPlan performs no validation on InPlace calls; the caller
// guarantees len(data) == Len().
type FastPlan struct {
	n      int
	kernel fhtypes.KernelFunc
}

// NewFastPlan creates a validation-free plan for size n.
// Returns ErrInvalidSize if n is not a positive power of 2.
//
// Example:
//
//	fp, err := algofht.NewFastPlan(1024)
//	if err != nil {
//	    return err
//	}
//	for _, frame := range frames {
//	    fp.InPlace(frame)
//	}
func NewFastPlan(n int) (*FastPlan, error) {
	p, err := newPlan("NewFastPlan", n, GetKernelStrategy())
	if err != nil {
		return nil, err
	}

	return &FastPlan{n: p.n, kernel: p.kernel}, nil
}

// Len returns the transform size.
func (fp *FastPlan) Len() int {
	return fp.n
}

// InPlace transforms data without validation.
// Caller guarantees: len(data) == Len().
func (fp *FastPlan) InPlace(data []float64) {
	fp.kernel(data[:fp.n:fp.n])
}
