package algofht

import (
	"github.com/cwbudde/algo-fht/internal/cpu"
	"github.com/cwbudde/algo-fht/internal/fhtypes"
	m "github.com/cwbudde/algo-fht/internal/math"
	"github.com/cwbudde/algo-fht/internal/planner"
)

// Plan is a Hadamard transform of one fixed size with its kernel resolved.
// A Plan holds no scratch memory and is safe for concurrent use.
type Plan struct {
	n          int
	strategy   KernelStrategy
	fromWisdom bool

	kernel  fhtypes.KernelFunc
	strided fhtypes.StridedKernelFunc
}

// NewPlan creates a plan for size n using the strategy set by
// SetKernelStrategy.
//
// Returns ErrInvalidSize if n is not a positive power of 2.
func NewPlan(n int) (*Plan, error) {
	return newPlan("NewPlan", n, GetKernelStrategy())
}

// NewPlanWithStrategy creates a plan for size n bound to strategy.
//
// Returns ErrInvalidSize if n is not a positive power of 2, and
// ErrInvalidStrategy if strategy is not a declared KernelStrategy.
func NewPlanWithStrategy(n int, strategy KernelStrategy) (*Plan, error) {
	return newPlan("NewPlanWithStrategy", n, strategy)
}

func newPlan(op string, n int, strategy KernelStrategy) (*Plan, error) {
	if err := validateSize(op, n); err != nil {
		return nil, err
	}

	if !strategy.Valid() {
		return nil, opError(op, ErrInvalidStrategy, "%v", strategy)
	}

	est := planner.EstimatePlan(n, strategy, cpu.DetectFeatures(), planner.DefaultWisdom)

	return &Plan{
		n:          n,
		strategy:   est.Strategy,
		fromWisdom: est.FromWisdom,
		kernel:     est.Kernel,
		strided:    est.Strided,
	}, nil
}

// Len returns the transform size.
func (p *Plan) Len() int {
	return p.n
}

// Strategy returns the concrete strategy the plan resolved to.
// It is never KernelAuto.
func (p *Plan) Strategy() KernelStrategy {
	return p.strategy
}

// FromWisdom reports whether the strategy came from a wisdom entry.
func (p *Plan) FromWisdom() bool {
	return p.fromWisdom
}

// InPlace overwrites data with its unnormalized Hadamard transform H_n·data.
//
// Returns ErrNilSlice if data is nil and ErrLengthMismatch if
// len(data) != Len(). data is untouched on error.
func (p *Plan) InPlace(data []float64) error {
	if data == nil {
		return opError("Plan.InPlace", ErrNilSlice, "data is nil")
	}

	if len(data) != p.n {
		return opError("Plan.InPlace", ErrLengthMismatch, "len %d, plan size %d", len(data), p.n)
	}

	p.kernel(data)

	return nil
}

func validateSize(op string, n int) error {
	if !m.IsPowerOf2(n) {
		return sizeError(op, n)
	}

	return nil
}
