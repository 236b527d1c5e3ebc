// Package planner decides which kernel a plan of a given size binds to.
package planner

import (
	"github.com/cwbudde/algo-fht/internal/cpu"
	"github.com/cwbudde/algo-fht/internal/fht"
	"github.com/cwbudde/algo-fht/internal/fhtypes"
)

// Estimate is the outcome of planning one transform size.
type Estimate struct {
	Strategy fhtypes.KernelStrategy
	Kernel   fhtypes.KernelFunc
	Strided  fhtypes.StridedKernelFunc
	// FromWisdom is true when the strategy came from a wisdom entry.
	FromWisdom bool
}

// EstimatePlan resolves strategy for size n. KernelAuto consults wisdom
// (when non-nil) before falling back to the feature heuristic.
func EstimatePlan(n int, strategy fhtypes.KernelStrategy, features cpu.Features, wisdom *Wisdom) Estimate {
	est := Estimate{Strided: fht.Radix2Strided}

	if strategy == fhtypes.KernelAuto && wisdom != nil {
		if s, ok := wisdom.LookupStrategy(n, CPUFeatureMask(features)); ok {
			strategy = s
			est.FromWisdom = true
		}
	}

	est.Strategy = fht.Resolve(n, strategy, features)
	est.Kernel = fht.Select(n, est.Strategy)

	return est
}
