// Package fhtypes holds the small shared types used by the planner and the
// kernels.
package fhtypes

import (
	"fmt"
	"strings"
)

// KernelStrategy controls which butterfly kernel a plan binds to.
// Every strategy produces bit-identical results.
type KernelStrategy uint32

const (
	KernelAuto    KernelStrategy = iota
	KernelRadix2                 // One pass per stage
	KernelRadix4                 // Two stages fused per pass
	KernelCodelet                // Fully unrolled small sizes, radix-4 beyond
)

// String returns a human-readable name for the strategy.
func (s KernelStrategy) String() string {
	switch s {
	case KernelAuto:
		return "auto"
	case KernelRadix2:
		return "radix2"
	case KernelRadix4:
		return "radix4"
	case KernelCodelet:
		return "codelet"
	default:
		return fmt.Sprintf("KernelStrategy(%d)", uint32(s))
	}
}

// Valid reports whether s is one of the declared strategies.
func (s KernelStrategy) Valid() bool {
	return s <= KernelCodelet
}

// ParseKernelStrategy is the inverse of String.
func ParseKernelStrategy(name string) (KernelStrategy, bool) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "auto":
		return KernelAuto, true
	case "radix2":
		return KernelRadix2, true
	case "radix4":
		return KernelRadix4, true
	case "codelet":
		return KernelCodelet, true
	default:
		return KernelAuto, false
	}
}

// KernelFunc transforms a contiguous power-of-two slice in place.
// It performs no validation; len(x) determines the transform size.
type KernelFunc func(x []float64)

// StridedKernelFunc transforms the n elements x[0], x[inc], ..., x[(n-1)*inc]
// in place. The caller guarantees len(x) > (n-1)*inc.
type StridedKernelFunc func(x []float64, n, inc int)
