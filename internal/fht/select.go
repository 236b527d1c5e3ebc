package fht

import (
	"github.com/cwbudde/algo-fht/internal/cpu"
	"github.com/cwbudde/algo-fht/internal/fhtypes"
)

// radix4Threshold is the smallest size where KernelAuto prefers the fused
// pass on cores with wide vector units. Below it the extra stage split
// costs more than the saved pass over memory.
const radix4Threshold = 64

// Resolve maps a requested strategy to a concrete one for size n.
// KernelAuto picks codelets for tiny sizes and otherwise radix-4 on cores
// with wide vector units, radix-2 elsewhere. Concrete strategies pass
// through unchanged.
func Resolve(n int, strategy fhtypes.KernelStrategy, features cpu.Features) fhtypes.KernelStrategy {
	if strategy != fhtypes.KernelAuto {
		return strategy
	}

	if n <= MaxCodeletSize && !features.ForceGeneric {
		return fhtypes.KernelCodelet
	}

	if n >= radix4Threshold && features.HasWideVectors() {
		return fhtypes.KernelRadix4
	}

	return fhtypes.KernelRadix2
}

// Select returns the contiguous kernel that strategy binds to for size n.
// KernelAuto must be resolved first; Select treats it as radix-2.
func Select(n int, strategy fhtypes.KernelStrategy) fhtypes.KernelFunc {
	switch strategy {
	case fhtypes.KernelCodelet:
		if k := codeletFor(n); k != nil {
			return k
		}

		return Radix4
	case fhtypes.KernelRadix4:
		return Radix4
	default:
		return Radix2
	}
}
