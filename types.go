package algofht

import "github.com/cwbudde/algo-fht/internal/fhtypes"

// KernelStrategy selects the butterfly kernel a plan binds to.
// The canonical definition is in internal/fhtypes.
//
// Every strategy computes exactly the same floating-point operations, so
// the choice affects speed only, never results.
type KernelStrategy = fhtypes.KernelStrategy

const (
	// KernelAuto picks a kernel from wisdom, then from CPU features.
	KernelAuto = fhtypes.KernelAuto
	// KernelRadix2 runs one pass over the data per stage.
	KernelRadix2 = fhtypes.KernelRadix2
	// KernelRadix4 fuses two stages per pass.
	KernelRadix4 = fhtypes.KernelRadix4
	// KernelCodelet uses fully unrolled kernels up to size 16 and radix-4 beyond.
	KernelCodelet = fhtypes.KernelCodelet
)

// ParseKernelStrategy converts a name produced by KernelStrategy.String.
func ParseKernelStrategy(name string) (KernelStrategy, bool) {
	return fhtypes.ParseKernelStrategy(name)
}
