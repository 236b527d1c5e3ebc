package algofht

import "sync/atomic"

var kernelStrategy atomic.Uint32

// SetKernelStrategy sets the strategy used by NewPlan and the package-level
// transform functions. It does not affect plans that already exist.
func SetKernelStrategy(strategy KernelStrategy) {
	kernelStrategy.Store(uint32(strategy))
}

// GetKernelStrategy returns the strategy set by SetKernelStrategy.
// The default is KernelAuto.
func GetKernelStrategy() KernelStrategy {
	return KernelStrategy(kernelStrategy.Load())
}
