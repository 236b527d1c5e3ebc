// Package cpu reports the processor capabilities that influence which
// Hadamard kernel a plan binds to.
package cpu

import (
	"runtime"
	"sync"

	"golang.org/x/sys/cpu"
)

// Features describes CPU capabilities relevant to kernel selection.
type Features struct {
	HasSSE2      bool
	HasAVX       bool
	HasAVX2      bool
	HasAVX512    bool
	HasNEON      bool
	ForceGeneric bool
	Architecture string
}

// HasWideVectors reports whether the core has 256-bit (or wider) vector
// units, or NEON. Such cores keep four butterfly operands in registers
// comfortably, which favours the fused two-stage pass.
func (f Features) HasWideVectors() bool {
	if f.ForceGeneric {
		return false
	}

	return f.HasAVX2 || f.HasAVX512 || f.HasNEON
}

var (
	forcedMu sync.RWMutex
	forced   *Features
)

// DetectFeatures reports the available CPU features for the current process.
// A value installed with SetForcedFeatures takes precedence.
func DetectFeatures() Features {
	forcedMu.RLock()
	f := forced
	forcedMu.RUnlock()

	if f != nil {
		return *f
	}

	return detectFeaturesImpl()
}

// SetForcedFeatures overrides detection until ResetDetection is called.
// Intended for tests that must exercise every selection path.
func SetForcedFeatures(f Features) {
	forcedMu.Lock()
	forced = &f
	forcedMu.Unlock()
}

// ResetDetection removes an override installed by SetForcedFeatures.
func ResetDetection() {
	forcedMu.Lock()
	forced = nil
	forcedMu.Unlock()
}

func detectFeaturesImpl() Features {
	return Features{
		HasSSE2:      cpu.X86.HasSSE2,
		HasAVX:       cpu.X86.HasAVX,
		HasAVX2:      cpu.X86.HasAVX2,
		HasAVX512:    cpu.X86.HasAVX512,
		HasNEON:      cpu.ARM64.HasASIMD,
		Architecture: runtime.GOARCH,
	}
}
