package algofht

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/cwbudde/algo-fht/internal/cpu"
	"github.com/cwbudde/algo-fht/internal/planner"
)

// Wisdom is a type alias for the internal wisdom cache. It records which
// kernel strategy benchmarked fastest for a size on a given CPU; KernelAuto
// plans consult the default cache before the feature heuristic.
type Wisdom = planner.Wisdom

// NewWisdom creates a new empty wisdom cache.
func NewWisdom() *Wisdom {
	return planner.NewWisdom()
}

// RecordBenchmarkDecision stores strategy as the fastest choice for size n
// on the current CPU in the default wisdom cache. Plans created afterwards
// with KernelAuto pick it up.
func RecordBenchmarkDecision(n int, strategy KernelStrategy) error {
	const op = "RecordBenchmarkDecision"

	if err := validateSize(op, n); err != nil {
		return err
	}

	if !strategy.Valid() || strategy == KernelAuto {
		return opError(op, ErrInvalidStrategy, "%v", strategy)
	}

	planner.DefaultWisdom.Store(planner.WisdomEntry{
		Key:       planner.WisdomKey{Size: n, CPUFeatures: planner.CPUFeatureMask(cpu.DetectFeatures())},
		Strategy:  strategy,
		Timestamp: time.Now(),
	})

	return nil
}

// ImportWisdom loads wisdom data from a file.
// The file should be in the format produced by ExportWisdom.
func ImportWisdom(filename string) error {
	f, err := os.Open(filename)
	if err != nil {
		return fmt.Errorf("failed to open wisdom file: %w", err)
	}

	defer f.Close()

	if err := planner.DefaultWisdom.Import(f); err != nil {
		return fmt.Errorf("failed to import wisdom: %w", err)
	}

	return nil
}

// ExportWisdom saves the current wisdom cache to a file.
// The file can be loaded later with ImportWisdom.
func ExportWisdom(filename string) error {
	return ExportWisdomTo(filename, planner.DefaultWisdom)
}

// ExportWisdomTo saves a specific wisdom cache to a file.
func ExportWisdomTo(filename string, wisdom *Wisdom) error {
	file, err := os.Create(filename)
	if err != nil {
		return fmt.Errorf("failed to create wisdom file: %w", err)
	}

	if err := wisdom.Export(file); err != nil {
		file.Close()
		return fmt.Errorf("failed to export wisdom: %w", err)
	}

	if err := file.Close(); err != nil {
		return fmt.Errorf("failed to close wisdom file: %w", err)
	}

	return nil
}

// ImportWisdomFromString loads wisdom data from a string.
// This is useful for embedding wisdom data in compiled binaries.
func ImportWisdomFromString(data string) error {
	err := planner.DefaultWisdom.Import(strings.NewReader(data))
	if err != nil {
		return fmt.Errorf("failed to import wisdom from string: %w", err)
	}

	return nil
}

// ClearWisdom removes all entries from the default wisdom cache.
func ClearWisdom() {
	planner.DefaultWisdom.Clear()
}

// WisdomLen returns the number of entries in the default wisdom cache.
func WisdomLen() int {
	return planner.DefaultWisdom.Len()
}
