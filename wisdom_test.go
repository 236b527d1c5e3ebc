package algofht

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cwbudde/algo-fht/internal/planner"
)

func TestNewWisdom(t *testing.T) {
	t.Parallel()

	wisdom := NewWisdom()
	require.NotNil(t, wisdom)
	assert.Equal(t, 0, wisdom.Len())
}

func TestExportWisdomTo(t *testing.T) {
	t.Parallel()

	wisdom := NewWisdom()
	wisdom.Store(planner.WisdomEntry{
		Key:       planner.WisdomKey{Size: 128},
		Strategy:  KernelRadix2,
		Timestamp: time.Unix(1234567890, 0),
	})
	wisdom.Store(planner.WisdomEntry{
		Key:       planner.WisdomKey{Size: 256, CPUFeatures: 123},
		Strategy:  KernelCodelet,
		Timestamp: time.Unix(1234567891, 0),
	})

	filename := filepath.Join(t.TempDir(), "wisdom.txt")
	require.NoError(t, ExportWisdomTo(filename, wisdom))

	content, err := os.ReadFile(filename)
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSpace(string(content)), "\n")
	require.Len(t, lines, 2)
	assert.Equal(t, "128:0:radix2:1234567890", lines[0])
	assert.Equal(t, "256:123:codelet:1234567891", lines[1])
}

func TestExportWisdomTo_BadPath(t *testing.T) {
	t.Parallel()

	err := ExportWisdomTo(filepath.Join(t.TempDir(), "missing", "wisdom.txt"), NewWisdom())
	require.Error(t, err)
}

// The tests below touch the default wisdom cache and must not run in parallel.

//nolint:paralleltest
func TestRecordBenchmarkDecision_SteersAutoPlans(t *testing.T) {
	ClearWisdom()
	t.Cleanup(ClearWisdom)

	const n = 2048

	require.NoError(t, RecordBenchmarkDecision(n, KernelCodelet))
	assert.Equal(t, 1, WisdomLen())

	p, err := NewPlanWithStrategy(n, KernelAuto)
	require.NoError(t, err)
	assert.True(t, p.FromWisdom())
	assert.Equal(t, KernelCodelet, p.Strategy())

	// Explicit strategies ignore wisdom.
	p, err = NewPlanWithStrategy(n, KernelRadix2)
	require.NoError(t, err)
	assert.False(t, p.FromWisdom())

	require.ErrorIs(t, RecordBenchmarkDecision(3, KernelRadix2), ErrInvalidSize)
	require.ErrorIs(t, RecordBenchmarkDecision(n, KernelAuto), ErrInvalidStrategy)
}

//nolint:paralleltest
func TestImportExportWisdom_File(t *testing.T) {
	ClearWisdom()
	t.Cleanup(ClearWisdom)

	require.NoError(t, RecordBenchmarkDecision(512, KernelRadix4))
	require.NoError(t, RecordBenchmarkDecision(64, KernelRadix2))

	filename := filepath.Join(t.TempDir(), "wisdom.txt")
	require.NoError(t, ExportWisdom(filename))

	ClearWisdom()
	require.Equal(t, 0, WisdomLen())

	require.NoError(t, ImportWisdom(filename))
	assert.Equal(t, 2, WisdomLen())

	require.Error(t, ImportWisdom(filepath.Join(t.TempDir(), "nope.txt")))
}

//nolint:paralleltest
func TestImportWisdomFromString(t *testing.T) {
	ClearWisdom()
	t.Cleanup(ClearWisdom)

	data := "# generated by fhtbench\n128:0:radix2:1\n256:5:radix4:2\n"
	require.NoError(t, ImportWisdomFromString(data))
	assert.Equal(t, 2, WisdomLen())

	require.Error(t, ImportWisdomFromString("128:0:dit64:1\n"))
	assert.Equal(t, 2, WisdomLen(), "failed import must not change the cache")
}
