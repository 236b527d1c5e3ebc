package planner

import (
	"bufio"
	"fmt"
	"io"
	"sort"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/cwbudde/algo-fht/internal/cpu"
	"github.com/cwbudde/algo-fht/internal/fhtypes"
	m "github.com/cwbudde/algo-fht/internal/math"
)

// WisdomKey identifies a benchmarked configuration.
type WisdomKey struct {
	Size        int
	CPUFeatures uint64
}

// WisdomEntry records the fastest strategy measured for a key.
type WisdomEntry struct {
	Key       WisdomKey
	Strategy  fhtypes.KernelStrategy
	Timestamp time.Time
}

// Wisdom is a concurrency-safe cache of benchmark decisions.
//
// The text format is one entry per line:
//
//	size:cpufeatures:strategy:unixseconds
//
// Blank lines and lines starting with '#' are ignored.
type Wisdom struct {
	mu      sync.RWMutex
	entries map[WisdomKey]WisdomEntry
}

// DefaultWisdom is the process-wide cache consulted by KernelAuto plans.
var DefaultWisdom = NewWisdom()

// NewWisdom creates an empty cache.
func NewWisdom() *Wisdom {
	return &Wisdom{entries: make(map[WisdomKey]WisdomEntry)}
}

// CPUFeatureMask packs the features that influence kernel speed into a key.
func CPUFeatureMask(f cpu.Features) uint64 {
	var mask uint64

	for i, set := range []bool{f.HasSSE2, f.HasAVX, f.HasAVX2, f.HasAVX512, f.HasNEON, f.ForceGeneric} {
		if set {
			mask |= 1 << i
		}
	}

	return mask
}

// Store adds or replaces an entry.
func (w *Wisdom) Store(entry WisdomEntry) {
	w.mu.Lock()
	w.entries[entry.Key] = entry
	w.mu.Unlock()
}

// Lookup returns the entry for key, if any.
func (w *Wisdom) Lookup(key WisdomKey) (WisdomEntry, bool) {
	w.mu.RLock()
	entry, ok := w.entries[key]
	w.mu.RUnlock()

	return entry, ok
}

// LookupStrategy returns the recorded strategy for size n on a CPU with the
// given feature mask.
func (w *Wisdom) LookupStrategy(n int, cpuFeatures uint64) (fhtypes.KernelStrategy, bool) {
	entry, ok := w.Lookup(WisdomKey{Size: n, CPUFeatures: cpuFeatures})
	if !ok {
		return fhtypes.KernelAuto, false
	}

	return entry.Strategy, true
}

// Len returns the number of entries.
func (w *Wisdom) Len() int {
	w.mu.RLock()
	defer w.mu.RUnlock()

	return len(w.entries)
}

// Clear removes all entries.
func (w *Wisdom) Clear() {
	w.mu.Lock()
	w.entries = make(map[WisdomKey]WisdomEntry)
	w.mu.Unlock()
}

// Export writes every entry, sorted by size then feature mask.
func (w *Wisdom) Export(out io.Writer) error {
	w.mu.RLock()
	entries := make([]WisdomEntry, 0, len(w.entries))

	for _, e := range w.entries {
		entries = append(entries, e)
	}
	w.mu.RUnlock()

	sort.Slice(entries, func(i, j int) bool {
		if entries[i].Key.Size != entries[j].Key.Size {
			return entries[i].Key.Size < entries[j].Key.Size
		}

		return entries[i].Key.CPUFeatures < entries[j].Key.CPUFeatures
	})

	bw := bufio.NewWriter(out)

	for _, e := range entries {
		_, err := fmt.Fprintf(bw, "%d:%d:%s:%d\n", e.Key.Size, e.Key.CPUFeatures, e.Strategy, e.Timestamp.Unix())
		if err != nil {
			return err
		}
	}

	return bw.Flush()
}

// Import reads entries written by Export and merges them into w.
// Nothing is stored if any line is malformed.
func (w *Wisdom) Import(in io.Reader) error {
	var parsed []WisdomEntry

	sc := bufio.NewScanner(in)
	lineNo := 0

	for sc.Scan() {
		lineNo++

		line := strings.TrimSpace(sc.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		entry, err := parseWisdomLine(line)
		if err != nil {
			return fmt.Errorf("wisdom line %d: %w", lineNo, err)
		}

		parsed = append(parsed, entry)
	}

	if err := sc.Err(); err != nil {
		return err
	}

	w.mu.Lock()
	for _, e := range parsed {
		w.entries[e.Key] = e
	}
	w.mu.Unlock()

	return nil
}

func parseWisdomLine(line string) (WisdomEntry, error) {
	fields := strings.Split(line, ":")
	if len(fields) != 4 {
		return WisdomEntry{}, fmt.Errorf("want 4 fields, got %d in %q", len(fields), line)
	}

	size, err := strconv.Atoi(fields[0])
	if err != nil {
		return WisdomEntry{}, fmt.Errorf("size: %w", err)
	}

	if !m.IsPowerOf2(size) {
		return WisdomEntry{}, fmt.Errorf("size %d is not a power of two", size)
	}

	features, err := strconv.ParseUint(fields[1], 10, 64)
	if err != nil {
		return WisdomEntry{}, fmt.Errorf("cpu features: %w", err)
	}

	strategy, ok := fhtypes.ParseKernelStrategy(fields[2])
	if !ok || strategy == fhtypes.KernelAuto {
		return WisdomEntry{}, fmt.Errorf("unknown strategy %q", fields[2])
	}

	ts, err := strconv.ParseInt(fields[3], 10, 64)
	if err != nil {
		return WisdomEntry{}, fmt.Errorf("timestamp: %w", err)
	}

	return WisdomEntry{
		Key:       WisdomKey{Size: size, CPUFeatures: features},
		Strategy:  strategy,
		Timestamp: time.Unix(ts, 0),
	}, nil
}
