// Command fhtbench times every Hadamard kernel strategy, checks each result
// against the O(n²) matrix-vector product, and can export the fastest choice
// per size as wisdom.
package main

import (
	"flag"
	"fmt"
	"math/rand"
	"os"
	"runtime"
	"sort"
	"strings"
	"time"

	"gonum.org/v1/gonum/floats"

	algofht "github.com/cwbudde/algo-fht"
	"github.com/cwbudde/algo-fht/internal/reference"
)

const checkTol = 1e-9

type benchResult struct {
	size     int
	strategy algofht.KernelStrategy
	nsPerOp  float64
}

func main() {
	var (
		sizeList   = flag.String("sizes", "256,1024,4096,16384", "comma-separated power-of-two sizes")
		iters      = flag.Int("iters", 200, "benchmark iterations")
		warmup     = flag.Int("warmup", 10, "warmup iterations")
		refMax     = flag.Int("refmax", 2048, "largest size timed and checked against the matrix product")
		rows       = flag.Int("rows", 0, "also time row transforms of a rows×size matrix")
		workers    = flag.Int("workers", 0, "goroutines for the row benchmark (0 = GOMAXPROCS)")
		emit       = flag.Bool("emit", false, "emit RecordBenchmarkDecision lines")
		wisdomFile = flag.String("wisdom", "", "export wisdom to file")
		seed       = flag.Int64("seed", 123, "rng seed")
	)
	flag.Parse()

	sizes, err := parseSizes(*sizeList)
	if err != nil {
		fmt.Fprintln(os.Stderr, "fhtbench:", err)
		os.Exit(2)
	}

	if len(sizes) == 0 {
		fmt.Println("no sizes specified")
		return
	}

	rnd := rand.New(rand.NewSource(*seed))

	fmt.Printf("iters=%d warmup=%d GOMAXPROCS=%d\n", *iters, *warmup, runtime.GOMAXPROCS(0))
	fmt.Printf("%8s  %10s  %14s  %8s\n", "size", "kernel", "ns/op", "check")

	var bestResults []benchResult

	for _, n := range sizes {
		src := make([]float64, n)
		for i := range src {
			src[i] = rnd.Float64()*20 - 10
		}

		var want []float64
		if n <= *refMax {
			want = reference.Transform(src)
		}

		results, err := benchmarkSize(src, want, *iters, *warmup)
		if err != nil {
			fmt.Fprintln(os.Stderr, "fhtbench:", err)
			os.Exit(1)
		}

		sort.Slice(results, func(i, j int) bool {
			return results[i].nsPerOp < results[j].nsPerOp
		})

		check := "skipped"
		if want != nil {
			check = "ok"
		}

		for _, res := range results {
			fmt.Printf("%8d  %10s  %14.1f  %8s\n", n, res.strategy, res.nsPerOp, check)
		}

		if want != nil {
			fmt.Printf("%8d  %10s  %14.1f  %8s\n", n, "matvec", timeReference(src, *iters/10+1), "-")
		}

		best := results[0]
		best.size = n
		bestResults = append(bestResults, best)

		if *emit {
			fmt.Printf("algofht.RecordBenchmarkDecision(%d, algofht.%s)\n", n, strategyConst(best.strategy))
		}

		if *rows > 0 {
			fmt.Printf("%8d  %10s  %14.1f  %8s\n", n, fmt.Sprintf("rows×%d", *rows), timeRows(rnd, *rows, n, *workers, *iters/10+1), "-")
		}
	}

	if *wisdomFile != "" {
		if err := exportWisdom(*wisdomFile, bestResults); err != nil {
			fmt.Fprintln(os.Stderr, "fhtbench: error exporting wisdom:", err)
			os.Exit(1)
		}

		fmt.Printf("\nWisdom exported to: %s\n", *wisdomFile)
	}
}

func benchmarkSize(src, want []float64, iters, warmup int) ([]benchResult, error) {
	n := len(src)
	work := make([]float64, n)

	strategies := []algofht.KernelStrategy{
		algofht.KernelRadix2,
		algofht.KernelRadix4,
		algofht.KernelCodelet,
	}

	results := make([]benchResult, 0, len(strategies))

	for _, strategy := range strategies {
		plan, err := algofht.NewPlanWithStrategy(n, strategy)
		if err != nil {
			return nil, fmt.Errorf("plan n=%d %v: %w", n, strategy, err)
		}

		if want != nil {
			copy(work, src)

			if err := plan.InPlace(work); err != nil {
				return nil, err
			}

			if !floats.EqualApprox(work, want, checkTol) {
				return nil, fmt.Errorf("n=%d %v: result differs from the matrix product", n, strategy)
			}
		}

		for range warmup {
			copy(work, src)
			_ = plan.InPlace(work)
		}

		runtime.GC()

		var elapsed time.Duration

		for range iters {
			copy(work, src)

			start := time.Now()
			_ = plan.InPlace(work)
			elapsed += time.Since(start)
		}

		results = append(results, benchResult{
			strategy: strategy,
			nsPerOp:  float64(elapsed.Nanoseconds()) / float64(iters),
		})
	}

	return results, nil
}

func timeReference(src []float64, iters int) float64 {
	start := time.Now()

	for range iters {
		_ = reference.Transform(src)
	}

	return float64(time.Since(start).Nanoseconds()) / float64(iters)
}

func timeRows(rnd *rand.Rand, rows, cols, workers, iters int) float64 {
	m := algofht.NewMatrix(rows, cols)
	for i := range m.Data {
		m.Data[i] = rnd.Float64()
	}

	start := time.Now()

	for range iters {
		_ = algofht.TransformRowsParallel(m, workers)
	}

	return float64(time.Since(start).Nanoseconds()) / float64(iters)
}

func parseSizes(list string) ([]int, error) {
	parts := strings.Split(list, ",")

	out := make([]int, 0, len(parts))
	for _, part := range parts {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}

		var n int

		_, err := fmt.Sscanf(part, "%d", &n)
		if err != nil || n <= 0 || n&(n-1) != 0 {
			return nil, fmt.Errorf("size %q is not a positive power of two", part)
		}

		out = append(out, n)
	}

	return out, nil
}

func strategyConst(strategy algofht.KernelStrategy) string {
	switch strategy {
	case algofht.KernelRadix2:
		return "KernelRadix2"
	case algofht.KernelRadix4:
		return "KernelRadix4"
	case algofht.KernelCodelet:
		return "KernelCodelet"
	default:
		return "KernelAuto"
	}
}

// exportWisdom records each size's fastest strategy and writes the default
// wisdom cache to filename.
func exportWisdom(filename string, results []benchResult) error {
	for _, res := range results {
		if err := algofht.RecordBenchmarkDecision(res.size, res.strategy); err != nil {
			return err
		}
	}

	return algofht.ExportWisdom(filename)
}
