// Command benchmark sweeps Apriori parameter combinations against a fixed
// dataset, recording timing, result cardinality, and memory usage for each
// combination — adapted from the teacher's fixed-threshold sweep to run
// through apriori.Mine. No target counts are set, so the loop controllers
// make a single pass at each (support, confidence) pair.
package main

import (
	"context"
	"encoding/csv"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"runtime"
	"runtime/pprof"
	"strings"
	"time"

	"github.com/RiceaRaul/apriori"
	"github.com/RiceaRaul/apriori/datasource"
	"github.com/RiceaRaul/apriori/internal/telemetry"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/rs/zerolog"
)

type benchmarkResult struct {
	minSupport    float64
	minConfidence float64
	frequentSets  int
	ruleCount     int
	elapsed       time.Duration
	memoryBytes   uint64
}

func main() {
	if len(os.Args) < 2 {
		fmt.Println("Usage: benchmark <csv_file> [output_file]")
		fmt.Println("  - csv_file: path to a basket/item CSV file")
		fmt.Println("  - output_file: where to write the sweep results (default: benchmark_results.csv)")
		os.Exit(1)
	}

	inputFile := os.Args[1]
	if _, err := os.Stat(inputFile); os.IsNotExist(err) {
		log.Fatalf("input file %s does not exist", inputFile)
	}

	outputFile := "benchmark_results.csv"
	if len(os.Args) > 2 {
		outputFile = os.Args[2]
	}

	reg := prometheus.NewRegistry()
	tel := telemetry.New(zerolog.WarnLevel, reg)

	fmt.Println("loading dataset...")
	source, _, err := datasource.LoadCSV(inputFile)
	if err != nil {
		log.Fatalf("loading dataset: %v", err)
	}
	fmt.Printf("dataset loaded with %d transactions\n\n", source.Len())

	minSupports := []float64{0.2, 0.1, 0.05, 0.02, 0.01}
	minConfidences := []float64{0.7, 0.5, 0.3, 0.2, 0.1}

	results := make([]benchmarkResult, 0, len(minSupports)*len(minConfidences))

	fmt.Printf("%-10s %-10s %-10s %-10s %-10s %-12s\n",
		"Support", "Confidence", "Itemsets", "Rules", "Elapsed", "MemoryMB")
	fmt.Println(strings.Repeat("-", 70))

	for _, minSupport := range minSupports {
		for _, minConfidence := range minConfidences {
			result := runOnce(source, minSupport, minConfidence, tel)
			results = append(results, result)

			fmt.Printf("%-10.4f %-10.4f %-10d %-10d %-10s %-12.2f\n",
				result.minSupport, result.minConfidence, result.frequentSets,
				result.ruleCount, result.elapsed, float64(result.memoryBytes)/(1024*1024))

			runtime.GC()
		}
	}

	if err := saveResultsCSV(results, outputFile); err != nil {
		log.Fatalf("saving results: %v", err)
	}
	fmt.Printf("\nbenchmark complete; results saved to %s\n", outputFile)

	memProfile, err := os.Create("memory_profile.prof")
	if err != nil {
		log.Fatalf("could not create memory profile: %v", err)
	}
	defer memProfile.Close()
	runtime.GC()
	if err := pprof.WriteHeapProfile(memProfile); err != nil {
		log.Fatalf("could not write memory profile: %v", err)
	}
}

func runOnce(source apriori.TransactionSource, minSupport, minConfidence float64, tel *telemetry.Telemetry) benchmarkResult {
	start := time.Now()

	cfg, err := apriori.NewConfigBuilder().
		MinSupport(minSupport).
		MaxSupport(1.0).
		GenerateRules(true).
		MinConfidence(minConfidence).
		MaxConfidence(1.0).
		Build()
	if err != nil {
		log.Fatalf("invalid benchmark configuration: %v", err)
	}

	out, err := apriori.Mine(context.Background(), cfg, source, tel)
	if err != nil {
		log.Fatalf("mining failed: %v", err)
	}

	var mem runtime.MemStats
	runtime.ReadMemStats(&mem)

	return benchmarkResult{
		minSupport:    minSupport,
		minConfidence: minConfidence,
		frequentSets:  out.FrequentItemSets().Len(),
		ruleCount:     out.Rules().Len(),
		elapsed:       time.Since(start),
		memoryBytes:   mem.Alloc,
	}
}

func saveResultsCSV(results []benchmarkResult, outputFile string) error {
	if dir := filepath.Dir(outputFile); dir != "" && dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("creating directory: %w", err)
		}
	}

	file, err := os.Create(outputFile)
	if err != nil {
		return fmt.Errorf("creating output file: %w", err)
	}
	defer file.Close()

	w := csv.NewWriter(file)
	defer w.Flush()

	header := []string{"min_support", "min_confidence", "itemset_count", "rule_count", "elapsed_ms", "memory_mb"}
	if err := w.Write(header); err != nil {
		return fmt.Errorf("writing header: %w", err)
	}
	for _, r := range results {
		row := []string{
			fmt.Sprintf("%.6f", r.minSupport),
			fmt.Sprintf("%.6f", r.minConfidence),
			fmt.Sprintf("%d", r.frequentSets),
			fmt.Sprintf("%d", r.ruleCount),
			fmt.Sprintf("%d", r.elapsed.Milliseconds()),
			fmt.Sprintf("%.2f", float64(r.memoryBytes)/(1024*1024)),
		}
		if err := w.Write(row); err != nil {
			return fmt.Errorf("writing result row: %w", err)
		}
	}
	return nil
}
