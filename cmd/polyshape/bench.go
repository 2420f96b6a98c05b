package main

import (
	"fmt"
	"testing"

	"github.com/jward/polyshape"
	"github.com/spf13/cobra"
)

var (
	flagN    int
	flagSeed int64
)

var benchCmd = &cobra.Command{
	Use:   "bench",
	Short: "Compare the cost of each dispatch strategy",
	Long:  "Sums the areas of a random workload with direct calls, generic static dispatch, interface dispatch, handles and the tagged union.",
	Args:  cobra.NoArgs,
	RunE:  runBench,
}

func init() {
	benchCmd.Flags().IntVar(&flagN, "n", polyshape.DefaultWorkloadSize, "number of shapes in the workload")
	benchCmd.Flags().Int64Var(&flagSeed, "seed", polyshape.DefaultWorkloadSeed, "random seed for the workload")
}

func runBench(cmd *cobra.Command, args []string) error {
	if flagN <= 0 {
		return outputError(cmd, fmt.Errorf("invalid --n %d: must be positive", flagN))
	}
	results := measureCases(polyshape.BenchCases(polyshape.BenchConfig{N: flagN, Seed: flagSeed}))
	return outputResult(cmd, CLIResult{Command: "bench", Results: results})
}

// benchSink keeps benchmark sums observable so the loops are not optimized
// away.
var benchSink float64

// measureCases times every case with testing.Benchmark.
func measureCases(cases []polyshape.BenchCase) []CLIBenchResult {
	results := make([]CLIBenchResult, 0, len(cases))
	for _, c := range cases {
		r := testing.Benchmark(func(b *testing.B) {
			for i := 0; i < b.N; i++ {
				benchSink = c.Sum()
			}
		})
		results = append(results, CLIBenchResult{
			Name:       c.Name,
			Iterations: r.N,
			NsPerOp:    r.NsPerOp(),
			TotalArea:  c.Sum(),
		})
	}
	return results
}
