package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/jward/polyshape"
	"github.com/spf13/cobra"
)

var (
	flagFormat string
	flagShapes string
)

// errorHandled is set by outputError so main() doesn't double-print.
var errorHandled bool

func main() {
	if err := rootCmd.Execute(); err != nil {
		if !errorHandled {
			fmt.Fprintf(os.Stderr, "Error: %s\n", err)
		}
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:           "polyshape",
	Short:         "Runtime polymorphism and type erasure, one shape at a time",
	Long:          "Runs small dispatch examples over shapes, benchmarks the dispatch strategies, and inspects Go source for types that carry the Area capability.",
	SilenceErrors: true,
	SilenceUsage:  true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		return validateFormat(flagFormat)
	},
	// No Run: prints help by default.
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagFormat, "format", "text", "output format: json|text")
	rootCmd.PersistentFlags().StringVar(&flagShapes, "shapes", "", "YAML file listing the shapes to use (default: circle r=5, square s=4)")

	rootCmd.AddCommand(classicCmd)
	rootCmd.AddCommand(retrofitCmd)
	rootCmd.AddCommand(handleCmd)
	rootCmd.AddCommand(variantCmd)
	rootCmd.AddCommand(allCmd)
	rootCmd.AddCommand(callableCmd)
	rootCmd.AddCommand(benchCmd)
	rootCmd.AddCommand(inspectCmd)
}

// loadSpecs returns the shapes from --shapes, or the default sequence.
func loadSpecs() ([]polyshape.Spec, error) {
	if flagShapes == "" {
		return polyshape.DefaultSpecs(), nil
	}
	f, err := os.Open(flagShapes)
	if err != nil {
		return nil, fmt.Errorf("opening shapes file: %w", err)
	}
	defer f.Close()
	return polyshape.LoadSequence(f)
}

// findRepoRoot walks up from startDir looking for a .git directory.
// Returns the directory containing .git, or startDir if not found.
func findRepoRoot(startDir string) string {
	dir := startDir
	for {
		if info, err := os.Stat(filepath.Join(dir, ".git")); err == nil && info.IsDir() {
			return dir
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			// Reached filesystem root without finding .git.
			return startDir
		}
		dir = parent
	}
}
