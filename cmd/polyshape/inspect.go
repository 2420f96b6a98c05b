package main

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/jward/polyshape"
	"github.com/spf13/cobra"
)

var (
	flagDB     string
	flagMethod string
	flagParams string
	flagResult string
)

var inspectCmd = &cobra.Command{
	Use:   "inspect [path]",
	Short: "List the types in a Go tree that carry a capability",
	Long:  "Parses Go files with tree-sitter, records type and method declarations in SQLite, and lists every type with the capability (default: Area() float64), marking types retrofitted over a foreign type.",
	Args:  cobra.MaximumNArgs(1),
	RunE:  runInspect,
}

func init() {
	inspectCmd.Flags().StringVar(&flagDB, "db", "", "database path (default: .polyshape/index.db relative to repo root)")
	inspectCmd.Flags().StringVar(&flagMethod, "method", polyshape.AreaCapability.Method, "capability method name")
	inspectCmd.Flags().StringVar(&flagParams, "params", polyshape.AreaCapability.Params, "capability parameter list as written in source")
	inspectCmd.Flags().StringVar(&flagResult, "result", polyshape.AreaCapability.Result, "capability result as written in source")
}

func runInspect(cmd *cobra.Command, args []string) error {
	start := time.Now()

	targetDir, err := resolveTargetDir(args)
	if err != nil {
		return outputError(cmd, err)
	}
	dbPath := resolveDBPath(findRepoRoot(targetDir))
	if err := os.MkdirAll(filepath.Dir(dbPath), 0o755); err != nil {
		return outputError(cmd, fmt.Errorf("creating %s: %w", filepath.Dir(dbPath), err))
	}

	in, err := polyshape.NewInspector(dbPath)
	if err != nil {
		return outputError(cmd, fmt.Errorf("creating inspector: %w", err))
	}
	defer in.Close()

	if err := in.IndexDirectory(cmd.Context(), targetDir); err != nil {
		return outputError(cmd, fmt.Errorf("indexing: %w", err))
	}

	capability := polyshape.Capability{Method: flagMethod, Params: flagParams, Result: flagResult}
	found, err := in.ImplementersIn(targetDir, capability)
	if err != nil {
		return outputError(cmd, err)
	}

	fmt.Fprintf(os.Stderr, "Indexed %s in %s\n", targetDir, time.Since(start).Round(time.Millisecond))
	fmt.Fprintf(os.Stderr, "Database: %s\n", dbPath)

	out := make([]CLIConformance, len(found))
	for i, c := range found {
		out[i] = CLIConformance{
			Type:            c.Type,
			Package:         c.Package,
			TypeFile:        c.TypeFile,
			TypeLine:        c.TypeLine,
			MethodFile:      c.MethodFile,
			MethodLine:      c.MethodLine,
			PointerReceiver: c.PointerReceiver,
			Underlying:      c.Underlying,
			Retrofitted:     c.Retrofitted,
			Detached:        c.Detached(),
		}
	}
	return outputResult(cmd, CLIResult{Command: "inspect", Results: out})
}

// resolveTargetDir returns the absolute path of the directory to inspect.
func resolveTargetDir(args []string) (string, error) {
	dir := "."
	if len(args) > 0 {
		dir = args[0]
	}
	abs, err := filepath.Abs(dir)
	if err != nil {
		return "", fmt.Errorf("resolving path %q: %w", dir, err)
	}
	info, err := os.Stat(abs)
	if err != nil {
		return "", fmt.Errorf("directory not found: %s", abs)
	}
	if !info.IsDir() {
		return "", fmt.Errorf("not a directory: %s", abs)
	}
	return abs, nil
}

// resolveDBPath returns the database path from the --db flag or the default.
func resolveDBPath(repoRoot string) string {
	if flagDB != "" {
		if filepath.IsAbs(flagDB) {
			return flagDB
		}
		return filepath.Join(repoRoot, flagDB)
	}
	return filepath.Join(repoRoot, ".polyshape", "index.db")
}
