package runtime

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/risor-io/risor"
	"github.com/risor-io/risor/object"
)

// Runtime evaluates small Risor scripts on behalf of the examples. Scripts
// are either passed inline or loaded from disk.
type Runtime struct {
	scriptsDir string
}

// NewRuntime creates a Runtime that resolves relative script paths against
// scriptsDir. An empty scriptsDir resolves them against the working
// directory.
func NewRuntime(scriptsDir string) *Runtime {
	return &Runtime{scriptsDir: scriptsDir}
}

// Eval executes Risor source with the given globals and returns the value of
// its last expression.
func (r *Runtime) Eval(ctx context.Context, source string, globals map[string]any) (object.Object, error) {
	var opts []risor.Option
	for name, val := range globals {
		opts = append(opts, risor.WithGlobal(name, val))
	}

	result, err := risor.Eval(ctx, source, opts...)
	if err != nil {
		return nil, fmt.Errorf("runtime: eval: %w", err)
	}
	return result, nil
}

// EvalInt is Eval for scripts that must produce an integer.
func (r *Runtime) EvalInt(ctx context.Context, source string, globals map[string]any) (int64, error) {
	result, err := r.Eval(ctx, source, globals)
	if err != nil {
		return 0, err
	}
	i, ok := result.(*object.Int)
	if !ok {
		return 0, fmt.Errorf("runtime: script returned %s, want int", result.Type())
	}
	return i.Value(), nil
}

// LoadScript reads a script and returns its source code. Relative paths are
// resolved against scriptsDir.
func (r *Runtime) LoadScript(path string) (string, error) {
	fullPath := path
	if !filepath.IsAbs(path) {
		fullPath = filepath.Join(r.scriptsDir, path)
	}

	data, err := os.ReadFile(fullPath)
	if err != nil {
		return "", fmt.Errorf("runtime: loading script %s: %w", fullPath, err)
	}
	return string(data), nil
}
