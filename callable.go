package polyshape

import (
	"context"
	"fmt"
	"io"

	"github.com/jward/polyshape/internal/runtime"
)

// BinaryOp is one concrete function type standing in for any two-argument
// integer operation: closures, method values and script functions all
// convert to it.
type BinaryOp func(a, b int) (int, error)

// Lift converts an infallible operation into a BinaryOp.
func Lift(f func(a, b int) int) BinaryOp {
	return func(a, b int) (int, error) {
		return f(a, b), nil
	}
}

// Multiplies is a stateless functor; its Apply method value is a callable.
type Multiplies struct{}

// Apply returns a·b.
func (Multiplies) Apply(a, b int) int { return a * b }

// ScriptOp evaluates a Risor expression over the globals a and b on every
// call.
func ScriptOp(ctx context.Context, rt *runtime.Runtime, source string) BinaryOp {
	return func(a, b int) (int, error) {
		v, err := rt.EvalInt(ctx, source, map[string]any{
			"a": int64(a),
			"b": int64(b),
		})
		if err != nil {
			return 0, err
		}
		return int(v), nil
	}
}

// WriteResult writes op(3, 4) on its own line.
func WriteResult(w io.Writer, op BinaryOp) error {
	v, err := op(3, 4)
	if err != nil {
		return fmt.Errorf("polyshape: apply operation: %w", err)
	}
	if _, err := fmt.Fprintln(w, v); err != nil {
		return fmt.Errorf("polyshape: write result: %w", err)
	}
	return nil
}

// NamedOp pairs a BinaryOp with a label for display.
type NamedOp struct {
	Name string
	Op   BinaryOp
}

// DefaultOps returns the three callables the callable example runs: a sum
// closure, the Multiplies functor, and a script doing the same product.
func DefaultOps(ctx context.Context, rt *runtime.Runtime, script string) []NamedOp {
	return []NamedOp{
		{Name: "closure", Op: Lift(func(a, b int) int { return a + b })},
		{Name: "functor", Op: Lift(Multiplies{}.Apply)},
		{Name: "script", Op: ScriptOp(ctx, rt, script)},
	}
}
