package main

import (
	"fmt"

	"github.com/jward/polyshape"
	"github.com/jward/polyshape/internal/runtime"
	"github.com/spf13/cobra"
)

var (
	flagScript     string
	flagScriptFile string
)

var callableCmd = &cobra.Command{
	Use:   "callable",
	Short: "Erase closures, functors and scripts behind one function type",
	Long:  "Applies a sum closure, a multiplying functor and a Risor expression to (3, 4) through the same BinaryOp type.",
	Args:  cobra.NoArgs,
	RunE:  runCallable,
}

func init() {
	callableCmd.Flags().StringVar(&flagScript, "script", "a * b", "Risor expression over a and b")
	callableCmd.Flags().StringVar(&flagScriptFile, "script-file", "", "load the Risor expression from a file instead")
}

func runCallable(cmd *cobra.Command, args []string) error {
	rt := runtime.NewRuntime("")
	script := flagScript
	if flagScriptFile != "" {
		src, err := rt.LoadScript(flagScriptFile)
		if err != nil {
			return outputError(cmd, err)
		}
		script = src
	}

	ops := polyshape.DefaultOps(cmd.Context(), rt, script)
	results := make([]CLIOpResult, 0, len(ops))
	for _, op := range ops {
		v, err := op.Op(3, 4)
		if err != nil {
			return outputError(cmd, fmt.Errorf("%s: %w", op.Name, err))
		}
		results = append(results, CLIOpResult{Name: op.Name, Result: v})
	}
	return outputResult(cmd, CLIResult{Command: "callable", Results: results})
}
