package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"
)

// formatAreasText writes one "Area: <value>" line per area.
func formatAreasText(w io.Writer, areas []CLIArea) {
	for _, a := range areas {
		fmt.Fprintf(w, "Area: %s\n", a.Display)
	}
}

// formatOpsText writes each callable's result on its own line.
func formatOpsText(w io.Writer, ops []CLIOpResult) {
	for _, op := range ops {
		fmt.Fprintln(w, op.Result)
	}
}

// formatBenchText formats CLIBenchResult rows as aligned columns.
func formatBenchText(w io.Writer, results []CLIBenchResult) {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "STRATEGY\tITERATIONS\tNS/OP\tTOTAL AREA")
	for _, r := range results {
		fmt.Fprintf(tw, "%s\t%d\t%d\t%.2f\n", r.Name, r.Iterations, r.NsPerOp, r.TotalArea)
	}
	tw.Flush()
}

// formatConformanceText formats CLIConformance rows as aligned columns.
func formatConformanceText(w io.Writer, found []CLIConformance) {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "TYPE\tDECLARED\tMETHOD\tRETROFITTED\tUNDERLYING")
	for _, c := range found {
		fmt.Fprintf(tw, "%s\t%s:%d\t%s:%d\t%t\t%s\n",
			c.Type, c.TypeFile, c.TypeLine, c.MethodFile, c.MethodLine, c.Retrofitted, c.Underlying)
	}
	tw.Flush()
}

// outputResultText dispatches to the appropriate text formatter based on the
// result type.
func outputResultText(w io.Writer, result CLIResult) error {
	switch v := result.Results.(type) {
	case []CLIArea:
		formatAreasText(w, v)
	case []CLIExample:
		for _, ex := range v {
			formatAreasText(w, ex.Areas)
		}
	case []CLIOpResult:
		formatOpsText(w, v)
	case []CLIBenchResult:
		formatBenchText(w, v)
	case []CLIConformance:
		formatConformanceText(w, v)
	case nil:
		// No output for nil results.
	default:
		return fmt.Errorf("unsupported result type for text format: %T", v)
	}
	return nil
}

// outputResult writes a CLIResult to the command's output in the selected
// format.
func outputResult(cmd *cobra.Command, result CLIResult) error {
	w := cmd.OutOrStdout()
	if flagFormat == "text" {
		return outputResultText(w, result)
	}
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(result)
}

// outputError writes an error in the selected format and returns it so RunE
// can propagate it to Cobra. In JSON mode the error is written to stdout as a
// CLIResult envelope. In text mode it goes to stderr.
func outputError(cmd *cobra.Command, err error) error {
	errorHandled = true
	if flagFormat == "text" {
		fmt.Fprintf(os.Stderr, "Error: %s\n", err)
		return err
	}
	result := CLIResult{
		Command: cmd.Name(),
		Error:   err.Error(),
	}
	enc := json.NewEncoder(cmd.OutOrStdout())
	enc.SetIndent("", "  ")
	_ = enc.Encode(result)
	return err
}

// validFormats lists accepted values for --format.
var validFormats = []string{"json", "text"}

// validateFormat checks that the --format flag value is recognized.
func validateFormat(format string) error {
	for _, f := range validFormats {
		if format == f {
			return nil
		}
	}
	return fmt.Errorf("invalid format %q: must be %s", format, strings.Join(validFormats, " or "))
}
