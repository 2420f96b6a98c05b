package main

import (
	"github.com/jward/polyshape"
	"github.com/spf13/cobra"
)

var classicCmd = &cobra.Command{
	Use:   "classic",
	Short: "Dispatch through the Shape interface",
	Long:  "Builds a []Shape of concrete shapes and prints each area through interface dispatch.",
	Args:  cobra.NoArgs,
	RunE:  runExample,
}

var retrofitCmd = &cobra.Command{
	Use:   "retrofit",
	Short: "Attach the Shape capability to foreign types",
	Long:  "Builds the sequence from method-less records of another package, with Area attached by local type definitions.",
	Args:  cobra.NoArgs,
	RunE:  runExample,
}

var handleCmd = &cobra.Command{
	Use:   "handle",
	Short: "Erase shapes behind an owning handle",
	Long:  "Wraps each shape in a Handle, one concrete type that owns its value and forwards Area to it.",
	Args:  cobra.NoArgs,
	RunE:  runExample,
}

var variantCmd = &cobra.Command{
	Use:   "variant",
	Short: "Match over a closed tagged union",
	Long:  "Builds the sequence as Variant values and computes each area with a switch on the tag.",
	Args:  cobra.NoArgs,
	RunE:  runExample,
}

var allCmd = &cobra.Command{
	Use:   "all",
	Short: "Run the classic, retrofit and handle examples in order",
	Args:  cobra.NoArgs,
	RunE:  runAll,
}

// exampleOrder is the order `all` runs the examples in.
var exampleOrder = []string{"classic", "retrofit", "handle"}

func exampleAreas(name string, specs []polyshape.Spec) []float64 {
	switch name {
	case "classic":
		return polyshape.Areas(polyshape.ClassicShapes(specs))
	case "retrofit":
		return polyshape.Areas(polyshape.RetrofitShapes(specs))
	case "handle":
		return polyshape.Areas(polyshape.HandleShapes(specs))
	case "variant":
		return polyshape.Areas(polyshape.VariantShapes(specs))
	}
	return nil
}

// runExample prints the areas of the example named by the command.
func runExample(cmd *cobra.Command, args []string) error {
	specs, err := loadSpecs()
	if err != nil {
		return outputError(cmd, err)
	}
	return outputResult(cmd, CLIResult{
		Command: cmd.Name(),
		Results: areasToCLI(exampleAreas(cmd.Name(), specs)),
	})
}

func runAll(cmd *cobra.Command, args []string) error {
	specs, err := loadSpecs()
	if err != nil {
		return outputError(cmd, err)
	}
	examples := make([]CLIExample, 0, len(exampleOrder))
	for _, name := range exampleOrder {
		examples = append(examples, CLIExample{
			Example: name,
			Areas:   areasToCLI(exampleAreas(name, specs)),
		})
	}
	return outputResult(cmd, CLIResult{Command: "all", Results: examples})
}

func areasToCLI(areas []float64) []CLIArea {
	out := make([]CLIArea, len(areas))
	for i, a := range areas {
		out[i] = CLIArea{Index: i, Area: a, Display: polyshape.FormatArea(a)}
	}
	return out
}
