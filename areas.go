package polyshape

import (
	"fmt"
	"io"
	"strconv"
)

// DefaultSequence returns the input every example runs on when no shapes
// file is given: a circle of radius 5 followed by a square of side 4.
func DefaultSequence() []Shape {
	return []Shape{
		Circle{Radius: 5.0},
		Square{Side: 4.0},
	}
}

// FormatArea renders an area the way the examples print it: the shortest
// decimal that round-trips, never in exponent form. 16 renders as "16".
func FormatArea(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

// WriteAreas writes one "Area: <value>" line per shape, in insertion order.
// S may be an interface (Shape), a handle type, or any concrete shape; only
// the Area method is used.
func WriteAreas[S Shape](w io.Writer, shapes []S) error {
	for _, s := range shapes {
		if _, err := fmt.Fprintf(w, "Area: %s\n", FormatArea(s.Area())); err != nil {
			return fmt.Errorf("polyshape: write area: %w", err)
		}
	}
	return nil
}

// Areas returns the area of each shape, in insertion order.
func Areas[S Shape](shapes []S) []float64 {
	out := make([]float64, len(shapes))
	for i, s := range shapes {
		out[i] = s.Area()
	}
	return out
}
