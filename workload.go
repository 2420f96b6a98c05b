package polyshape

import "math/rand"

// Benchmark workload defaults.
const (
	DefaultWorkloadSize = 10000
	DefaultWorkloadSeed = 42
)

// uniform returns a draw from [1, 10).
func uniform(r *rand.Rand) float64 {
	return 1 + 9*r.Float64()
}

// RandomSquares returns n squares with sides uniform in [1, 10).
func RandomSquares(n int, seed int64) []Square {
	r := rand.New(rand.NewSource(seed))
	out := make([]Square, n)
	for i := range out {
		out[i] = Square{Side: uniform(r)}
	}
	return out
}

// RandomMixed returns n shapes, each a square or a triangle with equal
// probability, with dimensions uniform in [1, 10).
func RandomMixed(n int, seed int64) []Shape {
	r := rand.New(rand.NewSource(seed))
	out := make([]Shape, n)
	for i := range out {
		if r.Intn(2) == 0 {
			out[i] = Square{Side: uniform(r)}
		} else {
			out[i] = Triangle{Base: uniform(r), Height: uniform(r)}
		}
	}
	return out
}

// SumDirect sums concrete squares without any dispatch.
func SumDirect(squares []Square) float64 {
	total := 0.0
	for _, s := range squares {
		total += s.Side * s.Side
	}
	return total
}

// SumStatic sums through a type parameter. For a concrete S the call is
// resolved at compile time.
func SumStatic[S Shape](shapes []S) float64 {
	total := 0.0
	for _, s := range shapes {
		total += s.Area()
	}
	return total
}

// SumDynamic sums through the Shape interface.
func SumDynamic(shapes []Shape) float64 {
	total := 0.0
	for _, s := range shapes {
		total += s.Area()
	}
	return total
}

// SumHandles sums owning handles.
func SumHandles(handles []Handle) float64 {
	total := 0.0
	for _, h := range handles {
		total += h.Area()
	}
	return total
}

// SumVariants sums the closed tagged union.
func SumVariants(variants []Variant) float64 {
	total := 0.0
	for _, v := range variants {
		total += v.Area()
	}
	return total
}

// AsShapes widens a concrete slice to []Shape.
func AsShapes[S Shape](shapes []S) []Shape {
	out := make([]Shape, len(shapes))
	for i, s := range shapes {
		out[i] = s
	}
	return out
}

// AsVariants converts shapes to the closed form, dropping none: every shape
// produced by the workloads is in the closed set.
func AsVariants(shapes []Shape) []Variant {
	out := make([]Variant, 0, len(shapes))
	for _, s := range shapes {
		if v, ok := VariantOf(s); ok {
			out = append(out, v)
		}
	}
	return out
}
