package polyshape

// BenchConfig sizes the dispatch benchmark workload.
type BenchConfig struct {
	N    int
	Seed int64
}

// BenchCase is a named summation over a prepared workload.
type BenchCase struct {
	Name string
	Sum  func() float64
}

// BenchCases prepares every dispatch strategy over the same random data:
// squares alone for the homogeneous cases, squares and triangles for the
// heterogeneous ones.
func BenchCases(cfg BenchConfig) []BenchCase {
	if cfg.N <= 0 {
		cfg.N = DefaultWorkloadSize
	}
	squares := RandomSquares(cfg.N, cfg.Seed)
	squareShapes := AsShapes(squares)
	mixed := RandomMixed(cfg.N, cfg.Seed)
	mixedHandles := Handles(mixed...)
	mixedVariants := AsVariants(mixed)

	return []BenchCase{
		{Name: "direct", Sum: func() float64 { return SumDirect(squares) }},
		{Name: "static", Sum: func() float64 { return SumStatic(squares) }},
		{Name: "dynamic-homogeneous", Sum: func() float64 { return SumDynamic(squareShapes) }},
		{Name: "dynamic-heterogeneous", Sum: func() float64 { return SumDynamic(mixed) }},
		{Name: "handle-heterogeneous", Sum: func() float64 { return SumHandles(mixedHandles) }},
		{Name: "variant-heterogeneous", Sum: func() float64 { return SumVariants(mixedVariants) }},
	}
}
