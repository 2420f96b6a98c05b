// Package polyshape demonstrates runtime polymorphism and type erasure in
// Go, using the area of a shape as the single capability.
//
// # Examples
//
// Each example computes the areas of a circle of radius 5 and a square of
// side 4 and prints them in order:
//
//	Area: 78.53981633974483
//	Area: 16
//
// The examples differ only in how the heterogeneous sequence is built:
//
//   - Classic dispatch: [Circle] and [Square] implement [Shape] and a
//     []Shape is iterated directly.
//   - Retrofitted capability: the records in internal/extgeom have no
//     methods. [ExtCircle] and [ExtSquare] attach Area from outside, and
//     [Adapter] does the same with an explicit function field.
//   - Owning handle: [NewHandle] copies any Shape into a [Handle], a single
//     concrete type that forwards Area to the value it owns.
//
// [Variant] is the closed alternative: a tagged union over a fixed set of
// kinds, matched with a switch instead of dispatched through an interface.
//
// # Callables
//
// [BinaryOp] applies the same erasure to functions. Closures, the
// [Multiplies] functor and Risor script expressions ([ScriptOp]) all become
// one function type.
//
// # Dispatch cost
//
// [BenchCases] prepares direct calls, generic static dispatch, interface
// dispatch, handles and the tagged union over the same random workload. The
// polyshape bench command times them.
//
// # Conformance inspection
//
// An [Inspector] parses Go source with tree-sitter, records type and method
// declarations in SQLite, and lists the types that have a [Capability],
// marking those that were retrofitted over a foreign type:
//
//	in, err := polyshape.NewInspector("shapes.db")
//	if err != nil { ... }
//	defer in.Close()
//
//	err = in.IndexDirectory(ctx, ".")
//	found, err := in.Implementers(polyshape.AreaCapability)
package polyshape
