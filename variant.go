package polyshape

import "math"

// Kind tags the members of the closed shape set.
type Kind int

const (
	KindCircle Kind = iota + 1
	KindSquare
	KindTriangle
)

func (k Kind) String() string {
	switch k {
	case KindCircle:
		return "circle"
	case KindSquare:
		return "square"
	case KindTriangle:
		return "triangle"
	default:
		return "unknown"
	}
}

// Variant is a tagged union over the closed set {circle, square, triangle}.
// Area matches on the tag instead of dispatching through an interface.
type Variant struct {
	Kind Kind
	a, b float64
}

// CircleVariant builds the circle member of the closed set.
func CircleVariant(radius float64) Variant { return Variant{Kind: KindCircle, a: radius} }

// SquareVariant builds the square member of the closed set.
func SquareVariant(side float64) Variant { return Variant{Kind: KindSquare, a: side} }

// TriangleVariant builds the triangle member of the closed set.
func TriangleVariant(base, height float64) Variant {
	return Variant{Kind: KindTriangle, a: base, b: height}
}

// Area computes the area for the tagged kind. An unknown tag reports 0.
func (v Variant) Area() float64 {
	switch v.Kind {
	case KindCircle:
		return math.Pi * v.a * v.a
	case KindSquare:
		return v.a * v.a
	case KindTriangle:
		return 0.5 * v.a * v.b
	default:
		return 0
	}
}

// VariantOf converts an open Shape into the closed form. It reports false
// when the concrete type is outside the closed set.
func VariantOf(s Shape) (Variant, bool) {
	switch t := s.(type) {
	case Circle:
		return CircleVariant(t.Radius), true
	case Square:
		return SquareVariant(t.Side), true
	case Triangle:
		return TriangleVariant(t.Base, t.Height), true
	case ExtCircle:
		return CircleVariant(t.Radius), true
	case ExtSquare:
		return SquareVariant(t.Side), true
	case ExtTriangle:
		return TriangleVariant(t.Base, t.Height), true
	default:
		return Variant{}, false
	}
}

// VariantSequence is DefaultSequence in closed form.
func VariantSequence() []Variant {
	return []Variant{CircleVariant(5.0), SquareVariant(4.0)}
}

var _ Shape = Variant{}
