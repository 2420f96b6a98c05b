package polyshape

import (
	"math"

	"github.com/jward/polyshape/internal/extgeom"
)

// Go only allows methods on types declared in the same package, so the
// capability is attached to extgeom's records by declaring local types over
// them. Converting between the two is free and leaves extgeom untouched.

// ExtCircle is extgeom.Circle with the Shape capability attached.
type ExtCircle extgeom.Circle

func (c ExtCircle) Area() float64 { return math.Pi * c.Radius * c.Radius }

// ExtSquare is extgeom.Square with the Shape capability attached.
type ExtSquare extgeom.Square

func (s ExtSquare) Area() float64 { return s.Side * s.Side }

// ExtTriangle is extgeom.Triangle with the Shape capability attached.
type ExtTriangle extgeom.Triangle

func (t ExtTriangle) Area() float64 { return 0.5 * t.Base * t.Height }

// Adapter pairs an unmodified value with the area operation for its type.
// It is the explicit form of the retrofit: the indirection lives in a field
// instead of in a type declaration.
type Adapter[T any] struct {
	Value    T
	AreaFunc func(T) float64
}

// Adapt wraps v so that it satisfies Shape through f.
func Adapt[T any](v T, f func(T) float64) Adapter[T] {
	return Adapter[T]{Value: v, AreaFunc: f}
}

// Area calls the adapted function on the held value.
func (a Adapter[T]) Area() float64 { return a.AreaFunc(a.Value) }

// Retrofit returns the Shape view of an extgeom record. It reports false for
// any value that is not one of extgeom's record types.
func Retrofit(v any) (Shape, bool) {
	switch r := v.(type) {
	case extgeom.Circle:
		return ExtCircle(r), true
	case extgeom.Square:
		return ExtSquare(r), true
	case extgeom.Triangle:
		return ExtTriangle(r), true
	default:
		return nil, false
	}
}

// RetrofitSequence is DefaultSequence built from foreign records.
func RetrofitSequence() []Shape {
	return []Shape{
		ExtCircle(extgeom.Circle{Radius: 5.0}),
		ExtSquare(extgeom.Square{Side: 4.0}),
	}
}

var (
	_ Shape = ExtCircle{}
	_ Shape = ExtSquare{}
	_ Shape = ExtTriangle{}
	_ Shape = Adapter[extgeom.Circle]{}
)
