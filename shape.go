package polyshape

import "math"

// Shape is the capability every example dispatches on: anything that can
// report its planar area.
type Shape interface {
	Area() float64
}

// Circle is a circle of the given radius.
type Circle struct {
	Radius float64
}

// Area returns π·r².
func (c Circle) Area() float64 { return math.Pi * c.Radius * c.Radius }

// Square is a square of the given side length.
type Square struct {
	Side float64
}

// Area returns s².
func (s Square) Area() float64 { return s.Side * s.Side }

// Triangle is described by its base and height.
type Triangle struct {
	Base   float64
	Height float64
}

// Area returns ½·b·h.
func (t Triangle) Area() float64 { return 0.5 * t.Base * t.Height }

// Compile-time checks: the intrinsic shapes satisfy Shape.
var (
	_ Shape = Circle{}
	_ Shape = Square{}
	_ Shape = Triangle{}
)
