// Package extgeom holds plain geometry records that know nothing about the
// Shape capability. The root package treats it as code it does not own and
// attaches Area from the outside.
package extgeom

// Circle is a circle record.
type Circle struct {
	Radius float64
}

// Square is a square record.
type Square struct {
	Side float64
}

// Triangle is a triangle record.
type Triangle struct {
	Base   float64
	Height float64
}
