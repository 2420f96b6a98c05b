package polyshape

import (
	"errors"
	"fmt"
	"io"

	"gopkg.in/yaml.v3"

	"github.com/jward/polyshape/internal/extgeom"
)

// Spec describes one shape in a sequence file. Only the dimensions that
// apply to Kind are read; none are validated.
type Spec struct {
	Kind   string  `yaml:"kind"`
	Radius float64 `yaml:"radius,omitempty"`
	Side   float64 `yaml:"side,omitempty"`
	Base   float64 `yaml:"base,omitempty"`
	Height float64 `yaml:"height,omitempty"`
}

type sequenceFile struct {
	Shapes []Spec `yaml:"shapes"`
}

// LoadSequence reads a YAML document of the form
//
//	shapes:
//	  - {kind: circle, radius: 5}
//	  - {kind: square, side: 4}
//
// and returns its entries in file order. An unknown kind or key is an error.
func LoadSequence(r io.Reader) ([]Spec, error) {
	var doc sequenceFile
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&doc); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, nil
		}
		return nil, fmt.Errorf("polyshape: decode shapes: %w", err)
	}
	for i, s := range doc.Shapes {
		if _, err := s.kind(); err != nil {
			return nil, fmt.Errorf("polyshape: shapes[%d]: %w", i, err)
		}
	}
	return doc.Shapes, nil
}

// DefaultSpecs is DefaultSequence as specs.
func DefaultSpecs() []Spec {
	return []Spec{
		{Kind: "circle", Radius: 5.0},
		{Kind: "square", Side: 4.0},
	}
}

func (s Spec) kind() (Kind, error) {
	switch s.Kind {
	case "circle":
		return KindCircle, nil
	case "square":
		return KindSquare, nil
	case "triangle":
		return KindTriangle, nil
	default:
		return 0, fmt.Errorf("unknown shape kind %q", s.Kind)
	}
}

// Shape builds the intrinsic shape for s. Specs returned by LoadSequence
// always have a known kind; for anything else Shape returns nil.
func (s Spec) Shape() Shape {
	k, _ := s.kind()
	switch k {
	case KindCircle:
		return Circle{Radius: s.Radius}
	case KindSquare:
		return Square{Side: s.Side}
	case KindTriangle:
		return Triangle{Base: s.Base, Height: s.Height}
	}
	return nil
}

// External builds the foreign extgeom record for s.
func (s Spec) External() any {
	k, _ := s.kind()
	switch k {
	case KindCircle:
		return extgeom.Circle{Radius: s.Radius}
	case KindSquare:
		return extgeom.Square{Side: s.Side}
	case KindTriangle:
		return extgeom.Triangle{Base: s.Base, Height: s.Height}
	}
	return nil
}

// Variant builds the closed-form value for s.
func (s Spec) Variant() Variant {
	k, _ := s.kind()
	switch k {
	case KindCircle:
		return CircleVariant(s.Radius)
	case KindSquare:
		return SquareVariant(s.Side)
	case KindTriangle:
		return TriangleVariant(s.Base, s.Height)
	}
	return Variant{}
}

// ClassicShapes builds the interface sequence for specs.
func ClassicShapes(specs []Spec) []Shape {
	out := make([]Shape, 0, len(specs))
	for _, s := range specs {
		out = append(out, s.Shape())
	}
	return out
}

// RetrofitShapes builds the sequence from foreign records with the
// capability attached from outside.
func RetrofitShapes(specs []Spec) []Shape {
	out := make([]Shape, 0, len(specs))
	for _, s := range specs {
		if sh, ok := Retrofit(s.External()); ok {
			out = append(out, sh)
		}
	}
	return out
}

// HandleShapes builds the sequence of owning handles for specs.
func HandleShapes(specs []Spec) []Handle {
	out := make([]Handle, 0, len(specs))
	for _, s := range specs {
		out = append(out, newSpecHandle(s))
	}
	return out
}

// newSpecHandle keeps the concrete type in the handle's model instead of
// erasing through Shape first.
func newSpecHandle(s Spec) Handle {
	switch v := s.Shape().(type) {
	case Circle:
		return NewHandle(v)
	case Square:
		return NewHandle(v)
	case Triangle:
		return NewHandle(v)
	}
	return Handle{}
}

// VariantShapes builds the closed-form sequence for specs.
func VariantShapes(specs []Spec) []Variant {
	out := make([]Variant, 0, len(specs))
	for _, s := range specs {
		out = append(out, s.Variant())
	}
	return out
}
