package polyshape

// concept is the erased view a Handle keeps of its value.
type concept interface {
	area() float64
}

// model owns one value of a concrete shape type.
type model[T Shape] struct {
	data T
}

func (m *model[T]) area() float64 { return m.data.Area() }

// Handle is a concrete, uniformly typed owner of an arbitrary Shape. Handles
// built from different shape types have the same type and can share a slice.
//
// A Handle holds its own heap-allocated copy of the value it was built from;
// nothing else refers to that copy. The zero Handle holds nothing and reports
// an area of 0.
type Handle struct {
	object concept
}

// NewHandle copies v into a new Handle.
func NewHandle[T Shape](v T) Handle {
	return Handle{object: &model[T]{data: v}}
}

// Area forwards to the owned value and returns its result unchanged.
func (h Handle) Area() float64 {
	if h.object == nil {
		return 0
	}
	return h.object.area()
}

// Handles wraps each shape in its own Handle, preserving order.
func Handles(shapes ...Shape) []Handle {
	out := make([]Handle, len(shapes))
	for i, s := range shapes {
		out[i] = NewHandle(s)
	}
	return out
}

// HandleSequence is DefaultSequence built from handles over the concrete
// shape types.
func HandleSequence() []Handle {
	return []Handle{
		NewHandle(Circle{Radius: 5.0}),
		NewHandle(Square{Side: 4.0}),
	}
}

var _ Shape = Handle{}
