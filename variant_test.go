package polyshape

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jward/polyshape/internal/extgeom"
)

func TestVariant_MatchesOpenForm(t *testing.T) {
	t.Parallel()

	assert.Equal(t, Circle{Radius: 5}.Area(), CircleVariant(5).Area())
	assert.Equal(t, Square{Side: 4}.Area(), SquareVariant(4).Area())
	assert.Equal(t, Triangle{Base: 3, Height: 9}.Area(), TriangleVariant(3, 9).Area())
}

func TestVariant_UnknownKind(t *testing.T) {
	t.Parallel()

	assert.Equal(t, 0.0, Variant{}.Area())
	assert.Equal(t, "unknown", Kind(99).String())
}

func TestKind_String(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "circle", KindCircle.String())
	assert.Equal(t, "square", KindSquare.String())
	assert.Equal(t, "triangle", KindTriangle.String())
}

func TestVariantOf(t *testing.T) {
	t.Parallel()

	tests := []struct {
		in   Shape
		kind Kind
	}{
		{Circle{Radius: 2}, KindCircle},
		{Square{Side: 2}, KindSquare},
		{Triangle{Base: 2, Height: 2}, KindTriangle},
		{ExtCircle(extgeom.Circle{Radius: 2}), KindCircle},
		{ExtSquare(extgeom.Square{Side: 2}), KindSquare},
		{ExtTriangle(extgeom.Triangle{Base: 2, Height: 2}), KindTriangle},
	}
	for _, tt := range tests {
		v, ok := VariantOf(tt.in)
		require.True(t, ok, "%T", tt.in)
		assert.Equal(t, tt.kind, v.Kind)
		assert.Equal(t, tt.in.Area(), v.Area())
	}

	_, ok := VariantOf(NewHandle(Circle{Radius: 1}))
	assert.False(t, ok, "handles are outside the closed set")
}
