package polyshape

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestInspector(t *testing.T, opts ...InspectorOption) *Inspector {
	t.Helper()
	in, err := NewInspector(filepath.Join(t.TempDir(), "index.db"), opts...)
	require.NoError(t, err)
	t.Cleanup(func() { in.Close() })
	return in
}

func writeFile(t *testing.T, dir, name, src string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, []byte(src), 0o644))
	return path
}

const typesSource = `package geo

import "example.com/ext"

type Shape interface {
	Area() float64
}

type Circle struct {
	Radius float64
}

type (
	ExtSquare ext.Square
	Meters    float64
	Alias     = Circle
)

type box[T any] struct {
	v T
}
`

const methodsSource = `package geo

func (c Circle) Area() float64 { return 3 * c.Radius * c.Radius }

func (s *ExtSquare) Area() float64 { return s.Side * s.Side }

func (m Meters) Area() int { return int(m) }

func (b *box[T]) Area()   float64 { return 0 }

func (c Circle) Scale(f float64) Circle { return Circle{c.Radius * f} }
`

func byType(found []Conformance) map[string]Conformance {
	m := make(map[string]Conformance, len(found))
	for _, c := range found {
		m[c.Type] = c
	}
	return m
}

func TestInspector_FindsImplementers(t *testing.T) {
	t.Parallel()
	dir := t.TempDir()
	typesPath := writeFile(t, dir, "types.go", typesSource)
	methodsPath := writeFile(t, dir, "methods.go", methodsSource)

	in := newTestInspector(t)
	require.NoError(t, in.IndexDirectory(context.Background(), dir))

	found, err := in.Implementers(AreaCapability)
	require.NoError(t, err)

	names := make([]string, len(found))
	for i, c := range found {
		names[i] = c.Type
	}
	assert.Equal(t, []string{"Circle", "ExtSquare", "box"}, names)

	got := byType(found)

	circle := got["Circle"]
	assert.False(t, circle.Retrofitted)
	assert.True(t, circle.Detached())
	assert.Equal(t, typesPath, circle.TypeFile)
	assert.Equal(t, 9, circle.TypeLine)
	assert.Equal(t, methodsPath, circle.MethodFile)
	assert.Equal(t, 3, circle.MethodLine)
	assert.Equal(t, dir, circle.Package)

	ext := got["ExtSquare"]
	assert.True(t, ext.Retrofitted)
	assert.True(t, ext.PointerReceiver)
	assert.Equal(t, "ext.Square", ext.Underlying)

	assert.True(t, got["box"].PointerReceiver)
}

func TestInspector_OtherCapability(t *testing.T) {
	t.Parallel()
	dir := t.TempDir()
	writeFile(t, dir, "types.go", typesSource)
	writeFile(t, dir, "methods.go", methodsSource)

	in := newTestInspector(t)
	require.NoError(t, in.IndexDirectory(context.Background(), dir))

	found, err := in.Implementers(Capability{Method: "Scale", Params: "(f  float64)", Result: "Circle"})
	require.NoError(t, err)
	require.Len(t, found, 1)
	assert.Equal(t, "Circle", found[0].Type)

	found, err = in.Implementers(Capability{Method: "Area", Params: "()", Result: "int"})
	require.NoError(t, err)
	require.Len(t, found, 1)
	assert.Equal(t, "Meters", found[0].Type)
}

func TestInspector_SkipsUnchangedAndReplacesChanged(t *testing.T) {
	t.Parallel()
	dir := t.TempDir()
	path := writeFile(t, dir, "one.go", "package one\n\ntype A struct{}\n\nfunc (A) Area() float64 { return 1 }\n")

	in := newTestInspector(t)
	ctx := context.Background()

	indexed, err := in.IndexFile(ctx, path)
	require.NoError(t, err)
	assert.True(t, indexed)

	indexed, err = in.IndexFile(ctx, path)
	require.NoError(t, err)
	assert.False(t, indexed, "unchanged file should be skipped")

	writeFile(t, dir, "one.go", "package one\n\ntype B struct{}\n\nfunc (B) Area() float64 { return 2 }\n")
	indexed, err = in.IndexFile(ctx, path)
	require.NoError(t, err)
	assert.True(t, indexed)

	found, err := in.Implementers(AreaCapability)
	require.NoError(t, err)
	require.Len(t, found, 1)
	assert.Equal(t, "B", found[0].Type)
}

func TestInspector_SkipsDirectories(t *testing.T) {
	t.Parallel()
	dir := t.TempDir()
	src := "package x\n\ntype T struct{}\n\nfunc (T) Area() float64 { return 0 }\n"
	writeFile(t, dir, "testdata/t.go", src)
	writeFile(t, dir, ".hidden/t.go", src)
	writeFile(t, dir, "_scratch/t.go", src)
	writeFile(t, dir, "generated/t.go", src)
	writeFile(t, dir, "kept/t.go", src)
	writeFile(t, dir, "kept/notes.txt", "not go")

	in := newTestInspector(t, WithSkipDirs("generated"))
	require.NoError(t, in.IndexDirectory(context.Background(), dir))

	found, err := in.Implementers(AreaCapability)
	require.NoError(t, err)
	require.Len(t, found, 1)
	assert.Equal(t, filepath.Join(dir, "kept"), found[0].Package)
}

func TestInspector_SamePackageOnly(t *testing.T) {
	t.Parallel()
	dir := t.TempDir()
	writeFile(t, dir, "a/types.go", "package a\n\ntype C struct{}\n")
	writeFile(t, dir, "b/methods.go", "package b\n\ntype C int\n\nfunc (C) Area() float64 { return 0 }\n")

	in := newTestInspector(t)
	require.NoError(t, in.IndexDirectory(context.Background(), dir))

	found, err := in.Implementers(AreaCapability)
	require.NoError(t, err)
	require.Len(t, found, 1)
	assert.Equal(t, filepath.Join(dir, "b"), found[0].Package)
	assert.Equal(t, "int", found[0].Underlying)
}

func TestInspector_DropsVanishedFiles(t *testing.T) {
	t.Parallel()
	dir := t.TempDir()
	src := "package x\n\ntype T struct{}\n\nfunc (T) Area() float64 { return 0 }\n"
	writeFile(t, dir, "a/t.go", src)
	gone := writeFile(t, dir, "b/t.go", src)

	in := newTestInspector(t)
	ctx := context.Background()
	require.NoError(t, in.IndexDirectory(ctx, filepath.Join(dir, "a")))
	require.NoError(t, in.IndexDirectory(ctx, filepath.Join(dir, "b")))

	found, err := in.Implementers(AreaCapability)
	require.NoError(t, err)
	require.Len(t, found, 2)

	require.NoError(t, os.Remove(gone))
	require.NoError(t, in.IndexDirectory(ctx, filepath.Join(dir, "b")))

	found, err = in.Implementers(AreaCapability)
	require.NoError(t, err)
	require.Len(t, found, 1)
	assert.Equal(t, filepath.Join(dir, "a"), found[0].Package)
}

func TestInspector_ImplementersInDirectory(t *testing.T) {
	t.Parallel()
	dir := t.TempDir()
	src := "package x\n\ntype T struct{}\n\nfunc (T) Area() float64 { return 0 }\n"
	writeFile(t, dir, "a/t.go", src)
	writeFile(t, dir, "ab/t.go", src)

	in := newTestInspector(t)
	ctx := context.Background()
	require.NoError(t, in.IndexDirectory(ctx, filepath.Join(dir, "a")))
	require.NoError(t, in.IndexDirectory(ctx, filepath.Join(dir, "ab")))

	found, err := in.ImplementersIn(filepath.Join(dir, "ab"), AreaCapability)
	require.NoError(t, err)
	require.Len(t, found, 1)
	assert.Equal(t, filepath.Join(dir, "ab"), found[0].Package)

	found, err = in.ImplementersIn(dir, AreaCapability)
	require.NoError(t, err)
	assert.Len(t, found, 2)
}

func TestInspector_UnsupportedFile(t *testing.T) {
	t.Parallel()
	path := writeFile(t, t.TempDir(), "shape.rs", "struct Circle;")

	in := newTestInspector(t)
	_, err := in.IndexFile(context.Background(), path)
	assert.ErrorContains(t, err, "unsupported file")
}

func TestInspector_CancelledContext(t *testing.T) {
	t.Parallel()
	dir := t.TempDir()
	writeFile(t, dir, "a.go", "package a\n")

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	in := newTestInspector(t)
	err := in.IndexDirectory(ctx, dir)
	assert.ErrorIs(t, err, context.Canceled)
}

// Indexing this package finds both the intrinsic shapes and the ones
// attached over internal/extgeom.
func TestInspector_ThisPackage(t *testing.T) {
	t.Parallel()
	cwd, err := os.Getwd()
	require.NoError(t, err)

	in := newTestInspector(t)
	require.NoError(t, in.IndexDirectory(context.Background(), cwd))

	found, err := in.Implementers(AreaCapability)
	require.NoError(t, err)
	got := byType(found)

	for _, name := range []string{"Circle", "Square", "Triangle", "Handle", "Variant", "Adapter"} {
		require.Contains(t, got, name)
		assert.False(t, got[name].Retrofitted, name)
	}
	for _, name := range []string{"ExtCircle", "ExtSquare", "ExtTriangle"} {
		require.Contains(t, got, name)
		assert.True(t, got[name].Retrofitted, name)
		assert.Equal(t, "extgeom."+name[len("Ext"):], got[name].Underlying)
	}
}

func TestCapability_String(t *testing.T) {
	t.Parallel()
	assert.Equal(t, "Area() float64", AreaCapability.String())
	assert.Equal(t, "Reset()", Capability{Method: "Reset", Params: "()"}.String())
}

func TestReceiverName(t *testing.T) {
	t.Parallel()

	tests := []struct {
		in      string
		name    string
		pointer bool
	}{
		{"Circle", "Circle", false},
		{"*Circle", "Circle", true},
		{"*model[T]", "model", true},
		{"Adapter[T]", "Adapter", false},
		{" * Pair[K, V] ", "Pair", true},
	}
	for _, tt := range tests {
		name, pointer := receiverName(tt.in)
		assert.Equal(t, tt.name, name, tt.in)
		assert.Equal(t, tt.pointer, pointer, tt.in)
	}
}
