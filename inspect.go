package polyshape

import (
	"context"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"time"

	sitter "github.com/smacker/go-tree-sitter"

	"github.com/jward/polyshape/internal/runtime"
	"github.com/jward/polyshape/internal/store"
)

// Capability names a single-method capability by its source signature.
// Params and Result are compared as source text with whitespace collapsed.
type Capability struct {
	Method string
	Params string
	Result string
}

// AreaCapability is the Shape capability: Area() float64.
var AreaCapability = Capability{Method: "Area", Params: "()", Result: "float64"}

func (c Capability) String() string {
	if c.Result == "" {
		return c.Method + c.Params
	}
	return c.Method + c.Params + " " + c.Result
}

// Conformance reports one type that has a capability and where the type and
// its method were declared.
type Conformance struct {
	Type            string
	Package         string
	TypeFile        string
	TypeLine        int
	MethodFile      string
	MethodLine      int
	PointerReceiver bool
	// Underlying is the type expression the type is defined over.
	Underlying string
	// Retrofitted is true when the type is a local definition over a type
	// from another package: the capability was attached from outside.
	Retrofitted bool
}

// Detached reports whether the method lives in a different file from the
// type declaration.
func (c Conformance) Detached() bool {
	return c.TypeFile != c.MethodFile
}

// Inspector indexes Go source into a SQLite database and answers which
// types in the indexed tree have a given capability.
type Inspector struct {
	store    *store.Store
	skipDirs map[string]bool
}

// InspectorOption configures an Inspector.
type InspectorOption func(*Inspector)

// WithSkipDirs adds directory names that IndexDirectory does not descend
// into, in addition to hidden and underscore-prefixed directories.
func WithSkipDirs(names ...string) InspectorOption {
	return func(in *Inspector) {
		for _, n := range names {
			in.skipDirs[n] = true
		}
	}
}

// NewInspector creates an Inspector backed by a SQLite database at dbPath.
func NewInspector(dbPath string, opts ...InspectorOption) (*Inspector, error) {
	s, err := store.NewStore(dbPath)
	if err != nil {
		return nil, fmt.Errorf("polyshape: create store: %w", err)
	}
	if err := s.Migrate(); err != nil {
		s.Close()
		return nil, fmt.Errorf("polyshape: migrate: %w", err)
	}

	in := &Inspector{store: s, skipDirs: map[string]bool{"vendor": true, "testdata": true}}
	for _, opt := range opts {
		opt(in)
	}
	return in, nil
}

// Close releases the Inspector's database resources.
func (in *Inspector) Close() error {
	return in.store.Close()
}

// IndexDirectory walks root and indexes every Go file below it. Files
// recorded under root by an earlier run that the walk no longer finds are
// dropped from the index, together with their declarations.
func (in *Inspector) IndexDirectory(ctx context.Context, root string) error {
	absRoot, err := filepath.Abs(root)
	if err != nil {
		return fmt.Errorf("polyshape: resolve %s: %w", root, err)
	}

	var paths []string
	err = filepath.WalkDir(absRoot, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			name := d.Name()
			if path != absRoot && (strings.HasPrefix(name, ".") || strings.HasPrefix(name, "_") || in.skipDirs[name]) {
				return filepath.SkipDir
			}
			return nil
		}
		if _, ok := runtime.LanguageForFile(path); ok {
			paths = append(paths, path)
		}
		return nil
	})
	if err != nil {
		return fmt.Errorf("polyshape: walk %s: %w", root, err)
	}

	if err := in.prune(absRoot, paths); err != nil {
		return err
	}
	return in.IndexFiles(ctx, paths)
}

// prune deletes the indexed files below root that are not in keep.
func (in *Inspector) prune(root string, keep []string) error {
	indexed, err := in.store.FilesUnder(root)
	if err != nil {
		return fmt.Errorf("polyshape: list %s: %w", root, err)
	}
	seen := make(map[string]bool, len(keep))
	for _, p := range keep {
		seen[p] = true
	}
	for _, f := range indexed {
		if seen[f.Path] {
			continue
		}
		if err := in.store.DeleteFile(f.ID); err != nil {
			return fmt.Errorf("polyshape: drop %s: %w", f.Path, err)
		}
	}
	return nil
}

// IndexFiles indexes each path in order, stopping at the first error.
func (in *Inspector) IndexFiles(ctx context.Context, paths []string) error {
	for _, p := range paths {
		if err := ctx.Err(); err != nil {
			return err
		}
		if _, err := in.IndexFile(ctx, p); err != nil {
			return err
		}
	}
	return nil
}

// IndexFile parses one Go file and records its type and method
// declarations. A file whose content hash is unchanged is skipped and
// IndexFile reports false. A changed file replaces its previous rows
// atomically.
func (in *Inspector) IndexFile(ctx context.Context, path string) (bool, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return false, fmt.Errorf("polyshape: resolve %s: %w", path, err)
	}
	lang, ok := runtime.LanguageForFile(abs)
	if !ok {
		return false, fmt.Errorf("polyshape: unsupported file %s", abs)
	}
	src, err := os.ReadFile(abs)
	if err != nil {
		return false, fmt.Errorf("polyshape: read %s: %w", abs, err)
	}

	hash := store.ContentHash(src)
	existing, err := in.store.FileByPath(abs)
	if err != nil {
		return false, fmt.Errorf("polyshape: lookup %s: %w", abs, err)
	}
	if existing != nil && existing.Hash == hash {
		return false, nil
	}

	tree, err := runtime.Parse(ctx, src, lang)
	if err != nil {
		return false, fmt.Errorf("polyshape: parse %s: %w", abs, err)
	}
	defer tree.Close()

	f := &store.File{
		Path:        abs,
		PackageDir:  filepath.Dir(abs),
		Hash:        hash,
		LastIndexed: time.Now(),
	}
	d := &declarations{pkg: f.PackageDir, src: src}
	d.extract(tree.RootNode())
	if err := in.store.ReplaceFile(f, d.types, d.methods); err != nil {
		return false, fmt.Errorf("polyshape: index %s: %w", abs, err)
	}
	return true, nil
}

// declarations collects the top-level type specs and method declarations
// of one parsed file.
type declarations struct {
	pkg     string
	src     []byte
	types   []store.TypeDecl
	methods []store.Method
}

func (d *declarations) extract(root *sitter.Node) {
	for i := 0; i < int(root.NamedChildCount()); i++ {
		node := root.NamedChild(i)
		switch node.Type() {
		case "type_declaration":
			for j := 0; j < int(node.NamedChildCount()); j++ {
				spec := node.NamedChild(j)
				if spec.Type() != "type_spec" {
					continue // aliases share their target's method set
				}
				d.typeSpec(spec)
			}
		case "method_declaration":
			d.method(node)
		}
	}
}

func (d *declarations) typeSpec(spec *sitter.Node) {
	name := spec.ChildByFieldName("name")
	typ := spec.ChildByFieldName("type")
	if name == nil || typ == nil {
		return
	}

	kind := "named"
	switch typ.Type() {
	case "struct_type":
		kind = "struct"
	case "interface_type":
		kind = "interface"
	}

	d.types = append(d.types, store.TypeDecl{
		PackageDir: d.pkg,
		Name:       name.Content(d.src),
		Kind:       kind,
		Underlying: collapseSpace(typ.Content(d.src)),
		IsForeign:  typ.Type() == "qualified_type",
		Line:       int(spec.StartPoint().Row) + 1,
	})
}

func (d *declarations) method(decl *sitter.Node) {
	recvList := decl.ChildByFieldName("receiver")
	name := decl.ChildByFieldName("name")
	params := decl.ChildByFieldName("parameters")
	if recvList == nil || name == nil || params == nil {
		return
	}

	var recvType *sitter.Node
	for i := 0; i < int(recvList.NamedChildCount()); i++ {
		p := recvList.NamedChild(i)
		if p.Type() == "parameter_declaration" {
			recvType = p.ChildByFieldName("type")
			break
		}
	}
	if recvType == nil {
		return
	}
	receiver, pointer := receiverName(recvType.Content(d.src))

	var result string
	if r := decl.ChildByFieldName("result"); r != nil {
		result = collapseSpace(r.Content(d.src))
	}

	d.methods = append(d.methods, store.Method{
		PackageDir:      d.pkg,
		Receiver:        receiver,
		Name:            name.Content(d.src),
		Params:          collapseSpace(params.Content(d.src)),
		Result:          result,
		PointerReceiver: pointer,
		Line:            int(decl.StartPoint().Row) + 1,
	})
}

// receiverName strips the pointer and type arguments from a receiver type:
// "*model[T]" becomes ("model", true).
func receiverName(expr string) (string, bool) {
	expr = strings.TrimSpace(expr)
	pointer := strings.HasPrefix(expr, "*")
	expr = strings.TrimSpace(strings.TrimPrefix(expr, "*"))
	if i := strings.IndexByte(expr, '['); i >= 0 {
		expr = expr[:i]
	}
	return strings.TrimSpace(expr), pointer
}

func collapseSpace(s string) string {
	return strings.Join(strings.Fields(s), " ")
}

// Implementers returns the indexed types that declare the capability's
// method, ordered by package then type name.
func (in *Inspector) Implementers(c Capability) ([]Conformance, error) {
	return in.implementers("", c)
}

// ImplementersIn is Implementers limited to types declared below dir.
func (in *Inspector) ImplementersIn(dir string, c Capability) ([]Conformance, error) {
	abs, err := filepath.Abs(dir)
	if err != nil {
		return nil, fmt.Errorf("polyshape: resolve %s: %w", dir, err)
	}
	return in.implementers(abs, c)
}

func (in *Inspector) implementers(dir string, c Capability) ([]Conformance, error) {
	rows, err := in.store.Implementers(dir, c.Method, collapseSpace(c.Params), collapseSpace(c.Result))
	if err != nil {
		return nil, fmt.Errorf("polyshape: implementers of %s: %w", c, err)
	}
	out := make([]Conformance, 0, len(rows))
	for _, r := range rows {
		out = append(out, Conformance{
			Type:            r.Type,
			Package:         r.PackageDir,
			TypeFile:        r.TypeFile,
			TypeLine:        r.TypeLine,
			MethodFile:      r.MethodFile,
			MethodLine:      r.MethodLine,
			PointerReceiver: r.PointerReceiver,
			Underlying:      r.Underlying,
			Retrofitted:     r.IsForeign,
		})
	}
	return out, nil
}
