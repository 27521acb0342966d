// Package frontend finds marked struct declarations in Go packages and describes
// them to the compiler.
package frontend

import (
	"context"
	"fmt"
	"go/ast"
	"go/parser"
	"go/token"
	"go/types"
	"path/filepath"
	"reflect"
	"strconv"
	"strings"

	"github.com/bmatcuk/doublestar/v4"
	"golang.org/x/tools/go/packages"

	"github.com/oy3o/binstruct/compiler"
)

// Options select the packages to scan and how structs are marked.
type Options struct {
	Dir      string
	Patterns []string
	Marker   string   // comment directive, such as //binstruct:struct
	Tag      string   // struct tag key holding size declarations
	Exclude  []string // doublestar globs, relative to Dir
	Tests    bool
}

// Batch is what one scan produced. Diagnostics are per declaration or per package
// and do not stop other declarations from being described.
type Batch struct {
	Descriptors []compiler.ClassDescriptor
	Diagnostics []error
}

// Load type-checks the packages matched by opts and describes every marked type.
func Load(ctx context.Context, opts Options) (*Batch, error) {
	dir, err := filepath.Abs(opts.Dir)
	if err != nil {
		return nil, fmt.Errorf("resolve %s: %w", opts.Dir, err)
	}
	for _, pattern := range opts.Exclude {
		if !doublestar.ValidatePattern(pattern) {
			return nil, fmt.Errorf("invalid exclude pattern %q", pattern)
		}
	}

	cfg := &packages.Config{
		Context: ctx,
		Mode: packages.NeedName | packages.NeedFiles | packages.NeedSyntax |
			packages.NeedTypes | packages.NeedTypesInfo,
		Dir:   dir,
		Tests: opts.Tests,
		ParseFile: func(fset *token.FileSet, filename string, src []byte) (*ast.File, error) {
			return parser.ParseFile(fset, filename, src, parser.ParseComments)
		},
	}
	pkgs, err := packages.Load(cfg, opts.Patterns...)
	if err != nil {
		return nil, fmt.Errorf("load packages: %w", err)
	}

	batch := &Batch{}
	seen := make(map[compiler.QualifiedName]bool)
	for _, pkg := range pkgs {
		for _, e := range pkg.Errors {
			batch.Diagnostics = append(batch.Diagnostics, fmt.Errorf("%s: %s", pkg.PkgPath, e))
		}
		if pkg.Types == nil || pkg.TypesInfo == nil {
			continue
		}

		files := make([]*ast.File, 0, len(pkg.Syntax))
		for _, f := range pkg.Syntax {
			if !excluded(dir, pkg.Fset.Position(f.Package).Filename, opts.Exclude) {
				files = append(files, f)
			}
		}

		descs, diags := Describe(pkg.Fset, files, pkg.Types, pkg.TypesInfo, opts.Marker, opts.Tag)
		batch.Diagnostics = append(batch.Diagnostics, diags...)
		// Test variants repeat the declarations of the package under test.
		for _, d := range descs {
			if !seen[d.Name] {
				seen[d.Name] = true
				batch.Descriptors = append(batch.Descriptors, d)
			}
		}
	}
	return batch, nil
}

func excluded(dir, filename string, patterns []string) bool {
	rel, err := filepath.Rel(dir, filename)
	if err != nil {
		rel = filename
	}
	rel = filepath.ToSlash(rel)
	for _, pattern := range patterns {
		if ok, _ := doublestar.Match(pattern, rel); ok {
			return true
		}
	}
	return false
}

// Describe builds descriptors for the type declarations in files that carry marker.
func Describe(fset *token.FileSet, files []*ast.File, pkg *types.Package, info *types.Info, marker, tag string) ([]compiler.ClassDescriptor, []error) {
	var (
		descs []compiler.ClassDescriptor
		diags []error
	)
	for _, file := range files {
		for _, decl := range file.Decls {
			gen, ok := decl.(*ast.GenDecl)
			if !ok || gen.Tok != token.TYPE {
				continue
			}
			for _, spec := range gen.Specs {
				ts := spec.(*ast.TypeSpec)
				doc := ts.Doc
				if doc == nil && len(gen.Specs) == 1 {
					doc = gen.Doc
				}
				if !hasMarker(doc, marker) {
					continue
				}

				pos := fset.Position(ts.Name.Pos())
				if pkg.Name() == "main" {
					diags = append(diags, &compiler.Error{
						Kind: compiler.ErrShape,
						Msg:  ts.Name.Name + ": structs cannot be declared in package main",
						Pos:  pos,
					})
					continue
				}
				if internalPath(pkg.Path()) {
					// The codec package would live outside the tree allowed to import it.
					diags = append(diags, &compiler.Error{
						Kind: compiler.ErrShape,
						Msg:  ts.Name.Name + ": structs cannot be declared in internal package " + pkg.Path(),
						Pos:  pos,
					})
					continue
				}
				obj, ok := info.Defs[ts.Name].(*types.TypeName)
				if !ok {
					continue
				}
				descs = append(descs, describe(fset, obj, pos, tag))
			}
		}
	}
	return descs, diags
}

// internalPath reports whether path has an "internal" element.
func internalPath(path string) bool {
	for _, elem := range strings.Split(path, "/") {
		if elem == "internal" {
			return true
		}
	}
	return false
}

func hasMarker(doc *ast.CommentGroup, marker string) bool {
	if doc == nil {
		return false
	}
	for _, c := range doc.List {
		if strings.TrimSpace(c.Text) == marker {
			return true
		}
	}
	return false
}

func describe(fset *token.FileSet, obj *types.TypeName, pos token.Position, tag string) compiler.ClassDescriptor {
	d := compiler.ClassDescriptor{
		Name:       compiler.QualifiedName(obj.Pkg().Path() + "/" + obj.Name()),
		Kind:       compiler.KindOther,
		Visibility: compiler.Public,
		Sizes:      map[string][]compiler.SizeDecl{},
		Pos:        pos,
	}
	if !obj.Exported() {
		d.Visibility = compiler.Private
	}
	if obj.IsAlias() {
		return d
	}
	named, ok := obj.Type().(*types.Named)
	if !ok {
		return d
	}
	if named.TypeParams().Len() > 0 {
		d.Flags |= compiler.FlagGeneric
	}

	switch u := named.Underlying().(type) {
	case *types.Interface:
		d.Kind = compiler.KindInterface
	case *types.Struct:
		d.Kind = compiler.KindClass
		// Keyed composite literals act as the one constructor, taking every field in order.
		ctor := compiler.Constructor{Visibility: compiler.Public, Pos: pos}
		for i := 0; i < u.NumFields(); i++ {
			v := u.Field(i)
			fpos := fset.Position(v.Pos())
			typ := typeRef(v.Type())
			ctor.Params = append(ctor.Params, compiler.Parameter{Name: v.Name(), Type: typ, Pos: fpos})

			prop := compiler.Property{Name: v.Name(), Type: typ, HasBackingField: true, Pos: fpos}
			if !v.Exported() {
				prop.Visibility = compiler.Private
			}
			d.Properties = append(d.Properties, prop)

			if decls := sizeDecls(u.Tag(i), tag, fpos); len(decls) > 0 {
				d.Sizes[v.Name()] = decls
			}
		}
		d.Constructors = []compiler.Constructor{ctor}
	}
	return d
}

// typeRef spells t the way the compiler classifies types.
func typeRef(t types.Type) compiler.TypeRef {
	switch t := types.Unalias(t).(type) {
	case *types.Basic:
		return compiler.TypeRef{Name: compiler.QualifiedName(t.Name())}
	case *types.Named:
		obj := t.Obj()
		name := obj.Name()
		if obj.Pkg() != nil {
			name = obj.Pkg().Path() + "/" + name
		}
		ref := compiler.TypeRef{Name: compiler.QualifiedName(name)}
		for i := 0; i < t.TypeArgs().Len(); i++ {
			ref.Args = append(ref.Args, typeRef(t.TypeArgs().At(i)))
		}
		return ref
	case *types.Pointer:
		ref := typeRef(t.Elem())
		ref.Nullable = true
		return ref
	case *types.Slice:
		item := typeRef(t.Elem())
		ref := compiler.TypeRef{Name: "[]" + item.Name}
		if !item.Name.IsPrimitive() {
			ref.Args = []compiler.TypeRef{item}
		}
		return ref
	case *types.Array:
		item := typeRef(t.Elem())
		return compiler.TypeRef{Name: compiler.QualifiedName(fmt.Sprintf("[%d]%s", t.Len(), item.Name))}
	case *types.Map:
		return compiler.TypeRef{Name: "map", Args: []compiler.TypeRef{typeRef(t.Key()), typeRef(t.Elem())}}
	default:
		return compiler.TypeRef{Name: compiler.QualifiedName(types.TypeString(t, nil))}
	}
}

// sizeDecls parses `binstruct:"size=16"` and `binstruct:"sizefield=Count"`.
func sizeDecls(structTag, key string, pos token.Position) []compiler.SizeDecl {
	value, ok := reflect.StructTag(structTag).Lookup(key)
	if !ok {
		return nil
	}
	var decls []compiler.SizeDecl
	for _, opt := range strings.Split(value, ",") {
		opt = strings.TrimSpace(opt)
		if opt == "" {
			continue
		}
		decl := compiler.SizeDecl{Raw: opt, Pos: pos}
		name, arg, _ := strings.Cut(opt, "=")
		switch name {
		case "size":
			if n, err := strconv.Atoi(arg); err == nil {
				decl.Kind, decl.Size = compiler.SizeFixed, n
			}
		case "sizefield":
			if arg != "" {
				decl.Kind, decl.Field = compiler.SizeField, arg
			}
		}
		decls = append(decls, decl)
	}
	return decls
}
