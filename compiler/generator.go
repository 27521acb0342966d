package compiler

import (
	"bytes"
	"embed"
	"fmt"
	"go/token"
	"path"
	"strconv"
	"strings"
	"text/template"
	"unicode"

	"github.com/Masterminds/sprig/v3"
	"golang.org/x/tools/imports"

	"github.com/oy3o/binstruct"
)

// RuntimeImport is the import path generated code uses for the runtime package.
const RuntimeImport = "github.com/oy3o/binstruct"

//go:embed templates/codec.go.tmpl
var templateFS embed.FS

var codecTemplate = template.Must(
	template.New("codec.go.tmpl").
		Funcs(sprig.TxtFuncMap()).
		Option("missingkey=error").
		ParseFS(templateFS, "templates/codec.go.tmpl"),
)

// SourceFile is one generated file. Path is slash-separated and relative to the output root.
type SourceFile struct {
	Struct QualifiedName
	Path   string
	Code   []byte
}

// Generator renders the codec of a StructDef. It is safe for concurrent use.
type Generator struct{}

func NewGenerator() *Generator { return &Generator{} }

// CodecPath is where the codec of the named struct is written.
func CodecPath(name QualifiedName) string {
	pkg, codec := binstruct.CodecName(name.Package(), name.ClassNames()...)
	return path.Join(pkg, codec+".go")
}

// Generate renders and formats the codec source of def. def must have passed
// both the Parser and the DependencyChecker.
func (g *Generator) Generate(def StructDef) (SourceFile, error) {
	data, err := newCodecData(def)
	if err != nil {
		return SourceFile{}, err
	}

	var buf bytes.Buffer
	if err := codecTemplate.Execute(&buf, data); err != nil {
		return SourceFile{}, fmt.Errorf("render codec of %s: %w", def.Name, err)
	}

	file := CodecPath(def.Name)
	code, err := imports.Process(file, buf.Bytes(), &imports.Options{
		Comments:   true,
		TabIndent:  true,
		TabWidth:   8,
		FormatOnly: true,
	})
	if err != nil {
		return SourceFile{}, fmt.Errorf("format codec of %s: %w\n%s", def.Name, err, buf.Bytes())
	}
	return SourceFile{Struct: def.Name, Path: file, Code: code}, nil
}

type importSpec struct {
	Alias string
	Path  string
}

type sizeData struct {
	FieldBased bool
	Var        string // decoded count, FieldBased only
	Expr       string // argument of binstruct.Count
	Len        string // length on read
	WriteLen   string // length on write
}

type fieldData struct {
	Name   string
	Var    string
	GoType string // item type for arrays
	Method string
	Object bool
	Array  bool
	Size   sizeData
}

type codecData struct {
	Package  string
	Imports  []importSpec
	Struct   string
	TypeName string
	FullName string
	Fields   []fieldData
}

func newCodecData(def StructDef) (*codecData, error) {
	pkg, codec := binstruct.CodecName(def.Name.Package(), def.Name.ClassNames()...)
	im := newImporter()
	data := &codecData{
		Package:  identifier(path.Base(pkg)),
		Struct:   im.qualify(def.Name),
		TypeName: lowerFirst(codec),
		FullName: pkg + "." + codec,
	}

	vars := make(map[string]string, len(def.Fields))
	for i, f := range def.Fields {
		fd := fieldData{Name: f.FieldName(), Var: "f" + strconv.Itoa(i)}
		switch f := f.(type) {
		case Primitive:
			fd.GoType, fd.Method = string(f.Type), f.Type.Method()
		case Object:
			fd.GoType, fd.Object = im.qualify(f.Type), true
		case PrimitiveArray:
			fd.GoType, fd.Method, fd.Array = string(f.Item), f.Item.Method(), true
			fd.Size = sizeFor(f.Size, i, vars)
		case ObjectArray:
			fd.GoType, fd.Object, fd.Array = im.qualify(f.Item), true, true
			fd.Size = sizeFor(f.Size, i, vars)
		default:
			return nil, fmt.Errorf("codec of %s: unhandled field %T", def.Name, f)
		}
		vars[fd.Name] = fd.Var
		data.Fields = append(data.Fields, fd)
	}
	data.Imports = im.specs()
	return data, nil
}

func sizeFor(m SizeModifier, i int, vars map[string]string) sizeData {
	switch m := m.(type) {
	case Fixed:
		n := strconv.Itoa(m.Size)
		return sizeData{Len: n, WriteLen: n}
	case FieldBased:
		// 8 and 16 bit sizes are zero-extended.
		conv := sizeTypes[m.Type]
		read, write := vars[m.Field], "v."+m.Field
		if conv != "" {
			read, write = conv+"("+read+")", conv+"("+write+")"
		}
		n := "n" + strconv.Itoa(i)
		return sizeData{FieldBased: true, Var: n, Expr: read, Len: n, WriteLen: "int(" + write + ")"}
	}
	panic(fmt.Sprintf("compiler: unhandled size modifier %T", m))
}

// importer assigns a distinct alias to every package the codec refers to.
type importer struct {
	byPath map[string]string
	taken  map[string]bool
	order  []string
}

// reserved are identifiers the template declares itself.
var reserved = []string{"binstruct", "c", "d", "e", "i", "v", "err", "src", "sink", "init"}

func newImporter() *importer {
	im := &importer{byPath: map[string]string{}, taken: map[string]bool{}}
	for _, r := range reserved {
		im.taken[r] = true
	}
	im.byPath[RuntimeImport] = "binstruct"
	im.order = append(im.order, RuntimeImport)
	return im
}

func (im *importer) qualify(name QualifiedName) string {
	pkg := name.Package()
	if pkg == "" {
		return string(name)
	}
	alias, ok := im.byPath[pkg]
	if !ok {
		base := identifier(path.Base(pkg))
		alias = base
		for n := 2; im.taken[alias] || isTemp(alias) || token.IsKeyword(alias); n++ {
			alias = base + strconv.Itoa(n)
		}
		im.taken[alias] = true
		im.byPath[pkg] = alias
		im.order = append(im.order, pkg)
	}
	return alias + "." + name.SimpleName()
}

func (im *importer) specs() []importSpec {
	specs := make([]importSpec, 0, len(im.order))
	for _, p := range im.order {
		specs = append(specs, importSpec{Alias: im.byPath[p], Path: p})
	}
	return specs
}

// isTemp reports whether s could clash with a generated temporary such as f3 or n3.
func isTemp(s string) bool {
	if len(s) < 2 || (s[0] != 'f' && s[0] != 'n') {
		return false
	}
	_, err := strconv.Atoi(s[1:])
	return err == nil
}

// identifier turns a path element into a valid Go identifier.
func identifier(s string) string {
	var b strings.Builder
	for i, r := range s {
		switch {
		case r == '_' || unicode.IsLetter(r):
			b.WriteRune(r)
		case unicode.IsDigit(r):
			if i == 0 {
				b.WriteRune('_')
			}
			b.WriteRune(r)
		default:
			b.WriteRune('_')
		}
	}
	if b.Len() == 0 {
		return "_"
	}
	if token.IsKeyword(b.String()) {
		b.WriteRune('_')
	}
	return b.String()
}

func lowerFirst(s string) string {
	if s == "" {
		return s
	}
	r := []rune(s)
	r[0] = unicode.ToLower(r[0])
	return string(r)
}
