package compiler

import "strings"

// QualifiedName names a type the way descriptors spell it: "example.com/geo/Point"
// for named types, the bare Go name for predeclared types and "[]" plus the item
// name for slices.
type QualifiedName string

// primitive describes one of the fixed-width scalar types a struct field may hold.
type primitive struct {
	width  int
	method string // suffix of the Source/Sink method, as in ReadInt32
}

var primitives = map[QualifiedName]primitive{
	"int8":    {1, "Int8"},
	"int16":   {2, "Int16"},
	"uint16":  {2, "Uint16"},
	"int32":   {4, "Int32"},
	"int64":   {8, "Int64"},
	"float32": {4, "Float32"},
	"float64": {8, "Float64"},
}

// sizeTypes are the primitives an array size may be taken from.
var sizeTypes = map[QualifiedName]string{
	"int8":   "uint8",
	"int16":  "uint16",
	"uint16": "",
	"int32":  "",
}

const arrayPrefix = "[]"

func (n QualifiedName) String() string { return string(n) }

// IsPrimitive reports whether n is one of the seven fixed-width primitives.
func (n QualifiedName) IsPrimitive() bool {
	_, ok := primitives[n]
	return ok
}

// Width is the encoded size of a primitive in bytes, or 0 for anything else.
func (n QualifiedName) Width() int { return primitives[n].width }

// Method is the Source/Sink method suffix for a primitive.
func (n QualifiedName) Method() string { return primitives[n].method }

// IsArray reports whether n names any array or slice type.
func (n QualifiedName) IsArray() bool { return strings.HasPrefix(string(n), "[") }

// IsSlice reports whether n names a slice, the only array shape that can be encoded.
func (n QualifiedName) IsSlice() bool { return strings.HasPrefix(string(n), arrayPrefix) }

// IsPrimitiveArray reports whether n is a slice of a primitive.
func (n QualifiedName) IsPrimitiveArray() bool {
	return n.IsSlice() && n.ItemType().IsPrimitive()
}

// IsObjectArray reports whether n is a slice of anything but a primitive.
func (n QualifiedName) IsObjectArray() bool {
	return n.IsSlice() && !n.ItemType().IsPrimitive()
}

// ItemType strips the slice prefix. It returns n unchanged for non-slices.
func (n QualifiedName) ItemType() QualifiedName {
	return QualifiedName(strings.TrimPrefix(string(n), arrayPrefix))
}

// Package is everything before the last "/", or "" for predeclared types.
func (n QualifiedName) Package() string {
	if i := strings.LastIndexByte(string(n), '/'); i >= 0 {
		return string(n[:i])
	}
	return ""
}

// ClassPart is the last path segment.
func (n QualifiedName) ClassPart() string {
	if i := strings.LastIndexByte(string(n), '/'); i >= 0 {
		return string(n[i+1:])
	}
	return string(n)
}

// ClassNames splits the class part into its nesting hierarchy, outermost first.
func (n QualifiedName) ClassNames() []string {
	return strings.Split(n.ClassPart(), ".")
}

// SimpleName is the innermost class name.
func (n QualifiedName) SimpleName() string {
	names := n.ClassNames()
	return names[len(names)-1]
}
