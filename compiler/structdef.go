package compiler

import "go/token"

// StructDef is a validated struct ready for generation. Fields are in wire order.
type StructDef struct {
	Name   QualifiedName
	Fields []Field
	Pos    token.Position
}

// Field is one of Primitive, Object, PrimitiveArray or ObjectArray.
type Field interface {
	FieldName() string
	FieldType() QualifiedName
	Position() token.Position
	isField()
}

// SizeModifier is one of Fixed or FieldBased.
type SizeModifier interface {
	isSizeModifier()
}

type fieldBase struct {
	Name string
	Type QualifiedName
	Pos  token.Position
}

func (f fieldBase) FieldName() string        { return f.Name }
func (f fieldBase) FieldType() QualifiedName { return f.Type }
func (f fieldBase) Position() token.Position { return f.Pos }
func (fieldBase) isField()                   {}

// Primitive holds one fixed-width scalar.
type Primitive struct{ fieldBase }

// Object holds another struct, encoded through its own codec.
type Object struct{ fieldBase }

// PrimitiveArray holds Size scalars of type Item.
type PrimitiveArray struct {
	fieldBase
	Item QualifiedName
	Size SizeModifier
}

// ObjectArray holds Size structs of type Item.
type ObjectArray struct {
	fieldBase
	Item QualifiedName
	Size SizeModifier
}

// Fixed is a size known at generation time.
type Fixed struct {
	Size int
}

// FieldBased takes the size from an earlier primitive field of the same struct.
type FieldBased struct {
	Field string
	Type  QualifiedName
}

func (Fixed) isSizeModifier()      {}
func (FieldBased) isSizeModifier() {}

// NewPrimitive, NewObject, NewPrimitiveArray and NewObjectArray build fields.
// They exist mostly for tests; the parser is the usual source of fields.

func NewPrimitive(name string, typ QualifiedName) Primitive {
	return Primitive{fieldBase{Name: name, Type: typ}}
}

func NewObject(name string, typ QualifiedName) Object {
	return Object{fieldBase{Name: name, Type: typ}}
}

func NewPrimitiveArray(name string, typ QualifiedName, size SizeModifier) PrimitiveArray {
	return PrimitiveArray{fieldBase: fieldBase{Name: name, Type: typ}, Item: typ.ItemType(), Size: size}
}

func NewObjectArray(name string, typ QualifiedName, size SizeModifier) ObjectArray {
	return ObjectArray{fieldBase: fieldBase{Name: name, Type: typ}, Item: typ.ItemType(), Size: size}
}

// dependency returns the struct a field refers to, if any.
func dependency(f Field) (QualifiedName, bool) {
	switch f := f.(type) {
	case Object:
		return f.Type, true
	case ObjectArray:
		return f.Item, true
	}
	return "", false
}
