package compiler

import "go/token"

// Kind is the broad shape of a declared type.
type Kind int

const (
	KindClass Kind = iota
	KindInterface
	KindEnum
	KindEnumEntry
	KindObject
	KindOther
)

// Flags are modifiers that make a class unusable as a struct.
type Flags uint16

const (
	FlagSealed Flags = 1 << iota
	FlagAbstract
	FlagInner
	FlagInline
	FlagExternal
	FlagExpect
	FlagGeneric
)

func (f Flags) Has(flag Flags) bool { return f&flag != 0 }

type Visibility int

const (
	Public Visibility = iota
	Internal
	Protected
	Private
)

// Hidden reports whether v keeps a declaration out of reach of generated code.
func (v Visibility) Hidden() bool { return v == Protected || v == Private }

// TypeRef is a reference to a type as written at a use site.
type TypeRef struct {
	Name     QualifiedName
	Args     []TypeRef
	Nullable bool
}

// Equal reports whether two references denote the identical type.
func (t TypeRef) Equal(o TypeRef) bool {
	if t.Name != o.Name || t.Nullable != o.Nullable || len(t.Args) != len(o.Args) {
		return false
	}
	for i := range t.Args {
		if !t.Args[i].Equal(o.Args[i]) {
			return false
		}
	}
	return true
}

func (t TypeRef) String() string {
	s := string(t.Name)
	if len(t.Args) > 0 {
		s += "["
		for i, a := range t.Args {
			if i > 0 {
				s += ", "
			}
			s += a.String()
		}
		s += "]"
	}
	if t.Nullable {
		s = "*" + s
	}
	return s
}

type Parameter struct {
	Name     string
	Type     TypeRef
	Variadic bool
	Pos      token.Position
}

type Constructor struct {
	Visibility Visibility
	Params     []Parameter
	Pos        token.Position
}

type Property struct {
	Name            string
	Type            TypeRef
	Visibility      Visibility
	HasBackingField bool
	Pos             token.Position
}

// SizeDeclKind tells how an array size was declared on a field.
type SizeDeclKind int

const (
	SizeUnknown SizeDeclKind = iota
	SizeFixed
	SizeField
)

// SizeDecl is one size declaration found on a field.
type SizeDecl struct {
	Kind  SizeDeclKind
	Size  int    // SizeFixed
	Field string // SizeField
	Raw   string // declaration text, for diagnostics
	Pos   token.Position
}

// ClassDescriptor is everything the parser needs to know about a declared type.
// Front-ends build it from whatever metadata their host provides.
type ClassDescriptor struct {
	Name         QualifiedName
	Kind         Kind
	Flags        Flags
	Visibility   Visibility
	Constructors []Constructor
	Properties   []Property
	Sizes        map[string][]SizeDecl
	Pos          token.Position
}

func (c *ClassDescriptor) property(name string) (Property, bool) {
	for _, p := range c.Properties {
		if p.Name == name {
			return p, true
		}
	}
	return Property{}, false
}
