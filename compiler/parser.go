package compiler

import "go/token"

// Parser validates class descriptors and turns them into StructDefs.
// It stops at the first violation of each descriptor.
type Parser struct{}

func NewParser() *Parser { return &Parser{} }

// Parse validates c and classifies its fields. The returned error is an *Error.
func (p *Parser) Parse(c ClassDescriptor) (StructDef, error) {
	if err := checkClass(&c); err != nil {
		return StructDef{}, err
	}
	ctor := c.Constructors[0]
	if err := checkConstructor(&c, ctor); err != nil {
		return StructDef{}, err
	}

	def := StructDef{Name: c.Name, Pos: c.Pos, Fields: make([]Field, 0, len(ctor.Params))}
	for _, param := range ctor.Params {
		prop, err := bind(&c, param)
		if err != nil {
			return StructDef{}, err
		}
		f, err := classify(&c, def.Fields, param, prop)
		if err != nil {
			return StructDef{}, err
		}
		def.Fields = append(def.Fields, f)
	}
	return def, nil
}

func checkClass(c *ClassDescriptor) error {
	var msg string
	switch {
	case c.Flags.Has(FlagSealed):
		msg = "sealed types are not supported"
	case c.Kind == KindEnum || c.Kind == KindEnumEntry:
		msg = "enum types are not supported"
	case c.Kind == KindInterface:
		msg = "interfaces are not supported"
	case c.Flags.Has(FlagAbstract):
		msg = "abstract types are not supported"
	case c.Kind == KindObject:
		msg = "singleton objects are not supported"
	case c.Flags.Has(FlagInner):
		msg = "inner types are not supported"
	case c.Flags.Has(FlagInline):
		msg = "inline types are not supported"
	case c.Flags.Has(FlagExternal):
		msg = "external types are not supported"
	case c.Flags.Has(FlagExpect):
		msg = "forward declarations are not supported"
	case c.Flags.Has(FlagGeneric):
		msg = "generic types are not supported"
	case c.Kind != KindClass:
		msg = string(c.Name) + " is not a struct type"
	case c.Visibility.Hidden():
		msg = string(c.Name) + " must be exported"
	case len(c.Constructors) != 1:
		msg = "struct types must have exactly one constructor"
	default:
		return nil
	}
	return errorf(ErrShape, c.Pos, "%s", msg)
}

func checkConstructor(c *ClassDescriptor, ctor Constructor) error {
	pos := ctor.Pos
	if !pos.IsValid() {
		pos = c.Pos
	}
	if ctor.Visibility.Hidden() {
		return errorf(ErrShape, pos, "constructor of %s must be public", c.Name)
	}
	for _, param := range ctor.Params {
		if param.Variadic {
			return errorf(ErrShape, position(param.Pos, pos), "%s: variadic fields are not supported", param.Name)
		}
		if len(param.Type.Args) > 0 && !isObjectArray(param.Type) {
			return errorf(ErrShape, position(param.Pos, pos), "%s: generic type %s is not supported", param.Name, param.Type)
		}
	}
	return nil
}

// isObjectArray accepts a slice of exactly one plain, non-array struct type.
func isObjectArray(t TypeRef) bool {
	if !t.Name.IsSlice() || len(t.Args) != 1 {
		return false
	}
	item := t.Args[0]
	return !item.Name.IsArray() && len(item.Args) == 0 && !item.Nullable && item.Name == t.Name.ItemType()
}

func bind(c *ClassDescriptor, param Parameter) (Property, error) {
	pos := position(param.Pos, c.Pos)
	prop, ok := c.property(param.Name)
	if !ok {
		return prop, errorf(ErrShape, pos, "%s: no property matches this parameter", param.Name)
	}
	pos = position(prop.Pos, pos)
	switch {
	case !prop.Type.Equal(param.Type):
		return prop, errorf(ErrShape, pos, "%s: property type %s differs from parameter type %s", param.Name, prop.Type, param.Type)
	case !prop.HasBackingField:
		return prop, errorf(ErrShape, pos, "%s: property has no backing field", param.Name)
	case prop.Type.Nullable:
		return prop, errorf(ErrShape, pos, "%s: nullable fields are not supported", param.Name)
	case prop.Type.Name == "bool":
		return prop, errorf(ErrShape, pos, "%s: boolean fields are not supported", param.Name)
	case prop.Visibility.Hidden():
		return prop, errorf(ErrShape, pos, "%s: field must be exported", param.Name)
	}
	return prop, nil
}

func classify(c *ClassDescriptor, earlier []Field, param Parameter, prop Property) (Field, error) {
	pos := position(prop.Pos, position(param.Pos, c.Pos))
	typ := prop.Type.Name
	base := fieldBase{Name: param.Name, Type: typ, Pos: pos}
	decls := c.Sizes[param.Name]

	if !typ.IsArray() {
		if len(decls) > 0 {
			return nil, errorf(ErrSize, pos, "%s: size declared on a field that is not an array", param.Name)
		}
		if typ.IsPrimitive() {
			return Primitive{base}, nil
		}
		return Object{base}, nil
	}

	if !typ.IsSlice() {
		return nil, errorf(ErrShape, pos, "%s: fixed-length arrays are not supported, use a slice with a size", param.Name)
	}
	if typ.ItemType().IsArray() {
		return nil, errorf(ErrShape, pos, "%s: arrays of arrays are not supported", param.Name)
	}
	size, err := sizeOf(param.Name, pos, decls, earlier)
	if err != nil {
		return nil, err
	}
	if typ.IsPrimitiveArray() {
		return PrimitiveArray{fieldBase: base, Item: typ.ItemType(), Size: size}, nil
	}
	return ObjectArray{fieldBase: base, Item: typ.ItemType(), Size: size}, nil
}

func sizeOf(name string, pos token.Position, decls []SizeDecl, earlier []Field) (SizeModifier, error) {
	switch len(decls) {
	case 0:
		return nil, errorf(ErrSize, pos, "%s: array field has no size declaration", name)
	case 1:
	default:
		return nil, errorf(ErrSize, position(decls[1].Pos, pos), "%s: array field has %d size declarations, want exactly one", name, len(decls))
	}

	decl := decls[0]
	pos = position(decl.Pos, pos)
	switch decl.Kind {
	case SizeFixed:
		if decl.Size < 0 {
			return nil, errorf(ErrSize, pos, "%s: size must not be negative, got %d", name, decl.Size)
		}
		return Fixed{Size: decl.Size}, nil
	case SizeField:
		for _, f := range earlier {
			if f.FieldName() != decl.Field {
				continue
			}
			p, ok := f.(Primitive)
			if !ok {
				return nil, errorf(ErrSize, pos, "%s: size field %s is not a primitive", name, decl.Field)
			}
			if _, ok := sizeTypes[p.Type]; !ok {
				return nil, errorf(ErrSize, pos, "%s: size field %s has type %s, want int8, int16, uint16 or int32", name, decl.Field, p.Type)
			}
			return FieldBased{Field: p.Name, Type: p.Type}, nil
		}
		return nil, errorf(ErrSize, pos, "%s: size field %s must be declared before the array", name, decl.Field)
	default:
		return nil, errorf(ErrSize, pos, "%s: unrecognized size declaration %q", name, decl.Raw)
	}
}

func position(pos, fallback token.Position) token.Position {
	if pos.IsValid() {
		return pos
	}
	return fallback
}
