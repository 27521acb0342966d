// Package fixtures holds struct declarations exercised by the round-trip tests.
// Their codecs are checked in under binstructgen/.
package fixtures

//go:generate go run github.com/oy3o/binstruct/cmd/binstructgen -o . .

// AllPrimitives has one field of every primitive, 29 bytes on the wire.
//
//binstruct:struct
type AllPrimitives struct {
	Byte   int8
	Short  int16
	Char   uint16
	Int    int32
	Long   int64
	Float  float32
	Double float64
}

//binstruct:struct
type Simple struct {
	Field int32
}

//binstruct:struct
type Member struct {
	Field Simple
}

//binstruct:struct
type Nested struct {
	Field int64
	Child Member
}

//binstruct:struct
type AllPrimitiveArrays struct {
	Bytes   []int8    `binstruct:"size=13"`
	Shorts  []int16   `binstruct:"size=13"`
	Chars   []uint16  `binstruct:"size=13"`
	Ints    []int32   `binstruct:"size=13"`
	Longs   []int64   `binstruct:"size=13"`
	Floats  []float32 `binstruct:"size=13"`
	Doubles []float64 `binstruct:"size=13"`
}

//binstruct:struct
type ObjectArray struct {
	Items []Simple `binstruct:"size=3"`
}

//binstruct:struct
type NestedObjectArray struct {
	Arrays []ObjectArray `binstruct:"size=2"`
}

// Payload sizes its arrays from earlier fields.
//
//binstruct:struct
type Payload struct {
	Count  int8
	Length uint16
	Points []Simple `binstruct:"sizefield=Count"`
	Data   []int8   `binstruct:"sizefield=Length"`
}

//binstruct:struct
type Signed struct {
	N      int32
	Values []int16 `binstruct:"sizefield=N"`
}

//binstruct:struct
type Large struct {
	Values []int32 `binstruct:"size=1337"`
}
