package binstruct

import "reflect"

// Source is the read side of a binary transport. Every method reads exactly
// the width of its primitive, in the transport's byte order.
//
// When the underlying buffer or stream ends before the value is complete,
// the returned error wraps ErrIncompleteRead.
type Source interface {
	ReadInt8() (int8, error)
	ReadInt16() (int16, error)
	ReadUint16() (uint16, error)
	ReadInt32() (int32, error)
	ReadInt64() (int64, error)
	ReadFloat32() (float32, error)
	ReadFloat64() (float64, error)
}

// Sink is the write side of a binary transport. Errors from the underlying
// resource are returned as-is.
type Sink interface {
	WriteInt8(v int8) error
	WriteInt16(v int16) error
	WriteUint16(v uint16) error
	WriteInt32(v int32) error
	WriteInt64(v int64) error
	WriteFloat32(v float32) error
	WriteFloat64(v float64) error
}

// Codec reads and writes values of exactly one struct type.
//
// Implementations are generated by binstructgen. A codec carries no byte order
// of its own: the same codec produces big- or little-endian records depending
// on the Source or Sink it is handed.
type Codec[T any] interface {
	// Read decodes one T from src. It never returns a partially populated value.
	Read(src Source) (T, error)
	// Write encodes v into sink, fields in declaration order, without padding.
	Write(v T, sink Sink) error
}

// Dispatcher resolves the codec of a struct type at run time. Generated codecs
// delegate nested struct fields to it, which is what allows structs to be
// composed without the generator knowing their layout.
type Dispatcher interface {
	// Read decodes a value of the struct type t from src.
	Read(t reflect.Type, src Source) (any, error)
	// Write encodes v using the codec of its dynamic type.
	Write(v any, sink Sink) error
}

// AnyCodec is a Codec with its type parameter erased, as stored by the
// Runtime cache and returned by a Loader.
type AnyCodec interface {
	ReadAny(src Source) (any, error)
	WriteAny(v any, sink Sink) error
}

// Erase adapts a typed codec to AnyCodec.
func Erase[T any](c Codec[T]) AnyCodec {
	return erased[T]{c}
}

type erased[T any] struct {
	c Codec[T]
}

func (e erased[T]) ReadAny(src Source) (any, error) {
	v, err := e.c.Read(src)
	if err != nil {
		return nil, err
	}
	return v, nil
}

func (e erased[T]) WriteAny(v any, sink Sink) error {
	t, ok := v.(T)
	if !ok {
		return typeMismatch(reflect.TypeFor[T](), v)
	}
	return e.c.Write(t, sink)
}
