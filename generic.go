package binstruct

import (
	"encoding/binary"
	"io"
)

// Marshal encodes v into a new byte slice using the given byte order.
// A nil Dispatcher means Default.
func Marshal(d Dispatcher, v any, order binary.ByteOrder) ([]byte, error) {
	if d == nil {
		d = Default
	}
	buf := getBuffer()
	defer putBuffer(buf)

	w, err := NewWriter(buf)
	if err != nil {
		return nil, err
	}
	if err := d.Write(v, w.WithByteOrder(order)); err != nil {
		return nil, err
	}
	return append([]byte(nil), buf.Bytes()...), nil
}

// Unmarshal decodes one T from data using the given byte order.
// Trailing bytes after the record must all be zero.
func Unmarshal[T any](d Dispatcher, data []byte, order binary.ByteOrder) (T, error) {
	var zero T
	br := NewBytesReader(data)
	r, err := NewReader(br)
	if err != nil {
		return zero, err
	}
	v, err := Read[T](d, r.WithByteOrder(order))
	if err != nil {
		return zero, err
	}
	if err := CheckTrailingNotZeros(br); err != nil {
		return zero, err
	}
	return v, nil
}

// Encode writes v to w using the given byte order and flushes any buffering it introduced.
func Encode(d Dispatcher, w io.Writer, order binary.ByteOrder, v any) error {
	if d == nil {
		d = Default
	}
	bw, err := NewWriter(w)
	if err != nil {
		return err
	}
	if err := d.Write(v, bw.WithByteOrder(order)); err != nil {
		return err
	}
	return bw.Flush()
}

// Decode reads one T from r using the given byte order.
//
// A *Reader is used as-is, so several records can be decoded from one stream.
// Its byte order is restored before Decode returns.
// Any other stream is buffered and may be consumed past the record.
func Decode[T any](d Dispatcher, r io.Reader, order binary.ByteOrder) (T, error) {
	br, ok := r.(*Reader)
	if ok {
		defer br.WithByteOrder(br.Order())
	} else {
		var err error
		if br, err = NewReader(r); err != nil {
			var zero T
			return zero, err
		}
	}
	return Read[T](d, br.WithByteOrder(order))
}
