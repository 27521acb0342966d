package binstruct

import (
	"bufio"
	"bytes"
	"encoding/binary"
	"io"
	"math"
)

// Zero is an io.Reader that reads an infinite stream of zero bytes.
var Zero io.Reader = zero{}

type zero struct{}

func (z zero) Read(p []byte) (int, error) {
	clear(p)
	return len(p), nil
}

type byteSource interface {
	io.Reader
	io.ByteReader
	io.Closer
	Size() int
}

// Reader is a Source over an io.Reader.
// It wraps bufio.Reader when needed and tracks the first error. Subsequent reads fail with it.
type Reader struct {
	r     byteSource
	count int64 // total bytes read
	err   error // first error encountered.
	order binary.ByteOrder
}

var _ Source = (*Reader)(nil)

// NewReaderSize creates a new Reader with a specified buffer size.
func NewReaderSize(r io.Reader, size int) (*Reader, error) {
	if r == nil {
		return nil, ErrNilIO
	}

	switch reader := r.(type) {
	// Reuse the underlying buffer if it's already a compatible Reader.
	case *Reader:
		if reader.r.Size() >= size {
			return &Reader{r: reader.r, order: reader.order}, nil
		}

	// prevent unpredictable double-buffering.
	case *bufio.Reader:
		if reader.Size() >= size {
			return &Reader{r: &bufioReaderAdapter{Reader: reader}, order: Order}, nil
		}
		return nil, ErrAlreadyBuffered

	// underlying is a buf so we don't need buffering
	case *BytesReader:
		return &Reader{r: reader, order: Order}, nil
	case *bytes.Reader:
		return &Reader{r: &bytesReaderAdapter{reader}, order: Order}, nil
	case *bytes.Buffer:
		return &Reader{r: &bytesBufferReaderAdapter{Buffer: reader}, order: Order}, nil
	}

	if size < 16 {
		return nil, ErrSizeTooSmall
	}

	// default use bufio
	return &Reader{r: &bufioReaderAdapter{Reader: bufio.NewReaderSize(r, size)}, order: Order}, nil
}

// NewReader creates a new Reader with a default buffer size.
func NewReader(r io.Reader) (*Reader, error) {
	return NewReaderSize(r, 4096)
}

// WithByteOrder allows setting a custom byte order and returns
// the configured for chaining.
func (r *Reader) WithByteOrder(order binary.ByteOrder) *Reader {
	r.order = order
	return r
}

// Close closes the underlying reader if it implements io.Closer.
func (r *Reader) Close() error {
	return r.r.Close()
}

// Read implements the io.Reader interface.
func (r *Reader) Read(p []byte) (int, error) {
	if r.err != nil {
		return 0, r.err
	}
	n, err := r.r.Read(p)
	r.count += int64(n)
	if err != io.EOF {
		r.setError(err)
	}
	return n, err
}

func (r *Reader) Order() binary.ByteOrder { return r.order }
func (r *Reader) Count() int64            { return r.count }
func (r *Reader) Err() error              { return r.err }

// setError records the first non-nil error.
func (r *Reader) setError(err error) {
	if r.err == nil && err != nil {
		r.err = err
	}
}

// Result returns the total bytes read and the final error state.
func (r *Reader) Result() (int64, error) {
	return r.count, r.err
}

// readFull fills buf completely. A short read latches an error wrapping ErrIncompleteRead.
func (r *Reader) readFull(buf []byte) error {
	if r.err != nil {
		return r.err
	}
	got, err := io.ReadFull(r, buf)
	if err != nil {
		if err == io.EOF {
			// A clean end-of-stream mid-record is still a truncated record.
			err = io.ErrUnexpectedEOF
		}
		if err == io.ErrUnexpectedEOF {
			err = incompleteRead(len(buf), got, err)
		}
		r.err = err
		return err
	}
	return nil
}

// --- Primitive Read Operations ---

func (r *Reader) ReadInt8() (int8, error) {
	if r.err != nil {
		return 0, r.err
	}
	b, err := r.r.ReadByte()
	if err != nil {
		if err == io.EOF {
			err = incompleteRead(1, 0, io.ErrUnexpectedEOF)
		}
		r.err = err
		return 0, err
	}
	r.count++
	return int8(b), nil
}

func (r *Reader) ReadInt16() (int16, error) {
	v, err := r.ReadUint16()
	return int16(v), err
}

func (r *Reader) ReadUint16() (uint16, error) {
	var buf [2]byte
	if err := r.readFull(buf[:]); err != nil {
		return 0, err
	}
	return r.order.Uint16(buf[:]), nil
}

func (r *Reader) ReadInt32() (int32, error) {
	var buf [4]byte
	if err := r.readFull(buf[:]); err != nil {
		return 0, err
	}
	return int32(r.order.Uint32(buf[:])), nil
}

func (r *Reader) ReadInt64() (int64, error) {
	var buf [8]byte
	if err := r.readFull(buf[:]); err != nil {
		return 0, err
	}
	return int64(r.order.Uint64(buf[:])), nil
}

func (r *Reader) ReadFloat32() (float32, error) {
	var buf [4]byte
	if err := r.readFull(buf[:]); err != nil {
		return 0, err
	}
	return math.Float32frombits(r.order.Uint32(buf[:])), nil
}

func (r *Reader) ReadFloat64() (float64, error) {
	var buf [8]byte
	if err := r.readFull(buf[:]); err != nil {
		return 0, err
	}
	return math.Float64frombits(r.order.Uint64(buf[:])), nil
}
