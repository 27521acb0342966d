package binstruct

import (
	"bufio"
	"bytes"
	"encoding/binary"
	"io"
	"math"
)

type byteSink interface {
	io.Writer
	io.ByteWriter
	io.Closer
	Size() int
	Flush() error
}

// Writer is a Sink over an io.Writer.
// It wraps bufio.Writer for efficiency and tracks the first error that occurs.
// After an error, all subsequent writes fail with it.
type Writer struct {
	w     byteSink
	count int64 // total bytes written
	err   error // first error encountered. Subsequent writes become no-ops.
	depth int
	order binary.ByteOrder
}

var _ Sink = (*Writer)(nil)

// NewWriterSize creates a new Writer with a specified buffer size.
// It returns an error to prevent double-buffering, a common source of bugs.
func NewWriterSize(w io.Writer, size int) (*Writer, error) {
	if w == nil {
		return nil, ErrNilIO
	}

	switch bw := w.(type) {
	// Reuse the underlying buffer if it's already a compatible Writer.
	case *Writer:
		if bw.w.Size() >= size {
			return &Writer{w: bw.w, depth: bw.depth + 1, order: bw.order}, nil
		}

	// prevent unpredictable double-buffering.
	case *bufio.Writer:
		if bw.Size() >= size {
			return &Writer{w: &bufioWriterAdapter{bw}, depth: 1, order: Order}, nil
		}
		return nil, ErrAlreadyBuffered

	// underlying is a buf so we don't need buffering
	case *BytesWriter:
		return &Writer{w: bw, order: Order}, nil
	case *bytes.Buffer:
		return &Writer{w: &bytesBufferWriterAdapter{bw}, order: Order}, nil
	}

	// default use bufio
	return &Writer{w: &bufioWriterAdapter{bufio.NewWriterSize(w, size)}, order: Order}, nil
}

// NewWriter creates a new Writer with a default buffer size.
func NewWriter(w io.Writer) (*Writer, error) {
	return NewWriterSize(w, 0)
}

// WithByteOrder allows setting a custom byte order and returns
// the configured for chaining.
func (w *Writer) WithByteOrder(order binary.ByteOrder) *Writer {
	w.order = order
	return w
}

// Close closes the underlying writer if it implements io.Closer.
func (w *Writer) Close() error {
	return w.w.Close()
}

// Write implements the io.Writer interface.
func (w *Writer) Write(buf []byte) (int, error) {
	if buf == nil || w.err != nil {
		return 0, w.err
	}
	n, err := w.w.Write(buf)
	if n < 0 {
		n, err = 0, ErrInvalidWrite
	}
	w.count += int64(n)
	w.setError(err)
	return n, w.err
}

func (w *Writer) Order() binary.ByteOrder { return w.order }
func (w *Writer) Count() int64            { return w.count }
func (w *Writer) Err() error              { return w.err }

// setError records the first non-nil error.
// This preserves the root cause of a failure chain instead of a later,
// less relevant error.
func (w *Writer) setError(err error) {
	if w.err == nil && err != nil {
		w.err = err
	}
}

// Result flushes the buffer and returns the final count and error state.
func (w *Writer) Result() (int64, error) {
	w.Flush()
	return w.count, w.err
}

// Flush writes any buffered data to the underlying io.Writer.
func (w *Writer) Flush() error {
	// Only the outermost writer should be responsible for the final flush.
	if w.depth > 0 || w.err != nil {
		return w.err
	}
	err := w.w.Flush()
	w.setError(err)
	return err
}

// --- Primitive Write Operations ---

func (w *Writer) WriteInt8(v int8) error {
	if w.err != nil {
		return w.err
	}
	err := w.w.WriteByte(uint8(v))
	if err == nil {
		w.count++
	} else {
		w.err = err
	}
	return err
}

func (w *Writer) WriteInt16(v int16) error {
	return w.WriteUint16(uint16(v))
}

func (w *Writer) WriteUint16(v uint16) error {
	if w.err != nil {
		return w.err
	}
	var buf [2]byte
	w.order.PutUint16(buf[:], v)
	_, err := w.Write(buf[:])
	return err
}

func (w *Writer) WriteInt32(v int32) error {
	if w.err != nil {
		return w.err
	}
	var buf [4]byte
	w.order.PutUint32(buf[:], uint32(v))
	_, err := w.Write(buf[:])
	return err
}

func (w *Writer) WriteInt64(v int64) error {
	if w.err != nil {
		return w.err
	}
	var buf [8]byte
	w.order.PutUint64(buf[:], uint64(v))
	_, err := w.Write(buf[:])
	return err
}

func (w *Writer) WriteFloat32(v float32) error {
	if w.err != nil {
		return w.err
	}
	var buf [4]byte
	w.order.PutUint32(buf[:], math.Float32bits(v))
	_, err := w.Write(buf[:])
	return err
}

func (w *Writer) WriteFloat64(v float64) error {
	if w.err != nil {
		return w.err
	}
	var buf [8]byte
	w.order.PutUint64(buf[:], math.Float64bits(v))
	_, err := w.Write(buf[:])
	return err
}
