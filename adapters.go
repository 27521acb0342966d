package binstruct

import (
	"bufio"
	"bytes"
)

type (
	bytesReaderAdapter       struct{ *bytes.Reader }
	bytesBufferReaderAdapter struct{ *bytes.Buffer }
	bytesBufferWriterAdapter struct{ *bytes.Buffer }
	bufioReaderAdapter       struct{ *bufio.Reader }
	bufioWriterAdapter       struct{ *bufio.Writer }
)

func (r *bytesReaderAdapter) Close() error       { return nil }
func (r *bufioReaderAdapter) Close() error       { return nil }
func (w *bufioWriterAdapter) Close() error       { return nil }
func (r *bytesBufferReaderAdapter) Close() error { return nil }
func (w *bytesBufferWriterAdapter) Close() error { return nil }
func (w *bytesBufferWriterAdapter) Flush() error { return nil }

// Size reports the remaining capacity so a Writer stacked on top never asks for more buffering.
func (w *bytesBufferWriterAdapter) Size() int { return w.Available() }
func (r *bytesBufferReaderAdapter) Size() int { return r.Len() }
func (r *bytesReaderAdapter) Size() int       { return int(r.Reader.Size()) }
