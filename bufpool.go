package binstruct

import (
	"bytes"
	"sync"
)

// bytesBufPool reuses buffers for encoding records of unknown size.
var bytesBufPool = sync.Pool{
	New: func() any {
		// A 4KB default is chosen to avoid re-allocations for common record sizes.
		return bytes.NewBuffer(make([]byte, 0, 4096))
	},
}

func getBuffer() *bytes.Buffer {
	buf := bytesBufPool.Get().(*bytes.Buffer)
	buf.Reset()
	return buf
}

func putBuffer(buf *bytes.Buffer) {
	// Oversized buffers would pin memory for the lifetime of the pool.
	if buf.Cap() > 1<<20 {
		return
	}
	bytesBufPool.Put(buf)
}
