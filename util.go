package binstruct

import (
	"encoding/binary"
	"fmt"
	"io"
)

var (
	BE = binary.BigEndian
	LE = binary.LittleEndian
	// Order is the byte order new Readers and Writers start with.
	Order binary.ByteOrder = BE
)

// MAX_PADDING defines the maximum number of trailing bytes to check.
// Anything larger is considered a framing error.
const MAX_PADDING = 1024 // 1KB

// CheckTrailingNotZeros verifies that any remaining bytes in a reader are all zero.
func CheckTrailingNotZeros(r io.Reader) error {
	// Fast path for a common reader type to avoid any allocations.
	if reader, ok := r.(*BytesReader); ok {
		return CheckBufferNotZeros(reader.B[min(reader.N, len(reader.B)):])
	}

	// We read up to MAX_PADDING + 1 bytes; if that succeeds, there was too much data.
	lr := &io.LimitedReader{R: r, N: MAX_PADDING + 1}

	trailingData, err := io.ReadAll(lr)
	if err != nil {
		return err
	}
	return CheckBufferNotZeros(trailingData)
}

// CheckBufferNotZeros is CheckTrailingNotZeros for data already in memory.
func CheckBufferNotZeros(data []byte) error {
	if len(data) > MAX_PADDING {
		return fmt.Errorf("%w: exceeds maximum expected size of %d bytes", ErrTrailingData, MAX_PADDING)
	}
	for i, b := range data {
		if b != 0 {
			return fmt.Errorf("%w: found non-zero byte 0x%02x at offset %d", ErrTrailingData, b, i)
		}
	}
	return nil
}
