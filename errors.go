package binstruct

import (
	"errors"
	"fmt"
	"reflect"
)

var (
	// ErrNilIO indicates that NewReader/NewWriter was called with an nil interface
	ErrNilIO = errors.New("binstruct: NewReader/NewWriter called with a nil io.Reader/io.Writer")

	// ErrSizeTooSmall indicates a size conflict with bufio
	ErrSizeTooSmall = errors.New("binstruct: NewReaderSize with a size smaller than 16 conflict with bufio")

	// ErrAlreadyBuffered indicates that NewReader/NewWriter was called with an already-buffered
	// reader/writer, which would lead to unpredictable behavior and performance issues.
	ErrAlreadyBuffered = errors.New("binstruct: reader or writer is already buffered")

	// ErrInvalidWrite indicates that an io.Writer returned an invalid (negative) count from Write.
	ErrInvalidWrite = errors.New("binstruct: writer returned invalid count from Write")

	// ErrIncompleteRead indicates that the source ended before a value was fully read.
	// Decoding never returns a truncated or zero-filled struct alongside it.
	ErrIncompleteRead = errors.New("binstruct: incomplete read")

	// ErrTrailingData is returned by Unmarshal when non-zero bytes are found
	// after the end of the decoded record.
	ErrTrailingData = errors.New("binstruct: non-zero trailing data found after decoding")

	// ErrCodecNotFound indicates that no codec is registered under the name the
	// naming strategy derives for a type. Usually the generated package was not imported.
	ErrCodecNotFound = errors.New("binstruct: codec not found")

	// ErrCodecMismatch indicates that a codec was asked to handle a value of another type.
	ErrCodecMismatch = errors.New("binstruct: codec type mismatch")

	// ErrNilValue indicates an attempt to write an untyped nil.
	ErrNilValue = errors.New("binstruct: cannot write nil value")

	// ErrInvalidSize indicates that a size field holds a value that is not a valid element count.
	ErrInvalidSize = errors.New("binstruct: invalid array size")

	// ErrSizeMismatch indicates that an array's length differs from its declared size on write.
	ErrSizeMismatch = errors.New("binstruct: array length does not match declared size")
)

func incompleteRead(want, got int, cause error) error {
	return fmt.Errorf("%w: wanted %d bytes, got %d: %w", ErrIncompleteRead, want, got, cause)
}

func typeMismatch(want reflect.Type, v any) error {
	return fmt.Errorf("%w: want %v, got %T", ErrCodecMismatch, want, v)
}
