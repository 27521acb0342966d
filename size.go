package binstruct

import (
	"fmt"
	"math"

	"golang.org/x/exp/constraints"
)

// Count converts the value of a size field into an element count.
//
// Generated codecs pass 8- and 16-bit size fields through their unsigned
// counterparts, so those never fail. A signed 32-bit size that is negative is
// rejected with ErrInvalidSize.
func Count[T constraints.Integer](v T) (int, error) {
	if v < 0 || uint64(v) > math.MaxInt32 {
		return 0, fmt.Errorf("%w: %d", ErrInvalidSize, v)
	}
	return int(v), nil
}

// CheckLen reports whether the array held by field has the length it is declared with.
func CheckLen(field string, got, want int) error {
	if got != want {
		return fmt.Errorf("%w: %s has %d elements, want %d", ErrSizeMismatch, field, got, want)
	}
	return nil
}
