package binstruct

import (
	"math"
	"reflect"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCodecName(t *testing.T) {
	t.Run("Should place the codec under the base package", func(t *testing.T) {
		pkg, name := CodecName("example.com/geo", "Point")
		assert.Equal(t, "binstructgen/example.com/geo", pkg)
		assert.Equal(t, "Point_Codec", name)
	})

	t.Run("Should join a type hierarchy", func(t *testing.T) {
		pkg, name := CodecName("example.com/geo", "Shape", "Corner")
		assert.Equal(t, "binstructgen/example.com/geo", pkg)
		assert.Equal(t, "Shape_Corner_Codec", name)
	})

	t.Run("Should handle an empty package path", func(t *testing.T) {
		assert.Equal(t, "binstructgen.Point_Codec", FullCodecName("", "Point"))
	})

	t.Run("Should derive the same name from a reflect.Type", func(t *testing.T) {
		assert.Equal(t,
			FullCodecName("github.com/oy3o/binstruct", "point"),
			CodecNameOf(reflect.TypeFor[point]()),
		)
	})
}

func TestCount(t *testing.T) {
	n, err := Count(uint8(255))
	assert.NoError(t, err)
	assert.Equal(t, 255, n)

	n, err = Count(uint16(math.MaxUint16))
	assert.NoError(t, err)
	assert.Equal(t, math.MaxUint16, n)

	n, err = Count(int32(math.MaxInt32))
	assert.NoError(t, err)
	assert.Equal(t, math.MaxInt32, n)

	_, err = Count(int32(-1))
	assert.ErrorIs(t, err, ErrInvalidSize)

	_, err = Count(int64(math.MaxInt32) + 1)
	assert.ErrorIs(t, err, ErrInvalidSize)
}

func TestCheckLen(t *testing.T) {
	assert.NoError(t, CheckLen("Items", 3, 3))

	err := CheckLen("Items", 2, 3)
	assert.ErrorIs(t, err, ErrSizeMismatch)
	assert.Contains(t, err.Error(), "Items has 2 elements, want 3")
}
