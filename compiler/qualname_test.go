package compiler

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestQualifiedName(t *testing.T) {
	t.Run("Primitives", func(t *testing.T) {
		widths := map[QualifiedName]int{
			"int8": 1, "int16": 2, "uint16": 2, "int32": 4, "int64": 8, "float32": 4, "float64": 8,
		}
		total := 0
		for name, width := range widths {
			assert.True(t, name.IsPrimitive(), name)
			assert.Equal(t, width, name.Width(), name)
			assert.NotEmpty(t, name.Method(), name)
			total += width
		}
		assert.Equal(t, 29, total)

		for _, name := range []QualifiedName{"bool", "uint8", "int", "string", "example.com/m/Point", "[]int32"} {
			assert.False(t, name.IsPrimitive(), name)
			assert.Zero(t, name.Width(), name)
		}
	})

	t.Run("Arrays", func(t *testing.T) {
		n := QualifiedName("[]int32")
		assert.True(t, n.IsArray())
		assert.True(t, n.IsPrimitiveArray())
		assert.False(t, n.IsObjectArray())
		assert.Equal(t, QualifiedName("int32"), n.ItemType())

		o := QualifiedName("[]example.com/m/Point")
		assert.True(t, o.IsObjectArray())
		assert.False(t, o.IsPrimitiveArray())
		assert.Equal(t, QualifiedName("example.com/m/Point"), o.ItemType())

		fixed := QualifiedName("[4]int32")
		assert.True(t, fixed.IsArray())
		assert.False(t, fixed.IsSlice())
		assert.False(t, fixed.IsPrimitiveArray())

		assert.Equal(t, QualifiedName("int32"), QualifiedName("int32").ItemType())
	})

	t.Run("Parts", func(t *testing.T) {
		n := QualifiedName("example.com/deep/pkg/Outer.Inner")
		assert.Equal(t, "example.com/deep/pkg", n.Package())
		assert.Equal(t, "Outer.Inner", n.ClassPart())
		assert.Equal(t, []string{"Outer", "Inner"}, n.ClassNames())
		assert.Equal(t, "Inner", n.SimpleName())

		p := QualifiedName("int64")
		assert.Empty(t, p.Package())
		assert.Equal(t, "int64", p.ClassPart())
		assert.Equal(t, []string{"int64"}, p.ClassNames())
	})
}
