package compiler

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func structDef(name QualifiedName, fields ...Field) StructDef {
	return StructDef{Name: name, Fields: fields}
}

func TestDependencyChecker(t *testing.T) {
	dc := NewDependencyChecker()

	t.Run("Should accept satisfied dependencies", func(t *testing.T) {
		defs := []StructDef{
			structDef("test/A", NewPrimitive("x", "int32"), NewObject("b", "test/B")),
			structDef("test/B", NewObjectArray("cs", "[]test/C", Fixed{Size: 2}), NewPrimitiveArray("raw", "[]int8", Fixed{Size: 4})),
			structDef("test/C", NewPrimitive("y", "float64")),
		}
		assert.NoError(t, dc.Check(defs))
	})

	t.Run("Should accept shared dependencies", func(t *testing.T) {
		defs := []StructDef{
			structDef("test/A", NewObject("b", "test/C"), NewObject("c", "test/C")),
			structDef("test/B", NewObject("c", "test/C")),
			structDef("test/C"),
		}
		assert.NoError(t, dc.Check(defs))
	})

	t.Run("Should report missing dependency at the field", func(t *testing.T) {
		missing := NewObject("x", "test/X")
		missing.Pos.Filename, missing.Pos.Line = "a.go", 7
		err := dc.Check([]StructDef{structDef("test/A", missing)})
		require.ErrorIs(t, err, ErrDependency)

		var e *Error
		require.ErrorAs(t, err, &e)
		assert.Equal(t, "x: test/X is not a struct", e.Msg)
		assert.Equal(t, 7, e.Pos.Line)
	})

	t.Run("Should resolve object array items", func(t *testing.T) {
		err := dc.Check([]StructDef{structDef("test/A", NewObjectArray("xs", "[]test/X", Fixed{Size: 1}))})
		require.ErrorIs(t, err, ErrDependency)
		assert.Contains(t, err.Error(), "xs: test/X is not a struct")
	})

	t.Run("Should detect self reference", func(t *testing.T) {
		err := dc.Check([]StructDef{structDef("test/A", NewObject("a", "test/A"))})
		require.ErrorIs(t, err, ErrDependency)
		assert.Contains(t, err.Error(), "dependency cycle detected: test/A → test/A")
	})

	t.Run("Should detect cycle with full path", func(t *testing.T) {
		defs := []StructDef{
			structDef("test/A", NewObject("b", "test/B")),
			structDef("test/B", NewObject("c", "test/C")),
			structDef("test/C", NewObjectArray("as", "[]test/A", Fixed{Size: 1})),
		}
		err := dc.Check(defs)
		require.ErrorIs(t, err, ErrDependency)
		assert.Contains(t, err.Error(), "dependency cycle detected: test/A → test/B → test/C → test/A")
	})

	t.Run("Should report only the cycle part of the path", func(t *testing.T) {
		defs := []StructDef{
			structDef("test/Root", NewObject("a", "test/A")),
			structDef("test/A", NewObject("b", "test/B")),
			structDef("test/B", NewObject("a", "test/A")),
		}
		err := dc.Check(defs)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "test/A → test/B → test/A")
		assert.NotContains(t, err.Error(), "test/Root")
	})

	t.Run("Should find cycles regardless of input order", func(t *testing.T) {
		defs := []StructDef{
			structDef("test/C", NewObject("a", "test/A")),
			structDef("test/B", NewObject("c", "test/C")),
			structDef("test/A", NewObject("b", "test/B")),
		}
		err := dc.Check(defs)
		require.ErrorIs(t, err, ErrDependency)
		for _, name := range []string{"test/A", "test/B", "test/C"} {
			assert.Contains(t, err.Error(), name)
		}
	})

	t.Run("Should reject duplicate names", func(t *testing.T) {
		err := dc.Check([]StructDef{structDef("test/A"), structDef("test/A")})
		require.ErrorIs(t, err, ErrDependency)
		assert.Contains(t, err.Error(), "duplicate struct test/A")
	})

	t.Run("Should ignore primitives", func(t *testing.T) {
		defs := []StructDef{structDef("test/A",
			NewPrimitive("a", "int8"),
			NewPrimitiveArray("b", "[]uint16", FieldBased{Field: "a", Type: "int8"}),
		)}
		assert.NoError(t, dc.Check(defs))
	})
}
