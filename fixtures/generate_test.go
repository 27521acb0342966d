package fixtures_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/oy3o/binstruct/compiler"
	"github.com/oy3o/binstruct/internal/frontend"
)

// TestCheckedInCodecs regenerates every codec of this package and compares it
// with the file under binstructgen/.
func TestCheckedInCodecs(t *testing.T) {
	batch, err := frontend.Load(context.Background(), frontend.Options{
		Dir:      ".",
		Patterns: []string{"."},
		Marker:   "//binstruct:struct",
		Tag:      "binstruct",
	})
	require.NoError(t, err)
	require.Empty(t, batch.Diagnostics)
	require.Len(t, batch.Descriptors, 10)

	parser := compiler.NewParser()
	defs := make([]compiler.StructDef, 0, len(batch.Descriptors))
	for _, d := range batch.Descriptors {
		def, err := parser.Parse(d)
		require.NoError(t, err, d.Name)
		defs = append(defs, def)
	}
	require.NoError(t, compiler.NewDependencyChecker().Check(defs))

	gen := compiler.NewGenerator()
	for _, def := range defs {
		t.Run(def.Name.SimpleName(), func(t *testing.T) {
			src, err := gen.Generate(def)
			require.NoError(t, err)

			want, err := os.ReadFile(filepath.FromSlash(src.Path))
			require.NoError(t, err, "run go generate to create %s", src.Path)
			assert.Equal(t, string(want), string(src.Code), "run go generate to update %s", src.Path)
		})
	}
}
