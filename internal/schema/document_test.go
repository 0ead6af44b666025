package schema

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vektah/gqlparser/v2/ast"
)

func TestLoad(t *testing.T) {
	t.Run("indexes definitions by name and kind", func(t *testing.T) {
		doc, err := Load(&ast.Source{Name: "test.graphqls", Input: `
type Person {
	name: String
}

interface Named {
	name: String
}

enum Color {
	RED
	GREEN
}

input Filter {
	q: String
}

scalar URL
`})
		require.NoError(t, err)

		assert.True(t, doc.IsObject("Person"))
		assert.True(t, doc.IsInterface("Named"))
		assert.True(t, doc.IsEnum("Color"))
		assert.True(t, doc.IsInputObject("Filter"))
		assert.True(t, doc.IsScalar("URL"))

		assert.False(t, doc.IsObject("Color"))
		assert.False(t, doc.IsObject("Missing"))

		def, ok := doc.Lookup("Person")
		require.True(t, ok)
		assert.Equal(t, ast.Object, def.Kind)
	})

	t.Run("merges multiple sources in order", func(t *testing.T) {
		doc, err := Load(
			&ast.Source{Name: "a.graphqls", Input: `scalar A`},
			&ast.Source{Name: "b.graphqls", Input: `scalar B`},
		)
		require.NoError(t, err)

		scalars := doc.Scalars()
		require.Len(t, scalars, 2)
		assert.Equal(t, "A", scalars[0].Name)
		assert.Equal(t, "B", scalars[1].Name)
	})

	t.Run("parse errors are fatal", func(t *testing.T) {
		_, err := Load(&ast.Source{Name: "bad.graphqls", Input: `type {`})
		assert.Error(t, err)
	})
}

func TestByKind(t *testing.T) {
	doc, err := Load(&ast.Source{Name: "test.graphqls", Input: `
type B { x: String }
enum E { A }
type A { x: String }
`})
	require.NoError(t, err)

	objects := doc.ByKind(ast.Object)
	require.Len(t, objects, 2)
	// Declaration order, not name order.
	assert.Equal(t, "B", objects[0].Name)
	assert.Equal(t, "A", objects[1].Name)
}

func TestFileSource(t *testing.T) {
	t.Run("reads the file into a source", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "schema.graphqls")
		require.NoError(t, os.WriteFile(path, []byte("scalar URL"), 0o644))

		src, err := FileSource(path)
		require.NoError(t, err)
		assert.Equal(t, path, src.Name)
		assert.Equal(t, "scalar URL", src.Input)
	})

	t.Run("missing file is an error", func(t *testing.T) {
		_, err := FileSource(filepath.Join(t.TempDir(), "nope.graphqls"))
		assert.Error(t, err)
	})
}
