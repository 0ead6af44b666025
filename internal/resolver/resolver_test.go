package resolver

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vektah/gqlparser/v2/ast"

	"github.com/sdoxsee/dgs-codegen/internal/schema"
)

const testSDL = `
type Person {
	name: String!
	friends: [Person]
}

type Movie {
	title: String
}

enum Episode {
	NEWHOPE
	EMPIRE
	JEDI
}

scalar Stamp @javaType(name: "java.time.Instant")

type DateTime {
	ignored: String
}
`

func loadDocument(t *testing.T, sdl string) *schema.Document {
	t.Helper()

	doc, err := schema.Load(&ast.Source{Name: "test.graphqls", Input: sdl})
	require.NoError(t, err)
	return doc
}

func newTestResolver(t *testing.T, explicit map[string]string, boxedTypes bool) *Resolver {
	t.Helper()

	doc := loadDocument(t, testSDL)
	table, err := NewTable(explicit, doc)
	require.NoError(t, err)
	return New(doc, table, "graphql.generated", boxedTypes)
}

func TestResolveNamedLeaf(t *testing.T) {
	r := newTestResolver(t, nil, false)

	t.Run("built-in scalars resolve to their well-known targets", func(t *testing.T) {
		got := r.Resolve(Named{Name: "Date"}, false, false)
		assert.Equal(t, JavaType(Reference{Package: "java.time", Name: "LocalDate"}), got)
	})

	t.Run("primitive scalars resolve boxed at the leaf", func(t *testing.T) {
		assert.Equal(t, JavaType(Boxed{Kind: KindInt}), r.Resolve(Named{Name: "Int"}, false, false))
		assert.Equal(t, JavaType(Boxed{Kind: KindDouble}), r.Resolve(Named{Name: "Float"}, false, false))
		assert.Equal(t, JavaType(Boxed{Kind: KindBoolean}), r.Resolve(Named{Name: "Boolean"}, false, false))
	})

	t.Run("String and ID resolve to java.lang.String", func(t *testing.T) {
		assert.Equal(t, JavaType(TypeString), r.Resolve(Named{Name: "String"}, false, false))
		assert.Equal(t, JavaType(TypeString), r.Resolve(Named{Name: "ID"}, false, false))
	})

	t.Run("unknown names resolve to generated references", func(t *testing.T) {
		got := r.Resolve(Named{Name: "Movie"}, false, false)
		assert.Equal(t, JavaType(Reference{Package: "graphql.generated", Name: "Movie"}), got)
	})
}

func TestResolveOverridePrecedence(t *testing.T) {
	t.Run("directive-derived override wins over built-in", func(t *testing.T) {
		r := newTestResolver(t, nil, false)

		got := r.Resolve(Named{Name: "Stamp"}, false, false)
		assert.Equal(t, JavaType(Reference{Package: "java.time", Name: "Instant"}), got)
	})

	t.Run("explicit config wins over directive-derived", func(t *testing.T) {
		r := newTestResolver(t, map[string]string{"Stamp": "java.lang.String"}, false)

		got := r.Resolve(Named{Name: "Stamp"}, false, false)
		assert.Equal(t, JavaType(TypeString), got)
	})

	t.Run("explicit config wins over built-in", func(t *testing.T) {
		r := newTestResolver(t, map[string]string{"Date": "org.joda.time.LocalDate"}, false)

		got := r.Resolve(Named{Name: "Date"}, false, false)
		assert.Equal(t, JavaType(Reference{Package: "org.joda.time", Name: "LocalDate"}), got)
	})

	t.Run("built-in wins over a same-named object type", func(t *testing.T) {
		// The schema defines an object type DateTime; the reserved scalar
		// name still resolves to the built-in target, prefix or not.
		r := newTestResolver(t, nil, false)

		got := r.Resolve(Named{Name: "DateTime"}, true, false)
		assert.Equal(t, JavaType(Reference{Package: "java.time", Name: "OffsetDateTime"}), got)
	})
}

func TestResolveNonNull(t *testing.T) {
	t.Run("unboxes primitives by default", func(t *testing.T) {
		r := newTestResolver(t, nil, false)

		got := r.Resolve(NonNullOf{Elem: Named{Name: "Int"}}, false, false)
		assert.Equal(t, JavaType(Primitive{Kind: KindInt}), got)
	})

	t.Run("keeps boxed wrappers when boxed types are configured", func(t *testing.T) {
		r := newTestResolver(t, nil, true)

		got := r.Resolve(NonNullOf{Elem: Named{Name: "Int"}}, false, false)
		assert.Equal(t, JavaType(Boxed{Kind: KindInt}), got)
	})

	t.Run("references pass through unchanged in either mode", func(t *testing.T) {
		for _, boxed := range []bool{false, true} {
			r := newTestResolver(t, nil, boxed)

			got := r.Resolve(NonNullOf{Elem: Named{Name: "String"}}, false, false)
			assert.Equal(t, JavaType(TypeString), got)
		}
	})
}

func TestResolveList(t *testing.T) {
	t.Run("list elements are always boxed", func(t *testing.T) {
		for _, boxed := range []bool{false, true} {
			r := newTestResolver(t, nil, boxed)

			got := r.Resolve(ListOf{Elem: Named{Name: "Int"}}, false, false)
			assert.Equal(t, JavaType(ListType{Elem: Boxed{Kind: KindInt}}), got)
		}
	})

	t.Run("re-boxes non-null primitive elements", func(t *testing.T) {
		r := newTestResolver(t, nil, false)

		got := r.Resolve(ListOf{Elem: NonNullOf{Elem: Named{Name: "Int"}}}, false, false)
		assert.Equal(t, JavaType(ListType{Elem: Boxed{Kind: KindInt}}), got)
	})

	t.Run("non-null list of non-null strings keeps full nesting", func(t *testing.T) {
		r := newTestResolver(t, nil, false)

		expr := NonNullOf{Elem: ListOf{Elem: NonNullOf{Elem: Named{Name: "String"}}}}
		got := r.Resolve(expr, false, false)
		assert.Equal(t, JavaType(ListType{Elem: TypeString}), got)
	})

	t.Run("nested lists nest target lists", func(t *testing.T) {
		r := newTestResolver(t, nil, false)

		got := r.Resolve(ListOf{Elem: ListOf{Elem: Named{Name: "Int"}}}, false, false)
		want := ListType{Elem: ListType{Elem: Boxed{Kind: KindInt}}}
		assert.Equal(t, JavaType(want), got)
	})
}

func TestResolveInterfaceNaming(t *testing.T) {
	r := newTestResolver(t, nil, false)

	t.Run("object types get the interface prefix when asked", func(t *testing.T) {
		got := r.Resolve(Named{Name: "Person"}, true, false)
		assert.Equal(t, JavaType(Reference{Package: "graphql.generated", Name: "IPerson"}), got)
	})

	t.Run("enum types are never prefixed", func(t *testing.T) {
		got := r.Resolve(Named{Name: "Episode"}, true, false)
		assert.Equal(t, JavaType(Reference{Package: "graphql.generated", Name: "Episode"}), got)
	})

	t.Run("no prefix without the flag", func(t *testing.T) {
		got := r.Resolve(Named{Name: "Person"}, false, false)
		assert.Equal(t, JavaType(Reference{Package: "graphql.generated", Name: "Person"}), got)
	})
}

func TestResolveCovariantListBound(t *testing.T) {
	r := newTestResolver(t, nil, false)

	t.Run("interface-prefixed object elements get the wildcard bound", func(t *testing.T) {
		got := r.Resolve(ListOf{Elem: Named{Name: "Person"}}, true, true)
		want := ListType{Elem: Reference{Package: "graphql.generated", Name: "IPerson"}, Covariant: true}
		assert.Equal(t, JavaType(want), got)
		assert.Equal(t, "java.util.List<? extends graphql.generated.IPerson>", got.String())
	})

	t.Run("exact bound without the flag", func(t *testing.T) {
		got := r.Resolve(ListOf{Elem: Named{Name: "Person"}}, true, false)
		want := ListType{Elem: Reference{Package: "graphql.generated", Name: "IPerson"}}
		assert.Equal(t, JavaType(want), got)
	})

	t.Run("enum elements never get the wildcard bound", func(t *testing.T) {
		got := r.Resolve(ListOf{Elem: Named{Name: "Episode"}}, true, true)
		want := ListType{Elem: Reference{Package: "graphql.generated", Name: "Episode"}}
		assert.Equal(t, JavaType(want), got)
	})

	t.Run("scalar elements never get the wildcard bound", func(t *testing.T) {
		got := r.Resolve(ListOf{Elem: Named{Name: "String"}}, true, true)
		assert.Equal(t, JavaType(ListType{Elem: TypeString}), got)
	})
}

type bogusExpr struct{}

func (bogusExpr) typeExpr() {}

func TestResolveUnknownNodePanics(t *testing.T) {
	r := newTestResolver(t, nil, false)

	assert.Panics(t, func() {
		r.Resolve(bogusExpr{}, false, false)
	})
}

func TestFromAST(t *testing.T) {
	t.Run("named", func(t *testing.T) {
		got := FromAST(&ast.Type{NamedType: "String"})
		assert.Equal(t, TypeExpr(Named{Name: "String"}), got)
	})

	t.Run("non-null list of non-null named", func(t *testing.T) {
		node := &ast.Type{
			Elem:    &ast.Type{NamedType: "String", NonNull: true},
			NonNull: true,
		}
		want := NonNullOf{Elem: ListOf{Elem: NonNullOf{Elem: Named{Name: "String"}}}}
		assert.Equal(t, TypeExpr(want), FromAST(node))
	})

	t.Run("nested lists", func(t *testing.T) {
		node := &ast.Type{Elem: &ast.Type{Elem: &ast.Type{NamedType: "Int"}}}
		want := ListOf{Elem: ListOf{Elem: Named{Name: "Int"}}}
		assert.Equal(t, TypeExpr(want), FromAST(node))
	})
}
