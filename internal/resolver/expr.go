package resolver

import "github.com/vektah/gqlparser/v2/ast"

// TypeExpr is a schema type expression: a name, optionally wrapped in list
// and non-null modifiers, arbitrarily nested. The three variants are the
// only valid node kinds; every leaf is a Named.
type TypeExpr interface {
	typeExpr()
}

// Named is a reference to a schema type by name.
type Named struct {
	Name string
}

func (Named) typeExpr() {}

// ListOf wraps an element type in a list modifier.
type ListOf struct {
	Elem TypeExpr
}

func (ListOf) typeExpr() {}

// NonNullOf marks its inner type as non-nullable.
type NonNullOf struct {
	Elem TypeExpr
}

func (NonNullOf) typeExpr() {}

// FromAST converts a gqlparser type node into a TypeExpr tree. gqlparser
// flattens non-null into a flag on the node; here it becomes an explicit
// wrapper so the fold sees one modifier per level.
func FromAST(t *ast.Type) TypeExpr {
	if t.NonNull {
		inner := *t
		inner.NonNull = false
		return NonNullOf{Elem: FromAST(&inner)}
	}
	if t.NamedType != "" {
		return Named{Name: t.NamedType}
	}
	return ListOf{Elem: FromAST(t.Elem)}
}
