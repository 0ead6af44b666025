package resolver

import (
	"fmt"
	"strings"

	"github.com/sdoxsee/dgs-codegen/internal/schema"
)

// Resolver folds type expressions into Java target types. It carries no
// mutable state; one Resolver may serve any number of concurrent Resolve
// calls.
type Resolver struct {
	doc           *schema.Document
	table         *Table
	outputPackage string

	// boxedTypes forces boxed wrappers on non-null fields instead of raw
	// primitives.
	boxedTypes bool
}

// New creates a resolver over a schema document and its override table.
func New(doc *schema.Document, table *Table, outputPackage string, boxedTypes bool) *Resolver {
	return &Resolver{
		doc:           doc,
		table:         table,
		outputPackage: outputPackage,
		boxedTypes:    boxedTypes,
	}
}

// Resolve maps a type expression onto its Java target type with a post-order
// fold: children are resolved before the wrapping modifier consumes them.
//
// A bare leaf always resolves to a boxed or reference form; unboxing is the
// enclosing NonNullOf's decision, and lists re-box since containers cannot
// hold raw primitives. preferInterfaceName resolves object-type leaves to
// their I-prefixed interface name; covariantListBound emits an upper-bound
// wildcard for list elements that are such interface references.
func (r *Resolver) Resolve(expr TypeExpr, preferInterfaceName, covariantListBound bool) JavaType {
	switch e := expr.(type) {
	case Named:
		return r.resolveNamed(e.Name, preferInterfaceName)

	case ListOf:
		elem := box(r.Resolve(e.Elem, preferInterfaceName, covariantListBound))
		return ListType{
			Elem:      elem,
			Covariant: covariantListBound && r.isInterfaceRef(elem),
		}

	case NonNullOf:
		inner := r.Resolve(e.Elem, preferInterfaceName, covariantListBound)
		if r.boxedTypes {
			return box(inner)
		}
		return unbox(inner)

	default:
		// The TypeExpr union is closed; reaching this is a bug in the
		// caller, not a recoverable condition.
		panic(fmt.Sprintf("resolver: unknown type expression node %T", expr))
	}
}

// resolveNamed maps a leaf name. Override table and built-in scalars win
// unconditionally over same-named schema type definitions.
func (r *Resolver) resolveNamed(name string, preferInterfaceName bool) JavaType {
	if target, ok := r.table.Lookup(name); ok {
		return target
	}

	switch name {
	case "String", "ID":
		return TypeString
	case "Int":
		return Boxed{Kind: KindInt}
	case "Float":
		return Boxed{Kind: KindDouble}
	case "Boolean":
		return Boxed{Kind: KindBoolean}
	}

	// A generated object/enum/interface/input type. Only object types get
	// the interface prefix; enums keep their own name.
	simple := name
	if preferInterfaceName && r.doc.IsObject(name) {
		simple = "I" + name
	}
	return Reference{Package: r.outputPackage, Name: simple}
}

// isInterfaceRef reports whether t is a reference to the generated
// interface of some schema object type (IFoo for object type Foo).
func (r *Resolver) isInterfaceRef(t JavaType) bool {
	ref, ok := t.(Reference)
	if !ok || !strings.HasPrefix(ref.Name, "I") {
		return false
	}
	return r.doc.IsObject(strings.TrimPrefix(ref.Name, "I"))
}

// IsStringInput reports whether a resolved type takes string-literal input,
// used when rendering default values.
func (r *Resolver) IsStringInput(target JavaType) bool {
	return r.table.IsStringInput(target)
}
