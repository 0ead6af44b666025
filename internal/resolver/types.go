// Package resolver maps GraphQL schema type expressions onto Java target
// types, applying the merged override table, built-in scalar mappings and
// the boxing rules required by non-null and list wrapping.
package resolver

// PrimitiveKind enumerates the Java primitives the generator can emit.
type PrimitiveKind int

const (
	// KindInt is a 32-bit integer (Int scalars).
	KindInt PrimitiveKind = iota
	// KindDouble is a double-precision float (Float scalars).
	KindDouble
	// KindBoolean is a boolean.
	KindBoolean
)

func (k PrimitiveKind) primitiveName() string {
	switch k {
	case KindInt:
		return "int"
	case KindDouble:
		return "double"
	case KindBoolean:
		return "boolean"
	}
	return "int"
}

func (k PrimitiveKind) boxedName() string {
	switch k {
	case KindInt:
		return "Integer"
	case KindDouble:
		return "Double"
	case KindBoolean:
		return "Boolean"
	}
	return "Integer"
}

// JavaType is a resolved target type. The variants form a closed set:
// Primitive, Boxed, Reference and ListType. Values are immutable and freely
// copyable; rendering into Java source syntax is left to the render package,
// String only produces the canonical qualified spelling.
type JavaType interface {
	javaType()
	String() string
}

// Primitive is a raw Java primitive (int, double, boolean). It never appears
// as a list element or as a bare leaf result; it only arises when a non-null
// wrapper unboxes its inner type.
type Primitive struct {
	Kind PrimitiveKind
}

func (Primitive) javaType() {}

func (p Primitive) String() string { return p.Kind.primitiveName() }

// Boxed is the java.lang wrapper of a primitive.
type Boxed struct {
	Kind PrimitiveKind
}

func (Boxed) javaType() {}

func (b Boxed) String() string { return "java.lang." + b.Kind.boxedName() }

// Reference names a Java class or interface. Package may be empty for an
// unqualified name.
type Reference struct {
	Package string
	Name    string
}

func (Reference) javaType() {}

func (r Reference) String() string {
	if r.Package == "" {
		return r.Name
	}
	return r.Package + "." + r.Name
}

// ListType is java.util.List parameterized over Elem. Covariant lists carry
// an upper-bound wildcard (? extends Elem). Elem is never a raw Primitive.
type ListType struct {
	Elem      JavaType
	Covariant bool
}

func (ListType) javaType() {}

func (l ListType) String() string {
	if l.Covariant {
		return "java.util.List<? extends " + l.Elem.String() + ">"
	}
	return "java.util.List<" + l.Elem.String() + ">"
}

// TypeString is the built-in string target.
var TypeString = Reference{Package: "java.lang", Name: "String"}

// box converts a raw primitive into its wrapper type; everything else passes
// through unchanged.
func box(t JavaType) JavaType {
	if p, ok := t.(Primitive); ok {
		return Boxed{Kind: p.Kind}
	}
	return t
}

// unbox converts a boxed primitive into its raw form; everything else passes
// through unchanged.
func unbox(t JavaType) JavaType {
	if b, ok := t.(Boxed); ok {
		return Primitive{Kind: b.Kind}
	}
	return t
}
