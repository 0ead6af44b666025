// Package schema holds the parsed GraphQL schema document the generator
// works from: a lookup table from type name to definition, built by one
// bounded parse of the configured SDL sources.
package schema

import (
	"os"

	"github.com/vektah/gqlparser/v2/ast"
	"github.com/vektah/gqlparser/v2/parser"
)

// Document is a read-only view over all type definitions of a schema. It is
// built once per generation session and safe to share across concurrent
// resolution since it is never mutated after Load returns.
type Document struct {
	definitions map[string]*ast.Definition
	ordered     []*ast.Definition
}

// Load parses the given SDL sources into a Document. The sources are parsed
// exactly once; parse errors are fatal and propagate unchanged, no partial
// document is produced. Load does not validate the schema beyond parsing.
func Load(sources ...*ast.Source) (*Document, error) {
	sdl, err := parser.ParseSchemas(sources...)
	if err != nil {
		return nil, err
	}

	d := &Document{definitions: make(map[string]*ast.Definition)}
	for _, def := range sdl.Definitions {
		d.definitions[def.Name] = def
		d.ordered = append(d.ordered, def)
	}

	return d, nil
}

// FileSource reads an SDL file into a source for Load.
func FileSource(path string) (*ast.Source, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return &ast.Source{Name: path, Input: string(data)}, nil
}

// Lookup returns the definition for a type name.
func (d *Document) Lookup(name string) (*ast.Definition, bool) {
	def, ok := d.definitions[name]
	return def, ok
}

// IsObject reports whether name is defined as an object type.
func (d *Document) IsObject(name string) bool { return d.isKind(name, ast.Object) }

// IsEnum reports whether name is defined as an enum type.
func (d *Document) IsEnum(name string) bool { return d.isKind(name, ast.Enum) }

// IsScalar reports whether name is defined as a scalar type.
func (d *Document) IsScalar(name string) bool { return d.isKind(name, ast.Scalar) }

// IsInterface reports whether name is defined as an interface type.
func (d *Document) IsInterface(name string) bool { return d.isKind(name, ast.Interface) }

// IsInputObject reports whether name is defined as an input object type.
func (d *Document) IsInputObject(name string) bool { return d.isKind(name, ast.InputObject) }

func (d *Document) isKind(name string, kind ast.DefinitionKind) bool {
	def, ok := d.definitions[name]
	return ok && def.Kind == kind
}

// Scalars returns every scalar definition in declaration order.
func (d *Document) Scalars() []*ast.Definition {
	return d.ByKind(ast.Scalar)
}

// ByKind returns every definition of the given kind in declaration order.
func (d *Document) ByKind(kind ast.DefinitionKind) []*ast.Definition {
	var defs []*ast.Definition
	for _, def := range d.ordered {
		if def.Kind == kind {
			defs = append(defs, def)
		}
	}
	return defs
}
