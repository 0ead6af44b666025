package resolver

import (
	"errors"
	"fmt"
	"strings"

	"github.com/vektah/gqlparser/v2/ast"

	"github.com/sdoxsee/dgs-codegen/internal/schema"
)

// TypeDirective is the schema directive that maps a custom scalar onto a
// Java type, e.g. scalar URL @javaType(name: "java.net.URL").
const TypeDirective = "javaType"

// Configuration errors raised while building the override table.
var (
	ErrMultipleTypeDirectives = errors.New("multiple @" + TypeDirective + " directives on one scalar")
	ErrMissingNameArgument    = errors.New("@" + TypeDirective + " directive missing required name argument")
)

// builtinScalars maps well-known scalar names onto their Java targets.
// Explicit config and @javaType directives both take precedence over these.
var builtinScalars = map[string]Reference{
	"Date":          {Package: "java.time", Name: "LocalDate"},
	"DateTime":      {Package: "java.time", Name: "OffsetDateTime"},
	"Time":          {Package: "java.time", Name: "OffsetTime"},
	"LocalTime":     {Package: "java.time", Name: "LocalTime"},
	"LocalDateTime": {Package: "java.time", Name: "LocalDateTime"},
	"Instant":       {Package: "java.time", Name: "Instant"},
	"TimeZone":      {Package: "java.lang", Name: "String"},
	"Currency":      {Package: "java.util", Name: "Currency"},
	"BigDecimal":    {Package: "java.math", Name: "BigDecimal"},
	"BigInteger":    {Package: "java.math", Name: "BigInteger"},
	"PageInfo":      {Package: "graphql.relay", Name: "PageInfo"},
	"RelayPageInfo": {Package: "graphql.relay", Name: "PageInfo"},
	"Upload":        {Package: "org.springframework.web.multipart", Name: "MultipartFile"},
}

// Table is the merged scalar/override table: explicit config mappings
// layered over directive-derived mappings layered over the built-in scalar
// defaults. It is built once per generation session and read-only after
// construction, so it may be shared across concurrent resolution.
type Table struct {
	entries map[string]JavaType
}

// NewTable builds the override table for a schema. Every scalar definition
// is scanned for @javaType exactly once, whether or not the scalar is ever
// referenced; a scalar carrying more than one such directive, or a directive
// without a string name argument, is a configuration error and no table is
// produced.
func NewTable(explicit map[string]string, doc *schema.Document) (*Table, error) {
	entries := make(map[string]JavaType, len(builtinScalars)+len(explicit))
	for name, ref := range builtinScalars {
		entries[name] = ref
	}

	derived, err := directiveOverrides(doc)
	if err != nil {
		return nil, err
	}
	for name, target := range derived {
		entries[name] = target
	}

	for name, raw := range explicit {
		target, err := ParseTarget(raw)
		if err != nil {
			return nil, fmt.Errorf("type mapping for %s: %w", name, err)
		}
		entries[name] = target
	}

	return &Table{entries: entries}, nil
}

// directiveOverrides scans all scalar definitions for @javaType directives.
func directiveOverrides(doc *schema.Document) (map[string]JavaType, error) {
	overrides := make(map[string]JavaType)

	for _, def := range doc.Scalars() {
		var found *ast.Directive
		for _, directive := range def.Directives {
			if directive.Name != TypeDirective {
				continue
			}
			if found != nil {
				return nil, fmt.Errorf("scalar %s: %w", def.Name, ErrMultipleTypeDirectives)
			}
			found = directive
		}
		if found == nil {
			continue
		}

		arg := found.Arguments.ForName("name")
		if arg == nil || arg.Value == nil || arg.Value.Kind != ast.StringValue {
			return nil, fmt.Errorf("scalar %s: %w", def.Name, ErrMissingNameArgument)
		}

		target, err := ParseTarget(arg.Value.Raw)
		if err != nil {
			return nil, fmt.Errorf("scalar %s: %w", def.Name, err)
		}
		overrides[def.Name] = target
	}

	return overrides, nil
}

// Lookup returns the mapped target type for a schema type name, if any.
func (t *Table) Lookup(name string) (JavaType, bool) {
	target, ok := t.entries[name]
	return target, ok
}

// IsStringInput reports whether target takes string-literal input. That is
// the case for the built-in string type and for any target some scalar was
// explicitly mapped to, except targets that are numeric or boolean
// primitive/boxed forms, which never take string literals even when they
// appear as override values.
func (t *Table) IsStringInput(target JavaType) bool {
	if target == JavaType(TypeString) {
		return true
	}

	mapped := false
	for _, value := range t.entries {
		if value == target {
			mapped = true
			break
		}
	}
	if !mapped {
		return false
	}

	switch target.(type) {
	case Primitive, Boxed:
		return false
	}
	return true
}

// ParseTarget parses a Java type name from configuration or a directive
// argument into a target type. Primitive and wrapper spellings normalize to
// the boxed form; the non-null fold decides later whether to unbox.
func ParseTarget(raw string) (JavaType, error) {
	name := strings.TrimSpace(raw)
	if name == "" {
		return nil, errors.New("empty target type name")
	}
	if strings.ContainsAny(name, " \t<>") {
		return nil, fmt.Errorf("invalid target type name %q", raw)
	}

	switch name {
	case "int", "Integer", "java.lang.Integer":
		return Boxed{Kind: KindInt}, nil
	case "double", "Double", "java.lang.Double":
		return Boxed{Kind: KindDouble}, nil
	case "boolean", "Boolean", "java.lang.Boolean":
		return Boxed{Kind: KindBoolean}, nil
	case "String", "java.lang.String":
		return TypeString, nil
	}

	if i := strings.LastIndex(name, "."); i > 0 {
		return Reference{Package: name[:i], Name: name[i+1:]}, nil
	}
	return Reference{Name: name}, nil
}
