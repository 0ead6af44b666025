// Package render emits Java sources for schema definitions. It consumes
// resolved target types; all type-mapping decisions happen in the resolver.
package render

import (
	"bytes"
	"fmt"
	"strconv"
	"strings"
	"text/template"

	"github.com/vektah/gqlparser/v2/ast"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/sdoxsee/dgs-codegen/internal/resolver"
)

// TypeFunc resolves a schema type node into a Java type. The flags mirror
// resolver.Resolve: preferInterfaceName for interface-typed getters,
// covariantListBound for wildcard list bounds.
type TypeFunc func(t *ast.Type, preferInterfaceName, covariantListBound bool) resolver.JavaType

// Options configures a Renderer.
type Options struct {
	PackageName         string
	GenerateInterfaces  bool
	CovariantListBounds bool
	TypeOf              TypeFunc
	StringInput         func(resolver.JavaType) bool
}

// File is one generated Java source file.
type File struct {
	Name    string
	Content []byte
}

// Renderer renders schema definitions into Java sources.
type Renderer struct {
	opts   Options
	titler cases.Caser
}

// New creates a Renderer.
func New(opts Options) *Renderer {
	return &Renderer{
		opts:   opts,
		titler: cases.Title(language.English, cases.NoLower),
	}
}

type fieldView struct {
	Name     string
	Type     string
	Accessor string
	Default  string
}

type typeView struct {
	Package    string
	Name       string
	Implements string
	Fields     []fieldView
	Values     string
}

var classTemplate = template.Must(template.New("class").Parse(`package {{.Package}};

public class {{.Name}}{{if .Implements}} implements {{.Implements}}{{end}} {

{{range .Fields}}  private {{.Type}} {{.Name}}{{if .Default}} = {{.Default}}{{end}};
{{end}}
{{range .Fields}}  public {{.Type}} get{{.Accessor}}() {
    return {{.Name}};
  }

  public void set{{.Accessor}}({{.Type}} {{.Name}}) {
    this.{{.Name}} = {{.Name}};
  }

{{end}}}
`))

var interfaceTemplate = template.Must(template.New("interface").Parse(`package {{.Package}};

public interface {{.Name}} {

{{range .Fields}}  {{.Type}} get{{.Accessor}}();
{{end}}}
`))

var enumTemplate = template.Must(template.New("enum").Parse(`package {{.Package}};

public enum {{.Name}} {
  {{.Values}}
}
`))

// Render produces the Java files for one schema definition. Scalar and
// union definitions produce no files.
func (r *Renderer) Render(def *ast.Definition) ([]File, error) {
	switch def.Kind {
	case ast.Object:
		return r.renderObject(def)
	case ast.InputObject:
		return r.renderClass(def, def.Name, nil)
	case ast.Interface:
		return r.renderInterface(def, def.Name)
	case ast.Enum:
		return r.renderEnum(def)
	default:
		return nil, nil
	}
}

func (r *Renderer) renderObject(def *ast.Definition) ([]File, error) {
	implements := append([]string(nil), def.Interfaces...)
	if r.opts.GenerateInterfaces {
		implements = append(implements, "I"+def.Name)
	}

	files, err := r.renderClass(def, def.Name, implements)
	if err != nil {
		return nil, err
	}

	if r.opts.GenerateInterfaces {
		iface, err := r.renderInterface(def, "I"+def.Name)
		if err != nil {
			return nil, err
		}
		files = append(files, iface...)
	}

	return files, nil
}

func (r *Renderer) renderClass(def *ast.Definition, name string, implements []string) ([]File, error) {
	view := typeView{
		Package:    r.opts.PackageName,
		Name:       name,
		Implements: strings.Join(implements, ", "),
	}

	for _, field := range def.Fields {
		if strings.HasPrefix(field.Name, "__") {
			continue
		}
		target := r.opts.TypeOf(field.Type, false, false)
		view.Fields = append(view.Fields, fieldView{
			Name:     field.Name,
			Type:     target.String(),
			Accessor: r.titler.String(field.Name),
			Default:  r.defaultLiteral(target, field.DefaultValue),
		})
	}

	return r.execute(classTemplate, name, view)
}

func (r *Renderer) renderInterface(def *ast.Definition, name string) ([]File, error) {
	view := typeView{
		Package: r.opts.PackageName,
		Name:    name,
	}

	for _, field := range def.Fields {
		if strings.HasPrefix(field.Name, "__") {
			continue
		}
		target := r.opts.TypeOf(field.Type, true, r.opts.CovariantListBounds)
		view.Fields = append(view.Fields, fieldView{
			Name:     field.Name,
			Type:     target.String(),
			Accessor: r.titler.String(field.Name),
		})
	}

	return r.execute(interfaceTemplate, name, view)
}

func (r *Renderer) renderEnum(def *ast.Definition) ([]File, error) {
	var values []string
	for _, value := range def.EnumValues {
		values = append(values, value.Name)
	}

	view := typeView{
		Package: r.opts.PackageName,
		Name:    def.Name,
		Values:  strings.Join(values, ", "),
	}

	return r.execute(enumTemplate, def.Name, view)
}

// defaultLiteral renders an input field default. String-input targets get
// quoted literals, enum values are qualified, list and object defaults are
// left to the field initializer the caller writes by hand.
func (r *Renderer) defaultLiteral(target resolver.JavaType, value *ast.Value) string {
	if value == nil {
		return ""
	}

	switch value.Kind {
	case ast.IntValue, ast.FloatValue, ast.BooleanValue:
		return value.Raw
	case ast.StringValue:
		if r.opts.StringInput != nil && r.opts.StringInput(target) {
			return strconv.Quote(value.Raw)
		}
		return value.Raw
	case ast.EnumValue:
		return target.String() + "." + value.Raw
	case ast.NullValue:
		return "null"
	default:
		return ""
	}
}

func (r *Renderer) execute(tmpl *template.Template, name string, view typeView) ([]File, error) {
	buffer := &bytes.Buffer{}
	if err := tmpl.Execute(buffer, view); err != nil {
		return nil, fmt.Errorf("could not render %s: %w", name, err)
	}
	return []File{{Name: name + ".java", Content: buffer.Bytes()}}, nil
}
