// Package gen wires the generation pipeline together: load SDL sources,
// build the schema document and override table, resolve and render every
// definition, and write the generated Java sources.
package gen

import (
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"sort"
	"strings"
	"sync"

	"github.com/davecgh/go-spew/spew"
	"github.com/vektah/gqlparser/v2/ast"
	"golang.org/x/sync/errgroup"

	"github.com/sdoxsee/dgs-codegen/internal/config"
	"github.com/sdoxsee/dgs-codegen/internal/console"
	"github.com/sdoxsee/dgs-codegen/internal/render"
	"github.com/sdoxsee/dgs-codegen/internal/resolver"
	"github.com/sdoxsee/dgs-codegen/internal/schema"
)

// Version of the generator.
const Version = "v0.1.0"

// Gen presents the generate tool.
type Gen struct {
	writeFile func(path string, data []byte) error
}

// New creates a new Gen.
func New() *Gen {
	return &Gen{
		writeFile: func(path string, data []byte) error {
			return os.WriteFile(path, data, 0o644)
		},
	}
}

// Build runs one generation session for the given config.
func (g *Gen) Build(cfg *config.Config) error {
	if cfg.Debug {
		console.Logger.DebugLevel = 1
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	sources, err := collectSources(cfg)
	if err != nil {
		return err
	}

	doc, err := schema.Load(sources...)
	if err != nil {
		return err
	}

	table, err := resolver.NewTable(cfg.TypeMapping, doc)
	if err != nil {
		return err
	}
	console.Logger.Debug("override table:\n%s", spew.Sdump(table))

	res := resolver.New(doc, table, cfg.PackageName, cfg.GenerateBoxedTypes)
	renderer := render.New(render.Options{
		PackageName:         cfg.PackageName,
		GenerateInterfaces:  cfg.GenerateInterfaces,
		CovariantListBounds: cfg.CovariantListBounds,
		TypeOf: func(t *ast.Type, preferInterfaceName, covariantListBound bool) resolver.JavaType {
			return res.Resolve(resolver.FromAST(t), preferInterfaceName, covariantListBound)
		},
		StringInput: res.IsStringInput,
	})

	files, err := renderAll(doc, renderer)
	if err != nil {
		return err
	}

	outputDir := filepath.Join(cfg.OutputDir, packagePath(cfg.PackageName))
	if err := os.MkdirAll(outputDir, os.ModePerm); err != nil {
		return err
	}

	for _, file := range files {
		path := filepath.Join(outputDir, file.Name)
		if err := g.writeFile(path, file.Content); err != nil {
			return err
		}
		console.Logger.Debug("create %s", path)
	}

	console.Logger.Info("generated %d files in %s", len(files), outputDir)
	return nil
}

// collectSources assembles the SDL sources in config order: files first,
// then inline fragments.
func collectSources(cfg *config.Config) ([]*ast.Source, error) {
	var sources []*ast.Source

	for _, path := range cfg.SchemaPaths {
		src, err := schema.FileSource(path)
		if err != nil {
			return nil, fmt.Errorf("could not read schema %s: %w", path, err)
		}
		sources = append(sources, src)
	}
	for i, fragment := range cfg.SchemaFragments {
		sources = append(sources, &ast.Source{
			Name:  fmt.Sprintf("fragment-%d.graphqls", i),
			Input: fragment,
		})
	}

	return sources, nil
}

// renderAll renders every renderable definition concurrently, bounded by
// the number of CPUs. The document, table and resolver are read-only, so
// workers share them without locks; results are sorted by file name to
// keep output deterministic regardless of scheduling order.
func renderAll(doc *schema.Document, renderer *render.Renderer) ([]render.File, error) {
	var (
		mu    sync.Mutex
		files []render.File
	)

	var group errgroup.Group
	group.SetLimit(runtime.NumCPU())

	for _, kind := range []ast.DefinitionKind{ast.Object, ast.InputObject, ast.Interface, ast.Enum} {
		for _, def := range doc.ByKind(kind) {
			def := def

			group.Go(func() error {
				rendered, err := renderer.Render(def)
				if err != nil {
					return fmt.Errorf("failed to render %s: %w", def.Name, err)
				}
				if len(rendered) == 0 {
					return nil
				}

				mu.Lock()
				files = append(files, rendered...)
				mu.Unlock()

				return nil
			})
		}
	}

	if err := group.Wait(); err != nil {
		return nil, err
	}

	sort.Slice(files, func(i, j int) bool {
		return files[i].Name < files[j].Name
	})

	return files, nil
}

// packagePath converts a Java package name into a directory path.
func packagePath(packageName string) string {
	return filepath.Join(strings.Split(packageName, ".")...)
}
