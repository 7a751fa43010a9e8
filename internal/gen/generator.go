package gen

import (
	"bytes"
	"fmt"
	"go/format"
	"path"
	"sort"
	"text/template"

	"fixturegen/internal/analyze"
)

// GeneratorConfig holds configuration for code generation.
type GeneratorConfig struct {
	// PackageName is the name of the generated package.
	PackageName string
	// OutputDir is the directory where generated files are written.
	OutputDir string
	// Filename is the name of the generated catalog file.
	Filename string
	// GenerateComments enables per-type comments with the type eligibility.
	GenerateComments bool
}

// DefaultGeneratorConfig returns the default generator configuration.
func DefaultGeneratorConfig() GeneratorConfig {
	return GeneratorConfig{
		PackageName:      "catalog",
		OutputDir:        "./catalog",
		Filename:         "catalog_gen.go",
		GenerateComments: true,
	}
}

// Generator generates a catalog file from a type graph.
type Generator struct {
	config GeneratorConfig
}

// NewGenerator creates a new Generator with the given configuration.
func NewGenerator(config GeneratorConfig) *Generator {
	return &Generator{config: config}
}

// GeneratedFile represents a generated Go source file.
type GeneratedFile struct {
	// Filename is the name of the file (e.g., "catalog_gen.go").
	Filename string
	// Content is the formatted Go source code.
	Content []byte
}

// importSpec represents an import statement.
type importSpec struct {
	Alias string
	Path  string
}

// catalogEntry is a single listed type.
type catalogEntry struct {
	Ref     string
	Comment string
}

// templateData holds all data needed for the catalog template.
type templateData struct {
	PackageName  string
	Filename     string
	Imports      []importSpec
	Types        []catalogEntry
	Constructors []string
}

var catalogTemplate = template.Must(
	template.New("catalog").
		Parse(`// Code generated by fixturegen. DO NOT EDIT.

package {{.PackageName}}

import (
	"reflect"
{{if .Imports}}
{{range .Imports}}	{{.Alias}} "{{.Path}}"
{{end}}{{end}})

// Types lists the generatable types of the scanned packages.
{{if .Types}}var Types = []reflect.Type{
{{range .Types}}	reflect.TypeFor[{{.Ref}}](),{{if .Comment}} // {{.Comment}}{{end}}
{{end}}}
{{else}}var Types []reflect.Type
{{end}}
// Constructors lists the discovered constructors, in the form accepted by
// fixture.WithConstructors.
{{if .Constructors}}var Constructors = []any{
{{range .Constructors}}	{{.}},
{{end}}}
{{else}}var Constructors []any
{{end}}`))

// Generate renders the catalog of every catalogable type of graph.
func (g *Generator) Generate(graph *analyze.TypeGraph) (*GeneratedFile, error) {
	data := g.buildTemplateData(graph)

	var buf bytes.Buffer
	if err := catalogTemplate.Execute(&buf, data); err != nil {
		return nil, fmt.Errorf("executing template: %w", err)
	}

	// Format the generated code
	formatted, err := format.Source(buf.Bytes())
	if err != nil {
		// Best-effort: write unformatted code to a sidecar file to aid debugging.
		if g.config.OutputDir != "" {
			_ = writeDebugUnformatted(g.config.OutputDir, data.Filename, buf.Bytes())
		}
		// Return unformatted code for debugging
		return &GeneratedFile{
			Filename: data.Filename,
			Content:  buf.Bytes(),
		}, fmt.Errorf("formatting code: %w (unformatted code returned)", err)
	}

	return &GeneratedFile{
		Filename: data.Filename,
		Content:  formatted,
	}, nil
}

// buildTemplateData collects the catalogable types and assigns every
// imported package a unique alias.
func (g *Generator) buildTemplateData(graph *analyze.TypeGraph) *templateData {
	data := &templateData{
		PackageName: g.config.PackageName,
		Filename:    g.config.Filename,
	}

	if data.Filename == "" {
		data.Filename = DefaultGeneratorConfig().Filename
	}

	aliases := make(map[string]string)
	taken := map[string]struct{}{"reflect": {}}

	aliasOf := func(pkgPath string) string {
		if alias, ok := aliases[pkgPath]; ok {
			return alias
		}

		alias := path.Base(pkgPath)
		if pkg, ok := graph.Packages[pkgPath]; ok && pkg.Name != "" {
			alias = pkg.Name
		}

		if _, clash := taken[alias]; clash {
			alias = NewStem(alias, taken).Next()
		}

		taken[alias] = struct{}{}
		aliases[pkgPath] = alias
		data.Imports = append(data.Imports, importSpec{Alias: alias, Path: pkgPath})

		return alias
	}

	for _, info := range graph.Catalogable() {
		entry := catalogEntry{Ref: aliasOf(info.ID.PkgPath) + "." + info.ID.Name}
		if g.config.GenerateComments {
			entry.Comment = info.Eligibility.String()
		}

		data.Types = append(data.Types, entry)

		for _, fn := range info.Constructors {
			data.Constructors = append(data.Constructors, aliasOf(fn.PkgPath)+"."+fn.Name)
		}
	}

	sort.Slice(data.Imports, func(i, j int) bool {
		return data.Imports[i].Path < data.Imports[j].Path
	})

	return data
}
