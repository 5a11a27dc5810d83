package gen

import (
	"bytes"
	"fmt"
	"go/ast"
	"go/format"
	"go/types"
	"path/filepath"
	"text/template"

	"golang.org/x/tools/go/packages"

	"unionfrom-generator/internal/derive"
)

// DefaultFileName is the name of the generated file in each package.
const DefaultFileName = "unionfrom_gen.go"

// Header is the first comment line after the build constraint of every
// generated file.
const Header = "// Code generated by unionfrom-generator. DO NOT EDIT."

// GeneratorConfig holds configuration for code generation.
type GeneratorConfig struct {
	// FileName is the name of the generated file, relative to the package
	// directory.
	FileName string
	// BuildTag guards the generated file with "//go:build !<BuildTag>" so the
	// generator can load packages without stale output.
	BuildTag string
	// ConversionName and DispatchName are name patterns, see Namer.
	ConversionName string
	DispatchName   string
	// GenerateComments enables doc comments on generated functions.
	GenerateComments bool
	// DebugDir receives an .unformatted.go sidecar when formatting fails.
	// Nothing is written when empty.
	DebugDir string
}

// DefaultGeneratorConfig returns the default generator configuration.
func DefaultGeneratorConfig() GeneratorConfig {
	return GeneratorConfig{
		FileName:         DefaultFileName,
		BuildTag:         "unionfrom",
		ConversionName:   DefaultConversionName,
		DispatchName:     DefaultDispatchName,
		GenerateComments: true,
	}
}

// Generator renders conversions into Go source files.
type Generator struct {
	config GeneratorConfig
	namer  *Namer
}

// NewGenerator creates a new Generator with the given configuration.
func NewGenerator(config GeneratorConfig) (*Generator, error) {
	if config.FileName == "" {
		config.FileName = DefaultFileName
	}

	if config.BuildTag == "" {
		return nil, fmt.Errorf("build tag is empty")
	}

	namer, err := NewNamer(config.ConversionName, config.DispatchName)
	if err != nil {
		return nil, err
	}

	return &Generator{config: config, namer: namer}, nil
}

// Union is one union declaration and its conversions, in alternative order.
type Union struct {
	Name        string
	Conversions []derive.Conversion
}

// Unit is everything generated into one package.
type Unit struct {
	Pkg    *packages.Package
	Dir    string
	Unions []Union
}

// GeneratedFile represents a generated Go source file.
type GeneratedFile struct {
	// Path is the absolute path the file is written to.
	Path string
	// PkgPath is the import path of the package the file belongs to.
	PkgPath string
	// Content is the formatted Go source code.
	Content []byte
}

// Filename returns the base name of the file.
func (f GeneratedFile) Filename() string {
	return filepath.Base(f.Path)
}

// templateData holds all data needed for the file template.
type templateData struct {
	BuildTag         string
	Header           string
	PackageName      string
	Imports          []importSpec
	Unions           []unionData
	GenerateComments bool
}

type unionData struct {
	Name        string
	Dispatch    string
	Conversions []conversionData
}

type conversionData struct {
	Func    string
	Tag     string
	Payload string
	Pointer bool
}

// Generate renders the file of unit. Conversions and dispatch cases appear
// in the order of the input.
func (g *Generator) Generate(unit Unit) (*GeneratedFile, error) {
	if unit.Pkg == nil {
		return nil, fmt.Errorf("unit has no package")
	}

	data, err := g.buildTemplateData(unit)
	if err != nil {
		return nil, fmt.Errorf("generating %s: %w", unit.Pkg.PkgPath, err)
	}

	var buf bytes.Buffer
	if err := fileTemplate.Execute(&buf, data); err != nil {
		return nil, fmt.Errorf("executing template: %w", err)
	}

	file := &GeneratedFile{
		Path:    filepath.Join(unit.Dir, g.config.FileName),
		PkgPath: unit.Pkg.PkgPath,
	}

	formatted, err := format.Source(buf.Bytes())
	if err != nil {
		file.Content = buf.Bytes()

		if g.config.DebugDir != "" {
			if sidecar, werr := writeUnformatted(g.config.DebugDir, g.config.FileName, buf.Bytes()); werr == nil {
				return file, fmt.Errorf("formatting code: %w (unformatted code written to %s)", err, sidecar)
			}
		}

		return file, fmt.Errorf("formatting code: %w (unformatted code returned)", err)
	}

	file.Content = formatted

	return file, nil
}

// buildTemplateData resolves names and payload types of unit.
func (g *Generator) buildTemplateData(unit Unit) (*templateData, error) {
	pkg := unit.Pkg

	data := &templateData{
		BuildTag:         g.config.BuildTag,
		Header:           Header,
		PackageName:      pkg.Name,
		GenerateComments: g.config.GenerateComments,
	}

	// Resolve every generated name first: imports must not shadow them.
	reserved := []string{"v"}
	for _, u := range unit.Unions {
		ud := unionData{Name: u.Name}
		reserved = append(reserved, u.Name)

		if len(u.Conversions) > 0 && g.namer.HasDispatch() {
			dispatch, err := g.namer.Dispatch(u.Name)
			if err != nil {
				return nil, err
			}

			ud.Dispatch = dispatch
			reserved = append(reserved, dispatch)
		}

		for _, conv := range u.Conversions {
			name, err := g.namer.Conversion(u.Name, conv.Tag)
			if err != nil {
				return nil, err
			}

			reserved = append(reserved, name)
			ud.Conversions = append(ud.Conversions, conversionData{
				Func:    name,
				Tag:     conv.Tag,
				Pointer: conv.Pointer,
			})
		}

		data.Unions = append(data.Unions, ud)
	}

	imports := newImportSet(pkg.Types, reserved...)
	for i, u := range unit.Unions {
		for j, conv := range u.Conversions {
			payload, err := g.payloadString(pkg, conv.Payload, imports)
			if err != nil {
				return nil, fmt.Errorf("%s: alternative %s: %w", u.Name, conv.Tag, err)
			}

			data.Unions[i].Conversions[j].Payload = payload
		}
	}

	data.Imports = imports.specs()

	return data, nil
}

// payloadString prints the payload type as it must be spelled in the
// generated file. The payload stays opaque: it is re-emitted, never
// inspected.
func (g *Generator) payloadString(pkg *packages.Package, expr ast.Expr, imports *importSet) (string, error) {
	if pkg.TypesInfo != nil {
		if t := pkg.TypesInfo.TypeOf(expr); t != nil && t != types.Typ[types.Invalid] {
			return types.TypeString(t, imports.qualifier), nil
		}
	}

	return imports.exprString(expr, fileOf(pkg.Fset, pkg.Syntax, expr.Pos()))
}

var fileTemplate = template.Must(template.New("unionfrom").Parse(`//go:build !{{.BuildTag}}

{{.Header}}

package {{.PackageName}}
{{if .Imports}}
import (
{{range .Imports}}	{{if .Alias}}{{.Alias}} {{end}}"{{.Path}}"
{{end}})
{{end}}
{{- range $u := .Unions}}
{{- range .Conversions}}
{{if $.GenerateComments}}// {{.Func}} wraps v into {{$u.Name}} as {{.Tag}}.
{{end}}func {{.Func}}(v {{.Payload}}) {{$u.Name}} {
	return {{if .Pointer}}&{{end}}{{.Tag}}{v}
}
{{end}}
{{- if .Dispatch}}
{{if $.GenerateComments}}// {{.Dispatch}} wraps v into {{$u.Name}} when the dynamic type of v is the
// payload of one of its alternatives. It reports false otherwise.
{{end}}func {{.Dispatch}}(v any) ({{$u.Name}}, bool) {
	switch v := v.(type) {
{{- range .Conversions}}
	case {{.Payload}}:
		return {{.Func}}(v), true
{{- end}}
	}

	return nil, false
}
{{end}}
{{- end}}`))
