package gen

import (
	"errors"
	"fmt"
	"go/parser"
	"go/types"
	"slices"

	"golang.org/x/tools/go/packages"
)

// Verify type-checks pkg with file spliced in. It reports what the compiler
// would report for the generated code, including duplicate payload types
// (as duplicate cases in a dispatcher) and names that clash with existing
// declarations. The file comes last, so a clash is reported against it.
//
// Only errors located in file count. Errors elsewhere in the package are the
// package's own, for example calls to conversions of another package that
// was loaded without its generated file.
//
// pkg must have been loaded with syntax and types of its dependencies, and
// without any previous version of file.
func Verify(pkg *packages.Package, file *GeneratedFile) error {
	if pkg.Fset == nil || len(pkg.Syntax) == 0 {
		return fmt.Errorf("package %s has no syntax", pkg.PkgPath)
	}

	f, err := parser.ParseFile(pkg.Fset, file.Path, file.Content, parser.ParseComments|parser.SkipObjectResolution)
	if err != nil {
		return fmt.Errorf("parsing generated code: %w", err)
	}

	var errs []error

	conf := types.Config{
		Importer: newGraphImporter(pkg),
		Error: func(err error) {
			if terr, ok := err.(types.Error); ok && terr.Fset.Position(terr.Pos).Filename != file.Path {
				return
			}

			errs = append(errs, err)
		},
	}

	files := append(slices.Clone(pkg.Syntax), f)
	_, _ = conf.Check(pkg.PkgPath, pkg.Fset, files, nil)

	if len(errs) > 0 {
		return fmt.Errorf("type-checking generated code:\n%w", errors.Join(errs...))
	}

	return nil
}

// graphImporter resolves imports from an already loaded package graph.
type graphImporter map[string]*types.Package

func newGraphImporter(root *packages.Package) graphImporter {
	m := make(graphImporter)

	packages.Visit([]*packages.Package{root}, nil, func(p *packages.Package) {
		if p.Types != nil {
			m[p.PkgPath] = p.Types
		}

		for path, imp := range p.Imports {
			if imp.Types != nil {
				m[path] = imp.Types
			}
		}
	})

	return m
}

func (m graphImporter) Import(path string) (*types.Package, error) {
	if path == "unsafe" {
		return types.Unsafe, nil
	}

	if pkg, ok := m[path]; ok {
		return pkg, nil
	}

	return nil, fmt.Errorf("package %q is not a dependency of the loaded packages", path)
}
