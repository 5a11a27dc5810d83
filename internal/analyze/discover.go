package analyze

import (
	"fmt"
	"go/ast"
	"go/token"
	"go/types"
	"path/filepath"
	"slices"

	"golang.org/x/tools/go/packages"

	"unionfrom-generator/internal/derive"
)

// Discover finds every marked type declaration of pkg in source order. Union
// declarations come with their alternatives: the named types of the package
// whose value or pointer type implements the union, ordered by position.
// Other declarations are returned without alternatives so the caller can
// reject them.
func Discover(pkg *packages.Package) ([]Target, error) {
	if pkg.Types == nil || pkg.TypesInfo == nil {
		return nil, fmt.Errorf("package %s has no type information", pkg.PkgPath)
	}

	specs := typeSpecs(pkg)

	var targets []Target
	for _, file := range pkg.Syntax {
		for _, decl := range file.Decls {
			gen, ok := decl.(*ast.GenDecl)
			if !ok || gen.Tok != token.TYPE {
				continue
			}

			for _, s := range gen.Specs {
				spec := s.(*ast.TypeSpec)
				if !specMarked(gen, spec) {
					continue
				}

				target := Target{
					ID:   TypeID{PkgPath: pkg.PkgPath, Name: spec.Name.Name},
					Decl: derive.Declaration{Spec: spec},
					Pkg:  pkg,
				}

				if derive.Kind(spec) == derive.DeclUnion {
					alts, err := alternatives(pkg, spec, specs)
					if err != nil {
						return nil, err
					}

					target.Decl.Alternatives = alts
				}

				targets = append(targets, target)
			}
		}
	}

	return targets, nil
}

// DiscoverAll runs Discover over pkgs and groups the results per package.
// Packages without targets are skipped.
func DiscoverAll(pkgs []*packages.Package) ([]*PackageInfo, error) {
	var infos []*PackageInfo
	for _, pkg := range pkgs {
		targets, err := Discover(pkg)
		if err != nil {
			return nil, fmt.Errorf("failed to process package %s: %w", pkg.PkgPath, err)
		}

		if len(targets) == 0 {
			continue
		}

		infos = append(infos, &PackageInfo{
			Path:    pkg.PkgPath,
			Name:    pkg.Name,
			Dir:     packageDir(pkg),
			Pkg:     pkg,
			Targets: targets,
		})
	}

	return infos, nil
}

// alternatives lists the implementations of the union declared by spec.
func alternatives(pkg *packages.Package, spec *ast.TypeSpec, specs map[*types.TypeName]*ast.TypeSpec) ([]derive.Alternative, error) {
	union, ok := pkg.TypesInfo.Defs[spec.Name].(*types.TypeName)
	if !ok {
		return nil, fmt.Errorf("%s: no type information for %s", pkg.Fset.Position(spec.Pos()), spec.Name.Name)
	}

	iface, ok := union.Type().Underlying().(*types.Interface)
	if !ok {
		return nil, fmt.Errorf("%s: %s is not an interface", pkg.Fset.Position(spec.Pos()), spec.Name.Name)
	}

	var alts []derive.Alternative

	scope := pkg.Types.Scope()
	for _, name := range scope.Names() {
		obj, ok := scope.Lookup(name).(*types.TypeName)
		if !ok || obj == union || obj.IsAlias() {
			continue
		}

		named, ok := obj.Type().(*types.Named)
		if !ok || named.TypeParams().Len() > 0 || types.IsInterface(named) {
			continue
		}

		pointer := false
		if !types.Implements(named, iface) {
			if !types.Implements(types.NewPointer(named), iface) {
				continue
			}

			pointer = true
		}

		altSpec, ok := specs[obj]
		if !ok {
			continue
		}

		alts = append(alts, derive.Alternative{Spec: altSpec, Pointer: pointer})
	}

	slices.SortFunc(alts, func(a, b derive.Alternative) int {
		return int(a.Spec.Pos()) - int(b.Spec.Pos())
	})

	return alts, nil
}

// typeSpecs indexes the package's type declarations by their objects.
func typeSpecs(pkg *packages.Package) map[*types.TypeName]*ast.TypeSpec {
	specs := make(map[*types.TypeName]*ast.TypeSpec)
	for _, file := range pkg.Syntax {
		for _, decl := range file.Decls {
			gen, ok := decl.(*ast.GenDecl)
			if !ok || gen.Tok != token.TYPE {
				continue
			}

			for _, s := range gen.Specs {
				spec := s.(*ast.TypeSpec)
				if obj, ok := pkg.TypesInfo.Defs[spec.Name].(*types.TypeName); ok {
					specs[obj] = spec
				}
			}
		}
	}

	return specs
}

// packageDir returns the directory holding the package's Go files.
func packageDir(pkg *packages.Package) string {
	if len(pkg.GoFiles) > 0 {
		return filepath.Dir(pkg.GoFiles[0])
	}

	if len(pkg.CompiledGoFiles) > 0 {
		return filepath.Dir(pkg.CompiledGoFiles[0])
	}

	return ""
}
