package analyze

import (
	"go/token"

	"golang.org/x/tools/go/packages"

	"unionfrom-generator/internal/derive"
)

// TypeID uniquely identifies a type by its package path and name.
type TypeID struct {
	PkgPath string // e.g., "unionfrom-generator/examples/myerror"
	Name    string // e.g., "MyError"
}

// String returns a human-readable representation of the TypeID.
func (t TypeID) String() string {
	if t.PkgPath == "" {
		return t.Name
	}

	return t.PkgPath + "." + t.Name
}

// Target is a type declaration carrying the generate marker.
type Target struct {
	ID   TypeID
	Decl derive.Declaration
	Pkg  *packages.Package
}

// Pos returns the position of the marked declaration.
func (t Target) Pos() token.Pos {
	if t.Decl.Spec == nil {
		return token.NoPos
	}

	return t.Decl.Spec.Pos()
}

// Position resolves Pos against the package's file set.
func (t Target) Position() token.Position {
	if t.Pkg == nil || t.Pkg.Fset == nil {
		return token.Position{}
	}

	return t.Pkg.Fset.Position(t.Pos())
}

// PackageInfo holds the targets found in one package.
type PackageInfo struct {
	Path    string // Import path
	Name    string // Package name
	Dir     string // Directory of the package's Go files
	Pkg     *packages.Package
	Targets []Target
}
