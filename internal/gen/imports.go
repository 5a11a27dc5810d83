package gen

import (
	"fmt"
	"go/ast"
	"go/token"
	"go/types"
	"iter"
	"strconv"

	"github.com/emirpasic/gods/maps/linkedhashmap"
	"golang.org/x/tools/go/ast/astutil"

	"unionfrom-generator/internal/common"
)

// importSpec represents an import statement.
type importSpec struct {
	Alias string
	Path  string
}

// importSet assigns conflict-free local names to the packages referenced by
// the generated file. Imports keep the order in which they were first used.
type importSet struct {
	self *types.Package
	// taken holds every identifier a new import name must not shadow.
	taken map[string]bool
	// byPath maps import path to importSpec, in insertion order.
	byPath *linkedhashmap.Map
}

// newImportSet creates an importSet for a file of package self. Names declared
// in the package scope are reserved.
func newImportSet(self *types.Package, reserved ...string) *importSet {
	s := &importSet{
		self:   self,
		taken:  make(map[string]bool),
		byPath: linkedhashmap.New(),
	}

	if self != nil {
		for _, name := range self.Scope().Names() {
			s.taken[name] = true
		}
	}

	for _, name := range reserved {
		s.taken[name] = true
	}

	return s
}

// add returns the local name for pkg, registering an import on first use.
func (s *importSet) add(path, name string) string {
	if v, ok := s.byPath.Get(path); ok {
		return localName(v.(importSpec))
	}

	if name == "" {
		name = common.PkgAlias(path)
	}

	local := name
	for candidate := range DisambiguateName(name) {
		if !s.taken[candidate] {
			local = candidate
			break
		}
	}

	s.taken[local] = true

	spec := importSpec{Path: path}
	if local != common.PkgAlias(path) {
		spec.Alias = local
	}

	s.byPath.Put(path, spec)

	return local
}

// qualifier is a types.Qualifier that records imports as a side effect.
func (s *importSet) qualifier(pkg *types.Package) string {
	if s.self != nil && pkg.Path() == s.self.Path() {
		return ""
	}

	return s.add(pkg.Path(), pkg.Name())
}

// specs returns the registered imports in insertion order.
func (s *importSet) specs() []importSpec {
	out := make([]importSpec, 0, s.byPath.Size())
	for _, v := range s.byPath.Values() {
		out = append(out, v.(importSpec))
	}

	return out
}

func localName(spec importSpec) string {
	if spec.Alias != "" {
		return spec.Alias
	}

	return common.PkgAlias(spec.Path)
}

// DisambiguateName yields name, then name2, name3 and so on. A name already
// ending in a digit gets an underscore before the counter.
func DisambiguateName(name string) iter.Seq[string] {
	if name == "" {
		panic("empty name")
	}

	return func(yield func(string) bool) {
		if !yield(name) {
			return
		}

		sep := ""
		if last := name[len(name)-1]; last >= '0' && last <= '9' {
			sep = "_"
		}

		for i := 2; ; i++ {
			if !yield(fmt.Sprintf("%s%s%d", name, sep, i)) {
				return
			}
		}
	}
}

// exprString prints a payload expression from syntax alone. Package
// qualifiers are resolved against the imports of file and recorded in s. The
// qualifier must stay usable under its original name.
func (s *importSet) exprString(expr ast.Expr, file *ast.File) (string, error) {
	var err error

	astutil.Apply(expr, func(c *astutil.Cursor) bool {
		sel, ok := c.Node().(*ast.SelectorExpr)
		if !ok || err != nil {
			return err == nil
		}

		x, ok := sel.X.(*ast.Ident)
		if !ok {
			return true
		}

		path, ok := importPath(file, x.Name)
		if !ok {
			return true
		}

		if local := s.add(path, x.Name); local != x.Name {
			err = fmt.Errorf("import %q conflicts with %q in generated file", x.Name, path)
		}

		return false
	}, nil)

	if err != nil {
		return "", err
	}

	return types.ExprString(expr), nil
}

// importPath finds the path imported under name in file.
func importPath(file *ast.File, name string) (string, bool) {
	if file == nil {
		return "", false
	}

	for _, imp := range file.Imports {
		path, err := strconv.Unquote(imp.Path.Value)
		if err != nil {
			continue
		}

		local := common.PkgAlias(path)
		if imp.Name != nil {
			local = imp.Name.Name
		}

		if local == name && local != "_" && local != "." {
			return path, true
		}
	}

	return "", false
}

// fileOf returns the file of files that contains pos.
func fileOf(fset *token.FileSet, files []*ast.File, pos token.Pos) *ast.File {
	for _, f := range files {
		if f.FileStart <= pos && pos <= f.FileEnd {
			return f
		}
	}

	if fset == nil {
		return nil
	}

	name := fset.Position(pos).Filename
	for _, f := range files {
		if fset.Position(f.Pos()).Filename == name {
			return f
		}
	}

	return nil
}
