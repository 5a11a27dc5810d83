package analyze

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"
	"strings"

	"golang.org/x/tools/go/packages"
)

// LoadMode specifies what information to load from packages.
const LoadMode = packages.NeedName |
	packages.NeedFiles |
	packages.NeedSyntax |
	packages.NeedTypes |
	packages.NeedTypesInfo |
	packages.NeedImports |
	packages.NeedDeps

// DefaultBuildTag excludes previously generated files from analysis. Generated
// files carry the constraint "//go:build !unionfrom".
const DefaultBuildTag = "unionfrom"

// LoaderConfig controls how packages are loaded.
type LoaderConfig struct {
	// Dir is the working directory patterns are resolved against.
	Dir string
	// Env overrides the environment of the underlying go command.
	Env []string
	// Tags are extra build tags.
	Tags []string
	// Tests includes test files.
	Tests bool
	// BuildTag is always set while loading. Defaults to DefaultBuildTag.
	BuildTag string
}

// Loader loads Go packages for analysis.
type Loader struct {
	cfg LoaderConfig
}

// NewLoader creates a new Loader.
func NewLoader(cfg LoaderConfig) *Loader {
	if cfg.BuildTag == "" {
		cfg.BuildTag = DefaultBuildTag
	}

	return &Loader{cfg: cfg}
}

// Load loads the packages matching patterns. Patterns are standard Go package
// patterns (e.g., "./...", "unionfrom-generator/examples/myerror").
//
// Listing and parse errors fail the load. Type errors do not: the generated
// file is excluded while loading, so code calling the generated functions
// does not type-check yet. They stay in pkg.Errors (see TypeErrors).
func (l *Loader) Load(ctx context.Context, patterns ...string) ([]*packages.Package, error) {
	tags := append([]string{l.cfg.BuildTag}, l.cfg.Tags...)

	cfg := &packages.Config{
		Mode:       LoadMode,
		Context:    ctx,
		Dir:        l.cfg.Dir,
		Env:        l.cfg.Env,
		Tests:      l.cfg.Tests,
		BuildFlags: []string{"-tags=" + strings.Join(tags, ",")},
	}

	pkgs, err := packages.Load(cfg, patterns...)
	if err != nil {
		return nil, fmt.Errorf("failed to load packages: %w", err)
	}

	if len(pkgs) == 0 {
		return nil, fmt.Errorf("no packages found: %v", patterns)
	}

	var errs error
	for _, pkg := range pkgs {
		for _, e := range pkg.Errors {
			if e.Kind == packages.TypeError {
				continue
			}

			errs = errors.Join(errs, l.relativeError(e))
		}
	}

	if errs != nil {
		return nil, fmt.Errorf("package errors:\n%w", errs)
	}

	return selectPackages(pkgs), nil
}

// TypeErrors returns the type errors Load left in pkg.
func TypeErrors(pkg *packages.Package) []packages.Error {
	var out []packages.Error
	for _, e := range pkg.Errors {
		if e.Kind == packages.TypeError {
			out = append(out, e)
		}
	}

	return out
}

// relativeError rewrites the position of e relative to the working directory.
func (l *Loader) relativeError(e packages.Error) error {
	if e.Pos == "" {
		return errors.New(e.Msg)
	}

	dir := l.cfg.Dir
	if dir == "" {
		dir = "."
	}

	if abs, err := filepath.Abs(dir); err == nil {
		path, rowcol, _ := strings.Cut(e.Pos, ":")
		if rel, err := filepath.Rel(abs, path); err == nil && !strings.HasPrefix(rel, "..") {
			e.Pos = rel + ":" + rowcol
		}
	}

	return e
}

// selectPackages keeps one package per import path. With tests enabled, the
// in-package test variant ("p [p.test]") replaces "p" because it holds a
// superset of its files; external test packages and test mains are dropped.
func selectPackages(pkgs []*packages.Package) []*packages.Package {
	byPath := make(map[string]int)

	var out []*packages.Package
	for _, pkg := range pkgs {
		if strings.HasSuffix(pkg.PkgPath, ".test") || strings.HasSuffix(pkg.PkgPath, "_test") {
			continue
		}

		if i, ok := byPath[pkg.PkgPath]; ok {
			if pkg.ID != pkg.PkgPath {
				out[i] = pkg
			}

			continue
		}

		byPath[pkg.PkgPath] = len(out)
		out = append(out, pkg)
	}

	return out
}
