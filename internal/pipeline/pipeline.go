package pipeline

import (
	"context"
	"errors"
	"fmt"
	"go/token"

	"golang.org/x/tools/go/packages"

	"unionfrom-generator/internal/analyze"
	"unionfrom-generator/internal/config"
	"unionfrom-generator/internal/derive"
	"unionfrom-generator/internal/diagnostic"
	"unionfrom-generator/internal/gen"
	"unionfrom-generator/internal/logger"
)

// ErrInvalid is returned when any target failed validation or the generated
// code did not type-check. Result.Diagnostics holds the details.
var ErrInvalid = errors.New("generation failed")

// Options configure a run.
type Options struct {
	// Dir is the working directory patterns are resolved against.
	Dir string
	// Env overrides the environment of the go command.
	Env []string
	// Patterns are package patterns. Defaults to Config.Patterns.
	Patterns []string
	// Config defaults to config.Default().
	Config *config.Config
}

// Result is the outcome of a run.
type Result struct {
	// Files holds one file per package with marked declarations. It is empty
	// whenever Diagnostics has errors.
	Files    []gen.GeneratedFile
	Packages []*analyze.PackageInfo
	// Orphans are generated files found in packages without any marked
	// declaration left.
	Orphans     []gen.GeneratedFile
	Diagnostics diagnostic.Diagnostics
}

// Run loads the packages, transforms every marked declaration and renders
// the generated files. Nothing is written to disk, except the unformatted
// source when the config sets a debug directory.
//
// Any failing target fails the whole run: Result.Files is then empty and
// the error wraps ErrInvalid.
func Run(ctx context.Context, opts Options) (*Result, error) {
	log := logger.FromContext(ctx)

	cfg := opts.Config
	if cfg == nil {
		cfg = config.Default()
	}

	res := &Result{}

	if diags := config.Validate(cfg); diags.HasErrors() {
		res.Diagnostics.Merge(*diags)
		return res, fmt.Errorf("invalid config:\n%w", diags.Error())
	}

	patterns := opts.Patterns
	if len(patterns) == 0 {
		patterns = cfg.Patterns
	}

	log.Debug("loading packages", "patterns", patterns, "dir", opts.Dir)

	pkgs, err := analyze.NewLoader(cfg.LoaderConfig(opts.Dir, opts.Env)).Load(ctx, patterns...)
	if err != nil {
		return nil, err
	}

	infos, err := analyze.DiscoverAll(pkgs)
	if err != nil {
		return nil, err
	}

	res.Packages = infos

	if err := findOrphans(cfg, pkgs, infos, res, log); err != nil {
		return nil, err
	}

	units := transform(cfg, infos, &res.Diagnostics, log)
	if res.Diagnostics.HasErrors() {
		return finish(res)
	}

	g, err := gen.NewGenerator(cfg.GeneratorConfig())
	if err != nil {
		return nil, err
	}

	var files []gen.GeneratedFile
	for _, unit := range units {
		plog := log.With("pkg", unit.Pkg.PkgPath)

		file, err := g.Generate(unit)
		if err != nil {
			return nil, err
		}

		if errs := analyze.TypeErrors(unit.Pkg); len(errs) > 0 {
			plog.Debug("package has type errors without generated code", "count", len(errs), "first", errs[0].Msg)
		}

		if err := gen.Verify(unit.Pkg, file); err != nil {
			res.Diagnostics.Add(diagnostic.Diagnostic{
				Severity: diagnostic.SeverityError,
				Code:     diagnostic.CodeTypeCheck,
				Message:  fmt.Sprintf("%s: %v", unit.Pkg.PkgPath, err),
			})

			continue
		}

		plog.Debug("generated", "unions", len(unit.Unions))
		files = append(files, *file)
	}

	if res.Diagnostics.HasErrors() {
		return finish(res)
	}

	res.Files = files
	res.Diagnostics.Sort()

	return res, nil
}

// findOrphans records generated files left in packages that have no marked
// declaration anymore.
func findOrphans(cfg *config.Config, pkgs []*packages.Package, infos []*analyze.PackageInfo, res *Result, log logger.Logger) error {
	withTargets := make(map[string]bool, len(infos))
	for _, info := range infos {
		withTargets[info.Path] = true
	}

	for _, pkg := range pkgs {
		if withTargets[pkg.PkgPath] {
			continue
		}

		path, err := gen.FindGenerated(pkg, cfg.Output)
		if err != nil {
			return err
		}

		if path == "" {
			continue
		}

		log.With("pkg", pkg.PkgPath).Debug("orphaned generated file", "path", path)

		res.Orphans = append(res.Orphans, gen.GeneratedFile{Path: path, PkgPath: pkg.PkgPath})
		res.Diagnostics.AddWarning(diagnostic.CodeOrphanedFile,
			fmt.Sprintf("%s has no marked declarations left, delete this generated file", pkg.PkgPath),
			token.Position{Filename: path, Line: 1, Column: 1})
	}

	return nil
}

// transform runs derive.Transform on every target and groups the results
// into one unit per package. Failures are recorded in diags.
func transform(cfg *config.Config, infos []*analyze.PackageInfo, diags *diagnostic.Diagnostics, log logger.Logger) []gen.Unit {
	var units []gen.Unit
	for _, info := range infos {
		plog := log.With("pkg", info.Path)
		unit := gen.Unit{Pkg: info.Pkg, Dir: info.Dir}

		for _, target := range info.Targets {
			convs, err := derive.Transform(target.Decl)
			if err != nil {
				diags.Add(diagnostic.FromError(info.Pkg.Fset, err, diagnostic.CodeLoad))
				continue
			}

			plog.Debug("transformed", "union", target.Decl.Name(), "conversions", len(convs))

			if len(convs) == 0 {
				diags.AddInfo(diagnostic.CodeNoAlternatives,
					fmt.Sprintf("%s: union has no alternatives, nothing generated", target.Decl.Name()),
					target.Position())
			}

			// The dispatcher's type switch lets the type checker reject
			// duplicate payloads; they are only flagged early. Without it they
			// must be caught here.
			severity := diagnostic.SeverityError
			if cfg.DispatchEnabled() {
				severity = diagnostic.SeverityWarning
			}

			for _, dup := range analyze.DuplicatePayloads(info.Pkg.TypesInfo, convs) {
				diags.Add(DuplicateDiagnostic(info.Pkg, target, dup, severity))
			}

			unit.Unions = append(unit.Unions, gen.Union{Name: target.Decl.Name(), Conversions: convs})
		}

		units = append(units, unit)
	}

	return units
}

// DuplicateDiagnostic reports dup, an alternative of target sharing its
// payload type with an earlier one.
func DuplicateDiagnostic(pkg *packages.Package, target analyze.Target, dup analyze.Duplicate, severity diagnostic.Severity) diagnostic.Diagnostic {
	return diagnostic.Diagnostic{
		Severity: severity,
		Code:     diagnostic.CodeDuplicatePayload,
		Message: fmt.Sprintf("%s: alternatives %s and %s share the payload type %s",
			target.Decl.Name(), dup.First.Tag, dup.Conversion.Tag, pkg.TypesInfo.TypeOf(dup.Conversion.Payload)),
		Position:    pkg.Fset.Position(dup.Conversion.Pos),
		Decl:        target.Decl.Name(),
		Alternative: dup.Conversion.Tag,
	}
}

func finish(res *Result) (*Result, error) {
	res.Files = nil
	res.Diagnostics.Sort()

	return res, fmt.Errorf("%w:\n%w", ErrInvalid, res.Diagnostics.Error())
}
