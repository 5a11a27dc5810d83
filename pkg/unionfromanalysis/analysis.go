package unionfromanalysis

import (
	"errors"

	"golang.org/x/tools/go/analysis"
	"golang.org/x/tools/go/packages"

	"unionfrom-generator/internal/analyze"
	"unionfrom-generator/internal/derive"
	"unionfrom-generator/internal/diagnostic"
)

// Analyzer validates declarations marked with //unionfrom:generate. It
// reports what the generator would reject, plus alternatives sharing a
// payload type.
var Analyzer = &analysis.Analyzer{
	Name: "unionfrom",
	Doc:  "check unions marked for unionfrom-generator",
	URL:  "https://pkg.go.dev/unionfrom-generator/pkg/unionfromanalysis",
	Run:  run,
}

func run(pass *analysis.Pass) (any, error) {
	pkg := &packages.Package{
		Name:      pass.Pkg.Name(),
		PkgPath:   pass.Pkg.Path(),
		Types:     pass.Pkg,
		Fset:      pass.Fset,
		Syntax:    pass.Files,
		TypesInfo: pass.TypesInfo,
	}

	targets, err := analyze.Discover(pkg)
	if err != nil {
		return nil, err
	}

	for _, target := range targets {
		convs, err := derive.Transform(target.Decl)
		if err != nil {
			var derr *derive.Error
			if errors.As(err, &derr) {
				pass.Report(analysis.Diagnostic{
					Pos:      derr.Pos,
					Category: diagnostic.Code(err),
					Message:  err.Error(),
				})
			}

			continue
		}

		for _, dup := range analyze.DuplicatePayloads(pass.TypesInfo, convs) {
			pass.Report(analysis.Diagnostic{
				Pos:      dup.Conversion.Pos,
				Category: diagnostic.CodeDuplicatePayload,
				Message: target.Decl.Name() + ": alternatives " + dup.First.Tag + " and " + dup.Conversion.Tag +
					" share the payload type " + pass.TypesInfo.TypeOf(dup.Conversion.Payload).String(),
			})
		}
	}

	return nil, nil
}
