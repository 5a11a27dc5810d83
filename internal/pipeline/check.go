package pipeline

import (
	"context"

	"unionfrom-generator/internal/gen"
)

// Check runs the pipeline and reports the generated files that are missing,
// differ from what is on disk, or are left in packages with nothing to
// generate.
func Check(ctx context.Context, opts Options) ([]gen.Stale, *Result, error) {
	res, err := Run(ctx, opts)
	if err != nil {
		return nil, res, err
	}

	stale, err := gen.CompareFiles(res.Files)
	if err != nil {
		return nil, res, err
	}

	for _, orphan := range res.Orphans {
		stale = append(stale, gen.Stale{File: orphan, Orphaned: true})
	}

	return stale, res, nil
}
