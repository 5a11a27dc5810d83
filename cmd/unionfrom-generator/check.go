package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"unionfrom-generator/internal/pipeline"
)

func (a *app) checkCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "check [packages]",
		Short: "Verify that generated files are up to date",
		Long: `Check runs the generator without writing anything and fails when a
generated file is missing, differs from what would be generated, or is left
in a package that has nothing to generate anymore.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			stale, res, err := pipeline.Check(cmd.Context(), a.options(args))
			if err := a.report(res, err); err != nil {
				return err
			}

			if len(stale) == 0 {
				a.printf("%d file(s) up to date\n", len(res.Files))
				return nil
			}

			for _, s := range stale {
				path := a.relPath(s.File.Path)
				switch {
				case s.Missing:
					a.printf("Missing: %s\n", path)
					continue
				case s.Orphaned:
					a.printf("Orphaned: %s\n", path)
					continue
				}

				a.printf("Stale: %s\n%s", path, s.Diff)
			}

			return fmt.Errorf("%d generated file(s) out of date, run gen", len(stale))
		},
	}
}
