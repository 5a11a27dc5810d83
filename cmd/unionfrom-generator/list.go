package main

import (
	"github.com/spf13/cobra"

	"unionfrom-generator/internal/analyze"
	"unionfrom-generator/internal/derive"
	"unionfrom-generator/internal/diagnostic"
	"unionfrom-generator/internal/pipeline"
)

func (a *app) listCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list [packages]",
		Short: "List the marked declarations and their alternatives",
		Long: `List prints every marked declaration with its alternatives. Alternatives
sharing a payload type with an earlier one are reported as warnings.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 0 {
				args = a.cfg.Patterns
			}

			pkgs, err := analyze.NewLoader(a.cfg.LoaderConfig(a.dir, nil)).Load(cmd.Context(), args...)
			if err != nil {
				return err
			}

			infos, err := analyze.DiscoverAll(pkgs)
			if err != nil {
				return err
			}

			var diags diagnostic.Diagnostics

			stringer := analyze.NewTargetStringer()
			for _, info := range infos {
				a.printf("%s\n", info.Path)

				for _, target := range info.Targets {
					a.printf("  %s\n", stringer.TargetString(target))

					convs, err := derive.Transform(target.Decl)
					if err != nil {
						continue
					}

					for _, dup := range analyze.DuplicatePayloads(info.Pkg.TypesInfo, convs) {
						diags.Add(pipeline.DuplicateDiagnostic(info.Pkg, target, dup, diagnostic.SeverityWarning))
					}
				}
			}

			diags.Sort()
			a.printer.PrintAll(diags)

			return nil
		},
	}
}
