package main

import (
	"github.com/spf13/cobra"

	"unionfrom-generator/internal/gen"
	"unionfrom-generator/internal/logger"
	"unionfrom-generator/internal/pipeline"
)

func (a *app) genCmd() *cobra.Command {
	var (
		dryRun   bool
		debugDir string
	)

	cmd := &cobra.Command{
		Use:   "gen [packages]",
		Short: "Generate conversions for the marked unions",
		Long: `Generate loads the given packages (default: the config's patterns, or ".")
and writes one file of conversions into every package with marked unions.
Nothing is written if any union is invalid.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			log := logger.FromContext(cmd.Context())

			if cmd.Flags().Changed("debug-dir") {
				a.cfg.DebugDir = debugDir
			}

			res, err := pipeline.Run(cmd.Context(), a.options(args))
			if err := a.report(res, err); err != nil {
				return err
			}

			if dryRun {
				for _, file := range res.Files {
					a.printf("// %s\n%s\n", a.relPath(file.Path), file.Content)
				}

				return nil
			}

			if err := gen.WriteFiles(res.Files); err != nil {
				return err
			}

			for _, file := range res.Files {
				log.Info("wrote file", "path", file.Path, "pkg", file.PkgPath)
				a.printf("Generated: %s\n", a.relPath(file.Path))
			}

			return nil
		},
	}

	cmd.Flags().BoolVarP(&dryRun, "dry-run", "n", false, "Print generated files instead of writing them")
	cmd.Flags().StringVar(&debugDir, "debug-dir", "", "Directory receiving generated code that fails to format")

	return cmd
}
