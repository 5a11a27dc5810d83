package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"unionfrom-generator/internal/config"
	"unionfrom-generator/internal/diagnostic"
	"unionfrom-generator/internal/logger"
	"unionfrom-generator/internal/pipeline"
)

// errReported means the failure was already printed as diagnostics.
var errReported = errors.New("failed")

// app is the state shared by all commands.
type app struct {
	stdout io.Writer
	stderr io.Writer

	dir        string
	configPath string
	tags       []string
	tests      bool
	output     string
	logLevel   string
	logJSON    bool
	color      string

	cfg     *config.Config
	printer *diagnostic.Printer
}

// RootCmd creates the command tree writing to stdout and stderr.
func RootCmd(stdout, stderr io.Writer) *cobra.Command {
	a := &app{stdout: stdout, stderr: stderr}

	root := &cobra.Command{
		Use:   "unionfrom-generator",
		Short: "Generate payload-to-union conversions for Go interface unions",
		Long: `unionfrom-generator finds interfaces marked with //unionfrom:generate and
generates, for every alternative wrapping exactly one payload type, a function
converting the payload into the union.`,
		SilenceUsage:      true,
		SilenceErrors:     true,
		PersistentPreRunE: a.setup,
	}

	root.SetOut(stdout)
	root.SetErr(stderr)

	flags := root.PersistentFlags()
	flags.StringVarP(&a.dir, "dir", "C", "", "Working directory patterns are resolved against")
	flags.StringVar(&a.configPath, "config", "", "Path to the config file (default: ./"+config.DefaultFileName+" if present)")
	flags.StringSliceVar(&a.tags, "tags", nil, "Extra build tags used while loading packages")
	flags.BoolVar(&a.tests, "tests", false, "Include test files")
	flags.StringVar(&a.output, "output", "", "Name of the generated file in each package")
	flags.StringVar(&a.logLevel, "log-level", string(logger.WarnLevel), "Log level (debug, info, warn, error, disabled)")
	flags.BoolVar(&a.logJSON, "log-json", false, "Log as JSON")
	flags.StringVar(&a.color, "color", string(diagnostic.ColorAuto), "Colorize diagnostics (auto, always, never)")

	root.AddCommand(
		a.genCmd(),
		a.checkCmd(),
		a.listCmd(),
		a.initCmd(),
		versionCmd(),
	)

	return root
}

// setup configures logging, diagnostics output and the configuration before
// any command runs.
func (a *app) setup(cmd *cobra.Command, _ []string) error {
	level, err := logger.ParseLevel(a.logLevel)
	if err != nil {
		return err
	}

	mode, err := diagnostic.ParseColorMode(a.color)
	if err != nil {
		return err
	}

	a.printer = diagnostic.NewPrinter(a.stderr, mode)

	logCfg := logger.DefaultConfig()
	logCfg.Level = level
	logCfg.Output = a.stderr
	logCfg.JSON = a.logJSON

	log := logger.NewLogger(logCfg)
	cmd.SetContext(logger.ContextWithLogger(cmd.Context(), log))

	cfg, err := a.loadConfig()
	if err != nil {
		return err
	}

	a.applyFlags(cmd.Flags(), cfg)
	a.cfg = cfg

	log.Debug("config loaded", "output", cfg.Output, "build_tag", cfg.BuildTag, "tags", cfg.Tags)

	return nil
}

func (a *app) loadConfig() (*config.Config, error) {
	if a.configPath != "" {
		return config.LoadFile(a.configPath)
	}

	dir := a.dir
	if dir == "" {
		dir = "."
	}

	return config.Find(dir)
}

// applyFlags lets explicitly set flags override the config file.
func (a *app) applyFlags(flags *pflag.FlagSet, cfg *config.Config) {
	if flags.Changed("tags") {
		cfg.Tags = a.tags
	}

	if flags.Changed("tests") {
		cfg.Tests = a.tests
	}

	if flags.Changed("output") {
		cfg.Output = a.output
	}
}

func (a *app) options(args []string) pipeline.Options {
	return pipeline.Options{
		Dir:      a.dir,
		Patterns: args,
		Config:   a.cfg,
	}
}

// report prints the diagnostics of res, or returns err itself when the run
// failed before producing any. Warnings and infos of a successful run are
// printed too.
func (a *app) report(res *pipeline.Result, err error) error {
	if res == nil {
		return err
	}

	a.printer.PrintAll(res.Diagnostics)

	if err != nil {
		if res.Diagnostics.HasErrors() {
			return errReported
		}

		return err
	}

	return nil
}

// relPath shortens path for display relative to the working directory.
func (a *app) relPath(path string) string {
	base := a.dir
	if base == "" {
		wd, err := os.Getwd()
		if err != nil {
			return path
		}

		base = wd
	}

	if abs, err := filepath.Abs(base); err == nil {
		base = abs
	}

	if rel, err := filepath.Rel(base, path); err == nil {
		return rel
	}

	return path
}

func (a *app) printf(format string, args ...any) {
	fmt.Fprintf(a.stdout, format, args...)
}
