package config

import (
	"unionfrom-generator/internal/analyze"
	"unionfrom-generator/internal/gen"
)

// DefaultFileName is the configuration file looked up in the working
// directory when none is given.
const DefaultFileName = "unionfrom.yaml"

// Config is the root of a unionfrom.yaml file.
type Config struct {
	// Version of the configuration format.
	Version string `yaml:"version,omitempty"`

	// Patterns are the package patterns used when none are given on the
	// command line.
	Patterns []string `yaml:"patterns,omitempty"`

	// Output is the name of the generated file in each package.
	Output string `yaml:"output,omitempty"`

	// BuildTag excludes generated files while loading packages.
	BuildTag string `yaml:"build_tag,omitempty"`

	// Tags are extra build tags used while loading packages.
	Tags []string `yaml:"tags,omitempty"`

	// Tests includes test files, so unions declared in _test.go files are
	// generated too.
	Tests bool `yaml:"tests,omitempty"`

	Naming Naming `yaml:"naming,omitempty"`

	// Comments toggles doc comments on generated functions. Defaults to true.
	Comments *bool `yaml:"comments,omitempty"`

	// DebugDir receives the unformatted source when generated code does not
	// format. Unset by default.
	DebugDir string `yaml:"debug_dir,omitempty"`
}

// Naming holds the name patterns of generated functions. Patterns are
// text/template strings over {{.Union}} and {{.Tag}}.
type Naming struct {
	Conversion string `yaml:"conversion,omitempty"`

	// Dispatch names the per-union dispatcher. An explicit empty string
	// disables it.
	Dispatch *string `yaml:"dispatch,omitempty"`
}

// Default returns the configuration used when no file is present.
func Default() *Config {
	cfg := &Config{}
	applyDefaults(cfg)

	return cfg
}

// GeneratorConfig converts c into the generator's configuration.
func (c *Config) GeneratorConfig() gen.GeneratorConfig {
	cfg := gen.DefaultGeneratorConfig()
	cfg.FileName = c.Output
	cfg.BuildTag = c.BuildTag
	cfg.ConversionName = c.Naming.Conversion
	cfg.DebugDir = c.DebugDir

	if c.Naming.Dispatch != nil {
		cfg.DispatchName = *c.Naming.Dispatch
	}

	if c.Comments != nil {
		cfg.GenerateComments = *c.Comments
	}

	return cfg
}

// LoaderConfig converts c into the package loader's configuration.
func (c *Config) LoaderConfig(dir string, env []string) analyze.LoaderConfig {
	return analyze.LoaderConfig{
		Dir:      dir,
		Env:      env,
		Tags:     c.Tags,
		Tests:    c.Tests,
		BuildTag: c.BuildTag,
	}
}

// DispatchEnabled reports whether dispatchers are generated.
func (c *Config) DispatchEnabled() bool {
	return c.Naming.Dispatch == nil || *c.Naming.Dispatch != ""
}
