package config

import (
	"fmt"
	"go/token"
	"path/filepath"
	"strings"

	"unionfrom-generator/internal/diagnostic"
	"unionfrom-generator/internal/gen"
)

// Validate checks a configuration before any package is loaded.
func Validate(cfg *Config) *diagnostic.Diagnostics {
	res := &diagnostic.Diagnostics{}
	if cfg == nil {
		res.AddError("config_is_nil", "config is nil", token.Position{})
		return res
	}

	if cfg.Version != "1" {
		res.AddError("unsupported_version", fmt.Sprintf("unsupported config version %q", cfg.Version), token.Position{})
	}

	switch {
	case cfg.Output != filepath.Base(cfg.Output):
		res.AddError("invalid_output", fmt.Sprintf("output %q must be a file name, not a path", cfg.Output), token.Position{})
	case !strings.HasSuffix(cfg.Output, ".go"):
		res.AddError("invalid_output", fmt.Sprintf("output %q must end in .go", cfg.Output), token.Position{})
	case strings.HasSuffix(cfg.Output, "_test.go"):
		res.AddError("invalid_output", fmt.Sprintf("output %q must not be a test file", cfg.Output), token.Position{})
	}

	for _, tag := range append([]string{cfg.BuildTag}, cfg.Tags...) {
		if !validTag(tag) {
			res.AddError("invalid_build_tag", fmt.Sprintf("invalid build tag %q", tag), token.Position{})
		}
	}

	dispatch := gen.DefaultDispatchName
	if cfg.Naming.Dispatch != nil {
		dispatch = *cfg.Naming.Dispatch
	}

	if _, err := gen.NewNamer(cfg.Naming.Conversion, dispatch); err != nil {
		res.AddError("invalid_naming", err.Error(), token.Position{})
	}

	return res
}

// validTag reports whether tag is usable in a build constraint.
func validTag(tag string) bool {
	if tag == "" {
		return false
	}

	for _, r := range tag {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9', r == '_', r == '.':
		default:
			return false
		}
	}

	return true
}
