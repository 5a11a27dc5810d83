// Package config loads the optional unionfrom.yaml file.
//
// Example:
//
//	version: "1"
//	patterns: ["./..."]
//	output: unionfrom_gen.go
//	tags: [integration]
//	naming:
//	  conversion: "{{.Union}}From{{.Tag}}"
//	  dispatch: ""        # no dispatcher
//	comments: false
//
// Command-line flags override values from the file.
package config
