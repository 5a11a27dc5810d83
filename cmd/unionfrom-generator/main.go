// Package main provides the CLI entrypoint for unionfrom-generator.
//
// unionfrom-generator is a go:generate tool that:
//   - Finds interface unions marked with //unionfrom:generate
//   - Checks that every alternative wraps exactly one payload type
//   - Generates one payload-to-union conversion per alternative
//
// Typical use, next to the union declaration:
//
//	//go:generate go run unionfrom-generator/cmd/unionfrom-generator gen .
package main

import (
	"errors"
	"fmt"
	"os"
)

func main() {
	cmd := RootCmd(os.Stdout, os.Stderr)
	if err := cmd.Execute(); err != nil {
		if !errors.Is(err, errReported) {
			fmt.Fprintln(os.Stderr, "Error:", err)
		}

		os.Exit(1)
	}
}
