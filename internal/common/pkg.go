package common

import (
	"path"
	"strings"
)

// PkgAlias returns the name a package is assumed to have when imported
// without an explicit name. It is the last element of pkgPath, skipping a
// major version suffix, with a "go-" prefix and anything from the first '.'
// or '-' removed. Returns empty string if pkgPath is empty.
func PkgAlias(pkgPath string) string {
	if pkgPath == "" {
		return ""
	}

	base := path.Base(pkgPath)
	if isMajorVersion(base) {
		if dir := path.Dir(pkgPath); dir != "." {
			base = path.Base(dir)
		}
	}

	base = strings.TrimPrefix(base, "go-")
	if i := strings.IndexAny(base, ".-"); i > 0 {
		base = base[:i]
	}

	return base
}

// isMajorVersion reports whether elem looks like "v2", "v3" and so on.
func isMajorVersion(elem string) bool {
	digits, ok := strings.CutPrefix(elem, "v")
	if !ok || digits == "" {
		return false
	}

	for _, r := range digits {
		if r < '0' || r > '9' {
			return false
		}
	}

	return true
}
