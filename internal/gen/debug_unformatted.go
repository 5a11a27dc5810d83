package gen

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
)

// unformattedName is the sidecar name for filename. It keeps the .go
// extension without colliding with the real output.
func unformattedName(filename string) string {
	return strings.TrimSuffix(filename, ".go") + ".unformatted.go"
}

// writeUnformatted saves source that go/format rejected into dir and returns
// the sidecar path. The sidecar's build constraint is replaced with "ignore"
// so it is never compiled next to the real output.
func writeUnformatted(dir, filename string, src []byte) (string, error) {
	if err := os.MkdirAll(dir, dirPerm); err != nil {
		return "", err
	}

	if first, rest, ok := bytes.Cut(src, []byte("\n")); ok && bytes.HasPrefix(first, []byte("//go:build ")) {
		src = rest
	}

	src = append([]byte("//go:build ignore\n"), src...)

	path := filepath.Join(dir, unformattedName(filename))
	if err := os.WriteFile(path, src, filePerm); err != nil {
		return "", err
	}

	return path, nil
}
