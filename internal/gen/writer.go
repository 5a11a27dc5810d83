package gen

import (
	"bytes"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"golang.org/x/tools/go/packages"
)

// File permission constants.
const (
	dirPerm  = 0o755
	filePerm = 0o644
)

// WriteFiles writes every generated file to its path, creating directories
// as needed.
func WriteFiles(files []GeneratedFile) error {
	for _, file := range files {
		if err := os.MkdirAll(filepath.Dir(file.Path), dirPerm); err != nil {
			return fmt.Errorf("creating output directory: %w", err)
		}

		if err := os.WriteFile(file.Path, file.Content, filePerm); err != nil {
			return fmt.Errorf("writing file %s: %w", file.Path, err)
		}
	}

	return nil
}

// Stale is a generated file that differs from what is on disk.
type Stale struct {
	File GeneratedFile
	// Diff is empty when the file does not exist yet.
	Diff    string
	Missing bool
	// Orphaned is set for a generated file left in a package that no longer
	// has anything to generate.
	Orphaned bool
}

// CompareFiles reports the files whose content on disk differs from the
// generated content.
func CompareFiles(files []GeneratedFile) ([]Stale, error) {
	var stale []Stale
	for _, file := range files {
		current, err := os.ReadFile(file.Path)
		if errors.Is(err, fs.ErrNotExist) {
			stale = append(stale, Stale{File: file, Missing: true})
			continue
		}

		if err != nil {
			return nil, fmt.Errorf("reading file %s: %w", file.Path, err)
		}

		if bytes.Equal(current, file.Content) {
			continue
		}

		name := file.Filename()
		stale = append(stale, Stale{
			File: file,
			Diff: Diff(name+" (on disk)", name+" (generated)", current, file.Content),
		})
	}

	return stale, nil
}

// IsGenerated reports whether content was written by this generator.
func IsGenerated(content []byte) bool {
	for line := range bytes.Lines(content) {
		line = bytes.TrimSpace(line)
		if bytes.HasPrefix(line, []byte("package ")) {
			return false
		}

		if string(line) == Header {
			return true
		}
	}

	return false
}

// FindGenerated returns the path of a file named filename that this
// generator wrote into the directory of pkg. Such a file is excluded by its
// build constraint while loading, so it shows up in pkg.IgnoredFiles.
func FindGenerated(pkg *packages.Package, filename string) (string, error) {
	for _, path := range pkg.IgnoredFiles {
		if filepath.Base(path) != filename {
			continue
		}

		content, err := os.ReadFile(path)
		if err != nil {
			return "", fmt.Errorf("reading file %s: %w", path, err)
		}

		if IsGenerated(content) {
			return path, nil
		}
	}

	return "", nil
}
