// Package fileutil holds the filesystem helpers the export pipeline and
// CLI share: temp files for browser rendering and path predicates for
// config resolution.
package fileutil

import (
	"errors"
	"fmt"
	"os"
	"strings"
)

var (
	ErrExtensionEmpty  = errors.New("extension cannot be empty")
	ErrExtensionUnsafe = errors.New("extension contains path separator or null byte")
)

// WriteTempFile writes content to a fresh temp file with the given
// extension and returns its path plus a cleanup func that removes it.
// The browser renderer needs a real file URL, so the HTML cannot be
// piped in.
func WriteTempFile(content, extension string) (string, func(), error) {
	if err := ValidateExtension(extension); err != nil {
		return "", nil, err
	}

	f, err := os.CreateTemp("", "nbexport-*."+extension)
	if err != nil {
		return "", nil, fmt.Errorf("creating temp file: %w", err)
	}
	cleanup := func() { _ = os.Remove(f.Name()) }

	_, err = f.WriteString(content)
	if closeErr := f.Close(); err == nil {
		err = closeErr
	}
	if err != nil {
		cleanup()
		return "", nil, fmt.Errorf("writing temp file: %w", err)
	}

	return f.Name(), cleanup, nil
}

// ValidateExtension rejects extensions that would escape the temp
// directory or corrupt the temp file name.
func ValidateExtension(extension string) error {
	if extension == "" {
		return ErrExtensionEmpty
	}
	if strings.ContainsAny(extension, "/\\\x00") {
		return ErrExtensionUnsafe
	}
	return nil
}

// FileExists reports whether path names an existing regular file.
func FileExists(path string) bool {
	info, err := os.Stat(path)
	return err == nil && !info.IsDir()
}

// IsFilePath reports whether s names a file path rather than a bare
// name. Config and asset lookups treat anything with a path separator
// as a path and skip the search directories.
func IsFilePath(s string) bool {
	return strings.ContainsAny(s, "/\\")
}
