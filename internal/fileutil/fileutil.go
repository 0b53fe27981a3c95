// Package fileutil provides file and path utility functions.
package fileutil

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// Sentinel errors for file utility operations.
var (
	ErrPathEmpty     = errors.New("path cannot be empty")
	ErrPathAbsolute  = errors.New("path must be relative")
	ErrPathTraversal = errors.New("path escapes its root directory")
	ErrPathNullByte  = errors.New("path contains null byte")
)

// File modes for written files and created directories.
const (
	fileMode = 0o644
	dirMode  = 0o755
)

// WriteFile writes content to path, creating missing parent directories.
func WriteFile(path, content string) error {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, dirMode); err != nil {
			return fmt.Errorf("creating parent directory of %s: %w", path, err)
		}
	}
	if err := os.WriteFile(path, []byte(content), fileMode); err != nil { // #nosec G306 -- book assets are world-readable
		return fmt.Errorf("writing %s: %w", path, err)
	}
	return nil
}

// ValidateRelativePath checks that path stays inside the directory it is
// joined to: non-empty, relative, and without leading "..".
//
// Examples:
//   - "theme/css" -> nil
//   - "./theme/../css" -> nil (cleans to "css")
//   - "/etc" -> ErrPathAbsolute
//   - "../outside" -> ErrPathTraversal
func ValidateRelativePath(path string) error {
	if path == "" {
		return ErrPathEmpty
	}
	if strings.ContainsRune(path, 0) {
		return ErrPathNullByte
	}
	if filepath.IsAbs(path) || strings.HasPrefix(path, "/") {
		return fmt.Errorf("%w: %s", ErrPathAbsolute, path)
	}
	clean := filepath.ToSlash(filepath.Clean(path))
	if clean == ".." || strings.HasPrefix(clean, "../") {
		return fmt.Errorf("%w: %s", ErrPathTraversal, path)
	}
	return nil
}

// FileExists returns true if the path exists and is a regular file.
func FileExists(path string) bool {
	info, err := os.Stat(path)
	if err != nil {
		return false
	}
	return !info.IsDir()
}

// DirExists returns true if the path exists and is a directory.
func DirExists(path string) bool {
	info, err := os.Stat(path)
	if err != nil {
		return false
	}
	return info.IsDir()
}
