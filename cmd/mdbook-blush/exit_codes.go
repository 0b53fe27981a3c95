package main

import (
	"errors"
	"os"

	blush "github.com/alnah/go-blush"
	"github.com/alnah/go-blush/internal/bookconfig"
	"github.com/alnah/go-blush/internal/fileutil"
)

// Exit codes for the mdbook-blush CLI.
// Follows Unix conventions: 0=success, 1=general, 2=usage, and custom codes < 126.
// mdBook only distinguishes zero from non-zero; the rest is for humans and scripts.
const (
	ExitSuccess = 0 // Successful run, or supported renderer
	ExitGeneral = 1 // General error, or unsupported renderer
	ExitUsage   = 2 // Invalid flags, arguments, or configuration
	ExitIO      = 3 // File not found, permission denied, broken pipe
)

// exitCodeFor returns the appropriate exit code for an error.
// It uses errors.Is to check wrapped errors, so callers must use fmt.Errorf("%w", err).
func exitCodeFor(err error) int {
	if err == nil {
		return ExitSuccess
	}

	// I/O errors (exit 3)
	if errors.Is(err, os.ErrNotExist) ||
		errors.Is(err, os.ErrPermission) ||
		errors.Is(err, blush.ErrWriteOutput) ||
		errors.Is(err, bookconfig.ErrBookConfigNotFound) ||
		errors.Is(err, bookconfig.ErrBookConfigWrite) ||
		errors.Is(err, bookconfig.ErrCSSWrite) {
		return ExitIO
	}

	// Usage/config/validation errors (exit 2)
	if errors.Is(err, ErrUnknownCommand) ||
		errors.Is(err, ErrTooManyArgs) ||
		errors.Is(err, ErrInvalidFlag) ||
		errors.Is(err, ErrEnvConfig) ||
		errors.Is(err, bookconfig.ErrBookConfigParse) ||
		errors.Is(err, bookconfig.ErrBookConfigShape) ||
		errors.Is(err, fileutil.ErrPathEmpty) ||
		errors.Is(err, fileutil.ErrPathAbsolute) ||
		errors.Is(err, fileutil.ErrPathTraversal) ||
		errors.Is(err, fileutil.ErrPathNullByte) {
		return ExitUsage
	}

	return ExitGeneral
}
