// Package bookconfig registers the preprocessor and its stylesheet in an
// mdBook project: it edits book.toml and writes the CSS file.
package bookconfig

import (
	"errors"
	"fmt"
	"path"
	"path/filepath"
)

// Sentinel errors for book configuration operations.
var (
	ErrBookConfigNotFound = errors.New("book.toml not found")
	ErrBookConfigParse    = errors.New("failed to parse book.toml")
	ErrBookConfigShape    = errors.New("unexpected book.toml structure")
	ErrBookConfigWrite    = errors.New("failed to write book.toml")
	ErrCSSWrite           = errors.New("failed to install css")
)

// Names and defaults of the installed files.
const (
	FileName      = "book.toml"
	CSSFileName   = "blush.css"
	DefaultCSSDir = "theme/css"
)

// TOML keys touched by the installer.
const (
	keyOutput        = "output"
	keyHTML          = "html"
	keyAdditionalCSS = "additional-css"
	keyPreprocessor  = "preprocessor"
	keyBlush         = "blush"
)

// ShapeError reports a book.toml key whose TOML type prevents the edit.
type ShapeError struct {
	Key  string // dotted key, e.g. "output.html"
	Want string // expected TOML type
}

func (e *ShapeError) Error() string {
	return fmt.Sprintf("%s: `%s` must be %s", ErrBookConfigShape, e.Key, e.Want)
}

// Unwrap lets errors.Is match ErrBookConfigShape.
func (e *ShapeError) Unwrap() error {
	return ErrBookConfigShape
}

// CSSPath returns the stylesheet path as written into additional-css:
// slash-separated and relative to the book root.
func CSSPath(cssDir string) string {
	return path.Join(filepath.ToSlash(filepath.Clean(cssDir)), CSSFileName)
}
