package bookconfig

import (
	"fmt"
	"os"
	"path/filepath"

	blush "github.com/alnah/go-blush"
	"github.com/alnah/go-blush/internal/fileutil"
)

// InstallOptions selects the book and the stylesheet location.
type InstallOptions struct {
	BookRoot string // directory containing book.toml ("" = current directory)
	CSSDir   string // stylesheet directory relative to BookRoot ("" = DefaultCSSDir)
}

// InstallResult describes what Install changed on disk.
type InstallResult struct {
	ConfigPath    string
	ConfigChanged bool
	CSSPath       string
	Warnings      []string
}

// Install registers the preprocessor in book.toml and writes the stylesheet.
// Running it again on an installed book rewrites only the stylesheet.
func Install(opts InstallOptions) (*InstallResult, error) {
	root := opts.BookRoot
	if root == "" {
		root = "."
	}
	cssDir := opts.CSSDir
	if cssDir == "" {
		cssDir = DefaultCSSDir
	}
	if err := fileutil.ValidateRelativePath(cssDir); err != nil {
		return nil, fmt.Errorf("css dir: %w", err)
	}

	if !fileutil.DirExists(root) {
		return nil, fmt.Errorf("%w: book root %s is not a directory", ErrBookConfigNotFound, root)
	}
	configPath := filepath.Join(root, FileName)
	if !fileutil.FileExists(configPath) {
		return nil, fmt.Errorf("%w: %s", ErrBookConfigNotFound, configPath)
	}
	src, err := os.ReadFile(configPath) // #nosec G304 -- book root is chosen by the user
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", configPath, err)
	}

	cssRel := CSSPath(cssDir)
	edit, err := Edit(src, cssRel)
	if err != nil {
		return nil, fmt.Errorf("cannot edit %s: %w", configPath, err)
	}
	if edit.Changed {
		if err := fileutil.WriteFile(configPath, string(edit.Content)); err != nil {
			return nil, fmt.Errorf("%w: %v", ErrBookConfigWrite, err)
		}
	}

	cssPath := filepath.Join(root, filepath.FromSlash(cssRel))
	if err := fileutil.WriteFile(cssPath, blush.SmallCapsCSS); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrCSSWrite, err)
	}

	return &InstallResult{
		ConfigPath:    configPath,
		ConfigChanged: edit.Changed,
		CSSPath:       cssPath,
		Warnings:      edit.Warnings,
	}, nil
}
