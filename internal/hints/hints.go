// Package hints provides actionable error hints for common failure scenarios.
// Hints are formatted consistently as "\n  hint: <text>" for appending to error messages.
package hints

import (
	"path/filepath"
	"strings"
)

// ForMalformedInput returns hints for unreadable preprocessor input.
// Most often the binary was started by hand instead of by mdBook.
func ForMalformedInput() string {
	return formatHints([]string{
		"mdbook-blush reads a book from mdBook on stdin; run `mdbook build`",
		"use `mdbook-blush install` to register the preprocessor",
	})
}

// ForBookConfigNotFound returns hints when book.toml is missing in dir.
func ForBookConfigNotFound(dir string) string {
	hint := "run from the book root or pass it: mdbook-blush install <dir>"
	if dir != "" && dir != "." {
		hint = "check that " + filepath.Join(dir, "book.toml") + " exists; " + hint
	}
	return format(hint)
}

// ForBookConfigShape returns hints when a book.toml key has the wrong type.
func ForBookConfigShape(key string) string {
	if key == "" {
		return ""
	}
	return format("fix or remove `" + key + "` in book.toml, then run install again")
}

// ForVersionMismatch returns hints when mdBook and the plugin disagree.
func ForVersionMismatch(builtFor string) string {
	minor := builtFor
	if i := strings.LastIndexByte(builtFor, '.'); i > 0 {
		minor = builtFor[:i]
	}
	return format("output may differ; use mdBook " + minor + ".x or update mdbook-blush")
}

// format creates a single hint string with consistent formatting.
func format(hint string) string {
	if hint == "" {
		return ""
	}
	return "\n  hint: " + hint
}

// formatHints joins multiple hints with consistent formatting.
func formatHints(hints []string) string {
	if len(hints) == 0 {
		return ""
	}
	return format(strings.Join(hints, "; "))
}
