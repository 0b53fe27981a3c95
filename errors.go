package blush

import "errors"

// Sentinel errors for preprocessing operations.
var (
	ErrMalformedInput = errors.New("malformed preprocessor input")
	ErrUnknownSection = errors.New("unknown book section")
	ErrWriteOutput    = errors.New("failed to write preprocessor output")
	ErrInvalidVersion = errors.New("invalid mdbook version")

	// Markdown round-trip errors.
	ErrMarkdownParse     = errors.New("markdown parse failed")
	ErrMarkdownSerialize = errors.New("markdown serialization failed")
)
