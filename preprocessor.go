package blush

import (
	"context"
	"fmt"
	"io"
	"strings"
)

// Compile-time interface implementation checks.
var _ markdownRewriter = (*goldmarkRewriter)(nil)

// Name is the identity reported to mdBook.
const Name = "mdbook-blush"

// supportedRenderer is the only mdBook renderer that understands the emitted HTML spans.
const supportedRenderer = "html"

// Preprocessor rewrites ==text== into small-caps spans across a whole book.
// Create with NewPreprocessor and call Run once per book.
type Preprocessor struct {
	rewriter markdownRewriter
	logger   io.Writer // nil disables progress lines
}

// Option configures a Preprocessor.
type Option func(*Preprocessor)

// WithLogger writes one progress line per rewritten chapter to w.
func WithLogger(w io.Writer) Option {
	return func(p *Preprocessor) {
		p.logger = w
	}
}

// NewPreprocessor creates a Preprocessor backed by the goldmark rewriter.
func NewPreprocessor(opts ...Option) *Preprocessor {
	p := &Preprocessor{
		rewriter: newGoldmarkRewriter(),
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// Name returns the preprocessor identity.
func (p *Preprocessor) Name() string {
	return Name
}

// SupportsRenderer reports whether output for renderer should be preprocessed.
func (p *Preprocessor) SupportsRenderer(renderer string) bool {
	return renderer == supportedRenderer
}

// Run rewrites every chapter of book in place, depth first, in document order.
// The first failure stops the walk. Chapters rewritten before it keep their
// new content.
func (p *Preprocessor) Run(ctx context.Context, book *Book) error {
	for _, section := range book.Sections {
		if err := p.processSection(ctx, section); err != nil {
			return err
		}
	}
	return nil
}

func (p *Preprocessor) processSection(ctx context.Context, section Section) error {
	switch s := section.(type) {
	case *Chapter:
		return p.processChapter(ctx, s)
	case Separator, PartTitle:
		return nil
	default:
		return fmt.Errorf("%w: %T", ErrUnknownSection, section)
	}
}

func (p *Preprocessor) processChapter(ctx context.Context, chapter *Chapter) error {
	// Check for cancellation before processing
	if err := ctx.Err(); err != nil {
		return err
	}

	spans := 0
	content, err := p.rewriter.Rewrite(chapter.Content, func(run string) string {
		converted := ConvertSmallCaps(run)
		if converted != run {
			spans += strings.Count(converted, spanOpen) - strings.Count(run, spanOpen)
		}
		return converted
	})
	if err != nil {
		return fmt.Errorf("chapter %q: %w", chapter.Name, err)
	}
	chapter.Content = content
	p.logf("%s: %d small-caps span(s)", chapter.Name, spans)

	for _, sub := range chapter.SubItems {
		if err := p.processSection(ctx, sub); err != nil {
			return err
		}
	}
	return nil
}

func (p *Preprocessor) logf(format string, args ...any) {
	if p.logger == nil {
		return
	}
	fmt.Fprintf(p.logger, format+"\n", args...)
}
