package blush

import (
	"cmp"
	"fmt"
	"slices"
	"strings"
	"unicode/utf8"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/parser"
	"github.com/yuin/goldmark/text"
)

// markdownRewriter abstracts the parse/serialize round trip of one chapter.
type markdownRewriter interface {
	Rewrite(content string, transform func(string) string) (string, error)
}

// goldmarkRewriter rewrites text runs found by goldmark (pure Go).
// Everything outside a text run is copied from the source byte for byte.
type goldmarkRewriter struct {
	parser parser.Parser
}

// newGoldmarkRewriter creates a goldmarkRewriter with the syntax extensions
// mdBook enables, so runs that belong to tables, footnotes or task lists are
// split where mdBook splits them. Linkify stays off: mdBook does not autolink
// bare URLs.
func newGoldmarkRewriter() *goldmarkRewriter {
	md := goldmark.New(
		goldmark.WithExtensions(
			extension.Table,          // | a | b |
			extension.Strikethrough,  // ~~text~~
			extension.TaskList,       // - [x] item
			extension.Footnote,       // [^1] footnotes
			extension.DefinitionList, // Term\n: definition
		),
	)
	return &goldmarkRewriter{parser: md.Parser()}
}

// Rewrite parses content, applies transform to each text run and returns the
// rebuilt markdown.
func (r *goldmarkRewriter) Rewrite(content string, transform func(string) string) (string, error) {
	if !utf8.ValidString(content) {
		return "", fmt.Errorf("%w: content is not valid UTF-8", ErrMarkdownParse)
	}

	src := []byte(content)
	doc := r.parser.Parse(text.NewReader(src))

	runs, err := collectTextRuns(doc)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrMarkdownParse, err)
	}
	return spliceRuns(content, runs, transform)
}

// collectTextRuns returns the source segments of all plain text, sorted by
// offset. Footnote definitions are moved to the end of the tree, so walk order
// is not source order. Sibling text nodes whose segments touch are merged into
// one run.
func collectTextRuns(doc ast.Node) ([]text.Segment, error) {
	var (
		runs []text.Segment
		prev *ast.Text // last node appended to runs
	)

	err := ast.Walk(doc, func(n ast.Node, entering bool) (ast.WalkStatus, error) {
		if !entering {
			return ast.WalkContinue, nil
		}

		switch node := n.(type) {
		case *ast.CodeSpan:
			prev = nil
			return ast.WalkSkipChildren, nil
		case *ast.Text:
			if node.IsRaw() {
				prev = nil
				return ast.WalkContinue, nil
			}
			seg := node.Segment
			if prev != nil && continuesRun(prev, node) {
				runs[len(runs)-1].Stop = seg.Stop
			} else {
				runs = append(runs, text.NewSegment(seg.Start, seg.Stop))
			}
			prev = node
		default:
			prev = nil
		}
		return ast.WalkContinue, nil
	})
	if err != nil {
		return nil, err
	}

	slices.SortStableFunc(runs, func(a, b text.Segment) int {
		return cmp.Compare(a.Start, b.Start)
	})
	return runs, nil
}

// continuesRun reports whether next extends the run that ends with prev.
func continuesRun(prev, next *ast.Text) bool {
	return next.PreviousSibling() == prev &&
		!prev.SoftLineBreak() &&
		!prev.HardLineBreak() &&
		prev.Segment.Stop == next.Segment.Start
}

// spliceRuns copies content, replacing each run with its transformed text.
func spliceRuns(content string, runs []text.Segment, transform func(string) string) (string, error) {
	var b strings.Builder
	b.Grow(len(content) + len(content)/20)

	last := 0
	for _, seg := range runs {
		if seg.Start < last || seg.Stop < seg.Start || seg.Stop > len(content) {
			return "", fmt.Errorf("%w: text segment [%d:%d] outside source (cursor %d, length %d)",
				ErrMarkdownSerialize, seg.Start, seg.Stop, last, len(content))
		}
		b.WriteString(content[last:seg.Start])
		b.WriteString(transform(content[seg.Start:seg.Stop]))
		last = seg.Stop
	}
	b.WriteString(content[last:])
	return b.String(), nil
}
