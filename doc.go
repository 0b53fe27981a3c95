// Package blush is an mdBook preprocessor that renders ==text== in small caps.
//
// # Quick Start
//
// Read the book mdBook pipes in, rewrite it, and write it back:
//
//	hostCtx, book, err := blush.ParseInput(os.Stdin)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	if ok, _ := blush.CheckVersion(hostCtx.MDBookVersion); !ok {
//	    log.Printf("built for mdBook %s", blush.MDBookVersion)
//	}
//
//	p := blush.NewPreprocessor()
//	if err := p.Run(ctx, book); err != nil {
//	    log.Fatal(err)
//	}
//	blush.WriteOutput(os.Stdout, book)
//
// # Syntax
//
// A pair of double equals signs wraps the text to convert:
//
//	The ==Senate== voted.
//
// becomes
//
//	The <span class="small-caps">Senate</span> voted.
//
// Runs of one or of three or more equals signs are left alone, as are
// unclosed pairs and anything inside code spans or code blocks. A
// backslash-escaped equals sign is literal, so \==Senate== and ==Senate\==
// stay as written.
//
// # Pipeline
//
// Each chapter is parsed with goldmark (tables, strikethrough, task lists,
// footnotes and definition lists enabled; bare URLs are not autolinked). Only plain text runs are rewritten; the rest of the markdown
// source is copied unchanged. Sub-chapters are visited after their parent,
// in document order. The first chapter that fails aborts the run.
//
// The generated spans need the stylesheet in SmallCapsCSS. The mdbook-blush
// install command registers it in book.toml.
package blush
