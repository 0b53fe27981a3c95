package blush_test

import (
	"context"
	"fmt"
	"os"
	"strings"

	blush "github.com/alnah/go-blush"
)

// Example demonstrates the full preprocessor round trip on a one-chapter book.
func Example() {
	input := `[
		{"root": "/book", "config": {}, "renderer": "html", "mdbook_version": "0.4.52"},
		{"sections": [{"Chapter": {"name": "Intro", "content": "The ==Senate== met. ` + "`==x==`" + `",
			"number": [1], "sub_items": [], "path": "intro.md", "source_path": "intro.md",
			"parent_names": []}}], "__non_exhaustive": null}
	]`

	_, book, err := blush.ParseInput(strings.NewReader(input))
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	if err := blush.NewPreprocessor().Run(context.Background(), book); err != nil {
		fmt.Println("error:", err)
		return
	}

	fmt.Println(book.Sections[0].(*blush.Chapter).Content)
	// Output: The <span class="small-caps">Senate</span> met. `==x==`
}

// ExampleConvertSmallCaps shows the delimiter grammar on plain text.
func ExampleConvertSmallCaps() {
	fmt.Println(blush.ConvertSmallCaps("The ==Senate== voted."))
	fmt.Println(blush.ConvertSmallCaps("a == b stays"))
	fmt.Println(blush.ConvertSmallCaps("===not a pair==="))
	// Output:
	// The <span class="small-caps">Senate</span> voted.
	// a == b stays
	// ===not a pair===
}

// ExamplePreprocessor_SupportsRenderer answers mdBook's renderer probe.
func ExamplePreprocessor_SupportsRenderer() {
	p := blush.NewPreprocessor()
	for _, renderer := range []string{"html", "pdf"} {
		fmt.Printf("%s: %v\n", renderer, p.SupportsRenderer(renderer))
	}
	// Output:
	// html: true
	// pdf: false
}

// ExampleCheckVersion compares the host mdBook version with the built one.
func ExampleCheckVersion() {
	for _, v := range []string{"0.4.52", "0.4.60", "0.5.0"} {
		ok, err := blush.CheckVersion(v)
		if err != nil {
			fmt.Println("error:", err)
			continue
		}
		fmt.Printf("%s compatible: %v\n", v, ok)
	}
	// Output:
	// 0.4.52 compatible: true
	// 0.4.60 compatible: true
	// 0.5.0 compatible: false
}

// ExampleWithLogger prints one progress line per chapter.
func ExampleWithLogger() {
	book := &blush.Book{Sections: []blush.Section{
		&blush.Chapter{Name: "Intro", Content: "==A== and ==B=="},
	}}

	p := blush.NewPreprocessor(blush.WithLogger(os.Stdout))
	if err := p.Run(context.Background(), book); err != nil {
		fmt.Println("error:", err)
	}
	// Output: Intro: 2 small-caps span(s)
}
