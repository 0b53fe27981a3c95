package blush

import "strings"

// SmallCapsClass is the CSS class applied to converted spans.
const SmallCapsClass = "small-caps"

// SmallCapsCSS is the stylesheet installed next to the book theme.
const SmallCapsCSS = `.small-caps {
    font-variant: small-caps;
}
`

const (
	spanOpen  = `<span class="` + SmallCapsClass + `">`
	spanClose = `</span>`

	// delimiterLen is the only run length of '=' that opens or closes a span.
	delimiterLen = 2
)

// scanState tracks whether an opening delimiter is pending.
type scanState int

const (
	scanLiteral scanState = iota
	scanOpened
)

// ConvertSmallCaps transforms ==text== to <span class="small-caps">text</span>.
//
// The scan visits maximal runs of '=' from left to right. A run of exactly two
// opens a span and the next run of exactly two closes it. Runs of one or of
// three or more are literal and cancel a pending opener. So is a run whose
// first '=' is escaped by an odd number of backslashes. Span bodies are never
// rescanned. Any other input comes back unchanged.
func ConvertSmallCaps(text string) string {
	if strings.IndexByte(text, '=') < 0 {
		return text
	}

	var b strings.Builder
	b.Grow(len(text) + len(spanOpen) + len(spanClose))

	state := scanLiteral
	cursor := 0 // start of text not yet written
	opener := 0 // index of the pending opening run

	for i := 0; i < len(text); {
		offset := strings.IndexByte(text[i:], '=')
		if offset < 0 {
			break
		}
		start := i + offset
		end := start
		for end < len(text) && text[end] == '=' {
			end++
		}

		switch {
		case end-start != delimiterLen, escaped(text, start):
			state = scanLiteral
		case state == scanLiteral:
			state = scanOpened
			opener = start
		case state == scanOpened:
			b.WriteString(text[cursor:opener])
			b.WriteString(spanOpen)
			b.WriteString(text[opener+delimiterLen : start])
			b.WriteString(spanClose)
			cursor = end
			state = scanLiteral
		}

		i = end
	}

	if cursor == 0 {
		return text
	}
	b.WriteString(text[cursor:])
	return b.String()
}

// escaped reports whether text[pos] follows an odd number of backslashes.
func escaped(text string, pos int) bool {
	n := 0
	for i := pos - 1; i >= 0 && text[i] == '\\'; i-- {
		n++
	}
	return n%2 == 1
}
