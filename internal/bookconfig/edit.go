package bookconfig

import (
	"bytes"
	"fmt"
	"regexp"
	"strings"

	"github.com/BurntSushi/toml"
)

// outputHTMLHeader matches a standard [output.html] table header line.
var outputHTMLHeader = regexp.MustCompile(`(?m)^[ \t]*\[[ \t]*output[ \t]*\.[ \t]*html[ \t]*\][ \t]*(#.*)?\r?$`)

// EditResult is the outcome of Edit.
type EditResult struct {
	Content     []byte
	Changed     bool
	Reformatted bool // comments and layout were lost
	Warnings    []string
}

// state summarizes what book.toml already contains.
type state struct {
	hasOutputHTML    bool
	hasAdditionalCSS bool
	hasCSSEntry      bool
	hasBlush         bool
	blushNotTable    bool
}

func (s state) complete() bool {
	return s.hasCSSEntry && s.hasBlush
}

// Edit ensures book.toml registers the preprocessor and lists cssPath in
// output.html.additional-css. Edits are textual so comments survive; when
// that is not possible the document is re-encoded and Reformatted is set.
func Edit(src []byte, cssPath string) (*EditResult, error) {
	doc, err := decode(src)
	if err != nil {
		return nil, err
	}
	st, err := inspect(doc, cssPath)
	if err != nil {
		return nil, err
	}

	result := &EditResult{Content: src}
	if st.blushNotTable {
		result.Warnings = append(result.Warnings, keyPreprocessor+"."+keyBlush+" is not a table")
	}
	if st.complete() {
		return result, nil
	}

	if out, ok := editText(src, st, cssPath); ok {
		result.Content = out
		result.Changed = true
		return result, nil
	}

	out, err := reencode(doc, st, cssPath)
	if err != nil {
		return nil, err
	}
	result.Content = out
	result.Changed = true
	result.Reformatted = true
	result.Warnings = append(result.Warnings, FileName+" was reformatted; comments were not kept")
	return result, nil
}

func decode(src []byte) (map[string]any, error) {
	doc := map[string]any{}
	if _, err := toml.Decode(string(src), &doc); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrBookConfigParse, err)
	}
	return doc, nil
}

func inspect(doc map[string]any, cssPath string) (state, error) {
	var st state

	output, err := subTable(doc, keyOutput, keyOutput)
	if err != nil {
		return st, err
	}
	html, err := subTable(output, keyHTML, keyOutput+"."+keyHTML)
	if err != nil {
		return st, err
	}
	st.hasOutputHTML = html != nil

	if raw, ok := html[keyAdditionalCSS]; ok {
		entries, isArray := raw.([]any)
		if !isArray {
			return st, &ShapeError{Key: keyOutput + "." + keyHTML + "." + keyAdditionalCSS, Want: "an array"}
		}
		st.hasAdditionalCSS = true
		for _, entry := range entries {
			if s, isString := entry.(string); isString && s == cssPath {
				st.hasCSSEntry = true
				break
			}
		}
	}

	preprocessor, err := subTable(doc, keyPreprocessor, keyPreprocessor)
	if err != nil {
		return st, err
	}
	if raw, ok := preprocessor[keyBlush]; ok {
		st.hasBlush = true
		_, isTable := raw.(map[string]any)
		st.blushNotTable = !isTable
	}
	return st, nil
}

// subTable returns parent[key] as a table, nil when absent.
func subTable(parent map[string]any, key, dotted string) (map[string]any, error) {
	raw, ok := parent[key]
	if !ok {
		return nil, nil
	}
	table, isTable := raw.(map[string]any)
	if !isTable {
		return nil, &ShapeError{Key: dotted, Want: "a table"}
	}
	return table, nil
}

// editText applies the missing entries as text appends or a line insertion.
// It reports false when the edit needs a rewrite or would not decode.
func editText(src []byte, st state, cssPath string) ([]byte, bool) {
	out := append([]byte(nil), src...)

	if !st.hasCSSEntry {
		cssLine := keyAdditionalCSS + " = [" + quote(cssPath) + "]\n"
		switch {
		case st.hasAdditionalCSS:
			return nil, false
		case st.hasOutputHTML:
			loc := outputHTMLHeader.FindIndex(out)
			if loc == nil {
				return nil, false
			}
			insertAt := loc[1]
			if insertAt < len(out) && out[insertAt] == '\n' {
				insertAt++
			} else {
				cssLine = "\n" + cssLine
			}
			out = append(out[:insertAt:insertAt], append([]byte(cssLine), out[insertAt:]...)...)
		default:
			out = appendBlock(out, "["+keyOutput+"."+keyHTML+"]\n"+cssLine)
		}
	}

	if !st.hasBlush {
		out = appendBlock(out, "["+keyPreprocessor+"."+keyBlush+"]\n")
	}

	doc, err := decode(out)
	if err != nil {
		return nil, false
	}
	if after, err := inspect(doc, cssPath); err != nil || !after.complete() {
		return nil, false
	}
	return out, true
}

// appendBlock appends a TOML block separated from existing content by a blank line.
func appendBlock(out []byte, block string) []byte {
	if len(bytes.TrimSpace(out)) == 0 {
		return append(out[:0:0], block...)
	}
	if !bytes.HasSuffix(out, []byte("\n")) {
		out = append(out, '\n')
	}
	if !bytes.HasSuffix(out, []byte("\n\n")) {
		out = append(out, '\n')
	}
	return append(out, block...)
}

// reencode adds the missing entries to doc and encodes it from scratch.
func reencode(doc map[string]any, st state, cssPath string) ([]byte, error) {
	if !st.hasCSSEntry {
		output := ensureTable(doc, keyOutput)
		html := ensureTable(output, keyHTML)
		entries, _ := html[keyAdditionalCSS].([]any)
		html[keyAdditionalCSS] = append(entries, cssPath)
	}
	if !st.hasBlush {
		ensureTable(ensureTable(doc, keyPreprocessor), keyBlush)
	}

	var buf bytes.Buffer
	if err := toml.NewEncoder(&buf).Encode(doc); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrBookConfigWrite, err)
	}
	return buf.Bytes(), nil
}

func ensureTable(parent map[string]any, key string) map[string]any {
	if table, ok := parent[key].(map[string]any); ok {
		return table
	}
	table := map[string]any{}
	parent[key] = table
	return table
}

// quote renders s as a TOML basic string.
func quote(s string) string {
	r := strings.NewReplacer(`\`, `\\`, `"`, `\"`)
	return `"` + r.Replace(s) + `"`
}
