package blush

import (
	"bytes"
	"encoding/json"
	"fmt"
)

// Book is the document handed over by mdBook: an ordered list of sections.
// Keys this package does not model are kept and written back untouched.
type Book struct {
	Sections []Section

	extra map[string]json.RawMessage
}

// Section is one node of the book tree: *Chapter, Separator or PartTitle.
// The set is closed; sectionKind is unexported so no other type can join it.
type Section interface {
	sectionKind() string
}

// Chapter holds markdown content and nested sub-sections.
type Chapter struct {
	Name        string
	Content     string
	Number      []int // nil for prefix, suffix and draft chapters
	SubItems    []Section
	Path        *string
	SourcePath  *string
	ParentNames []string

	extra map[string]json.RawMessage
}

// Separator is a horizontal rule in the summary.
type Separator struct{}

// PartTitle is a heading between groups of chapters.
type PartTitle struct {
	Title string
}

// Variant tags of the mdBook wire format.
const (
	kindChapter   = "Chapter"
	kindSeparator = "Separator"
	kindPartTitle = "PartTitle"
)

func (*Chapter) sectionKind() string  { return kindChapter }
func (Separator) sectionKind() string { return kindSeparator }
func (PartTitle) sectionKind() string { return kindPartTitle }

// Wire keys of a chapter object.
const (
	keyName        = "name"
	keyContent     = "content"
	keyNumber      = "number"
	keySubItems    = "sub_items"
	keyPath        = "path"
	keySourcePath  = "source_path"
	keyParentNames = "parent_names"

	keySections = "sections"
)

// UnmarshalJSON decodes a book, keeping unknown keys such as __non_exhaustive.
func (b *Book) UnmarshalJSON(data []byte) error {
	var fields map[string]json.RawMessage
	if err := json.Unmarshal(data, &fields); err != nil {
		return fmt.Errorf("%w: book: %v", ErrMalformedInput, err)
	}

	raw, ok := fields[keySections]
	if !ok {
		return fmt.Errorf("%w: book has no %q", ErrMalformedInput, keySections)
	}
	sections, err := decodeSections(raw)
	if err != nil {
		return err
	}
	delete(fields, keySections)

	b.Sections = sections
	b.extra = fields
	return nil
}

// MarshalJSON encodes the book in the shape mdBook expects back.
func (b *Book) MarshalJSON() ([]byte, error) {
	fields := cloneFields(b.extra)
	sections, err := encodeSections(b.Sections)
	if err != nil {
		return nil, err
	}
	fields[keySections] = sections
	return json.Marshal(fields)
}

// UnmarshalJSON decodes a chapter object and its sub-items recursively.
func (c *Chapter) UnmarshalJSON(data []byte) error {
	var fields map[string]json.RawMessage
	if err := json.Unmarshal(data, &fields); err != nil {
		return fmt.Errorf("%w: chapter: %v", ErrMalformedInput, err)
	}

	var ch Chapter
	targets := map[string]any{
		keyName:        &ch.Name,
		keyContent:     &ch.Content,
		keyNumber:      &ch.Number,
		keyPath:        &ch.Path,
		keySourcePath:  &ch.SourcePath,
		keyParentNames: &ch.ParentNames,
	}
	for key, target := range targets {
		raw, ok := fields[key]
		if !ok {
			continue
		}
		if err := json.Unmarshal(raw, target); err != nil {
			return fmt.Errorf("%w: chapter field %q: %v", ErrMalformedInput, key, err)
		}
		delete(fields, key)
	}

	if raw, ok := fields[keySubItems]; ok {
		subItems, err := decodeSections(raw)
		if err != nil {
			return fmt.Errorf("chapter %q: %w", ch.Name, err)
		}
		ch.SubItems = subItems
		delete(fields, keySubItems)
	}

	ch.extra = fields
	*c = ch
	return nil
}

// MarshalJSON encodes a chapter with every known and preserved key.
func (c *Chapter) MarshalJSON() ([]byte, error) {
	fields := cloneFields(c.extra)
	subItems, err := encodeSections(c.SubItems)
	if err != nil {
		return nil, err
	}
	fields[keySubItems] = subItems

	values := map[string]any{
		keyName:        c.Name,
		keyContent:     c.Content,
		keyNumber:      c.Number,
		keyPath:        c.Path,
		keySourcePath:  c.SourcePath,
		keyParentNames: nonNil(c.ParentNames),
	}
	for key, v := range values {
		raw, err := json.Marshal(v)
		if err != nil {
			return nil, fmt.Errorf("chapter field %q: %w", key, err)
		}
		fields[key] = raw
	}
	return json.Marshal(fields)
}

// decodeSections reads a JSON array of externally tagged sections:
// "Separator", {"Chapter": {...}} or {"PartTitle": "..."}.
func decodeSections(data []byte) ([]Section, error) {
	var items []json.RawMessage
	if err := json.Unmarshal(data, &items); err != nil {
		return nil, fmt.Errorf("%w: sections: %v", ErrMalformedInput, err)
	}

	sections := make([]Section, 0, len(items))
	for i, item := range items {
		section, err := decodeSection(item)
		if err != nil {
			return nil, fmt.Errorf("section %d: %w", i, err)
		}
		sections = append(sections, section)
	}
	return sections, nil
}

func decodeSection(data []byte) (Section, error) {
	data = bytes.TrimSpace(data)
	if len(data) > 0 && data[0] == '"' {
		var tag string
		if err := json.Unmarshal(data, &tag); err != nil {
			return nil, fmt.Errorf("%w: %v", ErrMalformedInput, err)
		}
		if tag == kindSeparator {
			return Separator{}, nil
		}
		return nil, fmt.Errorf("%w: %q", ErrUnknownSection, tag)
	}

	var variant map[string]json.RawMessage
	if err := json.Unmarshal(data, &variant); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformedInput, err)
	}
	if len(variant) != 1 {
		return nil, fmt.Errorf("%w: expected one variant key, got %d", ErrMalformedInput, len(variant))
	}

	for tag, payload := range variant {
		switch tag {
		case kindChapter:
			ch := &Chapter{}
			if err := json.Unmarshal(payload, ch); err != nil {
				return nil, err
			}
			return ch, nil
		case kindPartTitle:
			var title string
			if err := json.Unmarshal(payload, &title); err != nil {
				return nil, fmt.Errorf("%w: part title: %v", ErrMalformedInput, err)
			}
			return PartTitle{Title: title}, nil
		default:
			return nil, fmt.Errorf("%w: %q", ErrUnknownSection, tag)
		}
	}
	return nil, ErrMalformedInput
}

func encodeSections(sections []Section) (json.RawMessage, error) {
	items := make([]json.RawMessage, 0, len(sections))
	for _, section := range sections {
		item, err := encodeSection(section)
		if err != nil {
			return nil, err
		}
		items = append(items, item)
	}
	return json.Marshal(items)
}

func encodeSection(section Section) (json.RawMessage, error) {
	switch s := section.(type) {
	case *Chapter:
		return json.Marshal(map[string]*Chapter{kindChapter: s})
	case Separator:
		return json.Marshal(kindSeparator)
	case PartTitle:
		return json.Marshal(map[string]string{kindPartTitle: s.Title})
	default:
		return nil, fmt.Errorf("%w: %T", ErrUnknownSection, section)
	}
}

func cloneFields(src map[string]json.RawMessage) map[string]json.RawMessage {
	dst := make(map[string]json.RawMessage, len(src)+1)
	for k, v := range src {
		dst[k] = v
	}
	return dst
}

func nonNil(s []string) []string {
	if s == nil {
		return []string{}
	}
	return s
}
