package deck

import "strings"

// Parse slices raw text into a Document. It never fails: a section whose
// leading block does not parse as metadata keeps the whole section as
// body with an empty metadata block, so structurally ambiguous files are
// still processed.
func Parse(text string) *Document {
	if text == "" {
		return &Document{empty: true}
	}

	doc := &Document{}
	raw := text
	if strings.HasSuffix(raw, "\n") {
		doc.finalNewline = true
		raw = raw[:len(raw)-1]
	}
	lines := strings.Split(raw, "\n")

	// Lines before the first delimiter form the header region.
	head, rest := splitAtDelimiter(lines)
	meta, extra, err := parseMetaBlock(head)
	if err == nil && meta.Len() > 0 {
		doc.Header = meta
		doc.Intro = extra
	} else {
		doc.Intro = head
	}

	// Each delimiter starts a new slide.
	for rest != nil {
		var section []string
		section, rest = splitAtDelimiter(rest[1:])
		doc.Slides = append(doc.Slides, parseSlide(section))
	}

	return doc
}

// splitAtDelimiter splits lines at the first delimiter line. The second
// return value is nil when no delimiter is found, and otherwise starts
// with the delimiter line itself.
func splitAtDelimiter(lines []string) (before, rest []string) {
	for i, line := range lines {
		if IsDelimiter(line) {
			return lines[:i], lines[i:]
		}
	}
	return lines, nil
}

// parseSlide builds a Slide from one delimited section. The section's
// first block is its metadata when every line of that block parses as a
// key/value pair; otherwise the whole section is body.
func parseSlide(section []string) *Slide {
	meta, body, err := parseMetaBlock(section)
	if err != nil {
		return &Slide{Meta: NewMetaBlock(), Body: section}
	}
	return &Slide{Meta: meta, Body: body}
}

// parseMetaBlock parses the leading block of lines (up to the first blank
// line) as metadata. It returns ErrMalformedMetadata when any line of the
// block is not a key/value pair; callers recover by keeping the block as
// body content.
func parseMetaBlock(lines []string) (*MetaBlock, []string, error) {
	end := len(lines)
	for i, line := range lines {
		if IsBlank(line) {
			end = i
			break
		}
	}

	meta := NewMetaBlock()
	for _, line := range lines[:end] {
		key, value, ok := SplitMetaLine(line)
		if !ok {
			return nil, nil, ErrMalformedMetadata
		}
		// A repeated key could not be serialized back losslessly.
		if _, dup := meta.Get(key); dup {
			return nil, nil, ErrMalformedMetadata
		}
		meta.Set(key, value)
	}
	return meta, lines[end:], nil
}
