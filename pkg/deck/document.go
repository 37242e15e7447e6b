// Package deck models delimited slide-deck documents: a global header,
// followed by slides separated by a literal delimiter line, each slide
// carrying an optional key/value metadata block and a body of lines.
//
// Parse is structure-preserving: serializing an unmodified Document
// reproduces the input byte-for-byte.
package deck

import (
	"errors"
	"strings"
)

// Delimiter is the literal line that separates slides.
const Delimiter = "---"

// ErrMalformedMetadata indicates that a block did not parse as key/value
// metadata. Parse recovers from it locally by treating the block as body
// content; the error never escapes to callers of Parse.
var ErrMalformedMetadata = errors.New("malformed metadata block")

// MetaEntry is a single key/value pair in a metadata block.
type MetaEntry struct {
	Key   string
	Value string
}

// MetaBlock is an ordered key/value metadata mapping. Order is insertion
// order and is preserved through serialization.
type MetaBlock struct {
	entries []MetaEntry
}

// NewMetaBlock returns an empty metadata block.
func NewMetaBlock() *MetaBlock {
	return &MetaBlock{}
}

// Len returns the number of entries.
func (m *MetaBlock) Len() int {
	if m == nil {
		return 0
	}
	return len(m.entries)
}

// Get returns the value for key and whether it is present.
func (m *MetaBlock) Get(key string) (string, bool) {
	if m == nil {
		return "", false
	}
	for _, e := range m.entries {
		if e.Key == key {
			return e.Value, true
		}
	}
	return "", false
}

// Set updates the value for key in place, or appends a new entry when the
// key is absent. Returns true if the block changed.
func (m *MetaBlock) Set(key, value string) bool {
	for i, e := range m.entries {
		if e.Key == key {
			if e.Value == value {
				return false
			}
			m.entries[i].Value = value
			return true
		}
	}
	m.entries = append(m.entries, MetaEntry{Key: key, Value: value})
	return true
}

// Delete removes the entry for key. Returns true if an entry was removed.
func (m *MetaBlock) Delete(key string) bool {
	if m == nil {
		return false
	}
	for i, e := range m.entries {
		if e.Key == key {
			m.entries = append(m.entries[:i], m.entries[i+1:]...)
			return true
		}
	}
	return false
}

// Entries returns a copy of the entries in insertion order.
func (m *MetaBlock) Entries() []MetaEntry {
	if m == nil {
		return nil
	}
	out := make([]MetaEntry, len(m.entries))
	copy(out, m.entries)
	return out
}

// Lines renders the block as key/value lines in insertion order.
func (m *MetaBlock) Lines() []string {
	if m == nil {
		return nil
	}
	lines := make([]string, 0, len(m.entries))
	for _, e := range m.entries {
		lines = append(lines, e.Key+": "+e.Value)
	}
	return lines
}

// Slide is one delimited unit of the deck.
type Slide struct {
	// Meta is the slide's metadata block. Never nil; may be empty.
	Meta *MetaBlock

	// Body holds the slide's content lines, verbatim.
	Body []string
}

// TitleIndex returns the index in Body of the slide's title line (the
// first level-1 heading outside HTML comments), or -1 when the slide has
// no title.
func (s *Slide) TitleIndex() int {
	inComment := false
	for i, line := range s.Body {
		switch {
		case inComment:
			if ClosesComment(line) {
				inComment = false
			}
		case OpensComment(line):
			// A one-line comment closes itself on the same line.
			inComment = !ClosesComment(line)
		case IsTitle(line):
			return i
		}
	}
	return -1
}

// NextNonBlank returns the index of the first non-blank body line at or
// after from, or -1 when the rest of the body is blank.
func (s *Slide) NextNonBlank(from int) int {
	for i := from; i < len(s.Body); i++ {
		if !IsBlank(s.Body[i]) {
			return i
		}
	}
	return -1
}

// Document is a parsed slide deck.
type Document struct {
	// Header is the deck-wide metadata preceding the first delimiter,
	// or nil when the deck has none.
	Header *MetaBlock

	// Intro holds any lines before the first delimiter that are not part
	// of the header block. Preserved verbatim for round-trip fidelity.
	Intro []string

	// Slides are the delimited units of the deck, in document order.
	Slides []*Slide

	// finalNewline records whether the source text ended with a newline.
	finalNewline bool

	// empty marks a document parsed from the empty string.
	empty bool
}

// Serialize reconstructs the document text: header block, intro lines,
// then for each slide the delimiter, its metadata lines, and its body.
func (d *Document) Serialize() string {
	if d.empty && d.Header.Len() == 0 && len(d.Intro) == 0 && len(d.Slides) == 0 {
		return ""
	}

	var lines []string
	lines = append(lines, d.Header.Lines()...)
	lines = append(lines, d.Intro...)
	for _, s := range d.Slides {
		lines = append(lines, Delimiter)
		lines = append(lines, s.Meta.Lines()...)
		lines = append(lines, s.Body...)
	}

	out := strings.Join(lines, "\n")
	if d.finalNewline {
		out += "\n"
	}
	return out
}
