package deck

import (
	"regexp"
	"strings"
)

// metaLinePattern matches a single metadata line: a bare word key, a
// colon and exactly one space, then the raw value (possibly empty).
// Anything looser would break byte-for-byte round-tripping.
var metaLinePattern = regexp.MustCompile(`^([A-Za-z0-9_][A-Za-z0-9_.-]*): (.*)$`)

// IsDelimiter reports whether line is the literal slide delimiter.
func IsDelimiter(line string) bool {
	return line == Delimiter
}

// IsBlank reports whether line is empty or whitespace only.
func IsBlank(line string) bool {
	return strings.TrimSpace(line) == ""
}

// HeadingLevel returns the ATX heading level of line (1-6), or 0 when the
// line is not a heading. Headings must start at column one.
func HeadingLevel(line string) int {
	level := 0
	for level < len(line) && line[level] == '#' {
		level++
	}
	if level == 0 || level > 6 || level >= len(line) {
		return 0
	}
	if line[level] != ' ' && line[level] != '\t' {
		return 0
	}
	if strings.TrimSpace(line[level:]) == "" {
		return 0
	}
	return level
}

// IsTitle reports whether line is a level-1 heading.
func IsTitle(line string) bool {
	return HeadingLevel(line) == 1
}

// IsSubheading reports whether line is a heading of level 2 or deeper.
func IsSubheading(line string) bool {
	return HeadingLevel(line) >= 2
}

// IsTableRow reports whether line starts a pipe-delimited table row.
func IsTableRow(line string) bool {
	return strings.HasPrefix(strings.TrimSpace(line), "|")
}

// IsCodeFence reports whether line opens or closes a fenced code block.
func IsCodeFence(line string) bool {
	trimmed := strings.TrimSpace(line)
	return strings.HasPrefix(trimmed, "```") || strings.HasPrefix(trimmed, "~~~")
}

// IsSpacingMarker reports whether line is the given HTML spacing tag.
func IsSpacingMarker(line, tag string) bool {
	return strings.TrimSpace(line) == tag
}

// OpensComment reports whether line opens an HTML comment.
func OpensComment(line string) bool {
	return strings.HasPrefix(strings.TrimSpace(line), "<!--")
}

// ClosesComment reports whether line closes an HTML comment.
func ClosesComment(line string) bool {
	return strings.Contains(line, "-->")
}

// IsMetaLine reports whether line parses as a metadata key/value pair.
func IsMetaLine(line string) bool {
	return metaLinePattern.MatchString(line)
}

// SplitMetaLine splits a metadata line into key and value. The boolean is
// false when the line is not a metadata line.
func SplitMetaLine(line string) (key, value string, ok bool) {
	m := metaLinePattern.FindStringSubmatch(line)
	if m == nil {
		return "", "", false
	}
	return m[1], m[2], true
}

// IsSubtitle reports whether line qualifies as a subtitle when it is the
// first non-blank line after a title: any content line that is not itself
// a title, table row, code fence, comment, or the spacing marker.
func IsSubtitle(line, tag string) bool {
	if IsBlank(line) || IsTitle(line) {
		return false
	}
	if IsTableRow(line) || IsCodeFence(line) || OpensComment(line) {
		return false
	}
	if tag != "" && IsSpacingMarker(line, tag) {
		return false
	}
	return true
}
