package rules

import (
	"strings"

	"github.com/yaklabco/slidefmt/pkg/deck"
	"github.com/yaklabco/slidefmt/pkg/rewrite"
)

// RemoveBoldFromTitlesRule strips a bold wrapper that spans the entire
// heading text of a slide title (# **Text** -> # Text).
type RemoveBoldFromTitlesRule struct {
	rewrite.BaseRule
}

// NewRemoveBoldFromTitlesRule creates a new remove-bold rule.
func NewRemoveBoldFromTitlesRule() *RemoveBoldFromTitlesRule {
	return &RemoveBoldFromTitlesRule{
		BaseRule: rewrite.NewBaseRule(
			"remove_bold_from_titles",
			"Removes bold formatting that wraps an entire slide title (# **Title** -> # Title)",
			[]string{"titles"},
		),
	}
}

// Apply strips the bold wrapper from the title line of every slide body.
// Inline bold inside the heading text is left untouched.
func (r *RemoveBoldFromTitlesRule) Apply(rc *rewrite.RuleContext) (bool, error) {
	changed := false
	for _, slide := range rc.Doc.Slides {
		if rc.Cancelled() {
			return changed, rc.Ctx.Err()
		}

		idx := slide.TitleIndex()
		if idx < 0 {
			continue
		}
		if stripped, ok := stripBoldWrapper(slide.Body[idx]); ok {
			slide.Body[idx] = stripped
			changed = true
		}
	}
	return changed, nil
}

// stripBoldWrapper removes a ** wrapper that spans the whole heading text
// of a title line. It reports false when the line has no such wrapper,
// including when the bold is only partial (# **A** and B).
func stripBoldWrapper(line string) (string, bool) {
	level := deck.HeadingLevel(line)
	if level != 1 {
		return line, false
	}

	// Preserve the exact marker and whitespace run before the text.
	rest := line[level:]
	text := strings.TrimLeft(rest, " \t")
	marker := line[:level] + rest[:len(rest)-len(text)]

	core := strings.TrimRight(text, " \t")
	trailing := text[len(core):]

	if !strings.HasPrefix(core, "**") || !strings.HasSuffix(core, "**") || len(core) <= 4 {
		return line, false
	}
	inner := core[2 : len(core)-2]
	if strings.Contains(inner, "**") || strings.TrimSpace(inner) == "" {
		return line, false
	}

	return marker + inner + trailing, true
}
