package rules

import (
	"github.com/yaklabco/slidefmt/pkg/deck"
	"github.com/yaklabco/slidefmt/pkg/rewrite"
)

// EnsureSpaceBetweenTitleSubtitleRule normalizes the gap between a slide
// title and its subtitle to exactly one blank line.
type EnsureSpaceBetweenTitleSubtitleRule struct {
	rewrite.BaseRule
}

// NewEnsureSpaceBetweenTitleSubtitleRule creates a new title/subtitle
// spacing rule.
func NewEnsureSpaceBetweenTitleSubtitleRule() *EnsureSpaceBetweenTitleSubtitleRule {
	return &EnsureSpaceBetweenTitleSubtitleRule{
		BaseRule: rewrite.NewBaseRule(
			"ensure_space_between_title_subtitle",
			"Ensures exactly one blank line between a slide title and its subtitle",
			[]string{"spacing", "titles"},
		),
	}
}

// Apply inserts a missing blank line between title and subtitle, and
// collapses extra blank lines down to one. Slides whose title is followed
// by a table or code block are left alone.
func (r *EnsureSpaceBetweenTitleSubtitleRule) Apply(rc *rewrite.RuleContext) (bool, error) {
	tag := rc.Options.Tag()
	changed := false

	for _, slide := range rc.Doc.Slides {
		if rc.Cancelled() {
			return changed, rc.Ctx.Err()
		}

		title := slide.TitleIndex()
		if title < 0 {
			continue
		}
		next := slide.NextNonBlank(title + 1)
		if next < 0 || !deck.IsSubtitle(slide.Body[next], tag) {
			continue
		}
		if next-title-1 == 1 {
			continue
		}

		body := make([]string, 0, len(slide.Body)+1)
		body = append(body, slide.Body[:title+1]...)
		body = append(body, "")
		body = append(body, slide.Body[next:]...)
		slide.Body = body
		changed = true
	}
	return changed, nil
}

// AddSpacingAfterTitlesRule inserts an HTML spacing marker after slide
// titles, except where the title is followed by a subheading, a table, a
// code fence, or an already-present marker. The deck's first slide (the
// cover) is skipped.
type AddSpacingAfterTitlesRule struct {
	rewrite.BaseRule
}

// NewAddSpacingAfterTitlesRule creates a new title-spacing rule.
func NewAddSpacingAfterTitlesRule() *AddSpacingAfterTitlesRule {
	return &AddSpacingAfterTitlesRule{
		BaseRule: rewrite.NewBaseRule(
			"add_spacing_after_titles",
			"Adds an HTML spacing tag after slide titles, except before subtitles and tables",
			[]string{"spacing", "titles"},
		),
	}
}

// Apply inserts a blank line plus the spacing tag directly after the
// title line. Re-running detects the existing marker and is a no-op.
func (r *AddSpacingAfterTitlesRule) Apply(rc *rewrite.RuleContext) (bool, error) {
	tag := rc.Options.Tag()
	changed := false

	for i, slide := range rc.Doc.Slides {
		if rc.Cancelled() {
			return changed, rc.Ctx.Err()
		}
		if i == 0 {
			continue
		}

		title := slide.TitleIndex()
		if title < 0 {
			continue
		}
		next := slide.NextNonBlank(title + 1)
		if next < 0 {
			// Title-only slide, nothing to space out.
			continue
		}
		if skipsSpacingMarker(slide.Body[next], tag) {
			continue
		}

		body := make([]string, 0, len(slide.Body)+2)
		body = append(body, slide.Body[:title+1]...)
		body = append(body, "", tag)
		body = append(body, slide.Body[title+1:]...)
		slide.Body = body
		changed = true
	}
	return changed, nil
}

// skipsSpacingMarker reports whether the line after a title rules out a
// spacing marker. Subtitle detection takes precedence over the table
// check; both suppress insertion, as do code fences and a marker that is
// already in place.
func skipsSpacingMarker(line, tag string) bool {
	return deck.IsSubheading(line) ||
		deck.IsTableRow(line) ||
		deck.IsCodeFence(line) ||
		deck.IsSpacingMarker(line, tag)
}
