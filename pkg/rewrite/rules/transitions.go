package rules

import (
	"strings"

	"github.com/yaklabco/slidefmt/pkg/deck"
	"github.com/yaklabco/slidefmt/pkg/rewrite"
)

const (
	transitionKey     = "transition"
	layoutKey         = "layout"
	sectionLayout     = "section"
	defaultTransition = "slide-left"
)

// layoutIsSection reports whether a slide's metadata declares the
// section layout.
func layoutIsSection(meta *deck.MetaBlock) bool {
	layout, ok := meta.Get(layoutKey)
	return ok && strings.TrimSpace(layout) == sectionLayout
}

// DefaultTransitionRule pins the deck-wide default transition in the
// global header to slide-left.
type DefaultTransitionRule struct {
	rewrite.BaseRule
}

// NewDefaultTransitionRule creates a new default-transition rule.
func NewDefaultTransitionRule() *DefaultTransitionRule {
	return &DefaultTransitionRule{
		BaseRule: rewrite.NewBaseRule(
			"default_transition",
			"Sets the global header transition to slide-left when absent or different",
			[]string{"transitions", "header"},
		),
	}
}

// Apply sets the header's transition key. Decks without a global header
// are left alone.
func (r *DefaultTransitionRule) Apply(rc *rewrite.RuleContext) (bool, error) {
	if rc.Doc.Header == nil {
		return false, nil
	}
	return rc.Doc.Header.Set(transitionKey, defaultTransition), nil
}

// SectionTransitionRule gives every section slide an explicit slide-left
// transition.
type SectionTransitionRule struct {
	rewrite.BaseRule
}

// NewSectionTransitionRule creates a new section-transition rule.
func NewSectionTransitionRule() *SectionTransitionRule {
	return &SectionTransitionRule{
		BaseRule: rewrite.NewBaseRule(
			"section_transition",
			"Sets transition: slide-left on slides with layout: section",
			[]string{"transitions"},
		),
	}
}

// Apply sets the transition on section slides only. Slides without
// layout: section are untouched even when they carry a transition.
func (r *SectionTransitionRule) Apply(rc *rewrite.RuleContext) (bool, error) {
	changed := false
	for _, slide := range rc.Doc.Slides {
		if rc.Cancelled() {
			return changed, rc.Ctx.Err()
		}
		if !layoutIsSection(slide.Meta) {
			continue
		}
		if slide.Meta.Set(transitionKey, defaultTransition) {
			changed = true
		}
	}
	return changed, nil
}

// CleanTransitionsRule removes per-slide transitions that are redundant:
// entries duplicating the global default, and entries on slides whose
// layout is not section. Only section slides carry an explicit override.
//
// Ordering matters: this rule must run after default_transition and
// section_transition to see their effect. The composed rule sets take
// care of that.
type CleanTransitionsRule struct {
	rewrite.BaseRule
}

// NewCleanTransitionsRule creates a new clean-transitions rule.
func NewCleanTransitionsRule() *CleanTransitionsRule {
	return &CleanTransitionsRule{
		BaseRule: rewrite.NewBaseRule(
			"clean_transitions",
			"Removes per-slide transitions that duplicate the global default or sit on non-section slides",
			[]string{"transitions"},
		),
	}
}

// Apply drops redundant transition entries from slide metadata.
func (r *CleanTransitionsRule) Apply(rc *rewrite.RuleContext) (bool, error) {
	var global string
	var hasGlobal bool
	if rc.Doc.Header != nil {
		global, hasGlobal = rc.Doc.Header.Get(transitionKey)
	}

	changed := false
	for _, slide := range rc.Doc.Slides {
		if rc.Cancelled() {
			return changed, rc.Ctx.Err()
		}

		transition, ok := slide.Meta.Get(transitionKey)
		if !ok {
			continue
		}

		duplicate := hasGlobal && strings.TrimSpace(transition) == strings.TrimSpace(global)
		if duplicate || !layoutIsSection(slide.Meta) {
			slide.Meta.Delete(transitionKey)
			changed = true
		}
	}
	return changed, nil
}
