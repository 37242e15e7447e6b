// Package rewrite provides the rule engine, catalog, and file pipeline
// for slidefmt.
package rewrite

import (
	"context"

	"github.com/yaklabco/slidefmt/pkg/deck"
)

// DefaultSpacingTag is the HTML marker inserted after titles when no
// override is configured.
const DefaultSpacingTag = `<p class="py-2"/>`

// Rule defines the interface that all rewrite rules must implement.
type Rule interface {
	// Name returns the unique identifier used for CLI selection
	// (e.g., "remove_bold_from_titles").
	Name() string

	// Description returns a one-line description of the transformation.
	Description() string

	// Tags returns categorization tags for this rule (e.g., ["titles"]).
	Tags() []string

	// Apply rewrites the document in place and reports whether anything
	// changed.
	//
	// Rules must:
	//   - Be idempotent: a second Apply on the same document is a no-op.
	//   - Never reorder slides or change the slide count.
	//   - Treat a missing target (no title, no header) as a no-op,
	//     never as an error.
	Apply(rc *RuleContext) (bool, error)
}

// Options carries run-wide settings rules may consult.
type Options struct {
	// SpacingTag is the HTML marker used by add_spacing_after_titles.
	// Empty means DefaultSpacingTag.
	SpacingTag string
}

// Tag returns the effective spacing tag.
func (o Options) Tag() string {
	if o.SpacingTag == "" {
		return DefaultSpacingTag
	}
	return o.SpacingTag
}

// RuleContext provides everything a rule needs for one application.
// It is a short-lived parameter object created per rule invocation.
type RuleContext struct {
	// Ctx is the context for cancellation.
	Ctx context.Context

	// Doc is the document under rewrite.
	Doc *deck.Document

	// Options are the resolved run options.
	Options Options
}

// NewRuleContext creates a RuleContext for the given document.
func NewRuleContext(ctx context.Context, doc *deck.Document, opts Options) *RuleContext {
	return &RuleContext{Ctx: ctx, Doc: doc, Options: opts}
}

// Cancelled returns true if the context has been cancelled.
func (rc *RuleContext) Cancelled() bool {
	select {
	case <-rc.Ctx.Done():
		return true
	default:
		return false
	}
}
