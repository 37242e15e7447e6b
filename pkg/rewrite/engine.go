package rewrite

import (
	"context"
	"fmt"

	"github.com/yaklabco/slidefmt/pkg/deck"
)

// RunResult is the outcome of applying a rule chain to one document.
type RunResult struct {
	// Output is the serialized text after rule application. On a rule
	// failure it is the text as it stood before the failing rule.
	Output string

	// Changed is true when Output differs from the input text.
	Changed bool

	// Applied lists the names of rules that changed the document, in
	// application order.
	Applied []string
}

// Engine parses a document once, applies rules strictly in the given
// order, and serializes the result.
type Engine struct {
	// Catalog resolves rule and rule-set names.
	Catalog *Catalog

	// Options are passed to every rule application.
	Options Options
}

// NewEngine creates an Engine over the given catalog.
func NewEngine(catalog *Catalog, opts Options) *Engine {
	return &Engine{Catalog: catalog, Options: opts}
}

// Run resolves names through the catalog, applies the resulting rules in
// order, and returns the rewritten text. Each rule application is atomic:
// if a rule fails, the returned result holds the text exactly as it was
// before that rule ran.
func (e *Engine) Run(ctx context.Context, text string, names []string) (*RunResult, error) {
	rules, err := e.Catalog.Resolve(names)
	if err != nil {
		return nil, err
	}
	return e.RunRules(ctx, text, rules)
}

// RunRules is Run for an already-resolved ordered rule list.
func (e *Engine) RunRules(ctx context.Context, text string, rules []Rule) (*RunResult, error) {
	doc := deck.Parse(text)
	result := &RunResult{}

	for _, rule := range rules {
		select {
		case <-ctx.Done():
			return nil, fmt.Errorf("rewrite cancelled: %w", ctx.Err())
		default:
		}

		// Snapshot so a failing rule leaves the document as it was.
		before := doc.Serialize()

		changed, err := rule.Apply(NewRuleContext(ctx, doc, e.Options))
		if err != nil {
			result.Output = before
			result.Changed = before != text
			return result, fmt.Errorf("rule %s: %w", rule.Name(), err)
		}
		if changed {
			result.Applied = append(result.Applied, rule.Name())
		}
	}

	result.Output = doc.Serialize()
	result.Changed = result.Output != text
	return result, nil
}
