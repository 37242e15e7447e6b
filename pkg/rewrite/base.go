package rewrite

// BaseRule provides the descriptive half of the Rule interface.
// Embed this in rule implementations and implement Apply.
type BaseRule struct {
	name string
	desc string
	tags []string
}

// NewBaseRule creates a BaseRule with the given properties.
func NewBaseRule(name, desc string, tags []string) BaseRule {
	return BaseRule{name: name, desc: desc, tags: tags}
}

// Name returns the unique identifier for this rule.
func (r *BaseRule) Name() string {
	return r.name
}

// Description returns a one-line description of the transformation.
func (r *BaseRule) Description() string {
	return r.desc
}

// Tags returns categorization tags for this rule.
func (r *BaseRule) Tags() []string {
	return r.tags
}
