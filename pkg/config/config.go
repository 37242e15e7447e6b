// Package config defines the slidefmt configuration: rule selection and
// shell behavior loaded from .slidefmt.yml and overridden by CLI flags.
package config

// DefaultRuleSet is applied when neither config nor flags select rules.
const DefaultRuleSet = "basic_formatting"

// BackupsConfig controls sidecar backups when rewriting files.
type BackupsConfig struct {
	Enabled bool `yaml:"enabled"`
}

// Config is the root configuration structure for slidefmt.
type Config struct {
	// RuleSet is the named rule set to apply.
	RuleSet string `yaml:"rule_set"`

	// Rules is an explicit ordered rule list. When set it takes
	// precedence over RuleSet.
	Rules []string `yaml:"rules"`

	// SpacingTag overrides the HTML marker inserted after titles.
	SpacingTag string `yaml:"spacing_tag"`

	// Ignore contains glob patterns for files to skip.
	Ignore []string `yaml:"ignore"`

	// Backups configures sidecar backups before the first rewrite.
	Backups BackupsConfig `yaml:"backups"`

	// Jobs is the worker count for multi-file runs (0 = auto).
	Jobs int `yaml:"jobs"`
}

// NewConfig returns a Config with defaults applied.
func NewConfig() *Config {
	return &Config{RuleSet: DefaultRuleSet}
}

// RuleSelection returns the ordered rule/rule-set names for a run. An
// explicit rule list wins over a rule-set name; with neither set, the
// default rule set applies.
func (c *Config) RuleSelection() []string {
	if len(c.Rules) > 0 {
		return c.Rules
	}
	if c.RuleSet != "" {
		return []string{c.RuleSet}
	}
	return []string{DefaultRuleSet}
}

// Merge overlays explicitly-set fields of other onto c and returns c.
// Used to apply CLI flags over file configuration.
func (c *Config) Merge(other *Config) *Config {
	if other == nil {
		return c
	}
	if other.RuleSet != "" {
		c.RuleSet = other.RuleSet
		c.Rules = nil
	}
	if len(other.Rules) > 0 {
		c.Rules = other.Rules
	}
	if other.SpacingTag != "" {
		c.SpacingTag = other.SpacingTag
	}
	if len(other.Ignore) > 0 {
		c.Ignore = append(c.Ignore, other.Ignore...)
	}
	if other.Backups.Enabled {
		c.Backups.Enabled = true
	}
	if other.Jobs != 0 {
		c.Jobs = other.Jobs
	}
	return c
}
