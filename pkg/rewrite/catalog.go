package rewrite

import (
	"cmp"
	"slices"
	"sync"
)

// RuleSet is a named, ordered list of rule names applied together.
type RuleSet struct {
	Name        string
	Description string
	Members     []string
}

// Catalog maps rule names to Rule instances and rule-set names to their
// ordered member lists.
type Catalog struct {
	mu    sync.RWMutex
	rules map[string]Rule
	sets  map[string]RuleSet
}

// NewCatalog creates an empty catalog.
func NewCatalog() *Catalog {
	return &Catalog{
		rules: make(map[string]Rule),
		sets:  make(map[string]RuleSet),
	}
}

// Register adds a rule to the catalog.
// If a rule with the same name already exists, it is replaced.
func (c *Catalog) Register(rule Rule) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.rules[rule.Name()] = rule
}

// RegisterSet adds a named rule set to the catalog.
func (c *Catalog) RegisterSet(set RuleSet) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.sets[set.Name] = set
}

// Rule retrieves a rule by name.
func (c *Catalog) Rule(name string) (Rule, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	rule, ok := c.rules[name]
	return rule, ok
}

// Set retrieves a rule set by name.
func (c *Catalog) Set(name string) (RuleSet, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	set, ok := c.sets[name]
	return set, ok
}

// Rules returns all registered rules sorted by name for deterministic
// listings.
func (c *Catalog) Rules() []Rule {
	c.mu.RLock()
	defer c.mu.RUnlock()

	result := make([]Rule, 0, len(c.rules))
	for _, rule := range c.rules {
		result = append(result, rule)
	}
	slices.SortFunc(result, func(a, b Rule) int {
		return cmp.Compare(a.Name(), b.Name())
	})
	return result
}

// Sets returns all registered rule sets sorted by name.
func (c *Catalog) Sets() []RuleSet {
	c.mu.RLock()
	defer c.mu.RUnlock()

	result := make([]RuleSet, 0, len(c.sets))
	for _, set := range c.sets {
		result = append(result, set)
	}
	slices.SortFunc(result, func(a, b RuleSet) int {
		return cmp.Compare(a.Name, b.Name)
	})
	return result
}

// RuleNames returns all registered rule names in sorted order.
func (c *Catalog) RuleNames() []string {
	c.mu.RLock()
	defer c.mu.RUnlock()

	names := make([]string, 0, len(c.rules))
	for name := range c.rules {
		names = append(names, name)
	}
	slices.Sort(names)
	return names
}

// SetNames returns all registered rule-set names in sorted order.
func (c *Catalog) SetNames() []string {
	c.mu.RLock()
	defer c.mu.RUnlock()

	names := make([]string, 0, len(c.sets))
	for name := range c.sets {
		names = append(names, name)
	}
	slices.Sort(names)
	return names
}

// ResolveSet expands a rule-set name into its member rules, in set order.
func (c *Catalog) ResolveSet(name string) ([]Rule, error) {
	set, ok := c.Set(name)
	if !ok {
		return nil, &UnknownRuleSetError{Name: name, Valid: c.SetNames()}
	}
	return c.Resolve(set.Members)
}

// Resolve maps an ordered list of rule or rule-set names to an ordered
// list of Rule instances. Rule-set names expand into their members, and
// duplicates keep their first-seen position.
func (c *Catalog) Resolve(names []string) ([]Rule, error) {
	var rules []Rule
	seen := make(map[string]struct{})

	var add func(name string, expandSets bool) error
	add = func(name string, expandSets bool) error {
		if rule, ok := c.Rule(name); ok {
			if _, dup := seen[name]; dup {
				return nil
			}
			seen[name] = struct{}{}
			rules = append(rules, rule)
			return nil
		}
		if expandSets {
			if set, ok := c.Set(name); ok {
				for _, member := range set.Members {
					if err := add(member, false); err != nil {
						return err
					}
				}
				return nil
			}
		}
		return &UnknownRuleError{Name: name, Valid: c.RuleNames()}
	}

	for _, name := range names {
		if err := add(name, true); err != nil {
			return nil, err
		}
	}
	return rules, nil
}

// DefaultCatalog is the global catalog for built-in rules.
// Rules register themselves during init().
//
//nolint:gochecknoglobals // Global catalog is intentional for rule registration
var DefaultCatalog = NewCatalog()
