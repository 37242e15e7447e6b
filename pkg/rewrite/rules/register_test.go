package rules_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yaklabco/slidefmt/pkg/rewrite"
	"github.com/yaklabco/slidefmt/pkg/rewrite/rules"
)

func TestRegisterAll(t *testing.T) {
	t.Parallel()

	catalog := rewrite.NewCatalog()
	rules.RegisterAll(catalog)

	assert.Len(t, catalog.Rules(), 6)
	assert.ElementsMatch(t, []string{"basic_formatting", "advanced_formatting"}, catalog.SetNames())
}

func TestRuleSetOrder(t *testing.T) {
	t.Parallel()

	catalog := rewrite.NewCatalog()
	rules.RegisterAll(catalog)

	basic, err := catalog.ResolveSet(rules.SetBasicFormatting)
	require.NoError(t, err)
	assert.Equal(t, []string{
		"remove_bold_from_titles",
		"ensure_space_between_title_subtitle",
	}, ruleNames(basic))

	advanced, err := catalog.ResolveSet(rules.SetAdvancedFormatting)
	require.NoError(t, err)
	assert.Equal(t, []string{
		"remove_bold_from_titles",
		"default_transition",
		"section_transition",
		"clean_transitions",
		"ensure_space_between_title_subtitle",
		"add_spacing_after_titles",
	}, ruleNames(advanced))
}

func ruleNames(list []rewrite.Rule) []string {
	names := make([]string, 0, len(list))
	for _, r := range list {
		names = append(names, r.Name())
	}
	return names
}

// sampleDeck is a messy deck exercising every rule at once.
const sampleDeck = `theme: seriph
transition: fade
---
# **My Deck**
A talk about formatting
---
layout: section
transition: fade

# Part One
---
transition: fade

# Content


Details here
---
layout: section
transition: slide-left

# Part Two
`

func TestAdvancedFormatting_EndToEnd(t *testing.T) {
	t.Parallel()

	catalog := rewrite.NewCatalog()
	rules.RegisterAll(catalog)
	engine := rewrite.NewEngine(catalog, rewrite.Options{})

	result, err := engine.Run(context.Background(), sampleDeck, []string{rules.SetAdvancedFormatting})
	require.NoError(t, err)
	assert.True(t, result.Changed)

	// The header default is pinned and duplicated per-slide entries are
	// gone; section slides keep no redundant override.
	assert.Contains(t, result.Output, "transition: slide-left\n---")
	assert.NotContains(t, result.Output, "transition: fade")

	// The cover keeps its subtitle without a spacing marker; the content
	// slide gets one.
	assert.Contains(t, result.Output, "# My Deck\n\nA talk about formatting")
	assert.Contains(t, result.Output, "# Content\n\n<p class=\"py-2\"/>")
}

func TestAdvancedFormatting_FixedPoint(t *testing.T) {
	t.Parallel()

	catalog := rewrite.NewCatalog()
	rules.RegisterAll(catalog)
	engine := rewrite.NewEngine(catalog, rewrite.Options{})

	first, err := engine.Run(context.Background(), sampleDeck, []string{rules.SetAdvancedFormatting})
	require.NoError(t, err)
	require.True(t, first.Changed)

	// section_transition and clean_transitions may churn against each
	// other within a run; what matters is that the text is stable.
	second, err := engine.Run(context.Background(), first.Output, []string{rules.SetAdvancedFormatting})
	require.NoError(t, err)
	assert.False(t, second.Changed, "formatted output must be a fixed point")
	assert.Equal(t, first.Output, second.Output)
}

func TestBasicFormatting_LeavesTransitionsAlone(t *testing.T) {
	t.Parallel()

	catalog := rewrite.NewCatalog()
	rules.RegisterAll(catalog)
	engine := rewrite.NewEngine(catalog, rewrite.Options{})

	text := "transition: fade\n---\n# **Cover**\nSubtitle\n"
	result, err := engine.Run(context.Background(), text, []string{rules.SetBasicFormatting})
	require.NoError(t, err)

	assert.Equal(t, "transition: fade\n---\n# Cover\n\nSubtitle\n", result.Output)
	assert.Equal(t, []string{
		"remove_bold_from_titles",
		"ensure_space_between_title_subtitle",
	}, result.Applied)
}
