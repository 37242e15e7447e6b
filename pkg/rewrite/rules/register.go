package rules

import "github.com/yaklabco/slidefmt/pkg/rewrite"

// Rule-set names selectable from the CLI.
const (
	SetBasicFormatting    = "basic_formatting"
	SetAdvancedFormatting = "advanced_formatting"
)

//nolint:gochecknoinits // Registration via init is the established pattern
func init() {
	RegisterAll(rewrite.DefaultCatalog)
}

// RegisterAll registers every built-in rule and rule set with the given
// catalog. Tests use it to build isolated catalogs.
func RegisterAll(catalog *rewrite.Catalog) {
	catalog.Register(NewRemoveBoldFromTitlesRule())
	catalog.Register(NewDefaultTransitionRule())
	catalog.Register(NewSectionTransitionRule())
	catalog.Register(NewCleanTransitionsRule())
	catalog.Register(NewEnsureSpaceBetweenTitleSubtitleRule())
	catalog.Register(NewAddSpacingAfterTitlesRule())

	catalog.RegisterSet(rewrite.RuleSet{
		Name:        SetBasicFormatting,
		Description: "Minimal formatting pass: titles and title spacing",
		Members: []string{
			"remove_bold_from_titles",
			"ensure_space_between_title_subtitle",
		},
	})

	// Order is part of the contract: clean_transitions must see the
	// effect of the two transition rules before it.
	catalog.RegisterSet(rewrite.RuleSet{
		Name:        SetAdvancedFormatting,
		Description: "Full formatting pass: titles, transitions, and spacing",
		Members: []string{
			"remove_bold_from_titles",
			"default_transition",
			"section_transition",
			"clean_transitions",
			"ensure_space_between_title_subtitle",
			"add_spacing_after_titles",
		},
	})
}
