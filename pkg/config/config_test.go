package config_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/yaklabco/slidefmt/pkg/config"
)

func TestNewConfig(t *testing.T) {
	t.Parallel()

	cfg := config.NewConfig()
	assert.Equal(t, config.DefaultRuleSet, cfg.RuleSet)
	assert.Empty(t, cfg.Rules)
	assert.False(t, cfg.Backups.Enabled)
}

func TestRuleSelection(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		cfg  config.Config
		want []string
	}{
		{
			name: "defaults",
			cfg:  config.Config{},
			want: []string{"basic_formatting"},
		},
		{
			name: "rule set",
			cfg:  config.Config{RuleSet: "advanced_formatting"},
			want: []string{"advanced_formatting"},
		},
		{
			name: "explicit rules win over rule set",
			cfg: config.Config{
				RuleSet: "advanced_formatting",
				Rules:   []string{"clean_transitions", "default_transition"},
			},
			want: []string{"clean_transitions", "default_transition"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, tt.cfg.RuleSelection())
		})
	}
}

func TestMerge(t *testing.T) {
	t.Parallel()

	base := config.NewConfig()
	base.SpacingTag = "<p/>"
	base.Ignore = []string{"drafts/**"}
	base.Jobs = 2

	overlay := &config.Config{
		RuleSet: "advanced_formatting",
		Ignore:  []string{"archive/**"},
		Jobs:    8,
	}
	overlay.Backups.Enabled = true

	base.Merge(overlay)

	assert.Equal(t, "advanced_formatting", base.RuleSet)
	assert.Equal(t, "<p/>", base.SpacingTag, "unset overlay fields keep base values")
	assert.Equal(t, []string{"drafts/**", "archive/**"}, base.Ignore)
	assert.Equal(t, 8, base.Jobs)
	assert.True(t, base.Backups.Enabled)
}

func TestMerge_RuleSetClearsExplicitRules(t *testing.T) {
	t.Parallel()

	base := config.NewConfig()
	base.Rules = []string{"remove_bold_from_titles"}

	base.Merge(&config.Config{RuleSet: "advanced_formatting"})

	assert.Empty(t, base.Rules)
	assert.Equal(t, "advanced_formatting", base.RuleSet)
}

func TestMerge_Nil(t *testing.T) {
	t.Parallel()

	base := config.NewConfig()
	assert.Same(t, base, base.Merge(nil))
}
