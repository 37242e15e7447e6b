package rules_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yaklabco/slidefmt/pkg/deck"
	"github.com/yaklabco/slidefmt/pkg/rewrite"
	"github.com/yaklabco/slidefmt/pkg/rewrite/rules"
)

// applyRule parses text, applies the rule, and returns the serialized
// result plus the changed flag.
func applyRule(t *testing.T, rule rewrite.Rule, text string) (string, bool) {
	t.Helper()
	return applyRuleOpts(t, rule, text, rewrite.Options{})
}

func applyRuleOpts(t *testing.T, rule rewrite.Rule, text string, opts rewrite.Options) (string, bool) {
	t.Helper()
	doc := deck.Parse(text)
	changed, err := rule.Apply(rewrite.NewRuleContext(context.Background(), doc, opts))
	require.NoError(t, err)
	return doc.Serialize(), changed
}

// requireIdempotent asserts that applying the rule to its own output is
// a no-op.
func requireIdempotent(t *testing.T, rule rewrite.Rule, text string) {
	t.Helper()
	once, _ := applyRule(t, rule, text)
	twice, changed := applyRule(t, rule, once)
	assert.False(t, changed, "second application must not change anything")
	assert.Equal(t, once, twice)
}

func TestRemoveBoldFromTitles(t *testing.T) {
	t.Parallel()

	rule := rules.NewRemoveBoldFromTitlesRule()

	tests := []struct {
		name        string
		text        string
		want        string
		wantChanged bool
	}{
		{
			name:        "strips full wrapper",
			text:        "---\n# **Hello World**\n",
			want:        "---\n# Hello World\n",
			wantChanged: true,
		},
		{
			name:        "partial bold untouched",
			text:        "---\n# **Bold** and plain\n",
			want:        "---\n# **Bold** and plain\n",
			wantChanged: false,
		},
		{
			name:        "inline bold in body untouched",
			text:        "---\n# **Title**\n\nSome **bold** text\n",
			want:        "---\n# Title\n\nSome **bold** text\n",
			wantChanged: true,
		},
		{
			name:        "no title",
			text:        "---\nplain body\n",
			want:        "---\nplain body\n",
			wantChanged: false,
		},
		{
			name:        "subheading untouched",
			text:        "---\n## **Sub**\n",
			want:        "---\n## **Sub**\n",
			wantChanged: false,
		},
		{
			name:        "empty bold untouched",
			text:        "---\n# ****\n",
			want:        "---\n# ****\n",
			wantChanged: false,
		},
		{
			name:        "multiple slides",
			text:        "---\n# **A**\n---\n# B\n---\n# **C**\n",
			want:        "---\n# A\n---\n# B\n---\n# C\n",
			wantChanged: true,
		},
		{
			name:        "extra marker whitespace preserved",
			text:        "---\n#   **Spaced**\n",
			want:        "---\n#   Spaced\n",
			wantChanged: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			got, changed := applyRule(t, rule, tt.text)
			assert.Equal(t, tt.want, got)
			assert.Equal(t, tt.wantChanged, changed)
			requireIdempotent(t, rule, tt.text)
		})
	}
}
