package rules_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/yaklabco/slidefmt/pkg/rewrite/rules"
)

func TestDefaultTransition(t *testing.T) {
	t.Parallel()

	rule := rules.NewDefaultTransitionRule()

	tests := []struct {
		name        string
		text        string
		want        string
		wantChanged bool
	}{
		{
			name:        "adds missing transition",
			text:        "theme: seriph\n---\n# Cover\n",
			want:        "theme: seriph\ntransition: slide-left\n---\n# Cover\n",
			wantChanged: true,
		},
		{
			name:        "replaces different transition in place",
			text:        "transition: fade\ntheme: seriph\n---\n# Cover\n",
			want:        "transition: slide-left\ntheme: seriph\n---\n# Cover\n",
			wantChanged: true,
		},
		{
			name:        "already correct",
			text:        "transition: slide-left\n---\n# Cover\n",
			want:        "transition: slide-left\n---\n# Cover\n",
			wantChanged: false,
		},
		{
			name:        "no header is a no-op",
			text:        "---\n# Cover\n",
			want:        "---\n# Cover\n",
			wantChanged: false,
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

func TestSectionTransition(t *testing.T) {
	t.Parallel()

	rule := rules.NewSectionTransitionRule()

	tests := []struct {
		name        string
		text        string
		want        string
		wantChanged bool
	}{
		{
			name:        "adds transition to section slide",
			text:        "---\nlayout: section\n\n# Part\n",
			want:        "---\nlayout: section\ntransition: slide-left\n\n# Part\n",
			wantChanged: true,
		},
		{
			name:        "replaces wrong transition on section slide",
			text:        "---\nlayout: section\ntransition: fade\n\n# Part\n",
			want:        "---\nlayout: section\ntransition: slide-left\n\n# Part\n",
			wantChanged: true,
		},
		{
			name:        "non-section slide untouched",
			text:        "---\nlayout: two-cols\ntransition: fade\n\n# Slide\n",
			want:        "---\nlayout: two-cols\ntransition: fade\n\n# Slide\n",
			wantChanged: false,
		},
		{
			name:        "slide without metadata untouched",
			text:        "---\n# Slide\n",
			want:        "---\n# Slide\n",
			wantChanged: false,
		},
		{
			name:        "mixed slides",
			text:        "---\n# Cover\n---\nlayout: section\n\n# Part\n---\n# Content\n",
			want:        "---\n# Cover\n---\nlayout: section\ntransition: slide-left\n\n# Part\n---\n# Content\n",
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

func TestCleanTransitions(t *testing.T) {
	t.Parallel()

	rule := rules.NewCleanTransitionsRule()

	tests := []struct {
		name        string
		text        string
		want        string
		wantChanged bool
	}{
		{
			name:        "removes duplicate of global default",
			text:        "transition: slide-left\n---\ntransition: slide-left\n\n# Slide\n",
			want:        "transition: slide-left\n---\n\n# Slide\n",
			wantChanged: true,
		},
		{
			name:        "removes transition from non-section slide",
			text:        "---\nlayout: two-cols\ntransition: fade\n\n# Slide\n",
			want:        "---\nlayout: two-cols\n\n# Slide\n",
			wantChanged: true,
		},
		{
			name:        "keeps distinct transition on section slide",
			text:        "transition: slide-left\n---\nlayout: section\ntransition: fade\n\n# Part\n",
			want:        "transition: slide-left\n---\nlayout: section\ntransition: fade\n\n# Part\n",
			wantChanged: false,
		},
		{
			name:        "removes duplicate even on section slide",
			text:        "transition: slide-left\n---\nlayout: section\ntransition: slide-left\n\n# Part\n",
			want:        "transition: slide-left\n---\nlayout: section\n\n# Part\n",
			wantChanged: true,
		},
		{
			name:        "no global header still cleans non-section slides",
			text:        "---\ntransition: fade\n\n# Slide\n",
			want:        "---\n\n# Slide\n",
			wantChanged: true,
		},
		{
			name:        "nothing to clean",
			text:        "---\n# Slide\n",
			want:        "---\n# Slide\n",
			wantChanged: false,
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
