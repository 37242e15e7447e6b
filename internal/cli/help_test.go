package cli

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSplitFlagUsage(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		line     string
		flagPart string
		desc     string
		found    bool
	}{
		{
			name:     "flag with description",
			line:     "-f, --force   Overwrite existing file",
			flagPart: "-f, --force",
			desc:     "Overwrite existing file",
			found:    true,
		},
		{
			name:     "typed flag",
			line:     "--jobs int   number of parallel workers",
			flagPart: "--jobs int",
			desc:     "number of parallel workers",
			found:    true,
		},
		{
			name:     "no description",
			line:     "--force",
			flagPart: "--force",
			desc:     "",
			found:    false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			flagPart, desc, found := splitFlagUsage(tt.line)
			assert.Equal(t, tt.flagPart, flagPart)
			assert.Equal(t, tt.desc, desc)
			assert.Equal(t, tt.found, found)
		})
	}
}

func TestRootCommand_Help(t *testing.T) {
	out, err := executeCommand(t, "--help")
	require.NoError(t, err)

	assert.Contains(t, out, "Usage:")
	assert.Contains(t, out, "Available Commands:")
	assert.Contains(t, out, "fmt")
	assert.Contains(t, out, "rules")
	assert.Contains(t, out, "rulesets")
	assert.Contains(t, out, "init")
	assert.Contains(t, out, "version")
}

func TestRpad(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "ab   ", rpad("ab", 5))
	assert.Equal(t, "abcdef", rpad("abcdef", 3))
}

func TestTrimTrailingWhitespaces(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "a\nb", trimTrailingWhitespaces("a  \nb\t"))
}
