package cli

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yaklabco/slidefmt/pkg/rewrite"
)

const messyDeck = `---
# **Welcome**

content
---
## **Agenda**

items
`

func writeDeck(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestFmtCommand_RewritesFiles(t *testing.T) {
	dir := t.TempDir()
	path := writeDeck(t, dir, "deck.md", messyDeck)

	out, err := executeCommand(t, "fmt", "--rule-set", "basic_formatting", dir)
	require.NoError(t, err)
	assert.Contains(t, out, "rewrote")

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "# Welcome")
	assert.NotContains(t, string(data), "**Welcome**")
	assert.NotContains(t, string(data), "**Agenda**")
}

func TestFmtCommand_SecondRunIsClean(t *testing.T) {
	dir := t.TempDir()
	writeDeck(t, dir, "deck.md", messyDeck)

	_, err := executeCommand(t, "fmt", "--rule-set", "basic_formatting", dir)
	require.NoError(t, err)

	out, err := executeCommand(t, "fmt", "--rule-set", "basic_formatting", dir)
	require.NoError(t, err)
	assert.Contains(t, out, "Already formatted")
}

func TestFmtCommand_CheckMode(t *testing.T) {
	dir := t.TempDir()
	path := writeDeck(t, dir, "deck.md", messyDeck)

	_, err := executeCommand(t, "fmt", "--rule-set", "basic_formatting", "--check", dir)
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrChangesPending))

	// Check mode must not write.
	data, readErr := os.ReadFile(path)
	require.NoError(t, readErr)
	assert.Equal(t, messyDeck, string(data))
}

func TestFmtCommand_DryRunShowsDiff(t *testing.T) {
	dir := t.TempDir()
	path := writeDeck(t, dir, "deck.md", messyDeck)

	out, err := executeCommand(t, "fmt", "--rule-set", "basic_formatting", "--dry-run", dir)
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrChangesPending))

	assert.Contains(t, out, "diff --git")
	assert.Contains(t, out, "-# **Welcome**")
	assert.Contains(t, out, "+# Welcome")

	data, readErr := os.ReadFile(path)
	require.NoError(t, readErr)
	assert.Equal(t, messyDeck, string(data))
}

func TestFmtCommand_CleanDeckExitsZero(t *testing.T) {
	dir := t.TempDir()
	writeDeck(t, dir, "deck.md", "---\n# Welcome\n\ncontent\n")

	out, err := executeCommand(t, "fmt", "--rule-set", "basic_formatting", "--check", dir)
	require.NoError(t, err)
	assert.Contains(t, out, "Already formatted")
}

func TestFmtCommand_UnknownRuleSet(t *testing.T) {
	dir := t.TempDir()
	writeDeck(t, dir, "deck.md", messyDeck)

	_, err := executeCommand(t, "fmt", "--rule-set", "no_such_set", dir)
	require.Error(t, err)

	assert.True(t, errors.Is(err, rewrite.ErrUnknownSelection))
	assert.Equal(t, ExitInvalidUsage, ExitCodeForError(err))
}

func TestFmtCommand_ExplicitRules(t *testing.T) {
	dir := t.TempDir()
	path := writeDeck(t, dir, "deck.md", messyDeck)

	_, err := executeCommand(t, "fmt", "--rules", "remove_bold_from_titles", dir)
	require.NoError(t, err)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.NotContains(t, string(data), "**Welcome**")
}

func TestFmtCommand_Summary(t *testing.T) {
	dir := t.TempDir()
	writeDeck(t, dir, "deck.md", messyDeck)

	out, err := executeCommand(t, "fmt", "--rule-set", "basic_formatting", "--summary", dir)
	require.NoError(t, err)
	assert.Contains(t, out, "Summary")
	assert.Contains(t, out, "Changes by rule:")
	assert.Contains(t, out, "remove_bold_from_titles")
}
