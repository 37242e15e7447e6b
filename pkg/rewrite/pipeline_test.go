package rewrite_test

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yaklabco/slidefmt/pkg/fsutil"
	"github.com/yaklabco/slidefmt/pkg/rewrite"
	"github.com/yaklabco/slidefmt/pkg/rewrite/rules"
)

// newTestPipeline builds a pipeline over the built-in rules.
func newTestPipeline(selection ...string) *rewrite.Pipeline {
	catalog := rewrite.NewCatalog()
	rules.RegisterAll(catalog)
	engine := rewrite.NewEngine(catalog, rewrite.Options{})
	return rewrite.NewPipeline(engine, selection)
}

func writeTestFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestPipeline_ProcessContent_Check(t *testing.T) {
	t.Parallel()

	pipeline := newTestPipeline("remove_bold_from_titles")
	opts := rewrite.DefaultPipelineOptions()
	opts.Check = true

	result, err := pipeline.ProcessContent(context.Background(), "deck.md", "---\n# **Bold**\n", opts)
	require.NoError(t, err)

	assert.True(t, result.Changed)
	assert.Nil(t, result.Diff, "check mode must not compute diffs")
	assert.False(t, result.Written)
	assert.Equal(t, []string{"remove_bold_from_titles"}, result.Applied)
}

func TestPipeline_ProcessContent_DryRunDiff(t *testing.T) {
	t.Parallel()

	pipeline := newTestPipeline("remove_bold_from_titles")
	opts := rewrite.DefaultPipelineOptions()
	opts.DryRun = true

	result, err := pipeline.ProcessContent(context.Background(), "deck.md", "---\n# **Bold**\n", opts)
	require.NoError(t, err)

	assert.True(t, result.Changed)
	require.NotNil(t, result.Diff)
	assert.True(t, result.Diff.HasChanges())
	assert.Equal(t, 1, result.Diff.Additions)
	assert.Equal(t, 1, result.Diff.Deletions)
}

func TestPipeline_ProcessContent_Unchanged(t *testing.T) {
	t.Parallel()

	pipeline := newTestPipeline("remove_bold_from_titles")

	result, err := pipeline.ProcessContent(context.Background(), "deck.md", "---\n# Plain\n",
		rewrite.DefaultPipelineOptions())
	require.NoError(t, err)

	assert.False(t, result.Changed)
	assert.Equal(t, "unchanged", result.Summary())
}

func TestPipeline_ProcessFile_Writes(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	path := writeTestFile(t, dir, "deck.md", "---\n# **Bold**\n")
	pipeline := newTestPipeline("remove_bold_from_titles")

	result, err := pipeline.ProcessFile(context.Background(), path, rewrite.DefaultPipelineOptions())
	require.NoError(t, err)

	assert.True(t, result.Written)
	assert.False(t, result.BackupCreated)

	content, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "---\n# Bold\n", string(content))
}

func TestPipeline_ProcessFile_Backup(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	original := "---\n# **Bold**\n"
	path := writeTestFile(t, dir, "deck.md", original)

	pipeline := newTestPipeline("remove_bold_from_titles")
	opts := rewrite.DefaultPipelineOptions()
	opts.Backup.Enabled = true

	result, err := pipeline.ProcessFile(context.Background(), path, opts)
	require.NoError(t, err)
	assert.True(t, result.BackupCreated)

	backup, err := os.ReadFile(fsutil.BackupPath(path))
	require.NoError(t, err)
	assert.Equal(t, original, string(backup))
}

func TestPipeline_ProcessFile_NotFound(t *testing.T) {
	t.Parallel()

	pipeline := newTestPipeline("remove_bold_from_titles")

	_, err := pipeline.ProcessFile(context.Background(),
		filepath.Join(t.TempDir(), "missing.md"), rewrite.DefaultPipelineOptions())
	require.Error(t, err)
	assert.True(t, errors.Is(err, rewrite.ErrFileNotFound))
}

func TestPipeline_ProcessFile_DryRunLeavesFile(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	original := "---\n# **Bold**\n"
	path := writeTestFile(t, dir, "deck.md", original)

	pipeline := newTestPipeline("remove_bold_from_titles")
	opts := rewrite.DefaultPipelineOptions()
	opts.DryRun = true

	result, err := pipeline.ProcessFile(context.Background(), path, opts)
	require.NoError(t, err)
	assert.False(t, result.Written)
	require.NotNil(t, result.Diff)

	content, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, original, string(content))
}

func TestPipeline_UnknownRule(t *testing.T) {
	t.Parallel()

	pipeline := newTestPipeline("ghost_rule")

	_, err := pipeline.ProcessContent(context.Background(), "deck.md", "---\n",
		rewrite.DefaultPipelineOptions())
	require.Error(t, err)
	assert.True(t, errors.Is(err, rewrite.ErrUnknownSelection))
}
