package cli

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yaklabco/slidefmt/pkg/config"
)

func TestInitCommand_CreatesFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), ".slidefmt.yml")

	_, err := executeCommand(t, "init", "--output", path)
	require.NoError(t, err)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, config.Template(), string(data))

	// The template must parse back into a valid config.
	_, err = config.FromYAML(data)
	assert.NoError(t, err)
}

func TestInitCommand_ExistingFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), ".slidefmt.yml")
	require.NoError(t, os.WriteFile(path, []byte("rule_set: basic_formatting\n"), 0644))

	_, err := executeCommand(t, "init", "--output", path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "already exists")

	// Original content untouched.
	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "rule_set: basic_formatting\n", string(data))
}

func TestInitCommand_ForceOverwrites(t *testing.T) {
	path := filepath.Join(t.TempDir(), ".slidefmt.yml")
	require.NoError(t, os.WriteFile(path, []byte("stale\n"), 0644))

	_, err := executeCommand(t, "init", "--output", path, "--force")
	require.NoError(t, err)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, config.Template(), string(data))
}
