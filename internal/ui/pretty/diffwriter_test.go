package pretty_test

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yaklabco/slidefmt/internal/ui/pretty"
	"github.com/yaklabco/slidefmt/pkg/diff"
)

func TestDiffWriter_Write(t *testing.T) {
	t.Parallel()

	d := diff.Generate("deck.md", "# Title\nold line\n", "# Title\nnew line\n")
	require.NotNil(t, d)
	require.True(t, d.HasChanges())

	var buf bytes.Buffer
	writer := pretty.NewDiffWriter(noColorStyles(), &buf)
	writer.Write(d)

	out := buf.String()
	assert.Contains(t, out, "diff --git a/deck.md b/deck.md")
	assert.Contains(t, out, "--- a/deck.md")
	assert.Contains(t, out, "+++ b/deck.md")
	assert.Contains(t, out, "-old line")
	assert.Contains(t, out, "+new line")
	assert.Contains(t, out, " # Title")
	assert.Contains(t, out, "@@")
}

func TestDiffWriter_Write_NilDiff(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	writer := pretty.NewDiffWriter(noColorStyles(), &buf)
	writer.Write(nil)

	assert.Empty(t, buf.String())
}

func TestDiffWriter_Write_NoChanges(t *testing.T) {
	t.Parallel()

	d := diff.Generate("deck.md", "same\n", "same\n")

	var buf bytes.Buffer
	writer := pretty.NewDiffWriter(noColorStyles(), &buf)
	writer.Write(d)

	assert.Empty(t, buf.String())
}

func TestDiffWriter_WriteSummary(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	writer := pretty.NewDiffWriter(noColorStyles(), &buf)
	writer.WriteSummary(3, 5, 1)

	assert.Equal(t, "3 files changed, 5 insertions(+), 1 deletion(-)\n", buf.String())
}

func TestDiffWriter_WriteSummary_SingleFile(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	writer := pretty.NewDiffWriter(noColorStyles(), &buf)
	writer.WriteSummary(1, 1, 0)

	assert.Equal(t, "1 file changed, 1 insertion(+)\n", buf.String())
}
