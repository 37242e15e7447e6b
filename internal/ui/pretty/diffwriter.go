package pretty

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/yaklabco/slidefmt/pkg/diff"
)

// DiffWriter renders unified diffs in GitHub style with colorization.
type DiffWriter struct {
	styles *Styles
	out    io.Writer
}

// NewDiffWriter creates a diff writer for the given output.
func NewDiffWriter(styles *Styles, out io.Writer) *DiffWriter {
	return &DiffWriter{styles: styles, out: out}
}

// Write outputs a single file's diff with formatting.
func (w *DiffWriter) Write(d *diff.Diff) {
	if d == nil || !d.HasChanges() {
		return
	}

	// Use relative path for display if possible.
	displayPath := relativePath(d.Path)

	// Git-style header: "diff --git a/file b/file"
	header := fmt.Sprintf("diff --git a/%s b/%s", displayPath, displayPath)
	fmt.Fprintln(w.out, w.styles.DiffHeader.Render(header))

	// Write --- and +++ headers with relative path.
	fmt.Fprintln(w.out, w.styles.DiffRemove.Render("--- a/"+displayPath))
	fmt.Fprintln(w.out, w.styles.DiffAdd.Render("+++ b/"+displayPath))

	// Colorize the hunk content (skip the --- and +++ lines from String()).
	lines := strings.Split(d.String(), "\n")
	for _, line := range lines {
		if line == "" || strings.HasPrefix(line, "---") || strings.HasPrefix(line, "+++") {
			continue
		}
		w.writeLine(line)
	}

	fmt.Fprintln(w.out) // Blank line between files
}

// WriteSummary writes an aggregate change summary line.
func (w *DiffWriter) WriteSummary(files, additions, deletions int) {
	var parts []string

	fileWord := "files"
	if files == 1 {
		fileWord = "file"
	}
	parts = append(parts, fmt.Sprintf("%d %s changed", files, fileWord))

	if additions > 0 {
		insertionWord := "insertions"
		if additions == 1 {
			insertionWord = "insertion"
		}
		parts = append(parts, w.styles.DiffAdd.Render(fmt.Sprintf("%d %s(+)", additions, insertionWord)))
	}

	if deletions > 0 {
		deletionWord := "deletions"
		if deletions == 1 {
			deletionWord = "deletion"
		}
		parts = append(parts, w.styles.DiffRemove.Render(fmt.Sprintf("%d %s(-)", deletions, deletionWord)))
	}

	fmt.Fprintln(w.out, strings.Join(parts, ", "))
}

// writeLine formats a single diff line with color.
func (w *DiffWriter) writeLine(line string) {
	var styled string

	switch {
	case strings.HasPrefix(line, "@@"):
		styled = w.styles.DiffHunk.Render(line)
	case strings.HasPrefix(line, "+"):
		styled = w.styles.DiffAdd.Render(line)
	case strings.HasPrefix(line, "-"):
		styled = w.styles.DiffRemove.Render(line)
	default:
		styled = w.styles.DiffContext.Render(line)
	}

	fmt.Fprintln(w.out, styled)
}

// relativePath converts an absolute path to a relative path from the current
// directory. If the relative path would require too many "../" traversals,
// use the basename instead.
func relativePath(path string) string {
	if !filepath.IsAbs(path) {
		return path
	}
	cwd, err := os.Getwd()
	if err != nil {
		return filepath.Base(path)
	}
	rel, err := filepath.Rel(cwd, path)
	if err != nil {
		return filepath.Base(path)
	}
	if strings.Count(rel, "..") > 2 {
		return filepath.Base(path)
	}
	return rel
}
