// Package diff computes unified diffs between original and rewritten
// deck text, for dry-run review before files are touched.
package diff

import (
	"fmt"
	"strings"
)

// contextLines is the number of context lines shown around changes.
const contextLines = 3

// LineKind indicates the type of diff line.
type LineKind int

const (
	// Context is an unchanged line shown for context.
	Context LineKind = iota

	// Add is a line present only in the rewritten version.
	Add

	// Remove is a line present only in the original version.
	Remove
)

// Line is a single line in a hunk.
type Line struct {
	Kind    LineKind
	Content string
}

// Hunk is one contiguous region of a unified diff.
type Hunk struct {
	OriginalStart  int
	OriginalCount  int
	RewrittenStart int
	RewrittenCount int
	Lines          []Line
}

// Diff is a unified diff between original and rewritten content.
type Diff struct {
	// Path is the file path used in diff headers.
	Path string

	// Hunks are the changed regions with context.
	Hunks []Hunk

	// Additions and Deletions count changed lines.
	Additions int
	Deletions int
}

// Generate computes the unified diff between original and rewritten
// text. It returns nil when the contents are identical.
func Generate(path, original, rewritten string) *Diff {
	if original == rewritten {
		return nil
	}

	origLines := splitLines(original)
	newLines := splitLines(rewritten)

	ops := buildOps(origLines, newLines)
	hunks := groupHunks(ops)
	if len(hunks) == 0 {
		return nil
	}

	d := &Diff{Path: path, Hunks: hunks}
	for _, h := range hunks {
		for _, l := range h.Lines {
			switch l.Kind {
			case Add:
				d.Additions++
			case Remove:
				d.Deletions++
			}
		}
	}
	return d
}

// String renders the diff in unified format with --- / +++ headers.
func (d *Diff) String() string {
	if d == nil || len(d.Hunks) == 0 {
		return ""
	}

	path := strings.TrimPrefix(d.Path, "/")

	var b strings.Builder
	fmt.Fprintf(&b, "--- a/%s\n", path)
	fmt.Fprintf(&b, "+++ b/%s\n", path)
	for _, h := range d.Hunks {
		fmt.Fprintf(&b, "@@ -%d,%d +%d,%d @@\n",
			h.OriginalStart, h.OriginalCount, h.RewrittenStart, h.RewrittenCount)
		for _, l := range h.Lines {
			switch l.Kind {
			case Context:
				fmt.Fprintf(&b, " %s\n", l.Content)
			case Add:
				fmt.Fprintf(&b, "+%s\n", l.Content)
			case Remove:
				fmt.Fprintf(&b, "-%s\n", l.Content)
			}
		}
	}
	return b.String()
}

// HasChanges returns true if the diff contains any changes.
func (d *Diff) HasChanges() bool {
	return d != nil && len(d.Hunks) > 0
}

func splitLines(content string) []string {
	if content == "" {
		return nil
	}
	lines := strings.Split(content, "\n")
	if lines[len(lines)-1] == "" {
		lines = lines[:len(lines)-1]
	}
	return lines
}

// op is one LCS-aligned diff operation.
type op struct {
	kind    LineKind
	content string
}

// buildOps aligns the two line slices on their longest common
// subsequence and emits context/add/remove operations.
func buildOps(orig, rewritten []string) []op {
	lcs := longestCommonSubsequence(orig, rewritten)

	var ops []op
	oi, ri, li := 0, 0, 0
	for oi < len(orig) || ri < len(rewritten) {
		if li < len(lcs) && oi < len(orig) && ri < len(rewritten) &&
			orig[oi] == lcs[li] && rewritten[ri] == lcs[li] {
			ops = append(ops, op{kind: Context, content: orig[oi]})
			oi++
			ri++
			li++
			continue
		}
		for oi < len(orig) && (li >= len(lcs) || orig[oi] != lcs[li]) {
			ops = append(ops, op{kind: Remove, content: orig[oi]})
			oi++
		}
		for ri < len(rewritten) && (li >= len(lcs) || rewritten[ri] != lcs[li]) {
			ops = append(ops, op{kind: Add, content: rewritten[ri]})
			ri++
		}
	}
	return ops
}

// groupHunks merges changed regions that sit close together and wraps
// them with context lines.
func groupHunks(ops []op) []Hunk {
	type span struct{ start, end int }

	var spans []span
	inChange := false
	start := 0
	for i, o := range ops {
		isChange := o.kind != Context
		switch {
		case isChange && !inChange:
			start = i
			inChange = true
		case !isChange && inChange:
			spans = append(spans, span{start, i})
			inChange = false
		}
	}
	if inChange {
		spans = append(spans, span{start, len(ops)})
	}
	if len(spans) == 0 {
		return nil
	}

	var hunks []Hunk
	for i := 0; i < len(spans); {
		j := i + 1
		for j < len(spans) && spans[j].start-spans[j-1].end <= contextLines*2 {
			j++
		}
		hunks = append(hunks, buildHunk(ops, spans[i].start, spans[j-1].end))
		i = j
	}
	return hunks
}

// buildHunk expands a change span with context lines and computes the
// hunk header positions.
func buildHunk(ops []op, changeStart, changeEnd int) Hunk {
	start := max(changeStart-contextLines, 0)
	end := min(changeEnd+contextLines, len(ops))

	h := Hunk{OriginalStart: 1, RewrittenStart: 1}
	for i := range start {
		if ops[i].kind != Add {
			h.OriginalStart++
		}
		if ops[i].kind != Remove {
			h.RewrittenStart++
		}
	}

	for i := start; i < end; i++ {
		h.Lines = append(h.Lines, Line{Kind: ops[i].kind, Content: ops[i].content})
		switch ops[i].kind {
		case Context:
			h.OriginalCount++
			h.RewrittenCount++
		case Remove:
			h.OriginalCount++
		case Add:
			h.RewrittenCount++
		}
	}
	return h
}

// longestCommonSubsequence computes the LCS of two string slices via the
// standard dynamic-programming table.
func longestCommonSubsequence(a, b []string) []string {
	if len(a) == 0 || len(b) == 0 {
		return nil
	}

	dp := make([][]int, len(a)+1)
	for i := range dp {
		dp[i] = make([]int, len(b)+1)
	}
	for i := 1; i <= len(a); i++ {
		for j := 1; j <= len(b); j++ {
			if a[i-1] == b[j-1] {
				dp[i][j] = dp[i-1][j-1] + 1
			} else {
				dp[i][j] = max(dp[i-1][j], dp[i][j-1])
			}
		}
	}

	n := dp[len(a)][len(b)]
	if n == 0 {
		return nil
	}

	lcs := make([]string, n)
	i, j, k := len(a), len(b), n-1
	for i > 0 && j > 0 {
		switch {
		case a[i-1] == b[j-1]:
			lcs[k] = a[i-1]
			i--
			j--
			k--
		case dp[i-1][j] > dp[i][j-1]:
			i--
		default:
			j--
		}
	}
	return lcs
}
