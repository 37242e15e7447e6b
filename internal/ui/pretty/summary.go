package pretty

import (
	"fmt"
	"sort"
	"strconv"
	"strings"

	"github.com/yaklabco/slidefmt/pkg/runner"
)

const (
	maxSummaryDividerWidth = 40
	wordFile               = "file"
	wordFiles              = "files"
)

// summaryDivider sizes the divider to the terminal, capped so the block
// stays compact on wide terminals.
func summaryDivider(width int) string {
	if width <= 0 || width > maxSummaryDividerWidth {
		width = maxSummaryDividerWidth
	}
	return strings.Repeat("-", width)
}

// FormatSummaryOneLine formats run statistics as a single line.
// Example: "3 of 12 files rewritten, 2 backups, 1 skipped".
func (s *Styles) FormatSummaryOneLine(stats runner.Stats) string {
	if stats.FilesChanged == 0 && stats.FilesErrored == 0 {
		fileWord := wordFiles
		if stats.FilesProcessed == 1 {
			fileWord = wordFile
		}
		return s.Success.Render("Already formatted") +
			s.Dim.Render(fmt.Sprintf(" (%d %s checked)", stats.FilesProcessed, fileWord)) + "\n"
	}

	var parts []string

	fileWord := wordFiles
	if stats.FilesProcessed == 1 {
		fileWord = wordFile
	}

	switch {
	case stats.FilesRewritten > 0:
		parts = append(parts, s.Success.Render(
			fmt.Sprintf("%d of %d %s rewritten", stats.FilesRewritten, stats.FilesProcessed, fileWord)))
	case stats.FilesChanged > 0:
		parts = append(parts, s.Changed.Render(
			fmt.Sprintf("%d of %d %s need formatting", stats.FilesChanged, stats.FilesProcessed, fileWord)))
	}

	if stats.FilesSkipped > 0 {
		parts = append(parts, s.Skipped.Render(fmt.Sprintf("%d skipped", stats.FilesSkipped)))
	}
	if stats.FilesErrored > 0 {
		errorWord := "errors"
		if stats.FilesErrored == 1 {
			errorWord = "error"
		}
		parts = append(parts, s.Failure.Render(fmt.Sprintf("%d %s", stats.FilesErrored, errorWord)))
	}

	return strings.Join(parts, ", ") + "\n"
}

// FormatSummary formats run statistics as a summary block. width is the
// terminal width (0 for the default).
func (s *Styles) FormatSummary(stats runner.Stats, width int) string {
	var builder strings.Builder

	builder.WriteString("\n")
	builder.WriteString(s.SummaryTitle.Render("Summary"))
	builder.WriteString("\n")
	builder.WriteString(summaryDivider(width))
	builder.WriteString("\n")

	builder.WriteString("  Files checked:    " +
		s.SummaryValue.Render(strconv.Itoa(stats.FilesProcessed)) + "\n")

	if stats.FilesChanged > 0 {
		builder.WriteString("  Files changed:    " +
			s.Changed.Render(strconv.Itoa(stats.FilesChanged)) + "\n")
	}
	if stats.FilesRewritten > 0 {
		builder.WriteString("  Files rewritten:  " +
			s.Success.Render(strconv.Itoa(stats.FilesRewritten)) + "\n")
	}
	if stats.FilesSkipped > 0 {
		builder.WriteString("  Files skipped:    " +
			s.Skipped.Render(strconv.Itoa(stats.FilesSkipped)) + "\n")
	}
	if stats.FilesErrored > 0 {
		builder.WriteString("  Files errored:    " +
			s.Failure.Render(strconv.Itoa(stats.FilesErrored)) + "\n")
	}

	if len(stats.RuleChanges) > 0 {
		builder.WriteString("\n")
		builder.WriteString("  Changes by rule:\n")
		names := make([]string, 0, len(stats.RuleChanges))
		for name := range stats.RuleChanges {
			names = append(names, name)
		}
		sort.Strings(names)
		for _, name := range names {
			count := stats.RuleChanges[name]
			fileWord := wordFiles
			if count == 1 {
				fileWord = wordFile
			}
			builder.WriteString(fmt.Sprintf("    %s: %s\n",
				s.RuleName.Render(name),
				s.SummaryValue.Render(fmt.Sprintf("%d %s", count, fileWord))))
		}
	}

	builder.WriteString("\n")

	switch {
	case stats.FilesErrored > 0:
		builder.WriteString(s.Failure.Render("Formatting failed with errors"))
	case stats.FilesChanged > stats.FilesRewritten:
		builder.WriteString(s.Changed.Render("Formatting changes pending"))
	default:
		builder.WriteString(s.Success.Render("Formatting complete"))
	}
	builder.WriteString("\n")

	return builder.String()
}

// FormatFileStatus formats a one-line per-file status.
func (s *Styles) FormatFileStatus(outcome runner.FileOutcome) string {
	path := s.FilePath.Render(outcome.Path)

	if outcome.Error != nil {
		return fmt.Sprintf("%s: %s\n", path, s.Error.Render(fmt.Sprintf("error: %v", outcome.Error)))
	}
	if outcome.Result == nil {
		return ""
	}

	summary := outcome.Result.Summary()
	var styled string
	switch {
	case outcome.Result.Skipped:
		styled = s.Skipped.Render(summary)
	case outcome.Result.Written:
		styled = s.Success.Render(summary)
	case outcome.Result.Changed:
		styled = s.Changed.Render(summary)
	default:
		styled = s.Unchanged.Render(summary)
	}

	if len(outcome.Result.Applied) > 0 {
		styled += s.Dim.Render(" [" + strings.Join(outcome.Result.Applied, ", ") + "]")
	}
	return fmt.Sprintf("%s: %s\n", path, styled)
}
