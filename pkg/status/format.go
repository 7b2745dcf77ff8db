package status

import (
	"fmt"
	"path/filepath"

	"github.com/fatih/color"
)

// 🎨 Display configuration
const (
	nameWidth = 45 // column width for source filenames
)

// FileFormatter defines how per-file results and the batch summary are
// rendered for the console and the run log.
type FileFormatter interface {
	// FormatResult formats one file's result line
	FormatResult(r Result) string

	// FormatSummary formats the end-of-batch summary
	FormatSummary(s Summary) string
}

// DefaultFileFormatter renders aligned, color-coded result lines.
type DefaultFileFormatter struct{}

// NewDefaultFileFormatter creates a new DefaultFileFormatter
func NewDefaultFileFormatter() *DefaultFileFormatter {
	return &DefaultFileFormatter{}
}

// FormatResult formats one result as an aligned line, e.g.
//
//	wall_BaseColor.png                            ✓ renamed to wall_albedo.png
func (f *DefaultFileFormatter) FormatResult(r Result) string {
	name := filepath.Base(r.Source)

	var symbol string
	var symbolColor color.Attribute
	var detail string
	switch r.Outcome {
	case OutcomePlanned:
		symbol = "→"
		symbolColor = color.FgCyan
		detail = fmt.Sprintf("rename to %s", filepath.Base(r.Target))
	case OutcomeRenamed:
		symbol = "✓"
		symbolColor = color.FgGreen
		detail = fmt.Sprintf("renamed to %s", filepath.Base(r.Target))
	case OutcomeSkipped:
		symbol = "-"
		symbolColor = color.FgYellow
		detail = "skipped"
	case OutcomeConflict:
		symbol = "✗"
		symbolColor = color.FgRed
		detail = "conflict: target exists"
	case OutcomeError:
		symbol = "✗"
		symbolColor = color.FgRed
		detail = fmt.Sprintf("failed: %v", r.Err)
	default:
		symbol = "?"
		symbolColor = color.FgWhite
		detail = "unknown"
	}

	if r.Reason != "" && r.Outcome != OutcomeError {
		detail = fmt.Sprintf("%s (%s)", detail, r.Reason)
	}

	return fmt.Sprintf("%-*s %s %s",
		nameWidth, name,
		color.New(symbolColor).Sprint(symbol),
		detail)
}

// FormatSummary formats the batch totals.
func (f *DefaultFileFormatter) FormatSummary(s Summary) string {
	out := fmt.Sprintf("%d files: ", s.Total())
	if s.Planned > 0 {
		out += fmt.Sprintf("%s planned, ", color.New(color.FgCyan).Sprintf("%d", s.Planned))
	}
	out += fmt.Sprintf("%s renamed, %s skipped",
		color.New(color.FgGreen).Sprintf("%d", s.Renamed),
		color.New(color.FgYellow).Sprintf("%d", s.Skipped))
	if s.Conflicts > 0 {
		out += fmt.Sprintf(", %s conflicts", color.New(color.FgRed).Sprintf("%d", s.Conflicts))
	}
	if s.Errors > 0 {
		out += fmt.Sprintf(", %s errors", color.New(color.FgRed).Sprintf("%d", s.Errors))
	}
	return out
}

// PlainFileFormatter renders the same lines without color, for the run log.
type PlainFileFormatter struct{}

// NewPlainFileFormatter creates a new PlainFileFormatter
func NewPlainFileFormatter() *PlainFileFormatter {
	return &PlainFileFormatter{}
}

// FormatResult formats one result without ANSI escapes.
func (f *PlainFileFormatter) FormatResult(r Result) string {
	name := filepath.Base(r.Source)

	var detail string
	switch r.Outcome {
	case OutcomePlanned:
		detail = fmt.Sprintf("rename to %s", filepath.Base(r.Target))
	case OutcomeRenamed:
		detail = fmt.Sprintf("renamed to %s", filepath.Base(r.Target))
	case OutcomeSkipped:
		detail = "skipped"
	case OutcomeConflict:
		detail = "conflict: target exists"
	case OutcomeError:
		detail = fmt.Sprintf("failed: %v", r.Err)
	default:
		detail = "unknown"
	}

	return fmt.Sprintf("%-*s %s", nameWidth, name, detail)
}

// FormatSummary formats the batch totals without color.
func (f *PlainFileFormatter) FormatSummary(s Summary) string {
	return fmt.Sprintf("%d files: %d renamed, %d skipped, %d conflicts, %d errors",
		s.Total(), s.Renamed, s.Skipped, s.Conflicts, s.Errors)
}
