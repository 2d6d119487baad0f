package report

import (
	"fmt"
	"io"
	"strings"

	"github.com/nao1215/passcheck/internal/model"
)

// SimpleWriter outputs human-readable text reports.
// This format is designed for terminal display.
type SimpleWriter struct {
	baseWriter

	// showHeader prints the banner above a single result.
	showHeader bool
}

// SimpleWriterOption configures a SimpleWriter.
type SimpleWriterOption func(*SimpleWriter)

// WithHeader controls whether a single result gets a banner.
// The interactive prompt turns it off.
func WithHeader(show bool) SimpleWriterOption {
	return func(w *SimpleWriter) {
		w.showHeader = show
	}
}

// NewSimpleWriter creates a SimpleWriter that outputs to the given writer.
func NewSimpleWriter(output io.Writer, opts ...SimpleWriterOption) *SimpleWriter {
	w := &SimpleWriter{
		baseWriter: newBaseWriter(output),
		showHeader: true,
	}

	for _, opt := range opts {
		opt(w)
	}

	return w
}

// Write outputs a single analysis result.
func (w *SimpleWriter) Write(result *model.AnalysisResult) (int, error) {
	var sb strings.Builder

	if w.showHeader {
		writeBanner(&sb, "PASSWORD STRENGTH REPORT")
	}

	sb.WriteString("📊 Analysis Results:\n")
	fmt.Fprintf(&sb, "Score: %d/100\n", result.Score)
	fmt.Fprintf(&sb, "Strength: %s\n", result.Strength)
	fmt.Fprintf(&sb, "Length: %s\n", result.Length.Message)

	sb.WriteString("\n✅ Complexity Checks:\n")
	for _, row := range complexityRows(complexityOf(result)) {
		fmt.Fprintf(&sb, "  %s: %s\n", row.label, checkMark(row.ok))
	}

	if result.HasWarnings() {
		sb.WriteString("\n⚠️  Warnings:\n")
		for _, warning := range result.Warnings {
			fmt.Fprintf(&sb, "  - %s\n", warning)
		}
	}

	sb.WriteString("\n💡 Suggestions:\n")
	for _, suggestion := range result.Suggestions {
		fmt.Fprintf(&sb, "  - %s\n", suggestion)
	}

	return w.output.Write([]byte(sb.String()))
}

// WriteBatch outputs a batch summary followed by one row per line.
func (w *SimpleWriter) WriteBatch(report *model.BatchReport) (int, error) {
	var sb strings.Builder

	writeBanner(&sb, "BATCH PASSWORD STRENGTH REPORT")

	fmt.Fprintf(&sb, "Source:         %s\n", report.Source)
	fmt.Fprintf(&sb, "Analyzed:       %s\n", report.DateAnalyzed.Format("2006-01-02 15:04:05 MST"))
	fmt.Fprintf(&sb, "Passwords:      %d\n", len(report.Entries))
	fmt.Fprintf(&sb, "Average Score:  %.1f/100\n", report.AverageScore)
	fmt.Fprintf(&sb, "With Warnings:  %d\n\n", report.WarningCount)

	writeSection(&sb, "STRENGTH DISTRIBUTION")
	for _, s := range model.Strengths {
		fmt.Fprintf(&sb, "  %-12s %d\n", s.String()+":", report.Distribution.Count(s))
	}
	sb.WriteString("\n")

	writeSection(&sb, "RESULTS")
	if !report.HasEntries() {
		sb.WriteString("  No passwords analyzed.\n")
		return w.output.Write([]byte(sb.String()))
	}

	fmt.Fprintf(&sb, "  %-6s %-7s %-12s %s\n", "Line", "Score", "Strength", "Warnings")
	for _, e := range report.Entries {
		warnings := "-"
		if e.Result.HasWarnings() {
			warnings = strings.Join(e.Result.Warnings, "; ")
		}
		fmt.Fprintf(&sb, "  %-6d %-7d %-12s %s\n", e.Line, e.Result.Score, e.Result.Strength, warnings)
	}

	return w.output.Write([]byte(sb.String()))
}

func writeBanner(sb *strings.Builder, title string) {
	sb.WriteString(strings.Repeat("=", 70))
	sb.WriteString("\n")
	sb.WriteString(centered(title, 70))
	sb.WriteString("\n")
	sb.WriteString(strings.Repeat("=", 70))
	sb.WriteString("\n\n")
}

func writeSection(sb *strings.Builder, title string) {
	sb.WriteString(title)
	sb.WriteString("\n")
	sb.WriteString(strings.Repeat("-", 70))
	sb.WriteString("\n")
}

func centered(s string, width int) string {
	pad := (width - len(s)) / 2
	if pad <= 0 {
		return s
	}
	return strings.Repeat(" ", pad) + s
}
