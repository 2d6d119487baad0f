package report

import (
	"fmt"
	"io"

	"github.com/nao1215/passcheck/internal/model"
)

// Writer defines the interface for report output.
type Writer interface {
	// Write outputs a single analysis result.
	// Returns the number of bytes written and any error encountered.
	Write(result *model.AnalysisResult) (int, error)

	// WriteBatch outputs the aggregated results of a batch run.
	WriteBatch(report *model.BatchReport) (int, error)
}

// Output format names accepted by New.
const (
	FormatText     = "text"
	FormatJSON     = "json"
	FormatMarkdown = "markdown"
)

// New returns the Writer for format. An empty format selects text.
func New(output io.Writer, format string) (Writer, error) {
	switch format {
	case "", FormatText:
		return NewSimpleWriter(output), nil
	case FormatJSON:
		return NewJSONWriter(output, WithPrettyPrint()), nil
	case FormatMarkdown:
		return NewMarkdownWriter(output), nil
	default:
		return nil, fmt.Errorf("unknown report format: %q", format)
	}
}

// baseWriter provides common functionality for report writers.
type baseWriter struct {
	output io.Writer
}

// newBaseWriter creates a baseWriter with the given output destination.
func newBaseWriter(output io.Writer) baseWriter {
	return baseWriter{output: output}
}

// complexityOf returns the flags of result, all false when absent.
func complexityOf(result *model.AnalysisResult) model.ComplexityFlags {
	if result.Complexity == nil {
		return model.ComplexityFlags{}
	}
	return *result.Complexity
}

// complexityRow is one line of the complexity checklist.
type complexityRow struct {
	label string
	ok    bool
}

func complexityRows(c model.ComplexityFlags) []complexityRow {
	return []complexityRow{
		{label: "Lowercase letters", ok: c.HasLowercase},
		{label: "Uppercase letters", ok: c.HasUppercase},
		{label: "Numbers", ok: c.HasDigit},
		{label: "Special characters", ok: c.HasSpecial},
	}
}

func checkMark(ok bool) string {
	if ok {
		return "✓"
	}
	return "✗"
}
