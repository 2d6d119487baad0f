package report

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/nao1215/markdown"
	"github.com/nao1215/markdown/mermaid/piechart"

	"github.com/nao1215/passcheck/internal/model"
)

// MarkdownWriter outputs reports in Markdown format.
// Alerts use GitHub-flavored syntax and the batch distribution is drawn as
// a mermaid pie chart.
type MarkdownWriter struct {
	baseWriter
}

// NewMarkdownWriter creates a MarkdownWriter that outputs to the given writer.
func NewMarkdownWriter(output io.Writer) *MarkdownWriter {
	return &MarkdownWriter{
		baseWriter: newBaseWriter(output),
	}
}

// Write outputs a single result.
func (w *MarkdownWriter) Write(result *model.AnalysisResult) (int, error) {
	md := markdown.NewMarkdown(w.output)

	md.H1("Password Strength Report")
	md.PlainText("")

	md.Table(markdown.TableSet{
		Header: []string{"Property", "Value"},
		Rows: [][]string{
			{"Score", strconv.Itoa(result.Score) + "/100"},
			{"Strength", "**" + result.Strength.String() + "**"},
			{"Length", result.Length.Message},
		},
	})
	md.PlainText("")

	w.writeAlert(md, result)

	md.H2("Complexity Checks")
	md.PlainText("")
	rows := make([][]string, 0, 4)
	for _, row := range complexityRows(complexityOf(result)) {
		rows = append(rows, []string{row.label, checkMark(row.ok)})
	}
	md.Table(markdown.TableSet{
		Header: []string{"Check", "Result"},
		Rows:   rows,
	})
	md.PlainText("")

	md.H2("Warnings")
	md.PlainText("")
	if result.HasWarnings() {
		md.BulletList(result.Warnings...)
	} else {
		md.PlainText("No warnings.")
	}
	md.PlainText("")

	md.H2("Suggestions")
	md.PlainText("")
	md.BulletList(result.Suggestions...)
	md.PlainText("")

	return len(md.String()), md.Build()
}

// writeAlert picks an alert level from the strength.
func (w *MarkdownWriter) writeAlert(md *markdown.Markdown, result *model.AnalysisResult) {
	switch result.Strength {
	case model.StrengthVeryWeak:
		md.Cautionf("This password is %s (score %d). Do not use it.", result.Strength, result.Score)
	case model.StrengthWeak:
		md.Warningf("This password is %s (score %d). Consider a stronger one.", result.Strength, result.Score)
	case model.StrengthModerate:
		md.Importantf("This password is %s (score %d). It can be improved.", result.Strength, result.Score)
	case model.StrengthStrong:
		md.Note(fmt.Sprintf("This password is %s (score %d).", result.Strength, result.Score))
	default:
		md.Tip(fmt.Sprintf("This password is %s (score %d).", result.Strength, result.Score))
	}
	md.PlainText("")
}

// WriteBatch outputs a batch report with a distribution chart.
func (w *MarkdownWriter) WriteBatch(report *model.BatchReport) (int, error) {
	md := markdown.NewMarkdown(w.output)

	md.H1("Batch Password Strength Report")
	md.PlainText("")

	md.Table(markdown.TableSet{
		Header: []string{"Property", "Value"},
		Rows: [][]string{
			{"Source", "`" + report.Source + "`"},
			{"Analyzed", report.DateAnalyzed.Format("2006-01-02 15:04:05 MST")},
			{"Passwords", strconv.Itoa(len(report.Entries))},
			{"Average Score", strconv.FormatFloat(report.AverageScore, 'f', 1, 64)},
			{"With Warnings", strconv.Itoa(report.WarningCount)},
		},
	})
	md.PlainText("")

	md.H2("Strength Distribution")
	md.PlainText("")
	rows := make([][]string, 0, len(model.Strengths))
	for _, s := range model.Strengths {
		rows = append(rows, []string{s.String(), strconv.Itoa(report.Distribution.Count(s))})
	}
	md.Table(markdown.TableSet{
		Header: []string{"Strength", "Count"},
		Rows:   rows,
	})
	md.PlainText("")

	if report.HasEntries() {
		w.writePieChart(md, report)
	}

	md.H2("Results")
	md.PlainText("")
	if !report.HasEntries() {
		md.PlainText("No passwords analyzed.")
		md.PlainText("")
		return len(md.String()), md.Build()
	}

	results := make([][]string, 0, len(report.Entries))
	for _, e := range report.Entries {
		warnings := "-"
		if e.Result.HasWarnings() {
			warnings = strings.Join(e.Result.Warnings, "<br>")
		}
		results = append(results, []string{
			strconv.Itoa(e.Line),
			strconv.Itoa(e.Result.Score),
			e.Result.Strength.String(),
			warnings,
		})
	}
	md.Table(markdown.TableSet{
		Header: []string{"Line", "Score", "Strength", "Warnings"},
		Rows:   results,
	})
	md.PlainText("")

	return len(md.String()), md.Build()
}

// writePieChart writes a mermaid pie chart of non-zero strength counts.
func (w *MarkdownWriter) writePieChart(md *markdown.Markdown, report *model.BatchReport) {
	chart := piechart.NewPieChart(
		io.Discard,
		piechart.WithTitle("Strength Distribution"),
		piechart.WithShowData(true),
	)

	for _, s := range model.Strengths {
		if n := report.Distribution.Count(s); n > 0 {
			chart.LabelAndIntValue(s.String(), uint64(n))
		}
	}

	md.CodeBlocks(markdown.SyntaxHighlightMermaid, chart.String())
	md.PlainText("")
}
