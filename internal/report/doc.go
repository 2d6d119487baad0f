// Package report renders analysis results for people and tools.
//
// This package contains writers for different output formats:
//   - SimpleWriter: human-readable text for terminal display
//   - JSONWriter: structured JSON for tool integration
//   - MarkdownWriter: Markdown with tables, alerts and a mermaid chart
//
// Writers take results from the model package and never see the password
// that produced them, so no output format can leak it.
package report
