package batch

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/nao1215/passcheck/internal/model"
)

// Input holds passwords read from a batch file and the line each came from.
type Input struct {
	Passwords []string
	Lines     []int
}

// ReadInput reads one password per line from r. Empty lines are skipped and
// trailing carriage returns are removed. Any other whitespace is part of the
// password, so a line of spaces is analyzed like any other line.
func ReadInput(r io.Reader) (*Input, error) {
	in := &Input{}
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)

	line := 0
	for scanner.Scan() {
		line++
		pw := strings.TrimSuffix(scanner.Text(), "\r")
		if pw == "" {
			continue
		}
		in.Passwords = append(in.Passwords, pw)
		in.Lines = append(in.Lines, line)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("failed to read batch input: %w", err)
	}

	return in, nil
}

// Entries pairs results from Process with their input line numbers.
func (in *Input) Entries(results []*model.AnalysisResult) []model.BatchEntry {
	entries := make([]model.BatchEntry, 0, len(results))
	for i, r := range results {
		if i >= len(in.Lines) {
			break
		}
		entries = append(entries, model.BatchEntry{Line: in.Lines[i], Result: r})
	}
	return entries
}
