package model

import "time"

// BatchEntry is the analysis result for one line of a batch input.
// The password itself is deliberately not part of the entry.
type BatchEntry struct {
	// Line is the 1-based line number of the password in the input.
	Line int `json:"line"`

	// Result is the analysis outcome for that line.
	Result *AnalysisResult `json:"result"`
}

// Distribution counts batch entries per strength level.
type Distribution struct {
	VeryWeak   int `json:"very_weak"`
	Weak       int `json:"weak"`
	Moderate   int `json:"moderate"`
	Strong     int `json:"strong"`
	VeryStrong int `json:"very_strong"`
}

// Add increments the counter for the given strength.
func (d *Distribution) Add(s Strength) {
	switch s {
	case StrengthVeryWeak:
		d.VeryWeak++
	case StrengthWeak:
		d.Weak++
	case StrengthModerate:
		d.Moderate++
	case StrengthStrong:
		d.Strong++
	case StrengthVeryStrong:
		d.VeryStrong++
	}
}

// Count returns the counter for the given strength.
func (d Distribution) Count(s Strength) int {
	switch s {
	case StrengthVeryWeak:
		return d.VeryWeak
	case StrengthWeak:
		return d.Weak
	case StrengthModerate:
		return d.Moderate
	case StrengthStrong:
		return d.Strong
	case StrengthVeryStrong:
		return d.VeryStrong
	default:
		return 0
	}
}

// Total returns the sum of all counters.
func (d Distribution) Total() int {
	return d.VeryWeak + d.Weak + d.Moderate + d.Strong + d.VeryStrong
}

// BatchReport aggregates the results of analyzing many passwords.
type BatchReport struct {
	// Source names the input the passwords were read from (typically a file path).
	Source string `json:"source"`

	// DateAnalyzed is when the batch analysis finished.
	DateAnalyzed time.Time `json:"date_analyzed"`

	// Entries holds one entry per analyzed line, in input order.
	Entries []BatchEntry `json:"entries"`

	// Distribution counts entries per strength level.
	Distribution Distribution `json:"distribution"`

	// AverageScore is the mean score across all entries, 0 for an empty batch.
	AverageScore float64 `json:"average_score"`

	// WarningCount is the number of entries with at least one warning.
	WarningCount int `json:"warning_count"`
}

// NewBatchReport builds a BatchReport from entries and computes its summary fields.
// Entries with a nil result are skipped.
func NewBatchReport(source string, entries []BatchEntry) *BatchReport {
	report := &BatchReport{
		Source:       source,
		DateAnalyzed: time.Now(),
		Entries:      make([]BatchEntry, 0, len(entries)),
	}

	total := 0
	for _, e := range entries {
		if e.Result == nil {
			continue
		}
		report.Entries = append(report.Entries, e)
		report.Distribution.Add(e.Result.Strength)
		total += e.Result.Score
		if e.Result.HasWarnings() {
			report.WarningCount++
		}
	}

	if len(report.Entries) > 0 {
		report.AverageScore = float64(total) / float64(len(report.Entries))
	}

	return report
}

// HasEntries reports whether the batch contains any results.
func (r *BatchReport) HasEntries() bool {
	return len(r.Entries) > 0
}
