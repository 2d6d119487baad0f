package analyzer

import (
	"strings"

	"github.com/nao1215/passcheck/internal/wordlist"
)

// sequentialPatterns are short ascending runs that weaken a password.
var sequentialPatterns = []string{"123", "abc", "qwe"}

// keyboardPatterns are runs of adjacent keys.
var keyboardPatterns = []string{"qwerty", "asdf", "zxcv", "1234", "4567"}

// minRepeatRun is the run length at which a repeated character is reported.
const minRepeatRun = 3

// CheckPatterns returns the warnings for password in a fixed order:
// common password, sequential characters, repeated characters, keyboard patterns.
// Each warning appears at most once.
func (a *Analyzer) CheckPatterns(password string) []string {
	warnings := make([]string, 0, 4)
	lower := wordlist.Normalize(password)

	if a.common.Contains(lower) {
		warnings = append(warnings, WarnCommonPassword)
	}
	if containsAny(lower, sequentialPatterns) {
		warnings = append(warnings, WarnSequential)
	}
	if hasRepeatedRun(password, minRepeatRun) {
		warnings = append(warnings, WarnRepeated)
	}
	if containsAny(lower, keyboardPatterns) {
		warnings = append(warnings, WarnKeyboard)
	}

	return warnings
}

// containsAny reports whether s contains any of patterns, stopping at the first hit.
func containsAny(s string, patterns []string) bool {
	for _, p := range patterns {
		if strings.Contains(s, p) {
			return true
		}
	}
	return false
}

// hasRepeatedRun reports whether s has a run of at least n identical code points.
// Newlines never form a run.
func hasRepeatedRun(s string, n int) bool {
	var prev rune
	run := 0
	for _, r := range s {
		if r == '\n' {
			run = 0
			continue
		}
		if run > 0 && r == prev {
			run++
		} else {
			prev = r
			run = 1
		}
		if run >= n {
			return true
		}
	}
	return false
}
