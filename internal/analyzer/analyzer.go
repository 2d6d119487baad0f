package analyzer

import (
	"github.com/nao1215/passcheck/internal/model"
	"github.com/nao1215/passcheck/internal/wordlist"
)

// Analyzer evaluates password strength against a fixed common-password set.
type Analyzer struct {
	// common is the read-only set of known weak passwords.
	common *wordlist.Set
}

// Option configures an Analyzer.
type Option func(*Analyzer)

// WithCommonPasswords sets the common-password set used for membership checks.
// A nil set keeps the built-in defaults.
func WithCommonPasswords(set *wordlist.Set) Option {
	return func(a *Analyzer) {
		if set != nil {
			a.common = set
		}
	}
}

// New creates an Analyzer. Without options it uses wordlist.Default.
func New(opts ...Option) *Analyzer {
	a := &Analyzer{}
	for _, opt := range opts {
		opt(a)
	}
	if a.common == nil {
		a.common = wordlist.Default()
	}
	return a
}

// CommonPasswordCount returns the size of the common-password set in use.
func (a *Analyzer) CommonPasswordCount() int {
	return a.common.Len()
}

// Analyze runs every check on password and returns a fresh result.
// It never fails; an empty password yields a fixed Very Weak result.
func (a *Analyzer) Analyze(password string) *model.AnalysisResult {
	if password == "" {
		return emptyResult()
	}

	length := CheckLength(password)
	complexity := CheckComplexity(password)
	warnings := a.CheckPatterns(password)
	score := computeScore(passwordLength(password), complexity.Count(), len(warnings))

	return &model.AnalysisResult{
		Score:       score,
		Strength:    model.StrengthFromScore(score),
		Length:      length,
		Complexity:  &complexity,
		Warnings:    warnings,
		Suggestions: Suggest(length, complexity, warnings),
	}
}

// Score returns only the numeric score of password.
func (a *Analyzer) Score(password string) int {
	if password == "" {
		return 0
	}
	complexity := CheckComplexity(password)
	return computeScore(passwordLength(password), complexity.Count(), len(a.CheckPatterns(password)))
}

// emptyResult is returned for the empty password without running any check.
func emptyResult() *model.AnalysisResult {
	return &model.AnalysisResult{
		Score:    0,
		Strength: model.StrengthVeryWeak,
		Length: model.LengthVerdict{
			MeetsMinimum: false,
			Message:      MsgLengthEmpty,
		},
		Complexity:  nil,
		Warnings:    []string{WarnEmpty},
		Suggestions: []string{SuggestEnterPassword},
	}
}
