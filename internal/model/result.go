package model

// LengthVerdict is the outcome of the length check.
type LengthVerdict struct {
	// MeetsMinimum reports whether the password reaches the minimum length.
	MeetsMinimum bool `json:"meets_minimum"`

	// Message describes the length classification.
	Message string `json:"message"`
}

// ComplexityFlags records which character classes appear in a password.
// Upper and lower case flags are case-sensitive by definition.
type ComplexityFlags struct {
	HasLowercase bool `json:"has_lowercase"`
	HasUppercase bool `json:"has_uppercase"`
	HasDigit     bool `json:"has_digit"`
	HasSpecial   bool `json:"has_special"`
}

// Count returns the number of character classes present.
func (c *ComplexityFlags) Count() int {
	if c == nil {
		return 0
	}
	n := 0
	for _, ok := range []bool{c.HasLowercase, c.HasUppercase, c.HasDigit, c.HasSpecial} {
		if ok {
			n++
		}
	}
	return n
}

// AnalysisResult is the aggregate output of analyzing one password.
// A result is created fresh for every analysis and is not modified afterwards.
type AnalysisResult struct {
	// Score is the strength score, always within [0, 100].
	Score int `json:"score"`

	// Strength is derived from Score via StrengthFromScore.
	Strength Strength `json:"strength"`

	// Length is the outcome of the length check.
	Length LengthVerdict `json:"length"`

	// Complexity holds the character class flags.
	// It is nil when no checks were run, which only happens for an empty password.
	Complexity *ComplexityFlags `json:"complexity,omitempty"`

	// Warnings lists detected weaknesses in detection order. Never nil.
	Warnings []string `json:"warnings"`

	// Suggestions lists actionable recommendations. Never nil.
	Suggestions []string `json:"suggestions"`
}

// HasWarnings reports whether any weakness was detected.
func (r *AnalysisResult) HasWarnings() bool {
	return len(r.Warnings) > 0
}
