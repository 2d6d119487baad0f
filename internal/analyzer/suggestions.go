package analyzer

import "github.com/nao1215/passcheck/internal/model"

// Suggest derives actionable suggestions from the check results.
// When nothing needs improving it returns a single approval message.
func Suggest(length model.LengthVerdict, complexity model.ComplexityFlags, warnings []string) []string {
	suggestions := make([]string, 0, 6)

	if !length.MeetsMinimum {
		suggestions = append(suggestions, SuggestMinLength)
	}

	missing := []struct {
		present    bool
		suggestion string
	}{
		{complexity.HasLowercase, SuggestLowercase},
		{complexity.HasUppercase, SuggestUppercase},
		{complexity.HasDigit, SuggestDigit},
		{complexity.HasSpecial, SuggestSpecial},
	}
	for _, m := range missing {
		if !m.present {
			suggestions = append(suggestions, m.suggestion)
		}
	}

	if len(warnings) > 0 {
		suggestions = append(suggestions, SuggestAvoidPatterns)
	}

	if len(suggestions) == 0 {
		suggestions = append(suggestions, SuggestLooksGood)
	}

	return suggestions
}
