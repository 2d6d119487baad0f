package analyzer

import (
	"strings"
	"unicode"

	"github.com/nao1215/passcheck/internal/model"
)

// specialChars is the fixed set of characters counted as special.
const specialChars = `!@#$%^&*(),.?":{}|<>`

// CheckComplexity reports which character classes appear in password.
// All four classes are evaluated independently.
func CheckComplexity(password string) model.ComplexityFlags {
	var flags model.ComplexityFlags
	for _, r := range password {
		switch {
		case r >= 'a' && r <= 'z':
			flags.HasLowercase = true
		case r >= 'A' && r <= 'Z':
			flags.HasUppercase = true
		case unicode.IsDigit(r):
			flags.HasDigit = true
		case strings.ContainsRune(specialChars, r):
			flags.HasSpecial = true
		}
	}
	return flags
}
