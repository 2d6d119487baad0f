package analyzer

import (
	"unicode/utf8"

	"github.com/nao1215/passcheck/internal/model"
)

// Length thresholds in code points.
const (
	// MinLength is the shortest acceptable password.
	MinLength = 8
	// GoodLength earns the "excellent" verdict and extra points.
	GoodLength = 12
	// LongLength earns the final length bonus.
	LongLength = 16
)

// passwordLength counts Unicode code points.
func passwordLength(password string) int {
	return utf8.RuneCountInString(password)
}

// CheckLength classifies the length of password.
func CheckLength(password string) model.LengthVerdict {
	n := passwordLength(password)
	switch {
	case n < MinLength:
		return model.LengthVerdict{MeetsMinimum: false, Message: MsgLengthTooShort}
	case n >= GoodLength:
		return model.LengthVerdict{MeetsMinimum: true, Message: MsgLengthExcellent}
	default:
		return model.LengthVerdict{MeetsMinimum: true, Message: MsgLengthGood}
	}
}
