package model

import "fmt"

// Strength is the qualitative bucket derived from a numeric score.
// Values are ordered from weakest to strongest so they can be compared.
type Strength int

const (
	// StrengthVeryWeak covers scores in [0, 30).
	StrengthVeryWeak Strength = iota
	// StrengthWeak covers scores in [30, 50).
	StrengthWeak
	// StrengthModerate covers scores in [50, 70).
	StrengthModerate
	// StrengthStrong covers scores in [70, 85).
	StrengthStrong
	// StrengthVeryStrong covers scores in [85, 100].
	StrengthVeryStrong
)

// Lower bounds of each strength band. A score belongs to the highest band
// whose lower bound it reaches.
const (
	WeakThreshold       = 30
	ModerateThreshold   = 50
	StrongThreshold     = 70
	VeryStrongThreshold = 85
)

// Strengths lists every strength level from weakest to strongest.
var Strengths = []Strength{
	StrengthVeryWeak,
	StrengthWeak,
	StrengthModerate,
	StrengthStrong,
	StrengthVeryStrong,
}

// String returns the human-readable label of the strength level.
func (s Strength) String() string {
	switch s {
	case StrengthVeryWeak:
		return "Very Weak"
	case StrengthWeak:
		return "Weak"
	case StrengthModerate:
		return "Moderate"
	case StrengthStrong:
		return "Strong"
	case StrengthVeryStrong:
		return "Very Strong"
	default:
		return "Unknown"
	}
}

// MarshalText encodes the strength as its label so JSON output stays readable.
func (s Strength) MarshalText() ([]byte, error) {
	if s < StrengthVeryWeak || s > StrengthVeryStrong {
		return nil, fmt.Errorf("invalid strength value: %d", int(s))
	}
	return []byte(s.String()), nil
}

// UnmarshalText decodes a strength label produced by MarshalText.
func (s *Strength) UnmarshalText(text []byte) error {
	for _, candidate := range Strengths {
		if candidate.String() == string(text) {
			*s = candidate
			return nil
		}
	}
	return fmt.Errorf("unknown strength label: %q", string(text))
}

// StrengthFromScore maps a score to its strength level.
// Scores below zero are treated as Very Weak and scores above 100 as Very Strong.
func StrengthFromScore(score int) Strength {
	switch {
	case score < WeakThreshold:
		return StrengthVeryWeak
	case score < ModerateThreshold:
		return StrengthWeak
	case score < StrongThreshold:
		return StrengthModerate
	case score < VeryStrongThreshold:
		return StrengthStrong
	default:
		return StrengthVeryStrong
	}
}
