package model

import (
	"encoding/json"
	"testing"
)

// TestStrengthString tests the String method of Strength.
func TestStrengthString(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		strength Strength
		expected string
	}{
		{StrengthVeryWeak, "Very Weak"},
		{StrengthWeak, "Weak"},
		{StrengthModerate, "Moderate"},
		{StrengthStrong, "Strong"},
		{StrengthVeryStrong, "Very Strong"},
		{Strength(999), "Unknown"},
	}

	for _, tc := range testCases {
		t.Run(tc.expected, func(t *testing.T) {
			t.Parallel()
			if tc.strength.String() != tc.expected {
				t.Errorf("got %q, expected %q", tc.strength.String(), tc.expected)
			}
		})
	}
}

// TestStrengthFromScore tests the band boundaries of StrengthFromScore.
func TestStrengthFromScore(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		score    int
		expected Strength
	}{
		{-10, StrengthVeryWeak},
		{0, StrengthVeryWeak},
		{29, StrengthVeryWeak},
		{30, StrengthWeak},
		{49, StrengthWeak},
		{50, StrengthModerate},
		{69, StrengthModerate},
		{70, StrengthStrong},
		{84, StrengthStrong},
		{85, StrengthVeryStrong},
		{100, StrengthVeryStrong},
		{150, StrengthVeryStrong},
	}

	for _, tc := range testCases {
		t.Run(tc.expected.String(), func(t *testing.T) {
			t.Parallel()
			if got := StrengthFromScore(tc.score); got != tc.expected {
				t.Errorf("StrengthFromScore(%d) = %v, expected %v", tc.score, got, tc.expected)
			}
		})
	}
}

// TestStrengthFromScoreMonotonic tests that a higher score never yields a weaker label.
func TestStrengthFromScoreMonotonic(t *testing.T) {
	t.Parallel()

	prev := StrengthFromScore(0)
	for score := 1; score <= 100; score++ {
		current := StrengthFromScore(score)
		if current < prev {
			t.Fatalf("strength decreased at score %d: %v -> %v", score, prev, current)
		}
		prev = current
	}
}

// TestStrengthOrdering tests that strength levels are ordered correctly.
func TestStrengthOrdering(t *testing.T) {
	t.Parallel()

	for i := 1; i < len(Strengths); i++ {
		if Strengths[i-1] >= Strengths[i] {
			t.Errorf("expected %v < %v", Strengths[i-1], Strengths[i])
		}
	}
}

// TestStrengthJSON tests that strengths are encoded as labels.
func TestStrengthJSON(t *testing.T) {
	t.Parallel()

	t.Run("marshals label", func(t *testing.T) {
		t.Parallel()

		data, err := json.Marshal(StrengthModerate)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if string(data) != `"Moderate"` {
			t.Errorf("got %s, expected %q", data, "Moderate")
		}
	})

	t.Run("unmarshals label", func(t *testing.T) {
		t.Parallel()

		var s Strength
		if err := json.Unmarshal([]byte(`"Very Strong"`), &s); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if s != StrengthVeryStrong {
			t.Errorf("got %v, expected %v", s, StrengthVeryStrong)
		}
	})

	t.Run("rejects unknown label", func(t *testing.T) {
		t.Parallel()

		var s Strength
		if err := json.Unmarshal([]byte(`"Unbreakable"`), &s); err == nil {
			t.Error("expected error for unknown label")
		}
	})

	t.Run("rejects out of range value", func(t *testing.T) {
		t.Parallel()

		if _, err := json.Marshal(Strength(42)); err == nil {
			t.Error("expected error for out of range strength")
		}
	})
}
