package wordlist

import (
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// defaultWords are well-known weak passwords used when no word list is available.
var defaultWords = []string{
	"password", "123456", "password123", "admin", "qwerty",
	"letmein", "welcome", "monkey", "1234567890", "abc123",
	"password1", "qwerty123", "welcome123", "admin123",
}

// Set is an immutable set of lowercase common passwords.
type Set struct {
	words map[string]struct{}
}

// NewSet builds a Set from words. Words are trimmed and lowercased;
// blank words are ignored and duplicates collapse.
func NewSet(words ...string) *Set {
	s := &Set{words: make(map[string]struct{}, len(words))}
	for _, w := range words {
		w = Normalize(strings.TrimSpace(w))
		if w == "" {
			continue
		}
		s.words[w] = struct{}{}
	}
	return s
}

// Default returns a Set containing the built-in weak passwords.
func Default() *Set {
	return NewSet(defaultWords...)
}

// DefaultWords returns a copy of the built-in weak password list.
func DefaultWords() []string {
	out := make([]string, len(defaultWords))
	copy(out, defaultWords)
	return out
}

// Contains reports whether password, compared case-insensitively, is in the set.
func (s *Set) Contains(password string) bool {
	if s == nil {
		return false
	}
	_, ok := s.words[Normalize(password)]
	return ok
}

// Len returns the number of distinct words in the set.
func (s *Set) Len() int {
	if s == nil {
		return 0
	}
	return len(s.words)
}

// Normalize lowercases s using Unicode case mapping.
// A Caser keeps internal state, so a fresh one is created per call.
func Normalize(s string) string {
	return cases.Lower(language.Und).String(s)
}
