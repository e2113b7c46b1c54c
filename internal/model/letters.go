package model

import (
	"fmt"
	"strings"
)

// Alphabet is the set of letters a guess can be drawn from, in order
const Alphabet = "abcdefghijklmnopqrstuvwxyz"

// LetterSet is a set of lowercase letters a-z stored as a bitmask
type LetterSet uint32

// IsLetter reports whether r is a lowercase letter a-z
func IsLetter(r rune) bool {
	return r >= 'a' && r <= 'z'
}

// NewLetterSet builds a set from the given letters, ignoring anything outside a-z
func NewLetterSet(letters ...rune) LetterSet {
	var s LetterSet
	for _, r := range letters {
		s = s.Add(r)
	}
	return s
}

// ParseLetters builds a set from caller-supplied strings. Each entry must be a
// single letter once trimmed; upper case is folded.
func ParseLetters(values []string) (LetterSet, error) {
	var s LetterSet
	for _, v := range values {
		v = strings.ToLower(strings.TrimSpace(v))
		if len(v) != 1 || !IsLetter(rune(v[0])) {
			return 0, fmt.Errorf("%w: %q", ErrInvalidLetter, v)
		}
		s = s.Add(rune(v[0]))
	}
	return s, nil
}

// Add returns the set with r included
func (s LetterSet) Add(r rune) LetterSet {
	if !IsLetter(r) {
		return s
	}
	return s | 1<<(r-'a')
}

// Contains reports whether r is in the set
func (s LetterSet) Contains(r rune) bool {
	if !IsLetter(r) {
		return false
	}
	return s&(1<<(r-'a')) != 0
}

// Without returns the letters of s that are not in other
func (s LetterSet) Without(other LetterSet) LetterSet {
	return s &^ other
}

// Union returns the letters in either set
func (s LetterSet) Union(other LetterSet) LetterSet {
	return s | other
}

// Len returns the number of letters in the set
func (s LetterSet) Len() int {
	n := 0
	for v := s; v != 0; v &= v - 1 {
		n++
	}
	return n
}

// IsEmpty reports whether the set has no letters
func (s LetterSet) IsEmpty() bool {
	return s == 0
}

// Letters returns the members in alphabetical order
func (s LetterSet) Letters() []rune {
	letters := make([]rune, 0, s.Len())
	for _, r := range Alphabet {
		if s.Contains(r) {
			letters = append(letters, r)
		}
	}
	return letters
}

// Strings returns the members as single-character strings in alphabetical order
func (s LetterSet) Strings() []string {
	out := make([]string, 0, s.Len())
	for _, r := range s.Letters() {
		out = append(out, string(r))
	}
	return out
}

// String implements fmt.Stringer
func (s LetterSet) String() string {
	return string(s.Letters())
}
