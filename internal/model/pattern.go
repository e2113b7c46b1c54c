package model

import (
	"fmt"
	"strings"
)

// Tokens that mark an unrevealed slot in a pattern
const (
	BlankToken    = "__"
	BlankTokenAlt = "*"
)

// Pattern is the revealed state of a hidden word. Each slot holds the revealed
// letter, or 0 when the slot is still blank.
type Pattern []rune

// ParsePattern parses whitespace-separated tokens, one per letter slot.
// "__" and "*" are blanks; any other token must be a single letter.
func ParsePattern(s string) (Pattern, error) {
	tokens := strings.Fields(strings.ToLower(strings.TrimSpace(s)))
	if len(tokens) == 0 {
		return nil, fmt.Errorf("%w: no letter slots", ErrInvalidPattern)
	}

	p := make(Pattern, len(tokens))
	for i, tok := range tokens {
		switch {
		case tok == BlankToken || tok == BlankTokenAlt:
			p[i] = 0
		case len(tok) == 1 && IsLetter(rune(tok[0])):
			p[i] = rune(tok[0])
		default:
			return nil, fmt.Errorf("%w: slot %d has token %q", ErrInvalidPattern, i+1, tok)
		}
	}
	return p, nil
}

// BlankPattern returns a pattern of n blank slots
func BlankPattern(n int) Pattern {
	if n <= 0 {
		return nil
	}
	return make(Pattern, n)
}

// Len returns the number of slots, which is the required word length
func (p Pattern) Len() int {
	return len(p)
}

// RevealedLetters returns the distinct letters shown in the pattern
func (p Pattern) RevealedLetters() LetterSet {
	var s LetterSet
	for _, r := range p {
		s = s.Add(r)
	}
	return s
}

// IsComplete reports whether every slot is revealed
func (p Pattern) IsComplete() bool {
	for _, r := range p {
		if r == 0 {
			return false
		}
	}
	return len(p) > 0
}

// Matches reports whether word has the pattern's length and agrees with every
// revealed slot
func (p Pattern) Matches(word string) bool {
	if len(word) != len(p) {
		return false
	}
	for i, r := range p {
		if r != 0 && rune(word[i]) != r {
			return false
		}
	}
	return true
}

// Reveal returns a copy of p with every slot of word holding letter revealed
func (p Pattern) Reveal(word string, letter rune) Pattern {
	out := make(Pattern, len(p))
	copy(out, p)
	for i := 0; i < len(word) && i < len(out); i++ {
		if rune(word[i]) == letter {
			out[i] = letter
		}
	}
	return out
}

// String renders the pattern in its canonical token form, e.g. "f __ i __ h t"
func (p Pattern) String() string {
	tokens := make([]string, len(p))
	for i, r := range p {
		if r == 0 {
			tokens[i] = BlankToken
		} else {
			tokens[i] = string(r)
		}
	}
	return strings.Join(tokens, " ")
}
