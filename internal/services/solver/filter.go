package solver

import (
	"strings"

	"github.com/mcoot/hangman-solver/internal/model"
)

// Filter returns the candidates consistent with the pattern and the guessed
// letters, in their original order. A word survives when it has the pattern's
// length, agrees with every revealed slot, and contains none of the wrong
// guesses (guessed letters that the pattern does not show).
func Filter(p model.Pattern, guessed model.LetterSet, candidates []string) []string {
	if p.Len() == 0 || len(candidates) == 0 {
		return nil
	}

	wrong := guessed.Without(p.RevealedLetters())
	excluded := string(wrong.Letters())

	var out []string
	for _, word := range candidates {
		if !p.Matches(word) {
			continue
		}
		if excluded != "" && strings.ContainsAny(word, excluded) {
			continue
		}
		out = append(out, word)
	}
	return out
}
