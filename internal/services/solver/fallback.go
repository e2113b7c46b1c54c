package solver

import "github.com/mcoot/hangman-solver/internal/model"

// FrequencyOrder is English letters from most to least common
const FrequencyOrder = "etaoinshrdlcumwfgypbvkjxqz"

// FallbackLetter picks a letter when the candidates give no signal: the first
// unguessed letter by English frequency, then any unguessed letter a-z.
// It fails with ErrAlphabetExhausted once every letter has been guessed.
func FallbackLetter(guessed model.LetterSet) (rune, model.DecisionRule, error) {
	for _, r := range FrequencyOrder {
		if !guessed.Contains(r) {
			return r, model.RuleFrequencyFallback, nil
		}
	}
	for _, r := range model.Alphabet {
		if !guessed.Contains(r) {
			return r, model.RuleAlphabetFallback, nil
		}
	}
	return 0, "", model.ErrAlphabetExhausted
}
