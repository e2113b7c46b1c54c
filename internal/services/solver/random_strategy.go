package solver

import (
	"github.com/mcoot/hangman-solver/internal/dependencies/random"
	"github.com/mcoot/hangman-solver/internal/model"
)

// RandomStrategy guesses a uniformly random unguessed letter. It ignores the
// dictionary when choosing, but still reports how many candidates remain.
type RandomStrategy struct {
	words  WordSource
	random random.Random
}

// NewRandomStrategy creates a new RandomStrategy
func NewRandomStrategy(words WordSource, rnd random.Random) *RandomStrategy {
	return &RandomStrategy{words: words, random: rnd}
}

// Ensure RandomStrategy implements Strategy
var _ Strategy = (*RandomStrategy)(nil)

// Name implements Strategy
func (s *RandomStrategy) Name() string {
	return model.StrategyRandom
}

// NextGuess implements Strategy
func (s *RandomStrategy) NextGuess(req model.GuessRequest) (*model.Decision, error) {
	in, err := parseRequest(req)
	if err != nil {
		return nil, err
	}

	var open []rune
	for _, r := range model.Alphabet {
		if !in.guessed.Contains(r) {
			open = append(open, r)
		}
	}
	if len(open) == 0 {
		return nil, model.ErrAlphabetExhausted
	}

	candidates := Filter(in.pattern, in.guessed, s.words.WordsOfLength(in.pattern.Len()))
	return &model.Decision{
		Letter:         open[s.random.Intn(len(open))],
		Rule:           model.RuleRandom,
		CandidateCount: len(candidates),
		Candidates:     sample(candidates),
	}, nil
}
