package simulator

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/mcoot/hangman-solver/internal/model"
	"github.com/mcoot/hangman-solver/internal/services/solver"
)

// DefaultMaxWrong is the classic hangman allowance of wrong guesses
const DefaultMaxWrong = 6

// Turn is one guess made during a simulated game
type Turn struct {
	Pattern        string
	Letter         rune
	Hit            bool
	Rule           model.DecisionRule
	CandidateCount int
}

// Result summarises a simulated game
type Result struct {
	Secret       string
	Strategy     string
	Won          bool
	WrongGuesses int
	MaxWrong     int
	FinalPattern string
	Turns        []Turn
}

// Simulator plays complete games against a known secret word, feeding the
// strategy exactly what a human player would report.
type Simulator struct {
	strategy solver.Strategy
	logger   *slog.Logger
}

// New creates a Simulator driving the given strategy
func New(strategy solver.Strategy, logger *slog.Logger) *Simulator {
	return &Simulator{
		strategy: strategy,
		logger:   logger.With(slog.String("component", "simulator")),
	}
}

// Play runs a game until the word is revealed or maxWrong wrong guesses have
// been made. A non-positive maxWrong uses DefaultMaxWrong.
func (s *Simulator) Play(ctx context.Context, secret string, maxWrong int) (*Result, error) {
	secret = strings.ToLower(strings.TrimSpace(secret))
	if secret == "" {
		return nil, fmt.Errorf("%w: empty secret", model.ErrInvalidWord)
	}
	for _, r := range secret {
		if !model.IsLetter(r) {
			return nil, fmt.Errorf("%w: %q", model.ErrInvalidWord, secret)
		}
	}
	if maxWrong <= 0 {
		maxWrong = DefaultMaxWrong
	}

	result := &Result{
		Secret:   secret,
		Strategy: s.strategy.Name(),
		MaxWrong: maxWrong,
	}
	pattern := model.BlankPattern(len(secret))
	var guessed model.LetterSet

	for !pattern.IsComplete() && result.WrongGuesses < maxWrong {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		decision, err := s.strategy.NextGuess(model.GuessRequest{
			Pattern:          pattern.String(),
			GuessedLetters:   guessed.Strings(),
			GuessesRemaining: maxWrong - result.WrongGuesses,
		})
		if err != nil {
			return nil, err
		}

		guessed = guessed.Add(decision.Letter)
		hit := strings.ContainsRune(secret, decision.Letter)
		if hit {
			pattern = pattern.Reveal(secret, decision.Letter)
		} else {
			result.WrongGuesses++
		}

		result.Turns = append(result.Turns, Turn{
			Pattern:        pattern.String(),
			Letter:         decision.Letter,
			Hit:            hit,
			Rule:           decision.Rule,
			CandidateCount: decision.CandidateCount,
		})
	}

	result.Won = pattern.IsComplete()
	result.FinalPattern = pattern.String()

	s.logger.Debug("game finished",
		slog.String("strategy", result.Strategy),
		slog.Bool("won", result.Won),
		slog.Int("turns", len(result.Turns)),
		slog.Int("wrong_guesses", result.WrongGuesses),
	)
	return result, nil
}
