package solver

import (
	"log/slog"

	"github.com/mcoot/hangman-solver/internal/model"
)

// WordSource supplies dictionary words by length
type WordSource interface {
	WordsOfLength(n int) []string
}

// Solver is the letter-frequency strategy. It keeps no per-game state: every
// decision filters the full dictionary using only the request.
type Solver struct {
	words  WordSource
	logger *slog.Logger
}

// New creates a new Solver over the given dictionary
func New(words WordSource, logger *slog.Logger) *Solver {
	return &Solver{
		words:  words,
		logger: logger.With(slog.String("component", "solver")),
	}
}

// Ensure Solver implements Strategy
var _ Strategy = (*Solver)(nil)

// Name implements Strategy
func (s *Solver) Name() string {
	return model.StrategyFrequency
}

// NextGuess implements Strategy. GuessesRemaining is validated but does not
// affect the choice.
func (s *Solver) NextGuess(req model.GuessRequest) (*model.Decision, error) {
	in, err := parseRequest(req)
	if err != nil {
		return nil, err
	}

	d, err := Decide(in.pattern, in.guessed, s.words.WordsOfLength(in.pattern.Len()))
	if err != nil {
		s.logger.Warn("no letter left to guess",
			slog.String("pattern", in.pattern.String()),
			slog.String("guessed", in.guessed.String()),
		)
		return nil, err
	}

	attrs := []any{
		slog.String("pattern", in.pattern.String()),
		slog.String("guessed", in.guessed.String()),
		slog.Int("candidates", d.CandidateCount),
		slog.String("rule", string(d.Rule)),
		slog.String("letter", string(d.Letter)),
	}
	if d.CandidateCount <= model.MaxSampleCandidates {
		attrs = append(attrs, slog.Any("words", d.Candidates))
	}
	if d.Rule == model.RuleScored {
		attrs = append(attrs, slog.Float64("score", d.Score))
	}
	s.logger.Debug("guess decided", attrs...)

	return d, nil
}

// Decide runs the decision chain over the given dictionary words:
//  1. a single remaining candidate reveals its first unguessed letter
//  2. otherwise the best scored letter across the candidates
//  3. otherwise FallbackLetter
func Decide(p model.Pattern, guessed model.LetterSet, words []string) (*model.Decision, error) {
	candidates := Filter(p, guessed, words)
	d := &model.Decision{
		CandidateCount: len(candidates),
		Candidates:     sample(candidates),
	}

	if len(candidates) == 1 {
		for _, r := range candidates[0] {
			if !guessed.Contains(r) {
				d.Letter = r
				d.Rule = model.RuleSingleCandidate
				return d, nil
			}
		}
		// Every letter already guessed; fall through to the remaining rules
	}

	if len(candidates) > 0 {
		scores := Score(candidates, guessed)
		if letter, score, ok := scores.Best(); ok {
			d.Letter = letter
			d.Rule = model.RuleScored
			d.Score = score
			d.Ranking = scores.Ranked()
			return d, nil
		}
	}

	letter, rule, err := FallbackLetter(guessed)
	if err != nil {
		return nil, err
	}
	d.Letter = letter
	d.Rule = rule
	return d, nil
}
