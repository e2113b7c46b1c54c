package solver

import (
	"fmt"
	"sort"

	"github.com/mcoot/hangman-solver/internal/model"
)

// Strategy chooses the next letter to guess
type Strategy interface {
	// Name is the identifier callers use to select the strategy
	Name() string
	// NextGuess decides on a letter for the given word state
	NextGuess(req model.GuessRequest) (*model.Decision, error)
}

// Registry looks strategies up by name
type Registry struct {
	strategies map[string]Strategy
}

// NewRegistry creates a Registry holding the given strategies
func NewRegistry(strategies ...Strategy) *Registry {
	r := &Registry{strategies: make(map[string]Strategy, len(strategies))}
	for _, st := range strategies {
		r.strategies[st.Name()] = st
	}
	return r
}

// Get returns the named strategy; an empty name selects the default
func (r *Registry) Get(name string) (Strategy, error) {
	if name == "" {
		name = model.DefaultStrategy
	}
	st, ok := r.strategies[name]
	if !ok {
		return nil, fmt.Errorf("%w: %s", model.ErrUnknownStrategy, name)
	}
	return st, nil
}

// Names returns the registered strategy names in sorted order
func (r *Registry) Names() []string {
	names := make([]string, 0, len(r.strategies))
	for name := range r.strategies {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// parsedRequest is a validated GuessRequest
type parsedRequest struct {
	pattern model.Pattern
	guessed model.LetterSet
}

func parseRequest(req model.GuessRequest) (parsedRequest, error) {
	if req.GuessesRemaining < 0 {
		return parsedRequest{}, model.ErrNegativeGuesses
	}
	p, err := model.ParsePattern(req.Pattern)
	if err != nil {
		return parsedRequest{}, err
	}
	guessed, err := model.ParseLetters(req.GuessedLetters)
	if err != nil {
		return parsedRequest{}, err
	}
	return parsedRequest{pattern: p, guessed: guessed}, nil
}

func sample(words []string) []string {
	n := min(len(words), model.MaxSampleCandidates)
	if n == 0 {
		return nil
	}
	out := make([]string, n)
	copy(out, words[:n])
	return out
}
