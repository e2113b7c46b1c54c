package response

import (
	"time"

	"github.com/mcoot/hangman-solver/internal/model"
)

// LetterScore represents one scored letter
type LetterScore struct {
	Letter string  `json:"letter"`
	Score  float64 `json:"score"`
}

// Decision represents a guess decision in API responses
type Decision struct {
	NextGuess      string        `json:"next_guess"`
	Strategy       string        `json:"strategy"`
	Rule           string        `json:"rule"`
	CandidateCount int           `json:"candidate_count"`
	Score          float64       `json:"score"`
	Candidates     []string      `json:"candidates"`
	Ranking        []LetterScore `json:"ranking,omitempty"`
}

// DecisionFromModel converts a model.Decision
func DecisionFromModel(d *model.Decision, strategy string) Decision {
	candidates := d.Candidates
	if candidates == nil {
		candidates = []string{}
	}

	var ranking []LetterScore
	for _, ls := range d.Ranking {
		ranking = append(ranking, LetterScore{Letter: string(ls.Letter), Score: ls.Score})
	}

	return Decision{
		NextGuess:      string(d.Letter),
		Strategy:       strategy,
		Rule:           string(d.Rule),
		CandidateCount: d.CandidateCount,
		Score:          d.Score,
		Candidates:     candidates,
		Ranking:        ranking,
	}
}

// Turn represents one recorded session decision
type Turn struct {
	Pattern          string    `json:"pattern"`
	GuessedLetters   string    `json:"guessed_letters"`
	GuessesRemaining int       `json:"guesses_remaining"`
	Letter           string    `json:"letter"`
	Rule             string    `json:"rule"`
	CandidateCount   int       `json:"candidate_count"`
	DecidedAt        time.Time `json:"decided_at"`
}

// Session represents a solver session in API responses
type Session struct {
	ID               string    `json:"id"`
	Strategy         string    `json:"strategy"`
	State            string    `json:"state"`
	WordLength       int       `json:"word_length"`
	Pattern          string    `json:"pattern"`
	GuessedLetters   []string  `json:"guessed_letters"`
	GuessesRemaining int       `json:"guesses_remaining"`
	History          []Turn    `json:"history"`
	CreatedAt        time.Time `json:"created_at"`
	UpdatedAt        time.Time `json:"updated_at"`
}

// SessionFromModel converts a model.Session
func SessionFromModel(s *model.Session) Session {
	history := make([]Turn, 0, len(s.History))
	for _, t := range s.History {
		history = append(history, Turn{
			Pattern:          t.Pattern,
			GuessedLetters:   t.GuessedLetters,
			GuessesRemaining: t.GuessesRemaining,
			Letter:           string(t.Letter),
			Rule:             string(t.Rule),
			CandidateCount:   t.CandidateCount,
			DecidedAt:        t.DecidedAt,
		})
	}

	return Session{
		ID:               string(s.ID),
		Strategy:         s.Strategy,
		State:            string(s.State()),
		WordLength:       s.WordLength,
		Pattern:          s.Pattern,
		GuessedLetters:   s.GuessedLetters.Strings(),
		GuessesRemaining: s.GuessesRemaining,
		History:          history,
		CreatedAt:        s.CreatedAt,
		UpdatedAt:        s.UpdatedAt,
	}
}

// SessionGuess is the response for a guess made within a session
type SessionGuess struct {
	Decision Decision `json:"decision"`
	Session  Session  `json:"session"`
}

// Health is the response for the health endpoint
type Health struct {
	Status           string `json:"status"`
	DictionaryLoaded bool   `json:"dictionary_loaded"`
	WordCount        int    `json:"word_count"`
	DictionarySource string `json:"dictionary_source"`
	Fingerprint      string `json:"fingerprint,omitempty"`
}

// LegacyGuess is the single-game guess response served at /guess
type LegacyGuess struct {
	NextGuess string `json:"nextGuess"`
}

// LegacyMessage is a plain status message for the single-game endpoints
type LegacyMessage struct {
	Message string `json:"message,omitempty"`
	Status  string `json:"status,omitempty"`
}
