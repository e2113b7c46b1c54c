package model

import "time"

// SessionID uniquely identifies a solver session
type SessionID string

// DefaultSessionID backs the single-game legacy endpoints
const DefaultSessionID SessionID = "default"

// MaxHistory bounds the turns kept per session; older turns are dropped first
const MaxHistory = 64

// SessionState represents whether a session has started guessing
type SessionState string

const (
	SessionStateReset  SessionState = "reset"  // No guesses made since creation or reset
	SessionStateActive SessionState = "active" // At least one decision recorded
)

// Turn records one decision made within a session
type Turn struct {
	Pattern          string
	GuessedLetters   string
	GuessesRemaining int
	Letter           rune
	Rule             DecisionRule
	CandidateCount   int
	DecidedAt        time.Time
}

// Session is one game's worth of solver context. Decisions never depend on
// anything stored here beyond the strategy; the session only records what the
// caller has seen so far.
type Session struct {
	ID       SessionID
	Strategy string
	// WordLength, when set at creation, is enforced on every guess
	WordLength int

	// Latest snapshot supplied by the caller
	Pattern          string
	GuessedLetters   LetterSet
	GuessesRemaining int

	History []Turn

	CreatedAt time.Time
	UpdatedAt time.Time
}

// State returns the session's current state
func (s *Session) State() SessionState {
	if len(s.History) == 0 && s.GuessedLetters.IsEmpty() {
		return SessionStateReset
	}
	return SessionStateActive
}

// Reset clears everything learned during the game
func (s *Session) Reset(now time.Time) {
	s.Pattern = ""
	s.GuessedLetters = 0
	s.GuessesRemaining = 0
	s.History = nil
	s.UpdatedAt = now
}

// Record appends a turn, dropping the oldest once MaxHistory is reached
func (s *Session) Record(t Turn) {
	if n := len(s.History) + 1 - MaxHistory; n > 0 {
		s.History = append(s.History[:0:0], s.History[n:]...)
	}
	s.History = append(s.History, t)
}

// LastTurn returns the most recent turn, or nil if none
func (s *Session) LastTurn() *Turn {
	if len(s.History) == 0 {
		return nil
	}
	return &s.History[len(s.History)-1]
}
