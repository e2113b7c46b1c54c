package request

import "github.com/mcoot/hangman-solver/internal/model"

// GuessRequest is the request body for a guess decision
type GuessRequest struct {
	Pattern          string   `json:"pattern"`
	GuessedLetters   []string `json:"guessed_letters"`
	GuessesRemaining int      `json:"guesses_remaining"`
	// Strategy is only honoured by the stateless endpoint; sessions keep their own
	Strategy string `json:"strategy,omitempty"`
}

// ToModel converts the request to a model.GuessRequest
func (r GuessRequest) ToModel() model.GuessRequest {
	return model.GuessRequest{
		Pattern:          r.Pattern,
		GuessedLetters:   r.GuessedLetters,
		GuessesRemaining: r.GuessesRemaining,
	}
}

// CreateSessionRequest is the request body for creating a session
type CreateSessionRequest struct {
	Strategy   string `json:"strategy,omitempty"`
	WordLength int    `json:"word_length,omitempty"`
}

// LegacyGuessRequest is the single-game request body served at /guess
type LegacyGuessRequest struct {
	CurrentWordState string   `json:"currentWordState"`
	GuessedLetters   []string `json:"guessedLetters"`
	GuessesRemaining int      `json:"guessesRemaining"`
}

// ToModel converts the request to a model.GuessRequest
func (r LegacyGuessRequest) ToModel() model.GuessRequest {
	return model.GuessRequest{
		Pattern:          r.CurrentWordState,
		GuessedLetters:   r.GuessedLetters,
		GuessesRemaining: r.GuessesRemaining,
	}
}
