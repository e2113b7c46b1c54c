package model

import "errors"

// Common errors used across the application
var (
	// Input errors
	ErrInvalidPattern  = errors.New("invalid pattern")
	ErrInvalidLetter   = errors.New("invalid letter")
	ErrInvalidWord     = errors.New("invalid word")
	ErrNegativeGuesses = errors.New("guesses remaining must not be negative")

	// Solver errors
	ErrAlphabetExhausted = errors.New("every letter has already been guessed")
	ErrUnknownStrategy   = errors.New("unknown strategy")

	// Session errors
	ErrSessionNotFound = errors.New("session not found")

	// Dictionary errors
	ErrDictionaryNotLoaded = errors.New("dictionary not loaded")
)
