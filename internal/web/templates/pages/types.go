package pages

import "github.com/mcoot/hangman-solver/internal/web/templates/layout"

// SolverForm is the solver form as the user last submitted it
type SolverForm struct {
	Pattern   string
	Guessed   string
	Remaining string
	Strategy  string
}

// Suggestion is a decided next letter
type Suggestion struct {
	Letter         string
	Rule           string
	CandidateCount int
	Candidates     []string
}

// SolverData holds the data for the solver page
type SolverData struct {
	layout.PageData
	Form       SolverForm
	Strategies []string
	Suggestion *Suggestion
	Error      string
}
