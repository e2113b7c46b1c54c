package handler

import (
	"errors"
	"net/http"
	"strconv"
	"strings"

	"github.com/a-h/templ"

	"github.com/mcoot/hangman-solver/internal/model"
	"github.com/mcoot/hangman-solver/internal/services/solver"
	"github.com/mcoot/hangman-solver/internal/web/templates/layout"
	"github.com/mcoot/hangman-solver/internal/web/templates/pages"
)

// DefaultRemaining prefills the guesses remaining field
const DefaultRemaining = 6

// SolverHandler serves the solver form
type SolverHandler struct {
	strategies *solver.Registry
}

// NewSolverHandler creates a new SolverHandler
func NewSolverHandler(strategies *solver.Registry) *SolverHandler {
	return &SolverHandler{strategies: strategies}
}

// Home renders the empty solver form
func (h *SolverHandler) Home(w http.ResponseWriter, r *http.Request) {
	data := h.pageData(pages.SolverForm{
		Remaining: strconv.Itoa(DefaultRemaining),
		Strategy:  model.DefaultStrategy,
	})
	render(w, r, http.StatusOK, pages.Solver(data))
}

// Solve handles a form submission and renders the suggested letter
func (h *SolverHandler) Solve(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		h.renderResult(w, r, h.pageData(pages.SolverForm{}), err)
		return
	}

	form := pages.SolverForm{
		Pattern:   r.PostFormValue("pattern"),
		Guessed:   r.PostFormValue("guessed"),
		Remaining: r.PostFormValue("remaining"),
		Strategy:  r.PostFormValue("strategy"),
	}
	data := h.pageData(form)

	remaining := DefaultRemaining
	if v := strings.TrimSpace(form.Remaining); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			h.renderResult(w, r, data, errInvalidRemaining)
			return
		}
		remaining = n
	}

	strategy, err := h.strategies.Get(form.Strategy)
	if err != nil {
		h.renderResult(w, r, data, err)
		return
	}

	decision, err := strategy.NextGuess(model.GuessRequest{
		Pattern:          form.Pattern,
		GuessedLetters:   SplitLetters(form.Guessed),
		GuessesRemaining: remaining,
	})
	if err != nil {
		h.renderResult(w, r, data, err)
		return
	}

	data.Suggestion = &pages.Suggestion{
		Letter:         string(decision.Letter),
		Rule:           describeRule(decision.Rule),
		CandidateCount: decision.CandidateCount,
		Candidates:     decision.Candidates,
	}
	h.renderResult(w, r, data, nil)
}

var errInvalidRemaining = errors.New("guesses remaining must be a whole number")

func (h *SolverHandler) pageData(form pages.SolverForm) pages.SolverData {
	if form.Strategy == "" {
		form.Strategy = model.DefaultStrategy
	}
	return pages.SolverData{
		PageData:   layout.PageData{Title: "Solver"},
		Form:       form,
		Strategies: h.strategies.Names(),
	}
}

// renderResult renders the whole page, or only the result panel for htmx
func (h *SolverHandler) renderResult(w http.ResponseWriter, r *http.Request, data pages.SolverData, err error) {
	status := http.StatusOK
	if err != nil {
		data.Error = errorMessage(err)
		status = errorStatus(err)
	}

	if r.Header.Get("HX-Request") == "true" {
		// htmx only swaps 2xx responses by default
		render(w, r, http.StatusOK, pages.Result(data))
		return
	}
	render(w, r, status, pages.Solver(data))
}

func render(w http.ResponseWriter, r *http.Request, status int, c templ.Component) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	_ = c.Render(r.Context(), w)
}

// SplitLetters splits a comma- or space-separated list of letters
func SplitLetters(s string) []string {
	return strings.FieldsFunc(s, func(r rune) bool {
		return r == ',' || r == ' ' || r == '\t'
	})
}

func describeRule(rule model.DecisionRule) string {
	switch rule {
	case model.RuleSingleCandidate:
		return "Only one word fits"
	case model.RuleScored:
		return "Most likely letter across the remaining words"
	case model.RuleFrequencyFallback:
		return "No word fits; using common English letter order"
	case model.RuleAlphabetFallback:
		return "No word fits; using the next unguessed letter"
	case model.RuleRandom:
		return "Random unguessed letter"
	default:
		return string(rule)
	}
}

func errorMessage(err error) string {
	switch {
	case errors.Is(err, model.ErrInvalidPattern):
		return "Enter the word as letters and blanks separated by spaces, e.g. f __ i __ h t"
	case errors.Is(err, model.ErrInvalidLetter):
		return "Guessed letters must be single letters a-z"
	case errors.Is(err, model.ErrNegativeGuesses):
		return "Guesses remaining must not be negative"
	case errors.Is(err, model.ErrAlphabetExhausted):
		return "Every letter has already been guessed"
	case errors.Is(err, model.ErrUnknownStrategy):
		return "Unknown strategy"
	case errors.Is(err, errInvalidRemaining):
		return "Guesses remaining must be a whole number"
	default:
		return "Something went wrong. Please try again."
	}
}

func errorStatus(err error) int {
	switch {
	case errors.Is(err, model.ErrAlphabetExhausted):
		return http.StatusConflict
	case errors.Is(err, model.ErrInvalidPattern),
		errors.Is(err, model.ErrInvalidLetter),
		errors.Is(err, model.ErrNegativeGuesses),
		errors.Is(err, model.ErrUnknownStrategy),
		errors.Is(err, errInvalidRemaining):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}
