package handler

import (
	"net/http"

	"github.com/mcoot/hangman-solver/internal/api/request"
	"github.com/mcoot/hangman-solver/internal/api/response"
	"github.com/mcoot/hangman-solver/internal/model"
	"github.com/mcoot/hangman-solver/internal/services/dictionary"
	"github.com/mcoot/hangman-solver/internal/services/solver"
)

// GuessHandler handles stateless guess decisions
type GuessHandler struct {
	dictionary *dictionary.Service
	strategies *solver.Registry
}

// NewGuessHandler creates a new guess handler
func NewGuessHandler(dictionary *dictionary.Service, strategies *solver.Registry) *GuessHandler {
	return &GuessHandler{
		dictionary: dictionary,
		strategies: strategies,
	}
}

// Guess handles POST /api/v1/guess
func (h *GuessHandler) Guess(w http.ResponseWriter, r *http.Request) {
	var req request.GuessRequest
	if err := decodeJSON(r, &req, false); err != nil {
		WriteError(w, err)
		return
	}

	if !h.dictionary.IsLoaded() {
		WriteError(w, model.ErrDictionaryNotLoaded)
		return
	}

	strategy, err := h.strategies.Get(req.Strategy)
	if err != nil {
		WriteError(w, err)
		return
	}

	decision, err := strategy.NextGuess(req.ToModel())
	if err != nil {
		WriteError(w, err)
		return
	}

	response.JSON(w, http.StatusOK, response.DecisionFromModel(decision, strategy.Name()))
}
