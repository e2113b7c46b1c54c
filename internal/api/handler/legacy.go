package handler

import (
	"net/http"

	"github.com/mcoot/hangman-solver/internal/api/request"
	"github.com/mcoot/hangman-solver/internal/api/response"
	"github.com/mcoot/hangman-solver/internal/services/session"
)

// LegacyHandler serves the single-game endpoints, backed by the default session
type LegacyHandler struct {
	controller *session.Controller
}

// NewLegacyHandler creates a new legacy handler
func NewLegacyHandler(controller *session.Controller) *LegacyHandler {
	return &LegacyHandler{controller: controller}
}

// Guess handles POST /guess
func (h *LegacyHandler) Guess(w http.ResponseWriter, r *http.Request) {
	var req request.LegacyGuessRequest
	if err := decodeJSON(r, &req, false); err != nil {
		WriteError(w, err)
		return
	}

	decision, err := h.controller.GuessDefault(r.Context(), req.ToModel())
	if err != nil {
		WriteError(w, err)
		return
	}

	response.JSON(w, http.StatusOK, response.LegacyGuess{NextGuess: string(decision.Letter)})
}

// Reset handles POST /reset
func (h *LegacyHandler) Reset(w http.ResponseWriter, r *http.Request) {
	if _, err := h.controller.ResetDefault(r.Context()); err != nil {
		WriteError(w, err)
		return
	}

	response.JSON(w, http.StatusOK, response.LegacyMessage{Message: "AI state reset"})
}

// Health handles GET /health
func (h *LegacyHandler) Health(w http.ResponseWriter, r *http.Request) {
	response.JSON(w, http.StatusOK, response.LegacyMessage{Status: "OK"})
}
