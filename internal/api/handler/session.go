package handler

import (
	"net/http"

	"github.com/gorilla/mux"

	"github.com/mcoot/hangman-solver/internal/api/request"
	"github.com/mcoot/hangman-solver/internal/api/response"
	"github.com/mcoot/hangman-solver/internal/model"
	"github.com/mcoot/hangman-solver/internal/services/session"
)

// SessionHandler handles session endpoints
type SessionHandler struct {
	controller *session.Controller
}

// NewSessionHandler creates a new session handler
func NewSessionHandler(controller *session.Controller) *SessionHandler {
	return &SessionHandler{controller: controller}
}

func sessionID(r *http.Request) model.SessionID {
	return model.SessionID(mux.Vars(r)["id"])
}

// Create handles POST /api/v1/sessions
func (h *SessionHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req request.CreateSessionRequest
	if err := decodeJSON(r, &req, true); err != nil {
		WriteError(w, err)
		return
	}
	if req.WordLength < 0 {
		WriteError(w, NewInvalidRequestError("word_length must not be negative"))
		return
	}

	s, err := h.controller.Create(r.Context(), req.Strategy, req.WordLength)
	if err != nil {
		WriteError(w, err)
		return
	}

	response.JSON(w, http.StatusCreated, response.SessionFromModel(s))
}

// Get handles GET /api/v1/sessions/{id}
func (h *SessionHandler) Get(w http.ResponseWriter, r *http.Request) {
	s, err := h.controller.Get(r.Context(), sessionID(r))
	if err != nil {
		WriteError(w, err)
		return
	}

	response.JSON(w, http.StatusOK, response.SessionFromModel(s))
}

// Delete handles DELETE /api/v1/sessions/{id}
func (h *SessionHandler) Delete(w http.ResponseWriter, r *http.Request) {
	if err := h.controller.Delete(r.Context(), sessionID(r)); err != nil {
		WriteError(w, err)
		return
	}

	response.NoContent(w)
}

// Guess handles POST /api/v1/sessions/{id}/guess
func (h *SessionHandler) Guess(w http.ResponseWriter, r *http.Request) {
	var req request.GuessRequest
	if err := decodeJSON(r, &req, false); err != nil {
		WriteError(w, err)
		return
	}

	decision, s, err := h.controller.Guess(r.Context(), sessionID(r), req.ToModel())
	if err != nil {
		WriteError(w, err)
		return
	}

	response.JSON(w, http.StatusOK, response.SessionGuess{
		Decision: response.DecisionFromModel(decision, s.Strategy),
		Session:  response.SessionFromModel(s),
	})
}

// Reset handles POST /api/v1/sessions/{id}/reset
func (h *SessionHandler) Reset(w http.ResponseWriter, r *http.Request) {
	s, err := h.controller.Reset(r.Context(), sessionID(r))
	if err != nil {
		WriteError(w, err)
		return
	}

	response.JSON(w, http.StatusOK, response.SessionFromModel(s))
}
