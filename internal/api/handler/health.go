package handler

import (
	"net/http"

	"github.com/mcoot/hangman-solver/internal/api/response"
	"github.com/mcoot/hangman-solver/internal/services/dictionary"
)

// HealthHandler reports service and dictionary status
type HealthHandler struct {
	dictionary *dictionary.Service
}

// NewHealthHandler creates a new health handler
func NewHealthHandler(dictionary *dictionary.Service) *HealthHandler {
	return &HealthHandler{dictionary: dictionary}
}

// Health handles GET /api/v1/health
func (h *HealthHandler) Health(w http.ResponseWriter, r *http.Request) {
	status := "ok"
	if !h.dictionary.IsLoaded() {
		status = "degraded"
	}

	response.JSON(w, http.StatusOK, response.Health{
		Status:           status,
		DictionaryLoaded: h.dictionary.IsLoaded(),
		WordCount:        h.dictionary.WordCount(),
		DictionarySource: string(h.dictionary.Source()),
		Fingerprint:      h.dictionary.Fingerprint(),
	})
}
