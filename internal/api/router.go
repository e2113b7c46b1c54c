package api

import (
	"log/slog"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/mcoot/hangman-solver/internal/api/handler"
	"github.com/mcoot/hangman-solver/internal/api/middleware"
	"github.com/mcoot/hangman-solver/internal/services/dictionary"
	"github.com/mcoot/hangman-solver/internal/services/session"
	"github.com/mcoot/hangman-solver/internal/services/solver"
)

// LegacyPaths are the single-game routes served outside /api/v1
var LegacyPaths = []string{"/guess", "/reset", "/health"}

// RouterConfig holds configuration for the API router
type RouterConfig struct {
	Logger            *slog.Logger
	DictionaryService *dictionary.Service
	Strategies        *solver.Registry
	SessionController *session.Controller
}

// NewRouter creates a new API router with all routes configured
func NewRouter(cfg RouterConfig) http.Handler {
	r := mux.NewRouter()

	// Create handlers
	guessHandler := handler.NewGuessHandler(cfg.DictionaryService, cfg.Strategies)
	sessionHandler := handler.NewSessionHandler(cfg.SessionController)
	healthHandler := handler.NewHealthHandler(cfg.DictionaryService)
	legacyHandler := handler.NewLegacyHandler(cfg.SessionController)

	// Create middleware
	loggingMiddleware := middleware.Logging(cfg.Logger)
	recoveryMiddleware := middleware.Recovery(cfg.Logger)

	r.Use(recoveryMiddleware)
	r.Use(loggingMiddleware)

	api := r.PathPrefix("/api/v1").Subrouter()

	api.HandleFunc("/guess", guessHandler.Guess).Methods(http.MethodPost)

	sessions := api.PathPrefix("/sessions").Subrouter()
	sessions.HandleFunc("", sessionHandler.Create).Methods(http.MethodPost)
	sessions.HandleFunc("/{id}", sessionHandler.Get).Methods(http.MethodGet)
	sessions.HandleFunc("/{id}", sessionHandler.Delete).Methods(http.MethodDelete)
	sessions.HandleFunc("/{id}/guess", sessionHandler.Guess).Methods(http.MethodPost)
	sessions.HandleFunc("/{id}/reset", sessionHandler.Reset).Methods(http.MethodPost)

	api.HandleFunc("/health", healthHandler.Health).Methods(http.MethodGet)

	// Single-game routes, kept for existing clients
	r.HandleFunc("/guess", legacyHandler.Guess).Methods(http.MethodPost)
	r.HandleFunc("/reset", legacyHandler.Reset).Methods(http.MethodPost)
	r.HandleFunc("/health", legacyHandler.Health).Methods(http.MethodGet)

	return r
}
