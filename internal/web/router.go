package web

import (
	"log/slog"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/mcoot/hangman-solver/internal/services/solver"
	"github.com/mcoot/hangman-solver/internal/web/handler"
	"github.com/mcoot/hangman-solver/internal/web/middleware"
)

// RouterConfig holds configuration for the web router
type RouterConfig struct {
	Logger     *slog.Logger
	Strategies *solver.Registry
	StaticDir  string // Path to static files directory (optional)
}

// NewRouter creates a new web router with all routes configured
func NewRouter(cfg RouterConfig) http.Handler {
	r := mux.NewRouter()

	r.Use(middleware.Recovery(cfg.Logger))
	r.Use(middleware.Logging(cfg.Logger))

	solverHandler := handler.NewSolverHandler(cfg.Strategies)

	if cfg.StaticDir != "" {
		staticHandler := http.StripPrefix("/static/", http.FileServer(http.Dir(cfg.StaticDir)))
		r.PathPrefix("/static/").Handler(staticHandler)
	}

	r.HandleFunc("/", solverHandler.Home).Methods(http.MethodGet)
	r.HandleFunc("/", solverHandler.Solve).Methods(http.MethodPost)

	return r
}
