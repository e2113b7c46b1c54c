package middleware

import (
	"log/slog"
	"net/http"

	"github.com/mcoot/hangman-solver/internal/middleware"
)

// Logging logs web requests, marking those issued by htmx so fragment swaps
// can be told apart from full page loads
func Logging(logger *slog.Logger) func(http.Handler) http.Handler {
	return middleware.Logging(logger.With(slog.String("component", "web")), htmxAttr)
}

func htmxAttr(r *http.Request) slog.Attr {
	return slog.Bool("htmx", r.Header.Get("HX-Request") == "true")
}
