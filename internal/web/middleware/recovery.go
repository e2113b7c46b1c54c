package middleware

import (
	"log/slog"
	"net/http"

	"github.com/mcoot/hangman-solver/internal/middleware"
)

// Recovery creates panic recovery middleware for the web interface.
// A panicking handler yields a plain HTML error page.
func Recovery(logger *slog.Logger) func(http.Handler) http.Handler {
	return middleware.Recovery(logger, webPanicHandler)
}

func webPanicHandler(w http.ResponseWriter, _ *http.Request, _ any) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(http.StatusInternalServerError)
	_, _ = w.Write([]byte(`<!DOCTYPE html>
<html>
<head><title>Error | Hangman Solver</title></head>
<body>
<h1>Internal Server Error</h1>
<p>The solver hit an unexpected problem.</p>
<p><a href="/">Back to the solver</a></p>
</body>
</html>`))
}
