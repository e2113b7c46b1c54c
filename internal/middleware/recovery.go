package middleware

import (
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"runtime/debug"
)

// PanicHandler writes the response for a request whose handler panicked
type PanicHandler func(w http.ResponseWriter, r *http.Request, err any)

// Recovery turns handler panics into a logged error plus the response written
// by handler. If the handler had already started its response, the panic is
// only logged. http.ErrAbortHandler is re-raised so net/http can drop the
// connection as it expects.
func Recovery(logger *slog.Logger, handler PanicHandler) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			rw, ok := w.(*ResponseWriter)
			if !ok {
				rw = &ResponseWriter{ResponseWriter: w, status: http.StatusOK}
			}

			defer func() {
				rec := recover()
				if rec == nil {
					return
				}
				if err, isErr := rec.(error); isErr && errors.Is(err, http.ErrAbortHandler) {
					panic(rec)
				}

				logger.Error("panic recovered",
					slog.String("panic", fmt.Sprint(rec)),
					slog.String("stack", string(debug.Stack())),
					slog.String("method", r.Method),
					slog.String("path", r.URL.Path),
					slog.Bool("response_started", rw.Written()),
				)

				if !rw.Written() {
					handler(rw, r, rec)
				}
			}()

			next.ServeHTTP(rw, r)
		})
	}
}
