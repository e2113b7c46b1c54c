package middleware

import (
	"log/slog"
	"net/http"
	"time"
)

// ResponseWriter wraps http.ResponseWriter to capture the status code and size
type ResponseWriter struct {
	http.ResponseWriter
	status  int
	size    int
	written bool
}

// WriteHeader captures the status code
func (rw *ResponseWriter) WriteHeader(status int) {
	if !rw.written {
		rw.status = status
		rw.written = true
	}
	rw.ResponseWriter.WriteHeader(status)
}

// Write captures the response size
func (rw *ResponseWriter) Write(b []byte) (int, error) {
	rw.written = true
	n, err := rw.ResponseWriter.Write(b)
	rw.size += n
	return n, err
}

// Status returns the captured status code
func (rw *ResponseWriter) Status() int {
	return rw.status
}

// Size returns the captured response size
func (rw *ResponseWriter) Size() int {
	return rw.size
}

// Written reports whether the status line has gone out
func (rw *ResponseWriter) Written() bool {
	return rw.written
}

// RequestAttr derives an extra log attribute from a request
type RequestAttr func(r *http.Request) slog.Attr

// Logging creates middleware that logs one line per HTTP request. Health
// probes log at debug; server errors log at error.
func Logging(logger *slog.Logger, extra ...RequestAttr) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()

			wrapped := &ResponseWriter{ResponseWriter: w, status: http.StatusOK}

			next.ServeHTTP(wrapped, r)

			attrs := []slog.Attr{
				slog.String("method", r.Method),
				slog.String("path", r.URL.Path),
				slog.Int("status", wrapped.status),
				slog.Int("size", wrapped.size),
				slog.Duration("duration", time.Since(start)),
			}
			for _, fn := range extra {
				attrs = append(attrs, fn(r))
			}
			logger.LogAttrs(r.Context(), requestLevel(r, wrapped.status), "http request", attrs...)
		})
	}
}

func requestLevel(r *http.Request, status int) slog.Level {
	switch {
	case status >= http.StatusInternalServerError:
		return slog.LevelError
	case r.Method == http.MethodGet && isHealthPath(r.URL.Path):
		return slog.LevelDebug
	default:
		return slog.LevelInfo
	}
}

func isHealthPath(path string) bool {
	return path == "/health" || path == "/api/v1/health"
}
