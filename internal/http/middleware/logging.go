package middleware

import (
	"log/slog"
	"net/http"
)

// Logging emits one log line per incoming request before any further
// processing: method and path including the query string. It never blocks or
// alters the request.
func Logging(log *slog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			log.InfoContext(r.Context(), "request",
				slog.String("method", r.Method),
				slog.String("path", r.URL.RequestURI()),
			)

			next.ServeHTTP(w, r)
		})
	}
}
