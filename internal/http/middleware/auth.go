package middleware

import (
	"crypto/subtle"
	"net/http"

	"catalog/internal/apperr"
)

// APIKeyHeader carries the shared secret on every authenticated request.
const APIKeyHeader = "x-api-key"

// ErrorHandlerFunc renders an error as the terminal HTTP response.
type ErrorHandlerFunc func(w http.ResponseWriter, r *http.Request, err error)

// APIKeyAuth guards a router subtree behind a shared-secret header. The
// provided value is compared byte-for-byte against the configured key; a
// missing header or mismatch short-circuits with 401 before any handler runs.
//
// An empty configured key means the service is misconfigured and every
// request is rejected; absence of configuration never grants access.
func APIKeyAuth(apiKey string, onError ErrorHandlerFunc) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			provided := r.Header.Get(APIKeyHeader)
			if apiKey == "" || provided == "" ||
				subtle.ConstantTimeCompare([]byte(provided), []byte(apiKey)) != 1 {
				onError(w, r, apperr.ErrInvalidAPIKey)
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}
