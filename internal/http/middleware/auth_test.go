package middleware_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"catalog/internal/http/apierr"
	"catalog/internal/http/middleware"
)

func newAuthedHandler(apiKey string) (http.Handler, *bool) {
	reached := false
	next := http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		reached = true
		w.WriteHeader(http.StatusOK)
	})

	onError := func(w http.ResponseWriter, _ *http.Request, err error) {
		res := apierr.New(err)
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(res.StatusCode)
		_ = json.NewEncoder(w).Encode(res)
	}

	return middleware.APIKeyAuth(apiKey, onError)(next), &reached
}

func TestAPIKeyAuth(t *testing.T) {
	t.Run("Should pass through with the correct key", func(t *testing.T) {
		h, reached := newAuthedHandler("s3cret")

		req := httptest.NewRequest(http.MethodGet, "/api/products", nil)
		req.Header.Set("x-api-key", "s3cret")
		resp := httptest.NewRecorder()

		h.ServeHTTP(resp, req)

		assert.Equal(t, http.StatusOK, resp.Code)
		assert.True(t, *reached)
	})

	t.Run("Should reject a missing header", func(t *testing.T) {
		h, reached := newAuthedHandler("s3cret")

		req := httptest.NewRequest(http.MethodGet, "/api/products", nil)
		resp := httptest.NewRecorder()

		h.ServeHTTP(resp, req)

		assertUnauthorized(t, resp)
		assert.False(t, *reached)
	})

	t.Run("Should reject a wrong key", func(t *testing.T) {
		h, reached := newAuthedHandler("s3cret")

		req := httptest.NewRequest(http.MethodGet, "/api/products", nil)
		req.Header.Set("x-api-key", "nope")
		resp := httptest.NewRecorder()

		h.ServeHTTP(resp, req)

		assertUnauthorized(t, resp)
		assert.False(t, *reached)
	})

	t.Run("Unset configured key rejects every request", func(t *testing.T) {
		h, reached := newAuthedHandler("")

		req := httptest.NewRequest(http.MethodGet, "/api/products", nil)
		req.Header.Set("x-api-key", "")
		resp := httptest.NewRecorder()

		h.ServeHTTP(resp, req)

		assertUnauthorized(t, resp)
		assert.False(t, *reached)
	})
}

func assertUnauthorized(t *testing.T, resp *httptest.ResponseRecorder) {
	t.Helper()

	assert.Equal(t, http.StatusUnauthorized, resp.Code)

	var body map[string]string
	require.NoError(t, json.Unmarshal(resp.Body.Bytes(), &body))
	assert.Equal(t, "Unauthorized – invalid or missing API key", body["error"])
}
