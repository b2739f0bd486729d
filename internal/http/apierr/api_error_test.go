package apierr_test

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"

	"catalog/internal/apperr"
	"catalog/internal/http/apierr"
	"catalog/pkg/zerror"
)

func TestNew(t *testing.T) {
	t.Run("Should map not found", func(t *testing.T) {
		res := apierr.New(apperr.ErrProductNotFound)

		assert.Equal(t, http.StatusNotFound, res.StatusCode)
		assert.Equal(t, "Product not found", res.Error)
	})

	t.Run("Should map validation failure", func(t *testing.T) {
		res := apierr.New(apperr.ErrInvalidProductPayload)

		assert.Equal(t, http.StatusBadRequest, res.StatusCode)
		assert.Equal(t, "Name & numeric price are required", res.Error)
	})

	t.Run("Should map unauthorized", func(t *testing.T) {
		res := apierr.New(apperr.ErrInvalidAPIKey)

		assert.Equal(t, http.StatusUnauthorized, res.StatusCode)
		assert.Equal(t, "Unauthorized – invalid or missing API key", res.Error)
	})

	t.Run("Should unwrap through fmt.Errorf", func(t *testing.T) {
		err := fmt.Errorf("product service get product: %w", apperr.ErrProductNotFound)
		res := apierr.New(err)

		assert.Equal(t, http.StatusNotFound, res.StatusCode)
	})

	t.Run("Unclassified errors default to 500 without leaking detail", func(t *testing.T) {
		res := apierr.New(errors.New("pq: connection refused"))

		assert.Equal(t, http.StatusInternalServerError, res.StatusCode)
		assert.NotContains(t, res.Error, "connection refused")
	})
}

func TestZErrorStatusToHTTPStatus(t *testing.T) {
	cases := map[zerror.Status]int{
		zerror.StatusUnauthorized:        http.StatusUnauthorized,
		zerror.StatusNotFound:            http.StatusNotFound,
		zerror.StatusBadRequest:          http.StatusBadRequest,
		zerror.StatusValidationFailed:    http.StatusBadRequest,
		zerror.StatusInternalServerError: http.StatusInternalServerError,
		zerror.StatusUnknown:             http.StatusInternalServerError,
	}

	for status, want := range cases {
		assert.Equal(t, want, apierr.ZErrorStatusToHTTPStatus(status), status.String())
	}
}
