package apicontract_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apicontract "catalog/api-contract"
)

func TestLoad(t *testing.T) {
	doc, err := apicontract.Load(context.Background())
	require.NoError(t, err)

	for _, path := range []string{"/", "/api/products", "/api/products/{id}"} {
		assert.NotNil(t, doc.Paths.Find(path), "missing path %s", path)
	}

	scheme := doc.Components.SecuritySchemes["apiKey"]
	require.NotNil(t, scheme)
	assert.Equal(t, "x-api-key", scheme.Value.Name)
}
