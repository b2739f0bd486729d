package apperr

import "catalog/pkg/zerror"

const (
	ProductNotFoundCode       = "PRODUCT_NOT_FOUND"
	InvalidProductPayloadCode = "INVALID_PRODUCT_PAYLOAD"
	InvalidAPIKeyCode         = "INVALID_API_KEY"
)

var (
	// ErrProductNotFound is returned whenever a product ID does not match
	// any record in the store.
	ErrProductNotFound = zerror.NewNotFound(ProductNotFoundCode, "Product not found")

	// ErrInvalidProductPayload covers every rejected create/replace body:
	// missing or empty name, missing or non-numeric price, unparseable JSON.
	ErrInvalidProductPayload = zerror.NewValidationFailed(InvalidProductPayloadCode, "Name & numeric price are required")

	// ErrInvalidAPIKey is raised by the auth middleware before any handler runs.
	ErrInvalidAPIKey = zerror.NewUnauthorized(InvalidAPIKeyCode, "Unauthorized – invalid or missing API key")
)
