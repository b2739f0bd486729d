package apierr

import (
	"errors"
	"net/http"

	govalidator "github.com/go-playground/validator/v10"

	"catalog/pkg/zerror"
)

// ErrorResponse is the error response for the API. The body is a single
// "error" field; detail stays in the operational log.
type ErrorResponse struct {
	Error string `json:"error"`

	// StatusCode is the status code for the error response.
	StatusCode int `json:"-"`
}

var InternalServerErr = ErrorResponse{
	Error:      "an unknown error occurred",
	StatusCode: http.StatusInternalServerError,
}

func New(err error) ErrorResponse {
	return errorToErrorResponse(err)
}

func errorToErrorResponse(err error) ErrorResponse {
	var zErr zerror.ZError
	if errors.As(err, &zErr) {
		return ErrorResponse{
			Error:      zErr.Msg(),
			StatusCode: ZErrorStatusToHTTPStatus(zErr.Status()),
		}
	}

	// Validation errors normally arrive wrapped in a ZError; a bare one still
	// must not surface as a 500.
	var validationErrs govalidator.ValidationErrors
	if errors.As(err, &validationErrs) {
		return ErrorResponse{
			Error:      "validation error",
			StatusCode: http.StatusBadRequest,
		}
	}

	return InternalServerErr
}

func ZErrorStatusToHTTPStatus(status zerror.Status) int {
	switch status {
	case zerror.StatusUnauthorized:
		return http.StatusUnauthorized
	case zerror.StatusNotFound:
		return http.StatusNotFound
	case zerror.StatusBadRequest, zerror.StatusValidationFailed:
		return http.StatusBadRequest
	case zerror.StatusUnknown, zerror.StatusInternalServerError:
		return http.StatusInternalServerError
	default:
		return http.StatusInternalServerError
	}
}
