// Package response centralizes HTTP response shapes and helpers.
// Handlers rely on it to keep controllers thin and uniform.
package response

import (
	"context"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/maxviazov/mods-catalog-service/internal/repository"
	"github.com/maxviazov/mods-catalog-service/internal/service"
)

// StatusClientClosedRequest is the nginx convention for a request the client abandoned.
const StatusClientClosedRequest = 499

// ErrorPayload is the canonical error envelope returned by the API.
type ErrorPayload struct {
	Error ErrorBody `json:"error"`
}

// ErrorBody carries a machine-readable code next to the human message.
type ErrorBody struct {
	Code        string               `json:"code"`
	Message     string               `json:"message"`
	FieldErrors []service.FieldError `json:"field_errors,omitempty"`
}

// MapError converts a domain / infrastructure error into an HTTP status and payload.
// Storage details never reach the client; they are logged by the service layer.
func MapError(err error) (int, ErrorPayload) {
	if err == nil {
		return http.StatusOK, ErrorPayload{Error: ErrorBody{Code: "ok"}}
	}

	switch {
	case errors.Is(err, service.ErrInvalidInput):
		return http.StatusBadRequest, ErrorPayload{Error: ErrorBody{
			Code:        "invalid_input",
			Message:     "one or more query parameters are invalid",
			FieldErrors: service.FieldErrors(err),
		}}
	case errors.Is(err, context.Canceled):
		return StatusClientClosedRequest, ErrorPayload{Error: ErrorBody{
			Code:    "request_canceled",
			Message: "request canceled by client",
		}}
	case errors.Is(err, repository.ErrUnavailable):
		return http.StatusServiceUnavailable, ErrorPayload{Error: ErrorBody{
			Code:    "storage_unavailable",
			Message: "catalog storage is temporarily unavailable",
		}}
	default:
		return http.StatusInternalServerError, ErrorPayload{Error: ErrorBody{
			Code:    "internal_error",
			Message: "internal server error",
		}}
	}
}

// WriteError writes an error response and aborts the context.
func WriteError(c *gin.Context, err error) {
	status, payload := MapError(err)
	if status >= http.StatusInternalServerError {
		_ = c.Error(err)
	}
	c.AbortWithStatusJSON(status, payload)
}

// WriteData writes a successful JSON response.
func WriteData(c *gin.Context, status int, data any) {
	c.JSON(status, data)
}
