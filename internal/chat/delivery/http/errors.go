package http

import (
	"errors"
	"net/http"

	"hotel-assistant/internal/chat"
	"hotel-assistant/pkg/response"
)

var errInvalidRoleIDs = response.NewHTTPError(http.StatusBadRequest, "roleIds must be a comma separated list of integers")

// mapError turns a pipeline failure into an HTTP error. Failures that still carry a
// user facing apology (generation and internal errors) map to nil and are delivered
// as a normal envelope with success=false.
func (h *handler) mapError(f *chat.Failure) error {
	var verr *chat.ValidationError
	switch {
	case errors.As(f.Err, &verr):
		return response.NewHTTPError(http.StatusBadRequest, verr.Message)
	case errors.Is(f.Err, chat.ErrServiceUnavailable):
		return response.NewHTTPError(http.StatusServiceUnavailable, f.Message)
	case errors.Is(f.Err, chat.ErrGeneration), errors.Is(f.Err, chat.ErrInternalPipeline):
		return nil
	default:
		return response.NewHTTPError(http.StatusInternalServerError, response.DefaultErrorMessage)
	}
}
