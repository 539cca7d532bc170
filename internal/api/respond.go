package api

import (
	"encoding/json"
	"net/http"

	"github.com/matzehuels/hanoitower/pkg/errors"
)

// errorResponse is the JSON body returned for failed requests.
type errorResponse struct {
	Error string      `json:"error"`
	Code  errors.Code `json:"code"`
}

// writeJSON writes v as a JSON response with the given status.
func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

// writeError maps an error to an HTTP status via its code and writes the
// standard error body.
func writeError(w http.ResponseWriter, err error) {
	code := errors.GetCode(err)
	writeJSON(w, statusForCode(code), errorResponse{
		Error: errors.UserMessage(err),
		Code:  code,
	})
}

// statusForCode maps error codes to HTTP status codes.
func statusForCode(code errors.Code) int {
	switch code {
	case errors.ErrCodeInvalidDiskCount,
		errors.ErrCodeInvalidPeg,
		errors.ErrCodeInvalidFormat,
		errors.ErrCodeInvalidVizType,
		errors.ErrCodeInvalidConfig,
		errors.ErrCodeIllegalMove,
		errors.ErrCodeUnsupported:
		return http.StatusBadRequest
	case errors.ErrCodeNotFound, errors.ErrCodeSessionNotFound:
		return http.StatusNotFound
	default:
		return http.StatusInternalServerError
	}
}
