package httputil

import (
	"encoding/json"
	"errors"
	"net/http"

	dErrors "librarian/pkg/domain-errors"
)

// ErrorResponse is the JSON envelope for every failed request.
// ErrorCode repeats the HTTP status so clients can read it from the body.
type ErrorResponse struct {
	Message   string `json:"message"`
	ErrorCode int    `json:"errorCode"`
}

func WriteJSON(w http.ResponseWriter, status int, response any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	// Errors after WriteHeader cannot change the status code, so we ignore encoding errors.
	_ = json.NewEncoder(w).Encode(response)
}

// WriteError centralizes domain error translation to HTTP responses.
func WriteError(w http.ResponseWriter, err error) {
	var domainErr *dErrors.Error
	if errors.As(err, &domainErr) {
		status := DomainCodeToHTTPStatus(domainErr.Code)
		message := domainErr.Message
		// Internal details never leave the process.
		if status == http.StatusInternalServerError || message == "" {
			message = http.StatusText(status)
		}
		WriteJSON(w, status, ErrorResponse{Message: message, ErrorCode: status})
		return
	}

	WriteJSON(w, http.StatusInternalServerError, ErrorResponse{
		Message:   http.StatusText(http.StatusInternalServerError),
		ErrorCode: http.StatusInternalServerError,
	})
}

// DomainCodeToHTTPStatus translates domain error codes to HTTP status codes.
func DomainCodeToHTTPStatus(code dErrors.Code) int {
	switch code {
	case dErrors.CodeNotFound:
		return http.StatusNotFound
	case dErrors.CodeBadRequest, dErrors.CodeValidation, dErrors.CodeInvariantViolation:
		return http.StatusBadRequest
	case dErrors.CodeAlreadyBorrowed, dErrors.CodeNotBorrowed:
		return http.StatusBadRequest
	case dErrors.CodeConflict, dErrors.CodeDuplicateEmail, dErrors.CodeConflictingCatalogEntry:
		return http.StatusConflict
	case dErrors.CodeRateLimited:
		return http.StatusTooManyRequests
	case dErrors.CodeInternal:
		return http.StatusInternalServerError
	default:
		return http.StatusInternalServerError
	}
}
