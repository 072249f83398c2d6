package apierr

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/mcoot/stopwatch/internal/model"
)

// APIError represents an API error response
type APIError struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// ErrorResponse wraps an APIError
type ErrorResponse struct {
	Error APIError `json:"error"`
}

// Common error codes
const (
	CodeInvalidRequest  = "INVALID_REQUEST"
	CodeInvalidInput    = "INVALID_INPUT"
	CodeInvalidPenalty  = "INVALID_PENALTY"
	CodeSessionNotFound = "SESSION_NOT_FOUND"
	CodePersonNotFound  = "PERSON_NOT_FOUND"
	CodeClockRunning    = "CLOCK_RUNNING"
	CodeNothingToRecord = "NOTHING_TO_RECORD"
	CodeInternalError   = "INTERNAL_ERROR"
)

// httpError combines an HTTP status code with an APIError
type httpError struct {
	status   int
	apiError APIError
}

// Error implements error interface
func (e *httpError) Error() string {
	return e.apiError.Message
}

// WriteError writes an error response to the response writer
func WriteError(w http.ResponseWriter, err error) {
	he := toHTTPError(err)
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(he.status)
	_ = json.NewEncoder(w).Encode(ErrorResponse{Error: he.apiError})
}

// toHTTPError converts an error to an httpError
func toHTTPError(err error) *httpError {
	var he *httpError
	if errors.As(err, &he) {
		return he
	}

	switch {
	case errors.Is(err, model.ErrInvalidInput):
		return &httpError{http.StatusBadRequest, APIError{CodeInvalidInput, "Name must not be empty"}}
	case errors.Is(err, model.ErrInvalidPenalty):
		return &httpError{http.StatusBadRequest, APIError{CodeInvalidPenalty, "Penalty must be between 0 and 30 seconds"}}
	case errors.Is(err, model.ErrSessionNotFound):
		return &httpError{http.StatusNotFound, APIError{CodeSessionNotFound, "Session not found"}}
	case errors.Is(err, model.ErrPersonNotFound):
		return &httpError{http.StatusNotFound, APIError{CodePersonNotFound, "Person not found"}}
	case errors.Is(err, model.ErrClockRunning):
		return &httpError{http.StatusConflict, APIError{CodeClockRunning, "Pause the clock first"}}
	case errors.Is(err, model.ErrNothingToRecord):
		return &httpError{http.StatusConflict, APIError{CodeNothingToRecord, "No elapsed time to record"}}
	default:
		return &httpError{http.StatusInternalServerError, APIError{CodeInternalError, "Internal server error"}}
	}
}

// NewInvalidRequestError creates an invalid request error
func NewInvalidRequestError(message string) error {
	return &httpError{http.StatusBadRequest, APIError{CodeInvalidRequest, message}}
}

// NewInternalError creates an internal server error
func NewInternalError() error {
	return &httpError{http.StatusInternalServerError, APIError{CodeInternalError, "Internal server error"}}
}
