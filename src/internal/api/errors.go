package api

import (
	"encoding/json"
	stderrors "errors"
	"net/http"

	"github.com/disk2iso/disk2iso-web/src/internal/errors"
	"github.com/disk2iso/disk2iso-web/src/internal/log"
)

var errUnsupportedValue = stderrors.New("value must be a string, number or boolean")

// ErrorResponse is the body of every failed request.
type ErrorResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

// StatusForCode maps a failure code to its HTTP status.
func StatusForCode(code errors.ErrorCode) int {
	switch code {
	case errors.ErrCodeInvalidKey, errors.ErrCodeValidation:
		return http.StatusBadRequest
	}
	return http.StatusInternalServerError
}

// WriteError writes an error response to the HTTP response writer.
func WriteError(w http.ResponseWriter, statusCode int, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	if err := json.NewEncoder(w).Encode(ErrorResponse{Success: false, Message: message}); err != nil {
		log.Debugf("Failed to write error response: %v", err)
	}
}

// WriteInvalidRequest writes a 400 Bad Request error.
func WriteInvalidRequest(w http.ResponseWriter, message string) {
	WriteError(w, http.StatusBadRequest, message)
}

// WriteForbidden writes a 403 Forbidden error.
func WriteForbidden(w http.ResponseWriter, message string) {
	WriteError(w, http.StatusForbidden, message)
}

// WriteNotFound writes a 404 Not Found error.
func WriteNotFound(w http.ResponseWriter) {
	WriteError(w, http.StatusNotFound, "Not found")
}

// WriteMethodNotAllowed writes a 405 Method Not Allowed error.
func WriteMethodNotAllowed(w http.ResponseWriter) {
	WriteError(w, http.StatusMethodNotAllowed, "Method not allowed")
}

// WriteInternalError writes a 500 Internal Server Error.
func WriteInternalError(w http.ResponseWriter, message string) {
	WriteError(w, http.StatusInternalServerError, message)
}
