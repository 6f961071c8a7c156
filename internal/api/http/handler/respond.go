package handler

import (
	"encoding/json"
	"net/http"

	"github.com/webmob/auth-api/internal/apperror"
	"github.com/webmob/auth-api/internal/logger"
)

// errorResponse is the envelope for every error surfaced to clients.
type errorResponse struct {
	Error string `json:"error"`
	Path  string `json:"path,omitempty"`
}

// WriteJSON writes v as a JSON response with the given status code.
func WriteJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

// WriteError converts err into the client error envelope. Errors outside the
// taxonomy surface as a generic 500; internal detail never reaches the client.
func WriteError(w http.ResponseWriter, logger *logger.Logger, err error) {
	appErr, ok := apperror.From(err)
	if !ok {
		appErr = apperror.NewInternal(err)
	}

	if appErr.StatusCode() >= http.StatusInternalServerError {
		logger.Error("HTTP request failed", "error", err.Error())
	}

	WriteJSON(w, appErr.StatusCode(), errorResponse{Error: appErr.Message})
}
