package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/sbilibin2017/gw-book-exchange/internal/logger"
)

// ErrorResponse is the body of every failed request
// swagger:model ErrorResponse
type ErrorResponse struct {
	// Error message
	// default: Invalid request body
	Error string `json:"error"`
}

// MessageResponse is a bare confirmation
// swagger:model MessageResponse
type MessageResponse struct {
	// Success message
	// default: Book deleted
	Message string `json:"message"`
}

// ExistsResponse answers availability checks
// swagger:model ExistsResponse
type ExistsResponse struct {
	Exists bool `json:"exists"`
}

const (
	msgInvalidBody    = "Invalid request body"
	msgInternalServer = "Internal server error"
)

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, ErrorResponse{Error: message})
}

// writeInternalError logs err and answers 500.
func writeInternalError(w http.ResponseWriter, r *http.Request, err error) {
	logger.FromContext(r.Context()).Errorw("internal server error", "method", r.Method, "path", r.URL.Path, "err", err)
	writeError(w, http.StatusInternalServerError, msgInternalServer)
}
