package handlers

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"astro-atlas/pkg/config"
)

// MessageResponse is the body shape used for plain-message replies such as
// the 404 fallback.
type MessageResponse struct {
	Message string `json:"message"`
}

// ErrorDetailResponse is the body shape for unexpected server errors. Error
// carries detail only outside production.
type ErrorDetailResponse struct {
	Message string `json:"message"`
	Error   string `json:"error,omitempty"`
}

// JSONResponse writes data as JSON with the given status code.
func JSONResponse(w http.ResponseWriter, data interface{}, statusCode int) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)

	if err := json.NewEncoder(w).Encode(data); err != nil {
		slog.Error("Failed to encode JSON response", "error", err)
	}
}

// RouteNotFoundHandler answers every unmatched route with the JSON body the
// API has always used.
func RouteNotFoundHandler(w http.ResponseWriter, r *http.Request) {
	JSONResponse(w, MessageResponse{Message: "Route not found"}, http.StatusNotFound)
}

// InternalErrorResponse reports an unexpected failure. The underlying error
// text is included only outside production.
func InternalErrorResponse(w http.ResponseWriter, err error) {
	body := ErrorDetailResponse{Message: "Something went wrong!"}
	if err != nil && !config.IsProduction() {
		body.Error = err.Error()
	}
	JSONResponse(w, body, http.StatusInternalServerError)
}
