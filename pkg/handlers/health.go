package handlers

import (
	"context"
	"net/http"
	"time"
)

// HealthChecker is implemented by backing services the health endpoint
// reports on (MongoDB, Redis).
type HealthChecker interface {
	HealthCheck(ctx context.Context) error
}

// HealthResponse is the body of GET /api/health.
type HealthResponse struct {
	Status     string            `json:"status"`
	Message    string            `json:"message"`
	Timestamp  string            `json:"timestamp"`
	Components map[string]string `json:"components,omitempty"`
}

// HealthHandler reports overall service health plus per-component status for
// each named checker. A nil checker is reported as unavailable.
func HealthHandler(checkers map[string]HealthChecker) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		components := make(map[string]string, len(checkers))
		for name, checker := range checkers {
			if checker == nil {
				components[name] = "unavailable"
				continue
			}
			if err := checker.HealthCheck(r.Context()); err != nil {
				components[name] = "unhealthy"
			} else {
				components[name] = "healthy"
			}
		}

		JSONResponse(w, HealthResponse{
			Status:     "OK",
			Message:    "Server is running",
			Timestamp:  time.Now().UTC().Format(time.RFC3339),
			Components: components,
		}, http.StatusOK)
	}
}
