package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
)

type stubChecker struct {
	err error
}

func (s stubChecker) HealthCheck(ctx context.Context) error {
	return s.err
}

func TestHealthHandler(t *testing.T) {
	checkers := map[string]HealthChecker{
		"mongodb": stubChecker{},
		"redis":   stubChecker{err: errors.New("connection refused")},
		"cache":   nil,
	}

	rec := httptest.NewRecorder()
	HealthHandler(checkers)(rec, httptest.NewRequest(http.MethodGet, "/api/health", nil))

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}

	var body HealthResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("failed to decode body: %v", err)
	}
	if body.Status != "OK" {
		t.Errorf("status = %q, want OK", body.Status)
	}
	if body.Message != "Server is running" {
		t.Errorf("message = %q", body.Message)
	}
	if body.Timestamp == "" {
		t.Error("timestamp missing")
	}
	if body.Components["mongodb"] != "healthy" {
		t.Errorf("mongodb = %q, want healthy", body.Components["mongodb"])
	}
	if body.Components["redis"] != "unhealthy" {
		t.Errorf("redis = %q, want unhealthy", body.Components["redis"])
	}
	if body.Components["cache"] != "unavailable" {
		t.Errorf("cache = %q, want unavailable", body.Components["cache"])
	}
}

func TestRouteNotFoundHandler(t *testing.T) {
	rec := httptest.NewRecorder()
	RouteNotFoundHandler(rec, httptest.NewRequest(http.MethodGet, "/api/nope", nil))

	if rec.Code != http.StatusNotFound {
		t.Fatalf("status = %d, want 404", rec.Code)
	}

	var body MessageResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("failed to decode body: %v", err)
	}
	if body.Message != "Route not found" {
		t.Errorf("message = %q, want Route not found", body.Message)
	}
}
