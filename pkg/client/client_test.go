package client

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"astro-atlas/pkg/validation"
)

func newTestServer(t *testing.T, handler http.HandlerFunc) (*Client, *httptest.Server) {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	return NewClient(srv.URL), srv
}

func TestCreateFavoriteRoundTrip(t *testing.T) {
	c, _ := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/api/favorites" || r.Method != http.MethodPost {
			t.Errorf("unexpected request: %s %s", r.Method, r.URL.Path)
		}

		var favorite Favorite
		if err := json.NewDecoder(r.Body).Decode(&favorite); err != nil {
			t.Fatalf("failed to decode body: %v", err)
		}
		favorite.ID = "65f000000000000000000001"

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusCreated)
		json.NewEncoder(w).Encode(favorite)
	})

	created, err := c.CreateFavorite(context.Background(), Favorite{
		Name:  "Mars",
		Type:  "planet",
		Image: "https://example.com/mars.jpg",
	})
	if err != nil {
		t.Fatalf("CreateFavorite failed: %v", err)
	}
	if created.ID == "" || created.Name != "Mars" {
		t.Errorf("created = %+v", created)
	}
}

func TestCreateFavoriteValidatesBeforeSending(t *testing.T) {
	requests := 0
	c, _ := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		requests++
	})

	_, err := c.CreateFavorite(context.Background(), Favorite{Name: "Mars"})

	var verr *validation.Error
	if !errors.As(err, &verr) {
		t.Fatalf("error = %v, want *validation.Error", err)
	}
	if verr.Key != "favorite.image" {
		t.Errorf("violated rule = %q, want favorite.image", verr.Key)
	}
	if requests != 0 {
		t.Errorf("rejected payload still reached the server %d times", requests)
	}
}

func TestListFavoritesPopulatesStore(t *testing.T) {
	c, _ := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode([]Favorite{{Name: "Sirius"}, {Name: "Vega"}})
	})

	favorites, err := c.ListFavorites(context.Background())
	if err != nil {
		t.Fatalf("ListFavorites failed: %v", err)
	}
	if len(favorites) != 2 {
		t.Fatalf("len = %d, want 2", len(favorites))
	}

	cached, ok := c.Store().Get(EntityFavorites)
	if !ok {
		t.Fatal("list result not cached in the store")
	}
	if got := cached.([]Favorite); got[0].Name != "Sirius" {
		t.Errorf("cached = %+v", got)
	}
}

func TestDeleteFavoriteInvalidatesStore(t *testing.T) {
	c, _ := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNoContent)
	})

	c.Store().Set(EntityFavorites, []Favorite{{Name: "Mars"}})

	if err := c.DeleteFavorite(context.Background(), "65f000000000000000000001"); err != nil {
		t.Fatalf("DeleteFavorite failed: %v", err)
	}
	if _, ok := c.Store().Get(EntityFavorites); ok {
		t.Error("store still holds favorites after a delete")
	}
}

func TestAPIErrorMessageExtraction(t *testing.T) {
	tests := []struct {
		name    string
		status  int
		body    string
		wantMsg string
	}{
		{
			name:    "problem detail",
			status:  http.StatusBadRequest,
			body:    `{"title":"Bad Request","status":400,"detail":"Collection name must be at least 3 characters long"}`,
			wantMsg: "Collection name must be at least 3 characters long",
		},
		{
			name:    "fallback message body",
			status:  http.StatusNotFound,
			body:    `{"message":"Route not found"}`,
			wantMsg: "Route not found",
		},
		{
			name:    "unparseable body",
			status:  http.StatusInternalServerError,
			body:    "boom",
			wantMsg: "Internal Server Error",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, _ := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tt.status)
				w.Write([]byte(tt.body))
			})

			_, err := c.ListCollections(context.Background())

			var apiErr *APIError
			if !errors.As(err, &apiErr) {
				t.Fatalf("error = %v, want *APIError", err)
			}
			if apiErr.StatusCode != tt.status {
				t.Errorf("status = %d, want %d", apiErr.StatusCode, tt.status)
			}
			if apiErr.Message != tt.wantMsg {
				t.Errorf("message = %q, want %q", apiErr.Message, tt.wantMsg)
			}
		})
	}
}
