package client

import (
	"context"
	"encoding/json"
	"net/http"
	"strings"
	"sync"
	"testing"
)

func TestBulkDeleteFavoritesSettlesAll(t *testing.T) {
	var mu sync.Mutex
	deleted := []string{}

	c, _ := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		id := strings.TrimPrefix(r.URL.Path, "/api/favorites/")
		if id == "bad-id" {
			w.WriteHeader(http.StatusBadRequest)
			json.NewEncoder(w).Encode(map[string]any{"detail": "Invalid favorite identifier"})
			return
		}

		mu.Lock()
		deleted = append(deleted, id)
		mu.Unlock()
		w.WriteHeader(http.StatusNoContent)
	})

	ids := []string{"65f000000000000000000001", "bad-id", "65f000000000000000000002"}
	outcomes := c.BulkDeleteFavorites(context.Background(), ids)

	if len(outcomes) != 3 {
		t.Fatalf("outcomes = %d, want 3", len(outcomes))
	}

	// One invalid identifier never blocks the rest of the batch.
	if !outcomes[0].OK || outcomes[0].Err != nil {
		t.Errorf("outcome[0] = %+v, want success", outcomes[0])
	}
	if outcomes[1].OK || outcomes[1].Err == nil {
		t.Errorf("outcome[1] = %+v, want failure", outcomes[1])
	}
	if !outcomes[2].OK {
		t.Errorf("outcome[2] = %+v, want success", outcomes[2])
	}

	// Outcomes line up with the input order.
	for i, id := range ids {
		if outcomes[i].ID != id {
			t.Errorf("outcome[%d].ID = %q, want %q", i, outcomes[i].ID, id)
		}
	}

	if len(deleted) != 2 {
		t.Errorf("server saw %d deletions, want 2", len(deleted))
	}
}

func TestBulkDeleteFavoritesEmpty(t *testing.T) {
	c, _ := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		t.Error("no request expected for an empty batch")
	})

	if outcomes := c.BulkDeleteFavorites(context.Background(), nil); len(outcomes) != 0 {
		t.Errorf("outcomes = %d, want 0", len(outcomes))
	}
}
