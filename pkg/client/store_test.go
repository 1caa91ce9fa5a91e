package client

import "testing"

func TestStoreSetAndGet(t *testing.T) {
	store := NewStore()

	if _, ok := store.Get(EntityFavorites); ok {
		t.Fatal("empty store should have no cached favorites")
	}

	favorites := []Favorite{{Name: "Mars"}}
	store.Set(EntityFavorites, favorites)

	cached, ok := store.Get(EntityFavorites)
	if !ok {
		t.Fatal("expected cached favorites after Set")
	}
	if got := cached.([]Favorite); len(got) != 1 || got[0].Name != "Mars" {
		t.Errorf("cached value = %+v", got)
	}
}

func TestStoreSubscribeNotifies(t *testing.T) {
	store := NewStore()

	var notified []string
	unsubscribe := store.Subscribe(EntityCollections, func(entity string) {
		notified = append(notified, entity)
	})

	store.Set(EntityCollections, []Collection{})
	store.Invalidate(EntityCollections)

	// Other entity keys never reach this subscriber.
	store.Invalidate(EntityUsers)

	if len(notified) != 2 {
		t.Fatalf("notifications = %d, want 2", len(notified))
	}
	for _, entity := range notified {
		if entity != EntityCollections {
			t.Errorf("notified for %q, want %q", entity, EntityCollections)
		}
	}

	unsubscribe()
	store.Invalidate(EntityCollections)
	if len(notified) != 2 {
		t.Error("subscriber notified after unsubscribe")
	}
}

func TestStoreInvalidateDropsCache(t *testing.T) {
	store := NewStore()
	store.Set(EntityObjects, []CelestialObject{{Name: "Saturn"}})
	store.Invalidate(EntityObjects)

	if _, ok := store.Get(EntityObjects); ok {
		t.Error("invalidated entity still cached")
	}
}

func TestStoreMultipleSubscribers(t *testing.T) {
	store := NewStore()

	first, second := 0, 0
	store.Subscribe(EntityFavorites, func(string) { first++ })
	store.Subscribe(EntityFavorites, func(string) { second++ })

	store.Invalidate(EntityFavorites)

	if first != 1 || second != 1 {
		t.Errorf("subscriber counts = %d, %d, want 1, 1", first, second)
	}
}
