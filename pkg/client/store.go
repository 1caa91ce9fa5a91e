package client

import "sync"

// Entity names the store keys. One key per resource type.
const (
	EntityUsers       = "users"
	EntityFavorites   = "favorites"
	EntityCollections = "collections"
	EntityObjects     = "celestialobjects"
)

// Store is a shared cache of fetched entities with subscription-based
// invalidation. A mutation in one surface invalidates its entity key, and
// every subscriber is notified instead of each surface refetching on its own
// schedule.
type Store struct {
	mu      sync.RWMutex
	entries map[string]any
	subs    map[string]map[int]func(entity string)
	nextSub int
}

func NewStore() *Store {
	return &Store{
		entries: make(map[string]any),
		subs:    make(map[string]map[int]func(entity string)),
	}
}

// Get returns the cached value for an entity key, if any.
func (s *Store) Get(entity string) (any, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	value, ok := s.entries[entity]
	return value, ok
}

// Set stores a value for an entity key and notifies subscribers.
func (s *Store) Set(entity string, value any) {
	s.mu.Lock()
	s.entries[entity] = value
	subs := s.snapshot(entity)
	s.mu.Unlock()

	for _, fn := range subs {
		fn(entity)
	}
}

// Invalidate drops the cached value for an entity key and notifies
// subscribers so they can refetch.
func (s *Store) Invalidate(entity string) {
	s.mu.Lock()
	delete(s.entries, entity)
	subs := s.snapshot(entity)
	s.mu.Unlock()

	for _, fn := range subs {
		fn(entity)
	}
}

// Subscribe registers a callback for changes to an entity key. The returned
// function removes the subscription. Callbacks run synchronously on the
// mutating goroutine and must not call back into the store.
func (s *Store) Subscribe(entity string, fn func(entity string)) func() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.subs[entity] == nil {
		s.subs[entity] = make(map[int]func(entity string))
	}
	id := s.nextSub
	s.nextSub++
	s.subs[entity][id] = fn

	return func() {
		s.mu.Lock()
		defer s.mu.Unlock()
		delete(s.subs[entity], id)
	}
}

// snapshot copies the subscriber list for an entity. Callers must hold mu.
func (s *Store) snapshot(entity string) []func(entity string) {
	subs := make([]func(entity string), 0, len(s.subs[entity]))
	for _, fn := range s.subs[entity] {
		subs = append(subs, fn)
	}
	return subs
}
