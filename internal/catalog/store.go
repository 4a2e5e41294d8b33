package catalog

import "sync"

// Store is a reloadable catalog safe for concurrent use. The file watcher
// swaps its contents while the renderer reads from it.
//
// Until the first Load the store is not ready: queries return empty
// results and lookups miss.
type Store struct {
	mu  sync.RWMutex
	mem *Memory
}

// NewStore creates an empty, not-yet-ready store.
func NewStore() *Store {
	return &Store{}
}

// Load atomically replaces the catalog contents.
func (s *Store) Load(stars []Star) {
	mem := NewMemory(stars)

	s.mu.Lock()
	defer s.mu.Unlock()
	s.mem = mem
}

// Ready returns true once a catalog has been loaded.
func (s *Store) Ready() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.mem != nil
}

// Len returns the number of loaded stars.
func (s *Store) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.mem == nil {
		return 0
	}
	return s.mem.Len()
}

// StarsByProximity implements Accessor.
func (s *Store) StarsByProximity(maxCount int) []Star {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.mem == nil {
		return []Star{}
	}
	return s.mem.StarsByProximity(maxCount)
}

// AllStars implements Accessor.
func (s *Store) AllStars() []Star {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.mem == nil {
		return []Star{}
	}
	return s.mem.AllStars()
}

// StarByID implements Accessor.
func (s *Store) StarByID(id int) (Star, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.mem == nil {
		return Star{}, false
	}
	return s.mem.StarByID(id)
}
