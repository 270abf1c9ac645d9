package registry

import (
	"sort"
	"sync"
)

// Store maps type keys to values of type V. It is safe for concurrent use.
//
// V should be a plain value type (no embedded pointers that callers mutate):
// entries are stored and returned by value, which is what makes Get a true
// copy rather than a window into shared state.
type Store[V any] struct {
	mu   sync.RWMutex
	data map[Key]V
}

// New creates an empty store.
func New[V any]() *Store[V] {
	return &Store[V]{
		data: make(map[Key]V),
	}
}

// Put inserts or overwrites the entry for key. The last writer wins; there is
// no duplicate-registration error. Put takes the exclusive lock.
func (s *Store[V]) Put(key Key, value V) {
	s.mu.Lock()
	s.data[key] = value
	s.mu.Unlock()
}

// Get returns a copy of the entry for key, or the zero value and false when
// the key was never registered. Get takes only the shared lock, so lookups
// from concurrent goroutines do not serialize.
func (s *Store[V]) Get(key Key) (V, bool) {
	s.mu.RLock()
	value, ok := s.data[key]
	s.mu.RUnlock()

	return value, ok
}

// Len returns the number of registered entries.
func (s *Store[V]) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return len(s.data)
}

// Keys returns all registered keys in deterministic (lexicographic) order.
func (s *Store[V]) Keys() []Key {
	s.mu.RLock()
	keys := make([]Key, 0, len(s.data))

	for key := range s.data {
		keys = append(keys, key)
	}
	s.mu.RUnlock()

	sort.Slice(keys, func(i, j int) bool {
		if keys[i].Package == keys[j].Package {
			return keys[i].Name < keys[j].Name
		}

		return keys[i].Package < keys[j].Package
	})

	return keys
}
