// Package store provides the in-memory ordered collections the sync engine
// owns, one per entity type. Mutations replace whole elements, so snapshots
// are plain slice copies and restoring one brings back the exact prior
// contents including order.
package store

import "sync"

// Identifiable is anything keyed by an opaque string id.
type Identifiable interface {
	EntityID() string
}

// Store is an ordered collection of entities. Creates are prepended, so the
// most recent item is always first. Safe for concurrent use.
type Store[T Identifiable] struct {
	mu    sync.RWMutex
	items []T
}

// New constructs an empty store.
func New[T Identifiable]() *Store[T] {
	return &Store[T]{}
}

// List returns a copy of the current contents in order.
func (s *Store[T]) List() []T {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]T, len(s.items))
	copy(out, s.items)
	return out
}

// Len returns the current item count.
func (s *Store[T]) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.items)
}

// Get returns the item with the given id.
func (s *Store[T]) Get(id string) (T, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, it := range s.items {
		if it.EntityID() == id {
			return it, true
		}
	}
	var zero T
	return zero, false
}

// Prepend inserts the item as the new first element. If an item with the
// same id already exists the call is a no-op.
func (s *Store[T]) Prepend(item T) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, it := range s.items {
		if it.EntityID() == item.EntityID() {
			return
		}
	}
	s.items = append([]T{item}, s.items...)
}

// Replace swaps the item with the given id in place. Replacing a missing
// item is a no-op and returns false.
func (s *Store[T]) Replace(id string, item T) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i, it := range s.items {
		if it.EntityID() == id {
			s.items[i] = item
			return true
		}
	}
	return false
}

// Reconcile merges the authoritative server item over the stored one and
// swaps it in place. The merge function decides which prior fields survive.
// Reconciling a missing id is a no-op; reconciling twice with the same
// server item is equivalent to reconciling once.
func (s *Store[T]) Reconcile(id string, item T, merge func(prev, next T) T) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i, it := range s.items {
		if it.EntityID() == id {
			s.items[i] = merge(it, item)
			return true
		}
	}
	return false
}

// Remove deletes the item with the given id, keeping order of the rest.
func (s *Store[T]) Remove(id string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i, it := range s.items {
		if it.EntityID() == id {
			s.items = append(s.items[:i:i], s.items[i+1:]...)
			return true
		}
	}
	return false
}

// RemoveWhere deletes every item matching the predicate and reports how
// many were dropped.
func (s *Store[T]) RemoveWhere(match func(T) bool) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	kept := s.items[:0:0]
	removed := 0
	for _, it := range s.items {
		if match(it) {
			removed++
			continue
		}
		kept = append(kept, it)
	}
	s.items = kept
	return removed
}

// Snapshot returns a copy of the contents for later Restore.
func (s *Store[T]) Snapshot() []T {
	return s.List()
}

// Restore replaces the contents wholesale with the given items.
func (s *Store[T]) Restore(items []T) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.items = make([]T, len(items))
	copy(s.items, items)
}
