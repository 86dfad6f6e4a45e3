package store

import (
	"sync"
)

// Store holds one immutable state value and notifies subscribers
// synchronously whenever the value changes.
//
// Updates are serialized. Listeners run after the internal lock is released,
// so they may read the snapshot or issue further updates themselves.
type Store[T comparable] struct {
	mu        sync.RWMutex
	state     T
	initial   T
	listeners map[int]func()
	nextID    int
}

// New creates a store holding initial.
func New[T comparable](initial T) *Store[T] {
	return &Store[T]{
		state:     initial,
		initial:   initial,
		listeners: make(map[int]func()),
	}
}

// Snapshot returns the current state.
func (s *Store[T]) Snapshot() T {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.state
}

// ServerSnapshot returns the state captured at construction time.
// It never changes, which makes it usable as a stable pre-hydration snapshot.
func (s *Store[T]) ServerSnapshot() T {
	return s.initial
}

// Subscribe registers listener and returns a function removing exactly that
// registration. The returned function is idempotent.
func (s *Store[T]) Subscribe(listener func()) func() {
	s.mu.Lock()
	id := s.nextID
	s.nextID++
	s.listeners[id] = listener
	s.mu.Unlock()

	var once sync.Once
	return func() {
		once.Do(func() {
			s.mu.Lock()
			delete(s.listeners, id)
			s.mu.Unlock()
		})
	}
}

// Update applies fn to the current state. When fn returns a value equal to
// its input (the same pointer, for pointer states) nothing happens; otherwise
// the state is replaced and every listener is called once.
func (s *Store[T]) Update(fn func(prev T) T) {
	for _, l := range s.apply(fn) {
		l()
	}
}

// apply swaps the state under the lock and returns the listeners to notify,
// or nil when fn produced no change.
func (s *Store[T]) apply(fn func(prev T) T) []func() {
	s.mu.Lock()
	defer s.mu.Unlock()

	next := fn(s.state)
	if next == s.state {
		return nil
	}
	s.state = next
	listeners := make([]func(), 0, len(s.listeners))
	for _, l := range s.listeners {
		listeners = append(listeners, l)
	}
	return listeners
}

// Set replaces the state. Shorthand for an Update ignoring the previous value.
func (s *Store[T]) Set(next T) {
	s.Update(func(T) T { return next })
}
